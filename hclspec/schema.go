package hclspec

import "github.com/hashicorp/hcl/v2"

// OptionBlock is the HCL representation of an `option` block inside a
// command spec.
type OptionBlock struct {
	Name     string         `hcl:"name,label"`
	Short    string         `hcl:"short,optional"`
	Value    bool           `hcl:"value,optional"`
	Multiple bool           `hcl:"multiple,optional"`
	Required bool           `hcl:"required,optional"`
	Help     string         `hcl:"help,optional"`
	Default  hcl.Expression `hcl:"default,optional"`
}

// ParameterBlock is the HCL representation of a `parameter` block inside a
// command spec.
type ParameterBlock struct {
	Name     string `hcl:"name,label"`
	Required bool   `hcl:"required,optional"`
	Help     string `hcl:"help,optional"`
}

// CommandBlock is the HCL representation of a `command` block: the named
// command plus its declared options and parameters, in file order.
type CommandBlock struct {
	Name        string            `hcl:"name,label"`
	Description string            `hcl:"description,optional"`
	Options     []*OptionBlock    `hcl:"option,block"`
	Parameters  []*ParameterBlock `hcl:"parameter,block"`
}

// File is the top-level structure of a command spec file. Exactly one
// command block is expected.
type File struct {
	Command *CommandBlock `hcl:"command,block"`
}
