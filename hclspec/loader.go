// Package hclspec loads declarative command specifications written in HCL
// and translates them into staged cmdline registries. A spec file declares
// one command with its options and parameters:
//
//	command "greet" {
//	  description = "Greets people by name."
//
//	  option "name" {
//	    short    = "n"
//	    value    = true
//	    required = true
//	    help     = "Name of the person to greet."
//	  }
//
//	  parameter "message" {
//	    required = true
//	    help     = "Message template."
//	  }
//	}
//
// The returned registry is staged but not validated; validation stays lazy
// and is triggered by the first parse or read query, exactly as with a
// registry built in code.
package hclspec

import (
	"context"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"

	"github.com/goosebumpdesigns/cmdline"
	"github.com/goosebumpdesigns/cmdline/internal/ctxlog"
)

// Spec is a command declaration loaded from a spec file.
type Spec struct {
	// Command is the command name from the spec's command block label.
	Command string

	// Registry holds the staged option and parameter declarations.
	Registry *cmdline.Registry
}

// Load reads and translates the command spec at the given path.
func Load(ctx context.Context, path string) (*Spec, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read command spec: %w", err)
	}
	return LoadBytes(ctx, src, path)
}

// LoadBytes parses and translates command spec source. The filename is used
// only in diagnostics.
func LoadBytes(ctx context.Context, src []byte, filename string) (*Spec, error) {
	logger := ctxlog.FromContext(ctx)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse %s: %w", filename, diags)
	}

	var root File
	if diags := gohcl.DecodeBody(file.Body, nil, &root); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode %s: %w", filename, diags)
	}
	if root.Command == nil {
		return nil, fmt.Errorf("%s: no command block found", filename)
	}

	logger.Debug("Command spec decoded.",
		"command", root.Command.Name,
		"options", len(root.Command.Options),
		"parameters", len(root.Command.Parameters))

	reg, err := translate(root.Command)
	if err != nil {
		return nil, err
	}

	return &Spec{Command: root.Command.Name, Registry: reg}, nil
}

// translate converts the HCL-specific schema into staged cmdline
// declarations. Staging order follows file order, so validation reports
// conflicts the same way a hand-built registry would.
func translate(cmd *CommandBlock) (*cmdline.Registry, error) {
	reg := cmdline.NewRegistry().SetDescription(cmd.Description)

	for _, block := range cmd.Options {
		opt := cmdline.Option{
			Name:       block.Name,
			TakesValue: block.Value,
			Multiple:   block.Multiple,
			Required:   block.Required,
			Help:       block.Help,
		}

		if block.Short != "" {
			short, size := utf8.DecodeRuneInString(block.Short)
			if size != len(block.Short) || short == utf8.RuneError {
				return nil, &cmdline.Error{
					Kind:    cmdline.KindInvalidDeclaration,
					Name:    block.Name,
					Message: fmt.Sprintf("option %q: short name %q must be a single character", block.Name, block.Short),
				}
			}
			opt.Short = short
		}

		defaultVal, err := evaluateDefault(block)
		if err != nil {
			return nil, err
		}
		opt.Default = defaultVal

		reg.AddOption(opt)
	}

	for _, block := range cmd.Parameters {
		reg.AddParameter(cmdline.Parameter{
			Name:     block.Name,
			Required: block.Required,
			Help:     block.Help,
		})
	}

	return reg, nil
}

// evaluateDefault evaluates an option's default expression, if any, and
// converts the result to its string form for help display.
func evaluateDefault(block *OptionBlock) (string, error) {
	if block.Default == nil {
		return "", nil
	}

	val, diags := block.Default.Value(nil)
	if diags.HasErrors() {
		return "", fmt.Errorf("option %q: failed to evaluate default: %w", block.Name, diags)
	}
	if val.IsNull() {
		return "", nil
	}

	str, err := convert.Convert(val, cty.String)
	if err != nil {
		return "", fmt.Errorf("option %q: default is not convertible to string: %w", block.Name, err)
	}
	return str.AsString(), nil
}
