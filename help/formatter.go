// Package help renders usage text for a cmdline.Registry. It consumes the
// registry's read-only surface (sorted options, ordered parameters,
// description, longest declared name) and never reaches into parser
// internals.
package help

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mitchellh/go-wordwrap"

	"github.com/goosebumpdesigns/cmdline"
)

const (
	defaultWidth = 80
	minWidth     = 40
	maxWidth     = 200

	// columnGap separates the name column from the help column.
	columnGap = 3
)

// Formatter renders usage and option/parameter instructions, wrapping every
// line to a configurable maximum width.
type Formatter struct {
	width   int
	heading *color.Color
}

// NewFormatter creates a formatter with the default 80-character width.
func NewFormatter() *Formatter {
	return &Formatter{
		width:   defaultWidth,
		heading: color.New(color.Bold),
	}
}

// SetMaxWidth sets the maximum printed line width. Widths outside [40, 200]
// are rejected.
func (f *Formatter) SetMaxWidth(width int) error {
	if width < minWidth || width > maxWidth {
		return &cmdline.Error{
			Kind:    cmdline.KindInvalidDeclaration,
			Message: fmt.Sprintf("max width must be between %d and %d characters", minWidth, maxWidth),
		}
	}
	f.width = width
	return nil
}

// MaxWidth returns the configured maximum line width.
func (f *Formatter) MaxWidth() int {
	return f.width
}

// Format writes the full usage text for the registry: a usage line, the
// wrapped command description, and one aligned entry per option and
// parameter. It triggers registry validation and propagates any validation
// failure.
func (f *Formatter) Format(w io.Writer, program string, reg *cmdline.Registry) error {
	opts, err := reg.Options()
	if err != nil {
		return err
	}
	params, err := reg.Parameters()
	if err != nil {
		return err
	}
	nameLen, err := reg.MaxNameLength()
	if err != nil {
		return err
	}

	f.heading.Fprintln(w, "Usage:")
	fmt.Fprintf(w, "  %s\n", usageLine(program, opts, params))

	if desc := reg.Description(); desc != "" {
		fmt.Fprintln(w)
		for _, line := range f.wrap(desc, 0) {
			fmt.Fprintln(w, line)
		}
	}

	if len(opts) > 0 {
		fmt.Fprintln(w)
		f.heading.Fprintln(w, "Options:")
		for _, opt := range opts {
			f.writeEntry(w, optionLabel(opt), nameLen+6, optionHelp(opt))
		}
	}

	if len(params) > 0 {
		fmt.Fprintln(w)
		f.heading.Fprintln(w, "Parameters:")
		for _, p := range params {
			help := p.Help
			if p.Required {
				help = appendMarker(help, "(required)")
			}
			f.writeEntry(w, "  "+p.Name, nameLen+6, help)
		}
	}

	return nil
}

// usageLine builds the one-line synopsis: program [options] <req> [opt].
func usageLine(program string, opts []*cmdline.Option, params []cmdline.Parameter) string {
	var b strings.Builder
	b.WriteString(program)
	if len(opts) > 0 {
		b.WriteString(" [options]")
	}
	for _, p := range params {
		if p.Required {
			fmt.Fprintf(&b, " <%s>", p.Name)
		} else {
			fmt.Fprintf(&b, " [%s]", p.Name)
		}
	}
	return b.String()
}

// optionLabel renders the name column for an option: "  -s, --name" when a
// short name exists, "      --name" otherwise.
func optionLabel(opt *cmdline.Option) string {
	if opt.Short != 0 {
		return fmt.Sprintf("  -%c, --%s", opt.Short, opt.Name)
	}
	return "      --" + opt.Name
}

func optionHelp(opt *cmdline.Option) string {
	help := opt.Help
	if opt.Required {
		help = appendMarker(help, "(required)")
	}
	if opt.Default != "" {
		help = appendMarker(help, fmt.Sprintf("(default: %s)", opt.Default))
	}
	return help
}

func appendMarker(help, marker string) string {
	if help == "" {
		return marker
	}
	return help + " " + marker
}

// writeEntry writes a padded name column followed by the wrapped help text.
// Continuation lines are indented to the help column.
func (f *Formatter) writeEntry(w io.Writer, label string, column int, help string) {
	if column+columnGap >= f.width {
		column = f.width / 2
	}
	pad := column + columnGap

	if help == "" {
		fmt.Fprintln(w, label)
		return
	}

	lines := f.wrap(help, pad)
	fmt.Fprintf(w, "%-*s%s\n", pad, label, strings.TrimLeft(lines[0], " "))
	for _, line := range lines[1:] {
		fmt.Fprintln(w, line)
	}
}

// wrap breaks text into lines no longer than the configured width, each
// prefixed with indent spaces.
func (f *Formatter) wrap(text string, indent int) []string {
	limit := f.width - indent
	if limit < 1 {
		limit = 1
	}

	wrapped := wordwrap.WrapString(text, uint(limit))
	lines := strings.Split(wrapped, "\n")
	prefix := strings.Repeat(" ", indent)
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return lines
}
