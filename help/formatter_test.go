package help

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goosebumpdesigns/cmdline"
)

func init() {
	// Keep assertions independent of the terminal the tests run in.
	color.NoColor = true
}

func demoRegistry() *cmdline.Registry {
	return cmdline.NewRegistry().
		SetDescription("Greets people by name.").
		AddOption(cmdline.Option{Name: "name", Short: 'n', TakesValue: true, Required: true, Help: "Name of the person to greet."}).
		AddOption(cmdline.Option{Name: "shout", Help: "Print the greeting in upper case."}).
		AddOption(cmdline.Option{Name: "lang", TakesValue: true, Default: "en", Help: "Greeting language code."}).
		AddParameter(cmdline.Parameter{Name: "message", Required: true, Help: "Message template."}).
		AddParameter(cmdline.Parameter{Name: "signature", Help: "Optional signature."})
}

func TestSetMaxWidth(t *testing.T) {
	t.Parallel()

	f := NewFormatter()
	assert.Equal(t, 80, f.MaxWidth())

	require.NoError(t, f.SetMaxWidth(120))
	assert.Equal(t, 120, f.MaxWidth())

	for _, width := range []int{0, 39, 201} {
		err := f.SetMaxWidth(width)
		var parseErr *cmdline.Error
		require.ErrorAs(t, err, &parseErr, "width %d", width)
		assert.Equal(t, cmdline.KindInvalidDeclaration, parseErr.Kind)
	}
	assert.Equal(t, 120, f.MaxWidth(), "rejected widths must not change the setting")
}

func TestFormat(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, NewFormatter().Format(&buf, "greet", demoRegistry()))
	out := buf.String()

	t.Run("usage line", func(t *testing.T) {
		assert.Contains(t, out, "Usage:")
		assert.Contains(t, out, "greet [options] <message> [signature]")
	})

	t.Run("description", func(t *testing.T) {
		assert.Contains(t, out, "Greets people by name.")
	})

	t.Run("options are sorted and annotated", func(t *testing.T) {
		assert.Contains(t, out, "-n, --name")
		assert.Contains(t, out, "--shout")
		assert.Contains(t, out, "(required)")
		assert.Contains(t, out, "(default: en)")

		langAt := strings.Index(out, "--lang")
		nameAt := strings.Index(out, "--name")
		shoutAt := strings.Index(out, "--shout")
		assert.Less(t, langAt, nameAt)
		assert.Less(t, nameAt, shoutAt)
	})

	t.Run("parameters keep declaration order", func(t *testing.T) {
		assert.Contains(t, out, "Parameters:")
		assert.Less(t, strings.Index(out, "message"), strings.Index(out, "signature"))
	})
}

func TestFormatWrapsLongHelp(t *testing.T) {
	t.Parallel()

	longHelp := strings.Repeat("wraps at the configured width ", 8)
	reg := cmdline.NewRegistry().
		AddOption(cmdline.Option{Name: "flag", Help: longHelp})

	f := NewFormatter()
	require.NoError(t, f.SetMaxWidth(60))

	var buf bytes.Buffer
	require.NoError(t, f.Format(&buf, "tool", reg))

	for _, line := range strings.Split(buf.String(), "\n") {
		assert.LessOrEqual(t, len(line), 60, "line too long: %q", line)
	}
}

func TestFormatEmptyRegistry(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, NewFormatter().Format(&buf, "bare", cmdline.NewRegistry()))
	out := buf.String()

	assert.Contains(t, out, "bare")
	assert.NotContains(t, out, "Options:")
	assert.NotContains(t, out, "Parameters:")
}

func TestFormatPropagatesValidationErrors(t *testing.T) {
	t.Parallel()

	reg := cmdline.NewRegistry().
		AddOption(cmdline.Option{Name: "dup"}).
		AddOption(cmdline.Option{Name: "dup"})

	var buf bytes.Buffer
	err := NewFormatter().Format(&buf, "tool", reg)

	var parseErr *cmdline.Error
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, cmdline.KindDuplicateName, parseErr.Kind)
}
