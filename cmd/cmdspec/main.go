// Command cmdspec loads a declarative HCL command spec and dry-runs argument
// vectors against it: it prints either the command's usage text or the fully
// resolved option and parameter values. Its own command line is declared and
// parsed with the cmdline library itself.
//
// Usage:
//
//	cmdspec --spec greet.hcl                    print the command's help text
//	cmdspec --spec greet.hcl -- --name Rob hi   resolve an argument vector
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/fatih/color"

	"github.com/goosebumpdesigns/cmdline"
	"github.com/goosebumpdesigns/cmdline/hclspec"
	"github.com/goosebumpdesigns/cmdline/help"
	"github.com/goosebumpdesigns/cmdline/internal/ctxlog"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// main is the entrypoint for the cmdspec tool.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(os.Stdout, os.Args[1:]); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, color.RedString(exitErr.Message))
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, color.RedString(err.Error()))
		os.Exit(1)
	}
}

// ownRegistry declares cmdspec's own command line.
func ownRegistry() *cmdline.Registry {
	return cmdline.NewRegistry().
		SetDescription("Loads an HCL command spec and dry-runs argument vectors against it. "+
			"Tokens after a literal -- are resolved against the loaded command instead of cmdspec itself.").
		AddOption(cmdline.Option{Name: "spec", Short: 's', TakesValue: true, Required: true, Help: "Path to the command spec file."}).
		AddOption(cmdline.Option{Name: "log-level", TakesValue: true, Help: "Logging level: debug, info, warn, or error.", Default: "info"}).
		AddOption(cmdline.Option{Name: "log-format", TakesValue: true, Help: "Log output format: text or json.", Default: "text"}).
		AddOption(cmdline.Option{Name: "width", Short: 'w', TakesValue: true, Help: "Maximum help text width.", Default: "80"}).
		AddOption(cmdline.Option{Name: "help", Short: 'h', Help: "Print the loaded command's usage text instead of parsing."})
}

// run encapsulates the main application logic for easier testing and error handling.
func run(outW io.Writer, args []string) error {
	own, target := splitArgs(args)

	reg := ownRegistry()
	res, err := cmdline.NewParser(reg).Parse(context.Background(), own)
	if err != nil {
		var parseErr *cmdline.Error
		if errors.As(err, &parseErr) && parseErr.Kind == cmdline.KindMissingRequiredOption && parseErr.Name == "spec" {
			// No spec given: print our own usage and exit cleanly.
			return help.NewFormatter().Format(outW, "cmdspec", reg)
		}
		return &ExitError{Code: 2, Message: err.Error()}
	}

	logger, err := newLogger(res, os.Stderr)
	if err != nil {
		return &ExitError{Code: 2, Message: err.Error()}
	}
	ctx := ctxlog.WithLogger(context.Background(), logger)

	specPath, _, err := res.Value("spec")
	if err != nil {
		return err
	}
	spec, err := hclspec.Load(ctx, specPath)
	if err != nil {
		return &ExitError{Code: 1, Message: err.Error()}
	}
	logger.Debug("Command spec loaded.", "command", spec.Command)

	formatter := help.NewFormatter()
	if widthStr, ok, _ := res.Value("width"); ok {
		width, err := strconv.Atoi(widthStr)
		if err != nil {
			return &ExitError{Code: 2, Message: fmt.Sprintf("invalid width %q: must be a number", widthStr)}
		}
		if err := formatter.SetMaxWidth(width); err != nil {
			return &ExitError{Code: 2, Message: err.Error()}
		}
	}

	showHelp, err := res.Has("help")
	if err != nil {
		return err
	}
	if showHelp || len(target) == 0 {
		return formatter.Format(outW, spec.Command, spec.Registry)
	}

	parsed, err := cmdline.NewParser(spec.Registry).Parse(ctx, target)
	if err != nil {
		return &ExitError{Code: 1, Message: fmt.Sprintf("%s: %s", spec.Command, err.Error())}
	}

	return printResolution(outW, spec, parsed)
}

// splitArgs separates cmdspec's own arguments from the target argument
// vector at the first literal "--" token.
func splitArgs(args []string) (own, target []string) {
	for i, arg := range args {
		if arg == "--" {
			return args[:i], args[i+1:]
		}
	}
	return args, nil
}

// newLogger builds the configured slog.Logger from the parsed log-level and
// log-format options.
func newLogger(res *cmdline.Result, outW io.Writer) (*slog.Logger, error) {
	levelStr, _, err := res.Value("log-level")
	if err != nil {
		return nil, err
	}
	formatStr, _, err := res.Value("log-format")
	if err != nil {
		return nil, err
	}

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info", "":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return nil, fmt.Errorf("invalid log-level %q: must be debug, info, warn, or error", levelStr)
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	switch formatStr {
	case "json":
		handler = slog.NewJSONHandler(outW, handlerOpts)
	case "text", "":
		handler = slog.NewTextHandler(outW, handlerOpts)
	default:
		return nil, fmt.Errorf("invalid log-format %q: must be text or json", formatStr)
	}

	return slog.New(handler), nil
}

// printResolution prints every declared option and parameter with the values
// the parse captured, followed by any extra positional values.
func printResolution(outW io.Writer, spec *hclspec.Spec, res *cmdline.Result) error {
	opts, err := spec.Registry.Options()
	if err != nil {
		return err
	}
	params, err := spec.Registry.Parameters()
	if err != nil {
		return err
	}

	fmt.Fprintf(outW, "command %q resolved:\n", spec.Command)

	for _, opt := range opts {
		vals, err := res.Values(opt.Name)
		if err != nil {
			return err
		}
		if len(vals) == 0 {
			fmt.Fprintf(outW, "  --%s: (not supplied)\n", opt.Name)
			continue
		}
		for _, v := range vals {
			fmt.Fprintf(outW, "  --%s = %q\n", opt.Name, v)
		}
	}

	positional := res.ParameterValues()
	for i, p := range params {
		if i < len(positional) {
			fmt.Fprintf(outW, "  %s = %q\n", p.Name, positional[i])
		} else {
			fmt.Fprintf(outW, "  %s: (not supplied)\n", p.Name)
		}
	}
	for i := len(params); i < len(positional); i++ {
		fmt.Fprintf(outW, "  (extra) = %q\n", positional[i])
	}

	return nil
}
