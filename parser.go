package cmdline

import (
	"context"
	"strings"

	"github.com/goosebumpdesigns/cmdline/internal/ctxlog"
)

// bypassOptionName is injected into the argument vector by some application
// launchers. It carries no user semantics and is skipped without consuming a
// value.
const bypassOptionName = "spring.output.ansi.enabled"

// parseState tracks which phase of the argument vector the parser is in. The
// transition from stateOptions to stateParameters is one-way: once the first
// positional token is seen, option tokens are no longer legal.
type parseState int

const (
	stateOptions parseState = iota
	stateParameters
)

// Parser resolves raw argument tokens against a validated Registry.
type Parser struct {
	reg *Registry
}

// NewParser creates a parser for the given registry.
func NewParser(reg *Registry) *Parser {
	return &Parser{reg: reg}
}

// Parse validates the registry, resolves every token, and verifies that all
// required options and parameters were supplied. The argument vector is the
// process argument vector without the program name.
//
// Every call returns a freshly allocated Result and leaves the registry's
// declarations untouched, so one registry may be parsed against any number
// of argument vectors.
func (p *Parser) Parse(ctx context.Context, args []string) (*Result, error) {
	logger := ctxlog.FromContext(ctx)

	if err := p.reg.Validate(); err != nil {
		return nil, err
	}

	res := &Result{
		reg:    p.reg,
		values: make(map[string][]string),
	}

	tokens := normalizeTokens(args)
	logger.Debug("Argument tokens normalized.", "raw", len(args), "tokens", len(tokens))

	state := stateOptions
	for index := 0; index < len(tokens); index++ {
		tok := tokens[index]

		switch {
		case strings.HasPrefix(tok, "--"):
			if state == stateParameters {
				return nil, optionAfterParameter(tok)
			}
			next, err := p.resolveLong(res, tok[2:], tokens, index)
			if err != nil {
				return nil, err
			}
			index = next

		case strings.HasPrefix(tok, "-") || strings.HasPrefix(tok, "/"):
			if state == stateParameters {
				return nil, optionAfterParameter(tok)
			}
			next, err := p.resolveShort(res, tok[1:], tokens, index)
			if err != nil {
				return nil, err
			}
			index = next

		default:
			state = stateParameters
			res.parameterValues = append(res.parameterValues, tok)
		}
	}

	if err := p.checkRequired(res); err != nil {
		return nil, err
	}

	logger.Debug("Parse finished.", "options_captured", len(res.values), "parameters_captured", len(res.parameterValues))
	return res, nil
}

// normalizeTokens splits dash-prefixed tokens containing an assignment
// separator, so --name=Rob parses identically to --name Rob. Both halves are
// trimmed of surrounding whitespace.
func normalizeTokens(args []string) []string {
	tokens := make([]string, 0, len(args))
	for _, arg := range args {
		if strings.HasPrefix(arg, "-") {
			if pos := strings.Index(arg, "="); pos != -1 {
				tokens = append(tokens,
					strings.TrimSpace(arg[:pos]),
					strings.TrimSpace(arg[pos+1:]))
				continue
			}
		}
		tokens = append(tokens, arg)
	}
	return tokens
}

// resolveLong resolves a long option token (prefix already stripped) and
// returns the index of the last token it consumed.
func (p *Parser) resolveLong(res *Result, name string, tokens []string, index int) (int, error) {
	if name == bypassOptionName {
		return index, nil
	}

	opt, ok := p.reg.nameMap[name]
	if !ok {
		return index, p.unknownLong(name)
	}

	if opt.TakesValue {
		return consumeValue(res, opt, tokens, index)
	}

	res.capture(opt, opt.Name)
	return index, nil
}

// resolveShort resolves a short option token (prefix already stripped). The
// remainder may bundle several single-character names; each is resolved left
// to right. A value-consuming option is legal only in the last position.
func (p *Parser) resolveShort(res *Result, bundle string, tokens []string, index int) (int, error) {
	rest := []rune(bundle)
	for len(rest) > 0 {
		short := rest[0]
		rest = rest[1:]

		opt, ok := p.reg.shortMap[short]
		if !ok {
			return index, newError(KindUnknownOption, string(short), "unknown short option -%c", short)
		}

		if opt.TakesValue {
			if len(rest) > 0 {
				return index, newError(KindOrdering, string(short),
					"short option -%c requires a value and must be last in the bundle -%s", short, bundle)
			}
			return consumeValue(res, opt, tokens, index)
		}

		res.capture(opt, string(short))
	}
	return index, nil
}

// consumeValue captures the token following a value-consuming option and
// returns the index of that token.
func consumeValue(res *Result, opt *Option, tokens []string, index int) (int, error) {
	if index+1 >= len(tokens) {
		return index, newError(KindMissingValue, opt.Name,
			"option --%s requires a value but none was supplied", opt.Name)
	}

	value := tokens[index+1]
	if strings.HasPrefix(value, "-") || strings.HasPrefix(value, "?") {
		return index, newError(KindMissingValue, opt.Name,
			"option --%s is not followed by a value", opt.Name)
	}

	res.capture(opt, value)
	return index + 1, nil
}

// checkRequired verifies that every required option captured at least one
// value and every required parameter has a positional value at its index.
// Options are checked in sorted-name order, parameters in declaration order,
// so the reported failure is deterministic.
func (p *Parser) checkRequired(res *Result) error {
	for _, name := range p.reg.optionNames() {
		opt := p.reg.nameMap[name]
		if opt.Required && len(res.values[opt.Name]) == 0 {
			return newError(KindMissingRequiredOption, opt.Name, "required option --%s is missing", opt.Name)
		}
	}

	for i, param := range p.reg.params {
		if param.Required && i >= len(res.parameterValues) {
			return newError(KindMissingRequiredParameter, param.Name, "required parameter %q is missing", param.Name)
		}
	}

	return nil
}

func (p *Parser) unknownLong(name string) error {
	if suggestion := nameSuggestion(name, p.reg.optionNames()); suggestion != "" {
		return newError(KindUnknownOption, name, "unknown option --%s; did you mean --%s?", name, suggestion)
	}
	return newError(KindUnknownOption, name, "unknown option --%s", name)
}

func optionAfterParameter(tok string) error {
	return newError(KindOrdering, tok,
		"option %s found after a parameter; all options must come before any parameters", tok)
}
