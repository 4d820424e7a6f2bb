package cmdline

// Option declares a named switch. The long name is the canonical identifier
// and is supplied on the command line as --name; Short, when non-zero, is a
// single-character alias supplied as -s (or /s) and may be bundled with other
// short names. Declarations are immutable during parsing: captured values
// live in the Result returned by Parser.Parse.
type Option struct {
	// Name is the long option name. It must be non-empty.
	Name string

	// Short is the optional single-character short name. Zero means none.
	Short rune

	// TakesValue marks the option as value-consuming: the next token in the
	// argument vector supplies its value. Without it, a bare occurrence
	// captures the option's own name (long form) or short character (short
	// form) as the value.
	TakesValue bool

	// Multiple marks the option as legitimately repeatable. Every occurrence
	// appends a value either way; callers reading a single value see the
	// first one.
	Multiple bool

	// Required options must capture at least one value for a parse to
	// succeed.
	Required bool

	// Help is the description shown in usage text.
	Help string

	// Default is a display-only default value shown in usage text. It is
	// never injected into parse results.
	Default string
}

// Parameter declares a positional argument slot. Parameters are resolved by
// declaration order, not by name: the i-th declared parameter corresponds to
// the i-th positional token. Extra positional tokens beyond the declared
// parameters are legal and appended to the positional value sequence.
type Parameter struct {
	// Name identifies the parameter in queries and usage text. It must be
	// non-empty.
	Name string

	// Required parameters must have a positional token at their index for a
	// parse to succeed. Required parameters must be declared before optional
	// ones.
	Required bool

	// Help is the description shown in usage text.
	Help string
}
