// Package cmdline validates and parses command-line argument vectors against
// a declared set of named options and positional parameters.
//
// A Registry is populated with Option and Parameter declarations through a
// fluent API that never fails; conflicts are detected later by an idempotent
// Validate step, which a Parser triggers automatically. Options are unordered
// and must carry a long name (--name); they may also carry a single-character
// short name (-n, bundleable as -ab). Parameters are ordered values and must
// follow all options in the argument vector.
//
// Parsing never mutates the declarations. Each call to Parser.Parse returns a
// fresh Result holding the captured option values and the positional value
// sequence, so a single Registry can be parsed against any number of argument
// vectors.
//
// All failures are reported as *Error values with a distinguishing Kind.
// Help text rendering lives in the help subpackage, and declarative HCL
// command specs can be loaded with the hclspec subpackage.
package cmdline
