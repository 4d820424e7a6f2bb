package cmdline

// Result holds everything a single Parse call captured: option values keyed
// by long name and the ordered positional value sequence. It is read-only
// after Parse returns; queries resolve names through the registry the parse
// ran against.
type Result struct {
	reg             *Registry
	values          map[string][]string
	parameterValues []string
}

func (r *Result) capture(opt *Option, value string) {
	r.values[opt.Name] = append(r.values[opt.Name], value)
}

// ParameterValues returns the positional values in the order they were
// supplied. The slice may be longer than the declared parameter list when
// extra positional tokens were given.
func (r *Result) ParameterValues() []string {
	vals := make([]string, len(r.parameterValues))
	copy(vals, r.parameterValues)
	return vals
}

// Has reports whether the option or parameter with the given name captured a
// value. Options are checked first; otherwise the name is matched against
// the declared parameters and their positional slot. A name matching neither
// fails with KindNameNotFound.
func (r *Result) Has(name string) (bool, error) {
	_, present, err := r.Value(name)
	return present, err
}

// HasShort reports whether the option with the given short name captured any
// value. An undeclared short name fails with KindUnknownOption.
func (r *Result) HasShort(short rune) (bool, error) {
	opt, ok := r.reg.shortMap[short]
	if !ok {
		return false, newError(KindUnknownOption, string(short), "-%c is not a declared option", short)
	}
	return len(r.values[opt.Name]) > 0, nil
}

// Value returns the first captured value for the option or parameter with
// the given name. The boolean reports presence: a declared but unsupplied
// name yields ("", false, nil).
func (r *Result) Value(name string) (string, bool, error) {
	if opt, ok := r.reg.nameMap[name]; ok {
		vals := r.values[opt.Name]
		if len(vals) == 0 {
			return "", false, nil
		}
		return vals[0], true, nil
	}

	found := false
	for i, p := range r.reg.params {
		if p.Name != name {
			continue
		}
		found = true
		if i < len(r.parameterValues) {
			return r.parameterValues[i], true, nil
		}
	}

	if !found {
		return "", false, newError(KindNameNotFound, name, "no option or parameter named %q", name)
	}
	return "", false, nil
}

// ValueShort returns the first captured value for the option with the given
// short name. An undeclared short name fails with KindUnknownOption.
func (r *Result) ValueShort(short rune) (string, bool, error) {
	opt, ok := r.reg.shortMap[short]
	if !ok {
		return "", false, newError(KindUnknownOption, string(short), "-%c is not a declared option", short)
	}
	vals := r.values[opt.Name]
	if len(vals) == 0 {
		return "", false, nil
	}
	return vals[0], true, nil
}

// Values returns every captured value for the option with the given name, or
// a single-element (or empty) slice for a parameter. The slice is never nil
// for a declared name, but may be empty.
func (r *Result) Values(name string) ([]string, error) {
	if opt, ok := r.reg.nameMap[name]; ok {
		vals := make([]string, len(r.values[opt.Name]))
		copy(vals, r.values[opt.Name])
		return vals, nil
	}

	for i, p := range r.reg.params {
		if p.Name != name {
			continue
		}
		if i < len(r.parameterValues) {
			return []string{r.parameterValues[i]}, nil
		}
		return []string{}, nil
	}

	return nil, newError(KindNameNotFound, name, "no option or parameter named %q", name)
}

// ValuesShort returns every captured value for the option with the given
// short name. An undeclared short name fails with KindUnknownOption.
func (r *Result) ValuesShort(short rune) ([]string, error) {
	opt, ok := r.reg.shortMap[short]
	if !ok {
		return nil, newError(KindUnknownOption, string(short), "-%c is not a declared option", short)
	}
	vals := make([]string, len(r.values[opt.Name]))
	copy(vals, r.values[opt.Name])
	return vals, nil
}
