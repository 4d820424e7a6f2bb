package cmdline

import "sort"

// Registry owns the declared options and parameters for one command. It has
// two states: declarations added through the fluent Add methods are staged
// and never rejected; the Validate step moves them into the validated maps,
// enforcing name uniqueness and parameter ordering. Validation is triggered
// lazily by the Parser and by every read query, and is idempotent.
type Registry struct {
	stagedOptions    []Option
	stagedParameters []Parameter

	nameMap  map[string]*Option
	shortMap map[rune]*Option
	params   []Parameter

	description string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		nameMap:  make(map[string]*Option),
		shortMap: make(map[rune]*Option),
	}
}

// AddOption stages an option declaration. It never fails; conflicts are
// reported by Validate.
func (r *Registry) AddOption(o Option) *Registry {
	r.stagedOptions = append(r.stagedOptions, o)
	return r
}

// AddParameter stages a parameter declaration. It never fails; conflicts are
// reported by Validate.
func (r *Registry) AddParameter(p Parameter) *Registry {
	r.stagedParameters = append(r.stagedParameters, p)
	return r
}

// SetDescription stores the free-text command description used by help
// renderers.
func (r *Registry) SetDescription(text string) *Registry {
	r.description = text
	return r
}

// Description returns the command description.
func (r *Registry) Description() string {
	return r.description
}

// Validate moves every staged option, then every staged parameter, into the
// validated state, each collection in staging order. Already-validated
// declarations are never reprocessed, so repeated calls are no-ops.
func (r *Registry) Validate() error {
	for len(r.stagedOptions) > 0 {
		o := r.stagedOptions[0]
		r.stagedOptions = r.stagedOptions[1:]
		if err := r.storeOption(o); err != nil {
			return err
		}
	}

	for len(r.stagedParameters) > 0 {
		p := r.stagedParameters[0]
		r.stagedParameters = r.stagedParameters[1:]
		if err := r.storeParameter(p); err != nil {
			return err
		}
	}

	return nil
}

func (r *Registry) storeOption(o Option) error {
	if o.Name == "" {
		return newError(KindInvalidDeclaration, "", "option declared with an empty long name")
	}

	if _, ok := r.nameMap[o.Name]; ok {
		return newError(KindDuplicateName, o.Name, "duplicate option --%s", o.Name)
	}
	if r.parameterIndex(o.Name) >= 0 {
		return newError(KindDuplicateName, o.Name, "option %q is already declared as a parameter", o.Name)
	}

	opt := o
	r.nameMap[opt.Name] = &opt

	if opt.Short != 0 {
		if _, ok := r.shortMap[opt.Short]; ok {
			return newError(KindDuplicateName, string(opt.Short), "duplicate short option -%c", opt.Short)
		}
		r.shortMap[opt.Short] = &opt
	}

	return nil
}

func (r *Registry) storeParameter(p Parameter) error {
	if p.Name == "" {
		return newError(KindInvalidDeclaration, "", "parameter declared with an empty name")
	}

	if r.parameterIndex(p.Name) >= 0 {
		return newError(KindDuplicateName, p.Name, "duplicate parameter %q", p.Name)
	}
	if _, ok := r.nameMap[p.Name]; ok {
		return newError(KindDuplicateName, p.Name, "parameter %q is already declared as an option", p.Name)
	}

	if p.Required {
		for _, prior := range r.params {
			if !prior.Required {
				return newError(KindOrdering, p.Name,
					"required parameters must come before optional ones: %q must come before %q", p.Name, prior.Name)
			}
		}
	}

	r.params = append(r.params, p)
	return nil
}

// parameterIndex returns the declaration index of the named parameter, or -1.
func (r *Registry) parameterIndex(name string) int {
	for i, p := range r.params {
		if p.Name == name {
			return i
		}
	}
	return -1
}

// Options returns the validated options sorted by long name, the order help
// renderers display them in.
func (r *Registry) Options() ([]*Option, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	opts := make([]*Option, 0, len(r.nameMap))
	for _, name := range r.optionNames() {
		opts = append(opts, r.nameMap[name])
	}
	return opts, nil
}

// Option returns the validated option with the given long name.
func (r *Registry) Option(name string) (*Option, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	o, ok := r.nameMap[name]
	if !ok {
		return nil, newError(KindUnknownOption, name, "unknown option --%s", name)
	}
	return o, nil
}

// ShortOption returns the validated option with the given short name.
func (r *Registry) ShortOption(short rune) (*Option, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	o, ok := r.shortMap[short]
	if !ok {
		return nil, newError(KindUnknownOption, string(short), "-%c is not a declared option", short)
	}
	return o, nil
}

// Parameters returns the validated parameters in declaration order.
func (r *Registry) Parameters() ([]Parameter, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	params := make([]Parameter, len(r.params))
	copy(params, r.params)
	return params, nil
}

// MaxNameLength returns the length of the longest validated option or
// parameter name. Help renderers use it to align columns; parsing ignores it.
func (r *Registry) MaxNameLength() (int, error) {
	if err := r.Validate(); err != nil {
		return 0, err
	}
	max := 0
	for name := range r.nameMap {
		if len(name) > max {
			max = len(name)
		}
	}
	for _, p := range r.params {
		if len(p.Name) > max {
			max = len(p.Name)
		}
	}
	return max, nil
}

// optionNames returns the validated long names in sorted order. Callers must
// have validated already.
func (r *Registry) optionNames() []string {
	names := make([]string, 0, len(r.nameMap))
	for name := range r.nameMap {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
