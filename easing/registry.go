package easing

import "fmt"

// Registry is an ordered table of named easing functions. The zero value is
// an empty registry, ready to use. A Registry is not safe for concurrent
// registration; lookups may run concurrently once it is filled.
type Registry struct {
	entries []entry
	index   map[string]int
}

// Penner creates a registry holding all built-in equations in table order.
func Penner() *Registry {
	r := &Registry{}
	for _, e := range equations {
		r.mustRegister(e.name, e.fn)
	}
	return r
}

// Register adds a function under a name. Empty names, nil functions and names
// already taken are rejected.
func (r *Registry) Register(name string, f Func) error {
	if name == "" || f == nil {
		return ErrInvalidEntry
	}
	if r.index == nil {
		r.index = make(map[string]int)
	}
	if _, ok := r.index[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateName, name)
	}
	r.index[name] = len(r.entries)
	r.entries = append(r.entries, entry{name: name, fn: f})
	tracer().Debugf("registered easing function %q", name)
	return nil
}

func (r *Registry) mustRegister(name string, f Func) {
	if err := r.Register(name, f); err != nil {
		panic(err)
	}
}

// Lookup resolves a name to its function.
func (r *Registry) Lookup(name string) (Func, error) {
	if i, ok := r.index[name]; ok {
		return r.entries[i].fn, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFunction, name)
}

// Names returns the registered names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.entries))
	for i, e := range r.entries {
		names[i] = e.name
	}
	return names
}

// Len is the number of registered functions.
func (r *Registry) Len() int {
	return len(r.entries)
}
