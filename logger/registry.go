package logger

import "strings"

// Registry resolves enumeration members by case-insensitive name.
// Level and Color share it instead of scanning their own tables.
type Registry[T comparable] struct {
	kind    string
	members []T
	names   []string
	byName  map[string]T
}

// NewRegistry builds a registry over members in declaration order.
// name must return the canonical upper-case name of a member.
func NewRegistry[T comparable](kind string, members []T, name func(T) string) *Registry[T] {
	r := &Registry[T]{
		kind:    kind,
		members: append([]T(nil), members...),
		names:   make([]string, 0, len(members)),
		byName:  make(map[string]T, len(members)),
	}
	for _, m := range members {
		n := strings.ToUpper(name(m))
		r.names = append(r.names, n)
		r.byName[n] = m
	}
	return r
}

// Lookup returns the member registered under name, ignoring case and
// surrounding whitespace. Unknown names yield a *NameError.
func (r *Registry[T]) Lookup(name string) (T, error) {
	if m, ok := r.byName[strings.ToUpper(strings.TrimSpace(name))]; ok {
		return m, nil
	}
	var zero T
	return zero, &NameError{Kind: r.kind, Name: name}
}

// Valid reports whether name resolves to a member.
func (r *Registry[T]) Valid(name string) bool {
	_, err := r.Lookup(name)
	return err == nil
}

// Members returns the members in declaration order.
func (r *Registry[T]) Members() []T {
	return append([]T(nil), r.members...)
}

// Names returns the canonical names in declaration order.
func (r *Registry[T]) Names() []string {
	return append([]string(nil), r.names...)
}
