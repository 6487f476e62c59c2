// Package flagvalue provides flag.Value implementations.
package flagvalue

import "flag"

// Getter is a constraint satisfied by pointers to types
// which implement flag.Getter.
type Getter[T any] interface {
	*T
	flag.Getter
}

// String is a flag.Getter for a plain string.
// Use it with [ListOf] to accept a repeated string flag.
//
//	var skip []flagvalue.String
//	flag.Var(flagvalue.ListOf(&skip), "skip", ...)
type String string

var _ flag.Getter = (*String)(nil)

// Get returns the string.
func (s *String) Get() any { return string(*s) }

// String returns the string.
func (s *String) String() string { return string(*s) }

// Set records the flag argument.
func (s *String) Set(v string) error {
	*s = String(v)
	return nil
}

// Strings converts a list of String values to plain strings.
func Strings(vs []String) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = string(v)
	}
	return out
}
