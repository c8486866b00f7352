package api

import (
	"net/url"
	"slices"
	"strings"
)

// Multi-value arguments (shard lists, census modes/scales) join their values
// with a literal plus on the wire.
const ARG_VALUE_SEPARATOR = "+"

// An ordered-unique mapping of argument name to argument values. Setting an
// existing name overwrites its values in place, keeping the original position.
// Values are kept as parts so Encode can escape each one on its own: the plus
// between parts is the wire separator, a plus inside a part is user text.
type Args struct {
	names  []string
	values map[string][]string
}

func NewArgs() *Args {
	return &Args{values: make(map[string][]string)}
}

// Sets name to the given values, overwriting any previous ones.
func (a *Args) Set(name string, values ...string) {
	if _, ok := a.values[name]; !ok {
		a.names = append(a.names, name)
	}

	a.values[name] = slices.Clone(values)
}

// The current values of name joined with "+", or "" when unset.
func (a *Args) Get(name string) string {
	return strings.Join(a.values[name], ARG_VALUE_SEPARATOR)
}

// Adds the given values onto the existing ones of name, or sets them if absent.
func (a *Args) Append(name string, values ...string) {
	existing, ok := a.values[name]
	if !ok || len(existing) == 0 {
		a.Set(name, values...)
		return
	}

	a.values[name] = append(existing, values...)
}

func (a *Args) Remove(name string) {
	if _, ok := a.values[name]; !ok {
		return
	}

	delete(a.values, name)
	a.names = slices.DeleteFunc(a.names, func(n string) bool { return n == name })
}

// All argument names in insertion order.
func (a *Args) Names() []string {
	return slices.Clone(a.names)
}

// Serializes the arguments into a URL-encoded form body, preserving insertion
// order. Each value part is escaped on its own; only the separator between
// parts of a multi-value argument stays a literal plus.
func (a *Args) Encode() string {
	var sb strings.Builder

	for i, name := range a.names {
		if i > 0 {
			sb.WriteByte('&')
		}

		sb.WriteString(url.QueryEscape(name))
		sb.WriteByte('=')

		for j, v := range a.values[name] {
			if j > 0 {
				sb.WriteString(ARG_VALUE_SEPARATOR)
			}

			sb.WriteString(url.QueryEscape(v))
		}
	}

	return sb.String()
}
