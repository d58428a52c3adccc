// Package normalization maps loosely typed configuration strings onto typed enums.
package normalization

import (
	"fmt"
	"sort"
	"strings"
)

// Normalizer converts raw strings into values of an enum type T.
// Lookups are case-insensitive and ignore surrounding whitespace.
type Normalizer[T comparable] struct {
	values   map[string]T
	fallback T
	keys     []string
}

// NewNormalizer builds a normalizer from a table of accepted spellings.
// Unknown input resolves to fallback.
func NewNormalizer[T comparable](values map[string]T, fallback T) *Normalizer[T] {
	n := &Normalizer[T]{
		values:   make(map[string]T, len(values)),
		fallback: fallback,
		keys:     make([]string, 0, len(values)),
	}
	for k, v := range values {
		key := clean(k)
		n.values[key] = v
		n.keys = append(n.keys, key)
	}
	sort.Strings(n.keys)
	return n
}

// Normalize returns the enum value for raw, or the fallback.
func (n *Normalizer[T]) Normalize(raw string) T {
	if v, ok := n.values[clean(raw)]; ok {
		return v
	}
	return n.fallback
}

// Lookup returns the enum value for raw and reports an error listing the
// accepted spellings when raw is unknown.
func (n *Normalizer[T]) Lookup(raw string) (T, error) {
	if v, ok := n.values[clean(raw)]; ok {
		return v, nil
	}
	var zero T
	return zero, fmt.Errorf("invalid value %q, valid options: %v", raw, n.keys)
}

// Result is the outcome of NormalizeField.
type Result[T comparable] struct {
	Value   T
	Warning string
}

// NormalizeField normalizes raw for the named config field and describes any
// rewrite (case folding, unknown value replaced by the fallback) as a warning.
// Empty input silently takes the fallback.
func (n *Normalizer[T]) NormalizeField(field, raw string) Result[T] {
	if strings.TrimSpace(raw) == "" {
		return Result[T]{Value: n.fallback}
	}
	v, err := n.Lookup(raw)
	if err != nil {
		return Result[T]{
			Value:   n.fallback,
			Warning: fmt.Sprintf("unknown %s '%s', defaulting to %v", field, raw, n.fallback),
		}
	}
	if c := clean(raw); c != raw {
		return Result[T]{Value: v, Warning: fmt.Sprintf("normalized %s from '%s' to '%s'", field, raw, c)}
	}
	return Result[T]{Value: v}
}

// ValidKeys returns the accepted spellings in sorted order.
func (n *Normalizer[T]) ValidKeys() []string {
	out := make([]string, len(n.keys))
	copy(out, n.keys)
	return out
}

func clean(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
