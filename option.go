package cliutil

import (
	"slices"
	"strings"
)

// Variations is the set of interchangeable spellings that trigger one logical option, for
// example {-v, --verbose}. Order is irrelevant and duplicates collapse.
//
// Variation sets of different options in one application must not overlap. This is a
// convention for callers and is not checked.
type Variations map[string]struct{}

// NewVariations returns a set containing the given spellings.
func NewVariations(variations ...string) Variations {
	v := make(Variations, len(variations))
	for _, s := range variations {
		v[s] = struct{}{}
	}
	return v
}

// Contains reports whether s is one of the variations.
func (v Variations) Contains(s string) bool {
	_, ok := v[s]
	return ok
}

// Len returns the number of distinct variations.
func (v Variations) Len() int {
	return len(v)
}

// Sorted returns the variations in lexical order.
func (v Variations) Sorted() []string {
	out := make([]string, 0, len(v))
	for s := range v {
		out = append(out, s)
	}
	slices.Sort(out)
	return out
}

func (v Variations) String() string {
	return "[" + strings.Join(v.Sorted(), ", ") + "]"
}

func (v Variations) clone() Variations {
	out := make(Variations, len(v))
	for s := range v {
		out[s] = struct{}{}
	}
	return out
}

// Option pairs a fixed set of variations with a mutable value the host application reads
// after evaluation. The initial value is the "not provided" default.
//
// An option declared with no variations is legal but can never be matched.
type Option[V any] struct {
	variations Variations
	value      V
}

// NewOption declares an option with an initial value and its variations.
//
//	verbose := cliutil.NewOption(false, "-v", "--verbose")
func NewOption[V any](value V, variations ...string) *Option[V] {
	return &Option[V]{
		variations: NewVariations(variations...),
		value:      value,
	}
}

// NewNullableOption declares an option whose absent state is nil.
//
//	output := cliutil.NewNullableOption[string]("-o", "--output")
func NewNullableOption[V any](variations ...string) *Option[*V] {
	return NewOption[*V](nil, variations...)
}

// Value returns the option's current value.
func (o *Option[V]) Value() V {
	return o.value
}

// Set replaces the option's current value.
func (o *Option[V]) Set(value V) {
	o.value = value
}

// Variations returns a copy of the option's variations. Modifying the result does not
// affect the option.
func (o *Option[V]) Variations() Variations {
	return o.variations.clone()
}

// Provided is shorthand for [ProvidedOption] with this option's variations.
func (o *Option[V]) Provided(args []string) (string, bool, error) {
	return ProvidedOption(args, o.variations)
}
