package cliutil

import (
	"fmt"
	"slices"
)

// OptionSet is a ready-made [Evaluator] for the common shapes of options: switches that
// take no value and options followed by exactly one value token.
//
//	verbose := cliutil.NewOption(false, "-v", "--verbose")
//	output := cliutil.NewNullableOption[string]("-o", "--output")
//	set := new(cliutil.OptionSet).Flag(verbose).StringPtr(output)
//	operands, err := set.Evaluate(os.Args[1:])
//
// Bindings are evaluated in the order they were added.
type OptionSet struct {
	bindings []binding
	strict   bool
}

type binding struct {
	variations Variations
	takesValue bool
	apply      func(value string) error
}

// Flag binds a switch. The option is set to true when any of its variations is present.
func (s *OptionSet) Flag(o *Option[bool]) *OptionSet {
	return s.Func(o.variations, false, func(string) error {
		o.Set(true)
		return nil
	})
}

// String binds an option that takes a value.
func (s *OptionSet) String(o *Option[string]) *OptionSet {
	return s.Func(o.variations, true, func(value string) error {
		o.Set(value)
		return nil
	})
}

// StringPtr binds an option that takes a value and is nil when absent.
func (s *OptionSet) StringPtr(o *Option[*string]) *OptionSet {
	return s.Func(o.variations, true, func(value string) error {
		o.Set(&value)
		return nil
	})
}

// Func binds arbitrary handling to a set of variations. fn is called once when the option
// is present, with the following value token if takesValue is set, or an empty string
// otherwise. An error returned by fn aborts evaluation; return [InvalidArguments] to keep
// the failure user-facing.
func (s *OptionSet) Func(variations Variations, takesValue bool, fn func(value string) error) *OptionSet {
	s.bindings = append(s.bindings, binding{
		variations: variations.clone(),
		takesValue: takesValue,
		apply:      fn,
	})
	return s
}

// Strict makes Evaluate reject option tokens that no binding declares.
func (s *OptionSet) Strict() *OptionSet {
	s.strict = true
	return s
}

// Evaluate implements [Evaluator].
//
// A switch may be repeated with the same spelling. An option that takes a value must
// appear at most once; a repeat fails with [ErrInvalidArguments]. Only the tokens a binding
// consumed are removed, so an operand equal to a value is kept.
func (s *OptionSet) Evaluate(args []string) ([]string, error) {
	if s.strict {
		known := make([]Variations, 0, len(s.bindings))
		for _, b := range s.bindings {
			known = append(known, b.variations)
		}
		if err := RejectUnknownOptions(args, known...); err != nil {
			return nil, err
		}
	}
	for _, b := range s.bindings {
		matched, ok, err := ProvidedOption(args, b.variations)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		if !b.takesValue {
			if err := b.apply(""); err != nil {
				return nil, err
			}
			args = Remove(args, matched)
			continue
		}
		if n := count(args, matched); n > 1 {
			return nil, InvalidArguments(
				fmt.Sprintf("option %s takes a single value but was provided %d times", matched, n),
			)
		}
		value, err := ValueAfter(args, matched)
		if err != nil {
			return nil, err
		}
		if err := b.apply(value); err != nil {
			return nil, err
		}
		// Remove by position so an operand equal to the value survives.
		i := slices.Index(args, matched)
		args = slices.Delete(args, i, i+2)
	}
	return args, nil
}

func count(args []string, token string) int {
	var n int
	for _, arg := range args {
		if arg == token {
			n++
		}
	}
	return n
}
