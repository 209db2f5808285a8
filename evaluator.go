package cliutil

import (
	"fmt"
	"slices"
	"strings"

	"github.com/mfridman/cliutil/pkg/suggest"
)

// OptionPrefix marks a token as an option.
const OptionPrefix = "-"

// Evaluator is implemented by any component that processes command-line options.
//
// Evaluate receives the raw arguments, excluding the program name. It updates the values
// of every option it manages, removes each token it consumed (variations and any values
// that follow them) and returns the remaining tokens in their original relative order. The
// only expected failure is an [ErrInvalidArguments] error.
//
// Evaluate is meant to run once per process, before any concurrent work starts. Option
// values are not synchronized.
type Evaluator interface {
	Evaluate(args []string) ([]string, error)
}

// EvaluatorFunc adapts a plain function to the [Evaluator] interface.
type EvaluatorFunc func(args []string) ([]string, error)

// Evaluate calls f(args).
func (f EvaluatorFunc) Evaluate(args []string) ([]string, error) {
	return f(args)
}

// Chain returns an evaluator that runs each evaluator in turn, handing every one the
// arguments left by the previous. It stops at the first error.
func Chain(evaluators ...Evaluator) Evaluator {
	return EvaluatorFunc(func(args []string) ([]string, error) {
		var err error
		for _, e := range evaluators {
			if args, err = e.Evaluate(args); err != nil {
				return nil, err
			}
		}
		return args, nil
	})
}

// ProvidedOption returns the variation that was supplied in args, if any.
//
// It intersects the distinct tokens in args with variations. An empty intersection
// reports ok == false. A single element is returned as the match, wherever it appears and
// however often it is repeated. More than one element means distinct spellings of the same
// option were supplied together (for example -v and --verbose) and results in an
// [ErrInvalidArguments] error; no precedence rule applies.
func ProvidedOption(args []string, variations Variations) (matched string, ok bool, err error) {
	var found []string
	for _, arg := range args {
		if variations.Contains(arg) && !slices.Contains(found, arg) {
			found = append(found, arg)
		}
	}
	switch len(found) {
	case 0:
		return "", false, nil
	case 1:
		return found[0], true, nil
	default:
		slices.Sort(found)
		return "", false, InvalidArguments(
			fmt.Sprintf("too many variations of the option %s were provided: %s",
				variations, strings.Join(found, ", ")),
		)
	}
}

// IsOption reports whether arg looks like an option token.
func IsOption(arg string) bool {
	return strings.HasPrefix(arg, OptionPrefix)
}

// RemoveAllOptions removes every token that starts with [OptionPrefix], known option or
// not, keeping the relative order of the rest. The backing array of args is reused.
func RemoveAllOptions(args []string) []string {
	return slices.DeleteFunc(args, IsOption)
}

// Remove removes every occurrence of each of the given tokens from args and returns the
// reduced list. The backing array of args is reused.
func Remove(args []string, tokens ...string) []string {
	return slices.DeleteFunc(args, func(arg string) bool {
		return slices.Contains(tokens, arg)
	})
}

// ValueAfter returns the token following the first occurrence of variation in args. It
// fails with [ErrInvalidArguments] if variation is absent, if it is the last token or if
// the next token is itself an option.
func ValueAfter(args []string, variation string) (string, error) {
	i := slices.Index(args, variation)
	if i < 0 {
		return "", InvalidArguments(fmt.Sprintf("option %s was not provided", variation))
	}
	if i+1 >= len(args) {
		return "", InvalidArguments(fmt.Sprintf("option %s requires a value", variation))
	}
	value := args[i+1]
	if IsOption(value) {
		return "", InvalidArguments(
			fmt.Sprintf("option %s requires a value, found option %q instead", variation, value),
		)
	}
	return value, nil
}

// RejectUnknownOptions fails with [ErrInvalidArguments] if args contains an option token
// that is not one of the known variations. Hints name each unknown token and suggest
// similar known spellings.
func RejectUnknownOptions(args []string, known ...Variations) error {
	var all []string
	for _, v := range known {
		all = append(all, v.Sorted()...)
	}
	var hints []string
	var seen []string
	for _, arg := range args {
		if !IsOption(arg) || slices.Contains(all, arg) || slices.Contains(seen, arg) {
			continue
		}
		seen = append(seen, arg)
		hint := fmt.Sprintf("unknown option %q", arg)
		if similar := suggest.FindSimilar(arg, all, 3); len(similar) > 0 {
			hint += ", did you mean " + strings.Join(similar, " or ") + "?"
		}
		hints = append(hints, hint)
	}
	if len(hints) > 0 {
		return InvalidArguments(hints...)
	}
	return nil
}
