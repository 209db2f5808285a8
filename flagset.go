package cliutil

import (
	"errors"
	"flag"

	"github.com/mfridman/xflag"
	"github.com/spf13/pflag"
)

// FlagsFunc is a helper function that creates a new [flag.FlagSet] and applies the given
// function to it. Example usage:
//
//	fset := cliutil.FlagsFunc(func(f *flag.FlagSet) {
//	    f.Bool("verbose", false, "enable verbose output")
//	    f.String("output", "", "output file")
//	})
func FlagsFunc(fn func(*flag.FlagSet)) *flag.FlagSet {
	fset := flag.NewFlagSet("", flag.ContinueOnError)
	fn(fset)
	return fset
}

// FlagSetEvaluator adapts a standard library [flag.FlagSet] to the [Evaluator] interface.
// Flags may appear anywhere among the operands.
type FlagSetEvaluator struct {
	Flags *flag.FlagSet
}

// Evaluate implements [Evaluator]. Parse failures are reported as [ErrInvalidArguments];
// a help request is reported as [ErrShowHelp] wrapping [flag.ErrHelp].
func (e *FlagSetEvaluator) Evaluate(args []string) ([]string, error) {
	if e.Flags == nil {
		return nil, errors.New("internal error: flag set is nil")
	}
	if err := xflag.ParseToEnd(e.Flags, args); err != nil {
		return nil, flagError(err, "-h")
	}
	return e.Flags.Args(), nil
}

// PFlagsFunc is the [pflag.FlagSet] counterpart of [FlagsFunc].
func PFlagsFunc(fn func(*pflag.FlagSet)) *pflag.FlagSet {
	fset := pflag.NewFlagSet("", pflag.ContinueOnError)
	fn(fset)
	return fset
}

// PFlagSetEvaluator adapts a [pflag.FlagSet] to the [Evaluator] interface, for tools that
// want GNU style -v/--verbose spellings.
type PFlagSetEvaluator struct {
	Flags *pflag.FlagSet
}

// Evaluate implements [Evaluator] with the same error mapping as [FlagSetEvaluator].
func (e *PFlagSetEvaluator) Evaluate(args []string) ([]string, error) {
	if e.Flags == nil {
		return nil, errors.New("internal error: flag set is nil")
	}
	if err := e.Flags.Parse(args); err != nil {
		return nil, flagError(err, "--help")
	}
	return e.Flags.Args(), nil
}

func flagError(err error, helpFlag string) error {
	if errors.Is(err, flag.ErrHelp) || errors.Is(err, pflag.ErrHelp) {
		return NewError(ErrShowHelp, err)
	}
	return NewError(ErrInvalidArguments, err, "run with "+helpFlag+" to list the available options")
}
