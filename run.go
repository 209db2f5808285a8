package cliutil

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mfridman/cliutil/pkg/console"
)

// App is a host application: one evaluator for its options and the logic that runs with
// the remaining operands.
type App struct {
	// Name identifies the application in error messages.
	Name string

	// Evaluator processes the options. It may be nil, in which case every argument is
	// passed to Exec as an operand.
	Evaluator Evaluator

	// Exec runs the application with the evaluated [State].
	Exec func(ctx context.Context, s *State) error
}

// RunOptions specifies options for running an application.
type RunOptions struct {
	// Stdin, Stdout, and Stderr are the standard input, output, and error streams. If any of
	// these are nil, the defaults are used ([os.Stdin], [os.Stdout], and [os.Stderr],
	// respectively).
	Stdin          io.Reader
	Stdout, Stderr io.Writer

	// Logger receives error reports. If nil, a [console.Console] writing to Stderr is used.
	Logger console.Logger
}

// Run evaluates args once, typically os.Args[1:], and then executes the application with
// the remaining operands.
//
// Errors from evaluation or from Exec are reported to the logger (the error followed by
// its hints) and returned. Exec does not run when evaluation fails. The options parameter
// may be nil.
func Run(ctx context.Context, app *App, args []string, options *RunOptions) error {
	if app == nil {
		return errors.New("failed to run: app is nil")
	}
	if app.Exec == nil {
		return fmt.Errorf("app %q has no execution function", app.Name)
	}
	options = checkAndSetRunOptions(options)

	operands := args
	if app.Evaluator != nil {
		var err error
		if operands, err = app.Evaluator.Evaluate(args); err != nil {
			ReportError(options.Logger, err)
			return err
		}
	}

	state := &State{
		Args:   operands,
		Stdin:  options.Stdin,
		Stdout: options.Stdout,
		Stderr: options.Stderr,
		Logger: options.Logger,
	}
	if err := app.Exec(ctx, state); err != nil {
		ReportError(options.Logger, err)
		return err
	}
	return nil
}

// ReportError writes err to l in the [console.Error] category, followed by one
// [console.Hint] line per hint it carries. Help requests are not reported.
func ReportError(l console.Logger, err error) {
	if l == nil || err == nil || errors.Is(err, ErrShowHelp) {
		return
	}
	hints := Hints(err)
	if cliErr, ok := err.(*Error); ok && cliErr.err == nil {
		// The hints are printed below, keep the headline short.
		l.Write(cliErr.code.String(), console.Error)
	} else {
		l.Write(err.Error(), console.Error)
	}
	for _, hint := range hints {
		l.Write(hint, console.Hint)
	}
}

func checkAndSetRunOptions(opt *RunOptions) *RunOptions {
	if opt == nil {
		opt = &RunOptions{}
	}
	if opt.Stdin == nil {
		opt.Stdin = os.Stdin
	}
	if opt.Stdout == nil {
		opt.Stdout = os.Stdout
	}
	if opt.Stderr == nil {
		opt.Stderr = os.Stderr
	}
	if opt.Logger == nil {
		opt.Logger = console.New(opt.Stderr)
	}
	return opt
}
