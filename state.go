package cliutil

import (
	"io"

	"github.com/mfridman/cliutil/pkg/console"
)

// State is handed to [App.Exec] once options have been evaluated.
type State struct {
	// Args contains the operands left after option evaluation.
	Args []string

	// Standard I/O streams.
	Stdin          io.Reader
	Stdout, Stderr io.Writer

	// Logger is the console sink the application was run with.
	Logger console.Logger
}
