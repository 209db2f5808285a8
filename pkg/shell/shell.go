// Package shell runs shell command lines and captures their output.
package shell

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"time"
)

var supportedShells = []string{"bash", "zsh", "sh"}

// waitDelay bounds how long output is still collected after ctx kills the shell, in case
// a child process keeps the pipe open.
const waitDelay = time.Second

// ErrNoShell is returned when none of the supported shells is found in PATH.
var ErrNoShell = errors.New("no supported shell found")

func lookupShell() (string, error) {
	for _, shell := range supportedShells {
		if path, err := exec.LookPath(shell); err == nil {
			return path, nil
		}
	}
	return "", ErrNoShell
}

// Execute runs command with "<shell> -c" and returns its combined stdout and stderr.
//
// When wait is true a non-zero exit status is returned as an error alongside whatever
// output the command produced. When wait is false Execute returns as soon as the output
// pipe is closed, without waiting for the process to exit; its exit status is ignored and
// the process is reaped in the background. ctx bounds the process lifetime either way.
func Execute(ctx context.Context, command string, wait bool) (string, error) {
	shell, err := lookupShell()
	if err != nil {
		return "", fmt.Errorf("cannot execute command %q: %w", command, err)
	}

	cmd := exec.CommandContext(ctx, shell, "-c", command)
	cmd.WaitDelay = waitDelay
	if !wait {
		return readUntilClosed(cmd, command)
	}

	var output bytes.Buffer
	cmd.Stdout = &output
	cmd.Stderr = &output
	if err := cmd.Run(); err != nil {
		return output.String(), fmt.Errorf("error running command %q: %w", command, err)
	}
	return output.String(), nil
}

// readUntilClosed starts cmd with stdout and stderr on one pipe and reads it to EOF.
func readUntilClosed(cmd *exec.Cmd, command string) (string, error) {
	pipe, err := cmd.StdoutPipe()
	if err != nil {
		return "", fmt.Errorf("error starting command %q: %w", command, err)
	}
	cmd.Stderr = cmd.Stdout
	if err := cmd.Start(); err != nil {
		return "", fmt.Errorf("error starting command %q: %w", command, err)
	}
	output, err := io.ReadAll(pipe)
	// Wait closes the pipe, so it only runs once reading is done.
	go func() { _ = cmd.Wait() }()
	if err != nil {
		return string(output), fmt.Errorf("error reading output of command %q: %w", command, err)
	}
	return string(output), nil
}
