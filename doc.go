// Package cliutil provides small building blocks for command-line applications: declared
// options with multiple spellings ("variations"), an evaluator contract for scanning raw
// arguments, and helpers that detect, validate and strip option tokens.
//
// A host application declares its options once at startup, hands the raw argument vector
// (excluding the program name) to a single [Evaluator], and continues with the operands
// that remain. Detection is strict: supplying two distinct variations of the same option,
// for example both -v and --verbose, is rejected with an [ErrInvalidArguments] error
// rather than resolved by precedence.
//
// Supporting packages live under pkg/: console (categorized output), fileutil (text file
// helpers), shell (subprocess runner), suggest and textutil.
package cliutil
