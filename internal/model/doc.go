// Package model defines the domain types and value objects for the
// linecalc CLI.
//
// This package contains pure data structures with no external dependencies.
// Operators are a closed set of four arithmetic functions, and events are
// the closed set of keypad actions a user can take. Nothing here is
// persisted; every value is constructed per use-site and consumed.
//
// The package also defines exit codes (ExitCode) and a custom error type
// (CLIError) that carries exit codes for proper OS process exit handling.
package model
