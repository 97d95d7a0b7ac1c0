// Package calculator holds the running state of a keypad session.
//
// A Calculator tracks a current integer value, the most recent digit
// input and an optional standing error message. Every keypad event is fed
// through Update together with the expected line value; when the applied
// value disagrees with that line, a fixed error message is recorded.
//
// Once recorded, the error message is never cleared. A Calculator has a
// single owner and is not safe for concurrent use.
package calculator
