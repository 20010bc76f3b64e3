// Package cli holds CLI-facing concerns: an error type distinct from
// report.Diagnostic for failures that happen around a compile (bad
// flags, unreadable files, cache I/O) rather than during one, and
// terminal-aware diagnostic printing.
package cli

import "fmt"

// Error is a CLI-facing error carrying an exit code and a short title,
// adapted from internal/server/api/error's Title/Detail/Status shape
// with the HTTP status replaced by a process exit code.
type Error struct {
	ExitCode int
	Title    string
	Detail   string
}

func (e Error) Error() string {
	if e.Detail == "" {
		return e.Title
	}
	return fmt.Sprintf("%s: %s", e.Title, e.Detail)
}

func ErrUsage(detail string) Error {
	return Error{ExitCode: 2, Title: "usage error", Detail: detail}
}

func ErrIO(detail string) Error {
	return Error{ExitCode: 3, Title: "I/O error", Detail: detail}
}

func ErrCache(detail string) Error {
	return Error{ExitCode: 4, Title: "cache error", Detail: detail}
}

// WrapError normalizes any error into a CLI Error: an Error is returned
// unchanged, nil gives the zero Error, and any other error gets the
// generic exit code of 1.
func WrapError(err error) Error {
	if err == nil {
		return Error{}
	}
	if ce, ok := err.(Error); ok {
		return ce
	}
	return Error{ExitCode: 1, Title: "error", Detail: err.Error()}
}
