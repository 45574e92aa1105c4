package errs

import (
	cr "github.com/cockroachdb/errors"
)

// Thin facade over cockroachdb/errors so the rest of the codebase never
// imports it directly.

func New(msg string) error {
	return cr.New(msg)
}

func Newf(format string, args ...any) error {
	return cr.Newf(format, args...)
}

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return cr.Wrapf(err, format, args...)
}

// Mark attaches markErr to err so errors.Is(err, markErr) holds for both
// the standard library and cockroachdb matchers. The join keeps err as
// the primary cause and puts the sentinel in the unwrap chain; cr.Mark
// marks alone are invisible to stdlib errors.Is.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(cr.Join(err, markErr), markErr)
}
