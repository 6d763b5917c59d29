package errs

import (
	cr "github.com/cockroachdb/errors"
)

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

// Mark attaches markErr to err so that errors.Is(err, markErr) holds while the
// original cause chain stays intact for errors.As and logging.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	// cr.Mark alone is only visible to cockroachdb's errors.Is; the extra
	// wrapper puts markErr in the stdlib Unwrap chain without changing the
	// message or the cause chain.
	return &markedError{cause: cr.Mark(err, markErr), mark: markErr}
}

type markedError struct {
	cause error
	mark  error
}

func (e *markedError) Error() string   { return e.cause.Error() }
func (e *markedError) Unwrap() []error { return []error{e.cause, e.mark} }
