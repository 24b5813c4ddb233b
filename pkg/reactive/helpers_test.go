package reactive

import (
	"io"
	"log/slog"
)

// newTestRuntime returns a runtime that collects isolated errors instead of
// logging them.
func newTestRuntime(opts ...Option) (*Runtime, *[]error) {
	var errs []error
	base := []Option{
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		WithErrorHandler(func(err error) { errs = append(errs, err) }),
	}
	return NewRuntime(append(base, opts...)...), &errs
}

// expectPanic runs fn and returns the recovered value, or nil.
func expectPanic(fn func()) (recovered any) {
	defer func() {
		recovered = recover()
	}()
	fn()
	return nil
}
