package reactive

import "github.com/verdigris-dev/verdigris/internal/errors"

// Sentinel errors, matched with errors.Is.
var (
	// ErrEffectExecution wraps an error returned or panicked by an effect body.
	ErrEffectExecution error = errors.New("E040")

	// ErrReactiveLoop is reported when a flush exceeds its pass budget.
	ErrReactiveLoop error = errors.New("E006")

	// ErrScopeDisposed is the panic value for reads through a disposed scope.
	ErrScopeDisposed error = errors.New("E005")

	// ErrForeignTracker is the panic value for reads with another runtime's tracker.
	ErrForeignTracker error = errors.New("E001")
)
