// Package errors provides structured, actionable error values for verdigris.
//
// Every error carries a stable code (e.g. "E020") registered in this package.
// The code maps to:
//   - a category (runtime, composition, theme, config)
//   - a short message
//   - a longer explanation
//
// Codes make errors comparable: two *KitError values with the same code match
// under errors.Is, so packages can export a template value as a sentinel:
//
//	var ErrInvalidColorSpec = errors.New("E020")
//
//	err := errors.New("E020").
//	    WithDetail(`"not-a-color" is neither a hex color nor a known name`).
//	    WithSuggestion(`Use "#rrggbb", "#rgb" or a palette name`)
//
//	stderrors.Is(err, ErrInvalidColorSpec) // true
//
// LogAttrs flattens an error into slog key/value pairs, so the runtime
// logs isolated errors as:
//
//	level=ERROR msg="Invalid color specification" code=E020 category=theme color=not-a-color hint="Use #rgb, ..."
package errors
