package errors

import (
	"fmt"
	"sort"
)

// Category represents the type of error.
type Category string

const (
	CategoryRuntime     Category = "runtime"
	CategoryComposition Category = "composition"
	CategoryTheme       Category = "theme"
	CategoryConfig      Category = "config"
)

// KitError is a structured error with a registered code and optional context.
type KitError struct {
	// Code is a unique error identifier (e.g., "E020").
	Code string

	// Category is the error type (runtime, composition, etc.).
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// Fields carries the operands of the failed operation
	// (slot name, component kind, color text, ...).
	Fields map[string]any

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *KitError) Error() string {
	msg := e.Message
	if e.Code != "" {
		msg = fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Wrapped != nil {
		msg += ": " + e.Wrapped.Error()
	}
	return msg
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *KitError) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target is a KitError with the same code.
func (e *KitError) Is(target error) bool {
	t, ok := target.(*KitError)
	if !ok || t.Code == "" {
		return false
	}
	return e.Code == t.Code
}

// WithDetail adds a detailed explanation to the error.
func (e *KitError) WithDetail(d string) *KitError {
	e.Detail = d
	return e
}

// WithSuggestion adds a fix suggestion to the error.
func (e *KitError) WithSuggestion(s string) *KitError {
	e.Suggestion = s
	return e
}

// WithField attaches a named operand to the error.
func (e *KitError) WithField(key string, value any) *KitError {
	if e.Fields == nil {
		e.Fields = make(map[string]any)
	}
	e.Fields[key] = value
	return e
}

// Field returns a named operand, or nil.
func (e *KitError) Field(key string) any {
	return e.Fields[key]
}

// Wrap wraps another error.
func (e *KitError) Wrap(err error) *KitError {
	e.Wrapped = err
	return e
}

// LogAttrs flattens the error into key/value pairs for slog.
func (e *KitError) LogAttrs() []any {
	attrs := []any{"code", e.Code, "category", string(e.Category)}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		attrs = append(attrs, k, e.Fields[k])
	}
	if e.Wrapped != nil {
		attrs = append(attrs, "cause", e.Wrapped.Error())
	}
	if e.Suggestion != "" {
		attrs = append(attrs, "hint", e.Suggestion)
	}
	return attrs
}

// New creates a KitError from a registered error code.
func New(code string) *KitError {
	template, ok := registry[code]
	if !ok {
		return &KitError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &KitError{
		Code:     code,
		Category: template.Category,
		Message:  template.Message,
		Detail:   template.Detail,
	}
}

// Newf creates a new KitError with a formatted message (no code).
func Newf(category Category, format string, args ...any) *KitError {
	return &KitError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps a standard error in a KitError.
func FromError(err error, code string) *KitError {
	if err == nil {
		return nil
	}
	if ke, ok := err.(*KitError); ok {
		return ke
	}
	return New(code).Wrap(err)
}
