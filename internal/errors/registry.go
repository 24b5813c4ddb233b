package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Runtime Errors (E001-E019)
	// ============================================

	"E001": {
		Category: CategoryRuntime,
		Message:  "Signal read outside its runtime",
		Detail:   "The tracker passed to Get belongs to a different runtime than the signal.",
	},
	"E005": {
		Category: CategoryRuntime,
		Message:  "Scope disposed",
		Detail:   "The value was read after its owning scope was torn down.",
	},
	"E006": {
		Category: CategoryRuntime,
		Message:  "Reactive loop detected",
		Detail:   "Effects kept invalidating each other past the pass budget; remaining work was dropped.",
	},

	// ============================================
	// Theme Errors (E020-E029)
	// ============================================

	"E020": {
		Category: CategoryTheme,
		Message:  "Invalid color specification",
	},
	"E021": {
		Category: CategoryTheme,
		Message:  "Invalid theme",
	},
	"E022": {
		Category: CategoryTheme,
		Message:  "Invalid style value",
		Detail:   "Style values must be finite numbers.",
	},

	// ============================================
	// Composition Errors (E030-E039)
	// ============================================

	"E030": {
		Category: CategoryComposition,
		Message:  "Unknown slot",
	},
	"E031": {
		Category: CategoryComposition,
		Message:  "Invalid prop value",
		Detail:   "Props must be plain data; functions and channels are not allowed.",
	},
	"E032": {
		Category: CategoryComposition,
		Message:  "Missing component kind",
	},

	// ============================================
	// Effect Errors (E040-E049)
	// ============================================

	"E040": {
		Category: CategoryRuntime,
		Message:  "Effect execution failed",
	},

	// ============================================
	// Config Errors (E120-E129)
	// ============================================

	"E120": {
		Category: CategoryConfig,
		Message:  "Invalid configuration",
	},
	"E121": {
		Category: CategoryConfig,
		Message:  "Configuration file not found",
	},
	"E122": {
		Category: CategoryConfig,
		Message:  "Configuration validation failed",
	},
}
