package fault

import "errors"

// Capability sentinels. A *fault.Error matches these through errors.Is
// according to its capability set, which is how callers catch whole groups of
// the taxonomy at once.
var (
	// Framework matches every error raised by Lumen, regardless of kind.
	Framework = errors.New("lumen framework error")

	// MarkdownFormatted matches errors whose message may contain markdown.
	MarkdownFormatted = errors.New("lumen markdown-formatted error")

	// APIMisuse matches errors caused by the hosting app using the public
	// Lumen API incorrectly.
	APIMisuse = errors.New("lumen api misuse")

	// Localizable matches errors whose message was resolved through the
	// translation catalog.
	Localizable = errors.New("lumen localizable error")

	// Warning matches errors meant to be displayed as warnings rather than
	// raised.
	Warning = errors.New("lumen api warning")
)

// Error is the value type for every failure in the Lumen taxonomy.
// It is immutable after construction.
type Error struct {
	kind    Kind
	caps    Caps
	message string
	args    map[string]any
	cause   error
}

// newError builds an Error for kind with the registered capability set.
// Leaf constructors are the only callers.
func newError(kind Kind, message string) *Error {
	return &Error{
		kind:    kind,
		caps:    CapsFor(kind),
		message: message,
	}
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.message != "" {
		return e.message
	}
	if e.cause != nil {
		return e.cause.Error()
	}
	return string(e.kind)
}

// Unwrap returns the wrapped cause, if any. Only kinds that wrap a foreign
// error (e.g. KindUncaughtApp) carry one.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.cause
}

// Is implements capability-group matching for errors.Is.
// Every taxonomy error matches Framework; the remaining sentinels match
// according to the error's capability set. Matching against the cause is
// delegated to errors.Is via Unwrap as usual.
func (e *Error) Is(target error) bool {
	if e == nil {
		return false
	}
	switch target {
	case Framework:
		return true
	case MarkdownFormatted:
		return e.caps.Has(CapMarkdown)
	case APIMisuse:
		return e.caps.Has(CapAPIMisuse)
	case Localizable:
		return e.caps.Has(CapLocalizable)
	case Warning:
		return e.caps.Has(CapWarning)
	}
	return false
}

// Kind returns the stable leaf-category name.
func (e *Error) Kind() Kind {
	if e == nil {
		return ""
	}
	return e.kind
}

// Caps returns the capability set.
func (e *Error) Caps() Caps {
	if e == nil {
		return 0
	}
	return e.caps
}

// Markdown reports whether the message may be rendered as markdown by the UI
// layer.
func (e *Error) Markdown() bool {
	return e != nil && e.caps.Has(CapMarkdown)
}

// Message returns the rendered display message.
func (e *Error) Message() string {
	if e == nil {
		return ""
	}
	return e.message
}

// Args returns a copy of the substitution arguments recorded at construction.
// Nil for non-localizable kinds and for localizable kinds without parameters.
func (e *Error) Args() map[string]any {
	if e == nil || len(e.args) == 0 {
		return nil
	}
	return cloneArgs(e.args)
}

// Cause returns the wrapped foreign error, if any.
func (e *Error) Cause() error {
	if e == nil {
		return nil
	}
	return e.cause
}

func cloneArgs(args map[string]any) map[string]any {
	clone := make(map[string]any, len(args))
	for key, value := range args {
		clone[key] = value
	}
	return clone
}
