package fault

import "fmt"

// Internal kinds: failures of the runtime environment or internal
// bookkeeping, not caused by API misuse. Their messages are plain text and
// bypass the translation catalog.

// NoSessionContext is raised when a Lumen command runs with no active script
// session.
func NoSessionContext() *Error {
	return newError(KindNoSessionContext, "no session context is active; Lumen commands must run inside a script session")
}

// NoStaticAssets is raised when the bundled frontend assets cannot be found.
func NoStaticAssets() *Error {
	return newError(KindNoStaticAssets, "static assets are missing; reinstall Lumen to restore them")
}

// FragmentStorageKey is raised when a fragment storage operation collides on
// an internal key.
func FragmentStorageKey(key string) *Error {
	return newError(KindFragmentStorageKey, fmt.Sprintf("fragment storage key %q is already in use", key))
}

// CustomComponent is raised in the custom components code path.
func CustomComponent(message string) *Error {
	return newError(KindCustomComponent, message)
}

// Deprecation is raised when an app uses a removed API.
func Deprecation(message string) *Error {
	return newError(KindDeprecation, message)
}

// ModuleNotFound is a warning shown when a Lumen command needs an optional
// dependency that is not installed.
func ModuleNotFound(module string) *Error {
	return newError(KindModuleNotFound, fmt.Sprintf("This Lumen command requires module %q to be installed.", module))
}

// UncaughtApp is the catchall for errors the app script raised and nobody
// caught. It retains the original error as its cause.
func UncaughtApp(cause error) *Error {
	err := newError(KindUncaughtApp, "")
	err.cause = cause
	return err
}
