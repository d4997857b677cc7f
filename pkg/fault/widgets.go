package fault

import "fmt"

// MissingLabel is raised when a widget is created without the required label.
func MissingLabel(widgetType string) *Error {
	return newLocalized(
		KindMissingLabel,
		"The `label` argument to `{{.widget_type}}` is required and cannot be empty.",
		map[string]any{"widget_type": widgetType},
	)
}

// WidgetOutsideContainer is raised when a widget is written outside the
// container it is restricted to (e.g. a fragment widget written to an outside
// container).
func WidgetOutsideContainer(widgetType, container string) *Error {
	return newLocalized(
		KindWidgetOutsideContainer,
		"Calling `{{.widget_type}}` outside of `{{.container}}` is not supported.",
		map[string]any{"widget_type": widgetType, "container": container},
	)
}

// CallbackDisallowed is raised when a change callback is attached to an
// element that does not support callbacks.
func CallbackDisallowed(elementType string) *Error {
	return newLocalized(
		KindCallbackDisallowed,
		"Change callbacks are not allowed on `{{.element_type}}`.",
		map[string]any{"element_type": elementType},
	)
}

// ValueAssignmentNotAllowed is raised on a programmatic write to a widget
// value that is locked while the widget exists.
func ValueAssignmentNotAllowed(key string) *Error {
	return newLocalized(
		KindValueAssignmentNotAllowed,
		"Values for the widget with key `{{.key}}` cannot be set using the session state while the widget exists.",
		map[string]any{"key": key},
	)
}

// SelectionLimitExceeded is raised when a multi-select widget holds more
// selections than its configured maximum.
func SelectionLimitExceeded(selections, maxSelections int) *Error {
	return newLocalized(
		KindSelectionLimitExceeded,
		"You have {{.selections}} options selected but `max_selections` is set to {{.max_selections}}. Deselect options or raise `max_selections`.",
		map[string]any{"selections": selections, "max_selections": maxSelections},
	)
}

// DuplicateWidgetID is raised when two widgets resolve to the same identity.
// Not localizable: the remedy is always the same `key` argument hint.
func DuplicateWidgetID(widgetType, key string) *Error {
	return newError(KindDuplicateWidgetID, fmt.Sprintf(
		"There are multiple `%s` widgets with the same generated key %q. Give each widget a unique `key` argument.",
		widgetType, key,
	))
}

// UnserializableSessionState is raised when a session state value cannot be
// serialized under the enforce-serializability option.
func UnserializableSessionState(key string) *Error {
	return newError(KindUnserializableSessionState, fmt.Sprintf(
		"The value of session state key %q cannot be serialized. Store only serializable values, or disable serializability enforcement.",
		key,
	))
}
