package fault

// PageNotFound is raised when a page reference does not match any page of the
// running app.
func PageNotFound(pageName string) *Error {
	return newLocalized(
		KindPageNotFound,
		"Could not find page: `{{.page_name}}`. The page name must match the file name of a page in the pages directory.",
		map[string]any{"page_name": pageName},
	)
}

// InvalidColumnSpec is raised when lumen.Columns receives a spec that is
// neither a positive integer nor a list of positive numeric weights.
func InvalidColumnSpec(spec string) *Error {
	return newLocalized(
		KindInvalidColumnSpec,
		"The column spec must be a positive integer or a list of positive numeric weights (got `{{.spec}}`).",
		map[string]any{"spec": spec},
	)
}

// SetPageConfigNotFirst is raised when lumen.SetPageConfig runs after another
// Lumen command, or runs twice.
func SetPageConfigNotFirst() *Error {
	return newLocalized(
		KindSetPageConfigNotFirst,
		"`lumen.SetPageConfig` can only be called once per page, and must be the first Lumen command on the page.",
		nil,
	)
}

// InvalidLayout is raised for an unknown page layout value.
func InvalidLayout(layout string) *Error {
	return newLocalized(
		KindInvalidLayout,
		"`layout` must be \"centered\" or \"wide\" (got `{{.layout}}`).",
		map[string]any{"layout": layout},
	)
}

// InvalidSidebarState is raised for an unknown initial sidebar state.
func InvalidSidebarState(state string) *Error {
	return newLocalized(
		KindInvalidSidebarState,
		"`initial_sidebar_state` must be \"auto\", \"expanded\", or \"collapsed\" (got `{{.initial_sidebar_state}}`).",
		map[string]any{"initial_sidebar_state": state},
	)
}

// InvalidMenuItemKey is raised for an unknown menu item key.
func InvalidMenuItemKey(key string) *Error {
	return newLocalized(
		KindInvalidMenuItemKey,
		"Invalid menu item key `{{.key}}`. Valid keys are \"Get help\", \"Report a bug\", and \"About\".",
		map[string]any{"key": key},
	)
}

// InvalidURL is raised when a menu item or page link carries a malformed URL.
func InvalidURL(url string) *Error {
	return newLocalized(
		KindInvalidURL,
		"`{{.url}}` is not a valid URL.",
		map[string]any{"url": url},
	)
}
