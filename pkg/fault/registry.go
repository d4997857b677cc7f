package fault

import "strings"

// Kind is the stable identifying name of a leaf category. It is also the key
// used to look up a translated message template in the catalog.
type Kind string

// Caps is the capability set of a kind. Capabilities replace subclassing:
// "catch by base class" becomes matching a capability sentinel.
type Caps uint8

const (
	// CapMarkdown marks messages that may embed markdown, rendered by the
	// frontend.
	CapMarkdown Caps = 1 << iota

	// CapAPIMisuse marks failures caused by the hosting app calling the
	// public Lumen API incorrectly. Shown verbatim to the app author.
	CapAPIMisuse

	// CapLocalizable marks kinds whose message is resolved through the
	// translation catalog at construction time.
	CapLocalizable

	// CapWarning marks kinds meant to be displayed, not raised.
	CapWarning
)

// Has reports whether all capabilities in want are set.
func (c Caps) Has(want Caps) bool {
	return c&want == want
}

// String returns the capability names in fixed order, or "internal" for an
// empty set.
func (c Caps) String() string {
	if c == 0 {
		return "internal"
	}
	var parts []string
	if c.Has(CapMarkdown) {
		parts = append(parts, "markdown")
	}
	if c.Has(CapAPIMisuse) {
		parts = append(parts, "misuse")
	}
	if c.Has(CapLocalizable) {
		parts = append(parts, "localizable")
	}
	if c.Has(CapWarning) {
		parts = append(parts, "warning")
	}
	return strings.Join(parts, ",")
}

// capLocalized is the full capability set of a localizable API-misuse kind.
const capLocalized = CapMarkdown | CapAPIMisuse | CapLocalizable

// Leaf kinds raised by the framework. The set is closed: widget code raises
// these through the constructors in this package, never ad hoc.
const (
	// Localizable API-misuse kinds.
	KindNumberInputTypeMismatch   Kind = "NumberInputTypeMismatch"
	KindValueBelowMin             Kind = "ValueBelowMin"
	KindValueAboveMax             Kind = "ValueAboveMax"
	KindJSNumberBounds            Kind = "JSNumberBounds"
	KindNumberInputInvalidFormat  Kind = "NumberInputInvalidFormat"
	KindMissingLabel              Kind = "MissingLabel"
	KindPageNotFound              Kind = "PageNotFound"
	KindWidgetOutsideContainer    Kind = "WidgetOutsideContainer"
	KindCallbackDisallowed        Kind = "CallbackDisallowed"
	KindValueAssignmentNotAllowed Kind = "ValueAssignmentNotAllowed"
	KindSelectionLimitExceeded    Kind = "SelectionLimitExceeded"
	KindInvalidColumnSpec         Kind = "InvalidColumnSpec"
	KindSetPageConfigNotFirst     Kind = "SetPageConfigNotFirst"
	KindInvalidLayout             Kind = "InvalidLayout"
	KindInvalidSidebarState       Kind = "InvalidSidebarState"
	KindInvalidMenuItemKey        Kind = "InvalidMenuItemKey"
	KindInvalidURL                Kind = "InvalidURL"

	// Non-localizable API-misuse kinds.
	KindDuplicateWidgetID          Kind = "DuplicateWidgetID"
	KindUnserializableSessionState Kind = "UnserializableSessionState"
	KindModuleNotFound             Kind = "ModuleNotFound"

	// Internal kinds, not caused by API misuse.
	KindNoSessionContext   Kind = "NoSessionContext"
	KindNoStaticAssets     Kind = "NoStaticAssets"
	KindFragmentStorageKey Kind = "FragmentStorageKey"
	KindCustomComponent    Kind = "CustomComponent"
	KindDeprecation        Kind = "Deprecation"
	KindUncaughtApp        Kind = "UncaughtApp"
)

// RegistryEntry describes a registered kind.
type RegistryEntry struct {
	Kind    Kind
	Caps    Caps
	Summary string
	// Params lists the substitution parameter names a localizable kind
	// records. Catalog templates for the kind may reference exactly these.
	Params []string
}

var registryEntries = []RegistryEntry{
	{KindNumberInputTypeMismatch, capLocalized, "numeric arguments of mixed types", []string{"value_type", "min_value_type", "max_value_type", "step_type"}},
	{KindValueBelowMin, capLocalized, "value below the declared minimum", []string{"value", "min_value"}},
	{KindValueAboveMax, capLocalized, "value above the declared maximum", []string{"value", "max_value"}},
	{KindJSNumberBounds, capLocalized, "number outside the browser-safe range", []string{"value"}},
	{KindNumberInputInvalidFormat, capLocalized, "invalid number format string", []string{"format"}},
	{KindMissingLabel, capLocalized, "required widget label missing", []string{"widget_type"}},
	{KindPageNotFound, capLocalized, "page reference not found", []string{"page_name"}},
	{KindWidgetOutsideContainer, capLocalized, "widget placed outside its required container", []string{"widget_type", "container"}},
	{KindCallbackDisallowed, capLocalized, "callback attached to a disallowed element", []string{"element_type"}},
	{KindValueAssignmentNotAllowed, capLocalized, "programmatic write to a locked widget value", []string{"key"}},
	{KindSelectionLimitExceeded, capLocalized, "selection count over the configured maximum", []string{"selections", "max_selections"}},
	{KindInvalidColumnSpec, capLocalized, "invalid column specification", []string{"spec"}},
	{KindSetPageConfigNotFirst, capLocalized, "page config set after other commands", nil},
	{KindInvalidLayout, capLocalized, "invalid layout value", []string{"layout"}},
	{KindInvalidSidebarState, capLocalized, "invalid initial sidebar state", []string{"initial_sidebar_state"}},
	{KindInvalidMenuItemKey, capLocalized, "invalid menu item key", []string{"key"}},
	{KindInvalidURL, capLocalized, "invalid URL value", []string{"url"}},

	{KindDuplicateWidgetID, CapMarkdown | CapAPIMisuse, "duplicate widget identifier", nil},
	{KindUnserializableSessionState, CapMarkdown | CapAPIMisuse, "session state value cannot be serialized", nil},
	{KindModuleNotFound, CapMarkdown | CapAPIMisuse | CapWarning, "optional dependency not installed", nil},

	{KindNoSessionContext, 0, "no active session context", nil},
	{KindNoStaticAssets, 0, "static assets missing", nil},
	{KindFragmentStorageKey, 0, "fragment storage key conflict", nil},
	{KindCustomComponent, 0, "custom component failure", nil},
	{KindDeprecation, 0, "deprecated API used", nil},
	{KindUncaughtApp, 0, "uncaught app error", nil},
}

var registryMap = func() map[Kind]RegistryEntry {
	m := make(map[Kind]RegistryEntry, len(registryEntries))
	for _, entry := range registryEntries {
		m[entry.Kind] = entry
	}
	return m
}()

// Registry returns every registered kind in deterministic order.
func Registry() []RegistryEntry {
	entries := make([]RegistryEntry, len(registryEntries))
	copy(entries, registryEntries)
	return entries
}

// CapsFor returns the capability set registered for kind.
func CapsFor(kind Kind) Caps {
	return registryMap[kind].Caps
}

// SummaryFor returns the registry summary for a kind.
func SummaryFor(kind Kind) (string, bool) {
	entry, ok := registryMap[kind]
	return entry.Summary, ok
}

// ParamsFor returns the declared substitution parameter names for a kind.
func ParamsFor(kind Kind) []string {
	entry, ok := registryMap[kind]
	if !ok || len(entry.Params) == 0 {
		return nil
	}
	params := make([]string, len(entry.Params))
	copy(params, entry.Params)
	return params
}

// IsValidKind checks whether kind is registered.
func IsValidKind(kind Kind) bool {
	_, ok := registryMap[kind]
	return ok
}
