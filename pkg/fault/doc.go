// Package fault defines the closed taxonomy of failures raised by the Lumen
// framework and formats their user-facing, localizable messages.
//
// Every failure is a *fault.Error carrying:
//   - A stable kind (e.g. KindPageNotFound) identifying the leaf category.
//     The kind doubles as the localization lookup key.
//   - A capability set (markdown-formatted, API misuse, localizable, warning)
//     replacing the deep inheritance lattice of classic exception hierarchies.
//   - A rendered message, ready for display.
//   - For localizable kinds, the substitution arguments used to render the
//     message, preserved read-only for later inspection.
//
// Catching works at two granularities. Capability sentinels give the
// "catch by base class" behavior:
//
//	if errors.Is(err, fault.APIMisuse) {
//		// any misuse of the public Lumen API by the app author
//	}
//
// and kinds give leaf-precise handling:
//
//	if fault.IsKind(err, fault.KindDuplicateWidgetID) {
//		// exactly one category
//	}
//
// Localizable kinds resolve their message template through the process-wide
// catalog installed with SetCatalog. If no translation exists the literal
// template supplied by the leaf constructor is used verbatim, so a localizable
// message is never empty.
//
// SelfHandled is deliberately outside the taxonomy: it marks a failure that a
// retryable UI fragment already recovered from and must never be re-handled or
// shown to the user.
package fault
