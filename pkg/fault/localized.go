package fault

import (
	"fmt"
	"strings"
	"text/template"
)

// newLocalized builds a localizable error for kind.
//
// The template is resolved through the installed catalog keyed by the kind
// name, falling back to the literal template argument when no translation
// exists. Named placeholders ({{.name}}) are substituted from args, and args
// are recorded on the instance regardless of which template was chosen.
//
// A template referencing a placeholder absent from args means a leaf
// constructor and its template have drifted apart. That is a bug in the
// framework itself, not a reportable user error, so construction panics.
func newLocalized(kind Kind, tmpl string, args map[string]any) *Error {
	err := newError(kind, render(kind, lookupTemplate(kind, tmpl), args))
	if len(args) > 0 {
		err.args = cloneArgs(args)
	}
	return err
}

// render substitutes args into tmpl. Plain templates pass through untouched.
func render(kind Kind, tmpl string, args map[string]any) string {
	if !strings.Contains(tmpl, "{{") {
		return tmpl
	}
	parsed, err := template.New(string(kind)).Option("missingkey=error").Parse(tmpl)
	if err != nil {
		panic(fmt.Sprintf("fault: invalid message template for kind %s: %v", kind, err))
	}
	var b strings.Builder
	if err := parsed.Execute(&b, args); err != nil {
		panic(fmt.Sprintf("fault: message template for kind %s out of sync with its arguments: %v", kind, err))
	}
	return b.String()
}
