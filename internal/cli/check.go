package cli

// This file implements the "check" command, which lints a translation catalog
// against the fault taxonomy. It catches exactly the drift that would panic at
// raise time: templates referencing placeholders a kind does not record.

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"lumen/internal/i18n"
	"lumen/pkg/fault"
)

// CheckManager lints translation catalogs with injected dependencies.
type CheckManager struct {
	printer *Printer
	logger  *zap.Logger
}

// NewCheckManager creates a CheckManager with the given dependencies.
func NewCheckManager(printer *Printer, logger *zap.Logger) *CheckManager {
	return &CheckManager{printer: printer, logger: logger}
}

// NewCheckCmd builds the check subcommand for linting catalog files.
func NewCheckCmd(logger *zap.Logger) *cobra.Command {
	mgr := NewCheckManager(&Printer{}, logger)
	return mgr.newCheckCmd()
}

func (m *CheckManager) newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <locale-file>",
		Short: "Lint a translation catalog",
		Long:  "Validate a locale file against the fault taxonomy: unknown kinds, broken templates, and placeholders a kind does not record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return m.CheckCatalog(args[0])
		},
	}
	return cmd
}

// CheckCatalog loads the locale file and reports every problem found.
// Returns ErrCatalogInvalid when at least one problem exists.
func (m *CheckManager) CheckCatalog(path string) error {
	catalog, err := i18n.Load(path)
	if err != nil {
		logStructuredError(m.logger, err, "failed to load locale file")
		return wrapSentinel(ErrLocaleNotReadable, err)
	}

	problems := LintCatalog(catalog)
	for _, problem := range problems {
		m.printer.Printf("%s %s\n", Red("✗"), problem)
	}
	m.printer.Printf("%s: %d keys, %d problems\n", catalog.Locale(), len(catalog.Keys()), len(problems))
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s: %d problems", ErrCatalogInvalid, path, len(problems))
	}
	return nil
}

// LintCatalog validates every catalog entry against the registry.
func LintCatalog(catalog *i18n.MessageCatalog) []string {
	var problems []string
	for _, key := range catalog.Keys() {
		tmpl, _ := catalog.Template(key)
		kind := fault.Kind(key)
		if !fault.IsValidKind(kind) {
			problems = append(problems, fmt.Sprintf("%s: not a registered fault kind", key))
			continue
		}
		if !fault.CapsFor(kind).Has(fault.CapLocalizable) {
			problems = append(problems, fmt.Sprintf("%s: kind is not localizable, translation will never be used", key))
			continue
		}
		if problem := lintTemplate(kind, tmpl); problem != "" {
			problems = append(problems, fmt.Sprintf("%s: %s", key, problem))
		}
	}
	return problems
}

// lintTemplate renders tmpl against the kind's declared parameters. Any
// placeholder outside the declared set fails the render, which is the same
// failure the formatter would hit at raise time.
func lintTemplate(kind fault.Kind, tmpl string) string {
	parsed, err := template.New(string(kind)).Option("missingkey=error").Parse(tmpl)
	if err != nil {
		return fmt.Sprintf("template does not parse: %v", err)
	}
	args := make(map[string]any)
	for _, param := range fault.ParamsFor(kind) {
		args[param] = "<" + param + ">"
	}
	var b strings.Builder
	if err := parsed.Execute(&b, args); err != nil {
		return fmt.Sprintf("placeholder not recorded by this kind: %v", err)
	}
	return ""
}
