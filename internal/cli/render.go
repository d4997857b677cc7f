package cli

// This file implements the "render" command, which constructs a
// representative instance of a fault kind and prints the message exactly as
// the UI error boundary would receive it, optionally through a translation
// catalog.

import (
	"errors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"lumen/internal/i18n"
	"lumen/pkg/fault"
)

// RenderManager renders sample fault messages with injected dependencies.
type RenderManager struct {
	printer *Printer
	logger  *zap.Logger
}

// NewRenderManager creates a RenderManager with the given dependencies.
func NewRenderManager(printer *Printer, logger *zap.Logger) *RenderManager {
	return &RenderManager{printer: printer, logger: logger}
}

// NewRenderCmd builds the render subcommand for previewing fault messages.
func NewRenderCmd(logger *zap.Logger) *cobra.Command {
	mgr := NewRenderManager(&Printer{}, logger)
	return mgr.newRenderCmd()
}

func (m *RenderManager) newRenderCmd() *cobra.Command {
	var localeFile string

	cmd := &cobra.Command{
		Use:   "render <kind>",
		Short: "Preview a fault message",
		Long:  "Construct a representative instance of a fault kind and print its message, capabilities, and debug representation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return m.RenderKind(fault.Kind(args[0]), localeFile)
		},
	}

	cmd.Flags().StringVar(&localeFile, "locale-file", "", "Render through this translation catalog")

	return cmd
}

// RenderKind prints the sample message for kind, translated when a locale
// file is given.
func (m *RenderManager) RenderKind(kind fault.Kind, localeFile string) error {
	sample, ok := samples[kind]
	if !ok {
		return wrapSentinel(ErrUnknownKind, errors.New(string(kind)))
	}

	if localeFile != "" {
		catalog, err := i18n.Load(localeFile)
		if err != nil {
			logStructuredError(m.logger, err, "failed to load locale file")
			return wrapSentinel(ErrLocaleNotReadable, err)
		}
		fault.SetCatalog(catalog)
		defer fault.SetCatalog(nil)
	}

	err := sample()
	logStructuredError(m.logger, err, "rendered sample fault")

	m.printer.Printf("%s (%s)\n", Cyan(string(err.Kind())), err.Caps())
	m.printer.Printf("%s\n", fault.UserString(err))
	if IsDebugMode() {
		m.printer.Printf("%s\n", fault.DebugString(err))
	}
	return nil
}

// samples builds one representative instance per kind, with fixed arguments
// so render output is reproducible.
var samples = map[fault.Kind]func() *fault.Error{
	fault.KindNumberInputTypeMismatch:   func() *fault.Error { return fault.NumberInputTypeMismatch(1, 0.5, nil, nil) },
	fault.KindValueBelowMin:             func() *fault.Error { return fault.ValueOutOfBounds(1, 5, 10) },
	fault.KindValueAboveMax:             func() *fault.Error { return fault.ValueOutOfBounds(11, 5, 10) },
	fault.KindJSNumberBounds:            func() *fault.Error { return fault.JSNumberBounds(1e16) },
	fault.KindNumberInputInvalidFormat:  func() *fault.Error { return fault.NumberInputInvalidFormat("%q") },
	fault.KindMissingLabel:              func() *fault.Error { return fault.MissingLabel("lumen.Slider") },
	fault.KindPageNotFound:              func() *fault.Error { return fault.PageNotFound("settings") },
	fault.KindWidgetOutsideContainer:    func() *fault.Error { return fault.WidgetOutsideContainer("lumen.Button", "fragment") },
	fault.KindCallbackDisallowed:        func() *fault.Error { return fault.CallbackDisallowed("lumen.FormSubmitButton") },
	fault.KindValueAssignmentNotAllowed: func() *fault.Error { return fault.ValueAssignmentNotAllowed("counter") },
	fault.KindSelectionLimitExceeded:    func() *fault.Error { return fault.SelectionLimitExceeded(4, 3) },
	fault.KindInvalidColumnSpec:         func() *fault.Error { return fault.InvalidColumnSpec("-1") },
	fault.KindSetPageConfigNotFirst:     func() *fault.Error { return fault.SetPageConfigNotFirst() },
	fault.KindInvalidLayout:             func() *fault.Error { return fault.InvalidLayout("full") },
	fault.KindInvalidSidebarState:       func() *fault.Error { return fault.InvalidSidebarState("open") },
	fault.KindInvalidMenuItemKey:        func() *fault.Error { return fault.InvalidMenuItemKey("Docs") },
	fault.KindInvalidURL:                func() *fault.Error { return fault.InvalidURL("ht!tp://x") },

	fault.KindDuplicateWidgetID:          func() *fault.Error { return fault.DuplicateWidgetID("lumen.Checkbox", "done") },
	fault.KindUnserializableSessionState: func() *fault.Error { return fault.UnserializableSessionState("model") },
	fault.KindModuleNotFound:             func() *fault.Error { return fault.ModuleNotFound("plotly") },

	fault.KindNoSessionContext:   func() *fault.Error { return fault.NoSessionContext() },
	fault.KindNoStaticAssets:     func() *fault.Error { return fault.NoStaticAssets() },
	fault.KindFragmentStorageKey: func() *fault.Error { return fault.FragmentStorageKey("frag-1") },
	fault.KindCustomComponent:    func() *fault.Error { return fault.CustomComponent("component iframe failed to load") },
	fault.KindDeprecation:        func() *fault.Error { return fault.Deprecation("lumen.Cache was removed; use lumen.CacheData") },
	fault.KindUncaughtApp:        func() *fault.Error { return fault.UncaughtApp(errors.New("sample app error")) },
}
