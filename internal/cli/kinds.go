package cli

// This file implements the "kinds" command, which prints the registered fault
// taxonomy: every kind with its capability set, substitution parameters, and
// summary.

import (
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"lumen/pkg/fault"
)

// KindsManager handles taxonomy inspection with injected dependencies.
type KindsManager struct {
	printer *Printer
	logger  *zap.Logger
}

// NewKindsManager creates a KindsManager with the given dependencies.
func NewKindsManager(printer *Printer, logger *zap.Logger) *KindsManager {
	return &KindsManager{printer: printer, logger: logger}
}

// NewKindsCmd builds the kinds subcommand for listing the fault taxonomy.
func NewKindsCmd(logger *zap.Logger) *cobra.Command {
	mgr := NewKindsManager(&Printer{}, logger)
	return mgr.newKindsCmd()
}

func (m *KindsManager) newKindsCmd() *cobra.Command {
	var capFilter string

	cmd := &cobra.Command{
		Use:   "kinds",
		Short: "List the fault taxonomy",
		Long:  "List every registered fault kind with its capabilities, substitution parameters, and summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			return m.ListKinds(capFilter)
		},
	}

	cmd.Flags().StringVar(&capFilter, "caps", "", "Only show kinds with this capability (markdown|misuse|localizable|warning|internal)")

	return cmd
}

// ListKinds prints the registry table, optionally filtered by capability name.
func (m *KindsManager) ListKinds(capFilter string) error {
	rows := [][]string{{"KIND", "CAPABILITIES", "PARAMS", "SUMMARY"}}
	for _, entry := range fault.Registry() {
		caps := entry.Caps.String()
		if capFilter != "" && !capsMatch(caps, capFilter) {
			continue
		}
		params := "-"
		if len(entry.Params) > 0 {
			params = strings.Join(entry.Params, ", ")
		}
		rows = append(rows, []string{string(entry.Kind), caps, params, entry.Summary})
	}
	Table(rows)
	m.printer.Printf("%d kinds\n", len(rows)-1)
	return nil
}

func capsMatch(caps, filter string) bool {
	for _, name := range strings.Split(caps, ",") {
		if name == filter {
			return true
		}
	}
	return false
}
