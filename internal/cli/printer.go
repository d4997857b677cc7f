package cli

// Terminal output helpers shared by the faultctl commands. Styled output goes
// through pterm; when stdout is not a terminal the helpers degrade to plain
// text so command output stays grep-able in pipes and CI logs.

import (
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"golang.org/x/term"
)

// isTTY reports whether stdout is an interactive terminal.
func isTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// Table prints rows as a headered table. The first row is the header.
func Table(data [][]string) {
	if len(data) == 0 {
		return
	}
	_ = pterm.DefaultTable.WithHasHeader().WithData(pterm.TableData(data)).Render()
}

// TableBoxed prints rows as a boxed, headered table.
func TableBoxed(data [][]string) {
	if len(data) == 0 {
		return
	}
	_ = pterm.DefaultTable.WithHasHeader().WithBoxed().WithData(pterm.TableData(data)).Render()
}

// Green returns s styled green on a terminal, unchanged otherwise.
func Green(s string) string {
	if !isTTY() {
		return s
	}
	return pterm.Green(s)
}

// Yellow returns s styled yellow on a terminal, unchanged otherwise.
func Yellow(s string) string {
	if !isTTY() {
		return s
	}
	return pterm.Yellow(s)
}

// Red returns s styled red on a terminal, unchanged otherwise.
func Red(s string) string {
	if !isTTY() {
		return s
	}
	return pterm.Red(s)
}

// Cyan returns s styled cyan on a terminal, unchanged otherwise.
func Cyan(s string) string {
	if !isTTY() {
		return s
	}
	return pterm.Cyan(s)
}

// Printer writes styled progress output. Quiet suppresses everything except
// Printf, which commands use for their actual results.
type Printer struct {
	Quiet bool
}

// Section prints a section header.
func (p *Printer) Section(title string) {
	if p.Quiet {
		return
	}
	pterm.DefaultSection.Println(title)
}

// Step prints a single progress step.
func (p *Printer) Step(msg string) {
	if p.Quiet {
		return
	}
	fmt.Printf("%s %s\n", Cyan("•"), msg)
}

// Info prints an informational line.
func (p *Printer) Info(msg string) {
	if p.Quiet {
		return
	}
	pterm.Info.Println(msg)
}

// Printf prints formatted output regardless of quiet mode.
func (p *Printer) Printf(format string, args ...any) {
	fmt.Printf(format, args...)
}

// SpinnerStart starts a spinner and returns a stop function. Pass the outcome
// to the stop function: success renders a checkmark line, failure a cross.
// In quiet mode (or without a terminal) the spinner is silent.
func (p *Printer) SpinnerStart(msg string) func(success bool, result string) {
	if p.Quiet || !isTTY() {
		return func(bool, string) {}
	}
	spinner, err := pterm.DefaultSpinner.Start(msg)
	if err != nil {
		return func(bool, string) {}
	}
	return func(success bool, result string) {
		if success {
			spinner.Success(result)
			return
		}
		spinner.Fail(result)
	}
}
