package fault

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNumberInputTypeMismatch(t *testing.T) {
	err := NumberInputTypeMismatch(1, 0.5, nil, nil)

	want := "All numerical arguments must be of the same type." +
		"\n`value` has int type." +
		"\n`min_value` has float64 type."
	if err.Message() != want {
		t.Errorf("Message() = %q, want %q", err.Message(), want)
	}

	wantArgs := map[string]any{
		"value_type":     "int",
		"min_value_type": "float64",
		"max_value_type": "",
		"step_type":      "",
	}
	if diff := cmp.Diff(wantArgs, err.Args()); diff != "" {
		t.Errorf("Args() mismatch (-want +got):\n%s", diff)
	}
}

// A provided zero is not "absent": its type must still be reported.
func TestNumberInputTypeMismatch_ZeroValueStillReported(t *testing.T) {
	err := NumberInputTypeMismatch(0, 5, nil, nil)

	if !strings.Contains(err.Message(), "`value` has int type.") {
		t.Errorf("Message() = %q, want it to report the type of the zero value", err.Message())
	}
	if err.Args()["value_type"] != "int" {
		t.Errorf("Args()[value_type] = %v, want %q", err.Args()["value_type"], "int")
	}
}

func TestValueOutOfBounds(t *testing.T) {
	below := ValueOutOfBounds(1, 5, 10)
	if below.Kind() != KindValueBelowMin {
		t.Fatalf("Kind() = %s, want %s", below.Kind(), KindValueBelowMin)
	}
	if want := "The `value` 1 is less than the `min_value` 5."; below.Message() != want {
		t.Errorf("Message() = %q, want %q", below.Message(), want)
	}

	above := ValueOutOfBounds(11, 5, 10)
	if above.Kind() != KindValueAboveMax {
		t.Fatalf("Kind() = %s, want %s", above.Kind(), KindValueAboveMax)
	}
	if want := "The `value` 11 is greater than the `max_value` 10."; above.Message() != want {
		t.Errorf("Message() = %q, want %q", above.Message(), want)
	}
}

func TestNumberInputInvalidFormat(t *testing.T) {
	err := NumberInputInvalidFormat("%q")

	want := "Format string for `lumen.NumberInput` contains invalid characters: %q"
	if err.Message() != want {
		t.Errorf("Message() = %q, want %q", err.Message(), want)
	}
}

func TestJSNumberBounds(t *testing.T) {
	err := JSNumberBounds(1e16)

	if !strings.Contains(err.Message(), "1e+16") {
		t.Errorf("Message() = %q, want it to contain the offending value", err.Message())
	}
	if diff := cmp.Diff(map[string]any{"value": 1e16}, err.Args()); diff != "" {
		t.Errorf("Args() mismatch (-want +got):\n%s", diff)
	}
}
