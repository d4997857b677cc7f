package fault

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// mapCatalog is a test catalog with the gettext contract: untranslated keys
// are echoed back unchanged.
type mapCatalog map[string]string

func (m mapCatalog) Lookup(key string) string {
	if translated, ok := m[key]; ok {
		return translated
	}
	return key
}

func TestLocalized_FallbackWithoutCatalog(t *testing.T) {
	SetCatalog(nil)

	err := PageNotFound("settings")

	want := "Could not find page: `settings`. The page name must match the file name of a page in the pages directory."
	if err.Message() != want {
		t.Errorf("Message() = %q, want %q", err.Message(), want)
	}
}

func TestLocalized_FallbackWhenCatalogEchoesKey(t *testing.T) {
	SetCatalog(mapCatalog{})
	defer SetCatalog(nil)

	err := InvalidURL("ht!tp://x")

	want := "`ht!tp://x` is not a valid URL."
	if err.Message() != want {
		t.Errorf("Message() = %q, want %q", err.Message(), want)
	}
}

func TestLocalized_CatalogTemplateWins(t *testing.T) {
	SetCatalog(mapCatalog{
		"PageNotFound": "Seite `{{.page_name}}` wurde nicht gefunden.",
	})
	defer SetCatalog(nil)

	err := PageNotFound("settings")

	want := "Seite `settings` wurde nicht gefunden."
	if err.Message() != want {
		t.Errorf("Message() = %q, want %q", err.Message(), want)
	}
}

func TestLocalized_EmptyTranslationFallsBack(t *testing.T) {
	// A blank catalog entry must never yield an empty message.
	SetCatalog(mapCatalog{"InvalidLayout": ""})
	defer SetCatalog(nil)

	err := InvalidLayout("full")

	want := "`layout` must be \"centered\" or \"wide\" (got `full`)."
	if err.Message() != want {
		t.Errorf("Message() = %q, want %q", err.Message(), want)
	}
	if err.Message() == "" {
		t.Fatal("localizable message must never be empty")
	}
}

func TestLocalized_ArgsPreservedOnBothTemplatePaths(t *testing.T) {
	want := map[string]any{"value": float64(1), "min_value": float64(5)}

	err := ValueOutOfBounds(1, 5, 10)
	if diff := cmp.Diff(want, err.Args()); diff != "" {
		t.Fatalf("Args() without catalog mismatch (-want +got):\n%s", diff)
	}

	SetCatalog(mapCatalog{"ValueBelowMin": "Der Wert {{.value}} liegt unter dem Minimum {{.min_value}}."})
	defer SetCatalog(nil)

	translated := ValueOutOfBounds(1, 5, 10)
	if translated.Message() != "Der Wert 1 liegt unter dem Minimum 5." {
		t.Errorf("Message() = %q", translated.Message())
	}
	if diff := cmp.Diff(want, translated.Args()); diff != "" {
		t.Errorf("Args() with catalog mismatch (-want +got):\n%s", diff)
	}
}

func TestLocalized_Determinism(t *testing.T) {
	first := SelectionLimitExceeded(4, 3)
	second := SelectionLimitExceeded(4, 3)

	if first.Message() != second.Message() {
		t.Errorf("messages differ: %q vs %q", first.Message(), second.Message())
	}
	if DebugString(first) != DebugString(second) {
		t.Errorf("debug strings differ:\n%s\nvs\n%s", DebugString(first), DebugString(second))
	}
}

func TestLocalized_TemplateDriftPanics(t *testing.T) {
	SetCatalog(mapCatalog{"InvalidURL": "URL {{.address}} ist ungültig."})
	defer SetCatalog(nil)

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for a template placeholder missing from args")
		}
	}()
	InvalidURL("ht!tp://x")
}
