package cli

import (
	"errors"
	"strings"
	"testing"

	"lumen/internal/i18n"
)

func TestLintCatalog_CleanCatalog(t *testing.T) {
	catalog, err := i18n.LoadLocale("testdata", "de")
	if err != nil {
		t.Fatalf("LoadLocale() error: %v", err)
	}

	if problems := LintCatalog(catalog); len(problems) != 0 {
		t.Errorf("LintCatalog() = %v, want no problems", problems)
	}
}

func TestLintCatalog_Drift(t *testing.T) {
	catalog, err := i18n.LoadLocale("testdata", "drift")
	if err != nil {
		t.Fatalf("LoadLocale() error: %v", err)
	}

	problems := LintCatalog(catalog)
	if len(problems) != 4 {
		t.Fatalf("LintCatalog() returned %d problems, want 4:\n%s", len(problems), strings.Join(problems, "\n"))
	}

	wantFragments := []string{
		"DuplicateWidgetID: kind is not localizable",
		"InvalidURL: placeholder not recorded by this kind",
		"NotARealKind: not a registered fault kind",
		"PageNotFound: template does not parse",
	}
	for i, want := range wantFragments {
		if !strings.Contains(problems[i], want) {
			t.Errorf("problems[%d] = %q, want it to contain %q", i, problems[i], want)
		}
	}
}

func TestCheckCatalog(t *testing.T) {
	mgr := NewCheckManager(&Printer{Quiet: true}, nil)

	if err := mgr.CheckCatalog("testdata/de.yaml"); err != nil {
		t.Errorf("CheckCatalog(de) error: %v", err)
	}

	err := mgr.CheckCatalog("testdata/drift.yaml")
	if !errors.Is(err, ErrCatalogInvalid) {
		t.Errorf("CheckCatalog(drift) = %v, want ErrCatalogInvalid", err)
	}

	err = mgr.CheckCatalog("testdata/missing.yaml")
	if !errors.Is(err, ErrLocaleNotReadable) {
		t.Errorf("CheckCatalog(missing) = %v, want ErrLocaleNotReadable", err)
	}
}
