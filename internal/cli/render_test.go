package cli

import (
	"errors"
	"testing"

	"lumen/pkg/fault"
)

func TestRenderKind(t *testing.T) {
	mgr := NewRenderManager(&Printer{Quiet: true}, nil)

	if err := mgr.RenderKind(fault.KindPageNotFound, ""); err != nil {
		t.Errorf("RenderKind(PageNotFound) error: %v", err)
	}
}

func TestRenderKind_WithLocale(t *testing.T) {
	mgr := NewRenderManager(&Printer{Quiet: true}, nil)

	if err := mgr.RenderKind(fault.KindPageNotFound, "testdata/de.yaml"); err != nil {
		t.Errorf("RenderKind(PageNotFound, de) error: %v", err)
	}

	err := mgr.RenderKind(fault.KindPageNotFound, "testdata/missing.yaml")
	if !errors.Is(err, ErrLocaleNotReadable) {
		t.Errorf("RenderKind(missing locale) = %v, want ErrLocaleNotReadable", err)
	}
}

func TestRenderKind_Unknown(t *testing.T) {
	mgr := NewRenderManager(&Printer{Quiet: true}, nil)

	err := mgr.RenderKind(fault.Kind("Nope"), "")
	if !errors.Is(err, ErrUnknownKind) {
		t.Errorf("RenderKind(unknown) = %v, want ErrUnknownKind", err)
	}
}

func TestSamples_CoverRegistry(t *testing.T) {
	for _, entry := range fault.Registry() {
		sample, ok := samples[entry.Kind]
		if !ok {
			t.Errorf("no sample for kind %s", entry.Kind)
			continue
		}
		if got := sample().Kind(); got != entry.Kind {
			t.Errorf("sample for %s built kind %s", entry.Kind, got)
		}
	}
	if len(samples) != len(fault.Registry()) {
		t.Errorf("samples has %d entries, registry has %d", len(samples), len(fault.Registry()))
	}
}
