package cli

import "testing"

func TestListKinds(t *testing.T) {
	mgr := NewKindsManager(&Printer{Quiet: true}, nil)

	if err := mgr.ListKinds(""); err != nil {
		t.Errorf("ListKinds() error: %v", err)
	}
	if err := mgr.ListKinds("localizable"); err != nil {
		t.Errorf("ListKinds(localizable) error: %v", err)
	}
}

func TestCapsMatch(t *testing.T) {
	if !capsMatch("markdown,misuse,localizable", "misuse") {
		t.Error("capsMatch should find a listed capability")
	}
	if capsMatch("markdown,misuse,localizable", "warning") {
		t.Error("capsMatch should not match a missing capability")
	}
	if !capsMatch("internal", "internal") {
		t.Error("capsMatch should match the internal marker")
	}
}
