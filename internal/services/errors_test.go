package services

import (
	"errors"
	"testing"
)

func TestWrapTagsMarker(t *testing.T) {
	err := Wrap(ErrExternalTool, "build", "distribute", "launcher exited", errors.New("exit status 1"))
	if !errors.Is(err, ErrExternalTool) {
		t.Fatalf("expected ErrExternalTool, got %v", err)
	}
	want := "external tool error: build: distribute: launcher exited: exit status 1"
	if err.Error() != want {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestWrapDefaultsMarker(t *testing.T) {
	err := Wrap(nil, "", "", "", nil)
	if !errors.Is(err, ErrStructure) {
		t.Fatalf("expected fallback to ErrStructure, got %v", err)
	}
	if err.Error() != "structure error: pipeline failure" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestRollsBack(t *testing.T) {
	cases := []struct {
		err  error
		want bool
	}{
		{nil, false},
		{Wrap(ErrCatalog, "reconcile", "save", "write failed", nil), false},
		{Wrap(ErrStructure, "inspect", "", "no playable content", nil), true},
		{Wrap(ErrExternalTool, "build", "", "timeout", nil), true},
	}
	for _, tc := range cases {
		if got := RollsBack(tc.err); got != tc.want {
			t.Fatalf("RollsBack(%v) = %v, want %v", tc.err, got, tc.want)
		}
	}
}
