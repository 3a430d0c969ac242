package input

import (
	"bytes"
	"strings"
	"testing"
)

func TestTerminalAsk(t *testing.T) {
	var out bytes.Buffer
	term := NewTerminalWith(strings.NewReader("My Game\n"), &out)

	got, err := term.Ask("name", "Display name", "fallback")
	if err != nil {
		t.Fatalf("ask: %v", err)
	}
	if got != "My Game" {
		t.Fatalf("got %q", got)
	}
	if !strings.Contains(out.String(), "Display name") {
		t.Fatalf("prompt not written: %q", out.String())
	}
}

func TestTerminalAskEmptyUsesFallback(t *testing.T) {
	term := NewTerminalWith(strings.NewReader("\n"), &bytes.Buffer{})
	got, err := term.Ask("version", "Version", "1.0")
	if err != nil {
		t.Fatalf("ask: %v", err)
	}
	if got != "1.0" {
		t.Fatalf("got %q, want fallback", got)
	}
}

func TestTerminalChoose(t *testing.T) {
	cases := []struct {
		input string
		want  int
	}{
		{"2\n", 1},
		{"\n", 0},
		{"7\n", -1},
		{"junk\n", -1},
	}
	for _, tc := range cases {
		term := NewTerminalWith(strings.NewReader(tc.input), &bytes.Buffer{})
		got, err := term.Choose("Pick one", []string{"a.html", "b.html"})
		if err != nil {
			t.Fatalf("choose(%q): %v", tc.input, err)
		}
		if got != tc.want {
			t.Fatalf("choose(%q) = %d, want %d", tc.input, got, tc.want)
		}
	}
}

func TestStaticProvider(t *testing.T) {
	static := NewStatic(map[string]string{"name": "Pre Supplied", "type": ""})

	got, err := static.Ask("name", "Display name", "fallback")
	if err != nil || got != "Pre Supplied" {
		t.Fatalf("ask name = %q, %v", got, err)
	}
	got, err = static.Ask("type", "Type", "html")
	if err != nil || got != "html" {
		t.Fatalf("blank answer should fall back, got %q, %v", got, err)
	}

	if idx, _ := static.Choose("Pick", []string{"a", "b"}); idx != -1 {
		t.Fatalf("unset choice should be -1, got %d", idx)
	}
	static.Choice = 1
	if idx, _ := static.Choose("Pick", []string{"a", "b"}); idx != 1 {
		t.Fatalf("choice = %d, want 1", idx)
	}
}
