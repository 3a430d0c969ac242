package classify

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"

	"gamedock/internal/source"
	"gamedock/internal/testsupport"
)

func openBoth(t *testing.T, entries map[string]string) map[string]source.Accessor {
	t.Helper()

	zipPath := filepath.Join(t.TempDir(), "pkg.zip")
	testsupport.WriteZip(t, zipPath, entries)
	zipAcc, err := source.OpenZip(zipPath)
	if err != nil {
		t.Fatalf("open zip: %v", err)
	}
	t.Cleanup(func() { _ = zipAcc.Close() })

	memFs := afero.NewMemMapFs()
	for rel, content := range entries {
		if err := memFs.MkdirAll(filepath.Dir(filepath.Join("/pkg", rel)), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := afero.WriteFile(memFs, filepath.Join("/pkg", rel), []byte(content), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
	dirAcc := source.NewDirAccessor(memFs, "/pkg")

	return map[string]source.Accessor{"zip": zipAcc, "dir": dirAcc}
}

func TestClassifyParity(t *testing.T) {
	cases := []struct {
		name    string
		entries map[string]string
		root    string
		want    Classification
	}{
		{
			name: "buildable source",
			entries: map[string]string{
				"game/script.rpy": "label start:",
				"game/gui.rpyc":   "compiled",
			},
			want: Buildable,
		},
		{
			name: "compiled only",
			entries: map[string]string{
				"game/script.rpyc": "compiled",
				"game/gui.rpyc":    "compiled",
			},
			want: PrebuiltDistribution,
		},
		{
			name: "static bundle without game dir",
			entries: map[string]string{
				"index.html": "<html>",
				"main.js":    "app()",
			},
			want: StaticBundle,
		},
		{
			name: "game dir without markers",
			entries: map[string]string{
				"game/notes.txt": "nothing",
			},
			want: StaticBundle,
		},
		{
			name: "flattened root",
			entries: map[string]string{
				"MyVN/game/script.rpy": "label start:",
			},
			root: "MyVN",
			want: Buildable,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for backend, acc := range openBoth(t, tc.entries) {
				got, err := Classify(acc, tc.root)
				if err != nil {
					t.Fatalf("%s: classify: %v", backend, err)
				}
				if got != tc.want {
					t.Fatalf("%s: classification = %v, want %v", backend, got, tc.want)
				}
			}
		})
	}
}

func TestClassificationString(t *testing.T) {
	if Buildable.String() != "buildable" {
		t.Fatalf("unexpected string %q", Buildable.String())
	}
	if PrebuiltDistribution.String() != "prebuilt-distribution" {
		t.Fatalf("unexpected string %q", PrebuiltDistribution.String())
	}
	if StaticBundle.String() != "static-bundle" {
		t.Fatalf("unexpected string %q", StaticBundle.String())
	}
}
