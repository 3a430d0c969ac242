package renpy

import (
	"fmt"
	"os"
	"path/filepath"
)

// Platform icon files that can abort a web packaging run when malformed.
var iconFiles = []string{"icon.ico", "icon.icns"}

const iconStashSuffix = ".gamedock-stash"

// stashIcons renames platform icon files out of the project root and
// returns a restore function. Restoration is best effort and must run on
// every exit path, success or failure.
func stashIcons(projectRoot string) (func(), error) {
	var stashed []string
	for _, name := range iconFiles {
		path := filepath.Join(projectRoot, name)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := os.Rename(path, path+iconStashSuffix); err != nil {
			restorePaths(stashed)
			return nil, fmt.Errorf("stash %s: %w", name, err)
		}
		stashed = append(stashed, path)
	}
	return func() { restorePaths(stashed) }, nil
}

func restorePaths(paths []string) {
	for _, path := range paths {
		_ = os.Rename(path+iconStashSuffix, path)
	}
}
