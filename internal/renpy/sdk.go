package renpy

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"gamedock/internal/services"
)

// SDK describes a usable Ren'Py installation.
type SDK struct {
	Root     string
	Version  string
	Launcher string
}

const webSupportDir = "web"

// Discover validates the configured SDK installation. Each precondition
// failure is a distinct external-tool error so operators know exactly what
// to install.
func Discover(root, version string) (SDK, error) {
	root = strings.TrimSpace(root)
	if root == "" {
		return SDK{}, services.Wrap(services.ErrExternalTool, "build", "discover sdk",
			"no Ren'Py SDK configured; set renpy.sdk_dir or GAMEDOCK_SDK_DIR", nil)
	}
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return SDK{}, services.Wrap(services.ErrExternalTool, "build", "discover sdk",
			fmt.Sprintf("Ren'Py SDK not found at %s", root), err)
	}

	if info, err := os.Stat(filepath.Join(root, webSupportDir)); err != nil || !info.IsDir() {
		return SDK{}, services.Wrap(services.ErrExternalTool, "build", "discover sdk",
			fmt.Sprintf("SDK at %s has no web build support (missing %s directory); install it from the Ren'Py launcher", root, webSupportDir), nil)
	}

	launcher := filepath.Join(root, launcherName())
	if info, err := os.Stat(launcher); err != nil || info.IsDir() {
		return SDK{}, services.Wrap(services.ErrExternalTool, "build", "discover sdk",
			fmt.Sprintf("launcher executable %s not found in SDK", launcherName()), err)
	}

	return SDK{Root: root, Version: version, Launcher: launcher}, nil
}

func launcherName() string {
	if runtime.GOOS == "windows" {
		return "renpy.exe"
	}
	return "renpy.sh"
}
