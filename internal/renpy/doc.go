// Package renpy wraps the external Ren'Py SDK: installation discovery,
// pre-build project preparation, the distribute subprocess, and discovery
// of the web build output it writes beside the project.
package renpy
