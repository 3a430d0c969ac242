// Package source provides a uniform read-only view over a game package,
// whether supplied as a zip archive or a loose directory, plus the unpack
// planning that removes a redundant top-level folder.
package source
