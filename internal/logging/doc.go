// Package logging builds the slog logger used across gamedock, with a
// compact console format for interactive use and JSON for machine capture.
package logging
