package ingest

import "gamedock/internal/classify"

// Report summarizes what a run observed and, for dry runs, what it would
// have done.
type Report struct {
	GameID            string
	Source            string
	Flatten           bool
	RootPrefix        string
	Classification    classify.Classification
	Destination       string
	DestinationExists bool
	BuildRequired     bool
	DryRun            bool

	// Populated only after a full (non-dry) run.
	EntryPoint string
	Thumbnail  string
	Version    string
}
