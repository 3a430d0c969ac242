package catalog

import (
	"fmt"
	"strings"

	"gamedock/internal/services"
)

// RunFields are the values a pipeline run actually produced. Thumbnail is
// empty when no candidate was found this run; an empty value never erases a
// previously stored path.
type RunFields struct {
	Version     string
	EntryPoint  string
	Thumbnail   string
	LastUpdated string
}

// DescriptiveFields are the operator-supplied values required when a run
// inserts a previously-unseen id.
type DescriptiveFields struct {
	Name        string
	Type        string
	Description string
}

// Reconcile upserts the entry for id into doc. Existing entries keep every
// field the run did not produce; new entries are appended with the supplied
// descriptive fields. Unknown game types are rejected.
func Reconcile(doc *Document, id string, run RunFields, fresh DescriptiveFields) error {
	if strings.TrimSpace(id) == "" {
		return services.Wrap(services.ErrInput, "reconcile", "", "game id must not be empty", nil)
	}

	if existing := doc.Find(id); existing != nil {
		existing.Version = run.Version
		existing.LastUpdated = run.LastUpdated
		existing.EntryPoint = run.EntryPoint
		if run.Thumbnail != "" {
			existing.Thumbnail = run.Thumbnail
		}
		return nil
	}

	gameType := strings.TrimSpace(fresh.Type)
	if !ValidType(gameType) {
		return services.Wrap(services.ErrInput, "reconcile", "",
			fmt.Sprintf("unknown game type %q (must be one of html, renpy, rpgmaker, download-only)", fresh.Type), nil)
	}

	thumbnail := run.Thumbnail
	if thumbnail == "" {
		thumbnail = DefaultThumbnail
	}

	doc.Games = append(doc.Games, GameEntry{
		ID:          id,
		Name:        fresh.Name,
		Type:        gameType,
		Version:     run.Version,
		Description: fresh.Description,
		Thumbnail:   thumbnail,
		Playable:    Playable(gameType),
		LastUpdated: run.LastUpdated,
		EntryPoint:  run.EntryPoint,
	})
	return nil
}
