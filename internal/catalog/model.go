package catalog

// Game types accepted by the catalog. The set is closed; the reconciler
// rejects anything else instead of persisting a free-form string.
const (
	TypeHTML         = "html"
	TypeRenpy        = "renpy"
	TypeRPGMaker     = "rpgmaker"
	TypeDownloadOnly = "download-only"
)

// DefaultThumbnail is the conventional path recorded when no thumbnail
// candidate was discovered, keeping the document schema well-formed.
const DefaultThumbnail = "assets/placeholder.png"

// GameEntry is one persisted catalog record. ID is the stable slug the
// serving layer and removal tooling key on; it never changes after insert.
type GameEntry struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Version     string `json:"version"`
	Description string `json:"description"`
	Thumbnail   string `json:"thumbnail"`
	Playable    bool   `json:"playable"`
	LastUpdated string `json:"lastUpdated"`
	EntryPoint  string `json:"entryPoint"`
}

// Document is the whole catalog: an ordered sequence of entries with no
// semantics beyond stable lookup by ID.
type Document struct {
	Games []GameEntry `json:"games"`
}

// ValidType reports whether t belongs to the closed game-type set.
func ValidType(t string) bool {
	switch t {
	case TypeHTML, TypeRenpy, TypeRPGMaker, TypeDownloadOnly:
		return true
	default:
		return false
	}
}

// Playable derives the playable flag from the game type.
func Playable(t string) bool {
	return t != TypeDownloadOnly
}

// Find returns a pointer to the entry with the given id, or nil.
func (d *Document) Find(id string) *GameEntry {
	for i := range d.Games {
		if d.Games[i].ID == id {
			return &d.Games[i]
		}
	}
	return nil
}
