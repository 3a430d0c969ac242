package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"gamedock/internal/catalog"
	"gamedock/internal/classify"
	"gamedock/internal/config"
	"gamedock/internal/fileutil"
	"gamedock/internal/input"
	"gamedock/internal/journal"
	"gamedock/internal/renpy"
	"gamedock/internal/services"
	"gamedock/internal/source"
	"gamedock/internal/thumbs"
)

// Builder is the external build collaborator; the production implementation
// is the Ren'Py distribute client.
type Builder interface {
	Distribute(ctx context.Context, projectPath string) (renpy.BuildResult, error)
}

// Request describes one ingestion invocation.
type Request struct {
	ID         string
	SourcePath string
	Version    string
	DryRun     bool
	// Fields pre-supplies descriptive values for a fresh insert; blanks
	// fall through to the input provider.
	Fields catalog.DescriptiveFields
}

// Pipeline sequences one game package through ingestion.
type Pipeline struct {
	cfg      *config.Config
	logger   *slog.Logger
	store    *catalog.Store
	runs     *journal.Store
	provider input.Provider

	newBuilder func(ctx context.Context) (Builder, error)
}

// Option configures the pipeline.
type Option func(*Pipeline)

// WithBuilderFactory overrides how the external build collaborator is
// constructed (primarily for tests).
func WithBuilderFactory(factory func(ctx context.Context) (Builder, error)) Option {
	return func(p *Pipeline) {
		if factory != nil {
			p.newBuilder = factory
		}
	}
}

// WithJournal records finished runs in the given journal store.
func WithJournal(store *journal.Store) Option {
	return func(p *Pipeline) {
		p.runs = store
	}
}

// New constructs a pipeline. The SDK is discovered lazily, only when a run
// actually needs to build.
func New(cfg *config.Config, logger *slog.Logger, store *catalog.Store, provider input.Provider, opts ...Option) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	p := &Pipeline{
		cfg:      cfg,
		logger:   logger.With("component", "ingest"),
		store:    store,
		provider: provider,
	}
	p.newBuilder = func(_ context.Context) (Builder, error) {
		sdk, err := renpy.Discover(cfg.RenPy.SDKDir, cfg.RenPy.Version)
		if err != nil {
			return nil, err
		}
		return renpy.New(sdk, cfg.RenPy.Platform, cfg.RenPy.BuildTimeout, cfg.Paths.StagingDir, logger), nil
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run executes the pipeline for one request and records the outcome in the
// journal when one is configured. The journal row carries the furthest
// stage the run reached, so failures name where they hit.
func (p *Pipeline) Run(ctx context.Context, req Request) (*Report, error) {
	started := time.Now()
	report, stage, err := p.run(ctx, req)

	if p.runs != nil {
		final := StateCommitted
		detail := ""
		if err != nil {
			final = StateFailed
			detail = err.Error()
		}
		recordErr := p.runs.Record(ctx, journal.Run{
			GameID:     req.ID,
			Source:     req.SourcePath,
			DryRun:     req.DryRun,
			Stage:      stage.String(),
			FinalState: final.String(),
			Detail:     detail,
			StartedAt:  started,
			FinishedAt: time.Now(),
		})
		if recordErr != nil {
			p.logger.Warn("journal record failed", "error", recordErr)
		}
	}
	return report, err
}

func (p *Pipeline) run(ctx context.Context, req Request) (*Report, State, error) {
	state := StateInspecting
	if err := validateID(req.ID); err != nil {
		return nil, state, err
	}

	// Inspecting: read-only, shared by dry runs and real runs.
	acc, err := source.Open(req.SourcePath)
	if err != nil {
		return nil, state, services.Wrap(services.ErrInput, "inspect", "open package", req.SourcePath, err)
	}
	defer acc.Close()

	top, err := acc.TopLevelEntries()
	if err != nil {
		return nil, state, services.Wrap(services.ErrStructure, "inspect", "list package", "", err)
	}
	plan := source.PlanUnpack(top)

	shape, err := classify.Classify(acc, plan.Root())
	if err != nil {
		return nil, state, services.Wrap(services.ErrStructure, "inspect", "classify package", "", err)
	}

	dest := p.cfg.GameDir(req.ID)
	destExists := false
	if info, err := os.Stat(dest); err == nil && info.IsDir() {
		destExists = true
	}

	report := &Report{
		GameID:            req.ID,
		Source:            req.SourcePath,
		Flatten:           plan.Flatten,
		RootPrefix:        plan.RootPrefix,
		Classification:    shape,
		Destination:       dest,
		DestinationExists: destExists,
		BuildRequired:     shape == classify.Buildable,
		DryRun:            req.DryRun,
	}

	p.logger.Info("inspected package",
		"game", req.ID,
		"classification", shape.String(),
		"flatten", plan.Flatten,
		"dry_run", req.DryRun)

	if req.DryRun {
		return report, state, nil
	}

	runErr := p.execute(ctx, req, acc, plan, shape, dest, destExists, report, &state)
	if runErr != nil {
		// Rollback scope comes from the machine: the transition into
		// Materializing is the first mutation of the destination.
		if state >= StateMaterializing && services.RollsBack(runErr) {
			if rmErr := os.RemoveAll(dest); rmErr != nil {
				p.logger.Warn("rollback failed", "destination", dest, "error", rmErr)
			} else {
				p.logger.Info("rolled back destination", "destination", dest)
			}
		}
		return nil, state, runErr
	}
	state = StateCommitted
	return report, state, nil
}

func (p *Pipeline) execute(ctx context.Context, req Request, acc source.Accessor, plan source.UnpackPlan, shape classify.Classification, dest string, destExists bool, report *Report, state *State) error {
	// Staging setup is still pre-mutation; the destination is untouched
	// until the transition into Materializing below.
	if err := os.MkdirAll(p.cfg.Paths.StagingDir, 0o755); err != nil {
		return services.Wrap(services.ErrStructure, "materialize", "prepare staging", "", err)
	}
	stage, err := os.MkdirTemp(p.cfg.Paths.StagingDir, req.ID+"-*")
	if err != nil {
		return services.Wrap(services.ErrStructure, "materialize", "create staging", "", err)
	}
	defer os.RemoveAll(stage)

	// Materializing: clearing an old destination is the first mutating
	// transition; from here on a failure rolls the destination back.
	*state = StateMaterializing
	if destExists {
		if err := os.RemoveAll(dest); err != nil {
			return services.Wrap(services.ErrStructure, "materialize", "clear destination", dest, err)
		}
	}
	if err := os.MkdirAll(dest, 0o755); err != nil {
		return services.Wrap(services.ErrStructure, "materialize", "create destination", dest, err)
	}

	// The staged copy keeps the user-supplied package pristine even when
	// the build writes into the project.
	if err := acc.ExtractAll(stage); err != nil {
		return services.Wrap(services.ErrStructure, "materialize", "extract package", "", err)
	}
	projectRoot := stage
	if prefix := plan.Root(); prefix != "" {
		projectRoot = filepath.Join(stage, filepath.FromSlash(prefix))
	}

	if shape == classify.Buildable {
		*state = StateBuilding
		builder, err := p.newBuilder(ctx)
		if err != nil {
			return err
		}
		result, err := builder.Distribute(ctx, projectRoot)
		if err != nil {
			return err
		}
		if err := fileutil.MoveContents(result.WebRoot, dest); err != nil {
			return services.Wrap(services.ErrStructure, "build", "install output", "", err)
		}
		if result.FromArchive {
			_ = os.RemoveAll(result.WebRoot)
		}
	} else {
		if err := fileutil.MoveContents(projectRoot, dest); err != nil {
			return services.Wrap(services.ErrStructure, "materialize", "install content", "", err)
		}
	}

	if err := hoistNestedRoot(dest); err != nil {
		return services.Wrap(services.ErrStructure, "materialize", "normalize layout", "", err)
	}

	*state = StateResolving
	entryPoint, err := resolveEntryPoint(dest, p.provider)
	if err != nil {
		return err
	}
	report.EntryPoint = entryPoint

	thumbnail := ""
	if candidate, ok := thumbs.Select(dest); ok {
		rel, relErr := filepath.Rel(dest, candidate.Path)
		if relErr == nil {
			thumbnail = path.Join(req.ID, filepath.ToSlash(rel))
		}
	} else {
		p.logger.Info("no thumbnail candidate found", "game", req.ID)
	}
	report.Thumbnail = thumbnail

	*state = StateReconciling
	version := strings.TrimSpace(req.Version)
	if version == "" {
		version, err = p.provider.Ask("version", "Version", "1.0")
		if err != nil {
			return services.Wrap(services.ErrInput, "reconcile", "collect version", "", err)
		}
	}
	report.Version = version

	fields, err := p.collectDescriptiveFields(req, shape)
	if err != nil {
		return err
	}

	run := catalog.RunFields{
		Version:     version,
		EntryPoint:  entryPoint,
		Thumbnail:   thumbnail,
		LastUpdated: time.Now().Format("2006-01-02"),
	}
	if err := p.store.Update(func(doc *catalog.Document) error {
		return catalog.Reconcile(doc, req.ID, run, fields)
	}); err != nil {
		return err
	}

	p.logger.Info("committed",
		"game", req.ID,
		"version", version,
		"entry_point", entryPoint,
		"classification", shape.String())
	return nil
}

// collectDescriptiveFields gathers name/type/description for a fresh
// insert, preferring request values over provider answers over defaults.
// Entries that already exist keep their stored fields, so nothing is asked.
func (p *Pipeline) collectDescriptiveFields(req Request, shape classify.Classification) (catalog.DescriptiveFields, error) {
	doc, err := p.store.Load()
	if err != nil {
		return catalog.DescriptiveFields{}, err
	}
	if doc.Find(req.ID) != nil {
		return catalog.DescriptiveFields{}, nil
	}

	fields := req.Fields
	if strings.TrimSpace(fields.Name) == "" {
		fields.Name, err = p.provider.Ask("name", "Display name", titleCase(req.ID))
		if err != nil {
			return catalog.DescriptiveFields{}, services.Wrap(services.ErrInput, "reconcile", "collect name", "", err)
		}
	}
	if strings.TrimSpace(fields.Type) == "" {
		fields.Type, err = p.provider.Ask("type", "Game type (html, renpy, rpgmaker, download-only)", defaultType(shape))
		if err != nil {
			return catalog.DescriptiveFields{}, services.Wrap(services.ErrInput, "reconcile", "collect type", "", err)
		}
	}
	if strings.TrimSpace(fields.Description) == "" {
		fields.Description, err = p.provider.Ask("description", "Description", "")
		if err != nil {
			return catalog.DescriptiveFields{}, services.Wrap(services.ErrInput, "reconcile", "collect description", "", err)
		}
	}
	return fields, nil
}

func defaultType(shape classify.Classification) string {
	switch shape {
	case classify.Buildable:
		return catalog.TypeRenpy
	case classify.PrebuiltDistribution:
		return catalog.TypeDownloadOnly
	default:
		return catalog.TypeHTML
	}
}

func validateID(id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return services.Wrap(services.ErrInput, "inspect", "", "game id is required", nil)
	}
	if strings.ContainsAny(id, "/\\") || id == "." || id == ".." {
		return services.Wrap(services.ErrInput, "inspect", "", fmt.Sprintf("game id %q must be a plain slug", id), nil)
	}
	return nil
}

func titleCase(id string) string {
	cleaned := strings.NewReplacer("-", " ", "_", " ").Replace(id)
	return cases.Title(language.Und).String(cleaned)
}
