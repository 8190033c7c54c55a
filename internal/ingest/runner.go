package ingest

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/deniz/campushub/internal/app/models"
	"github.com/deniz/campushub/internal/intra"
	"github.com/deniz/campushub/internal/pkg/apperrors"
)

// PageSize is the fixed number of records requested per upstream page
const PageSize = 100

// ProjectSource fetches one page of raw cursus projects
type ProjectSource interface {
	FetchProjects(ctx context.Context, cursusID, page, perPage int) ([]intra.Project, error)
}

// ProjectStore persists normalized projects. Upsert must be atomic per
// project_id and report whether the row was created or updated.
// SetAutoSpecialization replaces the project's specialization set with the
// named catalog entry; a missing catalog entry yields
// apperrors.ErrTagNotFound.
type ProjectStore interface {
	Upsert(ctx context.Context, project *models.Project) (created bool, err error)
	SetAutoSpecialization(ctx context.Context, externalProjectID int64, name string) error
}

// Config controls one ingestion run
type Config struct {
	CursusID int
	// Limit optionally caps created+updated; 0 means no cap. When the cap
	// is reached mid-page, remaining items of that page are skipped.
	Limit int
	// PerPage defaults to PageSize
	PerPage int
}

// Result are the counters of one completed run
type Result struct {
	Created int
	Updated int
	Pages   int
}

// Total returns created + updated
func (r Result) Total() int {
	return r.Created + r.Updated
}

// Runner drives the ingestion pipeline: sequential paginated fetch,
// classification, extraction and upsert. One fetch in flight at a time;
// items are processed in list order so counters stay deterministic.
type Runner struct {
	source ProjectSource
	store  ProjectStore
	sink   DiagnosticSink
	logger zerolog.Logger
}

// NewRunner creates a pipeline runner. sink may be nil to disable
// diagnostics.
func NewRunner(source ProjectSource, store ProjectStore, sink DiagnosticSink, logger zerolog.Logger) *Runner {
	return &Runner{
		source: source,
		store:  store,
		sink:   sink,
		logger: logger,
	}
}

// Run executes one ingestion run. Any source or store error aborts the run
// and is returned as-is; upserts already committed stay committed.
func (r *Runner) Run(ctx context.Context, cfg Config) (Result, error) {
	perPage := cfg.PerPage
	if perPage <= 0 {
		perPage = PageSize
	}

	var res Result
	page := 1

	for {
		if cfg.Limit > 0 && res.Total() >= cfg.Limit {
			break
		}

		projects, err := r.source.FetchProjects(ctx, cfg.CursusID, page, perPage)
		if err != nil {
			r.logger.Error().Err(err).Int("page", page).Msg("Fetching projects failed")
			return res, err
		}

		if len(projects) == 0 {
			break
		}

		limitReached, err := r.processPage(ctx, projects, cfg.Limit, &res)
		if err != nil {
			return res, err
		}

		res.Pages++
		r.logger.Info().
			Int("page", page).
			Int("created", res.Created).
			Int("updated", res.Updated).
			Msg("Processed page")

		if limitReached {
			break
		}
		page++
	}

	return res, nil
}

// processPage runs classification, extraction and upsert over one page in
// list order. It reports whether the run limit was reached.
func (r *Runner) processPage(ctx context.Context, projects []intra.Project, limit int, res *Result) (bool, error) {
	for i := range projects {
		p := &projects[i]

		// Informational category listing records with no deprecated campus.
		// Computed for every raw record, independent of the gates.
		if !HasExcludedCampus(p) {
			r.record(CategoryNotExcludedCampus, p.Slug)
		}

		accepted, category := Classify(p)
		if !accepted {
			r.record(category, rejectionLine(p, category))
			continue
		}

		project := NewProject(p)
		r.logger.Debug().Str("slug", project.Slug).Msg("Saving project")

		created, err := r.store.Upsert(ctx, project)
		if err != nil {
			r.logger.Error().Err(err).Str("slug", project.Slug).Msg("Upsert failed")
			return false, fmt.Errorf("upsert project %s: %w", project.Slug, err)
		}
		if created {
			res.Created++
		} else {
			res.Updated++
		}

		if name, ok := DeriveSpecialization(p.Slug); ok {
			err := r.store.SetAutoSpecialization(ctx, project.ProjectID, name)
			if errors.Is(err, apperrors.ErrTagNotFound) {
				// Catalog row absent; the assignment is skipped, not fatal
				r.logger.Debug().Str("slug", project.Slug).Str("specialization", name).
					Msg("Specialization catalog entry missing, assignment skipped")
			} else if err != nil {
				return false, fmt.Errorf("assign specialization for %s: %w", project.Slug, err)
			}
		}

		if limit > 0 && res.Total() >= limit {
			return true, nil
		}
	}

	return false, nil
}

// rejectionLine formats the diagnostic line for a rejected record.
// The wording matches the historical report format, spelling included
// (see categoryFiles).
func rejectionLine(p *intra.Project, category Category) string {
	switch category {
	case CategoryLowCampus:
		return fmt.Sprintf("%s, %d", p.Slug, len(p.Campus))
	case CategoryNotSubscriptable:
		return p.Slug + ", not subscritable"
	case CategoryForbiddenKeyword:
		return p.Slug + ", forbidden keyword"
	default:
		return p.Slug
	}
}

func (r *Runner) record(category Category, line string) {
	if r.sink == nil {
		return
	}
	r.sink.Record(category, line)
}
