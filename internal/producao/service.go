package producao

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/imxdigital/producao-tracker/constants"
	"github.com/imxdigital/producao-tracker/internal/common"
	"github.com/imxdigital/producao-tracker/internal/entity"
	"github.com/imxdigital/producao-tracker/internal/repository"
)

// Page is the immutable result of one fetch. The caller owns any state built
// from it; the engine keeps nothing between calls.
type Page struct {
	Jobs    []*entity.Job `json:"jobs"`
	HasMore bool          `json:"has_more"`
}

// Service resolves paginated, filtered job listings. The pipeline is strictly
// sequential: search or classification optionally produce a restricting
// identifier set, the composer builds the query, the pager executes it, then
// customer resolution and date enrichment overlay the page.
type Service struct {
	jobs       repository.JobsRepository
	phc        repository.PHCRepository
	resolver   *Resolver
	classifier *Classifier
	cfg        common.ListingConfig
	logger     *slog.Logger
	now        func() time.Time
}

func NewService(
	jobs repository.JobsRepository,
	items repository.ItemsRepository,
	logistica repository.LogisticaRepository,
	phc repository.PHCRepository,
	cfg common.ListingConfig,
	logger *slog.Logger,
) *Service {
	return &Service{
		jobs:       jobs,
		phc:        phc,
		resolver:   NewResolver(items, logger),
		classifier: NewClassifier(jobs, items, logistica, logger),
		cfg:        cfg,
		logger:     logger,
		now:        time.Now,
	}
}

// FetchPage returns one page of jobs matching criteria, plus whether more
// pages exist. clientes is the directory snapshot used for name resolution,
// immutable for the duration of the call.
//
// Failure policy: a failed search or classification produces an empty page
// (never an unfiltered one); a failed main query is returned as an error with
// a user-displayable message; enrichment and resolution failures degrade
// silently.
func (s *Service) FetchPage(ctx context.Context, criteria entity.FilterCriteria, clientes []entity.ClienteOption) (Page, error) {
	page := criteria.Page
	if page < 0 {
		page = 0
	}
	pageSize := s.cfg.PageSize
	offset := page * pageSize
	empty := Page{Jobs: []*entity.Job{}}

	// At most one of the search resolver and the status classifier runs; an
	// item/code search is global and wins over tab classification.
	var restriction []uuid.UUID
	switch {
	case criteria.HasItemSearch():
		ids, err := s.resolver.JobIDs(ctx, criteria.SearchTerms())
		if err != nil {
			s.logger.Error("item search failed, returning empty page", "terms", criteria.SearchTerms(), "error", err)
			return empty, nil
		}
		if len(ids) == 0 {
			return empty, nil
		}
		restriction = ids
	case criteria.Tab == constants.TabEmCurso || criteria.Tab == constants.TabConcluidos:
		var since *time.Time
		if !criteria.HasDirectFilters() {
			since = s.windowStart(criteria.Tab)
		}
		ids, err := s.classifier.JobIDs(ctx, criteria.Tab, since)
		if err != nil {
			s.logger.Error("status classification failed, returning empty page", "tab", criteria.Tab, "error", err)
			return empty, nil
		}
		if len(ids) == 0 {
			return empty, nil
		}
		restriction = ids
	}

	q := s.composeQuery(criteria, restriction)
	jobs, total, err := s.jobs.ListPage(ctx, q, pageSize, offset)
	if err != nil {
		s.logger.Error("failed to load production jobs", "page", page, "error", err)
		return Page{}, common.NewAppError("JOBS_QUERY", "Failed to load production jobs", err)
	}
	if jobs == nil {
		jobs = []*entity.Job{}
	}

	ResolveClientes(jobs, clientes)
	s.enrichReceivedDates(ctx, jobs)

	return Page{
		Jobs:    jobs,
		HasMore: total > offset+pageSize,
	}, nil
}
