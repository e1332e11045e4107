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

// Classifier derives the em_curso/concluidos bucket of candidate jobs from
// their items and delivery entries. Pendente jobs are excluded upstream; they
// live in their own tab driven purely by the flag.
type Classifier struct {
	jobs      repository.JobsRepository
	items     repository.ItemsRepository
	logistica repository.LogisticaRepository
	logger    *slog.Logger
}

func NewClassifier(jobs repository.JobsRepository, items repository.ItemsRepository, logistica repository.LogisticaRepository, logger *slog.Logger) *Classifier {
	return &Classifier{
		jobs:      jobs,
		items:     items,
		logistica: logistica,
		logger:    logger,
	}
}

// JobIDs returns the identifiers of candidate jobs belonging to tab. When
// since is non-nil, only jobs created at or after since are considered.
// Errors must be treated by the caller as "no matching jobs", never as "all
// jobs".
func (c *Classifier) JobIDs(ctx context.Context, tab constants.Tab, since *time.Time) ([]uuid.UUID, error) {
	candidates, err := c.jobs.ListIDs(ctx, false, since)
	if err != nil {
		return nil, common.WrapError(err, "list candidate jobs")
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	items, err := c.items.ListByJobIDs(ctx, candidates)
	if err != nil {
		return nil, common.WrapError(err, "list items for classification")
	}
	itemIDs := make([]uuid.UUID, len(items))
	for i, item := range items {
		itemIDs[i] = item.ID
	}
	entries, err := c.logistica.ListByItemIDs(ctx, itemIDs)
	if err != nil {
		return nil, common.WrapError(err, "list delivery entries for classification")
	}

	completed := CompletedSet(candidates, items, entries)
	wantCompleted := tab == constants.TabConcluidos
	var out []uuid.UUID
	for _, id := range candidates {
		if completed[id] == wantCompleted {
			out = append(out, id)
		}
	}
	return out, nil
}

// CompletedSet reports, per candidate job, whether the job counts as
// concluido: at least one item, every item with at least one delivery entry,
// and every entry concluido. A job with zero items has shipped nothing and is
// therefore em_curso, as is a job with any entry-less item or any open entry.
func CompletedSet(jobIDs []uuid.UUID, items []*entity.Item, entries []*entity.LogisticsEntry) map[uuid.UUID]bool {
	entriesByItem := make(map[uuid.UUID][]bool, len(items))
	for _, e := range entries {
		entriesByItem[e.ItemID] = append(entriesByItem[e.ItemID], e.Concluido)
	}
	itemsByJob := make(map[uuid.UUID][]uuid.UUID, len(jobIDs))
	for _, item := range items {
		itemsByJob[item.FolhaObraID] = append(itemsByJob[item.FolhaObraID], item.ID)
	}

	completed := make(map[uuid.UUID]bool, len(jobIDs))
	for _, jobID := range jobIDs {
		jobItems := itemsByJob[jobID]
		if len(jobItems) == 0 {
			completed[jobID] = false
			continue
		}
		all := true
		for _, itemID := range jobItems {
			flags := entriesByItem[itemID]
			if len(flags) == 0 {
				all = false
				break
			}
			for _, concluido := range flags {
				if !concluido {
					all = false
					break
				}
			}
			if !all {
				break
			}
		}
		completed[jobID] = all
	}
	return completed
}
