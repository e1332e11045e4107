package producao

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/imxdigital/producao-tracker/internal/common"
	"github.com/imxdigital/producao-tracker/internal/repository"
)

// Resolver runs the cross-entity item/code search that narrows the job
// listing to an identifier set.
type Resolver struct {
	items  repository.ItemsRepository
	logger *slog.Logger
}

func NewResolver(items repository.ItemsRepository, logger *slog.Logger) *Resolver {
	return &Resolver{
		items:  items,
		logger: logger,
	}
}

// JobIDs returns the distinct identifiers of jobs with at least one item
// matching any term on descricao or codigo. An empty result means "empty
// restriction": the pipeline must short-circuit to an empty page, not fall
// through to an unrestricted listing. Errors carry the same fail-closed
// obligation.
func (r *Resolver) JobIDs(ctx context.Context, terms []string) ([]uuid.UUID, error) {
	ids, err := r.items.SearchJobIDs(ctx, terms)
	if err != nil {
		return nil, common.WrapError(err, "search items")
	}
	return ids, nil
}
