package repository

import (
	"context"
	"database/sql"
	"log/slog"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/imxdigital/producao-tracker/internal/entity"
)

const itemsTable = "items_base"

type ItemsRepository interface {
	// SearchJobIDs returns the distinct identifiers of jobs owning at least
	// one item whose descricao or codigo contains any of the given terms
	// (case-insensitive). Terms are OR-combined: an item matching a single
	// term qualifies its job.
	SearchJobIDs(ctx context.Context, terms []string) ([]uuid.UUID, error)
	// ListByJobIDs returns all items belonging to the given jobs.
	ListByJobIDs(ctx context.Context, jobIDs []uuid.UUID) ([]*entity.Item, error)
}

type itemsRepository struct {
	db      *sql.DB
	dialect string
	logger  *slog.Logger
}

func NewItemsRepository(db *sql.DB, dialect string, logger *slog.Logger) ItemsRepository {
	return &itemsRepository{
		db:      db,
		dialect: dialect,
		logger:  logger,
	}
}

func (r *itemsRepository) SearchJobIDs(ctx context.Context, terms []string) ([]uuid.UUID, error) {
	if len(terms) == 0 {
		return nil, nil
	}
	var ps []*entsql.Predicate
	for _, term := range terms {
		ps = append(ps,
			entsql.ContainsFold("descricao", term),
			entsql.ContainsFold("codigo", term),
		)
	}

	b := entsql.Dialect(r.dialect)
	sel := b.Select("folha_obra_id").Distinct().From(b.Table(itemsTable)).
		Where(entsql.Or(ps...))

	query, args := sel.Query()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("failed to search items", "terms", terms, "error", err)
		return nil, err
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *itemsRepository) ListByJobIDs(ctx context.Context, jobIDs []uuid.UUID) ([]*entity.Item, error) {
	if len(jobIDs) == 0 {
		return nil, nil
	}
	ids := make([]any, len(jobIDs))
	for i, id := range jobIDs {
		ids[i] = id.String()
	}

	b := entsql.Dialect(r.dialect)
	sel := b.Select("id", "folha_obra_id", "descricao", "codigo", "quantidade").
		From(b.Table(itemsTable)).
		Where(entsql.In("folha_obra_id", ids...))

	query, args := sel.Query()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("failed to list items", "error", err)
		return nil, err
	}
	defer rows.Close()

	var items []*entity.Item
	for rows.Next() {
		var (
			item       entity.Item
			descricao  sql.NullString
			codigo     sql.NullString
			quantidade sql.NullInt64
		)
		if err := rows.Scan(&item.ID, &item.FolhaObraID, &descricao, &codigo, &quantidade); err != nil {
			return nil, err
		}
		item.Descricao = descricao.String
		item.Codigo = codigo.String
		if quantidade.Valid {
			item.Quantidade = &quantidade.Int64
		}
		items = append(items, &item)
	}
	return items, rows.Err()
}
