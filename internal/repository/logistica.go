package repository

import (
	"context"
	"database/sql"
	"log/slog"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/imxdigital/producao-tracker/internal/entity"
)

const logisticaTable = "logistica_entregas"

type LogisticaRepository interface {
	// ListByItemIDs returns all delivery entries belonging to the given items.
	ListByItemIDs(ctx context.Context, itemIDs []uuid.UUID) ([]*entity.LogisticsEntry, error)
}

type logisticaRepository struct {
	db      *sql.DB
	dialect string
	logger  *slog.Logger
}

func NewLogisticaRepository(db *sql.DB, dialect string, logger *slog.Logger) LogisticaRepository {
	return &logisticaRepository{
		db:      db,
		dialect: dialect,
		logger:  logger,
	}
}

func (r *logisticaRepository) ListByItemIDs(ctx context.Context, itemIDs []uuid.UUID) ([]*entity.LogisticsEntry, error) {
	if len(itemIDs) == 0 {
		return nil, nil
	}
	ids := make([]any, len(itemIDs))
	for i, id := range itemIDs {
		ids[i] = id.String()
	}

	b := entsql.Dialect(r.dialect)
	sel := b.Select("id", "item_id", "concluido").
		From(b.Table(logisticaTable)).
		Where(entsql.In("item_id", ids...))

	query, args := sel.Query()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("failed to list logistics entries", "error", err)
		return nil, err
	}
	defer rows.Close()

	var entries []*entity.LogisticsEntry
	for rows.Next() {
		var (
			entry     entity.LogisticsEntry
			concluido sql.NullBool
		)
		if err := rows.Scan(&entry.ID, &entry.ItemID, &concluido); err != nil {
			return nil, err
		}
		entry.Concluido = concluido.Valid && concluido.Bool
		entries = append(entries, &entry)
	}
	return entries, rows.Err()
}
