package repository

import (
	"context"
	"database/sql"
	"log/slog"

	entsql "entgo.io/ent/dialect/sql"

	"github.com/imxdigital/producao-tracker/internal/entity"
)

const clientesTable = "clientes"

type ClientesRepository interface {
	// ListOptions returns the customer directory as {value,label} pairs,
	// ordered by label. Callers treat the returned slice as an immutable
	// snapshot.
	ListOptions(ctx context.Context) ([]entity.ClienteOption, error)
}

type clientesRepository struct {
	db      *sql.DB
	dialect string
	logger  *slog.Logger
}

func NewClientesRepository(db *sql.DB, dialect string, logger *slog.Logger) ClientesRepository {
	return &clientesRepository{
		db:      db,
		dialect: dialect,
		logger:  logger,
	}
}

func (r *clientesRepository) ListOptions(ctx context.Context) ([]entity.ClienteOption, error) {
	b := entsql.Dialect(r.dialect)
	sel := b.Select("id", "nome_cl").From(b.Table(clientesTable)).
		OrderBy(entsql.Asc("nome_cl"))

	query, args := sel.Query()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("failed to list clientes", "error", err)
		return nil, err
	}
	defer rows.Close()

	var options []entity.ClienteOption
	for rows.Next() {
		var opt entity.ClienteOption
		if err := rows.Scan(&opt.Value, &opt.Label); err != nil {
			return nil, err
		}
		options = append(options, opt)
	}
	return options, rows.Err()
}
