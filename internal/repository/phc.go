package repository

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/cenkalti/backoff/v4"
)

const phcHeadersView = "folha_obra_with_orcamento"

// PHCRepository reads the external system of record. It is best-effort by
// contract: callers must tolerate failure without failing the primary
// operation.
type PHCRepository interface {
	// ReceivedDates returns the authoritative received date per job number,
	// for the job numbers that exist in the external system. Job numbers
	// without a date are absent from the map.
	ReceivedDates(ctx context.Context, numeroFOs []string) (map[string]time.Time, error)
}

type phcRepository struct {
	db         *sql.DB
	dialect    string
	schema     string
	maxElapsed time.Duration
	logger     *slog.Logger
}

// NewPHCRepository builds a PHC reader querying the given schema (empty for
// dialects without schema support). maxElapsed caps the retry budget for one
// lookup.
func NewPHCRepository(db *sql.DB, dialect, schema string, maxElapsed time.Duration, logger *slog.Logger) PHCRepository {
	return &phcRepository{
		db:         db,
		dialect:    dialect,
		schema:     schema,
		maxElapsed: maxElapsed,
		logger:     logger,
	}
}

func (r *phcRepository) ReceivedDates(ctx context.Context, numeroFOs []string) (map[string]time.Time, error) {
	if len(numeroFOs) == 0 {
		return map[string]time.Time{}, nil
	}
	fos := make([]any, len(numeroFOs))
	for i, fo := range numeroFOs {
		fos[i] = fo
	}

	b := entsql.Dialect(r.dialect)
	t := b.Table(phcHeadersView)
	if r.schema != "" {
		t.Schema(r.schema)
	}
	sel := b.Select("folha_obra_number", "folha_obra_date").From(t).
		Where(entsql.In("folha_obra_number", fos...))
	query, args := sel.Query()

	dates := make(map[string]time.Time, len(numeroFOs))
	operation := func() error {
		rows, err := r.db.QueryContext(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		for rows.Next() {
			var (
				fo   sql.NullString
				date sql.NullTime
			)
			if err := rows.Scan(&fo, &date); err != nil {
				return backoff.Permanent(err)
			}
			if fo.Valid && date.Valid {
				dates[fo.String] = date.Time
			}
		}
		return rows.Err()
	}

	// BackOff implementations are stateful; always use a fresh instance.
	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = r.maxElapsed
	if err := backoff.Retry(operation, backoff.WithContext(bo, ctx)); err != nil {
		r.logger.Warn("phc received-date lookup failed", "job_numbers", len(numeroFOs), "error", err)
		return nil, err
	}
	return dates, nil
}
