package repository

import (
	"context"
	"database/sql"
	"log/slog"
	"strings"
	"time"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/imxdigital/producao-tracker/internal/entity"
)

const jobsTable = "folhas_obras"

var jobColumns = []string{
	"id", "numero_fo", "numero_orc", "nome_campanha", "nome", "customer_id",
	"prioridade", "pendente", "notas", "euro_tota", "created_at", "updated_at",
}

// JobQuery is the composed query plan for the main job listing. A nil IDs
// slice means "unrestricted"; an empty non-nil slice must never reach the
// repository (the service short-circuits it to an empty page).
type JobQuery struct {
	IDs       []uuid.UUID
	NumeroFO  string
	NumeroORC string
	Campanha  string
	Cliente   string
	Pendente  *bool
	Since     *time.Time
}

type JobsRepository interface {
	// ListPage returns one page of jobs matching q, ordered by created_at
	// descending (id ascending on ties), together with the exact total count
	// of matching rows.
	ListPage(ctx context.Context, q JobQuery, limit, offset int) ([]*entity.Job, int, error)
	// ListIDs returns the identifiers of jobs with the given pendente flag,
	// optionally restricted to jobs created at or after since.
	ListIDs(ctx context.Context, pendente bool, since *time.Time) ([]uuid.UUID, error)
}

type jobsRepository struct {
	db      *sql.DB
	dialect string
	logger  *slog.Logger
}

func NewJobsRepository(db *sql.DB, dialect string, logger *slog.Logger) JobsRepository {
	return &jobsRepository{
		db:      db,
		dialect: dialect,
		logger:  logger,
	}
}

func (q JobQuery) predicates() []*entsql.Predicate {
	var ps []*entsql.Predicate
	if q.IDs != nil {
		ids := make([]any, len(q.IDs))
		for i, id := range q.IDs {
			ids[i] = id.String()
		}
		ps = append(ps, entsql.In("id", ids...))
	}
	if s := strings.TrimSpace(q.NumeroFO); s != "" {
		ps = append(ps, entsql.ContainsFold("numero_fo", s))
	}
	if s := strings.TrimSpace(q.NumeroORC); s != "" {
		ps = append(ps, entsql.ContainsFold("numero_orc", s))
	}
	if s := strings.TrimSpace(q.Campanha); s != "" {
		ps = append(ps, entsql.ContainsFold("nome_campanha", s))
	}
	if s := strings.TrimSpace(q.Cliente); s != "" {
		ps = append(ps, entsql.ContainsFold("nome", s))
	}
	if q.Pendente != nil {
		ps = append(ps, entsql.EQ("pendente", *q.Pendente))
	}
	if q.Since != nil {
		ps = append(ps, entsql.GTE("created_at", *q.Since))
	}
	return ps
}

func (r *jobsRepository) ListPage(ctx context.Context, q JobQuery, limit, offset int) ([]*entity.Job, int, error) {
	b := entsql.Dialect(r.dialect)
	sel := b.Select(jobColumns...).From(b.Table(jobsTable))
	if ps := q.predicates(); len(ps) > 0 {
		sel.Where(entsql.And(ps...))
	}
	sel.OrderBy(entsql.Desc("created_at"), entsql.Asc("id"))
	sel.Limit(limit).Offset(offset)

	query, args := sel.Query()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("failed to list jobs", "error", err)
		return nil, 0, err
	}
	defer rows.Close()

	var jobs []*entity.Job
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			r.logger.Error("failed to scan job row", "error", err)
			return nil, 0, err
		}
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	total, err := r.count(ctx, q)
	if err != nil {
		r.logger.Error("failed to count jobs", "error", err)
		return nil, 0, err
	}
	return jobs, total, nil
}

func (r *jobsRepository) count(ctx context.Context, q JobQuery) (int, error) {
	b := entsql.Dialect(r.dialect)
	sel := b.Select(entsql.Count("*")).From(b.Table(jobsTable))
	if ps := q.predicates(); len(ps) > 0 {
		sel.Where(entsql.And(ps...))
	}
	query, args := sel.Query()
	var total int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

func (r *jobsRepository) ListIDs(ctx context.Context, pendente bool, since *time.Time) ([]uuid.UUID, error) {
	b := entsql.Dialect(r.dialect)
	sel := b.Select("id").From(b.Table(jobsTable))
	pred := entsql.EQ("pendente", pendente)
	if since != nil {
		pred = entsql.And(pred, entsql.GTE("created_at", *since))
	}
	sel.Where(pred)

	query, args := sel.Query()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("failed to list job ids", "error", err)
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

func scanJob(rows *sql.Rows) (*entity.Job, error) {
	var (
		job        entity.Job
		numeroFO   sql.NullString
		numeroORC  sql.NullString
		campanha   sql.NullString
		nome       sql.NullString
		customerID sql.NullInt64
		notas      sql.NullString
		euroTotal  decimal.NullDecimal
	)
	err := rows.Scan(
		&job.ID, &numeroFO, &numeroORC, &campanha, &nome, &customerID,
		&job.Prioridade, &job.Pendente, &notas, &euroTotal,
		&job.CreatedAt, &job.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	job.NumeroFO = numeroFO.String
	if numeroORC.Valid {
		job.NumeroORC = &numeroORC.String
	}
	job.NomeCampanha = campanha.String
	job.Cliente = nome.String
	if customerID.Valid {
		job.CustomerID = &customerID.Int64
	}
	if notas.Valid {
		job.Notas = &notas.String
	}
	if euroTotal.Valid {
		job.EuroTotal = &euroTotal.Decimal
	}
	// data_in falls back to the creation timestamp until enrichment overlays
	// the authoritative received date.
	created := job.CreatedAt
	job.DataIn = &created
	return &job, nil
}
