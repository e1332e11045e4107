package export

import (
	"bytes"
	"context"
	"database/sql"
	"io"
	"log/slog"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	_ "modernc.org/sqlite"

	"github.com/imxdigital/producao-tracker/constants"
	"github.com/imxdigital/producao-tracker/internal/common"
	"github.com/imxdigital/producao-tracker/internal/entity"
	"github.com/imxdigital/producao-tracker/internal/producao"
	"github.com/imxdigital/producao-tracker/internal/repository"
)

const exportTestSchema = `
CREATE TABLE folhas_obras (
    id            TEXT PRIMARY KEY,
    numero_fo     TEXT,
    numero_orc    TEXT,
    nome_campanha TEXT,
    nome          TEXT,
    customer_id   INTEGER,
    prioridade    INTEGER NOT NULL DEFAULT 0,
    pendente      INTEGER NOT NULL DEFAULT 0,
    notas         TEXT,
    euro_tota     TEXT,
    created_at    TIMESTAMP NOT NULL,
    updated_at    TIMESTAMP NOT NULL
);
CREATE TABLE items_base (
    id            TEXT PRIMARY KEY,
    folha_obra_id TEXT NOT NULL,
    descricao     TEXT,
    codigo        TEXT,
    quantidade    INTEGER
);
CREATE TABLE logistica_entregas (
    id        TEXT PRIMARY KEY,
    item_id   TEXT NOT NULL,
    concluido INTEGER
);
CREATE TABLE clientes (
    id      TEXT PRIMARY KEY,
    nome_cl TEXT NOT NULL
);
CREATE TABLE folha_obra_with_orcamento (
    folha_obra_number TEXT,
    folha_obra_date   TIMESTAMP
);
`

func newExportService(t *testing.T) (*Service, *sql.DB) {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })
	_, err = db.Exec(exportTestSchema)
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	jobsRepo := repository.NewJobsRepository(db, dialect.SQLite, logger)
	itemsRepo := repository.NewItemsRepository(db, dialect.SQLite, logger)
	logisticaRepo := repository.NewLogisticaRepository(db, dialect.SQLite, logger)
	clientesRepo := repository.NewClientesRepository(db, dialect.SQLite, logger)
	phcRepo := repository.NewPHCRepository(db, dialect.SQLite, "", time.Second, logger)

	cfg := common.ListingConfig{
		PageSize:               50,
		EmCursoWindowMonths:    12,
		ConcluidosWindowMonths: 6,
		PendentesWindowMonths:  12,
	}
	listing := producao.NewService(jobsRepo, itemsRepo, logisticaRepo, phcRepo, cfg, logger)
	return NewService(listing, clientesRepo, logger), db
}

func TestExportJobsXLSX(t *testing.T) {
	svc, db := newExportService(t)

	now := time.Now().UTC()
	newer := uuid.New()
	older := uuid.New()
	_, err := db.Exec(
		`INSERT INTO folhas_obras (id, numero_fo, numero_orc, nome_campanha, nome, customer_id, prioridade, pendente, notas, euro_tota, created_at, updated_at)
		 VALUES (?, '3002', 'ORC-2', 'VERAO', 'Tipografia Norte', 42, 1, 0, 'urgente', '980.00', ?, ?),
		        (?, '3001', NULL, 'VERAO', 'Cliente Avulso', NULL, 0, 0, NULL, NULL, ?, ?)`,
		newer.String(), now, now,
		older.String(), now.Add(-time.Hour), now.Add(-time.Hour),
	)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO clientes (id, nome_cl) VALUES ('42', 'Tipografia Norte, Lda')`)
	require.NoError(t, err)

	data, err := svc.ExportJobsXLSX(context.Background(), entity.FilterCriteria{Campanha: "verao"})
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	const sheet = "Producao"
	header, err := f.GetCellValue(sheet, "A1")
	require.NoError(t, err)
	assert.Equal(t, "FO", header)

	fo, err := f.GetCellValue(sheet, "A2")
	require.NoError(t, err)
	assert.Equal(t, "3002", fo, "rows follow the listing order, newest first")
	orc, err := f.GetCellValue(sheet, "B2")
	require.NoError(t, err)
	assert.Equal(t, "ORC-2", orc)
	cliente, err := f.GetCellValue(sheet, "D2")
	require.NoError(t, err)
	assert.Equal(t, "Tipografia Norte, Lda", cliente, "customer id resolves through the directory")
	prioridade, err := f.GetCellValue(sheet, "F2")
	require.NoError(t, err)
	assert.Equal(t, "Sim", prioridade)
	total, err := f.GetCellValue(sheet, "I2")
	require.NoError(t, err)
	assert.Equal(t, "980", total)

	fo2, err := f.GetCellValue(sheet, "A3")
	require.NoError(t, err)
	assert.Equal(t, "3001", fo2)
	orc2, err := f.GetCellValue(sheet, "B3")
	require.NoError(t, err)
	assert.Empty(t, orc2)
}

func TestExportJobsXLSXEmptyListing(t *testing.T) {
	svc, _ := newExportService(t)

	data, err := svc.ExportJobsXLSX(context.Background(), entity.FilterCriteria{
		Tab: constants.TabConcluidos,
	})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	header, err := f.GetCellValue("Producao", "A1")
	require.NoError(t, err)
	assert.Equal(t, "FO", header)
	first, err := f.GetCellValue("Producao", "A2")
	require.NoError(t, err)
	assert.Empty(t, first)
}
