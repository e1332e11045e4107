package common

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig()
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 50, cfg.Listing.PageSize)
	assert.Equal(t, 12, cfg.Listing.EmCursoWindowMonths)
	assert.Equal(t, 6, cfg.Listing.ConcluidosWindowMonths)
	assert.Equal(t, 12, cfg.Listing.PendentesWindowMonths)
	assert.Equal(t, 5*time.Second, cfg.Listing.PHCLookupTimeout)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("PAGE_SIZE", "25")
	t.Setenv("WINDOW_CONCLUIDOS_MONTHS", "3")
	t.Setenv("PHC_LOOKUP_TIMEOUT", "2s")
	t.Setenv("DB_MAX_CONNS", "not-a-number")

	cfg := LoadConfig()
	assert.Equal(t, 25, cfg.Listing.PageSize)
	assert.Equal(t, 3, cfg.Listing.ConcluidosWindowMonths)
	assert.Equal(t, 2*time.Second, cfg.Listing.PHCLookupTimeout)
	assert.Equal(t, int32(20), cfg.Database.MaxConns, "unparseable values fall back to the default")
}

func TestWindowMonths(t *testing.T) {
	l := ListingConfig{EmCursoWindowMonths: 12, ConcluidosWindowMonths: 6, PendentesWindowMonths: 12}
	assert.Equal(t, 12, l.WindowMonths("em_curso"))
	assert.Equal(t, 6, l.WindowMonths("concluidos"))
	assert.Equal(t, 12, l.WindowMonths("pendentes"))
	assert.Equal(t, 0, l.WindowMonths(""))
	assert.Equal(t, 0, l.WindowMonths("archived"))
}

func TestConfigValidate(t *testing.T) {
	valid := &Config{
		Database: DatabaseConfig{DSN: "postgres://localhost/producao"},
		Server:   ServerConfig{Addr: ":8080"},
		Listing:  ListingConfig{PageSize: 50},
	}
	require.NoError(t, valid.Validate())

	noDSN := *valid
	noDSN.Database.DSN = ""
	err := noDSN.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)

	badPageSize := *valid
	badPageSize.Listing.PageSize = 0
	assert.Error(t, badPageSize.Validate())
}

func TestAppError(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewAppError("JOBS_QUERY", "Failed to load production jobs", cause)

	assert.Equal(t, "JOBS_QUERY: Failed to load production jobs: connection refused", err.Error())
	assert.ErrorIs(t, err, cause)

	var appErr *AppError
	require.ErrorAs(t, error(err), &appErr)
	assert.Equal(t, "Failed to load production jobs", appErr.Message)
}

func TestWrapError(t *testing.T) {
	assert.NoError(t, WrapError(nil, "ignored"))

	cause := errors.New("timeout")
	err := WrapError(cause, "list candidate jobs")
	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "list candidate jobs: timeout", err.Error())
}
