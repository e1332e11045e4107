package producao

import (
	"time"

	"github.com/google/uuid"

	"github.com/imxdigital/producao-tracker/constants"
	"github.com/imxdigital/producao-tracker/internal/entity"
	"github.com/imxdigital/producao-tracker/internal/repository"
)

// composeQuery merges the restriction set, direct field filters, and the
// per-tab lookback window in strict precedence order:
//
//  1. restriction set present: scope to exactly those identifiers, field
//     filters still narrow on top, never a lookback window;
//  2. no field filter present: the tab's default lookback window bounds the
//     query;
//  3. at least one field filter present: no window, an explicit search is
//     never time-bounded.
//
// Field filters always AND together and with the applicable rule above. The
// pendentes tab filters on the flag directly. Results are ordered created_at
// DESC with id ASC as a deterministic tie-break.
func (s *Service) composeQuery(criteria entity.FilterCriteria, restriction []uuid.UUID) repository.JobQuery {
	q := repository.JobQuery{
		NumeroFO:  criteria.NumeroFO,
		NumeroORC: criteria.NumeroORC,
		Campanha:  criteria.Campanha,
		Cliente:   criteria.Cliente,
	}
	if criteria.Tab == constants.TabPendentes {
		pendente := true
		q.Pendente = &pendente
	}
	if restriction != nil {
		q.IDs = restriction
		return q
	}
	if !criteria.HasDirectFilters() {
		q.Since = s.windowStart(criteria.Tab)
	}
	return q
}

// windowStart returns the lower bound of the tab's lookback window, or nil
// when the tab has no configured window.
func (s *Service) windowStart(tab constants.Tab) *time.Time {
	months := s.cfg.WindowMonths(string(tab))
	if months <= 0 {
		return nil
	}
	start := s.now().AddDate(0, -months, 0)
	return &start
}
