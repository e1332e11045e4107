package producao

import (
	"context"

	"github.com/imxdigital/producao-tracker/internal/entity"
)

// enrichReceivedDates overlays the authoritative received date from the
// external system onto each job's data_in, keyed by job number. Jobs the
// external system does not know keep their fallback (the creation timestamp).
// Failure is non-fatal: the page ships un-enriched and the failure is only
// logged.
func (s *Service) enrichReceivedDates(ctx context.Context, jobs []*entity.Job) {
	seen := make(map[string]struct{}, len(jobs))
	var fos []string
	for _, job := range jobs {
		if job.NumeroFO == "" {
			continue
		}
		if _, ok := seen[job.NumeroFO]; ok {
			continue
		}
		seen[job.NumeroFO] = struct{}{}
		fos = append(fos, job.NumeroFO)
	}
	if len(fos) == 0 {
		return
	}

	dates, err := s.phc.ReceivedDates(ctx, fos)
	if err != nil {
		s.logger.Warn("phc date enrichment failed, keeping fallback dates", "error", err)
		return
	}
	for _, job := range jobs {
		if date, ok := dates[job.NumeroFO]; ok {
			d := date
			job.DataIn = &d
		}
	}
}
