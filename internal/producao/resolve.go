package producao

import (
	"strconv"

	"github.com/imxdigital/producao-tracker/internal/entity"
)

// ResolveClientes overlays display names and canonical identifiers onto jobs
// using the directory snapshot. Matching is a documented best-effort
// heuristic: customer id equality first, exact label equality against the raw
// name as fallback, verbatim passthrough with a nil identifier otherwise.
// Labels are not guaranteed unique; the first directory entry wins.
func ResolveClientes(jobs []*entity.Job, options []entity.ClienteOption) {
	if len(jobs) == 0 || len(options) == 0 {
		return
	}
	byValue := make(map[string]entity.ClienteOption, len(options))
	byLabel := make(map[string]entity.ClienteOption, len(options))
	for _, opt := range options {
		if _, ok := byValue[opt.Value]; !ok {
			byValue[opt.Value] = opt
		}
		if _, ok := byLabel[opt.Label]; !ok {
			byLabel[opt.Label] = opt
		}
	}

	for _, job := range jobs {
		if job.CustomerID != nil {
			if opt, ok := byValue[strconv.FormatInt(*job.CustomerID, 10)]; ok {
				value := opt.Value
				job.Cliente = opt.Label
				job.IDCliente = &value
			}
			continue
		}
		if job.Cliente != "" {
			if opt, ok := byLabel[job.Cliente]; ok {
				value := opt.Value
				job.IDCliente = &value
			}
		}
	}
}
