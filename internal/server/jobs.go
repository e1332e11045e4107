package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/imxdigital/producao-tracker/internal/common"
	"github.com/imxdigital/producao-tracker/internal/entity"
)

// Request bodies above this size are rejected outright.
const maxBodyBytes = 1 << 20

// handleListJobs resolves one page of the filtered job listing. The body is
// validated against the criteria schema before decoding; schema violations
// are the caller's fault and come back as 400s.
func (s *Server) handleListJobs(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	criteria, ok := s.decodeCriteria(w, r)
	if !ok {
		return
	}

	options, err := s.clientes.ListOptions(r.Context())
	if err != nil {
		// Resolution is best-effort; the page still ships with raw names.
		s.logger.Warn("failed to load cliente snapshot, names stay unresolved",
			"request_id", common.RequestIDFromContext(r.Context()), "error", err)
		options = nil
	}

	page, err := s.listing.FetchPage(r.Context(), criteria, options)
	if err != nil {
		writeError(w, http.StatusInternalServerError, userMessage(err))
		return
	}
	writeJSON(w, http.StatusOK, page)
}

// handleExportJobs streams an XLSX workbook of every job matching the
// criteria.
func (s *Server) handleExportJobs(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	criteria, ok := s.decodeCriteria(w, r)
	if !ok {
		return
	}

	data, err := s.export.ExportJobsXLSX(r.Context(), criteria)
	if err != nil {
		writeError(w, http.StatusInternalServerError, userMessage(err))
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="producao.xlsx"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (s *Server) decodeCriteria(w http.ResponseWriter, r *http.Request) (entity.FilterCriteria, bool) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read request body")
		return entity.FilterCriteria{}, false
	}
	if len(body) == 0 {
		body = []byte("{}")
	}
	if err := ValidateJSONAgainstSchema(BuildCriteriaJSONSchema(), body); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return entity.FilterCriteria{}, false
	}
	var criteria entity.FilterCriteria
	if err := json.Unmarshal(body, &criteria); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return entity.FilterCriteria{}, false
	}
	return criteria, true
}

// userMessage maps pipeline errors to the single user-displayable message of
// the failing stage; internals stay in the logs.
func userMessage(err error) string {
	var appErr *common.AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return "Failed to load production jobs"
}
