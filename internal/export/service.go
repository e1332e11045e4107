package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/imxdigital/producao-tracker/internal/entity"
	"github.com/imxdigital/producao-tracker/internal/producao"
	"github.com/imxdigital/producao-tracker/internal/repository"
)

// maxPages caps how many pages one export walks; beyond this the filter is
// too broad to export meaningfully.
const maxPages = 200

// Service is a tiny façade over the listing engine that produces XLSX bytes
// for exports.
type Service struct {
	producao *producao.Service
	clientes repository.ClientesRepository
	logger   *slog.Logger
}

func NewService(listing *producao.Service, clientes repository.ClientesRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{producao: listing, clientes: clientes, logger: logger}
}

// ExportJobsXLSX returns an XLSX workbook (as bytes) for every job matching
// the criteria, walking all pages. A missing customer directory degrades to
// unresolved names rather than failing the export.
func (s *Service) ExportJobsXLSX(ctx context.Context, criteria entity.FilterCriteria) ([]byte, error) {
	start := time.Now()

	options, err := s.clientes.ListOptions(ctx)
	if err != nil {
		s.logger.Warn("failed to load cliente options for export, names stay unresolved", "error", err)
		options = nil
	}

	var jobs []*entity.Job
	for page := 0; page < maxPages; page++ {
		criteria.Page = page
		result, err := s.producao.FetchPage(ctx, criteria, options)
		if err != nil {
			return nil, fmt.Errorf("fetch page %d: %w", page, err)
		}
		jobs = append(jobs, result.Jobs...)
		if !result.HasMore {
			break
		}
	}

	f := excelize.NewFile()
	const sheet = "Producao"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"FO",
		"ORC",
		"Campanha",
		"Cliente",
		"Data In",
		"Prioridade",
		"Pendente",
		"Notas",
		"Total (EUR)",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, job := range jobs {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, job.NumeroFO)
		if job.NumeroORC != nil {
			write(2, *job.NumeroORC)
		}
		write(3, job.NomeCampanha)
		write(4, job.Cliente)
		if job.DataIn != nil {
			write(5, job.DataIn.Format("2006-01-02"))
		}
		write(6, boolMark(job.Prioridade))
		write(7, boolMark(job.Pendente))
		if job.Notas != nil {
			write(8, *job.Notas)
		}
		if job.EuroTotal != nil {
			write(9, job.EuroTotal.String())
		}
		row++
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	s.logger.Info("jobs exported", "count", len(jobs), "duration", time.Since(start))
	return buf.Bytes(), nil
}

func boolMark(b bool) string {
	if b {
		return "Sim"
	}
	return ""
}
