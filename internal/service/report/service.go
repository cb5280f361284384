package report

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/checkpoint-estagio/checkpoint-backend-go/internal/domain/clock"
	"github.com/checkpoint-estagio/checkpoint-backend-go/internal/domain/contract"
	"github.com/xuri/excelize/v2"
)

// AttendanceRow is one clock entry flattened for export.
type AttendanceRow struct {
	Date              string `json:"data"`
	EntryTime         string `json:"hora_entrada"`
	ExitTime          string `json:"hora_saida"`
	WorkedMinutes     int    `json:"tempo_trabalhado_minutos"`
	GeofenceValidated bool   `json:"validado_localizacao"`
	Alert             string `json:"alerta"`
}

// AttendanceReport is the frequency report of one contract over a period.
type AttendanceReport struct {
	ContractID   int64           `json:"id_contrato"`
	StudentName  string          `json:"nome_aluno"`
	PeriodStart  string          `json:"periodo_inicio"`
	PeriodEnd    string          `json:"periodo_fim"`
	Rows         []AttendanceRow `json:"registros"`
	TotalMinutes int             `json:"total_minutos"`
	GeneratedAt  string          `json:"gerado_em"`
}

// ReportService builds attendance reports and renders them as CSV or XLSX.
type ReportService interface {
	AttendanceReport(ctx context.Context, contractID int64, from, to time.Time) (AttendanceReport, error)
	WriteCSV(report AttendanceReport, w io.Writer) error
	WriteXLSX(report AttendanceReport, w io.Writer) error
}

type ReportServiceImpl struct {
	entries   clock.ClockRepository
	contracts contract.ContractRepository
	now       func() time.Time
}

func NewReportService(clockRepository clock.ClockRepository, contractRepository contract.ContractRepository) ReportService {
	return &ReportServiceImpl{
		entries:   clockRepository,
		contracts: contractRepository,
		now:       time.Now,
	}
}

// AttendanceReport implements ReportService. Open entries appear with an
// empty exit time and count zero worked minutes.
func (s *ReportServiceImpl) AttendanceReport(ctx context.Context, contractID int64, from, to time.Time) (AttendanceReport, error) {
	contractData, err := s.contracts.GetByID(ctx, contractID)
	if err != nil {
		return AttendanceReport{}, err
	}

	entries, err := s.entries.ListByContractRange(ctx, contractID, from, to)
	if err != nil {
		return AttendanceReport{}, fmt.Errorf("failed to list clock entries: %w", err)
	}

	report := AttendanceReport{
		ContractID:  contractID,
		PeriodStart: from.Format("2006-01-02"),
		PeriodEnd:   to.Format("2006-01-02"),
		Rows:        make([]AttendanceRow, 0, len(entries)),
		GeneratedAt: s.now().UTC().Format(time.RFC3339),
	}
	if contractData.StudentName != nil {
		report.StudentName = *contractData.StudentName
	}

	for _, e := range entries {
		row := AttendanceRow{
			Date:              e.Date.Format("2006-01-02"),
			EntryTime:         e.EntryTime.UTC().Format("15:04"),
			GeofenceValidated: e.GeofenceValidated,
		}
		if e.ExitTime != nil {
			row.ExitTime = e.ExitTime.UTC().Format("15:04")
		}
		if e.WorkedMinutes != nil {
			row.WorkedMinutes = *e.WorkedMinutes
			report.TotalMinutes += *e.WorkedMinutes
		}
		if e.Alert != nil {
			row.Alert = *e.Alert
		}
		report.Rows = append(report.Rows, row)
	}

	return report, nil
}

var reportHeader = []string{"data", "hora_entrada", "hora_saida", "tempo_trabalhado_minutos", "validado_localizacao", "alerta"}

// WriteCSV implements ReportService.
func (s *ReportServiceImpl) WriteCSV(report AttendanceReport, w io.Writer) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(reportHeader); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, row := range report.Rows {
		record := []string{
			row.Date,
			row.EntryTime,
			row.ExitTime,
			strconv.Itoa(row.WorkedMinutes),
			strconv.FormatBool(row.GeofenceValidated),
			row.Alert,
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// WriteXLSX implements ReportService.
func (s *ReportServiceImpl) WriteXLSX(report AttendanceReport, w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Frequencia"
	f.SetSheetName("Sheet1", sheet)

	for col, title := range reportHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, title); err != nil {
			return err
		}
	}

	for i, row := range report.Rows {
		values := []interface{}{
			row.Date,
			row.EntryTime,
			row.ExitTime,
			row.WorkedMinutes,
			row.GeofenceValidated,
			row.Alert,
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return err
			}
		}
	}

	totalLabelCell, err := excelize.CoordinatesToCellName(1, len(report.Rows)+3)
	if err != nil {
		return err
	}
	if err := f.SetCellValue(sheet, totalLabelCell, "total_minutos"); err != nil {
		return err
	}
	totalValueCell, err := excelize.CoordinatesToCellName(2, len(report.Rows)+3)
	if err != nil {
		return err
	}
	if err := f.SetCellValue(sheet, totalValueCell, report.TotalMinutes); err != nil {
		return err
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write xlsx: %w", err)
	}
	return nil
}
