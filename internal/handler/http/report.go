package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/checkpoint-estagio/checkpoint-backend-go/internal/handler/http/response"
	"github.com/checkpoint-estagio/checkpoint-backend-go/internal/service/report"
)

type ReportHandler interface {
	Attendance(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &ReportHandlerImpl{reportService: reportService}
}

// Attendance implements ReportHandler. Renders JSON by default; formato=csv
// or formato=xlsx stream a file instead.
func (h *ReportHandlerImpl) Attendance(w http.ResponseWriter, r *http.Request) {
	contractID := queryInt64(r, "id_contrato")
	if contractID == nil {
		response.BadRequest(w, "Query parameter 'id_contrato' is required", nil)
		return
	}

	from, err := time.Parse("2006-01-02", r.URL.Query().Get("de"))
	if err != nil {
		response.BadRequest(w, "Query parameter 'de' must be YYYY-MM-DD", nil)
		return
	}
	to, err := time.Parse("2006-01-02", r.URL.Query().Get("ate"))
	if err != nil {
		response.BadRequest(w, "Query parameter 'ate' must be YYYY-MM-DD", nil)
		return
	}
	if to.Before(from) {
		response.BadRequest(w, "'ate' must not be before 'de'", nil)
		return
	}

	result, err := h.reportService.AttendanceReport(r.Context(), *contractID, from, to)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	filename := fmt.Sprintf("frequencia_%d_%s_%s", *contractID, result.PeriodStart, result.PeriodEnd)

	switch r.URL.Query().Get("formato") {
	case "csv":
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename+".csv"))
		if err := h.reportService.WriteCSV(result, w); err != nil {
			slog.Error("Failed to write csv report", "contract_id", *contractID, "error", err)
		}
	case "xlsx":
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename+".xlsx"))
		if err := h.reportService.WriteXLSX(result, w); err != nil {
			slog.Error("Failed to write xlsx report", "contract_id", *contractID, "error", err)
		}
	case "", "json":
		response.Success(w, result)
	default:
		response.BadRequest(w, "formato must be json, csv or xlsx", nil)
	}
}
