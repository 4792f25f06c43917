package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/ymerta/vardiya/internal/domain/report"
	"github.com/ymerta/vardiya/internal/handler/http/response"
	exportService "github.com/ymerta/vardiya/internal/service/export"
	reportService "github.com/ymerta/vardiya/internal/service/report"
)

type ReportHandler interface {
	GetMonthly(w http.ResponseWriter, r *http.Request)
	Export(w http.ResponseWriter, r *http.Request)
	Dashboard(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService *reportService.ReportService
	exportService *exportService.ExportService
}

func NewReportHandler(reports *reportService.ReportService, exports *exportService.ExportService) ReportHandler {
	return &ReportHandlerImpl{
		reportService: reports,
		exportService: exports,
	}
}

func (h *ReportHandlerImpl) GetMonthly(w http.ResponseWriter, r *http.Request) {
	req := monthlyRequest(r)

	monthly, err := h.reportService.GetMonthlyReport(r.Context(), req)
	if err != nil {
		slog.Error("Monthly report error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, monthly)
}

// Export streams the monthly report as a download;
// ?format=xlsx (default) or ?format=pdf.
func (h *ReportHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	req := monthlyRequest(r)

	format := r.URL.Query().Get("format")
	if format == "" {
		format = "xlsx"
	}
	if format != "xlsx" && format != "pdf" {
		response.BadRequest(w, "format must be xlsx or pdf", nil)
		return
	}

	table, err := h.reportService.BuildMonthlyTable(r.Context(), req)
	if err != nil {
		slog.Error("Report export error", "format", format, "error", err)
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Disposition", attachment(req, format))
	if format == "pdf" {
		w.Header().Set("Content-Type", "application/pdf")
		err = h.exportService.WritePDF(table, w)
	} else {
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		err = h.exportService.WriteXLSX(table, w)
	}
	if err != nil {
		// Headers are gone already; all we can do is log.
		slog.Error("Report write error", "format", format, "error", err)
	}
}

func (h *ReportHandlerImpl) Dashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.reportService.GetDashboard(r.Context())
	if err != nil {
		slog.Error("Dashboard error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, dashboard)
}

func monthlyRequest(r *http.Request) report.MonthlyReportRequest {
	year, _ := strconv.Atoi(r.URL.Query().Get("year"))
	month, _ := strconv.Atoi(r.URL.Query().Get("month"))
	return report.MonthlyReportRequest{Year: year, Month: month}
}

func attachment(req report.MonthlyReportRequest, ext string) string {
	return fmt.Sprintf(`attachment; filename="vardiya-raporu-%04d-%02d.%s"`, req.Year, req.Month, ext)
}
