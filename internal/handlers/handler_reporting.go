package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/evfin/event_finance_app/internal/core/ports/services"
	"github.com/evfin/event_finance_app/internal/dto"
	"github.com/evfin/event_finance_app/internal/middleware"
	"github.com/evfin/event_finance_app/internal/utils/export"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles the read-only rollup and dataset endpoints.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{reportingService: rs}
}

// registerReportingRoutes registers the report, dataset and export routes.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/lines", h.getBudgetLineRollups)
		reports.GET("/categories", h.getMacroCategoryRollups)
		reports.GET("/accounts", h.getAccountRollups)
		reports.GET("/overview", h.getOverview)
	}

	rg.GET("/dataset", h.getDataset)
	rg.GET("/export/rollups", h.exportRollups)
}

// getBudgetLineRollups godoc
// @Summary Per-line rollups
// @Description Returns one row per budget line with planned, spent, income, sponsored and balance figures in the reporting currency
// @Tags reports
// @Produce  json
// @Success 200 {array} dto.BudgetLineRollupResponse
// @Failure 500 {object} map[string]string "Failed to compute rollups"
// @Security BearerAuth
// @Router /reports/lines [get]
func (h *reportingHandler) getBudgetLineRollups(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	rollups, err := h.reportingService.BudgetLineRollups(c.Request.Context())
	if err != nil {
		logger.Error("Failed to compute budget line rollups", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute rollups"})
		return
	}

	c.JSON(http.StatusOK, dto.ToBudgetLineRollupResponses(rollups))
}

// getMacroCategoryRollups godoc
// @Summary Per-category rollups
// @Description Returns line figures grouped by macro category, sorted by category name
// @Tags reports
// @Produce  json
// @Success 200 {array} dto.MacroCategoryRollupResponse
// @Failure 500 {object} map[string]string "Failed to compute rollups"
// @Security BearerAuth
// @Router /reports/categories [get]
func (h *reportingHandler) getMacroCategoryRollups(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	rollups, err := h.reportingService.MacroCategoryRollups(c.Request.Context())
	if err != nil {
		logger.Error("Failed to compute macro category rollups", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute rollups"})
		return
	}

	c.JSON(http.StatusOK, dto.ToMacroCategoryRollupResponses(rollups))
}

// getAccountRollups godoc
// @Summary Per-account rollups
// @Description Returns income, expense and balance per account label; transactions without an account fall into the "No account" bucket, sorted last
// @Tags reports
// @Produce  json
// @Success 200 {array} dto.AccountRollupResponse
// @Failure 500 {object} map[string]string "Failed to compute rollups"
// @Security BearerAuth
// @Router /reports/accounts [get]
func (h *reportingHandler) getAccountRollups(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	rollups, err := h.reportingService.AccountRollups(c.Request.Context())
	if err != nil {
		logger.Error("Failed to compute account rollups", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute rollups"})
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountRollupResponses(rollups))
}

// getOverview godoc
// @Summary Event-wide totals
// @Description Returns the event-wide planned, spent, income, sponsored and balance totals in the reporting currency
// @Tags reports
// @Produce  json
// @Success 200 {object} dto.OverviewResponse
// @Failure 500 {object} map[string]string "Failed to compute overview"
// @Security BearerAuth
// @Router /reports/overview [get]
func (h *reportingHandler) getOverview(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	overview, err := h.reportingService.Overview(c.Request.Context())
	if err != nil {
		logger.Error("Failed to compute overview", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute overview"})
		return
	}

	c.JSON(http.StatusOK, dto.ToOverviewResponse(*overview))
}

// getDataset godoc
// @Summary Full ledger snapshot
// @Description Returns settings, budget lines, transactions and sponsorships in a single read
// @Tags reports
// @Produce  json
// @Success 200 {object} dto.DatasetResponse
// @Failure 500 {object} map[string]string "Failed to load dataset"
// @Security BearerAuth
// @Router /dataset [get]
func (h *reportingHandler) getDataset(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	dataset, err := h.reportingService.Dataset(c.Request.Context())
	if err != nil {
		logger.Error("Failed to load dataset", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dataset"})
		return
	}

	c.JSON(http.StatusOK, dto.ToDatasetResponse(dataset))
}

// exportRollups godoc
// @Summary Export rollups as CSV
// @Description Streams a sectioned CSV document with budget line rollups, account rollups, transactions and sponsorships
// @Tags reports
// @Produce  text/csv
// @Success 200 {string} string "CSV document"
// @Failure 500 {object} map[string]string "Failed to export rollups"
// @Security BearerAuth
// @Router /export/rollups [get]
func (h *reportingHandler) exportRollups(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ctx := c.Request.Context()

	dataset, err := h.reportingService.Dataset(ctx)
	if err != nil {
		logger.Error("Failed to load dataset for export", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export rollups"})
		return
	}
	lineRollups, err := h.reportingService.BudgetLineRollups(ctx)
	if err != nil {
		logger.Error("Failed to compute budget line rollups for export", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export rollups"})
		return
	}
	accountRollups, err := h.reportingService.AccountRollups(ctx)
	if err != nil {
		logger.Error("Failed to compute account rollups for export", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export rollups"})
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="rollups.csv"`)
	if err := export.WriteRollups(c.Writer, dataset.Settings, lineRollups, accountRollups, dataset.Transactions, dataset.Sponsorships); err != nil {
		// Headers are already out; all we can do is log.
		logger.Error("Failed to write rollups CSV", slog.String("error", err.Error()))
	}
}
