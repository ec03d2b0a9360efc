package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/evfin/event_finance_app/internal/apperrors"
	portssvc "github.com/evfin/event_finance_app/internal/core/ports/services"
	"github.com/evfin/event_finance_app/internal/dto"
	"github.com/evfin/event_finance_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// budgetLineHandler handles HTTP requests related to budget lines.
type budgetLineHandler struct {
	budgetLineService portssvc.BudgetLineSvcFacade
}

func newBudgetLineHandler(bs portssvc.BudgetLineSvcFacade) *budgetLineHandler {
	return &budgetLineHandler{budgetLineService: bs}
}

// registerBudgetLineRoutes registers routes related to budget lines.
func registerBudgetLineRoutes(rg *gin.RouterGroup, budgetLineService portssvc.BudgetLineSvcFacade) {
	h := newBudgetLineHandler(budgetLineService)

	budgetLines := rg.Group("/budget-lines")
	{
		budgetLines.POST("", h.createBudgetLine)
		budgetLines.GET("", h.listBudgetLines)
		budgetLines.GET("/:id", h.getBudgetLineByID)
		budgetLines.PUT("/:id", h.updateBudgetLine)
		budgetLines.DELETE("/:id", h.deleteBudgetLine)
	}
}

// createBudgetLine godoc
// @Summary Create a new budget line
// @Description Adds a planned cost category to the event's budget chart
// @Tags budget-lines
// @Accept  json
// @Produce  json
// @Param   budgetLine body dto.CreateBudgetLineRequest true "Budget line details"
// @Success 201 {object} dto.BudgetLineResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create budget line"
// @Security BearerAuth
// @Router /budget-lines [post]
func (h *budgetLineHandler) createBudgetLine(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateBudgetLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateBudgetLine", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	line, err := h.budgetLineService.CreateBudgetLine(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating budget line", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create budget line in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create budget line"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToBudgetLineResponse(line))
}

// getBudgetLineByID godoc
// @Summary Get a budget line by ID
// @Description Retrieves a single budget line with its derived planned total
// @Tags budget-lines
// @Produce  json
// @Param   id path string true "Budget Line ID"
// @Success 200 {object} dto.BudgetLineResponse
// @Failure 404 {object} map[string]string "Budget line not found"
// @Failure 500 {object} map[string]string "Failed to retrieve budget line"
// @Security BearerAuth
// @Router /budget-lines/{id} [get]
func (h *budgetLineHandler) getBudgetLineByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	budgetLineID := c.Param("id")

	line, err := h.budgetLineService.GetBudgetLineByID(c.Request.Context(), budgetLineID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Budget line not found"})
		} else {
			logger.Error("Failed to get budget line from service", slog.String("error", err.Error()), slog.String("budget_line_id", budgetLineID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve budget line"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToBudgetLineResponse(line))
}

// listBudgetLines godoc
// @Summary List all budget lines
// @Description Retrieves the whole budget chart ordered by macro category then name
// @Tags budget-lines
// @Produce  json
// @Success 200 {array} dto.BudgetLineResponse
// @Failure 500 {object} map[string]string "Failed to list budget lines"
// @Security BearerAuth
// @Router /budget-lines [get]
func (h *budgetLineHandler) listBudgetLines(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	lines, err := h.budgetLineService.ListBudgetLines(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list budget lines", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list budget lines"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListBudgetLineResponse(lines))
}

// updateBudgetLine godoc
// @Summary Update a budget line
// @Description Replaces all fields of an existing budget line
// @Tags budget-lines
// @Accept  json
// @Produce  json
// @Param   id path string true "Budget Line ID"
// @Param   budgetLine body dto.UpdateBudgetLineRequest true "Budget line details"
// @Success 200 {object} dto.BudgetLineResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Budget line not found"
// @Failure 500 {object} map[string]string "Failed to update budget line"
// @Security BearerAuth
// @Router /budget-lines/{id} [put]
func (h *budgetLineHandler) updateBudgetLine(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	budgetLineID := c.Param("id")

	var req dto.UpdateBudgetLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateBudgetLine", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	line, err := h.budgetLineService.UpdateBudgetLine(c.Request.Context(), budgetLineID, req, updaterUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Budget line not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error updating budget line", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to update budget line in service", slog.String("error", err.Error()), slog.String("budget_line_id", budgetLineID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update budget line"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToBudgetLineResponse(line))
}

// deleteBudgetLine godoc
// @Summary Delete a budget line
// @Description Removes the line and every allocation referencing it
// @Tags budget-lines
// @Produce  json
// @Param   id path string true "Budget Line ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Budget line not found"
// @Failure 500 {object} map[string]string "Failed to delete budget line"
// @Security BearerAuth
// @Router /budget-lines/{id} [delete]
func (h *budgetLineHandler) deleteBudgetLine(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	budgetLineID := c.Param("id")

	if err := h.budgetLineService.DeleteBudgetLine(c.Request.Context(), budgetLineID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Budget line not found"})
		} else {
			logger.Error("Failed to delete budget line in service", slog.String("error", err.Error()), slog.String("budget_line_id", budgetLineID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete budget line"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
