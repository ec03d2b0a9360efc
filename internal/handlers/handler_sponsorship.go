package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/evfin/event_finance_app/internal/apperrors"
	portssvc "github.com/evfin/event_finance_app/internal/core/ports/services"
	"github.com/evfin/event_finance_app/internal/dto"
	"github.com/evfin/event_finance_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// sponsorshipHandler handles HTTP requests related to sponsorships.
type sponsorshipHandler struct {
	sponsorshipService portssvc.SponsorshipSvcFacade
}

func newSponsorshipHandler(ss portssvc.SponsorshipSvcFacade) *sponsorshipHandler {
	return &sponsorshipHandler{sponsorshipService: ss}
}

// registerSponsorshipRoutes registers routes related to sponsorships.
func registerSponsorshipRoutes(rg *gin.RouterGroup, sponsorshipService portssvc.SponsorshipSvcFacade) {
	h := newSponsorshipHandler(sponsorshipService)

	sponsorships := rg.Group("/sponsorships")
	{
		sponsorships.POST("", h.createSponsorship)
		sponsorships.GET("", h.listSponsorships)
		sponsorships.GET("/:id", h.getSponsorshipByID)
		sponsorships.PUT("/:id", h.updateSponsorship)
		sponsorships.DELETE("/:id", h.deleteSponsorship)
	}
}

// createSponsorship godoc
// @Summary Record a new sponsorship
// @Description Records a sponsor commitment; allocations, when present, must sum to the pledged amount
// @Tags sponsorships
// @Accept  json
// @Produce  json
// @Param   sponsorship body dto.CreateSponsorshipRequest true "Sponsorship details"
// @Success 201 {object} dto.SponsorshipResponse
// @Failure 400 {object} map[string]string "Invalid input or allocation sum mismatch"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create sponsorship"
// @Security BearerAuth
// @Router /sponsorships [post]
func (h *sponsorshipHandler) createSponsorship(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateSponsorshipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateSponsorship", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	sponsorship, err := h.sponsorshipService.CreateSponsorship(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating sponsorship", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create sponsorship in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create sponsorship"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToSponsorshipResponse(sponsorship))
}

// getSponsorshipByID godoc
// @Summary Get a sponsorship by ID
// @Description Retrieves a sponsorship with its allocation set
// @Tags sponsorships
// @Produce  json
// @Param   id path string true "Sponsorship ID"
// @Success 200 {object} dto.SponsorshipResponse
// @Failure 404 {object} map[string]string "Sponsorship not found"
// @Failure 500 {object} map[string]string "Failed to retrieve sponsorship"
// @Security BearerAuth
// @Router /sponsorships/{id} [get]
func (h *sponsorshipHandler) getSponsorshipByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	sponsorshipID := c.Param("id")

	sponsorship, err := h.sponsorshipService.GetSponsorshipByID(c.Request.Context(), sponsorshipID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Sponsorship not found"})
		} else {
			logger.Error("Failed to get sponsorship from service", slog.String("error", err.Error()), slog.String("sponsorship_id", sponsorshipID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve sponsorship"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToSponsorshipResponse(sponsorship))
}

// listSponsorships godoc
// @Summary List sponsorships
// @Description Retrieves a page of sponsorships ordered by creation time descending
// @Tags sponsorships
// @Produce  json
// @Param   limit query int false "Page size (default 50, max 100)"
// @Param   nextToken query string false "Pagination token from previous page"
// @Success 200 {object} dto.ListSponsorshipsResponse
// @Failure 400 {object} map[string]string "Invalid pagination token"
// @Failure 500 {object} map[string]string "Failed to list sponsorships"
// @Security BearerAuth
// @Router /sponsorships [get]
func (h *sponsorshipHandler) listSponsorships(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	var nextToken *string
	if token := c.Query("nextToken"); token != "" {
		nextToken = &token
	}

	sponsorships, newNextToken, err := h.sponsorshipService.ListSponsorships(c.Request.Context(), limit, nextToken)
	if err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) && appErr.Code == http.StatusBadRequest {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pagination token"})
			return
		}
		logger.Error("Failed to list sponsorships", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list sponsorships"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListSponsorshipsResponse(sponsorships, newNextToken))
}

// updateSponsorship godoc
// @Summary Update a sponsorship
// @Description Replaces the sponsorship's fields and its full allocation set; status may only move forward or to CANCELLED
// @Tags sponsorships
// @Accept  json
// @Produce  json
// @Param   id path string true "Sponsorship ID"
// @Param   sponsorship body dto.UpdateSponsorshipRequest true "Sponsorship details"
// @Success 200 {object} dto.SponsorshipResponse
// @Failure 400 {object} map[string]string "Invalid input, allocation sum mismatch or disallowed status transition"
// @Failure 404 {object} map[string]string "Sponsorship not found"
// @Failure 500 {object} map[string]string "Failed to update sponsorship"
// @Security BearerAuth
// @Router /sponsorships/{id} [put]
func (h *sponsorshipHandler) updateSponsorship(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	sponsorshipID := c.Param("id")

	var req dto.UpdateSponsorshipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateSponsorship", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	sponsorship, err := h.sponsorshipService.UpdateSponsorship(c.Request.Context(), sponsorshipID, req, updaterUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Sponsorship not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error updating sponsorship", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to update sponsorship in service", slog.String("error", err.Error()), slog.String("sponsorship_id", sponsorshipID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update sponsorship"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToSponsorshipResponse(sponsorship))
}

// deleteSponsorship godoc
// @Summary Delete a sponsorship
// @Description Removes the sponsorship and its allocations
// @Tags sponsorships
// @Produce  json
// @Param   id path string true "Sponsorship ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Sponsorship not found"
// @Failure 500 {object} map[string]string "Failed to delete sponsorship"
// @Security BearerAuth
// @Router /sponsorships/{id} [delete]
func (h *sponsorshipHandler) deleteSponsorship(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	sponsorshipID := c.Param("id")

	if err := h.sponsorshipService.DeleteSponsorship(c.Request.Context(), sponsorshipID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Sponsorship not found"})
		} else {
			logger.Error("Failed to delete sponsorship in service", slog.String("error", err.Error()), slog.String("sponsorship_id", sponsorshipID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete sponsorship"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
