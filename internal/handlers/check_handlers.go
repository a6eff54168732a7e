package handlers

import (
	"errors"
	"net/http"

	"stockcheck_backend/internal/services"
	"stockcheck_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// CheckHandler holds the checklist service.
type CheckHandler struct {
	checklistService services.ChecklistService
}

// NewCheckHandler creates a new CheckHandler.
func NewCheckHandler(cs services.ChecklistService) *CheckHandler {
	return &CheckHandler{checklistService: cs}
}

// GetTodaysChecks handles fetching the current day's checks, enriched with
// item display fields.
func (h *CheckHandler) GetTodaysChecks(c *gin.Context) {
	checks, err := h.checklistService.GetTodaysChecks()
	if err != nil {
		utils.LogError(err, "GetTodaysChecks: error from checklistService.GetTodaysChecks")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch today's checks.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, checks)
}

// SubmitChecklist handles a full-day checklist submission. The day's prior
// records are replaced wholesale.
func (h *CheckHandler) SubmitChecklist(c *gin.Context) {
	var req services.SubmitChecklistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "SubmitChecklist: failed to bind JSON")
		utils.RespondValidationFailed(c, err.Error())
		return
	}

	if err := h.checklistService.SubmitChecklist(req); err != nil {
		utils.LogError(err, "SubmitChecklist: error from checklistService.SubmitChecklist")
		if errors.Is(err, services.ErrValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else if errors.Is(err, services.ErrItemNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Checklist references an unknown item.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to submit checklist.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// SubmitReport handles recording that a staff member shared the day's summary.
func (h *CheckHandler) SubmitReport(c *gin.Context) {
	var req services.SubmitReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "SubmitReport: failed to bind JSON")
		utils.RespondValidationFailed(c, err.Error())
		return
	}

	if _, err := h.checklistService.SubmitReport(req); err != nil {
		utils.LogError(err, "SubmitReport: error from checklistService.SubmitReport")
		if errors.Is(err, services.ErrValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to submit report.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
