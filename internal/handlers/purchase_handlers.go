package handlers

import (
	"errors"
	"net/http"

	"stockcheck_backend/internal/services"
	"stockcheck_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// PurchaseHandler holds the purchase service.
type PurchaseHandler struct {
	purchaseService services.PurchaseService
}

// NewPurchaseHandler creates a new PurchaseHandler.
func NewPurchaseHandler(ps services.PurchaseService) *PurchaseHandler {
	return &PurchaseHandler{purchaseService: ps}
}

// ListPurchases handles fetching all purchases, most recent first.
func (h *PurchaseHandler) ListPurchases(c *gin.Context) {
	purchases, err := h.purchaseService.ListPurchases()
	if err != nil {
		utils.LogError(err, "ListPurchases: error from purchaseService.ListPurchases")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch purchases.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, purchases)
}

// RecordPurchase handles logging a new purchase.
func (h *PurchaseHandler) RecordPurchase(c *gin.Context) {
	var req services.RecordPurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "RecordPurchase: failed to bind JSON")
		utils.RespondValidationFailed(c, err.Error())
		return
	}

	if _, err := h.purchaseService.RecordPurchase(req); err != nil {
		utils.LogError(err, "RecordPurchase: error from purchaseService.RecordPurchase")
		if errors.Is(err, services.ErrValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else if errors.Is(err, services.ErrItemNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Purchase references an unknown item.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to record purchase.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GetWeeklyStats handles the trailing 7-day spending aggregates.
func (h *PurchaseHandler) GetWeeklyStats(c *gin.Context) {
	stats, err := h.purchaseService.WeeklyStats()
	if err != nil {
		utils.LogError(err, "GetWeeklyStats: error from purchaseService.WeeklyStats")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to compute weekly stats.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, stats)
}
