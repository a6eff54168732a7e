package handlers

import (
	"errors"
	"net/http"

	"stockcheck_backend/internal/services"
	"stockcheck_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// ItemHandler holds the item service.
type ItemHandler struct {
	itemService services.ItemService
}

// NewItemHandler creates a new ItemHandler.
func NewItemHandler(is services.ItemService) *ItemHandler {
	return &ItemHandler{itemService: is}
}

// ListItems handles fetching the full catalog, sorted by category then name.
func (h *ItemHandler) ListItems(c *gin.Context) {
	items, err := h.itemService.ListItems()
	if err != nil {
		utils.LogError(err, "ListItems: error from itemService.ListItems")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch items.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, items)
}

// CreateItem handles adding a new catalog item.
func (h *ItemHandler) CreateItem(c *gin.Context) {
	var req services.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "CreateItem: failed to bind JSON")
		utils.RespondValidationFailed(c, err.Error())
		return
	}

	item, err := h.itemService.CreateItem(req)
	if err != nil {
		utils.LogError(err, "CreateItem: error from itemService.CreateItem")
		if errors.Is(err, services.ErrValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to create item.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": item.ID})
}

// DeleteItem handles removing a catalog item. Deleting an id that does not
// exist still reports success.
func (h *ItemHandler) DeleteItem(c *gin.Context) {
	id, err := utils.StrToInt64(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid item ID format.", err.Error()))
		return
	}

	if err := h.itemService.DeleteItem(id); err != nil {
		utils.LogError(err, "DeleteItem: error from itemService.DeleteItem")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to delete item.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
