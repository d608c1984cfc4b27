package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CatalogHandler serves catalog administration endpoints.
type CatalogHandler struct {
	common *CommonServices
}

// NewCatalogHandler creates a handler with interface dependencies
func NewCatalogHandler(common *CommonServices) *CatalogHandler {
	return &CatalogHandler{common: common}
}

// RefreshResponse reports the result of a catalog refresh.
type RefreshResponse struct {
	Message      string `json:"message"`
	EntriesTotal int    `json:"entries_total"`
}

// Refresh reloads the catalog from its source and swaps it in atomically
// @Summary Refresh tariff catalog
// @Description Rebuild the catalog snapshot from the configured source; in-flight requests keep the previous snapshot
// @Tags admin
// @Accept json
// @Produce json
// @Success 200 {object} RefreshResponse
// @Failure 500 {object} ErrorResponse
// @Router /admin/catalog/refresh [post]
func (h *CatalogHandler) Refresh(c *gin.Context) {
	next, err := h.common.ReloadCatalog()
	if err != nil {
		// A failed refresh keeps the current snapshot serving; a broken
		// source must never replace a working catalog.
		h.common.GetLogger().Error("Catalog refresh failed, keeping current snapshot", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	previous := h.common.CatalogStore.Swap(next)
	h.common.GetLogger().Info("Catalog refreshed",
		zap.Int("entries_before", previous.Len()),
		zap.Int("entries_after", next.Len()))

	c.JSON(http.StatusOK, RefreshResponse{
		Message:      "catalog refreshed",
		EntriesTotal: next.Len(),
	})
}
