package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tarifflens/tarifflens-api/internal/interfaces"
	"github.com/tarifflens/tarifflens-api/internal/types"
)

const (
	defaultSearchLimit = 10
	maxSearchLimit     = 50
)

// HTSHandler serves HTS code search and direct lookups.
type HTSHandler struct {
	common         *CommonServices
	classification interfaces.ClassificationService
}

// NewHTSHandler creates a handler with interface dependencies
func NewHTSHandler(common *CommonServices, classification interfaces.ClassificationService) *HTSHandler {
	return &HTSHandler{
		common:         common,
		classification: classification,
	}
}

// SearchResponse is the payload for a code search.
type SearchResponse struct {
	Query      string                 `json:"query"`
	Candidates []types.MatchCandidate `json:"candidates"`
	Count      int                    `json:"count"`
}

// Search returns ranked HTS candidates for a free-text query
// @Summary Search HTS codes
// @Description Match a free-text product description or explicit code against the tariff schedule
// @Tags hts
// @Accept json
// @Produce json
// @Param q query string true "Product description or HTS code"
// @Param limit query int false "Maximum number of candidates (default 10, max 50)"
// @Success 200 {object} SearchResponse
// @Router /hts/search [get]
func (h *HTSHandler) Search(c *gin.Context) {
	query := c.Query("q")

	limit := defaultSearchLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "limit must be an integer"})
			return
		}
		limit = parsed
	}
	if limit > maxSearchLimit {
		limit = maxSearchLimit
	}

	candidates, err := h.classification.Match(c.Request.Context(), query, limit)
	if err != nil {
		h.common.GetLogger().Error("Search failed", zap.String("query", query), zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "search failed"})
		return
	}

	// Search always returns a list; "no matches" is an empty list, not an
	// error.
	c.JSON(http.StatusOK, SearchResponse{
		Query:      query,
		Candidates: candidates,
		Count:      len(candidates),
	})
}

// GetCode returns the catalog entry for an exact HTS code
// @Summary Get HTS entry
// @Description Look up a single tariff schedule entry by code
// @Tags hts
// @Accept json
// @Produce json
// @Param code path string true "HTS code, raw or canonical form"
// @Success 200 {object} catalog.HTSEntry
// @Failure 404 {object} ErrorResponse
// @Router /hts/codes/{code} [get]
func (h *HTSHandler) GetCode(c *gin.Context) {
	code := c.Param("code")

	entry, err := h.common.CatalogStore.Snapshot().Lookup(code)
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "hts code not found"})
		return
	}

	c.JSON(http.StatusOK, entry)
}
