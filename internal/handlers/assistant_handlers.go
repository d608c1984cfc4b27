package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tarifflens/tarifflens-api/internal/interfaces"
	"github.com/tarifflens/tarifflens-api/internal/types"
)

const completionTimeout = 15 * time.Second

// AssistantHandler augments structured classification results with a short
// generated rationale. The structured candidates are always returned; the
// rationale is best-effort and absent when the language model is
// unavailable.
type AssistantHandler struct {
	common         *CommonServices
	classification interfaces.ClassificationService
	completion     interfaces.CompletionClient
}

// NewAssistantHandler creates a handler with interface dependencies.
// completion may be nil; classification then runs without rationale.
func NewAssistantHandler(common *CommonServices, classification interfaces.ClassificationService, completion interfaces.CompletionClient) *AssistantHandler {
	return &AssistantHandler{
		common:         common,
		classification: classification,
		completion:     completion,
	}
}

// ClassifyRequest asks for assisted classification of a product description.
type ClassifyRequest struct {
	Query string `json:"query" binding:"required"`
	Limit int    `json:"limit"`
}

// ClassifyResponse pairs ranked candidates with an optional rationale.
type ClassifyResponse struct {
	Query      string                 `json:"query"`
	Candidates []types.MatchCandidate `json:"candidates"`
	Rationale  string                 `json:"rationale,omitempty"`
}

// Classify returns ranked candidates plus a generated explanation
// @Summary Assisted HTS classification
// @Description Match a product description and, when the language model is available, explain the top candidates in plain language
// @Tags assistant
// @Accept json
// @Produce json
// @Param request body ClassifyRequest true "Classification request"
// @Success 200 {object} ClassifyResponse
// @Failure 400 {object} ErrorResponse
// @Router /assistant/classify [post]
func (h *AssistantHandler) Classify(c *gin.Context) {
	var req ClassifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}
	if req.Limit <= 0 {
		req.Limit = defaultSearchLimit
	}

	candidates, err := h.classification.Match(c.Request.Context(), req.Query, req.Limit)
	if err != nil {
		h.common.GetLogger().Error("Classification failed", zap.String("query", req.Query), zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "classification failed"})
		return
	}

	resp := ClassifyResponse{
		Query:      req.Query,
		Candidates: candidates,
	}

	if h.completion != nil && len(candidates) > 0 {
		ctx, cancel := context.WithTimeout(c.Request.Context(), completionTimeout)
		defer cancel()

		rationale, err := h.completion.Complete(ctx, classifyPrompt(req.Query, candidates))
		if err != nil {
			h.common.GetLogger().Warn("Rationale generation unavailable",
				zap.String("query", req.Query),
				zap.Error(err))
		} else {
			resp.Rationale = strings.TrimSpace(rationale)
		}
	}

	c.JSON(http.StatusOK, resp)
}

// classifyPrompt builds the completion prompt from structured results only.
// The model never influences the candidate set or scores.
func classifyPrompt(query string, candidates []types.MatchCandidate) string {
	var b strings.Builder
	b.WriteString("You are a customs classification assistant. A user searched for: ")
	b.WriteString(query)
	b.WriteString("\nThe tariff schedule matched these candidates:\n")
	limit := len(candidates)
	if limit > 3 {
		limit = 3
	}
	for _, cand := range candidates[:limit] {
		fmt.Fprintf(&b, "- %s: %s (score %.2f, %s match)\n",
			cand.Entry.Code, cand.Entry.Description, cand.Score, cand.MatchKind)
	}
	b.WriteString("In two sentences, explain which candidate fits best and what the importer should verify.")
	return b.String()
}
