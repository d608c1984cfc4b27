package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tarifflens/tarifflens-api/internal/catalog"
	"github.com/tarifflens/tarifflens-api/internal/interfaces"
	"github.com/tarifflens/tarifflens-api/internal/logger"
	"github.com/tarifflens/tarifflens-api/internal/services"
)

// CatalogReloadFunc rebuilds a catalog snapshot from the configured source.
// The refresh handler swaps the result into the store atomically.
type CatalogReloadFunc func() (*catalog.Catalog, error)

// CommonServices holds common dependencies used across handlers
type CommonServices struct {
	logger         *zap.Logger
	CatalogStore   *catalog.Store
	ReloadCatalog  CatalogReloadFunc
	Classification interfaces.ClassificationService
	Rates          interfaces.RateService
	Costs          interfaces.CostService
	Sourcing       interfaces.SourcingService
	FX             interfaces.FXService
}

// CommonServicesConfig contains all dependencies needed to create CommonServices
type CommonServicesConfig struct {
	Logger         *zap.Logger
	CatalogStore   *catalog.Store
	ReloadCatalog  CatalogReloadFunc
	Classification interfaces.ClassificationService
	Rates          interfaces.RateService
	Costs          interfaces.CostService
	Sourcing       interfaces.SourcingService
	FX             interfaces.FXService
}

// NewCommonServices creates a new instance of CommonServices with interface dependencies
func NewCommonServices(config CommonServicesConfig) *CommonServices {
	if config.Logger == nil {
		config.Logger = logger.Log
	}
	return &CommonServices{
		logger:         config.Logger,
		CatalogStore:   config.CatalogStore,
		ReloadCatalog:  config.ReloadCatalog,
		Classification: config.Classification,
		Rates:          config.Rates,
		Costs:          config.Costs,
		Sourcing:       config.Sourcing,
		FX:             config.FX,
	}
}

// GetLogger returns the logger
func (s *CommonServices) GetLogger() *zap.Logger {
	return s.logger
}

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessResponse represents a standard success response
type SuccessResponse struct {
	Message string `json:"message"`
}

// respondServiceError maps domain errors onto HTTP status codes. Per-request
// errors are surfaced as structured responses, never crashes.
func respondServiceError(c *gin.Context, log *zap.Logger, err error) {
	var (
		unsupported *services.UnsupportedCountryError
		invalid     *services.InvalidInputError
	)

	switch {
	case errors.Is(err, services.ErrCodeNotFound), errors.Is(err, catalog.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.As(err, &unsupported):
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: unsupported.Error()})
	case errors.As(err, &invalid):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: invalid.Error()})
	default:
		log.Error("Unhandled service error",
			zap.Error(err),
			zap.String("path", c.Request.URL.Path),
			zap.String("method", c.Request.Method))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}
