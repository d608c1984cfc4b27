package server

import (
	"context"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/tarifflens/tarifflens-api/docs" // This will be generated
	"github.com/tarifflens/tarifflens-api/internal/catalog"
	"github.com/tarifflens/tarifflens-api/internal/client/ollama"
	"github.com/tarifflens/tarifflens-api/internal/constants"
	"github.com/tarifflens/tarifflens-api/internal/db"
	"github.com/tarifflens/tarifflens-api/internal/handlers"
	"github.com/tarifflens/tarifflens-api/internal/interfaces"
	"github.com/tarifflens/tarifflens-api/internal/logger"
	"github.com/tarifflens/tarifflens-api/internal/middleware"
	"github.com/tarifflens/tarifflens-api/internal/services"
)

// Handler Definitions
var (
	htsHandler       *handlers.HTSHandler
	tariffHandler    *handlers.TariffHandler
	sourcingHandler  *handlers.SourcingHandler
	assistantHandler *handlers.AssistantHandler
	catalogHandler   *handlers.CatalogHandler

	catalogStore *catalog.Store
)

func InitializeHandlers() {
	stage := os.Getenv("STAGE")
	if !constants.IsValidStage(stage) {
		stage = constants.StageLocal
	}
	logger.InitLogger(stage)

	reload := catalogReloader()

	// The first load must succeed; the API has nothing to serve without a
	// catalog snapshot.
	initial, err := reload()
	if err != nil {
		logger.Fatal("Unable to load tariff catalog", zap.Error(err))
	}
	catalogStore = catalog.NewStore(initial)
	logger.Info("Tariff catalog loaded", zap.Int("entries", initial.Len()))

	embedding := initEmbeddingClient(initial)
	completion := initCompletionClient()

	classificationService := services.NewClassificationService(catalogStore, embedding)
	rateService := services.NewRateService(catalogStore)
	costService := services.NewCostService()
	sourcingService := services.NewSourcingService(rateService, costService)
	fxService := services.NewFXService(services.DefaultStaticRateProvider())

	commonServices := handlers.NewCommonServices(handlers.CommonServicesConfig{
		Logger:         logger.Log,
		CatalogStore:   catalogStore,
		ReloadCatalog:  reload,
		Classification: classificationService,
		Rates:          rateService,
		Costs:          costService,
		Sourcing:       sourcingService,
		FX:             fxService,
	})

	// API Handler initialization
	htsHandler = handlers.NewHTSHandler(commonServices, classificationService)
	tariffHandler = handlers.NewTariffHandler(commonServices, rateService, costService, fxService)
	sourcingHandler = handlers.NewSourcingHandler(commonServices, sourcingService)
	assistantHandler = handlers.NewAssistantHandler(commonServices, classificationService, completion)
	catalogHandler = handlers.NewCatalogHandler(commonServices)
}

// catalogReloader picks the catalog source from the environment. DATABASE_URL
// selects the Postgres source; otherwise entries come from the CSV schedule
// at CATALOG_PATH.
func catalogReloader() handlers.CatalogReloadFunc {
	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		poolConfig, err := pgxpool.ParseConfig(dbURL)
		if err != nil {
			logger.Fatal("Unable to parse database connection string", zap.Error(err))
		}

		poolConfig.MaxConns = 10
		poolConfig.MinConns = 2
		poolConfig.MaxConnLifetime = time.Hour
		poolConfig.MaxConnIdleTime = time.Minute * 30

		connPool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
		if err != nil {
			logger.Fatal("Unable to create connection pool", zap.Error(err))
		}

		source := db.NewCatalogSource(connPool)
		return func() (*catalog.Catalog, error) {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			return source.Load(ctx)
		}
	}

	path := os.Getenv("CATALOG_PATH")
	if path == "" {
		path = "data/hts_catalog.csv"
	}
	return func() (*catalog.Catalog, error) {
		return catalog.LoadCSVFile(path)
	}
}

// initEmbeddingClient builds the semantic ranking client unless disabled.
// Classification degrades to exact and substring matching without it. The
// return type is the interface so a disabled client stays a true nil.
func initEmbeddingClient(initial *catalog.Catalog) interfaces.SimilarityClient {
	if os.Getenv("OLLAMA_DISABLED") == "true" {
		logger.Info("Semantic matching disabled by configuration")
		return nil
	}

	embedding := ollama.NewEmbeddingClient(os.Getenv("OLLAMA_URL"), os.Getenv("OLLAMA_EMBED_MODEL"))

	// Pre-compute description embeddings so the first search does not pay
	// the full corpus cost.
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()
		embedding.WarmCorpus(ctx, initial.Descriptions())
	}()

	return embedding
}

func initCompletionClient() interfaces.CompletionClient {
	if os.Getenv("OLLAMA_DISABLED") == "true" {
		return nil
	}
	return ollama.NewGenerateClient(os.Getenv("OLLAMA_URL"), os.Getenv("OLLAMA_GENERATE_MODEL"))
}

func InitializeRoutes(router *gin.Engine) {
	// Configure and apply CORS middleware
	router.Use(configureCORS())

	// Correlate every request before anything logs
	router.Use(middleware.CorrelationID())

	// if we are not in production, log the request body
	if os.Getenv("GIN_MODE") != "release" {
		router.Use(middleware.RequestLogging(true))
	} else {
		router.Use(middleware.RequestLogging(false))
	}

	// Add Swagger endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"entries": catalogStore.Snapshot().Len(),
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// HTS catalog
		hts := v1.Group("/hts")
		{
			hts.GET("/search", htsHandler.Search)
			hts.GET("/codes/:code", htsHandler.GetCode)
		}

		// Tariff math
		tariff := v1.Group("/tariff")
		{
			tariff.POST("/rate", tariffHandler.ResolveRate)
			tariff.POST("/calculate", tariffHandler.Calculate)
			tariff.POST("/compare", sourcingHandler.Compare)
		}

		// Assisted classification
		v1.POST("/assistant/classify", assistantHandler.Classify)

		// Admin-only routes
		admin := v1.Group("/admin")
		{
			admin.POST("/catalog/refresh", catalogHandler.Refresh)
		}
	}
}

// configureCORS returns a configured CORS middleware
func configureCORS() gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()

	// Get allowed origins from environment variable
	originsEnv := os.Getenv("CORS_ALLOWED_ORIGINS")
	if originsEnv == "" {
		// Default to localhost if not set
		corsConfig.AllowOrigins = []string{"http://localhost:3000"}
	} else {
		// Split and trim the origins
		origins := strings.Split(originsEnv, ",")
		for i, origin := range origins {
			origins[i] = strings.TrimSpace(origin)
		}
		corsConfig.AllowOrigins = origins
	}

	// Get allowed methods from environment variable
	methodsEnv := os.Getenv("CORS_ALLOWED_METHODS")
	if methodsEnv == "" {
		corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	} else {
		methods := strings.Split(methodsEnv, ",")
		for i, method := range methods {
			methods[i] = strings.TrimSpace(method)
		}
		corsConfig.AllowMethods = methods
	}

	// Get allowed headers from environment variable
	headersEnv := os.Getenv("CORS_ALLOWED_HEADERS")
	if headersEnv == "" {
		corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Correlation-ID"}
	} else {
		headers := strings.Split(headersEnv, ",")
		for i, header := range headers {
			headers[i] = strings.TrimSpace(header)
		}
		corsConfig.AllowHeaders = headers
	}

	// Get exposed headers from environment variable
	exposedHeadersEnv := os.Getenv("CORS_EXPOSED_HEADERS")
	if exposedHeadersEnv != "" {
		exposedHeaders := strings.Split(exposedHeadersEnv, ",")
		for i, header := range exposedHeaders {
			exposedHeaders[i] = strings.TrimSpace(header)
		}
		corsConfig.ExposeHeaders = exposedHeaders
	}

	// Set credentials allowed
	corsConfig.AllowCredentials = os.Getenv("CORS_ALLOW_CREDENTIALS") == "true"

	return cors.New(corsConfig)
}
