package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/jobfit/backend/agent"
	"github.com/jobfit/backend/auth"
	"github.com/jobfit/backend/config"
	_ "github.com/jobfit/backend/docs"
	"github.com/jobfit/backend/events"
	"github.com/jobfit/backend/gemini"
	"github.com/jobfit/backend/handlers"
	"github.com/jobfit/backend/matching"
	"github.com/jobfit/backend/mcp"
	"github.com/jobfit/backend/storage"
	"github.com/jobfit/backend/tools"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  "Start the HTTP API server with the matching, auth, tracked job and MCP endpoints. Configuration comes from the environment.",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	if cfg.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	log.Println("Initializing Firestore client...")
	firestoreClient, err := storage.NewFirestoreClient(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize Firestore client: %w", err)
	}
	defer firestoreClient.Close()

	log.Printf("Initializing CV storage (%s)...", cfg.CVStorage)
	cvStore, err := storage.NewCVStore(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize CV storage: %w", err)
	}
	defer cvStore.Close()

	geminiClient, err := gemini.NewClient(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to create Gemini client: %w", err)
	}
	defer geminiClient.Close()

	engine, err := newEngine(cfg.PolicyPath, cfg.CatalogPath)
	if err != nil {
		return err
	}

	searchTool := tools.NewSearchWebTool(cfg)
	fetchTool := tools.NewFetchPageTool(cfg)
	extractTool := tools.NewExtractJobTool(geminiClient)

	deps := agent.Deps{
		Fetcher:   fetchTool,
		Extractor: extractTool,
	}
	if cfg.LiveSearchEnabled() {
		deps.Searcher = searchTool
	} else {
		log.Println("PSE credentials not set, job pools come from the cache and fallback pool")
	}

	jobCache, err := storage.OpenJobCache(cfg.JobCachePath)
	if err != nil {
		log.Printf("Job cache disabled: %v", err)
	} else {
		defer jobCache.Close()
		deps.Cache = jobCache
	}
	jobAgent := agent.NewJobAgent(cfg, deps)

	publisher, err := events.NewPublisher(cfg)
	if err != nil {
		log.Printf("Match events disabled: %v", err)
		publisher = events.NopPublisher{}
	}
	defer publisher.Close()

	toolRegistry := tools.NewToolRegistry(
		searchTool,
		fetchTool,
		extractTool,
		tools.NewExtractSkillsTool(geminiClient),
		tools.NewRankJobsTool(engine),
		tools.NewAnalyzeGapsTool(engine),
		tools.NewScoreJobTool(engine),
	)

	jwtService := auth.NewJWTService(cfg)
	cvReader := handlers.NewCVReader(geminiClient)

	router := newRouter()
	api := handlers.Routes{
		Health:  handlers.NewHealthHandler(version),
		Auth:    handlers.NewAuthHandler(firestoreClient, jwtService, auth.NewGoogleAuthService(cfg), cvStore, cvReader),
		Match:   handlers.NewMatchHandler(engine, jobAgent, firestoreClient, publisher, cfg.DefaultTopN),
		Skills:  handlers.NewSkillHandler(cvReader),
		Tracked: handlers.NewTrackedJobHandler(firestoreClient),
		Tools:   handlers.NewToolsHandler(toolRegistry),
	}.Register(router, jwtService)

	// MCP endpoints for external AI agents
	mcp.NewServer(toolRegistry, version).RegisterRoutes(api)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Printf("Starting server on port %s...", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	sigCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
	case <-sigCtx.Done():
	}

	log.Println("Shutting down server...")

	// Give outstanding requests 30 seconds to complete
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Println("Server exited gracefully")
	return nil
}

// newRouter creates the gin engine with the shared middleware and swagger UI
func newRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(gin.Logger())
	router.Use(auth.RequestIDMiddleware())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return router
}

// newEngine loads the scoring policy and learning catalog files
func newEngine(policyPath, catalogPath string) (*matching.Engine, error) {
	policy, err := matching.LoadPolicy(policyPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load policy: %w", err)
	}
	catalog, err := matching.LoadCatalog(catalogPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	return matching.NewEngine(policy, catalog), nil
}
