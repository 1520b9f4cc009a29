package cmd

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/spf13/cobra"

	"github.com/myjobmatch/skillgap/config"
	"github.com/myjobmatch/skillgap/handlers"
	"github.com/myjobmatch/skillgap/mcp"
	"github.com/myjobmatch/skillgap/taxonomy"
	"github.com/myjobmatch/skillgap/tools"
)

type serveOptions struct {
	taxonomy string
	port     int
}

// NewServeCmd creates the serve command
func NewServeCmd(version string) *cobra.Command {
	opts := &serveOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP service",
		Long: `Serve the résumé analysis API, the browser form and the MCP tool endpoints.

Configuration comes from the environment (and a .env file when present);
--taxonomy and --port override TAXONOMY_SOURCE and PORT.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(opts, version)
		},
	}

	cmd.Flags().StringVar(&opts.taxonomy, "taxonomy", "", "Taxonomy source (file, gs://, s3://, firestore://, https://)")
	cmd.Flags().IntVarP(&opts.port, "port", "p", 0, "HTTP port (overrides PORT)")

	return cmd
}

func runServe(opts *serveOptions, version string) error {
	if opts.port != 0 {
		os.Setenv("PORT", strconv.Itoa(opts.port))
	}

	// Load configuration
	cfg, err := loadConfig(opts.taxonomy)
	if err != nil {
		return err
	}

	// Set Gin mode based on debug setting
	if cfg.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Load the skill taxonomy
	log.Println("Loading skill taxonomy...")
	tx, err := loadTaxonomy(context.Background(), cfg)
	if err != nil {
		return err
	}
	log.Printf("Skill taxonomy loaded: %d roles", len(tx.RoleNames()))

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      NewRouter(cfg, tx, version),
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	serverErr := make(chan error, 1)
	go func() {
		log.Printf("Starting server on port %s...", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-serverErr:
		return err
	case <-quit:
	}

	log.Println("Shutting down server...")

	// Give outstanding requests 30 seconds to complete
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return err
	}

	log.Println("Server exited gracefully")
	return nil
}

// NewRouter builds the gin engine serving the API, the form UI and MCP
func NewRouter(cfg *config.Config, tx *taxonomy.Taxonomy, version string) *gin.Engine {
	analyzeHandler := handlers.NewAnalyzeHandler(tx, cfg)
	formHandler := handlers.NewFormHandler(analyzeHandler)

	toolRegistry := tools.NewAnalysisRegistry(tx)
	systemHandler := handlers.NewSystemHandler(version, tx, toolRegistry)
	mcpServer := mcp.NewServer(toolRegistry, "skillgap", version)

	// Create Gin router
	router := gin.New()
	router.MaxMultipartMemory = cfg.MaxUploadBytes()

	// Add middleware
	router.Use(gin.Recovery())
	router.Use(gin.Logger())

	// Configure CORS for browser frontends
	router.Use(cors.New(corsConfig(cfg.CORSOrigins)))

	router.SetHTMLTemplate(handlers.Templates())

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Register routes
	router.GET("/health", systemHandler.HealthCheck)
	router.GET("/", formHandler.Show)
	router.POST("/", formHandler.Submit)

	api := router.Group("/api")
	{
		api.GET("/roles", analyzeHandler.ListRoles)
		api.GET("/roles/*role", analyzeHandler.GetRole)
		api.POST("/analyze", analyzeHandler.Analyze)
		api.POST("/resources", analyzeHandler.Resources)

		// Tools introspection endpoint
		api.GET("/tools", systemHandler.GetTools)

		// MCP endpoints for external AI agents
		mcpServer.RegisterRoutes(api)
	}

	return router
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}

	for _, origin := range origins {
		if origin == "*" {
			cfg.AllowAllOrigins = true
			return cfg
		}
	}

	cfg.AllowOrigins = origins
	cfg.AllowCredentials = true
	return cfg
}
