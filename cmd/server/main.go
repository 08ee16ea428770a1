package main

import (
	"context"
	"time"

	"law_office_app_go/config"
	"law_office_app_go/db"
	"law_office_app_go/handlers"
	"law_office_app_go/logging"
	"law_office_app_go/middleware"
	"law_office_app_go/models"
	"law_office_app_go/services"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

func main() {
	// Load configuration
	cfg := config.Load()
	logging.Setup(cfg.Environment)

	// Initialize database
	pool := db.PoolOptions{
		MaxOpenConns: cfg.DBMaxOpenConns,
		MaxIdleConns: cfg.DBMaxIdleConns,
	}
	if err := db.Initialize(cfg.DBPath, cfg.Environment, pool); err != nil {
		logging.Log.Fatal().Err(err).Msg("failed to initialize database")
	}
	defer db.Close()

	// Run migrations
	if err := db.AutoMigrate(
		&models.Client{}, &models.PhysicalPerson{}, &models.LegalEntity{},
		&models.Lawyer{}, &models.Status{}, &models.Court{}, &models.CaseCategory{},
		&models.Case{}, &models.Document{}, &models.Hearing{}, &models.Task{},
	); err != nil {
		logging.Log.Fatal().Err(err).Msg("failed to run migrations")
	}

	if cfg.SeedOnStartup {
		if err := services.SeedReferenceData(context.Background(), db.DB); err != nil {
			logging.Log.Fatal().Err(err).Msg("failed to seed reference data")
		}
	}

	// External generation service client
	services.Ollama = services.NewOllamaClient(cfg.OllamaAPIURL)

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.AllowedOrigins,
	}))
	e.Use(middleware.RequestLogger())
	e.Use(middleware.RequestTimeout(time.Duration(cfg.RequestTimeoutSeconds) * time.Second))

	// Entity API
	e.GET("/api/clientes", handlers.GetClientsHandler)
	e.POST("/api/clientes", handlers.CreateClientHandler)
	e.PUT("/api/clientes", handlers.UpdateClientHandler)
	e.DELETE("/api/clientes", handlers.DeleteClientHandler)

	e.GET("/api/casos", handlers.GetCasesHandler)
	e.POST("/api/casos", handlers.CreateCaseHandler)
	e.PUT("/api/casos", handlers.UpdateCaseHandler)
	e.DELETE("/api/casos", handlers.DeleteCaseHandler)

	e.GET("/api/documentos", handlers.GetDocumentsHandler)
	e.POST("/api/documentos", handlers.CreateDocumentHandler)
	e.PUT("/api/documentos", handlers.UpdateDocumentHandler)
	e.DELETE("/api/documentos", handlers.DeleteDocumentHandler)

	e.GET("/api/audiencias", handlers.GetHearingsHandler)
	e.POST("/api/audiencias", handlers.CreateHearingHandler)
	e.DELETE("/api/audiencias", handlers.DeleteHearingHandler)

	e.GET("/api/tarefas", handlers.GetTasksHandler)
	e.POST("/api/tarefas", handlers.CreateTaskHandler)
	e.DELETE("/api/tarefas", handlers.DeleteTaskHandler)

	// Lookup API
	e.GET("/api/advogados", handlers.GetLawyersHandler)
	e.GET("/api/status", handlers.GetStatusesHandler)
	e.GET("/api/varas_judiciais", handlers.GetCourtsHandler)
	e.GET("/api/categorias_caso", handlers.GetCaseCategoriesHandler)

	// Document Q&A and reports
	e.POST("/api/ollama", handlers.AskOllamaHandler)
	e.GET("/api/relatorios/export", handlers.ExportReportsHandler)

	// Page data
	e.GET("/", handlers.ClientsPageHandler)
	e.GET("/clientes", handlers.ClientsPageHandler)
	e.GET("/casos", handlers.CasesPageHandler)
	e.GET("/documentos", handlers.DocumentsPageHandler)
	e.GET("/relatorios", handlers.ReportsPageHandler)
	e.GET("/ia-integrada", handlers.AIPageHandler)

	logging.Log.Info().
		Str("port", cfg.ServerPort).
		Str("environment", cfg.Environment).
		Msg("starting server")
	if err := e.Start(":" + cfg.ServerPort); err != nil {
		logging.Log.Fatal().Err(err).Msg("server stopped")
	}
}
