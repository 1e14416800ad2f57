package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/vstock/ventas-api/internal/application/auth"
	"github.com/vstock/ventas-api/internal/application/chat"
	"github.com/vstock/ventas-api/internal/application/usecase"
	infraai "github.com/vstock/ventas-api/internal/infrastructure/ai"
	infrapdf "github.com/vstock/ventas-api/internal/infrastructure/pdf"
	"github.com/vstock/ventas-api/internal/infrastructure/postgres"
	"github.com/vstock/ventas-api/internal/infrastructure/storage"
	httpRouter "github.com/vstock/ventas-api/internal/interfaces/http"
	"github.com/vstock/ventas-api/pkg/config"
	"github.com/vstock/ventas-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	stockRepo := postgres.NewStockRepository(pool)
	salesRepo := postgres.NewSalesAnalyticsRepository(pool)

	imageStore, err := storage.NewLocalImageStore(cfg.Storage.ImageDir)
	if err != nil {
		log.Fatal().Err(err).Msg("almacenamiento de imágenes")
	}

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	productUC := usecase.NewProductUseCase(productRepo, imageStore)
	stockUC := usecase.NewStockUseCase(stockRepo, productRepo)
	dashboardUC := usecase.NewDashboardUseCase(salesRepo)

	pdfGenerator := infrapdf.NewMarotoReportGenerator()
	reportUC := usecase.NewReportUseCase(salesRepo, pdfGenerator)

	// Chatbot: dispatcher de consultas de ventas + fallback generativo Gemini
	geminiSvc := infraai.NewGeminiService(cfg.AI.GoogleAPIKey, cfg.AI.Model)
	chatStore := chat.NewSessionStore()
	orchestrator := chat.NewOrchestrator(chat.NewDispatcher(salesRepo), geminiSvc)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30, // los PDFs y el fallback generativo tardan más que un CRUD
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Ventas API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		ProductUC:    productUC,
		StockUC:      stockUC,
		DashboardUC:  dashboardUC,
		ReportUC:     reportUC,
		ChatStore:    chatStore,
		Orchestrator: orchestrator,
		JWTSecret:    cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
