package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vstock/ventas-api/internal/application/auth"
	"github.com/vstock/ventas-api/internal/application/chat"
	"github.com/vstock/ventas-api/internal/application/usecase"
	"github.com/vstock/ventas-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	ProductUC    *usecase.ProductUseCase
	StockUC      *usecase.StockUseCase
	DashboardUC  *usecase.DashboardUseCase
	ReportUC     *usecase.ReportUseCase
	ChatStore    *chat.SessionStore
	Orchestrator *chat.Orchestrator
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Products (solo vendedores)
	products := protected.Group("/products", RequireType(entity.UserTypeVendor))
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Stock (solo vendedores)
	stock := protected.Group("/stock", RequireType(entity.UserTypeVendor))
	stockHandler := NewStockHandler(deps.StockUC)
	stock.Post("/", stockHandler.Add)
	stock.Put("/:id", stockHandler.UpdateQuantity)
	stock.Get("/", stockHandler.List)

	// Dashboard (protegido)
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/summary", dashboardHandler.Summary)

	// Reports (protegido)
	reports := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/sales.pdf", reportHandler.SalesPDF)

	// Chat (protegido)
	chatGroup := protected.Group("/chat")
	chatHandler := NewChatHandler(deps.ChatStore, deps.Orchestrator)
	chatGroup.Post("/sessions", chatHandler.CreateSession)
	chatGroup.Post("/sessions/:id/messages", chatHandler.PostMessage)
	chatGroup.Get("/sessions/:id", chatHandler.GetSession)
	chatGroup.Delete("/sessions/:id", chatHandler.DeleteSession)
}
