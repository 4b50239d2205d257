package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Almacen-api/internal/application/analytics"
	"github.com/jhoicas/Almacen-api/internal/application/auth"
	"github.com/jhoicas/Almacen-api/internal/application/export"
	"github.com/jhoicas/Almacen-api/internal/application/inventory"
	"github.com/jhoicas/Almacen-api/internal/application/truss"
	"github.com/jhoicas/Almacen-api/internal/application/usecase"
	"github.com/jhoicas/Almacen-api/internal/ws"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC   *usecase.ProductUseCase
	SupplierUC  *usecase.SupplierUseCase
	PurchaseUC  *usecase.PurchaseUseCase
	UserUC      *usecase.UserUseCase
	MovementUC  *inventory.UseCase
	TrussUC     *truss.UseCase
	DashboardUC *analytics.DashboardUseCase
	AuthUC      *auth.UseCase
	ExportUC    *export.UseCase
	Hub         *ws.Hub
	JWTSecret   string
}

// Router registra las rutas de la API. Las lecturas exigen solo autenticación;
// las mutaciones pasan además por la tabla de capacidades RBAC.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Products
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	movementHandler := NewMovementHandler(deps.MovementUC)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Get("/:id/summary", movementHandler.Summary)
	products.Post("/", RequireAction(ActionCatalogWrite), productHandler.Create)
	products.Put("/:id", RequireAction(ActionCatalogWrite), productHandler.Update)
	products.Delete("/:id", RequireAction(ActionCatalogWrite), productHandler.Delete)

	// Stock movements
	movements := protected.Group("/movements")
	movements.Get("/", movementHandler.List)
	movements.Post("/", RequireAction(ActionMovementsWrite), movementHandler.Register)

	// Suppliers
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Post("/", RequireAction(ActionSuppliersWrite), supplierHandler.Create)
	suppliers.Put("/:id", RequireAction(ActionSuppliersWrite), supplierHandler.Update)
	suppliers.Delete("/:id", RequireAction(ActionSuppliersWrite), supplierHandler.Delete)

	// Purchases
	purchases := protected.Group("/purchases")
	purchaseHandler := NewPurchaseHandler(deps.PurchaseUC)
	purchases.Get("/", purchaseHandler.List)
	purchases.Get("/:id", purchaseHandler.GetByID)
	purchases.Post("/", RequireAction(ActionPurchasesWrite), purchaseHandler.Create)
	purchases.Patch("/:id/status", RequireAction(ActionPurchasesWrite), purchaseHandler.UpdateStatus)

	// Trusses: rutas fijas antes de :id para que no las capture el parámetro
	trusses := protected.Group("/trusses")
	trussHandler := NewTrussHandler(deps.TrussUC)
	trusses.Get("/movements", trussHandler.ListMovements)
	trusses.Post("/movements", RequireAction(ActionTrussesWrite), trussHandler.RegisterMovement)
	trusses.Patch("/movements/:id/return", RequireAction(ActionTrussesWrite), trussHandler.MarkReturned)
	trusses.Get("/", trussHandler.List)
	trusses.Post("/", RequireAction(ActionTrussesWrite), trussHandler.Create)
	trusses.Delete("/:id", RequireAction(ActionTrussesWrite), trussHandler.Delete)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", dashboardHandler.Get)

	// Reports
	reports := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ExportUC)
	reports.Get("/inventory.csv", reportHandler.InventoryCSV)
	reports.Get("/inventory.pdf", reportHandler.InventoryPDF)
	reports.Get("/movements.csv", reportHandler.MovementsCSV)
	reports.Get("/purchases.csv", reportHandler.PurchasesCSV)

	// Users (solo admin)
	users := protected.Group("/users", RequireAction(ActionUsersManage))
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Put("/:id/roles", userHandler.UpdateRoles)
	users.Patch("/:id/authorize", userHandler.Authorize)
	users.Delete("/:id", userHandler.Delete)

	// Feed de cambios websocket
	RegisterEventsRoute(app, deps.Hub)
}
