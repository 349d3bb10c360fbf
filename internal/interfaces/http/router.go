package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/bodega-api/internal/application/auth"
	appdoc "github.com/jhoicas/bodega-api/internal/application/document"
	"github.com/jhoicas/bodega-api/internal/application/reports"
	"github.com/jhoicas/bodega-api/internal/application/usecase"
	"github.com/jhoicas/bodega-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	ProductUC  *usecase.ProductUseCase
	ZoneUC     *usecase.ZoneUseCase
	SupplierUC *usecase.SupplierUseCase
	EmployeeUC *usecase.EmployeeUseCase
	DocumentUC *appdoc.UseCase
	Sessions   *appdoc.SessionManager
	ReportUC   *reports.UseCase
	PrintUC    *reports.PrintUseCase
	JWTSecret  string
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

	// Catálogo de productos
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", RequireRole(entity.RoleAdmin, entity.RoleAlmacenista), productHandler.Delete)

	// Zonas de almacenamiento
	zones := protected.Group("/zones")
	zoneHandler := NewZoneHandler(deps.ZoneUC)
	zones.Post("/", zoneHandler.Create)
	zones.Get("/", zoneHandler.List)
	zones.Get("/:id", zoneHandler.GetByID)
	zones.Put("/:id", zoneHandler.Update)
	zones.Delete("/:id", RequireRole(entity.RoleAdmin, entity.RoleAlmacenista), zoneHandler.Delete)

	// Proveedores
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", RequireRole(entity.RoleAdmin, entity.RoleAlmacenista), supplierHandler.Delete)

	// Empleados
	employees := protected.Group("/employees")
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC)
	employees.Post("/", employeeHandler.Create)
	employees.Get("/", employeeHandler.List)
	employees.Get("/:id", employeeHandler.GetByID)
	employees.Put("/:id", employeeHandler.Update)
	employees.Delete("/:id", RequireRole(entity.RoleAdmin), employeeHandler.Delete)

	// Documentos: cabeceras + sesión de renglones + contabilización
	documents := protected.Group("/documents")
	documentHandler := NewDocumentHandler(deps.DocumentUC, deps.Sessions)
	documents.Post("/", documentHandler.Create)
	documents.Get("/", documentHandler.List)
	documents.Get("/:id", documentHandler.GetByID)
	documents.Put("/:id", documentHandler.Update)
	documents.Delete("/:id", documentHandler.Delete)
	documents.Post("/:id/post", RequireRole(entity.RoleAdmin, entity.RoleAlmacenista), documentHandler.Post)
	documents.Delete("/:id/session", documentHandler.CloseSession)
	documents.Post("/:id/lines", documentHandler.AddLine)
	documents.Patch("/:id/lines/:lineID/quantity", documentHandler.UpdateLineQuantity)
	documents.Patch("/:id/lines/:lineID/price", documentHandler.UpdateLinePrice)
	documents.Delete("/:id/lines/:lineID", documentHandler.RemoveLine)

	// Reportes e impresión
	reportHandler := NewReportHandler(deps.ReportUC, deps.PrintUC)
	reportsGroup := protected.Group("/reports")
	reportsGroup.Get("/stock-by-zone", reportHandler.StockByZone)
	reportsGroup.Get("/document-totals", reportHandler.DocumentTotals)
	reportsGroup.Get("/low-stock", reportHandler.LowStock)
	documents.Get("/:id/pdf", reportHandler.DocumentPDF)
}
