package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/invoices-dashboard/internal/application/auth"
	"github.com/jhoicas/invoices-dashboard/internal/application/billing"
	"github.com/jhoicas/invoices-dashboard/internal/infrastructure/cache"
	"github.com/jhoicas/invoices-dashboard/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	InvoiceActions *billing.InvoiceActions
	QueryUC        *billing.QueryUseCase
	PDFUC          *billing.PDFUseCase
	Views          *cache.PathCache
	Log            *logger.Logger
	JWTSecret      string
	SecureCookie   bool
	CORSOrigin     string
	LoginRateLimit int
}

// Router registra las rutas del dashboard.
func Router(app *fiber.App, deps RouterDeps) {
	app.Use(CorsMiddleware(deps.CORSOrigin))

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC, deps.SecureCookie)
	app.Post("/login", RateLimitLogin(deps.LoginRateLimit), authHandler.Login)
	app.Post("/logout", authHandler.Logout)

	// Rutas protegidas (cookie de sesión o Bearer Token)
	dashboard := app.Group(DashboardPath, AuthMiddleware(deps.JWTSecret))

	dashboardHandler := NewDashboardHandler(deps.QueryUC, deps.Log)
	dashboard.Get("/", dashboardHandler.GetCards)
	dashboard.Get("/customers", dashboardHandler.ListCustomers)

	invoices := dashboard.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.InvoiceActions, deps.QueryUC, deps.PDFUC, deps.Views, deps.Log)
	invoices.Get("/", invoiceHandler.List)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Get("/:id", invoiceHandler.GetByID)
	invoices.Post("/:id", invoiceHandler.Update)
	invoices.Post("/:id/delete", invoiceHandler.Delete)
	invoices.Get("/:id/pdf", invoiceHandler.PDF)
}
