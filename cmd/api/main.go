package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/invoices-dashboard/internal/application/auth"
	"github.com/jhoicas/invoices-dashboard/internal/application/billing"
	"github.com/jhoicas/invoices-dashboard/internal/application/dto"
	"github.com/jhoicas/invoices-dashboard/internal/infrastructure/cache"
	"github.com/jhoicas/invoices-dashboard/internal/infrastructure/identity"
	infrapdf "github.com/jhoicas/invoices-dashboard/internal/infrastructure/pdf"
	"github.com/jhoicas/invoices-dashboard/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/invoices-dashboard/internal/interfaces/http"
	"github.com/jhoicas/invoices-dashboard/pkg/config"
	"github.com/jhoicas/invoices-dashboard/pkg/logger"
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

	if cfg.JWT.Secret == "" {
		log.Warn().Msg("JWT_SECRET vacío: ningún login podrá emitir sesión")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	dashboardRepo := postgres.NewDashboardRepository(pool)

	// Vistas del listado por URI; las mutaciones invalidan /dashboard/invoices.
	views := cache.NewPathCache(cfg.Cache.TTL)

	invoiceActions := billing.NewInvoiceActions(invoiceRepo, views, log, billing.ActionsConfig{Env: cfg.App.Env})
	queryUC := billing.NewQueryUseCase(invoiceRepo, customerRepo, dashboardRepo)
	invoicePDFUC := billing.NewPDFUseCase(invoiceRepo, customerRepo, infrapdf.NewMarotoPDFGenerator(cfg.App.Name))

	identitySvc := identity.New(identity.SessionConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, identity.NewCredentialsProvider(userRepo))
	authUC := auth.NewAuthUseCase(identitySvc)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				code = fe.Code
			}
			if code >= fiber.StatusInternalServerError {
				log.Error().Err(err).Str("path", c.Path()).Msg("error no controlado")
				return c.Status(code).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
			}
			return c.Status(code).JSON(dto.ErrorResponse{Code: "HTTP_ERROR", Message: err.Error()})
		},
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Invoices Dashboard API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		InvoiceActions: invoiceActions,
		QueryUC:        queryUC,
		PDFUC:          invoicePDFUC,
		Views:          views,
		Log:            log,
		JWTSecret:      cfg.JWT.Secret,
		SecureCookie:   !cfg.App.IsDevelopment(),
		CORSOrigin:     cfg.HTTP.CORSOrigin,
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
