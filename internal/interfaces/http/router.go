package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/btp-connect-api/internal/application/auth"
	"github.com/jhoicas/btp-connect-api/internal/application/usecase"
	"github.com/jhoicas/btp-connect-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Prefix string // por defecto /api

	Resolver *auth.SessionResolver
	AuthUC   *auth.AuthUseCase

	SubcontractorUC *usecase.SubcontractorUseCase
	SiteUC          *usecase.SiteUseCase
	InvoiceUC       *usecase.InvoiceUseCase
	StatementUC     *usecase.StatementUseCase
	StatementPDFUC  *usecase.StatementPDFUseCase
	DocumentUC      *usecase.DocumentUseCase
	SeedUC          *usecase.SeedUseCase
	DashboardUC     *usecase.DashboardUseCase
	HealthUC        *usecase.HealthUseCase

	Metrics *Metrics // opcional; nil desactiva /metrics
	Log     *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Log
	if log == nil {
		log = nopLogger()
	}
	prefix := deps.Prefix
	if prefix == "" {
		prefix = "/api"
	}

	health := NewHealthHandler(deps.HealthUC, log.Named("health"))
	app.Get("/health", health.Live)
	if deps.Metrics != nil {
		app.Get("/metrics", deps.Metrics.Handler())
	}

	api := app.Group(prefix)

	// Público
	api.Get("/health", health.Live)
	api.Get("/health/live", health.Live)
	api.Get("/health/ready", health.Ready)

	authHandler := NewAuthHandler(deps.AuthUC, log.Named("auth"))
	api.Post("/auth/login", authHandler.Login)

	documentHandler := NewDocumentHandler(deps.DocumentUC, log.Named("documents"))
	api.Get("/documents/types", documentHandler.Types)

	// Rutas con sesión (Bearer Token o identidad demo). SessionMiddleware va por
	// ruta: una ruta inexistente bajo el prefijo responde 404, no 401.
	session := SessionMiddleware(deps.Resolver, log.Named("session"))

	api.Get("/auth/me", session, authHandler.Me)

	st := api.Group("/st")
	subHandler := NewSubcontractorHandler(deps.SubcontractorUC, log.Named("st"))
	st.Get("/", session, subHandler.List)
	st.Post("/", session, subHandler.Create)
	st.Get("/:id", session, subHandler.GetByID)
	st.Patch("/:id", session, subHandler.Update)
	st.Delete("/:id", session, subHandler.Delete)

	sites := api.Group("/chantiers")
	siteHandler := NewSiteHandler(deps.SiteUC, log.Named("chantiers"))
	sites.Get("/", session, siteHandler.List)
	sites.Post("/", session, siteHandler.Create)
	sites.Get("/:id", session, siteHandler.GetByID)
	sites.Patch("/:id", session, siteHandler.Update)
	sites.Delete("/:id", session, siteHandler.Delete)

	invoices := api.Group("/factures")
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC, log.Named("factures"))
	invoices.Get("/", session, invoiceHandler.List)
	invoices.Post("/", session, invoiceHandler.Create)

	statements := api.Group("/situations")
	statementHandler := NewStatementHandler(deps.StatementUC, deps.StatementPDFUC, log.Named("situations"))
	statements.Get("/", session, statementHandler.List)
	statements.Post("/", session, statementHandler.Create)
	statements.Get("/:id", session, statementHandler.GetByID)
	statements.Patch("/:id", session, statementHandler.Update)
	statements.Get("/:id/pdf", session, statementHandler.PDF)

	documents := api.Group("/documents")
	documents.Get("/", session, documentHandler.List)
	documents.Post("/", session, documentHandler.Create)

	api.Post("/seed", session, NewSeedHandler(deps.SeedUC, log.Named("seed")).Seed)
	api.Get("/dashboard", session, NewDashboardHandler(deps.DashboardUC, log.Named("dashboard")).Get)
}

func nopLogger() *logger.Logger { return logger.Nop() }
