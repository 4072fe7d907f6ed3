package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jhoicas/btp-connect-api/internal/application/auth"
	"github.com/jhoicas/btp-connect-api/internal/application/usecase"
	"github.com/jhoicas/btp-connect-api/internal/domain/repository"
	"github.com/jhoicas/btp-connect-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/btp-connect-api/internal/infrastructure/pdf"
	"github.com/jhoicas/btp-connect-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/btp-connect-api/internal/interfaces/http"
	"github.com/jhoicas/btp-connect-api/pkg/config"
	"github.com/jhoicas/btp-connect-api/pkg/logger"
)

const swaggerFile = "./docs/swagger.json"

// stores contratos que la app necesita, sea cual sea el driver.
type stores struct {
	enterprises    repository.EnterpriseRepository
	users          repository.UserRepository
	subcontractors repository.SubcontractorRepository
	sites          repository.SiteRepository
	invoices       repository.InvoiceRepository
	statements     repository.StatementRepository
	documents      repository.DocumentRepository
	tx             repository.TxRunner
	pinger         repository.Pinger
	close          func()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("configuración inválida")
	}
	if cfg.UsesDefaultSecret() {
		log.Warn().Msg("JWT_SECRET no definido: se usa el secreto de desarrollo")
	}
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("version", cfg.App.Version).
		Str("store", cfg.Store.Driver).
		Bool("demo_mode", cfg.Auth.DemoMode).
		Msg("iniciando aplicación")

	ctx := context.Background()
	st, err := openStores(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar almacenamiento")
	}
	defer st.close()

	creds := auth.NewCredentialStore(st.enterprises, st.users, log.Named("auth"))
	tokens := auth.NewTokenService(cfg.JWT.Secret, cfg.JWT.Issuer, time.Duration(cfg.JWT.Expiration)*time.Minute)

	// Peticiones sin token: identidad demo o 401 según AUTH_DEMO_MODE.
	var fallback auth.IdentityProvider = auth.RejectProvider{}
	if cfg.Auth.DemoMode {
		fallback = auth.NewDemoProvider(creds)
	}

	deps := httpRouter.RouterDeps{
		Prefix:          cfg.HTTP.Prefix,
		Resolver:        auth.NewSessionResolver(tokens, fallback),
		AuthUC:          auth.NewAuthUseCase(creds, tokens, cfg.Auth.LoginFallback),
		SubcontractorUC: usecase.NewSubcontractorUseCase(st.subcontractors),
		SiteUC:          usecase.NewSiteUseCase(st.sites),
		InvoiceUC:       usecase.NewInvoiceUseCase(st.invoices, st.sites, st.subcontractors),
		StatementUC:     usecase.NewStatementUseCase(st.statements, st.sites, st.subcontractors),
		StatementPDFUC: usecase.NewStatementPDFUseCase(
			st.statements, st.sites, st.subcontractors, st.enterprises,
			infrapdf.NewMarotoStatementGenerator(),
		),
		DocumentUC:  usecase.NewDocumentUseCase(st.documents, st.subcontractors),
		SeedUC:      usecase.NewSeedUseCase(st.tx, log.Named("seed")),
		DashboardUC: usecase.NewDashboardUseCase(st.subcontractors, st.sites, st.statements, st.documents),
		HealthUC:    usecase.NewHealthUseCase(st.pinger, cfg.App.Version),
		Metrics:     httpRouter.NewMetrics(),
		Log:         log,
	}

	opts := httpRouter.AppOptions{Name: cfg.App.Name, CORSOrigins: cfg.HTTP.CORSOrigins}
	if _, err := os.Stat(swaggerFile); err == nil {
		opts.SwaggerFile = swaggerFile
	}
	app := httpRouter.NewApp(opts, deps)

	go func() {
		log.Info().Str("addr", cfg.HTTP.Addr()).Str("prefix", cfg.HTTP.Prefix).Msg("servidor HTTP escuchando")
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

func openStores(ctx context.Context, cfg *config.Config, log *logger.Logger) (*stores, error) {
	if cfg.Store.Driver == config.StoreDriverMemory {
		log.Warn().Msg("almacenamiento en memoria: los datos se pierden al reiniciar")
		m := memory.NewStore()
		return &stores{
			enterprises:    m.Enterprises,
			users:          m.Users,
			subcontractors: m.Subcontractors,
			sites:          m.Sites,
			invoices:       m.Invoices,
			statements:     m.Statements,
			documents:      m.Documents,
			tx:             m.Tx,
			pinger:         m,
			close:          func() {},
		}, nil
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return nil, err
	}
	if cfg.Store.Migrate {
		if err := postgres.Migrate(ctx, pool, log.Named("migrate")); err != nil {
			pool.Close()
			return nil, err
		}
	}
	p := postgres.NewStore(pool)
	return &stores{
		enterprises:    p.Enterprises,
		users:          p.Users,
		subcontractors: p.Subcontractors,
		sites:          p.Sites,
		invoices:       p.Invoices,
		statements:     p.Statements,
		documents:      p.Documents,
		tx:             p.Tx,
		pinger:         p,
		close:          pool.Close,
	}, nil
}
