package http

import (
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// AppOptions parámetros del servidor Fiber.
type AppOptions struct {
	Name        string
	CORSOrigins string // vacío = "*"
	SwaggerFile string // vacío = sin UI de Swagger
}

// NewApp construye la app Fiber con middlewares comunes y registra las rutas.
func NewApp(opts AppOptions, deps RouterDeps) *fiber.App {
	if deps.Log == nil {
		deps.Log = nopLogger()
	}
	app := fiber.New(fiber.Config{
		AppName:      opts.Name,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: ErrorHandler(deps.Log.Named("http")),
	})
	app.Use(recover.New())

	origins := opts.CORSOrigins
	if origins == "" {
		origins = "*"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PATCH,DELETE,OPTIONS",
	}))

	if deps.Metrics != nil {
		app.Use(deps.Metrics.Middleware(deps.Log.Named("http")))
	}

	// Swagger UI en local: http://localhost:<port>/docs
	if opts.SwaggerFile != "" {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: opts.SwaggerFile,
			Path:     "docs",
			Title:    "BTP Connect API",
		}))
	}

	Router(app, deps)
	return app
}
