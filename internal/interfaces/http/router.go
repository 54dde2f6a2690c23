package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/bomgen/internal/application/usecase"
	"github.com/jhoicas/bomgen/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	GenerateUC *usecase.GenerateUseCase
	CompareUC  *usecase.CompareUseCase
	TemplateUC *usecase.TemplateUseCase
	Log        *logger.Logger
}

// Router registra las rutas de la aplicación.
func Router(app *fiber.App, deps RouterDeps) {
	if deps.Log != nil {
		app.Use(requestLogger(deps.Log))
	}

	// Formulario web (público, sin estado)
	app.Get("/", Form)

	api := app.Group("/api")

	bomHandler := NewBOMHandler(deps.GenerateUC, deps.CompareUC, deps.TemplateUC)
	templateHandler := NewTemplateHandler(deps.TemplateUC)

	bomGroup := api.Group("/bom")
	bomGroup.Post("/generate", bomHandler.Generate)
	bomGroup.Post("/compare", bomHandler.Compare)
	bomGroup.Post("/compare/summary", bomHandler.Summary)
	bomGroup.Get("/template", templateHandler.Download)
}

// requestLogger registra método, ruta, estado y latencia de cada petición.
func requestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		log.Info().
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("latency", time.Since(start)).
			Msg("petición atendida")
		return err
	}
}
