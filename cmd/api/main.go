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

	"github.com/jhoicas/bomgen/internal/application/usecase"
	infraexcel "github.com/jhoicas/bomgen/internal/infrastructure/excel"
	infrapdf "github.com/jhoicas/bomgen/internal/infrastructure/pdf"
	httpRouter "github.com/jhoicas/bomgen/internal/interfaces/http"
	"github.com/jhoicas/bomgen/pkg/config"
	"github.com/jhoicas/bomgen/pkg/logger"
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

	// Adaptadores sin estado: cada petición trabaja sobre documentos
	// frescos, no hay nada que compartir entre invocaciones.
	adapter := infraexcel.NewAdapter()
	reports := infraexcel.NewReportWriter()
	pdfGenerator := infrapdf.NewMarotoSummaryGenerator()

	generateUC := usecase.NewGenerateUseCase(adapter)
	compareUC := usecase.NewCompareUseCase(reports, pdfGenerator)
	templateUC := usecase.NewTemplateUseCase(adapter)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 30,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    16 * 1024 * 1024, // archivos xlsx subidos
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "bomgen API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		GenerateUC: generateUC,
		CompareUC:  compareUC,
		TemplateUC: templateUC,
		Log:        log,
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
