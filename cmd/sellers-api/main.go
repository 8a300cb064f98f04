package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/MartinGalvanCastro/Software-Modernization/internal/application/usecase"
	"github.com/MartinGalvanCastro/Software-Modernization/internal/infrastructure/awsconfig"
	"github.com/MartinGalvanCastro/Software-Modernization/internal/infrastructure/dynamo"
	apphttp "github.com/MartinGalvanCastro/Software-Modernization/internal/interfaces/http"
	"github.com/MartinGalvanCastro/Software-Modernization/pkg/config"
	"github.com/MartinGalvanCastro/Software-Modernization/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("service", "sellers-api").
		Msg("iniciando servicio")

	ctx := context.Background()
	awsCfg, err := awsconfig.Load(ctx, cfg.AWS)
	if err != nil {
		log.Fatal().Err(err).Msg("configuración AWS")
	}

	client := dynamo.NewClient(awsCfg, cfg.Dynamo.Endpoint)
	sellerRepo := dynamo.NewSellerRepository(client, cfg.Dynamo.SellersTable)
	sellerUC := usecase.NewSellerUseCase(sellerRepo)

	app := fiber.New(fiber.Config{
		AppName:      "sellers-api",
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	handler := apphttp.NewSellerHandler(sellerUC)
	health := apphttp.NewHealthHandler(sellerRepo, log)
	apphttp.RegisterSellerRoutes(app, handler, health, cfg.JWT.Secret)

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

	log.Info().Msg("servicio detenido")
}
