package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/facturio/facturio-api/internal/application/billing"
	"github.com/facturio/facturio-api/internal/domain/facture"
	infraemail "github.com/facturio/facturio-api/internal/infrastructure/email"
	"github.com/facturio/facturio-api/internal/infrastructure/payment"
	infrapdf "github.com/facturio/facturio-api/internal/infrastructure/pdf"
	"github.com/facturio/facturio-api/internal/infrastructure/preview"
	httpRouter "github.com/facturio/facturio-api/internal/interfaces/http"
	"github.com/facturio/facturio-api/pkg/config"
	"github.com/facturio/facturio-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("chargement de la configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("démarrage de l'application")

	// Moteurs de rendu : PDF (moteur de mise en page) et aperçu HTML.
	pdfEngine := infrapdf.NewFPDFEngine()
	htmlRenderer := preview.NewRenderer()

	emailSender := infraemail.NewGomailSender(cfg.SMTP)
	linkProvider := payment.NewHostedLinkProvider(cfg.Payment)

	renderUC := billing.NewRenderInvoiceUseCase(pdfEngine, log)
	previewUC := billing.NewPreviewInvoiceUseCase(htmlRenderer, log)
	emailUC := billing.NewEmailInvoiceUseCase(renderUC, emailSender, linkProvider, cfg.Payment.ExpiryDays, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    4 * 1024 * 1024,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		RenderInvoice:  renderUC,
		PreviewInvoice: previewUC,
		EmailInvoice:   emailUC,
		DefaultMode:    facture.ParseMode(cfg.PDF.Locale),
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("serveur HTTP arrêté")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("signal d'arrêt reçu, fermeture du serveur...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("arrêt du serveur")
	}

	log.Info().Msg("application arrêtée")
}
