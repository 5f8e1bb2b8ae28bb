package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/facturio/facturio-api/internal/application/billing"
	"github.com/facturio/facturio-api/internal/domain/facture"
)

// RouterDeps dépendances pour le routeur.
type RouterDeps struct {
	RenderInvoice  *billing.RenderInvoiceUseCase
	PreviewInvoice *billing.PreviewInvoiceUseCase
	EmailInvoice   *billing.EmailInvoiceUseCase
	DefaultMode    facture.Mode
}

// Router enregistre les routes de l'API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api/v1")

	invoices := api.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.RenderInvoice, deps.PreviewInvoice, deps.EmailInvoice, deps.DefaultMode)
	invoices.Post("/pdf", invoiceHandler.RenderPDF)
	invoices.Post("/preview", invoiceHandler.Preview)
	invoices.Post("/email", invoiceHandler.SendEmail)
}
