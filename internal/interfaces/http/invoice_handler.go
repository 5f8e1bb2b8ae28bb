package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/facturio/facturio-api/internal/application/billing"
	"github.com/facturio/facturio-api/internal/application/dto"
	"github.com/facturio/facturio-api/internal/domain"
	"github.com/facturio/facturio-api/internal/domain/facture"
)

// InvoiceHandler gère les requêtes HTTP de rendu et d'envoi de factures.
// L'API est sans état : chaque requête porte la facture complète.
type InvoiceHandler struct {
	render      *billing.RenderInvoiceUseCase
	preview     *billing.PreviewInvoiceUseCase
	email       *billing.EmailInvoiceUseCase
	defaultMode facture.Mode
}

// NewInvoiceHandler construit le handler.
func NewInvoiceHandler(
	render *billing.RenderInvoiceUseCase,
	preview *billing.PreviewInvoiceUseCase,
	email *billing.EmailInvoiceUseCase,
	defaultMode facture.Mode,
) *InvoiceHandler {
	return &InvoiceHandler{render: render, preview: preview, email: email, defaultMode: defaultMode}
}

// mode résout le mode de locale de la requête, avec repli sur la
// configuration de l'application.
func (h *InvoiceHandler) mode(raw string) facture.Mode {
	if raw == "" {
		return h.defaultMode
	}
	return facture.ParseMode(raw)
}

func renderCommand(in dto.RenderInvoiceRequest, mode facture.Mode) billing.RenderCommand {
	return billing.RenderCommand{
		Invoice: in.Invoice,
		Seller:  in.Seller,
		Client:  in.Client,
		Mode:    mode,
	}
}

// RenderPDF rend la facture en PDF et la retourne en téléchargement.
// POST /api/v1/invoices/pdf
func (h *InvoiceHandler) RenderPDF(c *fiber.Ctx) error {
	var in dto.RenderInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps de requête invalide"})
	}
	result, err := h.render.RenderInvoicePDF(c.Context(), renderCommand(in, h.mode(in.Mode)))
	if err != nil {
		return mapError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+result.Filename+`"`)
	return c.Send(result.Buffer)
}

// Preview rend l'aperçu HTML de la facture.
// POST /api/v1/invoices/preview
func (h *InvoiceHandler) Preview(c *fiber.Ctx) error {
	var in dto.RenderInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps de requête invalide"})
	}
	result, err := h.preview.PreviewInvoiceHTML(c.Context(), renderCommand(in, h.mode(in.Mode)))
	if err != nil {
		return mapError(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Send(result.HTML)
}

// SendEmail rend la facture et l'envoie par email en pièce jointe.
// POST /api/v1/invoices/email
func (h *InvoiceHandler) SendEmail(c *fiber.Ctx) error {
	var in dto.EmailInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps de requête invalide"})
	}
	result, err := h.email.EmailInvoice(c.Context(), billing.EmailCommand{
		RenderCommand: renderCommand(in.RenderInvoiceRequest, h.mode(in.Mode)),
		To:            in.To,
		Subject:       in.Subject,
		Message:       in.Message,
	})
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(dto.EmailInvoiceResponse{
		MessageID:  result.MessageID,
		Filename:   result.Filename,
		PaymentURL: result.PaymentURL,
	})
}

// mapError traduit les erreurs métier en réponses HTTP.
func mapError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrEmailFailed):
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "EMAIL_FAILED", Message: err.Error()})
	case errors.Is(err, domain.ErrRenderFailed):
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "RENDER_FAILED", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
