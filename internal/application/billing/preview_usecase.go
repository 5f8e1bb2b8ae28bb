package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/facturio/facturio-api/pkg/logger"
)

// PreviewResult est le résultat d'un aperçu HTML.
type PreviewResult struct {
	HTML   []byte
	Number string
}

// PreviewInvoiceUseCase produit l'aperçu HTML d'une facture. La préparation
// est strictement la même que pour le PDF, seul le moteur de sortie change.
type PreviewInvoiceUseCase struct {
	renderer InvoiceHTMLRenderer
	log      *logger.Logger
}

// NewPreviewInvoiceUseCase construit le cas d'usage.
func NewPreviewInvoiceUseCase(renderer InvoiceHTMLRenderer, log *logger.Logger) *PreviewInvoiceUseCase {
	return &PreviewInvoiceUseCase{renderer: renderer, log: log}
}

// PreviewInvoiceHTML rend l'aperçu HTML de la facture.
func (uc *PreviewInvoiceUseCase) PreviewInvoiceHTML(_ context.Context, cmd RenderCommand) (*PreviewResult, error) {
	req := prepareRenderRequest(cmd, time.Now())

	html, err := uc.renderer.Render(req)
	if err != nil {
		uc.log.Error().Err(err).Str("numero", req.Number).Msg("aperçu HTML échoué")
		return nil, fmt.Errorf("aperçu de la facture %s: %w", req.Number, err)
	}

	uc.log.Info().
		Str("numero", req.Number).
		Int("octets", len(html)).
		Msg("aperçu rendu")

	return &PreviewResult{HTML: html, Number: req.Number}, nil
}
