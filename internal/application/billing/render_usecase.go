package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/facturio/facturio-api/internal/domain"
	"github.com/facturio/facturio-api/internal/domain/entity"
	"github.com/facturio/facturio-api/internal/domain/facture"
	"github.com/facturio/facturio-api/pkg/logger"
)

// RenderCommand regroupe les données brutes d'un rendu : la facture telle
// que reçue (alias compris), l'émetteur et le client non aplatis.
type RenderCommand struct {
	Invoice entity.Invoice
	Seller  entity.User
	Client  entity.Client
	Mode    facture.Mode

	// PaymentURL optionnelle : QR "payer en ligne" sur le PDF.
	PaymentURL string
}

// RenderResult est le résultat d'un rendu réussi.
type RenderResult struct {
	Buffer    []byte
	Filename  string // facture_{numéro}_{date ISO}.pdf
	Number    string
	PageCount int
}

// RenderInvoiceUseCase orchestre un rendu : normalisation, résolution de
// l'adresse de livraison, numérotation, puis appel du moteur de rendu.
type RenderInvoiceUseCase struct {
	renderer InvoicePDFRenderer
	log      *logger.Logger
}

// NewRenderInvoiceUseCase construit le cas d'usage.
func NewRenderInvoiceUseCase(renderer InvoicePDFRenderer, log *logger.Logger) *RenderInvoiceUseCase {
	return &RenderInvoiceUseCase{renderer: renderer, log: log}
}

// RenderInvoicePDF produit le PDF complet d'une facture.
//
// Toute la préparation (normalisation des totaux, aplatissement émetteur et
// client, adresse de livraison, numéro affiché) se fait ici, une seule fois :
// le moteur de rendu ne consomme que la forme canonique. Une erreur du
// moteur est fatale pour ce rendu, aucun buffer partiel n'est retourné.
func (uc *RenderInvoiceUseCase) RenderInvoicePDF(ctx context.Context, cmd RenderCommand) (*RenderResult, error) {
	now := time.Now()
	renderID := uuid.New().String()

	req := prepareRenderRequest(cmd, now)
	doc, err := uc.renderer.Render(ctx, req)
	if err != nil {
		uc.log.Error().Err(err).
			Str("render_id", renderID).
			Str("numero", req.Number).
			Msg("rendu PDF échoué")
		return nil, fmt.Errorf("%w: facture %s: %w", domain.ErrRenderFailed, req.Number, err)
	}
	number := req.Number

	if doc.TruncatedClauses > 0 {
		uc.log.Warn().
			Str("render_id", renderID).
			Str("numero", number).
			Int("clauses_tronquees", doc.TruncatedClauses).
			Msg("mentions légales tronquées faute de place")
	}

	uc.log.Info().
		Str("render_id", renderID).
		Str("numero", number).
		Int("pages", doc.PageCount).
		Int("octets", len(doc.Buffer)).
		Msg("facture rendue")

	return &RenderResult{
		Buffer:    doc.Buffer,
		Filename:  pdfFilename(number, req.Invoice, now),
		Number:    number,
		PageCount: doc.PageCount,
	}, nil
}

// prepareRenderRequest fait toute la préparation partagée par les rendus PDF
// et HTML : normalisation des totaux, numéro affiché, profil de locale,
// adresse de livraison et aplatissement émetteur/client.
func prepareRenderRequest(cmd RenderCommand, now time.Time) RenderRequest {
	norm := facture.Normalize(cmd.Invoice)
	return RenderRequest{
		Invoice:    norm,
		Seller:     facture.BuildSellerInfo(cmd.Seller),
		Client:     facture.BuildClientInfo(cmd.Client),
		Delivery:   facture.ResolveDeliveryAddress(norm, cmd.Client),
		Number:     facture.FormatInvoiceNumber(norm, cmd.Mode, now),
		Profile:    facture.NewProfile(cmd.Mode),
		PaymentURL: cmd.PaymentURL,
	}
}

// pdfFilename construit "facture_{numéro}_{date ISO}.pdf". La date de la
// facture est utilisée si renseignée, sinon la date du jour.
func pdfFilename(number string, inv entity.Invoice, now time.Time) string {
	date := now
	if inv.InvoiceDate != nil {
		date = *inv.InvoiceDate
	}
	return fmt.Sprintf("facture_%s_%s.pdf", number, date.Format("2006-01-02"))
}
