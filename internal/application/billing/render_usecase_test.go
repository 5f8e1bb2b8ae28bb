package billing_test

import (
	"context"
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/facturio/facturio-api/internal/application/billing"
	"github.com/facturio/facturio-api/internal/domain"
	"github.com/facturio/facturio-api/internal/domain/entity"
	"github.com/facturio/facturio-api/internal/domain/facture"
	"github.com/facturio/facturio-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// RenderInvoiceUseCase : toute la préparation (normalisation, numéro affiché,
// adresse de livraison, aplatissement des fiches) se fait avant l'appel au
// moteur de rendu, qui ne reçoit que la forme canonique.
// ──────────────────────────────────────────────────────────────────────────────

type fakeRenderer struct {
	lastReq billing.RenderRequest
	doc     *billing.RenderedDocument
	err     error
}

func (f *fakeRenderer) Render(_ context.Context, req billing.RenderRequest) (*billing.RenderedDocument, error) {
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.doc, nil
}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}

func commandeTest() billing.RenderCommand {
	date := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	return billing.RenderCommand{
		Invoice: entity.Invoice{
			InvoiceNumber: "INV-2024-042",
			InvoiceDate:   &date,
			TotalAmount:   entity.MontantFromFloat(240),
		},
		Seller: entity.User{CompanyName: "Facturio SAS"},
		Client: entity.Client{CompanyName: "Acme SARL", Address: "10 rue de la Paix", SameAsAddress: true},
		Mode:   facture.ModeFR,
	}
}

func TestRenderInvoicePDF_PreparationComplete(t *testing.T) {
	renderer := &fakeRenderer{doc: &billing.RenderedDocument{Buffer: []byte("%PDF"), PageCount: 2}}
	uc := billing.NewRenderInvoiceUseCase(renderer, testLogger())

	result, err := uc.RenderInvoicePDF(context.Background(), commandeTest())
	require.NoError(t, err)

	req := renderer.lastReq
	assert.Regexp(t, regexp.MustCompile(`^FR-\d{4}-000042$`), req.Number,
		"le numéro INV doit être réécrit au format français avant le rendu")
	assert.True(t, req.Invoice.Total.Valid() && req.Invoice.Total.Decimal().Equal(req.Invoice.TotalAmount.Decimal()),
		"la facture transmise au moteur doit être normalisée")
	assert.Equal(t, "Facturio SAS", req.Seller.CompanyName, "la fiche émetteur est aplatie")
	assert.Equal(t, facture.DeliveryClientBilling, req.Delivery.Type,
		"l'adresse de livraison est résolue avant le rendu")
	assert.Equal(t, facture.ModeFR, req.Profile.Mode())

	assert.Equal(t, req.Number, result.Number)
	assert.Equal(t, 2, result.PageCount)
	assert.Equal(t, []byte("%PDF"), result.Buffer)
}

func TestRenderInvoicePDF_NomDeFichier(t *testing.T) {
	renderer := &fakeRenderer{doc: &billing.RenderedDocument{Buffer: []byte("%PDF"), PageCount: 2}}
	uc := billing.NewRenderInvoiceUseCase(renderer, testLogger())

	result, err := uc.RenderInvoicePDF(context.Background(), commandeTest())
	require.NoError(t, err)

	assert.Equal(t, fmt.Sprintf("facture_%s_2026-03-09.pdf", result.Number), result.Filename,
		"le nom de fichier porte le numéro affiché et la date de la facture en ISO")
}

func TestRenderInvoicePDF_ErreurMoteur(t *testing.T) {
	renderer := &fakeRenderer{err: assert.AnError}
	uc := billing.NewRenderInvoiceUseCase(renderer, testLogger())

	result, err := uc.RenderInvoicePDF(context.Background(), commandeTest())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRenderFailed)
	assert.ErrorIs(t, err, assert.AnError, "l'erreur du moteur doit rester identifiable")
	assert.Nil(t, result)
}
