package billing_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/facturio/facturio-api/internal/application/billing"
)

type fakeHTMLRenderer struct {
	lastReq billing.RenderRequest
	err     error
}

func (f *fakeHTMLRenderer) Render(req billing.RenderRequest) ([]byte, error) {
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return []byte("<html>" + req.Number + "</html>"), nil
}

func TestPreviewInvoiceHTML_MemePreparationQueLePDF(t *testing.T) {
	renderer := &fakeHTMLRenderer{}
	uc := billing.NewPreviewInvoiceUseCase(renderer, testLogger())

	result, err := uc.PreviewInvoiceHTML(context.Background(), commandeTest())
	require.NoError(t, err)

	req := renderer.lastReq
	assert.True(t, req.Invoice.Total.Valid(), "l'aperçu reçoit la facture normalisée")
	assert.Regexp(t, `^FR-\d{4}-000042$`, req.Number,
		"l'aperçu affiche le même numéro réécrit que le PDF")
	assert.Equal(t, result.Number, req.Number)
	assert.Contains(t, string(result.HTML), req.Number)
}

func TestPreviewInvoiceHTML_ErreurPropagee(t *testing.T) {
	uc := billing.NewPreviewInvoiceUseCase(&fakeHTMLRenderer{err: assert.AnError}, testLogger())

	result, err := uc.PreviewInvoiceHTML(context.Background(), commandeTest())

	require.Error(t, err)
	assert.Nil(t, result)
}
