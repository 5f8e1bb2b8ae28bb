package payment_test

import (
	"context"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/facturio/facturio-api/internal/domain/entity"
	"github.com/facturio/facturio-api/internal/infrastructure/payment"
	"github.com/facturio/facturio-api/pkg/config"
)

func TestGenerateLink_URLComplete(t *testing.T) {
	p := payment.NewHostedLinkProvider(config.PaymentConfig{BaseURL: "https://pay.facturio.fr/"})

	link, err := p.GenerateLink(context.Background(), entity.Invoice{InvoiceNumber: "FR-2026-000042"}, 15)
	require.NoError(t, err)

	u, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "/pay", u.Path, "la barre oblique finale de l'URL de base est normalisée")
	assert.NotEmpty(t, u.Query().Get("token"))
	assert.NotEmpty(t, u.Query().Get("expires"))
	assert.Equal(t, "FR-2026-000042", u.Query().Get("ref"))
}

func TestGenerateLink_SansConfiguration(t *testing.T) {
	p := payment.NewHostedLinkProvider(config.PaymentConfig{})

	_, err := p.GenerateLink(context.Background(), entity.Invoice{}, 30)
	assert.Error(t, err, "sans URL de base, la génération échoue et l'appelant dégrade")
}
