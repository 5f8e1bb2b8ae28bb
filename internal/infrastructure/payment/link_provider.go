// Package payment implémente le port billing.PaymentLinkProvider en
// construisant des liens de paiement hébergés. Le prestataire de paiement
// lui-même reste externe : ce module ne fait que fabriquer l'URL publique.
package payment

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/facturio/facturio-api/internal/application/billing"
	"github.com/facturio/facturio-api/internal/domain/entity"
	"github.com/facturio/facturio-api/pkg/config"
)

// HostedLinkProvider fabrique des URLs de paiement sur la page hébergée
// configurée. Sans URL de base configurée, la génération échoue : l'envoi
// d'email dégrade alors en facture sans lien.
type HostedLinkProvider struct {
	baseURL string
}

// NewHostedLinkProvider construit le fournisseur depuis la configuration.
func NewHostedLinkProvider(cfg config.PaymentConfig) *HostedLinkProvider {
	return &HostedLinkProvider{baseURL: strings.TrimRight(cfg.BaseURL, "/")}
}

var _ billing.PaymentLinkProvider = (*HostedLinkProvider)(nil)

// GenerateLink retourne l'URL de paiement de la facture.
func (h *HostedLinkProvider) GenerateLink(_ context.Context, inv entity.Invoice, expiryDays int) (string, error) {
	if h.baseURL == "" {
		return "", fmt.Errorf("payment: URL de base non configurée")
	}
	if expiryDays <= 0 {
		expiryDays = 30
	}

	q := url.Values{}
	q.Set("token", uuid.New().String())
	q.Set("expires", time.Now().AddDate(0, 0, expiryDays).Format("2006-01-02"))
	if inv.InvoiceNumber != "" {
		q.Set("ref", inv.InvoiceNumber)
	}
	return h.baseURL + "/pay?" + q.Encode(), nil
}
