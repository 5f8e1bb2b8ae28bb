package billing

import (
	"context"

	"github.com/facturio/facturio-api/internal/domain/entity"
	"github.com/facturio/facturio-api/internal/domain/facture"
)

// RenderRequest est l'entrée du moteur de rendu PDF : données déjà
// normalisées et résolues, plus le profil de locale. Le moteur ne consulte
// jamais les champs alias bruts, uniquement la forme canonique.
type RenderRequest struct {
	Invoice  entity.Invoice // normalisée (facture.Normalize)
	Seller   entity.SellerInfo
	Client   entity.ClientInfo
	Delivery facture.DeliveryAddress
	Number   string // numéro affiché (facture.FormatInvoiceNumber)
	Profile  facture.Profile

	// PaymentURL, si renseignée, ajoute un QR "payer en ligne" au PDF.
	PaymentURL string
}

// RenderedDocument est la sortie du moteur de rendu.
type RenderedDocument struct {
	Buffer    []byte
	PageCount int

	// TruncatedClauses compte les mentions légales tronquées faute de place ;
	// l'appelant décide d'en journaliser l'occurrence.
	TruncatedClauses int
}

// InvoicePDFRenderer est le port du moteur de rendu. Chaque appel doit
// utiliser un état de rendu neuf : des rendus concurrents de factures
// différentes ne partagent jamais de curseur.
type InvoicePDFRenderer interface {
	Render(ctx context.Context, req RenderRequest) (*RenderedDocument, error)
}

// InvoiceHTMLRenderer est le port du rendu d'aperçu HTML. Il consomme la
// même RenderRequest que le moteur PDF afin que les deux sorties partagent
// exactement les mêmes chaînes formatées.
type InvoiceHTMLRenderer interface {
	Render(req RenderRequest) ([]byte, error)
}

// Attachment pièce jointe d'un email.
type Attachment struct {
	Filename    string
	Content     []byte
	ContentType string
}

// EmailMessage message sortant avec pièces jointes.
type EmailMessage struct {
	To          string
	Subject     string
	Text        string
	HTML        string
	Attachments []Attachment
}

// EmailSender est le port du transport email (SMTP, API…). Les sémantiques
// de retry et de vérification appartiennent à l'implémentation.
type EmailSender interface {
	Send(ctx context.Context, msg EmailMessage) (messageID string, err error)
}

// PaymentLinkProvider est le port du prestataire de paiement : génère une
// URL de paiement hébergée pour la facture donnée.
type PaymentLinkProvider interface {
	GenerateLink(ctx context.Context, inv entity.Invoice, expiryDays int) (string, error)
}
