package billing

import (
	"context"
	"fmt"

	"github.com/facturio/facturio-api/internal/domain"
	"github.com/facturio/facturio-api/internal/domain/facture"
	"github.com/facturio/facturio-api/pkg/logger"
)

// EmailCommand décrit l'envoi d'une facture par email.
type EmailCommand struct {
	RenderCommand
	To      string
	Subject string // optionnel : "Facture {numéro}" par défaut
	Message string // optionnel : texte d'accompagnement personnalisé
}

// EmailResult est le résultat d'un envoi réussi.
type EmailResult struct {
	MessageID  string
	Filename   string
	PaymentURL string // vide si le lien de paiement n'a pas pu être généré
}

// EmailInvoiceUseCase rend la facture puis l'envoie en pièce jointe avec un
// lien de paiement. Un échec de rendu est bloquant ; un échec de génération
// du lien de paiement dégrade l'envoi (email sans lien) sans le bloquer.
type EmailInvoiceUseCase struct {
	render     *RenderInvoiceUseCase
	sender     EmailSender
	links      PaymentLinkProvider
	expiryDays int
	log        *logger.Logger
}

// NewEmailInvoiceUseCase construit le cas d'usage.
func NewEmailInvoiceUseCase(
	render *RenderInvoiceUseCase,
	sender EmailSender,
	links PaymentLinkProvider,
	expiryDays int,
	log *logger.Logger,
) *EmailInvoiceUseCase {
	return &EmailInvoiceUseCase{
		render:     render,
		sender:     sender,
		links:      links,
		expiryDays: expiryDays,
		log:        log,
	}
}

// EmailInvoice génère le lien de paiement, rend le PDF puis envoie l'email.
func (uc *EmailInvoiceUseCase) EmailInvoice(ctx context.Context, cmd EmailCommand) (*EmailResult, error) {
	if cmd.To == "" {
		return nil, fmt.Errorf("%w: destinataire manquant", domain.ErrInvalidInput)
	}

	paymentURL := ""
	if uc.links != nil {
		url, err := uc.links.GenerateLink(ctx, cmd.Invoice, uc.expiryDays)
		if err != nil {
			// Dégradation : la facture part sans lien de paiement.
			uc.log.Warn().Err(err).Msg("lien de paiement indisponible, envoi sans lien")
		} else {
			paymentURL = url
		}
	}

	cmd.PaymentURL = paymentURL
	rendered, err := uc.render.RenderInvoicePDF(ctx, cmd.RenderCommand)
	if err != nil {
		return nil, err // échec de rendu = arrêt net, pas d'email
	}

	subject := cmd.Subject
	if subject == "" {
		subject = "Facture " + rendered.Number
	}

	text, html := uc.buildBody(cmd, rendered.Number, paymentURL)
	messageID, err := uc.sender.Send(ctx, EmailMessage{
		To:      cmd.To,
		Subject: subject,
		Text:    text,
		HTML:    html,
		Attachments: []Attachment{{
			Filename:    rendered.Filename,
			Content:     rendered.Buffer,
			ContentType: "application/pdf",
		}},
	})
	if err != nil {
		uc.log.Error().Err(err).Str("numero", rendered.Number).Msg("envoi email échoué")
		return nil, fmt.Errorf("%w: %v", domain.ErrEmailFailed, err)
	}

	uc.log.Info().
		Str("numero", rendered.Number).
		Str("message_id", messageID).
		Bool("lien_paiement", paymentURL != "").
		Msg("facture envoyée par email")

	return &EmailResult{
		MessageID:  messageID,
		Filename:   rendered.Filename,
		PaymentURL: paymentURL,
	}, nil
}

// buildBody construit les corps texte et HTML de l'email. Le montant affiché
// passe par le même Profile que les moteurs de rendu.
func (uc *EmailInvoiceUseCase) buildBody(cmd EmailCommand, number, paymentURL string) (text, html string) {
	profile := facture.NewProfile(cmd.Mode)
	norm := facture.Normalize(cmd.Invoice)
	total := profile.Currency(norm.Total.Decimal(), norm.CurrencyOrDefault())

	intro := cmd.Message
	if intro == "" {
		intro = fmt.Sprintf("Veuillez trouver ci-joint votre facture %s d'un montant de %s.", number, total)
	}

	text = "Bonjour,\n\n" + intro + "\n"
	html = "<p>Bonjour,</p><p>" + intro + "</p>"
	if paymentURL != "" {
		text += "\nPayer en ligne : " + paymentURL + "\n"
		html += fmt.Sprintf(`<p><a href="%s">Payer en ligne</a></p>`, paymentURL)
	}
	text += "\nCordialement"
	html += "<p>Cordialement</p>"
	return text, html
}
