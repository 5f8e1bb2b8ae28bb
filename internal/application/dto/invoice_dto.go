package dto

import "github.com/facturio/facturio-api/internal/domain/entity"

// ErrorResponse réponse d'erreur uniforme de l'API.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// RenderInvoiceRequest corps d'une demande de rendu : la requête porte les
// enregistrements complets, aucune donnée n'est chargée côté serveur.
type RenderInvoiceRequest struct {
	Invoice entity.Invoice `json:"invoice"`
	Seller  entity.User    `json:"seller"`
	Client  entity.Client  `json:"client"`
	Mode    string         `json:"mode"` // "fr" ou "default" ; défaut selon la configuration
}

// EmailInvoiceRequest corps d'une demande d'envoi par email.
type EmailInvoiceRequest struct {
	RenderInvoiceRequest
	To      string `json:"to"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// EmailInvoiceResponse résultat d'un envoi réussi.
type EmailInvoiceResponse struct {
	MessageID  string `json:"messageId"`
	Filename   string `json:"filename"`
	PaymentURL string `json:"paymentUrl,omitempty"`
}
