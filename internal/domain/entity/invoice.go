package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice représente une facture telle que reçue du frontend ou du stockage,
// avant normalisation. Les champs Total/TotalAmount et Items/InvoiceItems
// sont des alias historiques : le normaliseur (facture.Normalize) produit la
// forme canonique consommée par les moteurs de rendu.
type Invoice struct {
	InvoiceNumber string `json:"invoiceNumber"`
	Currency      string `json:"currency"` // défaut "EUR"

	InvoiceDate *time.Time `json:"invoiceDate"`
	ServiceDate *time.Time `json:"serviceDate"`
	DueDate     *time.Time `json:"dueDate"`

	Items        []LineItem `json:"items"`
	InvoiceItems []LineItem `json:"InvoiceItems"` // alias legacy de Items

	Total       Montant `json:"total"`
	TotalAmount Montant `json:"totalAmount"` // alias legacy de Total
	Subtotal    Montant `json:"subtotal"`
	TaxAmount   Montant `json:"taxAmount"`

	TVAExempt       bool   `json:"tvaExempt"`
	TVASelfBilling  bool   `json:"tvaSelfBilling"`
	AutoLiquidation bool   `json:"autoLiquidation"`
	TVAExemptClause string `json:"tvaExemptClause"`

	PaymentTerms string `json:"paymentTerms"` // défaut "30 jours"

	// Adresse de livraison : surcharge libre ou champs niveau facture.
	CustomDeliveryAddress        string `json:"customDeliveryAddress"`
	DeliveryAddressSameAsBilling bool   `json:"deliveryAddressSameAsBilling"`
	DeliveryAddress              string `json:"deliveryAddress"`
	DeliveryCity                 string `json:"deliveryCity"`
	DeliveryPostalCode           string `json:"deliveryPostalCode"`
	DeliveryCountry              string `json:"deliveryCountry"`
}

// AllItems retourne les lignes de la facture : Items, sinon l'alias InvoiceItems.
func (i Invoice) AllItems() []LineItem {
	if len(i.Items) > 0 {
		return i.Items
	}
	return i.InvoiceItems
}

// CurrencyOrDefault retourne le code devise, "EUR" si absent.
func (i Invoice) CurrencyOrDefault() string {
	if i.Currency == "" {
		return "EUR"
	}
	return i.Currency
}

// PaymentTermsOrDefault retourne les conditions de paiement, "30 jours" si absentes.
func (i Invoice) PaymentTermsOrDefault() string {
	if i.PaymentTerms == "" {
		return "30 jours"
	}
	return i.PaymentTerms
}

// LineItem représente une ligne de facture. TVARate et TaxRate sont des
// alias du même concept (pourcentage 0–100) ; le premier renseigné gagne.
type LineItem struct {
	Description string  `json:"description"`
	Quantity    Montant `json:"quantity"`
	UnitPrice   Montant `json:"unitPrice"`
	TVARate     Montant `json:"tvaRate"`
	TaxRate     Montant `json:"taxRate"` // alias legacy de TVARate
}

// Rate retourne le taux de TVA applicable : tvaRate, sinon taxRate, sinon 0.
func (l LineItem) Rate() decimal.Decimal {
	if l.TVARate.Valid() {
		return l.TVARate.Decimal()
	}
	return l.TaxRate.Decimal()
}

// LineTotal retourne le total HT de la ligne (quantité × prix unitaire).
func (l LineItem) LineTotal() decimal.Decimal {
	return l.Quantity.Decimal().Mul(l.UnitPrice.Decimal())
}

// LineTax retourne la TVA de la ligne (total HT × taux / 100).
func (l LineItem) LineTax() decimal.Decimal {
	return l.LineTotal().Mul(l.Rate()).Div(decimal.NewFromInt(100))
}
