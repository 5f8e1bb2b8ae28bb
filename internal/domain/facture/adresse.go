package facture

import (
	"strings"

	"github.com/facturio/facturio-api/internal/domain/entity"
)

// DeliveryType identifie la branche de résolution qui a produit l'adresse.
type DeliveryType string

const (
	DeliveryCustom         DeliveryType = "custom"          // texte libre saisi sur la facture
	DeliveryBilling        DeliveryType = "billing"         // facture cochée "identique à la facturation"
	DeliveryInvoice        DeliveryType = "invoice"         // champs livraison au niveau facture
	DeliveryClientBilling  DeliveryType = "client_billing"  // client : livraison = facturation
	DeliveryClientDelivery DeliveryType = "client_delivery" // client : adresse de livraison propre
	DeliveryNone           DeliveryType = "none"
	DeliveryError          DeliveryType = "error"
)

// DeliveryAddress est le résultat de la résolution, recalculé à chaque rendu
// et jamais persisté.
type DeliveryAddress struct {
	HasDeliveryAddress bool
	Type               DeliveryType
	Label              string
	Lines              []string
	Address            string // Lines jointes par des sauts de ligne
}

// ResolveDeliveryAddress choisit l'adresse de livraison parmi les sources
// possibles. Chaîne de priorité déterministe, la première branche qui
// correspond gagne :
//
//  1. adresse libre sur la facture (customDeliveryAddress)
//  2. facture : "identique à la facturation" + adresse de facturation client
//  3. champs livraison au niveau facture
//  4. client : sameAsAddress + adresse de facturation
//  5. client : adresse de livraison indépendante
//  6. aucune adresse
//
// Toute panique pendant la résolution est absorbée et convertie en
// type=error avec des lignes vides : le rendu ne doit jamais échouer à
// cause de données d'adresse absentes ou malformées.
func ResolveDeliveryAddress(inv entity.Invoice, client entity.Client) (res DeliveryAddress) {
	defer func() {
		if r := recover(); r != nil {
			res = DeliveryAddress{Type: DeliveryError}
		}
	}()

	if custom := strings.TrimSpace(inv.CustomDeliveryAddress); custom != "" {
		return finish(DeliveryCustom, "Adresse de livraison", []string{custom})
	}

	if inv.DeliveryAddressSameAsBilling && client.HasBillingAddress() {
		return finish(DeliveryBilling, "Livraison à l'adresse de facturation", billingLines(client))
	}

	if inv.DeliveryAddress != "" || inv.DeliveryCity != "" ||
		inv.DeliveryPostalCode != "" || inv.DeliveryCountry != "" {
		lines := buildLines(
			client.CompanyName,
			client.ContactName,
			inv.DeliveryAddress,
			cityLine(inv.DeliveryPostalCode, inv.DeliveryCity),
			inv.DeliveryCountry,
		)
		return finish(DeliveryInvoice, "Adresse de livraison", lines)
	}

	if client.SameAsAddress && client.HasBillingAddress() {
		return finish(DeliveryClientBilling, "Livraison à l'adresse de facturation", billingLines(client))
	}

	if client.HasDeliveryFields() {
		lines := buildLines(
			client.CompanyName,
			client.ContactName,
			client.DeliveryAddress,
			cityLine(client.DeliveryPostalCode, client.DeliveryCity),
			client.DeliveryCountry,
		)
		return finish(DeliveryClientDelivery, "Adresse de livraison", lines)
	}

	return DeliveryAddress{Type: DeliveryNone}
}

// billingLines construit les lignes d'adresse depuis la facturation client.
func billingLines(client entity.Client) []string {
	return buildLines(
		client.CompanyName,
		client.ContactName,
		client.Address,
		cityLine(client.PostalCode, client.City),
		client.Country,
	)
}

// buildLines ne retient que les lignes non vides, dans l'ordre donné.
func buildLines(candidates ...string) []string {
	lines := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if c = strings.TrimSpace(c); c != "" {
			lines = append(lines, c)
		}
	}
	return lines
}

// cityLine assemble "{codePostal} {ville}", vide si les deux sont absents.
func cityLine(postalCode, city string) string {
	return strings.TrimSpace(strings.TrimSpace(postalCode) + " " + strings.TrimSpace(city))
}

func finish(t DeliveryType, label string, lines []string) DeliveryAddress {
	return DeliveryAddress{
		HasDeliveryAddress: len(lines) > 0,
		Type:               t,
		Label:              label,
		Lines:              lines,
		Address:            strings.Join(lines, "\n"),
	}
}
