// Package facture contient la logique métier pure de facturation française :
// normalisation des montants, formats locaux, numérotation, groupes de TVA,
// mentions légales et résolution de l'adresse de livraison.
//
// Toutes les fonctions sont pures et défensives : un champ absent ou
// malformé ne fait jamais échouer un rendu, il contribue pour zéro.
package facture

import (
	"github.com/shopspring/decimal"

	"github.com/facturio/facturio-api/internal/domain/entity"
)

// ExtractTotal calcule le total canonique d'une facture. Ordre de priorité,
// la première source renseignée et strictement positive gagne :
//
//  1. invoice.total
//  2. invoice.totalAmount
//  3. invoice.subtotal + invoice.taxAmount (les deux renseignés, somme > 0)
//  4. calcul depuis les lignes (qté × PU + TVA)
//  5. zéro
func ExtractTotal(inv entity.Invoice) decimal.Decimal {
	if inv.Total.Valid() && inv.Total.Decimal().IsPositive() {
		return inv.Total.Decimal()
	}
	if inv.TotalAmount.Valid() && inv.TotalAmount.Decimal().IsPositive() {
		return inv.TotalAmount.Decimal()
	}
	if inv.Subtotal.Valid() && inv.TaxAmount.Valid() {
		sum := inv.Subtotal.Decimal().Add(inv.TaxAmount.Decimal())
		if sum.IsPositive() {
			return sum
		}
	}

	var subtotal, tax decimal.Decimal
	for _, item := range inv.AllItems() {
		subtotal = subtotal.Add(item.LineTotal())
		tax = tax.Add(item.LineTax())
	}
	if total := subtotal.Add(tax); total.IsPositive() {
		return total
	}

	return decimal.Zero
}

// Normalize retourne une copie de la facture dont Total et TotalAmount
// portent tous deux le total canonique. C'est le point unique qui élimine
// l'ambiguïté total/totalAmount pour tous les consommateurs en aval.
// Idempotent : Normalize(Normalize(x)) == Normalize(x).
func Normalize(inv entity.Invoice) entity.Invoice {
	total := ExtractTotal(inv)
	inv.Total = entity.MontantFrom(total)
	inv.TotalAmount = entity.MontantFrom(total)
	return inv
}
