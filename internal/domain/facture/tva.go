package facture

import (
	"github.com/shopspring/decimal"

	"github.com/facturio/facturio-api/internal/domain/entity"
)

// TVAGroup agrège les lignes partageant un même taux de TVA.
type TVAGroup struct {
	Rate   decimal.Decimal // pourcentage (0–100)
	Base   decimal.Decimal // somme des totaux HT à ce taux
	Amount decimal.Decimal // somme de la TVA à ce taux
}

// Totals porte les totaux dérivés des lignes : total HT, TVA totale,
// total TTC et les groupes par taux.
type Totals struct {
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Grand    decimal.Decimal
	Groups   []TVAGroup
}

// ComputeTotals accumule en une seule passe le total HT et une map par taux
// de TVA. Les groupes sont restitués dans l'ordre de première apparition du
// taux parmi les lignes (stable, non trié).
func ComputeTotals(items []entity.LineItem) Totals {
	var t Totals
	index := make(map[string]int)

	for _, item := range items {
		lineTotal := item.LineTotal()
		lineTax := item.LineTax()
		t.Subtotal = t.Subtotal.Add(lineTotal)
		t.Tax = t.Tax.Add(lineTax)

		rate := item.Rate()
		key := rate.String()
		i, ok := index[key]
		if !ok {
			i = len(t.Groups)
			index[key] = i
			t.Groups = append(t.Groups, TVAGroup{Rate: rate})
		}
		t.Groups[i].Base = t.Groups[i].Base.Add(lineTotal)
		t.Groups[i].Amount = t.Groups[i].Amount.Add(lineTax)
	}

	t.Grand = t.Subtotal.Add(t.Tax)
	return t
}

// Mentions TVA obligatoires (reproduites à l'identique sur tous les rendus).
const (
	MentionExonerationCGI     = "TVA non applicable, art. 293 B du CGI"
	MentionAutoliquidationCGI = "Autoliquidation de la TVA par le preneur (article 283-1 du CGI)."
)

// TVANarrative retourne la mention TVA à reproduire sur la facture, ou une
// chaîne vide si la TVA s'applique normalement. La clause d'exonération
// personnalisée de la facture, si présente, remplace le texte par défaut.
func TVANarrative(inv entity.Invoice) string {
	switch {
	case inv.TVASelfBilling || inv.AutoLiquidation:
		return MentionAutoliquidationCGI
	case inv.TVAExempt:
		if c := inv.TVAExemptClause; c != "" {
			return c
		}
		return MentionExonerationCGI
	default:
		return ""
	}
}
