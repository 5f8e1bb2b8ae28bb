package pdf

import (
	"github.com/shopspring/decimal"

	"github.com/facturio/facturio-api/internal/application/billing"
	"github.com/facturio/facturio-api/internal/domain/facture"
)

const totalsBoxWidth = 250.0

// totalsBoxHeight retourne la hauteur du bloc de totaux : une ligne Total HT,
// une ligne par taux de TVA présent, une ligne Total TTC.
func totalsBoxHeight(totals facture.Totals) float64 {
	rows := 2 + len(totals.Groups)
	return float64(rows)*totalsRowH + 2*totalsPad
}

// drawTotalsBox trace le bloc de totaux, ancré en bas de la page 1 (le Y est
// calculé depuis le bas de page, pas depuis la fin de la table d'articles).
// Les taux sont affichés dans l'ordre de première apparition parmi les lignes.
func (e *Engine) drawTotalsBox(s Surface, req billing.RenderRequest, totals facture.Totals, y float64) {
	p := req.Profile
	currency := req.Invoice.CurrencyOrDefault()
	x := pageWidth - margin - totalsBoxWidth

	boxH := totalsBoxHeight(totals)
	s.Rect(x, y, totalsBoxWidth, boxH, 0.5)

	labelW := totalsBoxWidth * 0.55
	valueW := totalsBoxWidth - labelW - 2*totalsPad
	rowY := y + totalsPad
	row := func(label, value string, bold bool) {
		color := RGB{}
		if bold {
			color = colorPrimary
		}
		s.Text(label, x+totalsPad, rowY, TextStyle{Size: 9, Bold: bold, Color: color, Width: labelW})
		s.Text(value, x+totalsPad+labelW, rowY, TextStyle{Size: 9, Bold: bold, Color: color, Align: AlignRight, Width: valueW})
		rowY += totalsRowH
	}

	row("Total HT", p.Currency(totals.Subtotal, currency), false)
	for _, g := range totals.Groups {
		row("TVA ("+p.Percent(g.Rate)+")", p.Currency(g.Amount, currency), false)
	}
	row("Total TTC", p.Currency(grandTotal(req, totals), currency), true)
}

// grandTotal retourne le total TTC affiché : celui dérivé des lignes, ou le
// total canonique de la facture normalisée quand aucune ligne n'en fournit
// (facture à total explicite sans détail).
func grandTotal(req billing.RenderRequest, totals facture.Totals) decimal.Decimal {
	if totals.Grand.IsPositive() {
		return totals.Grand
	}
	return req.Invoice.Total.Decimal()
}
