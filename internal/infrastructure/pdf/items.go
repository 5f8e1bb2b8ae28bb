package pdf

import (
	"fmt"
	"math"
	"strings"

	"github.com/facturio/facturio-api/internal/application/billing"
	"github.com/facturio/facturio-api/internal/domain/entity"
)

// Largeurs des colonnes de la table d'articles (somme = largeur utile).
var itemCols = struct {
	desc, qty, unit, tva, total float64
}{245, 50, 90, 50, 80.28}

const itemFontSize = 8.5

// drawTableHeader trace la ligne d'en-tête de la table et retourne sa hauteur.
func (e *Engine) drawTableHeader(s Surface, y float64) float64 {
	usable := pageWidth - 2*margin
	s.FillRect(margin, y, usable, tableHeaderH, colorHeader)

	textY := y + (tableHeaderH-lineHeight(8))/2
	x := margin
	head := func(label string, w float64, align string) {
		s.Text(label, x+2, textY, TextStyle{Size: 8, Bold: true, Color: colorPrimary, Align: align, Width: w - 4})
		x += w
	}
	head("Description", itemCols.desc, AlignLeft)
	head("Qté", itemCols.qty, AlignRight)
	head("PU HT", itemCols.unit, AlignRight)
	head("TVA", itemCols.tva, AlignRight)
	head("Total HT", itemCols.total, AlignRight)

	return tableHeaderH
}

// drawItemRow trace une ligne d'article à hauteur fixe. La description est
// tronquée à la largeur de sa colonne (jamais de retour à la ligne, jamais
// de coupure entre deux pages).
func (e *Engine) drawItemRow(s Surface, req billing.RenderRequest, item entity.LineItem, y float64) {
	p := req.Profile
	currency := req.Invoice.CurrencyOrDefault()
	textY := y + (rowHeight-lineHeight(itemFontSize))/2

	x := margin
	cell := func(text string, w float64, align string) {
		s.Text(text, x+2, textY, TextStyle{Size: itemFontSize, Align: align, Width: w - 4})
		x += w
	}
	cell(fitToWidth(s, item.Description, itemCols.desc-4, itemFontSize), itemCols.desc, AlignLeft)
	cell(item.Quantity.Decimal().String(), itemCols.qty, AlignRight)
	cell(p.Currency(item.UnitPrice.Decimal(), currency), itemCols.unit, AlignRight)
	cell(p.Percent(item.Rate()), itemCols.tva, AlignRight)
	cell(p.Currency(item.LineTotal(), currency), itemCols.total, AlignRight)

	s.Line(margin, y+rowHeight, pageWidth-margin, y+rowHeight)
}

// drawItemsFirstPage coule les articles sur la page 1 dans l'espace restant
// après réservation du bloc de totaux, et retourne le nombre de lignes
// rendues. Une ligne entre en entier ou pas du tout ; si même une seule
// ligne ne tient pas, l'en-tête de table n'est pas tracé non plus (la table
// entière part en page 2).
func (e *Engine) drawItemsFirstPage(s Surface, req billing.RenderRequest, items []entity.LineItem, y, reserved float64) int {
	if len(items) == 0 {
		return 0
	}

	bottom := pageHeight - margin - reserved
	available := bottom - (y + tableHeaderH)
	capacity := int(math.Floor(available / rowHeight))
	if capacity < 1 {
		return 0
	}
	headerH := e.drawTableHeader(s, y)

	n := len(items)
	if n > capacity {
		n = capacity
	}
	for i := 0; i < n; i++ {
		e.drawItemRow(s, req, items[i], y+headerH+float64(i)*rowHeight)
	}
	return n
}

// drawItemsContinuation coule le reliquat d'articles en haut de la page 2
// avec un budget plus large (la moitié haute de la page). Si même ce budget
// déborde, c'est qu'une troisième page serait nécessaire : les dernières
// lignes sont résumées par "+N lignes supplémentaires" plutôt que d'ouvrir
// cette page. Retourne la hauteur consommée.
func (e *Engine) drawItemsContinuation(s Surface, req billing.RenderRequest, rest []entity.LineItem, y float64) float64 {
	headerH := e.drawTableHeader(s, y)
	capacity := int(math.Floor((pageHeight/2 - y - headerH) / rowHeight))
	if capacity < 1 {
		capacity = 1
	}

	if len(rest) <= capacity {
		for i, item := range rest {
			e.drawItemRow(s, req, item, y+headerH+float64(i)*rowHeight)
		}
		return headerH + float64(len(rest))*rowHeight
	}

	shown := capacity - 1
	for i := 0; i < shown; i++ {
		e.drawItemRow(s, req, rest[i], y+headerH+float64(i)*rowHeight)
	}
	summaryY := y + headerH + float64(shown)*rowHeight
	s.Text(
		fmt.Sprintf("+%d lignes supplémentaires", len(rest)-shown),
		margin+2, summaryY+(rowHeight-lineHeight(itemFontSize))/2,
		TextStyle{Size: itemFontSize, Color: colorGray},
	)
	return headerH + float64(capacity)*rowHeight
}

// fitToWidth tronque un texte pour qu'il tienne sur une seule ligne de la
// largeur donnée, avec une ellipse si besoin.
func fitToWidth(s Surface, text string, width, size float64) string {
	if s.TextWidth(text, size) <= width {
		return text
	}
	runes := []rune(strings.TrimSpace(text))
	for len(runes) > 0 {
		candidate := string(runes) + "…"
		if s.TextWidth(candidate, size) <= width {
			return candidate
		}
		runes = runes[:len(runes)-1]
	}
	return ""
}
