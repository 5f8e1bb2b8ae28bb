package pdf

import (
	"strings"

	"github.com/facturio/facturio-api/internal/application/billing"
	"github.com/facturio/facturio-api/internal/domain/facture"
)

// pendingClause est une clause à placer : soit une mention légale d'origine,
// soit le reliquat d'une clause coupée en fin de colonne (titre vide).
type pendingClause struct {
	title string
	body  string
}

// drawLegalClauses coule la liste ordonnée des mentions légales sur deux
// colonnes entre top et bottom. Pour chaque clause : titre puis corps dans
// la colonne courante si la place suffit ; sinon autant de mots entiers que
// possible, le reliquat repartant en tête de la colonne suivante. Au-delà de
// la colonne droite le texte est tronqué et compté, jamais une erreur : une
// troisième page n'est jamais ouverte pour les mentions.
//
// Retourne la hauteur consommée et le nombre de clauses tronquées.
func (e *Engine) drawLegalClauses(s Surface, req billing.RenderRequest, top, bottom float64) (float64, int) {
	colW := (pageWidth - 2*margin - columnGap) / 2
	colX := [2]float64{margin, margin + colW + columnGap}
	colY := [2]float64{top, top}
	col := 0
	truncated := 0

	clauses := facture.LegalClauses(req.Invoice)
	queue := make([]pendingClause, 0, len(clauses)+2)
	for _, c := range clauses {
		queue = append(queue, pendingClause{title: c.Title, body: c.Body})
	}

	for i := 0; i < len(queue); i++ {
		c := queue[i]

		if c.title != "" {
			titleH := s.MeasureHeight(c.title, colW, clauseTitleSize)
			if colY[col]+titleH > bottom && col == 0 {
				col = 1
			}
			if colY[col]+titleH > bottom {
				truncated++
				continue
			}
			s.Text(c.title, colX[col], colY[col], TextStyle{
				Size: clauseTitleSize, Bold: true, Color: colorPrimary, Width: colW,
			})
			colY[col] += titleH + 2
		}

		body := strings.TrimSpace(c.body)
		if body == "" {
			colY[col] += clauseGap
			continue
		}

		bodyH := s.MeasureHeight(body, colW, clauseBodySize)
		remaining := bottom - colY[col]
		if bodyH <= remaining {
			s.Text(body, colX[col], colY[col], TextStyle{Size: clauseBodySize, Color: colorGray, Width: colW})
			colY[col] += bodyH + clauseGap
			continue
		}

		fit, rest := fitWords(s, body, colW, clauseBodySize, remaining)
		if fit != "" {
			s.Text(fit, colX[col], colY[col], TextStyle{Size: clauseBodySize, Color: colorGray, Width: colW})
			colY[col] = bottom
		}
		if rest == "" {
			continue
		}
		if col == 0 {
			// Le reliquat repart en tête de la colonne droite, avant les
			// clauses restantes.
			col = 1
			queue = append(queue, pendingClause{})
			copy(queue[i+2:], queue[i+1:])
			queue[i+1] = pendingClause{body: rest}
		} else {
			truncated++
		}
	}

	h := colY[0]
	if colY[1] > h {
		h = colY[1]
	}
	return h - top, truncated
}

// fitWords retourne le plus long préfixe de mots entiers dont la hauteur
// coulée tient dans maxH, et le reliquat.
func fitWords(s Surface, text string, width, size, maxH float64) (fit, rest string) {
	words := strings.Fields(text)
	count := 0
	for i := range words {
		candidate := strings.Join(words[:i+1], " ")
		if s.MeasureHeight(candidate, width, size) > maxH {
			break
		}
		count = i + 1
	}
	return strings.Join(words[:count], " "), strings.Join(words[count:], " ")
}
