package pdf

import (
	"math"

	"github.com/facturio/facturio-api/internal/application/billing"
)

// compactIdentityLines construit la colonne identité fiscale de l'émetteur.
// Seuls les champs renseignés produisent une ligne.
func compactIdentityLines(req billing.RenderRequest) []string {
	seller := req.Seller
	lines := make([]string, 0, 6)
	add := func(label, value string) {
		if value != "" {
			lines = append(lines, label+" : "+value)
		}
	}
	add("TVA intracommunautaire", seller.TVANumber)
	add("SIREN", seller.SIREN)
	add("SIRET", seller.SIRET)
	add("RCS", seller.RCSNumber)
	add("Code NAF", seller.NAFCode)
	if seller.LegalForm != "" && seller.RegisteredCapital != "" {
		lines = append(lines, seller.LegalForm+" au capital de "+seller.RegisteredCapital)
	} else if seller.LegalForm != "" {
		lines = append(lines, seller.LegalForm)
	}
	return lines
}

// compactBankLines construit la colonne bancaire complète.
func compactBankLines(req billing.RenderRequest) []string {
	bank := req.Seller.Bank
	lines := []string{"Coordonnées bancaires"}
	add := func(label, value string) {
		if value != "" {
			lines = append(lines, label+" : "+value)
		}
	}
	add("Banque", bank.BankName)
	add("IBAN", bank.IBAN)
	add("BIC", bank.BIC)
	add("Titulaire", bank.AccountHolder)
	return lines
}

// compactBankLinesReduced est le jeu réduit utilisé quand la colonne
// complète ne tient pas dans le conteneur : en-tête + IBAN + BIC.
func compactBankLinesReduced(req billing.RenderRequest) []string {
	bank := req.Seller.Bank
	lines := []string{"Coordonnées bancaires"}
	if bank.IBAN != "" {
		lines = append(lines, "IBAN : "+bank.IBAN)
	}
	if bank.BIC != "" {
		lines = append(lines, "BIC : "+bank.BIC)
	}
	return lines
}

// compactBlockHeight retourne la hauteur du bloc compact identité/banque :
// le contenu le plus haut des deux colonnes plus les marges internes, borné
// par l'espace disponible et par 20 % de la page.
func (e *Engine) compactBlockHeight(req billing.RenderRequest, available float64) float64 {
	left := float64(len(compactIdentityLines(req)))
	right := float64(len(compactBankLines(req)))
	content := math.Max(left, right)*compactLineH + 2*compactPad

	bound := math.Min(available, 0.2*pageHeight)
	return math.Min(content, bound)
}

// drawCompactBlock trace le bloc compact en bas de la page 2 : identité
// fiscale à gauche, coordonnées bancaires à droite, séparées par un filet.
// Si la colonne bancaire complète dépasse la hauteur du conteneur, le jeu
// réduit (en-tête + IBAN + BIC) est utilisé plutôt que de déborder.
func (e *Engine) drawCompactBlock(s Surface, req billing.RenderRequest, y, h float64) {
	usable := pageWidth - 2*margin
	colW := usable/2 - compactPad*2

	s.Rect(margin, y, usable, h, 0.5)
	s.Line(margin+usable/2, y, margin+usable/2, y+h)

	capacity := int((h - 2*compactPad) / compactLineH)

	identity := compactIdentityLines(req)
	if len(identity) > capacity {
		identity = identity[:capacity]
	}
	e.drawCompactColumn(s, identity, margin+compactPad, y+compactPad, colW)

	bank := compactBankLines(req)
	if len(bank) > capacity {
		bank = compactBankLinesReduced(req)
		if len(bank) > capacity {
			bank = bank[:capacity]
		}
	}
	e.drawCompactColumn(s, bank, margin+usable/2+compactPad, y+compactPad, colW)
}

// drawCompactColumn empile les lignes d'une colonne du bloc compact, la
// première en gras.
func (e *Engine) drawCompactColumn(s Surface, lines []string, x, y, w float64) {
	for i, line := range lines {
		s.Text(line, x, y+float64(i)*compactLineH, TextStyle{
			Size:  7.5,
			Bold:  i == 0,
			Color: colorGray,
			Width: w,
		})
	}
}
