package pdf

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/facturio/facturio-api/internal/application/billing"
	"github.com/facturio/facturio-api/internal/domain/entity"
)

// Le repli bancaire réduit dépend de la hauteur du conteneur, bornée par
// l'espace restant et par 20 % de la page : le bloc est exercé directement
// avec des hauteurs contraintes, une surface enregistreuse suffit.

type recorderSurface struct {
	texts []string
}

func (r *recorderSurface) Begin(PageConfig) error { return nil }

func (r *recorderSurface) Text(s string, _, _ float64, _ TextStyle) {
	r.texts = append(r.texts, s)
}

func (r *recorderSurface) MeasureHeight(s string, width, size float64) float64 {
	lines := math.Ceil(float64(len([]rune(s))) * size * 0.5 / width)
	if lines < 1 {
		lines = 1
	}
	return lines * lineHeight(size)
}

func (r *recorderSurface) TextWidth(s string, size float64) float64 {
	return float64(len([]rune(s))) * size * 0.5
}

func (r *recorderSurface) Rect(x, y, w, h, lineWidth float64)     {}
func (r *recorderSurface) FillRect(x, y, w, h float64, color RGB) {}
func (r *recorderSurface) Line(x1, y1, x2, y2 float64)            {}
func (r *recorderSurface) ImagePNG(png []byte, x, y, w, h float64) {}
func (r *recorderSurface) NewPage()                               {}
func (r *recorderSurface) PageCount() int                         { return 1 }
func (r *recorderSurface) Output() ([]byte, error)                { return nil, nil }

func (r *recorderSurface) joined() string {
	return strings.Join(r.texts, "\n")
}

func requeteBancaireComplete() billing.RenderRequest {
	return billing.RenderRequest{
		Seller: entity.SellerInfo{
			TVANumber: "FR32123456789",
			SIREN:     "123 456 789",
			Bank: entity.BankInfo{
				IBAN:          "FR76 3000 6000 0112 3456 7890 189",
				BIC:           "AGRIFRPP",
				BankName:      "Crédit Agricole",
				AccountHolder: "Facturio SAS",
			},
		},
	}
}

func TestDrawCompactBlock_ColonneBancaireComplete(t *testing.T) {
	e := NewEngine(nil)
	s := &recorderSurface{}

	// capacité (79 − 2×6) / 11 = 6 lignes : les 5 lignes bancaires tiennent.
	e.drawCompactBlock(s, requeteBancaireComplete(), 700, 79)

	out := s.joined()
	assert.Contains(t, out, "Banque : Crédit Agricole")
	assert.Contains(t, out, "Titulaire : Facturio SAS")
	assert.Contains(t, out, "IBAN : FR76 3000 6000 0112 3456 7890 189")
}

func TestDrawCompactBlock_RepliBancaireReduit(t *testing.T) {
	e := NewEngine(nil)
	s := &recorderSurface{}

	// capacité (45 − 12) / 11 = 3 lignes : la colonne complète (5) ne tient
	// pas, le jeu réduit en-tête + IBAN + BIC la remplace.
	e.drawCompactBlock(s, requeteBancaireComplete(), 700, 45)

	out := s.joined()
	assert.Contains(t, out, "Coordonnées bancaires")
	assert.Contains(t, out, "IBAN : FR76 3000 6000 0112 3456 7890 189",
		"l'IBAN doit survivre au repli")
	assert.Contains(t, out, "BIC : AGRIFRPP", "le BIC doit survivre au repli")
	assert.NotContains(t, out, "Banque :", "le nom de banque est sacrifié en premier")
	assert.NotContains(t, out, "Titulaire :", "le titulaire est sacrifié avec le nom de banque")
}

func TestDrawCompactBlock_CapaciteInsuffisanteTronqueEncore(t *testing.T) {
	e := NewEngine(nil)
	s := &recorderSurface{}

	// capacité (34 − 12) / 11 = 2 lignes : même le jeu réduit est coupé.
	e.drawCompactBlock(s, requeteBancaireComplete(), 700, 34)

	out := s.joined()
	assert.Contains(t, out, "Coordonnées bancaires")
	assert.Contains(t, out, "IBAN :")
	assert.NotContains(t, out, "BIC :", "au-delà de la capacité, les lignes restantes sont coupées")
}

func TestCompactBlockHeight_Bornes(t *testing.T) {
	e := NewEngine(nil)
	req := requeteBancaireComplete()

	// Contenu : max(2, 5) × 11 + 12 = 67 pt, sous toutes les bornes.
	assert.InDelta(t, 67, e.compactBlockHeight(req, 400), 0.01)

	// L'espace restant borne la hauteur avant le contenu.
	assert.InDelta(t, 40, e.compactBlockHeight(req, 40), 0.01)

	// Jamais plus de 20 % de la page, même si l'espace restant est plus grand.
	assert.LessOrEqual(t, e.compactBlockHeight(req, 10_000), 0.2*841.89)
}