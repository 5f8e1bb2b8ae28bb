package facture_test

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/facturio/facturio-api/internal/domain/facture"
)

// ──────────────────────────────────────────────────────────────────────────────
// Profile : formats monétaires, pourcentages et dates. Les sorties fr sont
// vérifiées à l'octet près, espaces insécables comprises : le même Profile
// alimente le PDF, l'aperçu HTML et l'email, toute dérive ici se voit partout.
// ──────────────────────────────────────────────────────────────────────────────

func TestCurrency_FrancaisGroupementEtVirgule(t *testing.T) {
	p := facture.NewProfile(facture.ModeFR)

	got := p.Currency(decimal.NewFromFloat(1234.5), "EUR")
	assert.Equal(t, "1 234,50 €", got,
		"le format fr doit grouper les milliers et utiliser la virgule décimale")
}

func TestCurrency_FrancaisSansEspaceInsecable(t *testing.T) {
	p := facture.NewProfile(facture.ModeFR)

	got := p.Currency(decimal.NewFromFloat(1234567.89), "EUR")
	assert.NotContains(t, got, "\u00a0", "aucune espace insécable dans la sortie")
	assert.NotContains(t, got, "\u202f", "aucune fine insécable dans la sortie")
	assert.True(t, strings.HasSuffix(got, " €"), "le symbole doit être en suffixe, obtenu %q", got)
}

func TestCurrency_FrancaisDeuxDecimales(t *testing.T) {
	p := facture.NewProfile(facture.ModeFR)

	assert.Equal(t, "500,00 €", p.Currency(decimal.NewFromInt(500), "EUR"),
		"toujours exactement deux décimales en mode fr")
}

func TestCurrency_FrancaisDeviseHorsTable(t *testing.T) {
	p := facture.NewProfile(facture.ModeFR)

	got := p.Currency(decimal.NewFromInt(10), "CHF")
	assert.Equal(t, "10,00 CHF", got, "hors table de symboles, le code ISO est affiché")
}

func TestCurrency_DefautPrefixe(t *testing.T) {
	p := facture.NewProfile(facture.ModeDefault)

	assert.Equal(t, "€1234.50", p.Currency(decimal.NewFromFloat(1234.5), "EUR"),
		"le mode default préfixe le symbole sans groupement")
	assert.Equal(t, "$99.00", p.Currency(decimal.NewFromInt(99), "USD"))
	assert.Equal(t, "CHF 10.00", p.Currency(decimal.NewFromInt(10), "CHF"),
		"hors table, le code précède le montant")
}

func TestCurrency_DeviseVideRepliEUR(t *testing.T) {
	fr := facture.NewProfile(facture.ModeFR)
	def := facture.NewProfile(facture.ModeDefault)

	assert.True(t, strings.HasSuffix(fr.Currency(decimal.NewFromInt(5), ""), " €"),
		"devise absente : repli sur EUR en mode fr")
	assert.Equal(t, "€5.00", def.Currency(decimal.NewFromInt(5), ""),
		"devise absente : repli sur EUR en mode default")
}

// ── Percent ───────────────────────────────────────────────────────────────────

func TestPercent_Francais(t *testing.T) {
	p := facture.NewProfile(facture.ModeFR)

	assert.Equal(t, "20,0 %", p.Percent(decimal.NewFromInt(20)),
		"le mode fr affiche une décimale et la virgule")
	assert.Equal(t, "5,5 %", p.Percent(decimal.NewFromFloat(5.5)))
}

func TestPercent_Defaut(t *testing.T) {
	p := facture.NewProfile(facture.ModeDefault)

	assert.Equal(t, "20 %", p.Percent(decimal.NewFromInt(20)))
	assert.Equal(t, "5.5 %", p.Percent(decimal.NewFromFloat(5.5)))
}

// ── Date ──────────────────────────────────────────────────────────────────────

func TestDate_FormatsParMode(t *testing.T) {
	d := time.Date(2026, 3, 9, 15, 4, 5, 0, time.UTC)

	assert.Equal(t, "09/03/2026", facture.NewProfile(facture.ModeFR).Date(d),
		"mode fr : JJ/MM/AAAA")
	assert.Equal(t, "2026-03-09", facture.NewProfile(facture.ModeDefault).Date(d),
		"mode default : ISO 8601")
}

// ── ParseMode ─────────────────────────────────────────────────────────────────

func TestParseMode(t *testing.T) {
	assert.Equal(t, facture.ModeFR, facture.ParseMode("fr"))
	assert.Equal(t, facture.ModeFR, facture.ParseMode(" FR "), "insensible à la casse et aux espaces")
	assert.Equal(t, facture.ModeDefault, facture.ParseMode("en"))
	assert.Equal(t, facture.ModeDefault, facture.ParseMode(""))
}
