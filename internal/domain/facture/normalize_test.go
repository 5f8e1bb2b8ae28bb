package facture_test

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/facturio/facturio-api/internal/domain/entity"
	"github.com/facturio/facturio-api/internal/domain/facture"
)

// ──────────────────────────────────────────────────────────────────────────────
// ExtractTotal : chaîne de priorité des sources de montant. La première source
// renseignée et strictement positive gagne ; les lignes ne servent que de
// dernier recours avant zéro.
// ──────────────────────────────────────────────────────────────────────────────

func TestExtractTotal_TotalPrioritaire(t *testing.T) {
	inv := entity.Invoice{
		Total:       entity.MontantFromFloat(120),
		TotalAmount: entity.MontantFromFloat(999),
		Subtotal:    entity.MontantFromFloat(50),
		TaxAmount:   entity.MontantFromFloat(10),
	}

	got := facture.ExtractTotal(inv)
	assert.True(t, got.Equal(decimal.NewFromInt(120)),
		"total doit primer sur totalAmount et sur subtotal+taxAmount, obtenu %s", got)
}

func TestExtractTotal_TotalAmountSiTotalAbsent(t *testing.T) {
	inv := entity.Invoice{
		TotalAmount: entity.MontantFromFloat(60),
		Subtotal:    entity.MontantFromFloat(50),
		TaxAmount:   entity.MontantFromFloat(10),
	}

	got := facture.ExtractTotal(inv)
	assert.True(t, got.Equal(decimal.NewFromInt(60)),
		"totalAmount doit primer sur subtotal+taxAmount quand total est absent")
}

func TestExtractTotal_SousTotalPlusTaxe(t *testing.T) {
	inv := entity.Invoice{
		Subtotal:  entity.MontantFromFloat(50),
		TaxAmount: entity.MontantFromFloat(10),
	}

	got := facture.ExtractTotal(inv)
	assert.True(t, got.Equal(decimal.NewFromInt(60)),
		"subtotal+taxAmount doit donner 60, obtenu %s", got)
}

func TestExtractTotal_SousTotalSeulIgnore(t *testing.T) {
	// taxAmount non renseigné : la branche subtotal+taxAmount exige les deux.
	inv := entity.Invoice{
		Subtotal: entity.MontantFromFloat(50),
	}

	got := facture.ExtractTotal(inv)
	assert.True(t, got.IsZero(),
		"subtotal seul sans taxAmount ni lignes doit donner zéro, obtenu %s", got)
}

func TestExtractTotal_CalculDepuisLignes(t *testing.T) {
	// 2 × 25,00 à 20 % de TVA = 50 HT + 10 TVA = 60 TTC.
	inv := entity.Invoice{
		Items: []entity.LineItem{{
			Description: "Prestation",
			Quantity:    entity.MontantFromFloat(2),
			UnitPrice:   entity.MontantFromFloat(25),
			TVARate:     entity.MontantFromFloat(20),
		}},
	}

	got := facture.ExtractTotal(inv)
	assert.True(t, got.Equal(decimal.NewFromInt(60)),
		"le calcul depuis les lignes doit donner 60 TTC, obtenu %s", got)
}

func TestExtractTotal_AliasInvoiceItems(t *testing.T) {
	inv := entity.Invoice{
		InvoiceItems: []entity.LineItem{{
			Quantity:  entity.MontantFromFloat(1),
			UnitPrice: entity.MontantFromFloat(100),
		}},
	}

	got := facture.ExtractTotal(inv)
	assert.True(t, got.Equal(decimal.NewFromInt(100)),
		"l'alias InvoiceItems doit alimenter le calcul quand Items est vide")
}

func TestExtractTotal_ToutAbsentDonneZero(t *testing.T) {
	got := facture.ExtractTotal(entity.Invoice{})
	assert.True(t, got.IsZero(), "facture vide doit donner un total de zéro")
}

func TestExtractTotal_MontantMalformeAbsorbe(t *testing.T) {
	// Un total non parsable ("abc") est absorbé en "non renseigné" au
	// décodage : la chaîne de priorité passe à la source suivante.
	var inv entity.Invoice
	err := json.Unmarshal([]byte(`{"total":"abc","totalAmount":60}`), &inv)
	require.NoError(t, err, "un montant malformé ne doit jamais faire échouer le décodage")

	assert.False(t, inv.Total.Valid(), "total malformé doit être non renseigné")
	got := facture.ExtractTotal(inv)
	assert.True(t, got.Equal(decimal.NewFromInt(60)),
		"le repli sur totalAmount doit donner 60, obtenu %s", got)
}

func TestExtractTotal_TotalNegatifIgnore(t *testing.T) {
	inv := entity.Invoice{
		Total:       entity.MontantFromFloat(-5),
		TotalAmount: entity.MontantFromFloat(42),
	}

	got := facture.ExtractTotal(inv)
	assert.True(t, got.Equal(decimal.NewFromInt(42)),
		"un total négatif ou nul ne doit pas être retenu comme source")
}

// ── Normalize ─────────────────────────────────────────────────────────────────

func TestNormalize_AligneLesDeuxChamps(t *testing.T) {
	inv := entity.Invoice{
		TotalAmount: entity.MontantFromFloat(60),
		Subtotal:    entity.MontantFromFloat(50),
		TaxAmount:   entity.MontantFromFloat(10),
	}

	norm := facture.Normalize(inv)

	require.True(t, norm.Total.Valid(), "Total doit être renseigné après normalisation")
	require.True(t, norm.TotalAmount.Valid(), "TotalAmount doit être renseigné après normalisation")
	assert.True(t, norm.Total.Decimal().Equal(norm.TotalAmount.Decimal()),
		"Total et TotalAmount doivent porter la même valeur canonique")
	assert.True(t, norm.Total.Decimal().Equal(decimal.NewFromInt(60)))
}

func TestNormalize_Idempotente(t *testing.T) {
	inv := entity.Invoice{
		Items: []entity.LineItem{{
			Quantity:  entity.MontantFromFloat(3),
			UnitPrice: entity.MontantFromFloat(10),
			TVARate:   entity.MontantFromFloat(20),
		}},
	}

	once := facture.Normalize(inv)
	twice := facture.Normalize(once)

	assert.True(t, once.Total.Decimal().Equal(twice.Total.Decimal()),
		"Normalize(Normalize(x)) doit être égal à Normalize(x)")
	assert.True(t, once.TotalAmount.Decimal().Equal(twice.TotalAmount.Decimal()))
}

func TestNormalize_NeModifiePasLesLignes(t *testing.T) {
	inv := entity.Invoice{
		Items: []entity.LineItem{{
			Description: "Maintenance",
			Quantity:    entity.MontantFromFloat(1),
			UnitPrice:   entity.MontantFromFloat(500),
		}},
	}

	norm := facture.Normalize(inv)
	require.Len(t, norm.Items, 1)
	assert.Equal(t, "Maintenance", norm.Items[0].Description,
		"la normalisation ne touche que Total et TotalAmount")
}
