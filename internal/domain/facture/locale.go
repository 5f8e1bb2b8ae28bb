package facture

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Mode de rendu local : conventions françaises ou repli générique.
type Mode string

const (
	ModeFR      Mode = "fr"
	ModeDefault Mode = "default"
)

// ParseMode convertit une chaîne de configuration en Mode ("fr" sinon default).
func ParseMode(s string) Mode {
	if strings.EqualFold(strings.TrimSpace(s), "fr") {
		return ModeFR
	}
	return ModeDefault
}

// Profile porte le mode de locale et ses formateurs. Il est construit une
// fois par rendu et interrogé par chaque bloc, au lieu de re-tester une
// chaîne de mode partout. Les trois moteurs de rendu (PDF, aperçu HTML,
// impression) doivent passer par le même Profile : c'est ce qui garantit
// des sorties monétaires identiques à l'octet près.
type Profile struct {
	mode    Mode
	printer *message.Printer
}

// NewProfile construit le profil pour un mode donné.
func NewProfile(mode Mode) Profile {
	p := Profile{mode: mode}
	if mode == ModeFR {
		p.printer = message.NewPrinter(language.French)
	}
	return p
}

// Mode retourne le mode du profil.
func (p Profile) Mode() Mode { return p.mode }

// Symboles devise par code ISO. Hors table, le code lui-même est affiché.
var currencySymbols = map[string]string{
	"EUR": "€",
	"USD": "$",
	"GBP": "£",
}

// Currency formate un montant dans la devise donnée.
//
// Mode fr : groupement et virgule décimale français, exactement 2 décimales,
// symbole en suffixe ("1 234,50 €"). Les espaces insécables (U+00A0) et
// fines insécables (U+202F) produits par le formatage CLDR sont remplacés
// par des espaces simples, pour une sortie stable à l'octet près quel que
// soit l'environnement ou la police.
//
// Mode default : symbole en préfixe pour EUR/USD/GBP ("€1234.50"),
// sinon "CODE 1234.50".
func (p Profile) Currency(amount decimal.Decimal, code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		code = "EUR"
	}

	if p.mode == ModeFR {
		n := p.printer.Sprintf("%.2f", amount.InexactFloat64())
		n = replaceHardSpaces(n)
		symbol, ok := currencySymbols[code]
		if !ok {
			symbol = code
		}
		return n + " " + symbol
	}

	fixed := amount.StringFixed(2)
	if symbol, ok := currencySymbols[code]; ok {
		return symbol + fixed
	}
	return code + " " + fixed
}

// Percent formate un pourcentage.
// Mode fr : une décimale, groupement local, suffixe " %" ("20,0 %").
// Mode default : valeur brute suivie de " %" ("20 %").
func (p Profile) Percent(value decimal.Decimal) string {
	if p.mode == ModeFR {
		n := p.printer.Sprintf("%.1f", value.InexactFloat64())
		return replaceHardSpaces(n) + " %"
	}
	return value.String() + " %"
}

// Date formate une date : JJ/MM/AAAA en mode fr, ISO 8601 sinon.
func (p Profile) Date(t time.Time) string {
	if p.mode == ModeFR {
		return t.Format("02/01/2006")
	}
	return t.Format("2006-01-02")
}

// replaceHardSpaces remplace les espaces insécables et fines insécables par
// des espaces simples.
func replaceHardSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '\u00a0' || r == '\u202f' {
			return ' '
		}
		return r
	}, s)
}
