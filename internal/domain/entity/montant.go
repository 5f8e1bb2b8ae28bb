package entity

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// Montant est un montant optionnel tolérant au JSON hérité du frontend :
// il accepte un nombre, une chaîne numérique ou null. Une valeur absente,
// null ou non parsable est traitée comme "non renseignée" et vaut zéro en
// aval (jamais d'erreur de décodage pour un champ numérique malformé).
type Montant struct {
	dec   decimal.Decimal
	valid bool
}

// MontantFrom construit un Montant renseigné.
func MontantFrom(d decimal.Decimal) Montant {
	return Montant{dec: d, valid: true}
}

// MontantFromFloat construit un Montant renseigné depuis un float64.
func MontantFromFloat(f float64) Montant {
	return Montant{dec: decimal.NewFromFloat(f), valid: true}
}

// Valid indique si le montant a été renseigné avec une valeur parsable.
func (m Montant) Valid() bool { return m.valid }

// Decimal retourne la valeur, ou zéro si non renseignée.
func (m Montant) Decimal() decimal.Decimal {
	if !m.valid {
		return decimal.Zero
	}
	return m.dec
}

// UnmarshalJSON accepte nombre, chaîne ou null. Tout contenu non parsable
// est absorbé en "non renseigné" plutôt que de faire échouer le décodage.
func (m *Montant) UnmarshalJSON(b []byte) error {
	*m = Montant{}
	trimmed := bytes.TrimSpace(b)
	if len(trimmed) == 0 || string(trimmed) == "null" {
		return nil
	}

	var s string
	if trimmed[0] == '"' {
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return nil
		}
		s = strings.TrimSpace(s)
		if s == "" {
			return nil
		}
	} else {
		s = string(trimmed)
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil
	}
	m.dec = d
	m.valid = true
	return nil
}

// MarshalJSON sérialise la valeur, ou null si non renseignée.
func (m Montant) MarshalJSON() ([]byte, error) {
	if !m.valid {
		return []byte("null"), nil
	}
	return []byte(m.dec.String()), nil
}
