package facture

import (
	"strings"

	"github.com/facturio/facturio-api/internal/domain/entity"
)

// BuildSellerInfo aplatit la fiche émetteur. Chaque champ suit un ordre de
// priorité fixe entre le champ utilisateur à plat et l'objet société
// imbriqué : la première valeur non vide gagne, jamais de fusion entre les
// deux sources.
func BuildSellerInfo(u entity.User) entity.SellerInfo {
	var c entity.Company
	if u.Company != nil {
		c = *u.Company
	}
	var b entity.Bank
	if c.Bank != nil {
		b = *c.Bank
	}

	name := firstNonEmpty(u.CompanyName, c.Name)
	if name == "" {
		name = strings.TrimSpace(u.FirstName + " " + u.LastName)
	}

	return entity.SellerInfo{
		CompanyName:       name,
		Address:           firstNonEmpty(u.Address, c.Address),
		City:              firstNonEmpty(u.City, c.City),
		PostalCode:        firstNonEmpty(u.PostalCode, c.PostalCode),
		Country:           firstNonEmpty(u.Country, c.Country),
		Phone:             firstNonEmpty(u.Phone, c.Phone),
		Email:             firstNonEmpty(u.Email, c.Email),
		TVANumber:         firstNonEmpty(u.TVANumber, c.TVANumber),
		SIREN:             firstNonEmpty(u.SIREN, c.SIREN),
		SIRET:             firstNonEmpty(u.SIRET, c.SIRET),
		LegalForm:         firstNonEmpty(u.LegalForm, c.LegalForm),
		RegisteredCapital: firstNonEmpty(u.RegisteredCapital, c.RegisteredCapital),
		RCSNumber:         firstNonEmpty(u.RCSNumber, c.RCSNumber),
		NAFCode:           firstNonEmpty(u.NAFCode, c.NAFCode),
		Bank: entity.BankInfo{
			IBAN:          firstNonEmpty(u.IBAN, b.IBAN),
			BIC:           firstNonEmpty(u.BIC, b.BIC),
			BankName:      firstNonEmpty(u.BankName, b.Name),
			AccountHolder: firstNonEmpty(u.AccountHolder, b.AccountHolder, name),
		},
	}
}

// BuildClientInfo aplatit la fiche client consommée par les rendus.
func BuildClientInfo(c entity.Client) entity.ClientInfo {
	return entity.ClientInfo{
		CompanyName: c.CompanyName,
		ContactName: c.ContactName,
		Address:     c.Address,
		City:        c.City,
		PostalCode:  c.PostalCode,
		Country:     c.Country,
		Phone:       c.Phone,
		Email:       c.Email,
		TVANumber:   c.TVANumber,
	}
}

// firstNonEmpty retourne la première valeur non vide (après trim).
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if t := strings.TrimSpace(v); t != "" {
			return t
		}
	}
	return ""
}
