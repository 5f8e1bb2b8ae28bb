package entity

// User représente l'émetteur de la facture tel que stocké côté compte :
// des champs à plat historiques, plus un objet société optionnel. Le mapping
// vers SellerInfo choisit la première valeur non vide selon un ordre fixe
// (voir facture.BuildSellerInfo), jamais une fusion.
type User struct {
	CompanyName string `json:"companyName"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Address     string `json:"address"`
	City        string `json:"city"`
	PostalCode  string `json:"postalCode"`
	Country     string `json:"country"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`

	TVANumber         string `json:"tvaNumber"`
	SIREN             string `json:"siren"`
	SIRET             string `json:"siret"`
	LegalForm         string `json:"legalForm"`
	RegisteredCapital string `json:"registeredCapital"`
	RCSNumber         string `json:"rcsNumber"`
	NAFCode           string `json:"nafCode"`

	IBAN          string `json:"iban"`
	BIC           string `json:"bic"`
	BankName      string `json:"bankName"`
	AccountHolder string `json:"accountHolder"`

	Company *Company `json:"company"`
}

// Company objet société imbriqué (source alternative des champs émetteur).
type Company struct {
	Name              string `json:"name"`
	Address           string `json:"address"`
	City              string `json:"city"`
	PostalCode        string `json:"postalCode"`
	Country           string `json:"country"`
	Phone             string `json:"phone"`
	Email             string `json:"email"`
	TVANumber         string `json:"tvaNumber"`
	SIREN             string `json:"siren"`
	SIRET             string `json:"siret"`
	LegalForm         string `json:"legalForm"`
	RegisteredCapital string `json:"registeredCapital"`
	RCSNumber         string `json:"rcsNumber"`
	NAFCode           string `json:"nafCode"`
	Bank              *Bank  `json:"bank"`
}

// Bank coordonnées bancaires imbriquées dans l'objet société.
type Bank struct {
	IBAN          string `json:"iban"`
	BIC           string `json:"bic"`
	Name          string `json:"name"`
	AccountHolder string `json:"accountHolder"`
}

// Client représente un client avec son adresse de facturation et,
// optionnellement, une adresse de livraison indépendante.
type Client struct {
	CompanyName string `json:"companyName"`
	ContactName string `json:"contactName"`
	Address     string `json:"address"`
	City        string `json:"city"`
	PostalCode  string `json:"postalCode"`
	Country     string `json:"country"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	TVANumber   string `json:"tvaNumber"`

	// true = l'adresse de livraison du client est son adresse de facturation.
	SameAsAddress bool `json:"sameAsAddress"`

	DeliveryAddress    string `json:"deliveryAddress"`
	DeliveryCity       string `json:"deliveryCity"`
	DeliveryPostalCode string `json:"deliveryPostalCode"`
	DeliveryCountry    string `json:"deliveryCountry"`
}

// HasBillingAddress indique si au moins un champ de facturation est renseigné.
func (c Client) HasBillingAddress() bool {
	return c.CompanyName != "" || c.ContactName != "" || c.Address != "" ||
		c.City != "" || c.PostalCode != "" || c.Country != ""
}

// HasDeliveryFields indique si le client a une adresse de livraison indépendante.
func (c Client) HasDeliveryFields() bool {
	return c.DeliveryAddress != "" || c.DeliveryCity != "" ||
		c.DeliveryPostalCode != "" || c.DeliveryCountry != ""
}

// SellerInfo fiche émetteur aplatie consommée par les moteurs de rendu.
type SellerInfo struct {
	CompanyName       string
	Address           string
	City              string
	PostalCode        string
	Country           string
	Phone             string
	Email             string
	TVANumber         string
	SIREN             string
	SIRET             string
	LegalForm         string
	RegisteredCapital string
	RCSNumber         string
	NAFCode           string
	Bank              BankInfo
}

// BankInfo coordonnées bancaires aplaties de l'émetteur.
type BankInfo struct {
	IBAN          string
	BIC           string
	BankName      string
	AccountHolder string
}

// ClientInfo fiche client aplatie consommée par les moteurs de rendu.
type ClientInfo struct {
	CompanyName string
	ContactName string
	Address     string
	City        string
	PostalCode  string
	Country     string
	Phone       string
	Email       string
	TVANumber   string
}
