package facture

import "github.com/facturio/facturio-api/internal/domain/entity"

// Clause est une mention légale nommée (titre + corps) à reproduire sur la
// facture. La liste est ordonnée et fixe : le moteur de rendu la fait couler
// sur une ou deux colonnes sans jamais en réordonner le contenu.
type Clause struct {
	Title string
	Body  string
}

// LegalClauses retourne la liste ordonnée des mentions légales de la
// facture. Le contenu dépend du régime de TVA mais jamais du moteur de
// rendu : PDF, aperçu HTML et impression affichent les mêmes textes.
func LegalClauses(inv entity.Invoice) []Clause {
	clauses := []Clause{
		{
			Title: "Conditions de règlement",
			Body: "Paiement à réception de facture, au plus tard sous " +
				inv.PaymentTermsOrDefault() + ". Tout règlement s'effectue par virement " +
				"bancaire sur le compte indiqué ci-dessous.",
		},
	}

	if mention := TVANarrative(inv); mention != "" {
		clauses = append(clauses, Clause{Title: "TVA", Body: mention})
	}

	clauses = append(clauses,
		Clause{
			Title: "Pénalités de retard",
			Body: "En cas de retard de paiement, des pénalités calculées sur la base de " +
				"trois fois le taux d'intérêt légal seront exigibles de plein droit, sans " +
				"qu'un rappel soit nécessaire, ainsi qu'une indemnité forfaitaire pour " +
				"frais de recouvrement de 40 € (articles L441-10 et D441-5 du Code de commerce).",
		},
		Clause{
			Title: "Escompte",
			Body:  "Pas d'escompte pour paiement anticipé.",
		},
		Clause{
			Title: "Réserve de propriété",
			Body: "Les marchandises demeurent la propriété du vendeur jusqu'au paiement " +
				"intégral du prix (loi n° 80-335 du 12 mai 1980).",
		},
	)

	return clauses
}
