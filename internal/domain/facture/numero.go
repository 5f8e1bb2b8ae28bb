package facture

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/facturio/facturio-api/internal/domain/entity"
)

// FormatInvoiceNumber détermine le numéro de facture affiché. Déterministe,
// sans effet de bord ; l'unicité est garantie en amont par l'appelant.
//
//   - Numéro renseigné + mode fr + motif "INV-<année>-<seq>" (au moins trois
//     segments séparés par des tirets) : réécrit en "FR-<année courante>-<seq
//     sur 6 chiffres>". L'année courante est utilisée délibérément, pas celle
//     du numéro d'origine.
//   - Numéro renseigné sinon : retourné tel quel (y compris si le motif est
//     ambigu ou non parsable).
//   - Numéro absent : synthétise "FR-<année>-000001" en mode fr,
//     "INV-<année>-000001" sinon.
func FormatInvoiceNumber(inv entity.Invoice, mode Mode, now time.Time) string {
	n := strings.TrimSpace(inv.InvoiceNumber)

	if n != "" && mode == ModeFR {
		parts := strings.Split(n, "-")
		if len(parts) >= 3 && strings.EqualFold(parts[0], "INV") {
			seq, err := strconv.Atoi(parts[len(parts)-1])
			if err == nil {
				return fmt.Sprintf("FR-%d-%06d", now.Year(), seq)
			}
		}
		return n
	}
	if n != "" {
		return n
	}

	prefix := "INV-"
	if mode == ModeFR {
		prefix = "FR-"
	}
	return fmt.Sprintf("%s%d-000001", prefix, now.Year())
}
