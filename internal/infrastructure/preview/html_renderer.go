// Package preview rend l'aperçu HTML d'une facture. Il n'a aucune logique
// de format propre : tous les montants, pourcentages et dates passent par le
// même facture.Profile que le moteur PDF, ce qui garantit des sorties
// identiques à l'octet près entre les deux rendus (contrat vérifié par
// consistency_test.go).
package preview

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/facturio/facturio-api/internal/application/billing"
	"github.com/facturio/facturio-api/internal/domain/facture"
)

// Renderer rend l'aperçu HTML d'une facture normalisée.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer compile le gabarit embarqué.
func NewRenderer() *Renderer {
	return &Renderer{tmpl: template.Must(template.New("facture").Parse(previewTemplate))}
}

type previewLine struct {
	Description string
	Quantity    string
	UnitPrice   string
	Rate        string
	Total       string
}

type previewTVARow struct {
	Label  string
	Amount string
}

type previewData struct {
	Number   string
	Seller   string
	Client   string
	Date     string
	DueDate  string
	Delivery []string
	Lines    []previewLine
	Subtotal string
	TVARows  []previewTVARow
	Grand    string
	Clauses  []facture.Clause
}

// Render produit l'aperçu HTML depuis la même requête que le moteur PDF.
func (r *Renderer) Render(req billing.RenderRequest) ([]byte, error) {
	p := req.Profile
	inv := req.Invoice
	currency := inv.CurrencyOrDefault()
	totals := facture.ComputeTotals(inv.AllItems())

	data := previewData{
		Number:   req.Number,
		Seller:   req.Seller.CompanyName,
		Client:   req.Client.CompanyName,
		Delivery: req.Delivery.Lines,
		Subtotal: p.Currency(totals.Subtotal, currency),
		Grand:    p.Currency(totals.Grand, currency),
		Clauses:  facture.LegalClauses(inv),
	}
	if inv.InvoiceDate != nil {
		data.Date = p.Date(*inv.InvoiceDate)
	}
	if inv.DueDate != nil {
		data.DueDate = p.Date(*inv.DueDate)
	}
	for _, item := range inv.AllItems() {
		data.Lines = append(data.Lines, previewLine{
			Description: item.Description,
			Quantity:    item.Quantity.Decimal().String(),
			UnitPrice:   p.Currency(item.UnitPrice.Decimal(), currency),
			Rate:        p.Percent(item.Rate()),
			Total:       p.Currency(item.LineTotal(), currency),
		})
	}
	for _, g := range totals.Groups {
		data.TVARows = append(data.TVARows, previewTVARow{
			Label:  "TVA (" + p.Percent(g.Rate) + ")",
			Amount: p.Currency(g.Amount, currency),
		})
	}

	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("preview: exécution du gabarit: %w", err)
	}
	return buf.Bytes(), nil
}

const previewTemplate = `<!DOCTYPE html>
<html lang="fr">
<head><meta charset="utf-8"><title>Facture {{.Number}}</title></head>
<body>
<h1>Facture {{.Number}}</h1>
<p class="seller">{{.Seller}}</p>
<p class="client">Facturé à : {{.Client}}</p>
{{if .Date}}<p>Date d'émission : {{.Date}}</p>{{end}}
{{if .DueDate}}<p>Date d'échéance : {{.DueDate}}</p>{{end}}
{{if .Delivery}}<div class="livraison">{{range .Delivery}}<p>{{.}}</p>{{end}}</div>{{end}}
<table>
<thead><tr><th>Description</th><th>Qté</th><th>PU HT</th><th>TVA</th><th>Total HT</th></tr></thead>
<tbody>
{{range .Lines}}<tr><td>{{.Description}}</td><td>{{.Quantity}}</td><td>{{.UnitPrice}}</td><td>{{.Rate}}</td><td>{{.Total}}</td></tr>
{{end}}</tbody>
</table>
<table class="totaux">
<tr><td>Total HT</td><td>{{.Subtotal}}</td></tr>
{{range .TVARows}}<tr><td>{{.Label}}</td><td>{{.Amount}}</td></tr>
{{end}}<tr class="ttc"><td>Total TTC</td><td>{{.Grand}}</td></tr>
</table>
<div class="mentions">
{{range .Clauses}}<h3>{{.Title}}</h3><p>{{.Body}}</p>
{{end}}</div>
</body>
</html>
`
