package pdf

import (
	"strings"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/facturio/facturio-api/internal/application/billing"
)

// styledLine est une ligne d'un empilement vertical ; les lignes vides sont
// ignorées (champ optionnel absent = hauteur nulle).
type styledLine struct {
	text  string
	style TextStyle
}

// drawStack empile des lignes de texte à partir de (x, y) et retourne la
// hauteur consommée.
func (e *Engine) drawStack(s Surface, x, y, width float64, lines []styledLine) float64 {
	h := 0.0
	for _, ln := range lines {
		if strings.TrimSpace(ln.text) == "" {
			continue
		}
		style := ln.style
		style.Width = width
		s.Text(ln.text, x, y+h, style)
		h += s.MeasureHeight(ln.text, width, style.Size)
	}
	return h
}

// drawHeader : identité de l'émetteur à gauche, titre FACTURE et bloc client
// à droite. Retourne la hauteur consommée.
func (e *Engine) drawHeader(s Surface, req billing.RenderRequest, y float64) float64 {
	colW := (pageWidth - 2*margin - columnGap) / 2
	seller := req.Seller
	client := req.Client

	leftH := e.drawStack(s, margin, y, colW, []styledLine{
		{seller.CompanyName, TextStyle{Size: 12, Bold: true, Color: colorPrimary}},
		{seller.Address, TextStyle{Size: 8.5, Color: colorGray}},
		{cityCountryLine(seller.PostalCode, seller.City), TextStyle{Size: 8.5, Color: colorGray}},
		{seller.Country, TextStyle{Size: 8.5, Color: colorGray}},
		{phoneLine(seller.Phone), TextStyle{Size: 8.5, Color: colorGray}},
		{seller.Email, TextStyle{Size: 8.5, Color: colorGray}},
	})

	rightX := margin + colW + columnGap
	rightH := e.drawStack(s, rightX, y, colW, []styledLine{
		{"FACTURE", TextStyle{Size: 16, Bold: true, Color: colorPrimary, Align: AlignRight}},
		{"Facturé à", TextStyle{Size: 8, Bold: true, Color: colorGray, Align: AlignRight}},
		{clientDisplayName(client.CompanyName, client.ContactName), TextStyle{Size: 10, Bold: true, Align: AlignRight}},
		{client.Address, TextStyle{Size: 8.5, Color: colorGray, Align: AlignRight}},
		{cityCountryLine(client.PostalCode, client.City), TextStyle{Size: 8.5, Color: colorGray, Align: AlignRight}},
		{client.Country, TextStyle{Size: 8.5, Color: colorGray, Align: AlignRight}},
		{tvaLine(client.TVANumber), TextStyle{Size: 8.5, Color: colorGray, Align: AlignRight}},
	})

	h := leftH
	if rightH > h {
		h = rightH
	}
	s.Line(margin, y+h+blockGap/2, pageWidth-margin, y+h+blockGap/2)
	return h + blockGap
}

// drawInvoiceMeta : numéro, dates et conditions de règlement, plus le QR
// "payer en ligne" si une URL de paiement est fournie. Retourne la hauteur
// consommée.
func (e *Engine) drawInvoiceMeta(s Surface, req billing.RenderRequest, y float64) float64 {
	p := req.Profile
	inv := req.Invoice

	lines := []styledLine{
		{"N° de facture : " + req.Number, TextStyle{Size: 9, Bold: true}},
	}
	if inv.InvoiceDate != nil {
		lines = append(lines, styledLine{"Date d'émission : " + p.Date(*inv.InvoiceDate), TextStyle{Size: 8.5, Color: colorGray}})
	}
	if inv.ServiceDate != nil {
		lines = append(lines, styledLine{"Date de prestation : " + p.Date(*inv.ServiceDate), TextStyle{Size: 8.5, Color: colorGray}})
	}
	if inv.DueDate != nil {
		lines = append(lines, styledLine{"Date d'échéance : " + p.Date(*inv.DueDate), TextStyle{Size: 8.5, Color: colorGray}})
	}
	lines = append(lines, styledLine{
		"Conditions de règlement : " + inv.PaymentTermsOrDefault(),
		TextStyle{Size: 8.5, Color: colorGray},
	})

	h := e.drawStack(s, margin, y, (pageWidth-2*margin)/2, lines)

	if req.PaymentURL != "" {
		if qrH := e.drawPaymentQR(s, req.PaymentURL, y); qrH > h {
			h = qrH
		}
	}

	return h + blockGap
}

// drawPaymentQR place un QR du lien de paiement en haut à droite du bloc de
// métadonnées. Un échec d'encodage est absorbé : le QR est un enrichissement,
// jamais une cause d'échec du rendu.
func (e *Engine) drawPaymentQR(s Surface, url string, y float64) float64 {
	const qrSize = 56.0
	png, err := qrcode.Encode(url, qrcode.Medium, 256)
	if err != nil {
		return 0
	}
	x := pageWidth - margin - qrSize
	s.ImagePNG(png, x, y, qrSize, qrSize)
	s.Text("Payer en ligne", x-20, y+qrSize+2, TextStyle{
		Size: 6.5, Color: colorGray, Align: AlignCenter, Width: qrSize + 40,
	})
	return qrSize + 2 + lineHeight(6.5)
}

// drawDeliveryBlock : adresse de livraison résolue. Hauteur nulle si aucune
// adresse (ou résolution en erreur).
func (e *Engine) drawDeliveryBlock(s Surface, req billing.RenderRequest, y float64) float64 {
	del := req.Delivery
	if !del.HasDeliveryAddress {
		return 0
	}

	lines := make([]styledLine, 0, len(del.Lines)+1)
	lines = append(lines, styledLine{del.Label, TextStyle{Size: 8, Bold: true, Color: colorPrimary}})
	for _, l := range del.Lines {
		lines = append(lines, styledLine{l, TextStyle{Size: 8.5, Color: colorGray}})
	}

	h := e.drawStack(s, margin, y, (pageWidth-2*margin)/2, lines)
	return h + blockGap
}

// ── helpers ───────────────────────────────────────────────────────────────────

func cityCountryLine(postalCode, city string) string {
	return strings.TrimSpace(strings.TrimSpace(postalCode) + " " + strings.TrimSpace(city))
}

func phoneLine(phone string) string {
	if phone == "" {
		return ""
	}
	return "Tél : " + phone
}

func tvaLine(tva string) string {
	if tva == "" {
		return ""
	}
	return "TVA : " + tva
}

func clientDisplayName(companyName, contactName string) string {
	if companyName != "" {
		return companyName
	}
	return contactName
}
