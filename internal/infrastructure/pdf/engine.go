package pdf

import (
	"context"
	"fmt"

	"github.com/facturio/facturio-api/internal/application/billing"
	"github.com/facturio/facturio-api/internal/domain/facture"
)

// Géométrie du document (points, A4 portrait).
const (
	pageWidth  = 595.28
	pageHeight = 841.89
	margin     = 40.0

	// Une ligne d'article occupe toujours rowHeight : une ligne ne se
	// coupe jamais entre deux pages.
	rowHeight       = 24.0
	tableHeaderH    = 18.0
	blockGap        = 14.0
	columnGap       = 20.0
	totalsRowH      = 16.0
	totalsPad       = 8.0
	compactLineH    = 11.0
	compactPad      = 6.0
	clauseTitleSize = 8.0
	clauseBodySize  = 7.5
	clauseGap       = 6.0
)

// Palette.
var (
	colorPrimary = RGB{R: 0, G: 70, B: 127}
	colorGray    = RGB{R: 100, G: 100, B: 100}
	colorHeader  = RGB{R: 235, G: 238, B: 242}
)

// Engine est le moteur de mise en page. Il est sans état : chaque rendu
// construit une surface neuve, donc des rendus concurrents de factures
// différentes n'entrelacent jamais leurs curseurs.
type Engine struct {
	newSurface func() Surface
}

// NewEngine construit le moteur avec une fabrique de surfaces.
func NewEngine(newSurface func() Surface) *Engine {
	return &Engine{newSurface: newSurface}
}

// NewFPDFEngine construit le moteur sur l'implémentation fpdf.
func NewFPDFEngine() *Engine {
	return NewEngine(func() Surface { return NewFPDFSurface() })
}

var _ billing.InvoicePDFRenderer = (*Engine)(nil)

// renderState est le curseur vertical du rendu en cours, passé explicitement
// de bloc en bloc : chaque bloc reçoit un Y de départ et retourne la hauteur
// consommée, l'appelant avance le curseur. Jamais partagé entre rendus.
type renderState struct {
	y                float64
	truncatedClauses int
}

func (st *renderState) advance(h float64) {
	st.y += h
}

// Render produit le document complet d'une facture normalisée.
//
// Déroulé : en-tête → métadonnées → livraison → articles page 1 (en
// réservant la place du bloc de totaux) → totaux ancrés en bas de page 1 →
// page 2 : suite des articles, mentions légales sur deux colonnes, bloc
// compact identité TVA / banque.
//
// Une erreur de la surface est fatale pour ce rendu ; des champs optionnels
// absents ne le sont jamais (bloc de hauteur nulle).
func (e *Engine) Render(_ context.Context, req billing.RenderRequest) (*billing.RenderedDocument, error) {
	s := e.newSurface()
	if err := s.Begin(PageConfig{
		Width:  pageWidth,
		Height: pageHeight,
		Margin: margin,
		Title:  "Facture " + req.Number,
		Author: req.Seller.CompanyName,
	}); err != nil {
		return nil, fmt.Errorf("pdf: %w", err)
	}

	st := &renderState{y: margin}
	items := req.Invoice.AllItems()
	totals := facture.ComputeTotals(items)

	// Page 1 : blocs coulés depuis le haut.
	st.advance(e.drawHeader(s, req, st.y))
	st.advance(e.drawInvoiceMeta(s, req, st.y))
	st.advance(e.drawDeliveryBlock(s, req, st.y))

	// Les totaux sont ancrés en bas de page 1 : la place leur est réservée
	// avant de couler les articles, le total général reste donc toujours
	// visible quel que soit le nombre de lignes au-dessus.
	reserved := totalsBoxHeight(totals) + blockGap
	rendered := e.drawItemsFirstPage(s, req, items, st.y, reserved)
	e.drawTotalsBox(s, req, totals, pageHeight-margin-reserved+blockGap)

	// Page 2 : suite des articles, mentions légales, bloc compact.
	s.NewPage()
	y := margin
	if rendered < len(items) {
		y += e.drawItemsContinuation(s, req, items[rendered:], y) + blockGap
	}

	compactH := e.compactBlockHeight(req, pageHeight-margin-y)
	compactY := pageHeight - margin - compactH
	clauseBottom := compactY - blockGap

	_, truncated := e.drawLegalClauses(s, req, y, clauseBottom)
	st.truncatedClauses = truncated
	e.drawCompactBlock(s, req, compactY, compactH)

	buf, err := s.Output()
	if err != nil {
		return nil, fmt.Errorf("pdf: génération du document: %w", err)
	}
	return &billing.RenderedDocument{
		Buffer:           buf,
		PageCount:        s.PageCount(),
		TruncatedClauses: st.truncatedClauses,
	}, nil
}
