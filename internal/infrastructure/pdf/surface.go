// Package pdf implémente le moteur de mise en page des factures françaises.
//
// Gabarit d'une facture (A4, deux pages) :
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  ÉMETTEUR (identité + adresse)   │  FACTURE + client        │
//	│  MÉTADONNÉES : n°, dates, conditions de règlement [+ QR]    │
//	│  LIVRAISON (optionnel)                                      │
//	│  TABLE : Description | Qté | PU HT | TVA | Total HT         │
//	│  …                                                          │
//	│  TOTAUX (ancrés en bas) : Total HT / TVA par taux / TTC     │
//	├─────────────────────────────────────────────────────────────┤
//	│  SUITE DE LA TABLE (si débordement)                         │
//	│  MENTIONS LÉGALES sur deux colonnes                         │
//	│  BLOC COMPACT : identité TVA │ coordonnées bancaires        │
//	└─────────────────────────────────────────────────────────────┘
//
// Le moteur ne parle qu'à l'abstraction Surface : placer du texte, mesurer
// une hauteur, tracer un trait. La pagination, l'ancrage des totaux et la
// coulée des mentions légales sont entièrement décidés ici.
package pdf

// PageConfig décrit la géométrie du document (en points).
type PageConfig struct {
	Width  float64
	Height float64
	Margin float64
	Title  string
	Author string
}

// RGB couleur de texte ou de remplissage. La valeur zéro est le noir.
type RGB struct {
	R, G, B int
}

// Alignements horizontaux.
const (
	AlignLeft   = "L"
	AlignCenter = "C"
	AlignRight  = "R"
)

// TextStyle style d'un texte placé sur la surface.
type TextStyle struct {
	Size  float64
	Bold  bool
	Color RGB
	Align string  // AlignLeft par défaut
	Width float64 // largeur de coulée; 0 = jusqu'à la marge droite
}

// Surface est l'abstraction de dessin consommée par le moteur de mise en
// page : primitives de placement et de mesure uniquement. Le compteur de
// pages est exposé nativement (pas d'interception de NewPage par l'appelant).
//
// Les implémentations accumulent leur première erreur et la restituent via
// Output : une erreur de flux est fatale pour le rendu entier.
type Surface interface {
	Begin(cfg PageConfig) error
	Text(s string, x, y float64, style TextStyle)
	MeasureHeight(s string, width, size float64) float64
	TextWidth(s string, size float64) float64
	Rect(x, y, w, h, lineWidth float64)
	FillRect(x, y, w, h float64, color RGB)
	Line(x1, y1, x2, y2 float64)
	ImagePNG(png []byte, x, y, w, h float64)
	NewPage()
	PageCount() int
	Output() ([]byte, error)
}

// lineHeight retourne la hauteur d'une ligne de texte pour un corps donné.
func lineHeight(size float64) float64 {
	return size * 1.35
}
