package pdf

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
)

// FPDFSurface implémente Surface au-dessus de go-pdf/fpdf. Une instance ne
// sert qu'à un seul rendu : l'état fpdf (curseur, pages, erreur collante)
// n'est jamais partagé entre appels.
type FPDFSurface struct {
	pdf    *fpdf.Fpdf
	tr     func(string) string // UTF-8 → cp1252 (accents français, €)
	cfg    PageConfig
	pages  int
	images int
}

// NewFPDFSurface construit une surface vierge.
func NewFPDFSurface() *FPDFSurface {
	return &FPDFSurface{}
}

// Begin ouvre le document et la première page. La coupure de page
// automatique est désactivée : le moteur de mise en page décide seul des
// sauts de page.
func (s *FPDFSurface) Begin(cfg PageConfig) error {
	s.cfg = cfg
	s.pdf = fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: cfg.Width, Ht: cfg.Height},
	})
	s.tr = s.pdf.UnicodeTranslatorFromDescriptor("")
	s.pdf.SetTitle(cfg.Title, true)
	s.pdf.SetAuthor(cfg.Author, true)
	s.pdf.SetMargins(cfg.Margin, cfg.Margin, cfg.Margin)
	s.pdf.SetAutoPageBreak(false, 0)
	s.pdf.AddPage()
	s.pages = 1
	if err := s.pdf.Error(); err != nil {
		return fmt.Errorf("ouverture du document: %w", err)
	}
	return nil
}

// Text place un texte dont (x, y) est le coin supérieur gauche. Avec une
// largeur, le texte coule sur plusieurs lignes ; sans largeur il occupe
// l'espace restant jusqu'à la marge droite.
func (s *FPDFSurface) Text(str string, x, y float64, style TextStyle) {
	s.setFont(style.Size, style.Bold)
	s.pdf.SetTextColor(style.Color.R, style.Color.G, style.Color.B)

	w := style.Width
	if w <= 0 {
		w = s.cfg.Width - s.cfg.Margin - x
	}
	align := style.Align
	if align == "" {
		align = AlignLeft
	}

	s.pdf.SetXY(x, y)
	s.pdf.MultiCell(w, lineHeight(style.Size), s.tr(str), "", align, false)
}

// MeasureHeight retourne la hauteur qu'occuperait le texte coulé sur la
// largeur donnée.
func (s *FPDFSurface) MeasureHeight(str string, width, size float64) float64 {
	s.setFont(size, false)
	lines := s.pdf.SplitText(s.tr(str), width)
	return float64(len(lines)) * lineHeight(size)
}

// TextWidth retourne la largeur du texte sur une seule ligne.
func (s *FPDFSurface) TextWidth(str string, size float64) float64 {
	s.setFont(size, false)
	return s.pdf.GetStringWidth(s.tr(str))
}

// Rect trace un rectangle au trait.
func (s *FPDFSurface) Rect(x, y, w, h, lineWidth float64) {
	s.pdf.SetDrawColor(0, 0, 0)
	s.pdf.SetLineWidth(lineWidth)
	s.pdf.Rect(x, y, w, h, "D")
}

// FillRect trace un rectangle plein.
func (s *FPDFSurface) FillRect(x, y, w, h float64, color RGB) {
	s.pdf.SetFillColor(color.R, color.G, color.B)
	s.pdf.Rect(x, y, w, h, "F")
}

// Line trace un segment.
func (s *FPDFSurface) Line(x1, y1, x2, y2 float64) {
	s.pdf.SetDrawColor(0, 0, 0)
	s.pdf.SetLineWidth(0.3)
	s.pdf.Line(x1, y1, x2, y2)
}

// ImagePNG place une image PNG depuis un buffer mémoire.
func (s *FPDFSurface) ImagePNG(png []byte, x, y, w, h float64) {
	s.images++
	name := fmt.Sprintf("mem-png-%d", s.images)
	opts := fpdf.ImageOptions{ImageType: "PNG"}
	s.pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(png))
	s.pdf.ImageOptions(name, x, y, w, h, false, opts, 0, "")
}

// NewPage ouvre une page et incrémente le compteur exposé.
func (s *FPDFSurface) NewPage() {
	s.pdf.AddPage()
	s.pages++
}

// PageCount retourne le nombre de pages ouvertes.
func (s *FPDFSurface) PageCount() int {
	return s.pages
}

// Output ferme le document et restitue les octets, ou la première erreur
// accumulée pendant le rendu. Aucun buffer partiel n'est retourné en erreur.
func (s *FPDFSurface) Output() ([]byte, error) {
	var buf bytes.Buffer
	if err := s.pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s *FPDFSurface) setFont(size float64, bold bool) {
	style := ""
	if bold {
		style = "B"
	}
	s.pdf.SetFont("Helvetica", style, size)
}
