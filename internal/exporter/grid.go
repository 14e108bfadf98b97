package exporter

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-pdf/fpdf"

	"seodash/internal/dataset"
)

// Band heights in millimetres
const (
	titleBandHeight = 10.0
	rowBandHeight   = 8.0
)

// Fonts used by grid documents
const (
	fontFamily    = "Helvetica"
	titleFontSize = 16.0
	bodyFontSize  = 10.0
)

// page formats in millimetres, portrait
var pageSizes = map[string][2]float64{
	"A3":     {297, 420},
	"A4":     {210, 297},
	"A5":     {148, 210},
	"LETTER": {215.9, 279.4},
	"LEGAL":  {215.9, 355.6},
}

// Layout is the page geometry of a grid document in millimetres
type Layout struct {
	PageSize   string
	PageWidth  float64
	PageHeight float64
	Margin     float64
}

// NewLayout looks up a portrait page format and applies a symmetric margin
func NewLayout(pageSize string, margin float64) (Layout, error) {
	dims, ok := pageSizes[strings.ToUpper(pageSize)]
	if !ok {
		return Layout{}, fmt.Errorf("unsupported page size %q", pageSize)
	}
	if margin < 0 || 2*margin >= dims[0] || 2*margin+titleBandHeight+rowBandHeight > dims[1] {
		return Layout{}, fmt.Errorf("margin %.1fmm does not fit page size %s", margin, pageSize)
	}
	return Layout{PageSize: pageSize, PageWidth: dims[0], PageHeight: dims[1], Margin: margin}, nil
}

// UsableWidth is the page width between the margins
func (l Layout) UsableWidth() float64 {
	return l.PageWidth - 2*l.Margin
}

// bottom is the lowest y a band may reach
func (l Layout) bottom() float64 {
	return l.PageHeight - l.Margin
}

// BandKind distinguishes the three kinds of band on a page
type BandKind int

// Band kinds
const (
	BandTitle BandKind = iota
	BandHeader
	BandRow
)

// Band is one horizontal strip of a page: the title, the header row or a data row
type Band struct {
	Kind  BandKind
	Y     float64
	Cells []string
}

// Page lists the bands drawn on one page, top to bottom
type Page struct {
	Bands []Band
}

// GridPlan is the complete layout of a grid document
type GridPlan struct {
	Layout      Layout
	Title       string
	ColumnWidth float64
	Pages       []Page
}

// RowCount returns the number of data row bands across all pages
func (p *GridPlan) RowCount() int {
	n := 0
	for _, page := range p.Pages {
		for _, b := range page.Bands {
			if b.Kind == BandRow {
				n++
			}
		}
	}
	return n
}

// PlanGrid lays out t on pages of the given geometry. Every column gets the
// same width. A band that would cross the bottom margin starts a new page;
// the header is drawn once, on the first page. A table without columns
// yields only the title.
func PlanGrid(t *dataset.Table, title string, layout Layout) (*GridPlan, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}

	plan := &GridPlan{Layout: layout, Title: title}
	page := Page{Bands: []Band{{Kind: BandTitle, Y: layout.Margin, Cells: []string{title}}}}
	y := layout.Margin + titleBandHeight

	if len(t.Columns) == 0 {
		plan.Pages = []Page{page}
		return plan, nil
	}
	plan.ColumnWidth = layout.UsableWidth() / float64(len(t.Columns))

	place := func(kind BandKind, cells []string) {
		if y+rowBandHeight > layout.bottom() {
			plan.Pages = append(plan.Pages, page)
			page = Page{}
			y = layout.Margin
		}
		page.Bands = append(page.Bands, Band{Kind: kind, Y: y, Cells: cells})
		y += rowBandHeight
	}

	header := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		header[i] = truncateHeader(col)
	}
	place(BandHeader, header)

	for i := range t.Rows {
		values := t.Values(i)
		for j, v := range values {
			values[j] = truncateCell(v)
		}
		place(BandRow, values)
	}

	plan.Pages = append(plan.Pages, page)
	return plan, nil
}

// renderGrid draws a plan onto a new PDF document
func renderGrid(plan *GridPlan, compress bool) *fpdf.Fpdf {
	l := plan.Layout
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: l.PageWidth, Ht: l.PageHeight},
	})
	pdf.SetMargins(l.Margin, l.Margin, l.Margin)
	pdf.SetAutoPageBreak(false, l.Margin)
	pdf.SetCompression(compress)
	pdf.SetTitle(plan.Title, true)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	for _, page := range plan.Pages {
		pdf.AddPage()
		for _, band := range page.Bands {
			pdf.SetXY(l.Margin, band.Y)
			switch band.Kind {
			case BandTitle:
				pdf.SetFont(fontFamily, "B", titleFontSize)
				pdf.CellFormat(0, titleBandHeight, tr(band.Cells[0]), "", 0, "L", false, 0, "")
			default:
				pdf.SetFont(fontFamily, "", bodyFontSize)
				for _, text := range band.Cells {
					pdf.CellFormat(plan.ColumnWidth, rowBandHeight, tr(text), "1", 0, "L", false, 0, "")
				}
			}
		}
	}
	return pdf
}

// WriteGridDocument writes t as a paginated PDF table to w using the
// exporter's page geometry
func (e *Exporter) WriteGridDocument(w io.Writer, t *dataset.Table, title string) error {
	plan, err := PlanGrid(t, title, e.layout)
	if err != nil {
		return err
	}

	pdf := renderGrid(plan, true)
	if err := pdf.Error(); err != nil {
		return fmt.Errorf("failed to render document: %w", err)
	}
	return pdf.Output(w)
}

// ToGridDocument writes t as a PDF to path, resolved against the exports
// directory when relative, and returns the final path.
func (e *Exporter) ToGridDocument(t *dataset.Table, title, path string) (string, error) {
	plan, err := PlanGrid(t, title, e.layout)
	if err != nil {
		return "", err
	}

	pdf := renderGrid(plan, true)
	if err := pdf.Error(); err != nil {
		return "", fmt.Errorf("failed to render document: %w", err)
	}

	fullPath := e.resolvePath(path)
	if err := writeFileAtomic(fullPath, pdf.Output); err != nil {
		return "", err
	}
	return fullPath, nil
}

// WriteGridDocument writes t as a PDF to w on A4 pages with 10mm margins
func WriteGridDocument(w io.Writer, t *dataset.Table, title string) error {
	e, err := New(DefaultOptions())
	if err != nil {
		return err
	}
	return e.WriteGridDocument(w, t, title)
}
