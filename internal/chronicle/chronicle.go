// Package chronicle renders a finished playthrough as a printable PDF
// journal in an old-parchment style: one entry per stage and battle,
// closing with the ending the player earned.
package chronicle

import (
	"bytes"
	"math"

	"github.com/jung-kurt/gofpdf/v2"
)

const (
	pageW  = 595
	pageH  = 842
	margin = 40

	titleSize = 18
	entrySize = 11
	noteSize  = 9

	entryStep = 34.0
	firstY    = 110.0
)

// Entry is one recorded moment of the playthrough.
type Entry struct {
	Title  string
	Note   string
	Battle bool
}

// Journal collects a playthrough as it happens and names its hero.
type Journal struct {
	Hero    string
	Class   string
	Ending  string
	Entries []Entry
}

// Record appends a plain entry.
func (j *Journal) Record(title, note string) {
	j.Entries = append(j.Entries, Entry{Title: title, Note: note})
}

// RecordBattle appends a battle entry, marked with crossed swords.
func (j *Journal) RecordBattle(title, note string) {
	j.Entries = append(j.Entries, Entry{Title: title, Note: note, Battle: true})
}

// Generate returns PDF bytes for the journal. A journal with no entries
// still produces a valid single-page document.
func Generate(j *Journal) ([]byte, error) {
	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(false, 0)

	newPage(pdf)

	// Title block: journal name, then the hero line
	pdf.SetFont("Helvetica", "B", titleSize)
	pdf.SetTextColor(80, 50, 30)
	pdf.SetXY(margin, margin+10)
	pdf.CellFormat(pageW-2*margin, 20, "The Emberstone Chronicle", "", 0, "C", false, 0, "")
	if j.Hero != "" {
		pdf.SetFont("Helvetica", "I", entrySize)
		pdf.SetXY(margin, margin+34)
		line := "as lived by " + j.Hero
		if j.Class != "" {
			line += " the " + j.Class
		}
		pdf.CellFormat(pageW-2*margin, 14, line, "", 0, "C", false, 0, "")
	}

	y := firstY
	for _, e := range j.Entries {
		if y > pageH-margin-60 {
			newPage(pdf)
			y = float64(margin) + 30
		}
		drawMarker(pdf, margin+18, y+5, e.Battle)

		pdf.SetFont("Helvetica", "B", entrySize)
		pdf.SetTextColor(40, 25, 15)
		pdf.SetXY(margin+36, y)
		pdf.CellFormat(pageW-2*margin-40, 12, e.Title, "", 0, "L", false, 0, "")
		if e.Note != "" {
			pdf.SetFont("Helvetica", "I", noteSize)
			pdf.SetTextColor(80, 50, 30)
			pdf.SetXY(margin+36, y+13)
			pdf.CellFormat(pageW-2*margin-40, 10, e.Note, "", 0, "L", false, 0, "")
		}
		y += entryStep
	}

	if j.Ending != "" {
		if y > pageH-margin-60 {
			newPage(pdf)
			y = float64(margin) + 30
		}
		pdf.SetFont("Helvetica", "B", entrySize+1)
		pdf.SetTextColor(80, 50, 30)
		pdf.SetXY(margin, y+12)
		pdf.CellFormat(pageW-2*margin, 14, j.Ending, "", 0, "C", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// newPage starts a fresh parchment page with the tattered border.
func newPage(pdf *gofpdf.Fpdf) {
	pdf.AddPage()
	pdf.SetFillColor(245, 235, 210)
	pdf.Rect(0, 0, pageW, pageH, "F")
	drawWavyBorder(pdf)
	pdf.SetDrawColor(80, 50, 30)
	pdf.SetTextColor(80, 50, 30)
	pdf.SetLineWidth(1)
}

// drawMarker draws the entry marker: a small circle for a scene, crossed
// swords for a battle.
func drawMarker(pdf *gofpdf.Fpdf, x, y float64, battle bool) {
	pdf.SetDrawColor(0, 0, 0)
	if battle {
		pdf.SetLineWidth(1.5)
		pdf.Line(x-5, y-5, x+5, y+5)
		pdf.Line(x-5, y+5, x+5, y-5)
	} else {
		pdf.SetLineWidth(1.2)
		pdf.Circle(x, y, 4, "D")
	}
	pdf.SetLineWidth(1)
	pdf.SetDrawColor(80, 50, 30)
}

// drawWavyBorder draws an organic, tattered black border around the page.
func drawWavyBorder(pdf *gofpdf.Fpdf) {
	pts := wavyRectPoints(margin, margin, pageW-2*margin, pageH-2*margin, 12, 4)
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(2)
	pdf.Polygon(pts, "D")
	pdf.SetLineWidth(1)
	pdf.SetDrawColor(80, 50, 30)
}

// wavyRectPoints returns polygon points for a rectangle with sinusoidal
// wobble on each side.
func wavyRectPoints(x, y, w, h float64, steps int, amp float64) []gofpdf.PointType {
	pts := make([]gofpdf.PointType, 0, steps*4+4)
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		pts = append(pts, gofpdf.PointType{
			X: x + t*w + amp*math.Sin(float64(i)*0.7),
			Y: y + amp*math.Cos(float64(i)*0.5),
		})
	}
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		pts = append(pts, gofpdf.PointType{
			X: x + w + amp*math.Sin(float64(i)*0.6),
			Y: y + t*h + amp*math.Cos(float64(i)*0.4),
		})
	}
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		pts = append(pts, gofpdf.PointType{
			X: x + w - t*w + amp*math.Sin(float64(i)*0.8),
			Y: y + h + amp*math.Cos(float64(i)*0.3),
		})
	}
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		pts = append(pts, gofpdf.PointType{
			X: x + amp*math.Sin(float64(i)*0.5),
			Y: y + h - t*h + amp*math.Cos(float64(i)*0.6),
		})
	}
	return pts
}
