package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"

	"trimsheet/internal/domain"
)

// Table column geometry, mm from the left page edge. Weight, arm and moment
// values are right-aligned on their column edges so the figures line up the
// way they do on a hand-filled trim sheet.
const (
	labelX   = 20.0
	weightX  = 100.0
	timesX   = 107.0
	armX     = 138.0
	equalsX  = 145.0
	momentX  = 185.0
	rightX   = 190.0
	lineH    = 6.0
	headerY  = 20.0
	fontSize = 10.0
)

// PDF renders a report as a single-page A4 trim sheet.
type PDF struct{}

// NewPDF returns the PDF renderer.
func NewPDF() *PDF { return &PDF{} }

// Render writes the trim sheet for r to path. The document is assembled in
// memory and written atomically; on failure no artifact is left behind.
func (p *PDF) Render(r domain.Report, path string) error {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetTitle(fmt.Sprintf("Weight and Balance %s", r.Profile.Registration), false)
	doc.SetAutoPageBreak(false, 0)
	doc.AddPage()

	y := p.drawHeader(doc, r)
	y = p.drawTable(doc, r, y)
	if r.Verdict.Evaluated {
		p.drawChart(doc, r, y)
	}

	if err := doc.Error(); err != nil {
		return &domain.RenderError{Path: path, Err: err}
	}
	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return &domain.RenderError{Path: path, Err: err}
	}
	if err := writeFile(path, buf.Bytes(), 0o644); err != nil {
		return &domain.RenderError{Path: path, Err: err}
	}
	return nil
}

func (p *PDF) drawHeader(doc *fpdf.Fpdf, r domain.Report) float64 {
	doc.SetFont("Helvetica", "B", 14)
	doc.Text(labelX, headerY, "Weight and Balance")

	doc.SetFont("Helvetica", "", fontSize)
	date := r.GeneratedAt.Format("02/01/06")
	doc.Text(rightX-doc.GetStringWidth(date), headerY, date)
	doc.Text(labelX, headerY+lineH, r.Profile.Model)

	doc.SetLineWidth(0.3)
	doc.Line(labelX, headerY+lineH+2.5, rightX, headerY+lineH+2.5)

	y := headerY + 2*lineH + 4
	doc.SetFont("Courier", "", fontSize)
	doc.Text(labelX, y, fmt.Sprintf("Aircraft: %s", r.Profile.Registration))
	y += lineH
	doc.Text(labelX, y, fmt.Sprintf("Weighing date: %s", r.Profile.WeighedAt.Format("02/01/06")))
	return y + 2*lineH
}

func (p *PDF) drawTable(doc *fpdf.Fpdf, r domain.Report, y float64) float64 {
	doc.SetFont("Courier", "", fontSize)
	rightText := func(x, y float64, s string) {
		doc.Text(x-doc.GetStringWidth(s), y, s)
	}

	// Column headers and the empty-weight row.
	rightText(weightX, y, "Empty weight")
	rightText(armX, y, "Arm")
	rightText(momentX, y, "Moment")
	y += lineH
	rightText(weightX, y, fmt.Sprintf("%.2f kg", r.Profile.EmptyWeightKG))
	doc.Text(timesX, y, "x")
	rightText(armX, y, fmtArm(r.Profile.EmptyArmCM))
	doc.Text(equalsX, y, "=")
	rightText(momentX, y, fmt.Sprintf("%.2f", r.Profile.EmptyMomentKGCM))
	y += 1.5 * lineH

	// Load section, grouped by station.
	doc.SetFont("Helvetica", "B", fontSize)
	doc.Text(labelX, y, "Load")
	doc.Line(labelX, y+1, labelX+doc.GetStringWidth("Load"), y+1)
	doc.SetFont("Courier", "", fontSize)
	y += lineH

	var lastStation domain.StationID
	for _, line := range r.WithFuel.Lines {
		if line.Station != lastStation {
			doc.Text(labelX, y, line.Label)
			y += lineH
			lastStation = line.Station
		}
		doc.Text(labelX+4, y, fmt.Sprintf("- %s", line.Name))
		rightText(weightX, y, fmt.Sprintf("%.2f kg", line.WeightKG))
		doc.Text(timesX, y, "x")
		rightText(armX, y, fmtArm(line.ArmCM))
		doc.Text(equalsX, y, "=")
		rightText(momentX, y, fmt.Sprintf("%.2f", line.MomentKGCM))
		y += lineH
	}
	y += lineH / 2

	// Totals.
	doc.SetFont("Helvetica", "B", fontSize)
	doc.Text(labelX, y, "Totals")
	doc.Line(labelX, y+1, momentX, y+1)
	doc.SetFont("Courier", "", fontSize)
	y += lineH
	rightText(weightX, y, fmt.Sprintf("Weight: %.2f kg", r.WithFuel.TotalWeightKG))
	rightText(momentX, y, fmt.Sprintf("Moment: %.2f", r.WithFuel.TotalMomentKGCM))
	y += lineH
	rightText(weightX, y, fmt.Sprintf("CoG: %.2f cm", r.WithFuel.CoGCM))
	y += lineH

	if r.Verdict.Evaluated {
		doc.SetFont("Helvetica", "B", fontSize)
		if r.Verdict.Inside {
			doc.Text(labelX, y, "Within centre of gravity limits")
		} else {
			doc.SetTextColor(255, 0, 0)
			doc.Text(labelX, y, "OUTSIDE CENTRE OF GRAVITY LIMITS")
			doc.SetTextColor(0, 0, 0)
		}
		doc.SetFont("Courier", "", fontSize)
		y += lineH
	}
	return y + lineH
}

func (p *PDF) drawChart(doc *fpdf.Fpdf, r domain.Report, y float64) {
	points := []chartPoint{
		{cogCM: r.WithFuel.CoGCM, weightKG: r.WithFuel.TotalWeightKG, r: 0, g: 0, b: 0},
		{cogCM: r.ZeroFuel.CoGCM, weightKG: r.ZeroFuel.TotalWeightKG, r: 255, g: 0, b: 0},
	}

	c := newChart(55, y, 110, 75, r.Profile.Envelope, points)
	c.draw(doc, r.Profile.Envelope, points)

	// Legend and disclaimer.
	ly := y + 75 + 16
	doc.SetFont("Helvetica", "", 6)
	doc.SetTextColor(255, 0, 0)
	doc.Text(labelX, ly, "Red line")
	doc.SetTextColor(0, 0, 0)
	doc.Text(labelX+doc.GetStringWidth("Red line"), ly, ": zero fuel")
	doc.Text(labelX, ly+3, "Black line: with fuel")
	doc.SetFont("Helvetica", "I", 6)
	doc.Text(labelX, ly+8, "Double check the chart against the POH before flight.")
}

// fmtArm prints an arm with up to three decimals, trailing zeros trimmed,
// so POH values like 106.805 survive while computed arms stay short.
func fmtArm(v float64) string {
	s := strings.TrimRight(fmt.Sprintf("%.3f", v), "0")
	s = strings.TrimRight(s, ".")
	return s + " cm"
}

// Compile-time assertion that PDF implements domain.Renderer.
var _ domain.Renderer = (*PDF)(nil)
