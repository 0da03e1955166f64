package render

import (
	"fmt"
	"math"

	"github.com/go-pdf/fpdf"

	"trimsheet/internal/domain"
)

// rangeMapper linearly maps a value from a data range onto a page range.
// The destination may be inverted, which is how weights map onto a page
// coordinate system whose y axis grows downward.
type rangeMapper struct {
	srcMin, srcMax float64
	dstMin, dstMax float64
}

func (m rangeMapper) at(v float64) float64 {
	return (v-m.srcMin)/(m.srcMax-m.srcMin)*(m.dstMax-m.dstMin) + m.dstMin
}

// chart draws the envelope polygon with the two loading points overlaid.
type chart struct {
	x, y, w, h float64 // plot area on the page, mm

	cog    rangeMapper
	weight rangeMapper
}

// newChart sizes the data ranges from the envelope vertices and both
// loading points, padded so out-of-envelope points stay visible.
func newChart(x, y, w, h float64, env []domain.EnvelopePoint, pts []chartPoint) chart {
	minC, maxC := env[0].CoGCM, env[0].CoGCM
	minW, maxW := env[0].WeightKG, env[0].WeightKG
	for _, v := range env[1:] {
		minC, maxC = math.Min(minC, v.CoGCM), math.Max(maxC, v.CoGCM)
		minW, maxW = math.Min(minW, v.WeightKG), math.Max(maxW, v.WeightKG)
	}
	for _, p := range pts {
		minC, maxC = math.Min(minC, p.cogCM), math.Max(maxC, p.cogCM)
		minW, maxW = math.Min(minW, p.weightKG), math.Max(maxW, p.weightKG)
	}
	padC := (maxC - minC) * 0.08
	padW := (maxW - minW) * 0.08

	return chart{
		x: x, y: y, w: w, h: h,
		cog:    rangeMapper{srcMin: minC - padC, srcMax: maxC + padC, dstMin: x, dstMax: x + w},
		weight: rangeMapper{srcMin: minW - padW, srcMax: maxW + padW, dstMin: y + h, dstMax: y},
	}
}

// chartPoint is one loading point with its line colour.
type chartPoint struct {
	cogCM    float64
	weightKG float64
	r, g, b  int
}

func (c chart) draw(pdf *fpdf.Fpdf, env []domain.EnvelopePoint, pts []chartPoint) {
	c.drawFrame(pdf)
	c.drawEnvelope(pdf, env)
	for _, p := range pts {
		c.drawPoint(pdf, p)
	}
	pdf.SetDrawColor(0, 0, 0)
}

func (c chart) drawFrame(pdf *fpdf.Fpdf) {
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.25)
	pdf.Rect(c.x, c.y, c.w, c.h, "D")

	pdf.SetFont("Helvetica", "", 7)

	// X ticks: CoG in cm.
	for _, t := range ticks(c.cog.srcMin, c.cog.srcMax, 6) {
		px := c.cog.at(t)
		pdf.Line(px, c.y+c.h, px, c.y+c.h+1.2)
		label := fmt.Sprintf("%g", t)
		pdf.Text(px-pdf.GetStringWidth(label)/2, c.y+c.h+4.5, label)
	}
	// Y ticks: weight in kg.
	for _, t := range ticks(c.weight.srcMin, c.weight.srcMax, 6) {
		py := c.weight.at(t)
		pdf.Line(c.x-1.2, py, c.x, py)
		label := fmt.Sprintf("%g", t)
		pdf.Text(c.x-2.2-pdf.GetStringWidth(label), py+1.2, label)
	}

	pdf.SetFont("Helvetica", "", 8)
	xTitle := "CoG (cm aft of datum)"
	pdf.Text(c.x+c.w/2-pdf.GetStringWidth(xTitle)/2, c.y+c.h+9.5, xTitle)
	pdf.Text(c.x-12, c.y-3, "Weight (kg)")
}

func (c chart) drawEnvelope(pdf *fpdf.Fpdf, env []domain.EnvelopePoint) {
	points := make([]fpdf.PointType, len(env))
	for i, v := range env {
		points[i] = fpdf.PointType{X: c.cog.at(v.CoGCM), Y: c.weight.at(v.WeightKG)}
	}
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.4)
	pdf.Polygon(points, "D")
}

// drawPoint marks a loading point as crosshair lines spanning the plot, the
// way the lines are ruled onto the paper chart.
func (c chart) drawPoint(pdf *fpdf.Fpdf, p chartPoint) {
	px := c.cog.at(p.cogCM)
	py := c.weight.at(p.weightKG)

	pdf.SetDrawColor(p.r, p.g, p.b)
	pdf.SetLineWidth(0.35)
	pdf.Line(px, c.y, px, c.y+c.h)
	pdf.Line(c.x, py, c.x+c.w, py)
}

// ticks returns round tick values covering [min, max] with roughly n steps.
func ticks(min, max float64, n int) []float64 {
	step := niceStep((max - min) / float64(n))
	var out []float64
	for t := math.Ceil(min/step) * step; t <= max+step/1e6; t += step {
		out = append(out, t)
	}
	return out
}

// niceStep rounds a raw step up to 1, 2 or 5 times a power of ten.
func niceStep(raw float64) float64 {
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	switch {
	case raw/mag <= 1:
		return mag
	case raw/mag <= 2:
		return 2 * mag
	case raw/mag <= 5:
		return 5 * mag
	default:
		return 10 * mag
	}
}
