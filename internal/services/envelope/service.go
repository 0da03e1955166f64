package envelope

import (
	"math"

	"trimsheet/internal/domain"
)

// boundaryEps is the tolerance for treating a point as lying on an edge.
// Chart coordinates are on the order of 10^2..10^3, so this is far below
// anything a load sheet can distinguish.
const boundaryEps = 1e-9

// Service classifies a loading point against the certified envelope.
//
// The boundary rule is inclusive: a point on an envelope edge or vertex is
// in limits. That check runs before the ray cast, which keeps vertex hits
// consistent regardless of polygon winding or ray direction.
type Service struct{}

// New returns an envelope checker.
func New() *Service { return &Service{} }

// Check tests the (CoG, weight) point against the profile's envelope. A
// profile without an envelope (fewer than three vertices) is reported as not
// evaluated, and the caller must skip the chart section.
func (s *Service) Check(p domain.AircraftProfile, cogCM, weightKG float64) domain.EnvelopeVerdict {
	if len(p.Envelope) < 3 {
		return domain.EnvelopeVerdict{}
	}

	pt := point{x: cogCM, y: weightKG}
	poly := make([]point, len(p.Envelope))
	for i, v := range p.Envelope {
		poly[i] = point{x: v.CoGCM, y: v.WeightKG}
	}

	dist := nearestEdgeDistance(pt, poly)
	inside := dist <= boundaryEps || pointInPolygon(pt, poly)
	return domain.EnvelopeVerdict{
		Evaluated:        true,
		Inside:           inside,
		BoundaryDistance: dist,
	}
}

type point struct {
	x, y float64
}

// pointInPolygon is a standard even-odd ray cast, horizontal ray toward +x.
// The half-open comparison on y means edges are counted exactly once when
// the ray passes through a vertex.
func pointInPolygon(pt point, poly []point) bool {
	inside := false
	for i, j := 0, len(poly)-1; i < len(poly); j, i = i, i+1 {
		a, b := poly[i], poly[j]
		if (a.y > pt.y) == (b.y > pt.y) {
			continue
		}
		cross := a.x + (pt.y-a.y)*(b.x-a.x)/(b.y-a.y)
		if pt.x < cross {
			inside = !inside
		}
	}
	return inside
}

// nearestEdgeDistance returns the smallest distance from pt to any polygon
// edge, in chart coordinates.
func nearestEdgeDistance(pt point, poly []point) float64 {
	min := math.Inf(1)
	for i, j := 0, len(poly)-1; i < len(poly); j, i = i, i+1 {
		if d := segmentDistance(pt, poly[j], poly[i]); d < min {
			min = d
		}
	}
	return min
}

// segmentDistance returns the distance from pt to the segment ab.
func segmentDistance(pt, a, b point) float64 {
	abx, aby := b.x-a.x, b.y-a.y
	length2 := abx*abx + aby*aby

	t := 0.0
	if length2 > 0 {
		t = ((pt.x-a.x)*abx + (pt.y-a.y)*aby) / length2
		t = math.Max(0, math.Min(1, t))
	}
	return math.Hypot(pt.x-(a.x+t*abx), pt.y-(a.y+t*aby))
}

// Compile-time assertion that Service implements domain.EnvelopeChecker.
var _ domain.EnvelopeChecker = (*Service)(nil)
