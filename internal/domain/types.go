package domain

import "time"

// StationID identifies a loading station on the airframe.
type StationID string

// Stations of the Cessna 172S, per the POH loading arrangements diagram.
const (
	StationFrontSeats   StationID = "front_seats"
	StationBackSeats    StationID = "back_seats"
	StationFrontBaggage StationID = "front_baggage"
	StationBackBaggage  StationID = "back_baggage"
	StationFuel         StationID = "fuel"
)

// Station is a named loading point with its arm aft of the reference datum.
// Arms come from the aircraft's type data and are never user-editable.
type Station struct {
	ID    StationID
	Label string
	ArmCM float64
}

// EnvelopePoint is one vertex of the certified CoG envelope, in chart
// coordinates: CoG in centimetres aft of datum, weight in kilograms.
type EnvelopePoint struct {
	CoGCM    float64
	WeightKG float64
}

// AircraftProfile describes one airframe: its weighing-report constants, the
// station arm table, and (when the type publishes one) the CoG envelope.
// Profiles are defined statically and treated as immutable after lookup.
type AircraftProfile struct {
	Registration string
	Model        string

	// From the most recent weighing report. The moment is recorded there
	// as its own constant rather than recomputed from weight and arm.
	EmptyWeightKG   float64
	EmptyArmCM      float64
	EmptyMomentKGCM float64
	WeighedAt       time.Time

	Stations       []Station
	FuelDensityKGL float64
	MaxTakeoffKG   float64

	// Envelope is the normal-category envelope polygon; nil when the type
	// has no published chart, in which case the check is skipped.
	Envelope []EnvelopePoint
}

// StationByID returns the station definition for id.
func (p AircraftProfile) StationByID(id StationID) (Station, bool) {
	for _, st := range p.Stations {
		if st.ID == id {
			return st, true
		}
	}
	return Station{}, false
}

// LoadItem is one named weight placed at a station.
type LoadItem struct {
	Station  StationID
	Name     string
	WeightKG float64
}

// Loadsheet is the validated per-flight input: who and what sits where,
// plus fuel uplift in litres.
type Loadsheet struct {
	Registration string
	Items        []LoadItem
	FuelLiters   float64
}

// BalanceLine is one row of the calculation table.
type BalanceLine struct {
	Station    StationID
	Label      string
	Name       string
	WeightKG   float64
	ArmCM      float64
	MomentKGCM float64
}

// BalanceResult holds the computed totals and the per-item breakdown.
// Recomputed fresh each run, never persisted.
type BalanceResult struct {
	TotalWeightKG   float64
	TotalMomentKGCM float64
	CoGCM           float64
	Lines           []BalanceLine
}

// EnvelopeVerdict reports where the loading point sits relative to the
// envelope. Evaluated is false when the profile defines no envelope; the
// renderer must then omit the chart section entirely.
type EnvelopeVerdict struct {
	Evaluated bool
	Inside    bool

	// BoundaryDistance is the distance from the point to the nearest
	// envelope edge, in chart coordinates (cm, kg mixed axes).
	BoundaryDistance float64
}

// Report bundles everything the renderer needs for one trim sheet.
type Report struct {
	Profile     AircraftProfile
	Sheet       Loadsheet
	WithFuel    BalanceResult
	ZeroFuel    BalanceResult
	Verdict     EnvelopeVerdict
	GeneratedAt time.Time
}
