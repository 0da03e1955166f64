package fleet

import (
	"time"

	"trimsheet/internal/domain"
)

// Conversion constants.
const (
	in2cm = 2.54
	// Density of 100LL avgas, kg per litre.
	fuel100LLDensity = 0.71
)

// c172sStations is the C172S loading arrangement, arms from the POH
// (inches aft of datum, converted to centimetres).
var c172sStations = []domain.Station{
	{ID: domain.StationFrontSeats, Label: "Front seats", ArmCM: 37 * in2cm},
	{ID: domain.StationBackSeats, Label: "Back seats", ArmCM: 73 * in2cm},
	{ID: domain.StationFrontBaggage, Label: "Front baggage", ArmCM: 95 * in2cm},
	{ID: domain.StationBackBaggage, Label: "Back baggage", ArmCM: 123 * in2cm},
	{ID: domain.StationFuel, Label: "Fuel", ArmCM: 48 * in2cm},
}

// c172sEnvelope is the normal-category envelope from the POH centre of
// gravity limits chart, converted to (cm, kg). Vertices run clockwise from
// the forward lower corner; the forward limit slopes aft above 884.5 kg.
var c172sEnvelope = []domain.EnvelopePoint{
	{CoGCM: 88.9, WeightKG: 680.4},
	{CoGCM: 88.9, WeightKG: 884.5},
	{CoGCM: 104.1, WeightKG: 1156.7},
	{CoGCM: 120.1, WeightKG: 1156.7},
	{CoGCM: 120.1, WeightKG: 680.4},
}

// profiles holds the supported airframes. Empty weight, arm, and moment are
// taken verbatim from each aircraft's weighing report.
var profiles = []domain.AircraftProfile{
	{
		Registration:    "D-EXAV",
		Model:           "Cessna 172S",
		EmptyWeightKG:   749.00,
		EmptyArmCM:      106.805,
		EmptyMomentKGCM: 79997.00,
		WeighedAt:       time.Date(2022, time.May, 10, 0, 0, 0, 0, time.UTC),
		Stations:        c172sStations,
		FuelDensityKGL:  fuel100LLDensity,
		MaxTakeoffKG:    1156.7,
		Envelope:        c172sEnvelope,
	},
	{
		Registration:    "D-EXBS",
		Model:           "Cessna 172S",
		EmptyWeightKG:   773.16,
		EmptyArmCM:      101.62,
		EmptyMomentKGCM: 78572.54,
		WeighedAt:       time.Date(2017, time.May, 18, 0, 0, 0, 0, time.UTC),
		Stations:        c172sStations,
		FuelDensityKGL:  fuel100LLDensity,
		MaxTakeoffKG:    1156.7,
		Envelope:        c172sEnvelope,
	},
}

// Registry resolves aircraft profiles by registration.
type Registry struct{}

// NewRegistry returns the registry of supported airframes.
func NewRegistry() *Registry { return &Registry{} }

// ProfileByRegistration returns a copy of the profile for reg. The copy's
// slices are detached so callers cannot mutate the registry.
func (r *Registry) ProfileByRegistration(reg string) (domain.AircraftProfile, bool) {
	for _, p := range profiles {
		if p.Registration == reg {
			p.Stations = append([]domain.Station(nil), p.Stations...)
			p.Envelope = append([]domain.EnvelopePoint(nil), p.Envelope...)
			return p, true
		}
	}
	return domain.AircraftProfile{}, false
}

// Registrations lists the supported registrations in definition order.
func (r *Registry) Registrations() []string {
	regs := make([]string, 0, len(profiles))
	for _, p := range profiles {
		regs = append(regs, p.Registration)
	}
	return regs
}

// Compile-time assertion that Registry implements domain.ProfileRegistry.
var _ domain.ProfileRegistry = (*Registry)(nil)
