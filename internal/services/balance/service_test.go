package balance_test

import (
	"errors"
	"math"
	"testing"

	"trimsheet/internal/domain"
	"trimsheet/internal/services/balance"
)

const eps = 1e-9

// bookProfile mirrors a worked example from a weighing report: empty weight
// 1400 at a recorded moment of 55000, single pilot station at arm 37.
func bookProfile() domain.AircraftProfile {
	return domain.AircraftProfile{
		Registration:    "N-TEST",
		EmptyWeightKG:   1400,
		EmptyMomentKGCM: 55000,
		Stations: []domain.Station{
			{ID: domain.StationFrontSeats, Label: "Front seats", ArmCM: 37},
			{ID: domain.StationFuel, Label: "Fuel", ArmCM: 48},
		},
		FuelDensityKGL: 0.71,
	}
}

func TestComputeWorkedExample(t *testing.T) {
	svc := balance.New()
	sheet := domain.Loadsheet{
		Registration: "N-TEST",
		Items:        []domain.LoadItem{{Station: domain.StationFrontSeats, Name: "Pilot", WeightKG: 170}},
	}

	res, err := svc.Compute(bookProfile(), sheet)
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	if res.TotalWeightKG != 1570 {
		t.Errorf("total weight: got %v, want 1570", res.TotalWeightKG)
	}
	if res.TotalMomentKGCM != 61290 {
		t.Errorf("total moment: got %v, want 61290", res.TotalMomentKGCM)
	}
	if want := 61290.0 / 1570.0; math.Abs(res.CoGCM-want) > eps {
		t.Errorf("CoG: got %v, want %v", res.CoGCM, want)
	}
	if math.Abs(res.CoGCM-39.04) > 0.01 {
		t.Errorf("CoG: got %v, want about 39.04", res.CoGCM)
	}
	if len(res.Lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(res.Lines))
	}
	if l := res.Lines[0]; l.Name != "Pilot" || l.MomentKGCM != 6290 {
		t.Errorf("unexpected line: %+v", l)
	}
}

func TestComputeEmptyLoad(t *testing.T) {
	svc := balance.New()

	res, err := svc.Compute(bookProfile(), domain.Loadsheet{Registration: "N-TEST"})
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	// With nothing loaded, CoG is the empty CoG.
	if want := 55000.0 / 1400.0; math.Abs(res.CoGCM-want) > eps {
		t.Errorf("CoG: got %v, want %v", res.CoGCM, want)
	}
	if len(res.Lines) != 0 {
		t.Errorf("expected no lines, got %+v", res.Lines)
	}
}

func TestComputeZeroTotalWeight(t *testing.T) {
	svc := balance.New()
	p := bookProfile()
	p.EmptyWeightKG = 0
	p.EmptyMomentKGCM = 0

	_, err := svc.Compute(p, domain.Loadsheet{Registration: "N-TEST"})
	if !errors.Is(err, domain.ErrZeroTotalWeight) {
		t.Fatalf("expected ErrZeroTotalWeight, got %v", err)
	}
}

func TestComputeUnknownStation(t *testing.T) {
	svc := balance.New()
	sheet := domain.Loadsheet{
		Registration: "N-TEST",
		Items:        []domain.LoadItem{{Station: "copilot2", Name: "Nobody", WeightKG: 70}},
	}

	_, err := svc.Compute(bookProfile(), sheet)
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestComputeOrderInvariant(t *testing.T) {
	svc := balance.New()
	p := bookProfile()
	items := []domain.LoadItem{
		{Station: domain.StationFrontSeats, Name: "Alice", WeightKG: 85.3},
		{Station: domain.StationFrontSeats, Name: "Bob", WeightKG: 74.1},
		{Station: domain.StationFrontSeats, Name: "Carol", WeightKG: 61.7},
	}
	reversed := []domain.LoadItem{items[2], items[1], items[0]}

	a, err := svc.Compute(p, domain.Loadsheet{Items: items, FuelLiters: 87})
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	b, err := svc.Compute(p, domain.Loadsheet{Items: reversed, FuelLiters: 87})
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	if math.Abs(a.TotalWeightKG-b.TotalWeightKG) > eps {
		t.Errorf("total weight depends on input order: %v vs %v", a.TotalWeightKG, b.TotalWeightKG)
	}
	if math.Abs(a.CoGCM-b.CoGCM) > eps {
		t.Errorf("CoG depends on input order: %v vs %v", a.CoGCM, b.CoGCM)
	}
}

func TestComputeTotalIsEmptyPlusEntries(t *testing.T) {
	svc := balance.New()
	p := bookProfile()
	sheet := domain.Loadsheet{
		Items: []domain.LoadItem{
			{Station: domain.StationFrontSeats, Name: "Alice", WeightKG: 85.3},
			{Station: domain.StationFrontSeats, Name: "Bob", WeightKG: 74.1},
		},
		FuelLiters: 100,
	}

	res, err := svc.Compute(p, sheet)
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	want := p.EmptyWeightKG + 85.3 + 74.1 + 100*p.FuelDensityKGL
	if math.Abs(res.TotalWeightKG-want) > eps {
		t.Errorf("total weight: got %v, want %v", res.TotalWeightKG, want)
	}
}

func TestFuelConversion(t *testing.T) {
	svc := balance.New()
	p := bookProfile()

	res, err := svc.Compute(p, domain.Loadsheet{FuelLiters: 100})
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	if len(res.Lines) != 1 {
		t.Fatalf("expected a fuel line, got %+v", res.Lines)
	}
	fuel := res.Lines[0]
	if fuel.Name != "Fuel" || math.Abs(fuel.WeightKG-71) > eps {
		t.Errorf("fuel line: got %+v, want 71 kg", fuel)
	}
	if math.Abs(fuel.MomentKGCM-71*48) > eps {
		t.Errorf("fuel moment: got %v, want %v", fuel.MomentKGCM, 71.0*48)
	}
}

func TestComputeZeroFuelExcludesFuel(t *testing.T) {
	svc := balance.New()
	p := bookProfile()
	sheet := domain.Loadsheet{
		Items:      []domain.LoadItem{{Station: domain.StationFrontSeats, Name: "Pilot", WeightKG: 80}},
		FuelLiters: 100,
	}

	withFuel, err := svc.Compute(p, sheet)
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	zeroFuel, err := svc.ComputeZeroFuel(p, sheet)
	if err != nil {
		t.Fatalf("compute zero fuel: %v", err)
	}
	if math.Abs(withFuel.TotalWeightKG-zeroFuel.TotalWeightKG-71) > eps {
		t.Errorf("zero-fuel weight should drop by 71 kg: %v vs %v",
			withFuel.TotalWeightKG, zeroFuel.TotalWeightKG)
	}
	for _, l := range zeroFuel.Lines {
		if l.Station == domain.StationFuel {
			t.Errorf("zero-fuel result still lists fuel: %+v", l)
		}
	}
}
