package fleet_test

import (
	"math"
	"testing"

	"trimsheet/internal/domain"
	"trimsheet/internal/fleet"
)

func TestProfileByRegistration(t *testing.T) {
	r := fleet.NewRegistry()

	p, ok := r.ProfileByRegistration("D-EXAV")
	if !ok {
		t.Fatalf("D-EXAV not found")
	}
	if p.Model != "Cessna 172S" {
		t.Errorf("model: got %q", p.Model)
	}
	if p.EmptyWeightKG != 749.00 || p.EmptyArmCM != 106.805 || p.EmptyMomentKGCM != 79997.00 {
		t.Errorf("unexpected weighing constants: %+v", p)
	}

	p, ok = r.ProfileByRegistration("D-EXBS")
	if !ok {
		t.Fatalf("D-EXBS not found")
	}
	if p.EmptyWeightKG != 773.16 || p.EmptyArmCM != 101.62 || p.EmptyMomentKGCM != 78572.54 {
		t.Errorf("unexpected weighing constants: %+v", p)
	}

	if _, ok := r.ProfileByRegistration("D-NOPE"); ok {
		t.Fatalf("unknown registration should not resolve")
	}
}

func TestStationArmsMatchPOH(t *testing.T) {
	r := fleet.NewRegistry()
	p, _ := r.ProfileByRegistration("D-EXAV")

	// POH arms are in inches aft of datum; profiles carry centimetres.
	wantInches := map[domain.StationID]float64{
		domain.StationFrontSeats:   37,
		domain.StationBackSeats:    73,
		domain.StationFrontBaggage: 95,
		domain.StationBackBaggage:  123,
		domain.StationFuel:         48,
	}
	if len(p.Stations) != len(wantInches) {
		t.Fatalf("expected %d stations, got %d", len(wantInches), len(p.Stations))
	}
	for _, st := range p.Stations {
		in, ok := wantInches[st.ID]
		if !ok {
			t.Fatalf("unexpected station %q", st.ID)
		}
		if want := in * 2.54; math.Abs(st.ArmCM-want) > 1e-12 {
			t.Errorf("%s: arm %v, want %v", st.ID, st.ArmCM, want)
		}
	}
}

func TestLookupReturnsDetachedCopy(t *testing.T) {
	r := fleet.NewRegistry()

	p, _ := r.ProfileByRegistration("D-EXAV")
	p.Stations[0].ArmCM = -1
	p.Envelope[0].WeightKG = -1

	again, _ := r.ProfileByRegistration("D-EXAV")
	if again.Stations[0].ArmCM == -1 {
		t.Fatalf("station table was mutated through a lookup copy")
	}
	if again.Envelope[0].WeightKG == -1 {
		t.Fatalf("envelope was mutated through a lookup copy")
	}
}

func TestRegistrations(t *testing.T) {
	r := fleet.NewRegistry()
	regs := r.Registrations()
	if len(regs) != 2 || regs[0] != "D-EXAV" || regs[1] != "D-EXBS" {
		t.Fatalf("unexpected registrations: %v", regs)
	}
}

func TestEnvelopeDefined(t *testing.T) {
	r := fleet.NewRegistry()
	for _, reg := range r.Registrations() {
		p, _ := r.ProfileByRegistration(reg)
		if len(p.Envelope) < 3 {
			t.Errorf("%s: envelope should be a polygon, got %d vertices", reg, len(p.Envelope))
		}
	}
}
