package balance

import (
	"fmt"

	"trimsheet/internal/domain"
)

// Service computes weight-and-balance totals. It is a pure calculator:
// deterministic, no side effects, no state.
type Service struct{}

// New returns a balance calculator.
func New() *Service { return &Service{} }

// Compute produces the full loading including fuel.
func (s *Service) Compute(p domain.AircraftProfile, sheet domain.Loadsheet) (domain.BalanceResult, error) {
	return s.compute(p, sheet, true)
}

// ComputeZeroFuel produces the same loading with the fuel station excluded,
// for the zero-fuel point on the envelope chart.
func (s *Service) ComputeZeroFuel(p domain.AircraftProfile, sheet domain.Loadsheet) (domain.BalanceResult, error) {
	return s.compute(p, sheet, false)
}

func (s *Service) compute(p domain.AircraftProfile, sheet domain.Loadsheet, withFuel bool) (domain.BalanceResult, error) {
	for _, item := range sheet.Items {
		if _, ok := p.StationByID(item.Station); !ok {
			return domain.BalanceResult{}, &domain.ValidationError{
				Field:  fmt.Sprintf("stations.%s", item.Station),
				Reason: fmt.Sprintf("no such station on %s", p.Registration),
			}
		}
	}

	res := domain.BalanceResult{
		TotalWeightKG:   p.EmptyWeightKG,
		TotalMomentKGCM: p.EmptyMomentKGCM,
	}

	// Walk stations in profile order so summation order is fixed and the
	// totals do not depend on how the load sheet was written.
	for _, st := range p.Stations {
		if st.ID == domain.StationFuel {
			if !withFuel || sheet.FuelLiters == 0 {
				continue
			}
			weight := sheet.FuelLiters * p.FuelDensityKGL
			res.Lines = append(res.Lines, domain.BalanceLine{
				Station:    st.ID,
				Label:      st.Label,
				Name:       "Fuel",
				WeightKG:   weight,
				ArmCM:      st.ArmCM,
				MomentKGCM: weight * st.ArmCM,
			})
			res.TotalWeightKG += weight
			res.TotalMomentKGCM += weight * st.ArmCM
			continue
		}
		for _, item := range sheet.Items {
			if item.Station != st.ID {
				continue
			}
			res.Lines = append(res.Lines, domain.BalanceLine{
				Station:    st.ID,
				Label:      st.Label,
				Name:       item.Name,
				WeightKG:   item.WeightKG,
				ArmCM:      st.ArmCM,
				MomentKGCM: item.WeightKG * st.ArmCM,
			})
			res.TotalWeightKG += item.WeightKG
			res.TotalMomentKGCM += item.WeightKG * st.ArmCM
		}
	}

	if res.TotalWeightKG == 0 {
		return domain.BalanceResult{}, domain.ErrZeroTotalWeight
	}
	res.CoGCM = res.TotalMomentKGCM / res.TotalWeightKG
	return res, nil
}

// Compile-time assertion that Service implements domain.BalanceCalculator.
var _ domain.BalanceCalculator = (*Service)(nil)
