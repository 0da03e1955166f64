package loadsheet

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"

	"trimsheet/internal/domain"
)

// document is the on-disk load sheet schema.
//
//	aircraft: D-EXAV
//	stations:
//	  front_seats:
//	    alice: 85
//	    bob: 74
//	  back_baggage:
//	    flight bag: 6
//	fuel_liters: 120
type document struct {
	Aircraft   string                        `yaml:"aircraft"`
	Stations   map[string]map[string]float64 `yaml:"stations"`
	FuelLiters float64                       `yaml:"fuel_liters"`
}

// Loader parses and validates load sheets.
type Loader struct{}

// New returns a load sheet loader.
func New() *Loader { return &Loader{} }

// Parse decodes a load sheet payload. Item names are normalised the way they
// appear on the printed sheet, and items are sorted by station then name so
// output is deterministic regardless of YAML map order.
func (l *Loader) Parse(data []byte) (domain.Loadsheet, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return domain.Loadsheet{}, &domain.ValidationError{Field: "document", Reason: "load sheet is empty"}
	}
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return domain.Loadsheet{}, &domain.ValidationError{Field: "document", Reason: fmt.Sprintf("decode: %v", err)}
	}
	if strings.TrimSpace(doc.Aircraft) == "" {
		return domain.Loadsheet{}, &domain.ValidationError{Field: "aircraft", Reason: "registration is required"}
	}
	if doc.FuelLiters < 0 {
		return domain.Loadsheet{}, &domain.ValidationError{
			Field:  "fuel_liters",
			Reason: fmt.Sprintf("fuel must not be negative, got %v", doc.FuelLiters),
		}
	}

	sheet := domain.Loadsheet{
		Registration: strings.TrimSpace(doc.Aircraft),
		FuelLiters:   doc.FuelLiters,
	}
	for station, loads := range doc.Stations {
		for name, weight := range loads {
			if weight < 0 {
				return domain.Loadsheet{}, &domain.ValidationError{
					Field:  fmt.Sprintf("stations.%s.%s", station, name),
					Reason: fmt.Sprintf("weight must not be negative, got %v", weight),
				}
			}
			sheet.Items = append(sheet.Items, domain.LoadItem{
				Station:  domain.StationID(station),
				Name:     capitalize(name),
				WeightKG: weight,
			})
		}
	}
	sort.Slice(sheet.Items, func(i, j int) bool {
		a, b := sheet.Items[i], sheet.Items[j]
		if a.Station != b.Station {
			return a.Station < b.Station
		}
		return a.Name < b.Name
	})
	return sheet, nil
}

// LoadFile reads a load sheet from disk.
func (l *Loader) LoadFile(path string) (domain.Loadsheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Loadsheet{}, fmt.Errorf("loadsheet: read %s: %w", path, err)
	}
	sheet, err := l.Parse(data)
	if err != nil {
		return domain.Loadsheet{}, fmt.Errorf("loadsheet: %s: %w", path, err)
	}
	return sheet, nil
}

// Validate checks every referenced station against the profile's arm table.
// The fuel station is addressed through fuel_liters, not the station map.
func (l *Loader) Validate(sheet domain.Loadsheet, p domain.AircraftProfile) error {
	for _, item := range sheet.Items {
		if item.Station == domain.StationFuel {
			return &domain.ValidationError{
				Field:  fmt.Sprintf("stations.%s", item.Station),
				Reason: "fuel is loaded via fuel_liters",
			}
		}
		if _, ok := p.StationByID(item.Station); !ok {
			return &domain.ValidationError{
				Field:  fmt.Sprintf("stations.%s", item.Station),
				Reason: fmt.Sprintf("no such station on %s", p.Registration),
			}
		}
	}
	return nil
}

// capitalize normalises an item name: first rune upper, rest lower.
func capitalize(s string) string {
	s = strings.TrimSpace(strings.ToLower(s))
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// Compile-time assertion that Loader implements domain.LoadsheetLoader.
var _ domain.LoadsheetLoader = (*Loader)(nil)
