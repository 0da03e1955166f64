package domain

// ProfileRegistry resolves aircraft profiles by registration.
type ProfileRegistry interface {
	ProfileByRegistration(reg string) (AircraftProfile, bool)
	Registrations() []string
}

// LoadsheetLoader reads a load sheet from disk and validates it against a
// profile's station table.
type LoadsheetLoader interface {
	LoadFile(path string) (Loadsheet, error)
	Validate(sheet Loadsheet, p AircraftProfile) error
}

// BalanceCalculator computes totals and centre of gravity for a loading.
type BalanceCalculator interface {
	Compute(p AircraftProfile, sheet Loadsheet) (BalanceResult, error)
	ComputeZeroFuel(p AircraftProfile, sheet Loadsheet) (BalanceResult, error)
}

// EnvelopeChecker tests a (CoG, weight) point against a profile's envelope.
type EnvelopeChecker interface {
	Check(p AircraftProfile, cogCM, weightKG float64) EnvelopeVerdict
}

// Renderer writes a report to the given path as a single artifact.
type Renderer interface {
	Render(r Report, path string) error
}

// ReportService runs the whole pipeline: load, compute, check, render.
type ReportService interface {
	// Check computes the report without writing anything.
	Check(sheetPath, registration string) (Report, error)
	// Generate additionally renders the trim sheet and returns its path.
	Generate(sheetPath, registration string) (Report, string, error)
}
