package report

import (
	"fmt"
	"path/filepath"
	"time"

	"trimsheet/internal/domain"
)

// Service runs the trim sheet pipeline: load sheet in, profile lookup,
// balance computation, envelope check, and finally the rendered artifact.
type Service struct {
	fleet    domain.ProfileRegistry
	loader   domain.LoadsheetLoader
	calc     domain.BalanceCalculator
	checker  domain.EnvelopeChecker
	renderer domain.Renderer

	outDir string
	now    func() time.Time
}

// New wires the pipeline. Artifacts are written into outDir.
func New(
	fleet domain.ProfileRegistry,
	loader domain.LoadsheetLoader,
	calc domain.BalanceCalculator,
	checker domain.EnvelopeChecker,
	renderer domain.Renderer,
	outDir string,
) *Service {
	return &Service{
		fleet:    fleet,
		loader:   loader,
		calc:     calc,
		checker:  checker,
		renderer: renderer,
		outDir:   outDir,
		now:      time.Now,
	}
}

// Check computes the full report without writing anything. registration, if
// non-empty, overrides the aircraft named in the sheet.
func (s *Service) Check(sheetPath, registration string) (domain.Report, error) {
	sheet, err := s.loader.LoadFile(sheetPath)
	if err != nil {
		return domain.Report{}, err
	}
	if registration != "" {
		sheet.Registration = registration
	}

	profile, ok := s.fleet.ProfileByRegistration(sheet.Registration)
	if !ok {
		return domain.Report{}, fmt.Errorf("%w: %q", domain.ErrUnknownAircraft, sheet.Registration)
	}
	if err := s.loader.Validate(sheet, profile); err != nil {
		return domain.Report{}, err
	}

	withFuel, err := s.calc.Compute(profile, sheet)
	if err != nil {
		return domain.Report{}, err
	}
	zeroFuel, err := s.calc.ComputeZeroFuel(profile, sheet)
	if err != nil {
		return domain.Report{}, err
	}

	// The verdict is taken on the with-fuel point; the zero-fuel point is
	// informational and only drawn on the chart.
	verdict := s.checker.Check(profile, withFuel.CoGCM, withFuel.TotalWeightKG)

	return domain.Report{
		Profile:     profile,
		Sheet:       sheet,
		WithFuel:    withFuel,
		ZeroFuel:    zeroFuel,
		Verdict:     verdict,
		GeneratedAt: s.now(),
	}, nil
}

// Generate runs Check and renders the trim sheet, returning the artifact
// path. Nothing is written when any earlier stage fails.
func (s *Service) Generate(sheetPath, registration string) (domain.Report, string, error) {
	r, err := s.Check(sheetPath, registration)
	if err != nil {
		return domain.Report{}, "", err
	}
	path := filepath.Join(s.outDir, ArtifactName(r))
	if err := s.renderer.Render(r, path); err != nil {
		return domain.Report{}, "", err
	}
	return r, path, nil
}

// ArtifactName derives the deterministic output name, e.g.
// 260824_D-EXAV_trimsheet.pdf. A rerun on the same day overwrites.
func ArtifactName(r domain.Report) string {
	return fmt.Sprintf("%s_%s_trimsheet.pdf", r.GeneratedAt.Format("060102"), r.Profile.Registration)
}

// Compile-time assertion that Service implements domain.ReportService.
var _ domain.ReportService = (*Service)(nil)
