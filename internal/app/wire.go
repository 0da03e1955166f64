package app

import (
	"trimsheet/internal/fleet"
	"trimsheet/internal/loadsheet"
	"trimsheet/internal/render"
	balancesvc "trimsheet/internal/services/balance"
	envelopesvc "trimsheet/internal/services/envelope"
	reportsvc "trimsheet/internal/services/report"
)

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*App, error) {
	registry := fleet.NewRegistry()
	loader := loadsheet.New()
	calc := balancesvc.New()
	checker := envelopesvc.New()
	renderer := render.NewPDF()

	reports := reportsvc.New(registry, loader, calc, checker, renderer, cfg.OutDir)

	return New(registry, reports), nil
}
