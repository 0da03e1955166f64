package app

import "trimsheet/internal/domain"

// App bundles the services the CLI commands run against.
type App struct {
	Fleet   domain.ProfileRegistry
	Reports domain.ReportService
}

// New constructs the app context from already-wired services.
func New(fleet domain.ProfileRegistry, reports domain.ReportService) *App {
	return &App{Fleet: fleet, Reports: reports}
}
