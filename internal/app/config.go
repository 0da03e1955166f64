package app

// Config holds runtime wiring options for building the app.
type Config struct {
	OutDir string // where rendered trim sheets land, e.g. the working directory
}
