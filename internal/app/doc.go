// Package app wires stores, services and the renderer into the application
// context used by the CLI commands.
package app
