package main

import (
	"os"

	"trimsheet/cmd/trimsheet/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
