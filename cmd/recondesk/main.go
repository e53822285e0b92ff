package main

import (
	"os"

	"github.com/recondesk-dev/recondesk/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
