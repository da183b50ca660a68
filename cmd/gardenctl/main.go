package main

import (
	"os"

	"github.com/osse101/HealingGarden_Go/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
