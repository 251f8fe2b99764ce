package main

import (
	"os"

	"github.com/engage-app/seedctl/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
