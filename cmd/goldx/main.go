package main

import (
	"os"

	"github.com/goldenacre/extensions/cmd/goldx/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
