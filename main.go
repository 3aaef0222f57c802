package main

import (
	"os"

	"github.com/glottalab/glotta/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
