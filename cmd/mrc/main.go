package main

import (
	"os"

	"github.com/msto63/mRC/cmd/mrc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
