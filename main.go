package main

import (
	"os"

	"github.com/migrasafe/migrasafe/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
