// Package main is the entry point for the car-deal-finder server.
package main

import (
	"os"

	"github.com/donaldgifford/car-deal-finder/cmd/car-deal-finder/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
