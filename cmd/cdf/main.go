// Package main is the entry point for the cdf CLI client.
package main

import (
	"github.com/donaldgifford/car-deal-finder/cmd/cdf/cmd"
)

func main() {
	cmd.Execute()
}
