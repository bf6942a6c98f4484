// gardenplot - Garden Layout Planner
//
// A command line tool for planning a home garden: it assigns plants to
// sunlight zones under spacing and companion-planting constraints and
// exports the resulting plan as PDF, XLSX, DXF or plant-stake labels.
//
// Build:
//   go build -o gardenplot ./cmd/gardenplot

package main

import (
	"fmt"
	"os"

	"github.com/piwi3910/GardenPlot/internal/cli"
)

var version = "dev"

func main() {
	cli.SetVersion(version)

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}
