// flightcheck - Flight Check Record Validator
//
// flightcheck validates "<time> <flight> <computer>" records one at a time,
// interactively, in batches from files, or over HTTP.
package main

import (
	"os"

	"github.com/ccollicutt/flightcheck/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
