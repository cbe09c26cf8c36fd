package main

import (
	"fmt"
	"log"
	"os"

	"github.com/alexflint/go-arg"

	"flowstats/archive"
	"flowstats/compute"
)

type CmdArgs struct {
	Compute *compute.Config `arg:"subcommand:compute" help:"Compute averaged streamflow metrics from daily-value files"`
	Archive *archive.Config `arg:"subcommand:archive" help:"Load computed summary tables into Postgres"`
}

func (CmdArgs) Description() string {
	return "Descriptive hydrological statistics for USGS daily streamflow records."
}

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	var args CmdArgs
	parser := arg.MustParse(&args)

	switch {
	case args.Compute != nil:
		args.Compute.Execute()
	case args.Archive != nil:
		args.Archive.Execute()
	default:
		fmt.Println("Error: passing a subcommand is required.")
		fmt.Println()
		parser.WriteHelp(os.Stdout)
	}
}
