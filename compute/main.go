package compute

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/rickb777/period"

	"flowstats/report"
	"flowstats/usgs"
	"flowstats/utils"
)

// Analysis window of this pipeline. Fixed policy: every station is reduced
// to the same 50 water years so that summaries are comparable across gauges
const (
	ANALYSIS_BEGIN = "1969-10-01"
	ANALYSIS_END   = "2019-09-30"
)

type Config struct {
	Verbose  bool     `arg:"-v" help:"Increase verbosity level"`
	DataDir  string   `arg:"-d,--data" default:"." help:"Directory containing the station daily-value files"`
	OutDir   string   `arg:"-o,--out" default:"." help:"Directory the summary tables will be written to"`
	Catalog  string   `arg:"-c,--catalog" help:"Optional CSV catalog of stations (name,site_no,path) replacing the built-in one"`
	Stations []string `arg:"-s" help:"Optional space separated list of station names"`
	WyOffset string   `arg:"--wy-offset" default:"P9M" help:"ISO-8601 offset of the water-year start from January 1 (P9M = October, the USGS convention)"`
}

func (Config) Description() string {
	return `Compute averaged water-year and monthly streamflow metrics for each station
and write the stacked summaries as CSV and TSV tables.`
}

func (config *Config) Execute() {
	catalog := usgs.Init()
	if config.Catalog != "" {
		var err error
		catalog, err = usgs.LoadCatalog(config.Catalog)
		if err != nil {
			os.Exit(1)
		}
	}

	startMonth, err := waterYearStartMonth(config.WyOffset)
	if err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}

	span := analysisWindow()

	names := utils.FilterSlice(config.Stations, catalog.Names(), "Station '%s' not present in the catalog, skipping")

	utils.SetLogFile("flowstats", "compute")
	slog.Info(fmt.Sprintf("Computing metrics for %v stations, window %s", len(names), span.String()))

	results := make(map[string]*Result, len(names))
	var mutex sync.Mutex
	var wg sync.WaitGroup

	bar := utils.NewBar(len(names), "Stations")
	bar.RenderBlank()
	for _, name := range names {
		name := name
		station := catalog.Stations[name]

		wg.Add(1)
		go func() {
			defer wg.Done()
			defer bar.Add(1)

			result, err := computeStation(station, config.DataDir, span, startMonth)
			if err != nil {
				// The station is left out of the summaries, the run goes on
				slog.Error(fmt.Sprintf("%s: %s", station.Name, err))
				return
			}

			mutex.Lock()
			results[name] = result
			mutex.Unlock()
		}()
	}
	wg.Wait()

	// Stack in catalog order regardless of completion order
	var annual []*report.AnnualSummary
	var monthly []*report.MonthlySummary
	for _, name := range names {
		result, ok := results[name]
		if !ok {
			continue
		}

		if config.Verbose {
			fmt.Printf("%s (%s): %v missing or excluded values\n",
				result.Station, result.SiteNumber, result.MissingValues)
		}

		annual = append(annual, &report.AnnualSummary{
			Station:       result.Station,
			AnnualMetrics: result.Annual,
		})
		for _, avg := range result.Monthly {
			monthly = append(monthly, &report.MonthlySummary{
				Station:        result.Station,
				Month:          int(avg.Month),
				MonthlyMetrics: avg.MonthlyMetrics,
			})
		}
	}

	if err := report.WriteAnnual(annual, config.OutDir); err != nil {
		slog.Error("Could not write annual summaries: " + err.Error())
	}
	if err := report.WriteMonthly(monthly, config.OutDir); err != nil {
		slog.Error("Could not write monthly summaries: " + err.Error())
	}

	log.SetOutput(os.Stdout)
	fmt.Printf("Done! Summaries for %v/%v stations written to %s\n", len(annual), len(names), config.OutDir)
}

// Parses the water-year offset and converts it to a start month.
// Only whole-month offsets make sense for calendar bucketing
func waterYearStartMonth(offset string) (time.Month, error) {
	p, err := period.Parse(offset)
	if err != nil {
		return 0, err
	}

	months := p.Months()
	if p.Years() != 0 || p.Weeks() != 0 || p.Days() != 0 ||
		p.Hours() != 0 || p.Minutes() != 0 || p.Seconds() != 0 ||
		months < 0 || months > 11 {
		return 0, fmt.Errorf("water-year offset must be a whole number of months below one year, got '%s'", offset)
	}

	return time.January + time.Month(months), nil
}

func analysisWindow() utils.TimeSpan {
	begin, _ := time.Parse(time.DateOnly, ANALYSIS_BEGIN)
	end, _ := time.Parse(time.DateOnly, ANALYSIS_END)
	return utils.TimeSpan{From: begin, To: end}
}
