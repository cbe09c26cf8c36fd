package usgs

import (
	"log/slog"
	"os"
	"slices"

	"github.com/gocarina/gocsv"
)

// A gauging station and the location of its daily-value file
type Station struct {
	Name       string `csv:"name"`
	SiteNumber string `csv:"site_no"`
	Path       string `csv:"path"`
}

// Map of all stations to process, keyed by the short station name used in
// log files and in the station column of the output tables
type Catalog struct {
	Stations map[string]*Station
}

// Creates the default catalog with the two Indiana gauges this pipeline was
// originally set up for
func Init() *Catalog {
	return &Catalog{map[string]*Station{
		"Wildcat": {
			Name:       "Wildcat",
			SiteNumber: "03335000",
			Path:       "WildcatCreek_Discharge_03335000_19540601-20200315.txt",
		},
		"Tippe": {
			Name:       "Tippe",
			SiteNumber: "03331500",
			Path:       "TippecanoeRiver_Discharge_03331500_19431001-20200315.txt",
		},
	}}
}

// Loads a station catalog from a CSV file with (name, site_no, path) columns,
// replacing the default mapping
func LoadCatalog(filename string) (*Catalog, error) {
	csvfile, err := os.Open(filename)
	if err != nil {
		slog.Error(err.Error())
		return nil, err
	}
	defer csvfile.Close()

	var rows []*Station
	if err := gocsv.UnmarshalFile(csvfile, &rows); err != nil {
		slog.Error(err.Error())
		return nil, err
	}

	catalog := &Catalog{make(map[string]*Station, len(rows))}
	for _, row := range rows {
		catalog.Stations[row.Name] = row
	}
	return catalog, nil
}

// Returns the station names in catalog order, i.e. sorted, so that runs are
// reproducible and the output tables stack stations deterministically
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.Stations))
	for name := range c.Stations {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
