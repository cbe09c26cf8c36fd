package usgs

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"
)

// Sentinel tokens the USGS uses in the discharge column to indicate that no
// measurement is available (equipment failure, ice cover, discontinued gauge)
var MISSING_SENTINELS = []string{"Eqp", "Ice", "Dis", "***"}

// Error returned when the structure of a daily-value file cannot be read.
// Unlike a missing discharge, which is tracked as a count, a ParseError is
// fatal for the station: the date index would be unusable
type ParseError struct {
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

// One daily observation. A NaN discharge means the value is missing,
// the quality flag is kept verbatim
type DailyRecord struct {
	Date      time.Time
	Discharge float64
	Quality   string
}

// A station's daily-value records, sorted ascending by unique date.
// MissingValues counts records with no usable discharge; Clip adds the
// records excluded from the analysis window to the same tally
type Table struct {
	AgencyCode    string
	SiteNumber    string
	Records       []DailyRecord
	MissingValues int
}

func dischargeIsMissing(value string) bool {
	return value == "" || slices.Contains(MISSING_SENTINELS, value)
}

// Reads a whitespace-delimited daily-value file with columns
// (agency_cd, site_no, date, discharge, quality). The first non-comment line
// is a header and is skipped, '#' lines are ignored. Discharge tokens that
// are sentinels or fail to parse become NaN and are counted as missing;
// a malformed date aborts with a ParseError
func ReadDailyRecords(reader io.Reader) (*Table, error) {
	table := Table{}

	scanner := bufio.NewScanner(reader)
	lineno := 0
	headerSkipped := false
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !headerSkipped {
			headerSkipped = true
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 3 {
			return nil, &ParseError{lineno, fmt.Sprintf("expected at least 3 columns, got %d", len(fields))}
		}

		date, err := time.Parse(time.DateOnly, fields[2])
		if err != nil {
			return nil, &ParseError{lineno, fmt.Sprintf("malformed date '%s'", fields[2])}
		}

		record := DailyRecord{Date: date, Discharge: math.NaN()}
		if len(fields) > 3 {
			if value := fields[3]; !dischargeIsMissing(value) {
				if discharge, err := strconv.ParseFloat(value, 64); err == nil {
					record.Discharge = discharge
				}
			}
		}
		if math.IsNaN(record.Discharge) {
			table.MissingValues++
		}
		if len(fields) > 4 {
			record.Quality = fields[4]
		}

		if len(table.Records) > 0 {
			prev := table.Records[len(table.Records)-1].Date
			if !date.After(prev) {
				return nil, &ParseError{lineno, fmt.Sprintf("date '%s' is not after '%s'",
					date.Format(time.DateOnly), prev.Format(time.DateOnly))}
			}
		}

		// Agency code and site number are constant per file, keep the first
		if table.AgencyCode == "" {
			table.AgencyCode = fields[0]
			table.SiteNumber = fields[1]
		}

		table.Records = append(table.Records, record)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return &table, nil
}

func ReadFile(filename string) (*Table, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return ReadDailyRecords(file)
}
