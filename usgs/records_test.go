package usgs

import (
	"errors"
	"math"
	"strings"
	"testing"
)

const sampleFile = `# U.S. Geological Survey
# Daily discharge, cubic feet per second
agency_cd	site_no	datetime	discharge	qualifier
USGS 03335000 1969-10-01 155 A
USGS 03335000 1969-10-02 Eqp A
# mid-file comment
USGS 03335000 1969-10-03 170 A:e
USGS 03335000 1969-10-04 12x4 A
USGS 03335000 1969-10-05
`

func TestReadDailyRecords(t *testing.T) {
	table, err := ReadDailyRecords(strings.NewReader(sampleFile))
	if err != nil {
		t.Fatal(err)
	}

	if table.AgencyCode != "USGS" || table.SiteNumber != "03335000" {
		t.Errorf("Got station %s %s, wanted USGS 03335000", table.AgencyCode, table.SiteNumber)
	}

	if len(table.Records) != 5 {
		t.Fatalf("Got %v records, wanted 5", len(table.Records))
	}

	// Sentinel, failed numeric parse, and absent field are all missing
	if table.MissingValues != 3 {
		t.Errorf("Got %v missing values, wanted 3", table.MissingValues)
	}

	if v := table.Records[0].Discharge; v != 155 {
		t.Errorf("Got discharge %v, wanted 155", v)
	}
	if !math.IsNaN(table.Records[1].Discharge) {
		t.Errorf("Sentinel 'Eqp' should become NaN, got %v", table.Records[1].Discharge)
	}
	if q := table.Records[2].Quality; q != "A:e" {
		t.Errorf("Got quality '%s', wanted 'A:e'", q)
	}
	if !math.IsNaN(table.Records[3].Discharge) {
		t.Errorf("Unparsable discharge should become NaN, got %v", table.Records[3].Discharge)
	}
}

func TestReadDailyRecordsParseErrors(t *testing.T) {
	cases := []struct {
		tag  string
		file string
	}{
		{
			tag:  "malformed date",
			file: "header\nUSGS 03335000 10/01/1969 155 A\n",
		},
		{
			tag:  "missing date column",
			file: "header\nUSGS 03335000\n",
		},
		{
			tag:  "duplicate date",
			file: "header\nUSGS 03335000 1969-10-01 155 A\nUSGS 03335000 1969-10-01 160 A\n",
		},
		{
			tag:  "dates out of order",
			file: "header\nUSGS 03335000 1969-10-02 155 A\nUSGS 03335000 1969-10-01 160 A\n",
		},
	}

	for _, c := range cases {
		_, err := ReadDailyRecords(strings.NewReader(c.file))

		var parseErr *ParseError
		if !errors.As(err, &parseErr) {
			t.Errorf("%s: got %v, wanted a ParseError", c.tag, err)
		}
	}
}

func TestReadDailyRecordsEmptyFile(t *testing.T) {
	table, err := ReadDailyRecords(strings.NewReader("# only comments\nheader line\n"))
	if err != nil {
		t.Fatal(err)
	}
	if len(table.Records) != 0 || table.MissingValues != 0 {
		t.Errorf("Got %v records and %v missing, wanted none", len(table.Records), table.MissingValues)
	}
}
