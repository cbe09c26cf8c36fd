package archive

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"flowstats/report"
)

const CONN_ENV_VAR string = "FLOWSTATS_CONN_STRING"

type Config struct {
	Dir string `arg:"-d,--dir" default:"." help:"Directory containing the summary CSV files written by 'compute'"`
}

func (Config) Description() string {
	return `Load the computed summary tables into Postgres.
The "FLOWSTATS_CONN_STRING" environment variable needs to be set.`
}

func (config *Config) Execute() {
	err := godotenv.Load()
	if err != nil {
		fmt.Println(err)
		return
	}

	pool, err := pgxpool.New(context.TODO(), os.Getenv(CONN_ENV_VAR))
	if err != nil {
		slog.Error(fmt.Sprint("Could not connect to the archive database: ", err))
		return
	}
	defer pool.Close()

	if err := createTables(pool); err != nil {
		slog.Error(err.Error())
		return
	}

	annual, err := readSummaryCSV[report.AnnualSummary](config.Dir, report.ANNUAL_CSV)
	if err != nil {
		return
	}
	monthly, err := readSummaryCSV[report.MonthlySummary](config.Dir, report.MONTHLY_CSV)
	if err != nil {
		return
	}

	if _, err := InsertAnnual(annual, pool); err != nil {
		slog.Error("failed annual bulk insertion - " + err.Error())
		return
	}
	if _, err := InsertMonthly(monthly, pool); err != nil {
		slog.Error("failed monthly bulk insertion - " + err.Error())
		return
	}

	slog.Info("Archive complete!")
}
