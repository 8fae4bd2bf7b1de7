package experiment

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
)

// csvHeader is the sweep-report column header.
var csvHeader = []string{
	"Simulations", "Runs",
	"Undiscounted return", "Undiscounted error",
	"Discounted return", "Discounted error",
	"Time",
}

// OutputPath maps an experiment name to a CSV path, special-casing
// "default" to /dev/null.
func OutputPath(name string) string {
	if name == "default" {
		return os.DevNull
	}
	return name + ".csv"
}

// WriteCSV writes one header row followed by one row per SweepResult.
func WriteCSV(w io.Writer, rows []SweepResult) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	for _, r := range rows {
		row := []string{
			strconv.Itoa(r.Simulations),
			strconv.Itoa(r.Runs),
			strconv.FormatFloat(r.UndiscountedReturn, 'f', -1, 64),
			strconv.FormatFloat(r.UndiscountedError, 'f', -1, 64),
			strconv.FormatFloat(r.DiscountedReturn, 'f', -1, 64),
			strconv.FormatFloat(r.DiscountedError, 'f', -1, 64),
			strconv.FormatFloat(r.Time, 'f', -1, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	return cw.Error()
}

// WriteCSVFile opens OutputPath(name), truncating it, and writes rows to it.
func WriteCSVFile(name string, rows []SweepResult) error {
	f, err := os.Create(OutputPath(name))
	if err != nil {
		return err
	}
	defer f.Close()

	return WriteCSV(f, rows)
}
