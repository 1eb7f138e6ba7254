package report

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"trip-route-service/internal/domain"
)

var header = []string{
	"From → To",
	"Selected Mode",
	"Travel Time (min)",
	"Transfer Time (min)",
	"Total Time (min)",
	"Cost (Units)",
	"Distance (km)",
}

func f2(v float64) string { return fmt.Sprintf("%.2f", v) }

// WriteCSV writes the route report of one itinerary: a summary block, a
// blank line, then one CSV row per leg and a total row.
func WriteCSV(w io.Writer, it domain.Itinerary) error {
	if w == nil {
		return errors.New("write report: writer is nil")
	}

	if _, err := fmt.Fprintf(w,
		"Final Route Summary\nTotal Cost (Units): %s\nTotal Time (min): %s\nTotal Distance (km): %s\nNumber of Mode Changes: %d\n\n",
		f2(it.TotalCost()), f2(it.TotalTimeMin()), f2(it.TotalDistanceKm()), it.ModeChanges(),
	); err != nil {
		return fmt.Errorf("write report: summary: %w", err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write report: header: %w", err)
	}

	var travel float64
	for _, leg := range it.Legs {
		s := leg.Selected
		travel += s.TravelTimeMin
		row := []string{
			leg.From + " → " + leg.To,
			s.Mode,
			f2(s.TravelTimeMin),
			f2(s.TransferTimeMin),
			f2(s.TotalTimeMin),
			f2(s.Cost),
			f2(leg.DistanceKm),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write report: leg %s -> %s: %w", leg.From, leg.To, err)
		}
	}

	total := []string{
		"Total",
		"",
		f2(travel),
		f2(it.TotalTransferTimeMin()),
		f2(it.TotalTimeMin()),
		f2(it.TotalCost()),
		f2(it.TotalDistanceKm()),
	}
	if err := cw.Write(total); err != nil {
		return fmt.Errorf("write report: total row: %w", err)
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("write report: flush: %w", err)
	}
	return nil
}

// WriteCSVFile writes the report to path, replacing any existing file.
func WriteCSVFile(path string, it domain.Itinerary) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write report: create %q: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("write report: close %q: %w", path, cerr)
		}
	}()

	return WriteCSV(f, it)
}
