package report

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"trip-route-service/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleItinerary() domain.Itinerary {
	return domain.Itinerary{Legs: []domain.Leg{
		{
			From: "Home", To: "Sinsa-daero", DistanceKm: 10,
			Selected: domain.LegEvaluation{Mode: "Bus", TravelTimeMin: 15, TransferTimeMin: 5, TotalTimeMin: 20, Cost: 20},
		},
		{
			From: "Sinsa-daero", To: "Gangnam-daero", DistanceKm: 2.5,
			Selected: domain.LegEvaluation{Mode: "Walking", TravelTimeMin: 30, TransferTimeMin: 0, TotalTimeMin: 30, Cost: 0},
		},
	}}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleItinerary()))

	summary, table, ok := strings.Cut(buf.String(), "\n\n")
	require.True(t, ok)

	assert.Equal(t, []string{
		"Final Route Summary",
		"Total Cost (Units): 20.00",
		"Total Time (min): 50.00",
		"Total Distance (km): 12.50",
		"Number of Mode Changes: 2",
	}, strings.Split(summary, "\n"))

	rows, err := csv.NewReader(strings.NewReader(table)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 4)

	assert.Equal(t, header, rows[0])
	assert.Equal(t, []string{"Home → Sinsa-daero", "Bus", "15.00", "5.00", "20.00", "20.00", "10.00"}, rows[1])
	assert.Equal(t, []string{"Total", "", "45.00", "5.00", "50.00", "20.00", "12.50"}, rows[3])
}

func TestWriteCSVEmptyItinerary(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, domain.Itinerary{}))
	assert.Contains(t, buf.String(), "Number of Mode Changes: 0")
	assert.Contains(t, buf.String(), "Total,,0.00,0.00,0.00,0.00,0.00")
}

func TestWriteCSVFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "final_route_report.csv")
	require.NoError(t, WriteCSVFile(path, sampleItinerary()))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(b), "Final Route Summary\n"))

	err = WriteCSVFile(filepath.Join(t.TempDir(), "missing", "r.csv"), sampleItinerary())
	assert.Error(t, err)
}
