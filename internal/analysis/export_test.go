package analysis

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"saas-forecast/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteSummaryCSV(t *testing.T) {
	batch := &model.Batch{
		Months: 2,
		Runs: []model.Run{
			{
				{Month: 0, TotalRevenue: 100, Customers: 2, Churn: 0},
				{Month: 1, TotalRevenue: 150, Customers: 3, Churn: 1},
			},
			{
				{Month: 0, TotalRevenue: 200, Customers: 4, Churn: 1},
				{Month: 1, TotalRevenue: 250, Customers: 5, Churn: 1},
			},
		},
	}

	path := filepath.Join(t.TempDir(), "summary.csv")
	require.NoError(t, WriteSummaryCSV(path, batch))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{
		"month", "median_revenue", "p10_revenue", "p90_revenue",
		"median_customers", "median_churn",
	}, rows[0])

	// Months are 1-based in the export.
	assert.Equal(t, "1", rows[1][0])
	assert.Equal(t, "2", rows[2][0])
	assert.Equal(t, "150.00", rows[1][1]) // median of 100 and 200
	assert.Equal(t, "3", rows[1][4])      // median of 2 and 4
}
