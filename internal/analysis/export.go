package analysis

import (
	"encoding/csv"
	"os"
	"strconv"

	"saas-forecast/internal/model"
)

// WriteSummaryCSV writes the percentile summary table for a batch: median and
// band revenue plus median customers and churn, one row per month. Months are
// 1-based in the output, matching how the numbers read in a spreadsheet.
func WriteSummaryCSV(path string, batch *model.Batch) error {
	revenue, err := MetricBands(batch, model.MetricTotalRevenue)
	if err != nil {
		return err
	}
	customers, err := MetricBands(batch, model.MetricCustomers)
	if err != nil {
		return err
	}
	churn, err := MetricBands(batch, model.MetricChurn)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"month",
		"median_revenue",
		"p10_revenue",
		"p90_revenue",
		"median_customers",
		"median_churn",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for m := 0; m < len(revenue.Median); m++ {
		row := []string{
			strconv.Itoa(m + 1),
			fmtFloat(revenue.Median[m]),
			fmtFloat(revenue.P10[m]),
			fmtFloat(revenue.P90[m]),
			strconv.Itoa(int(customers.Median[m])),
			strconv.Itoa(int(churn.Median[m])),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 2, 64)
}
