package sim

import (
	"encoding/csv"
	"os"
	"strconv"

	"saas-forecast/internal/model"
)

// WriteRunCSV writes one trajectory as a per-month ledger CSV.
func WriteRunCSV(path string, run model.Run) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"month",
		"total_revenue",
		"seat_revenue",
		"usage_revenue",
		"customers",
		"churn",
		"usage_units",
		"total_cost",
		"fixed_cost",
		"variable_cost",
		"salary_cost",
		"hosting_cost",
		"software_cost",
		"admin_cost",
		"conference_cost",
		"compute_cost",
		"support_cost",
		"headcount",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range run {
		row := []string{
			strconv.Itoa(r.Month),
			fmtFloat(r.TotalRevenue),
			fmtFloat(r.SeatRevenue),
			fmtFloat(r.UsageRevenue),
			strconv.Itoa(r.Customers),
			strconv.Itoa(r.Churn),
			fmtFloat(r.UsageUnits),
			fmtFloat(r.TotalCost),
			fmtFloat(r.FixedCost),
			fmtFloat(r.VariableCost),
			fmtFloat(r.SalaryCost),
			fmtFloat(r.HostingCost),
			fmtFloat(r.SoftwareCost),
			fmtFloat(r.AdminCost),
			fmtFloat(r.ConferenceCost),
			fmtFloat(r.ComputeCost),
			fmtFloat(r.SupportCost),
			strconv.Itoa(r.Headcount),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
