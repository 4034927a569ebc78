package rental

import (
	"fmt"
	"io"
	"strconv"

	"github.com/gocarina/gocsv"
)

// csvRow is one property of a CSV export.
type csvRow struct {
	CreatedAt          string `csv:"created_at"`
	Address            string `csv:"address"`
	PropertyPrice      string `csv:"property_price"`
	DownPayment        string `csv:"down_payment"`
	APRPercent         string `csv:"apr_percent"`
	TermYears          int    `csv:"term_years"`
	GrossRevenue       string `csv:"gross_monthly_revenue"`
	OccupancyPercent   string `csv:"occupancy_percent"`
	PropertyTax        string `csv:"property_tax"`
	InsuranceCost      string `csv:"insurance_cost"`
	ManagementPercent  string `csv:"management_percent"`
	MonthlyLoanPayment string `csv:"monthly_loan_payment"`
	MonthlyRevenue     string `csv:"monthly_revenue"`
	MonthlyCost        string `csv:"monthly_cost"`
	MonthlyNetProfit   string `csv:"monthly_net_profit"`
	AnnualROIPercent   string `csv:"annual_roi_percent"`
	Health             string `csv:"health"`
}

// csvFloat formats v with two decimals, or leaves it empty when not finite.
func csvFloat(v float64) string {
	if !IsFinite(v) {
		return ""
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// EncodeCSV writes one CSV row per property of p, newest first, with its
// input and its metrics. Percentages are whole numbers.
func EncodeCSV(w io.Writer, p Portfolio) error {
	rows := make([]csvRow, 0, p.Len())
	for _, prop := range p.properties {
		raw := prop.Raw()
		var gross float64
		for _, s := range prop.RevenueStreams {
			gross += s.Value.InexactFloat64() * float64(s.Count)
		}
		rows = append(rows, csvRow{
			CreatedAt:          prop.Created().Format("2006-01-02T15:04:05.000Z"),
			Address:            prop.address,
			PropertyPrice:      prop.PropertyPrice.StringFixed(2),
			DownPayment:        prop.DownPayment.StringFixed(2),
			APRPercent:         raw.APR.String(),
			TermYears:          prop.TermYears,
			GrossRevenue:       csvFloat(gross),
			OccupancyPercent:   raw.OccupancyRatePercent.String(),
			PropertyTax:        prop.PropertyTax.StringFixed(2),
			InsuranceCost:      prop.InsuranceCost.StringFixed(2),
			ManagementPercent:  raw.ManagementExpensePercent.String(),
			MonthlyLoanPayment: csvFloat(prop.MonthlyLoanPayment()),
			MonthlyRevenue:     csvFloat(prop.MonthlyRevenue()),
			MonthlyCost:        csvFloat(prop.MonthlyCost()),
			MonthlyNetProfit:   csvFloat(prop.MonthlyNetProfit()),
			AnnualROIPercent:   csvFloat(prop.AnnualROI()),
			Health:             prop.Classify().String(),
		})
	}
	if err := gocsv.Marshal(rows, w); err != nil {
		return fmt.Errorf("encode csv: %w", err)
	}
	return nil
}
