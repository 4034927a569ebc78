package renderer

import (
	"strings"

	"github.com/etnz/rental"
)

const createdLayout = "2006-01-02 15:04"

// Property is the view of one property, or of a standalone calculation.
type Property struct {
	Index    int // position in the portfolio, -1 for a calculation
	Address  string
	Created  string
	Input    Input
	Summary  Summary
	Warnings []string
}

// Input is the view of a property input, with percentages as typed by users.
type Input struct {
	Price      string
	Down       string
	APR        string
	Term       int
	Streams    []Stream
	Occupancy  string
	Tax        string
	Insurance  string
	Management string
}

type Stream struct {
	Value string
	Count int
}

// Summary is the view of the monthly figures of a property.
type Summary struct {
	LoanPayment string
	Management  string
	Maintenance string
	Tax         string
	Insurance   string
	Cost        string
	Revenue     string
	NetProfit   string
	Threshold   string
	ROI         string
	Health      string
	Emoji       string
}

// NewProperty builds the view of the property at index i in currency cur.
func NewProperty(i int, p rental.Property, cur string) *Property {
	v := newProperty(p.Input, cur)
	v.Index = i
	v.Address = escapeCell(p.Address())
	v.Created = p.Created().Format(createdLayout)
	return v
}

// NewCalculation builds the view of a standalone calculation.
func NewCalculation(f rental.Financials, cur string) *Property {
	v := newProperty(f.Input, cur)
	v.Index = -1
	return v
}

func newProperty(in rental.Input, cur string) *Property {
	raw := in.Raw()
	v := &Property{
		Input: Input{
			Price:      rental.M(in.PropertyPrice, cur).String(),
			Down:       rental.M(in.DownPayment, cur).String(),
			APR:        raw.APR.String() + "%",
			Term:       in.TermYears,
			Occupancy:  raw.OccupancyRatePercent.String() + "%",
			Tax:        rental.M(in.PropertyTax, cur).String(),
			Insurance:  rental.M(in.InsuranceCost, cur).String(),
			Management: raw.ManagementExpensePercent.String() + "%",
		},
		Summary: newSummary(rental.NewSummary(in), cur),
	}
	for _, s := range in.RevenueStreams {
		v.Input.Streams = append(v.Input.Streams, Stream{Value: rental.M(s.Value, cur).String(), Count: s.Count})
	}
	if err := in.Validate(); err != nil {
		v.Warnings = strings.Split(err.Error(), "\n")
	}
	return v
}

func newSummary(s rental.Summary, cur string) Summary {
	return Summary{
		LoanPayment: rental.M(s.MonthlyLoanPayment, cur).String(),
		Management:  rental.M(s.MonthlyManagementCost, cur).String(),
		Maintenance: rental.M(s.MonthlyMaintenanceCost, cur).String(),
		Tax:         rental.M(s.MonthlyPropertyTax, cur).String(),
		Insurance:   rental.M(s.MonthlyInsuranceCost, cur).String(),
		Cost:        rental.M(s.MonthlyCost, cur).String(),
		Revenue:     rental.M(s.MonthlyRevenue, cur).String(),
		NetProfit:   rental.M(s.MonthlyNetProfit, cur).String(),
		Threshold:   rental.M(s.NetProfitThreshold, cur).String(),
		ROI:         s.AnnualROI.String(),
		Health:      s.Health.String(),
		Emoji:       s.Health.Emoji(),
	}
}

// escapeCell makes s safe inside a markdown table cell.
func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
