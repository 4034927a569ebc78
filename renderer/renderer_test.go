package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/etnz/rental"
)

func rawB() rental.RawInput {
	return rental.RawInput{
		PropertyPrice:            rental.D(200000),
		DownPayment:              rental.D(50000),
		APR:                      rental.D(5),
		TermYears:                30,
		RevenueStreams:           []rental.RevenueStream{rental.S(2000, 1)},
		OccupancyRatePercent:     rental.D(95),
		PropertyTax:              rental.D(500),
		InsuranceCost:            rental.D(100),
		ManagementExpensePercent: rental.D(8),
	}
}

func clock() *rental.Clock {
	return &rental.Clock{Now: func() time.Time { return time.UnixMilli(1718000000000) }}
}

func TestRenderTemplates_Parse(t *testing.T) {
	// every template must at least parse and execute on a zero view.
	for name, out := range map[string]string{
		"portfolio":   RenderPortfolio(&Portfolio{}),
		"property":    RenderProperty(&Property{}),
		"calculation": RenderCalculation(&Property{}),
	} {
		assert.NotContains(t, out, "error ", name)
	}
}

func TestRenderProperty(t *testing.T) {
	prop := rental.NewProperty(clock(), "12 rue des Lilas", rawB())
	out := RenderProperty(NewProperty(0, prop, "USD"))

	for _, want := range []string{
		"# #0 12 rue des Lilas",
		"Created on 2024-06-10 06:13.",
		"| Property price | $200,000.00 |",
		"| APR | 5% |",
		"| Term | 30 years |",
		"| Revenue stream | $2,000.00 × 1 |",
		"| Occupancy rate | 95% |",
		"| Management | 8% |",
		"| Loan payment | $805.23 |",
		"| Management | $152.00 |",
		"| Maintenance | $166.67 |",
		"| **Cost** | **$1,723.90** |",
		"| **Revenue** | **$1,900.00** |",
		"| **Net profit** | **$176.10** |",
		"🟡 **marginal**, annual ROI 4.23%.",
		"above $833.33 a month",
	} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "⚠️")
}

func TestRenderCalculation_Degenerate(t *testing.T) {
	raw := rawB()
	raw.APR = rental.D(0)
	out := RenderCalculation(NewCalculation(rental.NewFinancials(raw), "EUR"))

	assert.True(t, strings.HasPrefix(out, "# Calculation"))
	assert.Contains(t, out, "| Loan payment | n/a |")
	assert.Contains(t, out, "annual ROI n/a")
	assert.Contains(t, out, "> ⚠️ ")
	assert.Contains(t, out, "€", "amounts use the requested currency")
}

func TestRenderPortfolio(t *testing.T) {
	c := clock()
	p := rental.NewPortfolio()
	p.Add(rental.NewProperty(c, "a|b", rawB()))
	p.Add(rental.NewProperty(c, "", rawB()))

	v := NewPortfolio(p, "USD")
	v.CanUndo = true
	out := RenderPortfolio(v)

	for _, want := range []string{
		"# Portfolio (2 properties)",
		"| 0 | UNKNOWN | 2024-06-10 06:13 | $200,000.00 | $50,000.00 | $1,900.00 | $1,723.90 | $176.10 | 4.23% | 🟡 marginal |",
		`| 1 | a\|b |`,
		"| Revenue | $3,800.00 |",
		"| Net Profit | $352.20 |",
		"Total down payment $100,000.00, annual cash on cash return 4.23%.",
		"History: `rentcalc undo`",
	} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "rentcalc redo")
	assert.NotContains(t, out, "left out of the totals")
}

func TestRenderPortfolio_Empty(t *testing.T) {
	out := RenderPortfolio(NewPortfolio(rental.Portfolio{}, "USD"))
	assert.Contains(t, out, "# Portfolio (0 properties)")
	assert.Contains(t, out, "No properties yet")
	assert.NotContains(t, out, "## Totals")
}

func TestRenderPortfolio_Skipped(t *testing.T) {
	raw := rawB()
	raw.TermYears = 0
	p := rental.NewPortfolio()
	p.Add(rental.NewProperty(clock(), "", raw))

	out := RenderPortfolio(NewPortfolio(p, "USD"))
	assert.Contains(t, out, "1 properties with non computable figures are left out of the totals.")
	assert.Contains(t, out, "🔴 negative")
}
