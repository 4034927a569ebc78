package renderer

import "github.com/etnz/rental"

// Portfolio is the view of a portfolio list.
type Portfolio struct {
	Count      int
	Properties []PropertyRow
	Totals     Totals
	CanUndo    bool
	CanRedo    bool
}

// PropertyRow is one line of the portfolio table.
type PropertyRow struct {
	Index     int
	Address   string
	Created   string
	Price     string
	Down      string
	Revenue   string
	Cost      string
	NetProfit string
	ROI       string
	Health    string
	Emoji     string
}

type Totals struct {
	Revenue   string
	Cost      string
	NetProfit string
	Down      string
	ROI       string
	Skipped   int
}

// NewPortfolio builds the view of p in currency cur.
func NewPortfolio(p rental.Portfolio, cur string) *Portfolio {
	v := &Portfolio{Count: p.Len()}
	for i, prop := range p.Properties() {
		s := prop.Summary()
		v.Properties = append(v.Properties, PropertyRow{
			Index:     i,
			Address:   escapeCell(prop.Address()),
			Created:   prop.Created().Format(createdLayout),
			Price:     rental.M(prop.PropertyPrice, cur).String(),
			Down:      rental.M(prop.DownPayment, cur).String(),
			Revenue:   rental.M(s.MonthlyRevenue, cur).String(),
			Cost:      rental.M(s.MonthlyCost, cur).String(),
			NetProfit: rental.M(s.MonthlyNetProfit, cur).String(),
			ROI:       s.AnnualROI.String(),
			Health:    s.Health.String(),
			Emoji:     s.Health.Emoji(),
		})
	}
	t := p.Totals()
	v.Totals = Totals{
		Revenue:   rental.M(t.MonthlyRevenue, cur).String(),
		Cost:      rental.M(t.MonthlyCost, cur).String(),
		NetProfit: rental.M(t.MonthlyNetProfit, cur).String(),
		Down:      rental.M(t.DownPayment, cur).String(),
		ROI:       t.AnnualROI.String(),
		Skipped:   t.Skipped,
	}
	return v
}
