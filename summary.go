package rental

// Summary holds every metric of one Input.
type Summary struct {
	MonthlyLoanPayment     float64
	MonthlyManagementCost  float64
	MonthlyMaintenanceCost float64
	MonthlyPropertyTax     float64
	MonthlyInsuranceCost   float64
	MonthlyCost            float64
	MonthlyRevenue         float64
	MonthlyNetProfit       float64
	NetProfitThreshold     float64
	AnnualROI              Percent
	Health                 Health
}

// NewSummary computes all the metrics of in.
func NewSummary(in Input) Summary {
	return Summary{
		MonthlyLoanPayment:     in.MonthlyLoanPayment(),
		MonthlyManagementCost:  in.MonthlyManagementCost(),
		MonthlyMaintenanceCost: in.MonthlyMaintenanceCost(),
		MonthlyPropertyTax:     in.PropertyTax.InexactFloat64(),
		MonthlyInsuranceCost:   in.InsuranceCost.InexactFloat64(),
		MonthlyCost:            in.MonthlyCost(),
		MonthlyRevenue:         in.MonthlyRevenue(),
		MonthlyNetProfit:       in.MonthlyNetProfit(),
		NetProfitThreshold:     in.NetProfitThreshold(),
		AnnualROI:              Percent(in.AnnualROI()),
		Health:                 in.Classify(),
	}
}

// Financials is a standalone financial summary of a property that is not
// part of a Portfolio, like a quick what-if calculation.
type Financials struct {
	Input
}

// NewFinancials normalizes raw and returns its Financials.
func NewFinancials(raw RawInput) Financials {
	return Financials{Input: raw.Normalize()}
}

// Summary returns every metric at once.
func (f Financials) Summary() Summary { return NewSummary(f.Input) }
