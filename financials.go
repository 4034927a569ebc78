package rental

import "math"

// Calculation engine.
//
// Every metric is a pure function of the Input. Amounts are exact decimals in
// the Input but formulas run on float64: degenerate inputs must yield NaN or
// ±Inf, not a panic. Use IsFinite to guard a value before displaying or
// aggregating it.

const (
	maintenanceRate = 0.01 // yearly maintenance, as a fraction of the price
	thresholdYield  = 0.05 // yearly net yield on price above which a property is healthy
)

// MonthlyLoanPayment returns the amortized monthly payment of the loan
// financing price minus down payment.
//
// A zero APR yields NaN, a zero term with a positive APR yields +Inf.
func (in Input) MonthlyLoanPayment() float64 {
	principal := in.PropertyPrice.Sub(in.DownPayment).InexactFloat64()
	r := in.APR.InexactFloat64() / 12
	n := float64(in.TermYears * 12)
	factor := math.Pow(1+r, n)
	return principal * r * factor / (factor - 1)
}

// MonthlyRevenue returns the sum of all revenue streams weighted by the
// occupancy rate.
func (in Input) MonthlyRevenue() float64 {
	var total float64
	for _, s := range in.RevenueStreams {
		total += s.Value.InexactFloat64() * float64(s.Count)
	}
	return total * in.OccupancyRate.InexactFloat64()
}

// MonthlyMaintenanceCost returns 1% of the price per year, monthly.
func (in Input) MonthlyMaintenanceCost() float64 {
	return in.PropertyPrice.InexactFloat64() * maintenanceRate / 12
}

// MonthlyManagementCost returns the share of the revenue paid for management.
func (in Input) MonthlyManagementCost() float64 {
	return in.MonthlyRevenue() * in.ManagementExpense.InexactFloat64()
}

// MonthlyCost returns tax, insurance, maintenance, management and loan
// payment combined. It is not finite whenever MonthlyLoanPayment is not.
func (in Input) MonthlyCost() float64 {
	return in.PropertyTax.InexactFloat64() +
		in.InsuranceCost.InexactFloat64() +
		in.MonthlyMaintenanceCost() +
		in.MonthlyManagementCost() +
		in.MonthlyLoanPayment()
}

// MonthlyNetProfit returns revenue minus cost.
func (in Input) MonthlyNetProfit() float64 {
	return in.MonthlyRevenue() - in.MonthlyCost()
}

// AnnualROI returns the yearly net profit over the down payment, in percent.
//
// A zero down payment yields ±Inf, or NaN when the profit is zero too.
func (in Input) AnnualROI() float64 {
	return in.MonthlyNetProfit() * 12 / in.DownPayment.InexactFloat64() * 100
}

// NetProfitThreshold returns the monthly net profit that corresponds to a 5%
// yearly yield on the price.
func (in Input) NetProfitThreshold() float64 {
	return in.PropertyPrice.InexactFloat64() / 12 * thresholdYield
}

// Classify returns the health of the investment.
//
// A negative net profit is always Negative, whatever the threshold. A NaN net
// profit is Negative too.
func (in Input) Classify() Health {
	net := in.MonthlyNetProfit()
	switch {
	case net < 0 || math.IsNaN(net):
		return Negative
	case net < in.NetProfitThreshold():
		return Marginal
	default:
		return Healthy
	}
}

// IsFinite reports whether v is neither NaN nor infinite.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
