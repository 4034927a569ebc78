package rental

import (
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/shopspring/decimal"
)

// fixedClock returns a clock frozen at 2024-06-10 06:13:20 UTC.
func fixedClock() *Clock {
	at := time.UnixMilli(1718000000000)
	return &Clock{Now: func() time.Time { return at }}
}

// rawA is the reference scenario property: 300000 bought with 60000 down at
// 4% over 30 years, rented 2500 a month.
func rawA() RawInput {
	return RawInput{
		PropertyPrice:            D(300000),
		DownPayment:              D(60000),
		APR:                      D(4),
		TermYears:                30,
		RevenueStreams:           []RevenueStream{S(2500, 1)},
		OccupancyRatePercent:     D(90),
		PropertyTax:              D(300),
		InsuranceCost:            D(80),
		ManagementExpensePercent: D(10),
	}
}

// rawB is the property used to check the classic amortization values.
func rawB() RawInput {
	return RawInput{
		PropertyPrice:            D(200000),
		DownPayment:              D(50000),
		APR:                      D(5),
		TermYears:                30,
		RevenueStreams:           []RevenueStream{S(2000, 1)},
		OccupancyRatePercent:     D(95),
		PropertyTax:              D(500),
		InsuranceCost:            D(100),
		ManagementExpensePercent: D(8),
	}
}

// cmpPortfolio compares portfolios field by field, decimals by value.
var cmpPortfolio = []cmp.Option{
	cmp.AllowUnexported(Portfolio{}, Property{}),
	cmp.Comparer(func(d1, d2 decimal.Decimal) bool { return d1.Equal(d2) }),
	cmpopts.EquateEmpty(),
}
