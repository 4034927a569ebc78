package rental

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRawInput_Normalize(t *testing.T) {
	in := rawB().Normalize()

	assert.True(t, in.APR.Equal(D(0.05)), "apr = %s", in.APR)
	assert.True(t, in.OccupancyRate.Equal(D(0.95)), "occupancy = %s", in.OccupancyRate)
	assert.True(t, in.ManagementExpense.Equal(D(0.08)), "management = %s", in.ManagementExpense)
	assert.True(t, in.PropertyPrice.Equal(D(200000)), "amounts are not normalized")
	assert.True(t, in.Raw().Normalize().Equal(in), "Normalize(Raw()) is the identity")
}

func TestRawInput_NormalizeDoesNotAlias(t *testing.T) {
	raw := rawB()
	in := raw.Normalize()
	raw.RevenueStreams[0] = S(1, 1)
	assert.True(t, in.RevenueStreams[0].Value.Equal(D(2000)))
}

func TestInput_Metrics(t *testing.T) {
	in := rawB().Normalize()

	assert.InDelta(t, 805.23, in.MonthlyLoanPayment(), 0.005)
	assert.InDelta(t, 1900.0, in.MonthlyRevenue(), 1e-9)
	assert.InDelta(t, 1900*0.08, in.MonthlyManagementCost(), 1e-9)
	assert.InDelta(t, 200000*0.01/12, in.MonthlyMaintenanceCost(), 1e-9)

	wantCost := 500 + 100 + 200000*0.01/12 + 1900*0.08 + in.MonthlyLoanPayment()
	assert.InDelta(t, wantCost, in.MonthlyCost(), 1e-9)
	assert.InDelta(t, 1723.90, in.MonthlyCost(), 0.005)
	assert.InDelta(t, in.MonthlyRevenue()-in.MonthlyCost(), in.MonthlyNetProfit(), 1e-9)
	assert.InDelta(t, in.MonthlyNetProfit()*12/50000*100, in.AnnualROI(), 1e-9)
	assert.InDelta(t, 200000.0/12*0.05, in.NetProfitThreshold(), 1e-9)

	// net profit ≈ 176.10 is below the ≈ 833.33 threshold.
	assert.Equal(t, Marginal, in.Classify())
	assert.Equal(t, "warning", in.Classify().Color())
}

func TestInput_MonthlyRevenue(t *testing.T) {
	tests := []struct {
		name      string
		streams   []RevenueStream
		occupancy float64
		want      float64
	}{
		{name: "no stream", streams: nil, occupancy: 95, want: 0},
		{name: "single unit", streams: []RevenueStream{S(2000, 1)}, occupancy: 95, want: 1900},
		{name: "several units", streams: []RevenueStream{S(800, 3), S(1200, 1)}, occupancy: 100, want: 3600},
		{name: "order does not matter", streams: []RevenueStream{S(1200, 1), S(800, 3)}, occupancy: 100, want: 3600},
		{name: "zero count", streams: []RevenueStream{S(800, 0)}, occupancy: 100, want: 0},
		{name: "empty property", streams: []RevenueStream{S(800, 2)}, occupancy: 0, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := RawInput{RevenueStreams: tt.streams, OccupancyRatePercent: D(tt.occupancy)}.Normalize()
			assert.InDelta(t, tt.want, in.MonthlyRevenue(), 1e-9)
		})
	}
}

func TestInput_ManagementCostFollowsRevenue(t *testing.T) {
	for _, mgmt := range []float64{0, 5, 8, 12.5, 100} {
		for _, value := range []float64{0, 950, 2000, 7300} {
			raw := rawB()
			raw.ManagementExpensePercent = D(mgmt)
			raw.RevenueStreams = []RevenueStream{S(value, 2)}
			in := raw.Normalize()
			assert.InDelta(t, in.MonthlyRevenue()*mgmt/100, in.MonthlyManagementCost(), 1e-9)
		}
	}
}

func TestInput_Classify(t *testing.T) {
	tests := []struct {
		name string
		raw  RawInput
		want Health
	}{
		{
			name: "negative",
			raw: RawInput{
				PropertyPrice: D(200000), DownPayment: D(20000), APR: D(7), TermYears: 30,
				RevenueStreams: []RevenueStream{S(1000, 1)}, OccupancyRatePercent: D(90),
			},
			want: Negative,
		},
		{
			name: "negative with a zero threshold",
			raw: RawInput{
				APR: D(5), TermYears: 30, PropertyTax: D(100),
			},
			want: Negative,
		},
		{
			name: "marginal",
			raw:  rawA(),
			want: Marginal,
		},
		{
			name: "healthy",
			raw: RawInput{
				PropertyPrice: D(100000), DownPayment: D(100000), APR: D(5), TermYears: 30,
				RevenueStreams: []RevenueStream{S(2000, 1)}, OccupancyRatePercent: D(100),
			},
			want: Healthy,
		},
		{
			name: "degenerate rate",
			raw: RawInput{
				PropertyPrice: D(100000), DownPayment: D(10000), TermYears: 30,
				RevenueStreams: []RevenueStream{S(2000, 1)}, OccupancyRatePercent: D(100),
			},
			want: Negative,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.raw.Normalize().Classify())
		})
	}
}

func TestInput_ClassifyNegativeWins(t *testing.T) {
	// whatever the price, and so the threshold, a loss is negative.
	for _, price := range []int64{0, 1, 1000, 100000, 10000000} {
		raw := RawInput{
			PropertyPrice: D(price), DownPayment: D(price), APR: D(3), TermYears: 20,
			RevenueStreams: []RevenueStream{S(100, 1)}, OccupancyRatePercent: D(50),
			PropertyTax: D(1000),
		}
		in := raw.Normalize()
		require.Less(t, in.MonthlyNetProfit(), 0.0)
		assert.Equal(t, Negative, in.Classify(), "price %d", price)
	}
}

func TestInput_Degenerate(t *testing.T) {
	t.Run("zero rate", func(t *testing.T) {
		raw := rawB()
		raw.APR = D(0)
		in := raw.Normalize()
		assert.True(t, math.IsNaN(in.MonthlyLoanPayment()))
		assert.False(t, IsFinite(in.MonthlyCost()))
		assert.ErrorIs(t, in.Validate(), ErrZeroRate)
	})
	t.Run("zero term", func(t *testing.T) {
		raw := rawB()
		raw.TermYears = 0
		in := raw.Normalize()
		assert.False(t, IsFinite(in.MonthlyLoanPayment()))
		assert.Equal(t, Negative, in.Classify())
		assert.ErrorIs(t, in.Validate(), ErrZeroTerm)
	})
	t.Run("zero down payment", func(t *testing.T) {
		raw := rawB()
		raw.DownPayment = D(0)
		in := raw.Normalize()
		assert.True(t, IsFinite(in.MonthlyNetProfit()))
		assert.False(t, IsFinite(in.AnnualROI()))
		assert.ErrorIs(t, in.Validate(), ErrZeroDownPayment)
	})
}

func TestInput_Validate(t *testing.T) {
	assert.NoError(t, rawA().Normalize().Validate())

	raw := rawA()
	raw.DownPayment = D(400000)
	raw.OccupancyRatePercent = D(120)
	raw.RevenueStreams = []RevenueStream{S(10, -1)}
	err := raw.Normalize().Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds property price")
	assert.Contains(t, err.Error(), "occupancy rate")
	assert.Contains(t, err.Error(), "count must not be negative")
}

func TestFinancials(t *testing.T) {
	f := NewFinancials(rawB())
	s := f.Summary()

	assert.InDelta(t, 805.23, s.MonthlyLoanPayment, 0.005)
	assert.InDelta(t, 1900.0, s.MonthlyRevenue, 1e-9)
	assert.InDelta(t, 500.0, s.MonthlyPropertyTax, 1e-9)
	assert.InDelta(t, 100.0, s.MonthlyInsuranceCost, 1e-9)
	assert.Equal(t, Marginal, s.Health)
	assert.True(t, f.Input.APR.Equal(D(0.05)))
}

func TestHealth(t *testing.T) {
	assert.Equal(t, "negative", Negative.String())
	assert.Equal(t, "marginal", Marginal.String())
	assert.Equal(t, "healthy", Healthy.String())
	assert.Equal(t, "error", Negative.Color())
	assert.Equal(t, "success", Healthy.Color())
}
