package rental

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMoney_String(t *testing.T) {
	tests := []struct {
		name string
		m    Money
		want string
	}{
		{name: "grouping", m: M(1234.5, "USD"), want: "$1,234.50"},
		{name: "rounded to cents", m: M(805.2233, "USD"), want: "$805.22"},
		{name: "negative", m: M(-12.3, "USD"), want: "-$12.30"},
		{name: "NaN", m: M(math.NaN(), "USD"), want: "n/a"},
		{name: "Inf", m: M(math.Inf(-1), "USD"), want: "n/a"},
		{name: "decimal", m: M(D(300000), "USD"), want: "$300,000.00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.m.String())
		})
	}
}

func TestMoney_SignedString(t *testing.T) {
	assert.Equal(t, "+$10.00", M(10, "USD").SignedString())
	assert.Equal(t, "-", M(0, "USD").SignedString())
	assert.Equal(t, "n/a", M(math.NaN(), "USD").SignedString())
	assert.True(t, M(-1, "USD").IsNegative())
	assert.False(t, M(math.NaN(), "USD").IsValid())
}

func TestPercent_String(t *testing.T) {
	assert.Equal(t, "5.00%", Percent(5).String())
	assert.Equal(t, "+4.23%", Percent(4.2266).SignedString())
	assert.Equal(t, "-", Percent(0).SignedString())
	assert.Equal(t, "n/a", Percent(math.Inf(1)).String())
	assert.True(t, Percent(4.2266).Round().Equal(4.23))
}
