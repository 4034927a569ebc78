package rental

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeCSV(t *testing.T) {
	c := fixedClock()
	p := NewPortfolio(
		NewProperty(c, "A", rawA()),
		NewProperty(c, "degenerate", RawInput{PropertyPrice: D(1000)}),
	)

	var buf bytes.Buffer
	require.NoError(t, EncodeCSV(&buf, p))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	header := records[0]
	assert.Equal(t, "created_at", header[0])
	assert.Equal(t, "health", header[len(header)-1])

	row := map[string]string{}
	for i, h := range header {
		row[h] = records[1][i]
	}
	assert.Equal(t, "2024-06-10T06:13:20.000Z", row["created_at"])
	assert.Equal(t, "A", row["address"])
	assert.Equal(t, "300000.00", row["property_price"])
	assert.Equal(t, "4", row["apr_percent"])
	assert.Equal(t, "90", row["occupancy_percent"])
	assert.Equal(t, "2500.00", row["gross_monthly_revenue"])
	assert.Equal(t, "2250.00", row["monthly_revenue"])
	assert.Equal(t, "marginal", row["health"])

	degenerate := map[string]string{}
	for i, h := range header {
		degenerate[h] = records[2][i]
	}
	assert.Equal(t, "", degenerate["monthly_loan_payment"], "non finite values are left empty")
	assert.Equal(t, "negative", degenerate["health"])
}
