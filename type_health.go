package rental

import (
	"encoding/json"
	"fmt"
)

// Health is the qualitative classification of an investment.
type Health int

const (
	Negative Health = iota // loses money every month
	Marginal               // profitable, below a 5% yearly yield on price
	Healthy
)

func (h Health) String() string {
	switch h {
	case Negative:
		return "negative"
	case Marginal:
		return "marginal"
	case Healthy:
		return "healthy"
	default:
		return fmt.Sprintf("Health(%d)", int(h))
	}
}

// Color returns the status color name used by user interfaces.
func (h Health) Color() string {
	switch h {
	case Negative:
		return "error"
	case Marginal:
		return "warning"
	default:
		return "success"
	}
}

// Emoji returns a single character marker suitable for terminal tables.
func (h Health) Emoji() string {
	switch h {
	case Negative:
		return "🔴"
	case Marginal:
		return "🟡"
	default:
		return "🟢"
	}
}

func (h Health) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.String())
}
