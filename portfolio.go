package rental

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// ErrIndexOutOfRange is returned by index based Portfolio operations when the
// index is not within [0, Len()). The Portfolio is left unchanged.
var ErrIndexOutOfRange = errors.New("index out of range")

// Portfolio is the ordered list of properties of a user, newest first.
//
// A Portfolio is the unit of persistence and of undo/redo history. Its zero
// value is an empty portfolio ready to use.
type Portfolio struct {
	properties []Property
}

// NewPortfolio returns a portfolio holding properties in the given order.
func NewPortfolio(properties ...Property) Portfolio {
	p := Portfolio{}
	for _, prop := range properties {
		p.properties = append(p.properties, prop.Clone())
	}
	return p
}

// Len returns the number of properties.
func (p Portfolio) Len() int { return len(p.properties) }

// Properties returns a copy of the properties, newest first.
func (p Portfolio) Properties() []Property {
	out := make([]Property, len(p.properties))
	for i, prop := range p.properties {
		out[i] = prop.Clone()
	}
	return out
}

// Get returns the property at index i, or false if there is none.
func (p Portfolio) Get(i int) (Property, bool) {
	if i < 0 || i >= len(p.properties) {
		return Property{}, false
	}
	return p.properties[i].Clone(), true
}

// IndexOf returns the current index of the property created at createdAt, or -1.
func (p Portfolio) IndexOf(createdAt int64) int {
	for i, prop := range p.properties {
		if prop.createdAt == createdAt {
			return i
		}
	}
	return -1
}

// Add inserts prop at the head of the portfolio.
func (p *Portfolio) Add(prop Property) {
	p.properties = append([]Property{prop.Clone()}, p.properties...)
}

// Update replaces the property at index i.
func (p *Portfolio) Update(i int, prop Property) error {
	if i < 0 || i >= len(p.properties) {
		return fmt.Errorf("update property #%d of %d: %w", i, len(p.properties), ErrIndexOutOfRange)
	}
	p.properties[i] = prop.Clone()
	return nil
}

// Remove deletes the property at index i.
func (p *Portfolio) Remove(i int) error {
	if i < 0 || i >= len(p.properties) {
		return fmt.Errorf("remove property #%d of %d: %w", i, len(p.properties), ErrIndexOutOfRange)
	}
	p.properties = append(p.properties[:i:i], p.properties[i+1:]...)
	return nil
}

// Clone returns a deep copy of the portfolio. Mutating the copy never
// affects p.
func (p Portfolio) Clone() Portfolio {
	if p.properties == nil {
		return Portfolio{}
	}
	return Portfolio{properties: p.Properties()}
}

// Equal reports whether both portfolios hold equal properties in the same order.
func (p Portfolio) Equal(o Portfolio) bool {
	if len(p.properties) != len(o.properties) {
		return false
	}
	for i := range p.properties {
		if !p.properties[i].Equal(o.properties[i]) {
			return false
		}
	}
	return true
}

// Totals aggregates the monthly metrics of all the properties.
type Totals struct {
	Properties       int
	Skipped          int // properties with non finite metrics, left out of the sums
	MonthlyRevenue   float64
	MonthlyCost      float64
	MonthlyNetProfit float64
	DownPayment      float64
	AnnualROI        Percent // cash on cash: yearly net profit over total down payment
}

// Totals computes the aggregated metrics of the portfolio.
func (p Portfolio) Totals() Totals {
	var revenue, cost, down []float64
	t := Totals{Properties: len(p.properties)}
	for _, prop := range p.properties {
		r, c := prop.MonthlyRevenue(), prop.MonthlyCost()
		if !IsFinite(r) || !IsFinite(c) {
			t.Skipped++
			continue
		}
		revenue = append(revenue, r)
		cost = append(cost, c)
		down = append(down, prop.DownPayment.InexactFloat64())
	}
	t.MonthlyRevenue = floats.Sum(revenue)
	t.MonthlyCost = floats.Sum(cost)
	t.MonthlyNetProfit = t.MonthlyRevenue - t.MonthlyCost
	t.DownPayment = floats.Sum(down)
	t.AnnualROI = Percent(t.MonthlyNetProfit * 12 / t.DownPayment * 100)
	return t
}
