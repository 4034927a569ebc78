package rental

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// RevenueStream is a recurring monthly revenue: Count units rented at Value each.
type RevenueStream struct {
	Value decimal.Decimal
	Count int
}

// S is a convenient factory for a RevenueStream.
func S[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T, count int) RevenueStream {
	return RevenueStream{Value: newDecimal(value), Count: count}
}

// RawInput is the financial input of a property as collected from a user.
//
// APR, OccupancyRatePercent and ManagementExpensePercent are whole-number
// percentages (5 for 5%). Use Normalize to get an Input.
type RawInput struct {
	PropertyPrice            decimal.Decimal
	DownPayment              decimal.Decimal
	APR                      decimal.Decimal
	TermYears                int
	RevenueStreams           []RevenueStream
	OccupancyRatePercent     decimal.Decimal
	PropertyTax              decimal.Decimal // monthly
	InsuranceCost            decimal.Decimal // monthly
	ManagementExpensePercent decimal.Decimal
}

// Normalize converts the percentages into fractions and returns the Input.
//
// It is the only way from raw to normalized values: data already normalized,
// like a decoded Portfolio, must never go through it again.
func (r RawInput) Normalize() Input {
	return Input{
		PropertyPrice:     r.PropertyPrice,
		DownPayment:       r.DownPayment,
		APR:               r.APR.Div(hundred),
		TermYears:         r.TermYears,
		RevenueStreams:    cloneStreams(r.RevenueStreams),
		OccupancyRate:     r.OccupancyRatePercent.Div(hundred),
		PropertyTax:       r.PropertyTax,
		InsuranceCost:     r.InsuranceCost,
		ManagementExpense: r.ManagementExpensePercent.Div(hundred),
	}
}

// Input is the normalized financial input of one property.
//
// APR, OccupancyRate and ManagementExpense are fractions (0.05 for 5%).
type Input struct {
	PropertyPrice     decimal.Decimal
	DownPayment       decimal.Decimal
	APR               decimal.Decimal
	TermYears         int
	RevenueStreams    []RevenueStream
	OccupancyRate     decimal.Decimal
	PropertyTax       decimal.Decimal // monthly
	InsuranceCost     decimal.Decimal // monthly
	ManagementExpense decimal.Decimal
}

// Raw returns the input with percentages expressed as whole numbers again.
//
// It exists for pre-filling input forms. Normalize(Raw()) is the identity.
func (in Input) Raw() RawInput {
	return RawInput{
		PropertyPrice:            in.PropertyPrice,
		DownPayment:              in.DownPayment,
		APR:                      in.APR.Mul(hundred),
		TermYears:                in.TermYears,
		RevenueStreams:           cloneStreams(in.RevenueStreams),
		OccupancyRatePercent:     in.OccupancyRate.Mul(hundred),
		PropertyTax:              in.PropertyTax,
		InsuranceCost:            in.InsuranceCost,
		ManagementExpensePercent: in.ManagementExpense.Mul(hundred),
	}
}

// Clone returns a deep copy of the input.
func (in Input) Clone() Input {
	in.RevenueStreams = cloneStreams(in.RevenueStreams)
	return in
}

// Equal reports whether both inputs hold the same values.
func (in Input) Equal(o Input) bool {
	if len(in.RevenueStreams) != len(o.RevenueStreams) {
		return false
	}
	for i, s := range in.RevenueStreams {
		if !s.Value.Equal(o.RevenueStreams[i].Value) || s.Count != o.RevenueStreams[i].Count {
			return false
		}
	}
	return in.PropertyPrice.Equal(o.PropertyPrice) &&
		in.DownPayment.Equal(o.DownPayment) &&
		in.APR.Equal(o.APR) &&
		in.TermYears == o.TermYears &&
		in.OccupancyRate.Equal(o.OccupancyRate) &&
		in.PropertyTax.Equal(o.PropertyTax) &&
		in.InsuranceCost.Equal(o.InsuranceCost) &&
		in.ManagementExpense.Equal(o.ManagementExpense)
}

// Validate reports inputs that are out of range or degenerate.
//
// The calculation engine never calls it: degenerate inputs produce
// non-finite metrics instead. It is meant for input collectors that prefer
// to refuse them.
func (in Input) Validate() error {
	var errs []error
	nonNegative := func(name string, v decimal.Decimal) {
		if v.IsNegative() {
			errs = append(errs, fmt.Errorf("%s must not be negative, got %s", name, v))
		}
	}
	nonNegative("property price", in.PropertyPrice)
	nonNegative("down payment", in.DownPayment)
	nonNegative("property tax", in.PropertyTax)
	nonNegative("insurance cost", in.InsuranceCost)
	if in.DownPayment.GreaterThan(in.PropertyPrice) {
		errs = append(errs, fmt.Errorf("down payment %s exceeds property price %s", in.DownPayment, in.PropertyPrice))
	}
	if in.TermYears < 0 {
		errs = append(errs, fmt.Errorf("term must not be negative, got %d years", in.TermYears))
	}
	for i, s := range in.RevenueStreams {
		if s.Count < 0 {
			errs = append(errs, fmt.Errorf("revenue stream #%d: count must not be negative, got %d", i, s.Count))
		}
	}
	fraction := func(name string, v decimal.Decimal) {
		if v.IsNegative() || v.GreaterThan(decimal.NewFromInt(1)) {
			errs = append(errs, fmt.Errorf("%s must be within 0%% and 100%%, got %s%%", name, v.Mul(hundred)))
		}
	}
	fraction("occupancy rate", in.OccupancyRate)
	fraction("management expense", in.ManagementExpense)

	if in.APR.IsZero() {
		errs = append(errs, ErrZeroRate)
	}
	if in.TermYears == 0 {
		errs = append(errs, ErrZeroTerm)
	}
	if in.DownPayment.IsZero() {
		errs = append(errs, ErrZeroDownPayment)
	}
	return errors.Join(errs...)
}

// Degenerate inputs. Each of them makes some metric non-finite.
var (
	ErrZeroRate        = errors.New("zero interest rate: loan payment is undefined")
	ErrZeroTerm        = errors.New("zero loan term: loan payment is undefined")
	ErrZeroDownPayment = errors.New("zero down payment: ROI is undefined")
)

// NewPropertyDefaults returns the placeholder input of a freshly added property.
func NewPropertyDefaults() RawInput {
	return RawInput{}
}

// FormDefaults returns the starting values of an input form.
func FormDefaults() RawInput {
	return RawInput{
		RevenueStreams:           []RevenueStream{S(0, 1)},
		OccupancyRatePercent:     decimal.NewFromInt(95),
		ManagementExpensePercent: decimal.NewFromInt(8),
	}
}

func cloneStreams(streams []RevenueStream) []RevenueStream {
	if streams == nil {
		return nil
	}
	out := make([]RevenueStream, len(streams))
	copy(out, streams)
	return out
}
