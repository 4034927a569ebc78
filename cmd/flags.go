package cmd

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/etnz/rental"
)

// decimalFlag is a flag.Value setting a decimal.
type decimalFlag struct{ d *decimal.Decimal }

func (v decimalFlag) String() string {
	if v.d == nil {
		return "0"
	}
	return v.d.String()
}

func (v decimalFlag) Set(s string) error {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return fmt.Errorf("invalid number %q", s)
	}
	*v.d = d
	return nil
}

// streamsFlag is a repeatable flag.Value collecting revenue streams. The
// first value replaces the defaults.
type streamsFlag struct {
	streams *[]rental.RevenueStream
	set     bool
}

func (v *streamsFlag) String() string {
	if v == nil || v.streams == nil {
		return ""
	}
	var parts []string
	for _, s := range *v.streams {
		parts = append(parts, fmt.Sprintf("%vx%d", s.Value, s.Count))
	}
	return strings.Join(parts, ",")
}

func (v *streamsFlag) Set(s string) error {
	stream, err := parseStream(s)
	if err != nil {
		return err
	}
	if !v.set {
		*v.streams = nil
		v.set = true
	}
	*v.streams = append(*v.streams, stream)
	return nil
}

// parseStream parses "value" or "valuexcount", like "850x3" for three units
// rented 850 each.
func parseStream(s string) (rental.RevenueStream, error) {
	value, count, found := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "x")
	n := 1
	if found {
		var err error
		n, err = strconv.Atoi(count)
		if err != nil || n < 0 {
			return rental.RevenueStream{}, fmt.Errorf("invalid stream count in %q", s)
		}
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		return rental.RevenueStream{}, fmt.Errorf("invalid stream value in %q", s)
	}
	return rental.S(d, n), nil
}

// inputFlags binds the flags describing a property input.
type inputFlags struct {
	raw     rental.RawInput
	address string
}

// setFlags registers the input flags on f, with defaults as default values.
func (in *inputFlags) setFlags(f *flag.FlagSet, defaults rental.RawInput) {
	in.raw = defaults
	f.Var(decimalFlag{&in.raw.PropertyPrice}, "price", "property price")
	f.Var(decimalFlag{&in.raw.DownPayment}, "down", "down payment")
	f.Var(decimalFlag{&in.raw.APR}, "apr", "annual percentage rate of the loan, 4 for 4%")
	f.IntVar(&in.raw.TermYears, "term", defaults.TermYears, "loan term in years")
	f.Var(&streamsFlag{streams: &in.raw.RevenueStreams}, "stream", "monthly revenue as value or valuexcount, repeatable")
	f.Var(decimalFlag{&in.raw.OccupancyRatePercent}, "occupancy", "occupancy rate, 95 for 95%")
	f.Var(decimalFlag{&in.raw.PropertyTax}, "tax", "monthly property tax")
	f.Var(decimalFlag{&in.raw.InsuranceCost}, "insurance", "monthly insurance cost")
	f.Var(decimalFlag{&in.raw.ManagementExpensePercent}, "management", "management fee on revenue, 8 for 8%")
	f.StringVar(&in.address, "address", "", "free text address of the property")
}

// merge returns base overridden by the input flags explicitly set on f, and
// whether any was set.
func (in *inputFlags) merge(f *flag.FlagSet, base rental.RawInput) (rental.RawInput, bool) {
	changed := false
	f.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "price":
			base.PropertyPrice = in.raw.PropertyPrice
		case "down":
			base.DownPayment = in.raw.DownPayment
		case "apr":
			base.APR = in.raw.APR
		case "term":
			base.TermYears = in.raw.TermYears
		case "stream":
			base.RevenueStreams = in.raw.RevenueStreams
		case "occupancy":
			base.OccupancyRatePercent = in.raw.OccupancyRatePercent
		case "tax":
			base.PropertyTax = in.raw.PropertyTax
		case "insurance":
			base.InsuranceCost = in.raw.InsuranceCost
		case "management":
			base.ManagementExpensePercent = in.raw.ManagementExpensePercent
		case "address":
		default:
			return
		}
		changed = true
	})
	return base, changed
}
