package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"

	"github.com/PaesslerAG/jsonpath"
	"github.com/google/subcommands"

	"github.com/etnz/rental"
)

type queryCmd struct{}

func (*queryCmd) Name() string     { return "query" }
func (*queryCmd) Synopsis() string { return "query the portfolio with a JSONPath expression" }
func (*queryCmd) Usage() string {
	return `rentcalc query <jsonpath>

  Evaluates a JSONPath expression on the portfolio and prints the result as
  JSON. Each property carries its "metrics", the portfolio its "totals".

  Example: rentcalc query '$.properties[?(@.metrics.health == "healthy")].address'
`
}

func (*queryCmd) SetFlags(f *flag.FlagSet) {}

func (*queryCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(stderr, "Expected exactly one JSONPath expression")
		return subcommands.ExitUsageError
	}
	a, err := openApp(ctx)
	if err != nil {
		return exitStatus("opening portfolio", err)
	}
	defer a.Close()

	doc, err := queryDocument(a.session.Portfolio())
	if err != nil {
		return exitStatus("building query document", err)
	}
	val, err := jsonpath.Get(f.Arg(0), doc)
	if err != nil {
		fmt.Fprintf(stderr, "Error evaluating %q: %v\n", f.Arg(0), err)
		return subcommands.ExitUsageError
	}
	out, err := json.MarshalIndent(val, "", "  ")
	if err != nil {
		return exitStatus("encoding result", err)
	}
	fmt.Fprintln(stdout, string(out))
	return subcommands.ExitSuccess
}

// queryDocument returns the generic JSON form of p, with the metrics of each
// property and the totals. Non finite metrics are null.
func queryDocument(p rental.Portfolio) (map[string]any, error) {
	data, err := rental.Serialize(p)
	if err != nil {
		return nil, err
	}
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	props, _ := doc["properties"].([]any)
	for i, prop := range p.Properties() {
		if i >= len(props) {
			break
		}
		m, ok := props[i].(map[string]any)
		if !ok {
			continue
		}
		s := prop.Summary()
		m["metrics"] = map[string]any{
			"monthlyLoanPayment":     finite(s.MonthlyLoanPayment),
			"monthlyManagementCost":  finite(s.MonthlyManagementCost),
			"monthlyMaintenanceCost": finite(s.MonthlyMaintenanceCost),
			"monthlyCost":            finite(s.MonthlyCost),
			"monthlyRevenue":         finite(s.MonthlyRevenue),
			"monthlyNetProfit":       finite(s.MonthlyNetProfit),
			"netProfitThreshold":     finite(s.NetProfitThreshold),
			"annualROI":              finite(float64(s.AnnualROI)),
			"health":                 s.Health.String(),
		}
	}
	t := p.Totals()
	doc["totals"] = map[string]any{
		"properties":       t.Properties,
		"skipped":          t.Skipped,
		"monthlyRevenue":   finite(t.MonthlyRevenue),
		"monthlyCost":      finite(t.MonthlyCost),
		"monthlyNetProfit": finite(t.MonthlyNetProfit),
		"downPayment":      finite(t.DownPayment),
		"annualROI":        finite(float64(t.AnnualROI)),
	}
	return doc, nil
}

func finite(v float64) any {
	if rental.IsFinite(v) {
		return v
	}
	return nil
}
