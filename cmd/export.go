package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"

	"github.com/etnz/rental"
)

type exportCmd struct {
	output string
	format string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the portfolio as CSV or JSON" }
func (*exportCmd) Usage() string {
	return `rentcalc export [-format csv|json] [-o <file>]

  Writes the portfolio to a file, or to the standard output. CSV has one row
  per property with its input and its monthly figures, JSON is the saved form.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "output file, standard output if empty")
	f.StringVar(&c.format, "format", "csv", "output format: csv or json")
}

func (c *exportCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var encode func(io.Writer, rental.Portfolio) error
	switch c.format {
	case "csv":
		encode = rental.EncodeCSV
	case "json":
		encode = rental.EncodePortfolio
	default:
		fmt.Fprintf(stderr, "Unknown format %q, use csv or json\n", c.format)
		return subcommands.ExitUsageError
	}

	a, err := openApp(ctx)
	if err != nil {
		return exitStatus("opening portfolio", err)
	}
	defer a.Close()

	w := stdout
	if c.output != "" {
		file, err := os.Create(c.output)
		if err != nil {
			return exitStatus("creating output file", err)
		}
		defer file.Close()
		w = file
	}
	if err := encode(w, a.session.Portfolio()); err != nil {
		return exitStatus("exporting portfolio", err)
	}
	if c.output != "" {
		fmt.Fprintf(stdout, "Exported %d properties to %s\n", a.session.Portfolio().Len(), c.output)
	}
	return subcommands.ExitSuccess
}
