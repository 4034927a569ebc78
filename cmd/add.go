package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/etnz/rental"
	"github.com/etnz/rental/renderer"
)

// addCmd holds the flags for the 'add' subcommand.
type addCmd struct {
	input inputFlags
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add a property to the portfolio" }
func (*addCmd) Usage() string {
	return `rentcalc add -price <price> -down <down> -apr <apr> -term <years> -stream <value[xcount]>...

  Adds a property at the top of the portfolio and prints its figures.
  Percentages are whole numbers: -apr 4 is 4%.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	c.input.setFlags(f, rental.FormDefaults())
}

func (c *addCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() > 0 {
		fmt.Fprintf(stderr, "Unexpected arguments: %v\n", f.Args())
		return subcommands.ExitUsageError
	}
	a, err := openApp(ctx)
	if err != nil {
		return exitStatus("opening portfolio", err)
	}
	defer a.Close()

	prop, err := a.session.AddProperty(ctx, c.input.address, c.input.raw)
	if err != nil {
		return exitStatus("adding property", err)
	}
	printMarkdown(renderer.RenderProperty(renderer.NewProperty(0, prop, a.cfg.Currency)))
	return subcommands.ExitSuccess
}
