package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/etnz/rental"
	"github.com/etnz/rental/renderer"
)

type calcCmd struct {
	input inputFlags
}

func (*calcCmd) Name() string     { return "calc" }
func (*calcCmd) Synopsis() string { return "compute the figures of a property without saving it" }
func (*calcCmd) Usage() string {
	return `rentcalc calc -price <price> -down <down> -apr <apr> -term <years> -stream <value[xcount]>...

  Computes the monthly figures of a property, leaving the portfolio untouched.
`
}

func (c *calcCmd) SetFlags(f *flag.FlagSet) {
	c.input.setFlags(f, rental.FormDefaults())
}

func (c *calcCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, log, err := loadConfig()
	if err != nil {
		return exitStatus("loading configuration", err)
	}
	fin := rental.NewFinancials(c.input.raw)
	log.Debug().Interface("input", fin.Input).Msg("calculation")
	printMarkdown(renderer.RenderCalculation(renderer.NewCalculation(fin, cfg.Currency)))
	return subcommands.ExitSuccess
}
