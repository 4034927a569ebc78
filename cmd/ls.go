package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/etnz/rental/renderer"
)

type lsCmd struct{}

func (*lsCmd) Name() string     { return "ls" }
func (*lsCmd) Synopsis() string { return "list the properties of the portfolio" }
func (*lsCmd) Usage() string {
	return `rentcalc ls

  Lists the properties, newest first, with their monthly figures and the
  portfolio totals.
`
}

func (*lsCmd) SetFlags(f *flag.FlagSet) {}

func (*lsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := openApp(ctx)
	if err != nil {
		return exitStatus("opening portfolio", err)
	}
	defer a.Close()

	v := renderer.NewPortfolio(a.session.Portfolio(), a.cfg.Currency)
	v.CanUndo, v.CanRedo = a.session.CanUndo(), a.session.CanRedo()
	printMarkdown(renderer.RenderPortfolio(v))
	return subcommands.ExitSuccess
}
