package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/etnz/rental/renderer"
)

type showCmd struct {
	index int
}

func (*showCmd) Name() string     { return "show" }
func (*showCmd) Synopsis() string { return "display the details of a property" }
func (*showCmd) Usage() string {
	return `rentcalc show -i <index>

  Displays the input and every monthly figure of the property at index.
`
}

func (c *showCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.index, "i", 0, "index of the property, as listed by 'ls'")
}

func (c *showCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := openApp(ctx)
	if err != nil {
		return exitStatus("opening portfolio", err)
	}
	defer a.Close()

	p := a.session.Portfolio()
	prop, ok := p.Get(c.index)
	if !ok {
		fmt.Fprintf(stderr, "No property #%d, the portfolio has %d\n", c.index, p.Len())
		return subcommands.ExitUsageError
	}
	printMarkdown(renderer.RenderProperty(renderer.NewProperty(c.index, prop, a.cfg.Currency)))
	return subcommands.ExitSuccess
}
