package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/etnz/rental"
	"github.com/etnz/rental/renderer"
)

// updateCmd holds the flags for the 'update' subcommand.
type updateCmd struct {
	index int
	input inputFlags
}

func (*updateCmd) Name() string     { return "update" }
func (*updateCmd) Synopsis() string { return "change the input of a property" }
func (*updateCmd) Usage() string {
	return `rentcalc update -i <index> [-price <price>] [-stream <value[xcount]>]...

  Replaces the given fields of the property at index, as listed by 'ls'.
  Other fields, the creation date and the position are kept.
`
}

func (c *updateCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.index, "i", -1, "index of the property, as listed by 'ls'")
	c.input.setFlags(f, rental.NewPropertyDefaults())
}

func (c *updateCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	raw, changed := c.input.merge(f, prop.Raw())
	if !changed {
		fmt.Fprintln(stderr, "Nothing to update, set at least one input flag")
		return subcommands.ExitUsageError
	}
	prop, err = a.session.UpdateProperty(ctx, c.index, c.input.address, raw)
	if err != nil {
		return exitStatus("updating property", err)
	}
	printMarkdown(renderer.RenderProperty(renderer.NewProperty(c.index, prop, a.cfg.Currency)))
	return subcommands.ExitSuccess
}
