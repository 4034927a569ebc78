package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type rmCmd struct {
	index int
}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "remove a property from the portfolio" }
func (*rmCmd) Usage() string {
	return `rentcalc rm -i <index>

  Removes the property at index, as listed by 'ls'. Use 'undo' to get it back.
`
}

func (c *rmCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.index, "i", -1, "index of the property, as listed by 'ls'")
}

func (c *rmCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := openApp(ctx)
	if err != nil {
		return exitStatus("opening portfolio", err)
	}
	defer a.Close()

	prop, err := a.session.RemoveProperty(ctx, c.index)
	if err != nil {
		return exitStatus("removing property", err)
	}
	fmt.Fprintf(stdout, "Removed #%d %s\n", c.index, prop.Address())
	return subcommands.ExitSuccess
}
