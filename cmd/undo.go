package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/etnz/rental"
	"github.com/etnz/rental/history"
)

type undoCmd struct{}

func (*undoCmd) Name() string     { return "undo" }
func (*undoCmd) Synopsis() string { return "revert the last change to the portfolio" }
func (*undoCmd) Usage() string {
	return `rentcalc undo

  Restores the portfolio as it was before the last add, update, rm or redo.
`
}

func (*undoCmd) SetFlags(f *flag.FlagSet) {}

func (*undoCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return step(ctx, history.Undo[rental.Portfolio]{})
}

type redoCmd struct{}

func (*redoCmd) Name() string     { return "redo" }
func (*redoCmd) Synopsis() string { return "reapply the last undone change" }
func (*redoCmd) Usage() string {
	return `rentcalc redo

  Restores the portfolio as it was before the last undo. Any other change
  since that undo clears what can be redone.
`
}

func (*redoCmd) SetFlags(f *flag.FlagSet) {}

func (*redoCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return step(ctx, history.Redo[rental.Portfolio]{})
}

// step applies an undo or a redo and prints its notification.
func step(ctx context.Context, action history.Action[rental.Portfolio]) subcommands.ExitStatus {
	a, err := openApp(ctx)
	if err != nil {
		return exitStatus("opening portfolio", err)
	}
	defer a.Close()

	ev, err := a.session.Apply(ctx, action)
	if err != nil {
		return exitStatus("saving portfolio", err)
	}
	if !ev.Changed() {
		fmt.Fprintln(stdout, ev.Kind)
		return subcommands.ExitSuccess
	}
	a.printToasts()
	return subcommands.ExitSuccess
}
