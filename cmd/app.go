// Package cmd implements the rentcalc command line application.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"

	"github.com/etnz/rental"
	"github.com/etnz/rental/config"
	"github.com/etnz/rental/logger"
	"github.com/etnz/rental/session"
	"github.com/etnz/rental/store"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for _, g := range groups() {
		for _, cmd := range g.commands {
			c.Register(cmd, g.name)
		}
	}
}

type group struct {
	name     string
	commands []subcommands.Command
}

func groups() []group {
	return []group{
		{"properties", []subcommands.Command{&addCmd{}, &updateCmd{}, &rmCmd{}}},
		{"history", []subcommands.Command{&undoCmd{}, &redoCmd{}}},
		{"reports", []subcommands.Command{&lsCmd{}, &showCmd{}, &calcCmd{}, &exportCmd{}, &queryCmd{}}},
		{"", []subcommands.Command{&topicCmd{}}},
	}
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var rawOutput = flag.Bool("raw", false, "print markdown as is instead of rendering it for the terminal")
var envFile = flag.String("env", ".env", "optional file of RENTAL_* variables")

// stdout receives the command output, stderr its errors and alerts.
var stdout io.Writer = os.Stdout
var stderr io.Writer = os.Stderr

// app is the state shared by the commands of one run.
type app struct {
	cfg     *config.Config
	log     zerolog.Logger
	store   store.Store
	session *session.Session
	toasts  *session.Toasts
	alerts  *session.Alerts
}

// loadConfig reads the configuration and builds the logger.
func loadConfig() (*config.Config, zerolog.Logger, error) {
	cfg, err := config.Load(*envFile)
	if err != nil {
		return nil, zerolog.Nop(), err
	}
	log := logger.New(logger.Config{Level: cfg.LogLevel, Pretty: cfg.LogPretty})
	return cfg, log, nil
}

// openApp opens the configured store and the session on it.
func openApp(ctx context.Context) (*app, error) {
	cfg, log, err := loadConfig()
	if err != nil {
		return nil, err
	}
	st, err := store.Open(store.Kind(cfg.Store), cfg.StorePath())
	if err != nil {
		return nil, err
	}
	log.Debug().Str("store", cfg.Store).Str("path", cfg.StorePath()).Msg("store opened")

	toasts, alerts := &session.Toasts{}, &session.Alerts{}
	s, err := session.Open(ctx, st,
		session.WithLogger(log),
		session.WithHistoryLimit(cfg.HistoryLimit),
		session.WithToasts(toasts),
		session.WithAlerts(alerts),
	)
	if err != nil {
		st.Close()
		return nil, err
	}
	return &app{cfg: cfg, log: log, store: st, session: s, toasts: toasts, alerts: alerts}, nil
}

// Close reports the pending alerts on stderr and closes the store.
func (a *app) Close() error {
	for _, al := range a.alerts.List() {
		fmt.Fprintf(stderr, "%s: %s\n", al.Level, al.Message)
		a.alerts.Remove(al.ID)
	}
	return a.store.Close()
}

// printToasts prints the pending notifications.
func (a *app) printToasts() {
	for _, t := range a.toasts.Active(time.Now()) {
		fmt.Fprintln(stdout, t.Message)
	}
}

// exitStatus reports err on stderr and maps it to an exit status.
func exitStatus(what string, err error) subcommands.ExitStatus {
	fmt.Fprintf(stderr, "Error %s: %v\n", what, err)
	if errors.Is(err, rental.ErrIndexOutOfRange) {
		return subcommands.ExitUsageError
	}
	return subcommands.ExitFailure
}

// printMarkdown renders md for the terminal, unless -raw is set.
func printMarkdown(md string) {
	if *rawOutput {
		fmt.Fprint(stdout, md)
		return
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(120),
	)
	if err != nil {
		fmt.Fprint(stdout, md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Fprint(stdout, md)
		return
	}
	fmt.Fprint(stdout, out)
}
