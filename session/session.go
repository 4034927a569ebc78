// Package session keeps a Portfolio, its undo/redo history and their
// persistence in sync.
//
// Every change goes through the history and is then saved, so reopening the
// same store restores both the portfolio and the ability to undo.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/etnz/rental"
	"github.com/etnz/rental/history"
	"github.com/etnz/rental/store"
)

// Store keys.
const (
	PortfolioKey = "rental_calculator_app_model"
	HistoryKey   = "rental_calculator_history"
)

// Session is an open portfolio. It is not safe for concurrent use.
type Session struct {
	store    store.Store
	undoer   *history.Undoer[rental.Portfolio]
	clock    *rental.Clock
	log      zerolog.Logger
	limit    int
	toasts   *Toasts
	alerts   *Alerts
	observer func(history.Event)
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger. Sessions are silent by default.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Session) { s.log = l }
}

// WithClock sets the clock stamping new properties.
func WithClock(c *rental.Clock) Option {
	return func(s *Session) { s.clock = c }
}

// WithHistoryLimit bounds the number of undo steps, see history.WithLimit.
func WithHistoryLimit(n int) Option {
	return func(s *Session) { s.limit = n }
}

// WithToasts makes undo and redo push their toast into ts.
func WithToasts(ts *Toasts) Option {
	return func(s *Session) { s.toasts = ts }
}

// WithAlerts makes discarded saved data and failed saves push an alert
// into as.
func WithAlerts(as *Alerts) Option {
	return func(s *Session) { s.alerts = as }
}

// WithObserver registers f to be called after every history transition.
func WithObserver(f func(history.Event)) Option {
	return func(s *Session) { s.observer = f }
}

// Open loads the portfolio and its history from st.
//
// Absent or malformed data is replaced by an empty portfolio. A history that
// does not end on the loaded portfolio is discarded. Only store failures are
// returned as errors.
func Open(ctx context.Context, st store.Store, opts ...Option) (*Session, error) {
	s := &Session{
		store: st,
		clock: &rental.Clock{},
		log:   zerolog.Nop(),
		limit: history.Limit,
	}
	for _, opt := range opts {
		opt(s)
	}

	p, reset, err := loadPortfolio(ctx, st, s.log)
	if err != nil {
		return nil, err
	}
	if reset {
		s.alert(AlertPortfolioReset)
	}
	hopts := []history.Option{history.WithLimit(s.limit), history.WithObserver(s.notify)}
	s.undoer = history.New(p, hopts...)

	data, err := st.Load(ctx, HistoryKey)
	switch {
	case errors.Is(err, store.ErrNotFound):
		s.log.Debug().Msg("no history, starting a new one")
	case err != nil:
		return nil, fmt.Errorf("load history: %w", err)
	default:
		u := history.New(rental.Portfolio{}, hopts...)
		if err := json.Unmarshal(data, u); err != nil {
			s.log.Warn().Err(err).Msg("discarding malformed history")
			s.alert(AlertHistoryReset)
			break
		}
		if current := u.Current(); !current.Equal(p) {
			s.log.Warn().Msg("discarding history out of sync with the portfolio")
			s.alert(AlertHistoryReset)
			break
		}
		s.undoer = u
	}
	s.observeClock()
	return s, nil
}

// LoadPortfolio reads the portfolio saved in st. Absent or malformed data
// yields an empty portfolio, logged as a warning. Only store failures are
// returned as errors.
func LoadPortfolio(ctx context.Context, st store.Store, log zerolog.Logger) (rental.Portfolio, error) {
	p, _, err := loadPortfolio(ctx, st, log)
	return p, err
}

// loadPortfolio is LoadPortfolio that also reports whether malformed data
// was discarded.
func loadPortfolio(ctx context.Context, st store.Store, log zerolog.Logger) (rental.Portfolio, bool, error) {
	data, err := st.Load(ctx, PortfolioKey)
	if errors.Is(err, store.ErrNotFound) {
		log.Debug().Str("key", PortfolioKey).Msg("no saved portfolio, starting empty")
		return rental.Portfolio{}, false, nil
	}
	if err != nil {
		return rental.Portfolio{}, false, fmt.Errorf("load portfolio: %w", err)
	}
	p, err := rental.Deserialize(data)
	if err != nil {
		log.Warn().Err(err).Str("key", PortfolioKey).Msg("malformed portfolio, starting empty")
		return rental.Portfolio{}, true, nil
	}
	log.Debug().Int("properties", p.Len()).Msg("portfolio loaded")
	return p, false, nil
}

// Portfolio returns a copy of the current portfolio.
func (s *Session) Portfolio() rental.Portfolio { return s.undoer.Current() }

// CanUndo reports whether Undo would change the portfolio.
func (s *Session) CanUndo() bool { return s.undoer.CanUndo() }

// CanRedo reports whether Redo would change the portfolio.
func (s *Session) CanRedo() bool { return s.undoer.CanRedo() }

// History returns the number of undo and redo steps available.
func (s *Session) History() (undo, redo int) { return s.undoer.Len() }

// AddProperty creates a property from raw at the head of the portfolio.
func (s *Session) AddProperty(ctx context.Context, address string, raw rental.RawInput) (rental.Property, error) {
	prop := rental.NewProperty(s.clock, address, raw)
	next := s.undoer.Current()
	next.Add(prop)
	s.logSummary("added", prop)
	if _, err := s.Apply(ctx, history.Record[rental.Portfolio]{State: next}); err != nil {
		return rental.Property{}, err
	}
	return prop, nil
}

// UpdateProperty replaces the input of the property at index i, keeping its
// identity. A non empty address replaces the address too.
func (s *Session) UpdateProperty(ctx context.Context, i int, address string, raw rental.RawInput) (rental.Property, error) {
	next := s.undoer.Current()
	prop, ok := next.Get(i)
	if !ok {
		return rental.Property{}, fmt.Errorf("update property #%d of %d: %w", i, next.Len(), rental.ErrIndexOutOfRange)
	}
	prop = prop.Replace(raw)
	if address != "" {
		prop = prop.WithAddress(address)
	}
	if err := next.Update(i, prop); err != nil {
		return rental.Property{}, err
	}
	s.logSummary("updated", prop)
	if _, err := s.Apply(ctx, history.Record[rental.Portfolio]{State: next}); err != nil {
		return rental.Property{}, err
	}
	return prop, nil
}

// RemoveProperty deletes the property at index i and returns it.
func (s *Session) RemoveProperty(ctx context.Context, i int) (rental.Property, error) {
	next := s.undoer.Current()
	prop, ok := next.Get(i)
	if !ok {
		return rental.Property{}, fmt.Errorf("remove property #%d of %d: %w", i, next.Len(), rental.ErrIndexOutOfRange)
	}
	if err := next.Remove(i); err != nil {
		return rental.Property{}, err
	}
	if _, err := s.Apply(ctx, history.Record[rental.Portfolio]{State: next}); err != nil {
		return rental.Property{}, err
	}
	return prop, nil
}

// Undo restores the previous portfolio.
func (s *Session) Undo(ctx context.Context) (history.Event, error) {
	return s.Apply(ctx, history.Undo[rental.Portfolio]{})
}

// Redo restores the portfolio replaced by the last Undo.
func (s *Session) Redo(ctx context.Context) (history.Event, error) {
	return s.Apply(ctx, history.Redo[rental.Portfolio]{})
}

// Apply runs a on the history and saves the result when it changed the
// portfolio. On a save error the in-memory state is already changed.
func (s *Session) Apply(ctx context.Context, a history.Action[rental.Portfolio]) (history.Event, error) {
	ev := s.undoer.Apply(a)
	if !ev.Changed() {
		return ev, nil
	}
	s.observeClock()
	if err := s.Save(ctx); err != nil {
		s.alert(AlertUnknownError)
		return ev, err
	}
	return ev, nil
}

// Save writes the current portfolio and its history into the store.
func (s *Session) Save(ctx context.Context) error {
	data, err := rental.Serialize(s.undoer.Current())
	if err != nil {
		return fmt.Errorf("encode portfolio: %w", err)
	}
	if err := s.store.Save(ctx, PortfolioKey, data); err != nil {
		return fmt.Errorf("save portfolio: %w", err)
	}
	hist, err := json.Marshal(s.undoer)
	if err != nil {
		return fmt.Errorf("encode history: %w", err)
	}
	if err := s.store.Save(ctx, HistoryKey, hist); err != nil {
		return fmt.Errorf("save history: %w", err)
	}
	undo, redo := s.undoer.Len()
	s.log.Debug().Int("undo", undo).Int("redo", redo).Msg("portfolio saved")
	return nil
}

func (s *Session) notify(e history.Event) {
	s.log.Debug().Stringer("event", e.Kind).Msg("history")
	if s.toasts != nil {
		s.toasts.Notify(e)
	}
	if s.observer != nil {
		s.observer(e)
	}
}

func (s *Session) alert(code AlertCode) {
	if s.alerts != nil {
		s.alerts.Push(code)
	}
}

// observeClock keeps new stamps after the ones of the current portfolio.
func (s *Session) observeClock() {
	p := s.undoer.Current()
	for _, prop := range p.Properties() {
		s.clock.Observe(prop.CreatedAt())
	}
}

func (s *Session) logSummary(msg string, p rental.Property) {
	if s.log.GetLevel() > zerolog.DebugLevel {
		return
	}
	sum := p.Summary()
	s.log.Debug().
		Int64("createdAt", p.CreatedAt()).
		Str("address", p.Address()).
		Float64("loanPayment", sum.MonthlyLoanPayment).
		Float64("revenue", sum.MonthlyRevenue).
		Float64("cost", sum.MonthlyCost).
		Float64("netProfit", sum.MonthlyNetProfit).
		Float64("roi", float64(sum.AnnualROI)).
		Stringer("health", sum.Health).
		Msg(msg)
}
