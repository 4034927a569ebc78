package session

import (
	"github.com/google/uuid"
)

// AlertLevel is the severity of an Alert.
type AlertLevel int

const (
	AlertError AlertLevel = iota
	AlertWarning
	AlertInfo
)

func (l AlertLevel) String() string {
	switch l {
	case AlertWarning:
		return "warning"
	case AlertInfo:
		return "info"
	default:
		return "error"
	}
}

// AlertCode identifies the cause of an Alert.
type AlertCode int

const (
	AlertUnknownError AlertCode = iota
	AlertPortfolioReset
	AlertHistoryReset
)

// Level returns the severity of the code.
func (c AlertCode) Level() AlertLevel {
	switch c {
	case AlertPortfolioReset:
		return AlertWarning
	case AlertHistoryReset:
		return AlertInfo
	default:
		return AlertError
	}
}

// Message returns the user facing message of the code.
func (c AlertCode) Message() string {
	switch c {
	case AlertPortfolioReset:
		return "Saved properties could not be read, starting with an empty portfolio."
	case AlertHistoryReset:
		return "Undo history could not be restored."
	default:
		return "An unknown error occurred. Please try again."
	}
}

// Alert is a notification that stays until dismissed.
type Alert struct {
	ID      uuid.UUID
	Code    AlertCode
	Level   AlertLevel
	Message string
}

// Alerts is the list of pending alerts, oldest first. Its zero value is
// ready to use.
type Alerts struct {
	list []Alert
}

// Push adds an alert for code and returns it.
func (as *Alerts) Push(code AlertCode) Alert {
	a := Alert{
		ID:      uuid.New(),
		Code:    code,
		Level:   code.Level(),
		Message: code.Message(),
	}
	as.list = append(as.list, a)
	return a
}

// List returns the pending alerts.
func (as *Alerts) List() []Alert {
	return append([]Alert(nil), as.list...)
}

// Remove dismisses the alert id. It reports whether it was pending.
func (as *Alerts) Remove(id uuid.UUID) bool {
	for i, a := range as.list {
		if a.ID == id {
			as.list = append(as.list[:i], as.list[i+1:]...)
			return true
		}
	}
	return false
}
