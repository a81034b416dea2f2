package report

import "log/slog"

// Notification levels.
const (
	LevelInfo    = "info"
	LevelSuccess = "success"
	LevelError   = "error"
)

// Notifier receives the transient progress, success and failure notices
// emitted around report generation. Implementations surface them however the
// front end sees fit; failures never reach the caller as anything but an
// error value.
type Notifier interface {
	Notify(level, message string)
}

// LogNotifier writes notifications to a structured logger. It is the default
// for headless runs.
type LogNotifier struct {
	Log *slog.Logger
}

func (n LogNotifier) Notify(level, message string) {
	log := n.Log
	if log == nil {
		log = slog.Default()
	}
	switch level {
	case LevelError:
		log.Error(message)
	default:
		log.Info(message, "level", level)
	}
}
