package client

import "moneymap/internal/logger"

// Notifier surfaces mutation outcomes to the user. Every add, update, and
// delete attempt ends in exactly one Success or Error call; there are no
// silent failures.
type Notifier interface {
	Success(message string)
	Error(message string)
}

// LogNotifier reports outcomes through the application logger.
type LogNotifier struct{}

func (LogNotifier) Success(message string) { logger.Get().Infow("notification", "message", message) }
func (LogNotifier) Error(message string)   { logger.Get().Warnw("notification", "message", message) }
