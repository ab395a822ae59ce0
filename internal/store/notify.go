package store

// Notifier receives the transient user-facing notifications (the toast
// channel). It is independent of the per-store error slot: a failure sets
// the error AND fires Notifier.Error, always both.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// NopNotifier discards notifications.
type NopNotifier struct{}

func (NopNotifier) Success(string) {}
func (NopNotifier) Error(string)   {}
