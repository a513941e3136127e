package notify

import "go.uber.org/zap"

// Kind classifies a user-visible notification.
type Kind string

const (
	Success Kind = "success"
	Error   Kind = "error"
)

// Notifier receives the terminal outcome of a user-facing operation.
// Implementations must be safe for concurrent use.
type Notifier interface {
	Notify(kind Kind, message string)
}

// Func adapts a plain function to the Notifier interface.
type Func func(kind Kind, message string)

func (f Func) Notify(kind Kind, message string) { f(kind, message) }

// LogNotifier routes notifications to a zap logger. Useful as a default
// when no interactive surface is attached.
type LogNotifier struct {
	logger *zap.Logger
}

func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Notify(kind Kind, message string) {
	switch kind {
	case Error:
		n.logger.Warn("notification", zap.String("kind", string(kind)), zap.String("message", message))
	default:
		n.logger.Info("notification", zap.String("kind", string(kind)), zap.String("message", message))
	}
}

// Discard drops all notifications.
var Discard Notifier = Func(func(Kind, string) {})
