package srx

import "log/slog"

// LogObserver returns a terminal observer that records every emission at
// debug level, one record per value.
func LogObserver[T any](log *slog.Logger, msg string) Observer[T] {
	return func(v T) {
		log.Debug(msg, "value", v)
	}
}
