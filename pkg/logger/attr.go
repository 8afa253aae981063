package logger

import (
	"log/slog"
	"time"
)

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// RecordID records the provider record identifier under the key "record_id".
// An empty id returns an empty Attr.
func RecordID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("record_id", id)
}

// Confidence records a confidence score under the key "confidence".
func Confidence(score int) slog.Attr {
	return slog.Int("confidence", score)
}

// Issues records the failed check messages under the key "issues".
func Issues(issues []string) slog.Attr {
	return slog.Any("issues", issues)
}

// Fields records the names of failed fields under the key "fields".
func Fields(fields []string) slog.Attr {
	return slog.Any("fields", fields)
}

// Outcome records the validation outcome under the key "outcome".
func Outcome(outcome string) slog.Attr {
	return slog.String("outcome", outcome)
}

// Duration records a duration under the key "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Path records a file path under the key "path".
func Path(p string) slog.Attr {
	return slog.String("path", p)
}
