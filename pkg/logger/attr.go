package logger

import (
	"log/slog"
	"time"
)

func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error returns an empty Attr for a nil error so it can be passed unconditionally.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

func ProfileID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("profile_id", id)
}

func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

func Step(step int) slog.Attr {
	return slog.Int("step", step)
}

func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

func Component(name string) slog.Attr {
	return slog.String("component", name)
}

func Event(name string) slog.Attr {
	return slog.String("event", name)
}

func Handler(name string) slog.Attr {
	return slog.String("handler", name)
}
