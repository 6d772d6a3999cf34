package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// VisitID records the visit token under the key "visit_id".
// If id is empty, it returns an empty Attr.
func VisitID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("visit_id", id)
}

// VisitorID records the visitor token under the key "visitor_id".
// If id is empty, it returns an empty Attr.
func VisitorID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("visitor_id", id)
}

// EventID records the event identifier under the key "event_id".
// If id is empty, it returns an empty Attr.
func EventID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("event_id", id)
}

// EventName records the event name under the key "event".
// If name is empty, it returns an empty Attr.
func EventName(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("event", name)
}
