package sl

import (
	"log/slog"
)

// Err - helper for putting errors inside logs
func Err(err error) slog.Attr {
	return slog.Attr{
		Key:   "error",
		Value: slog.StringValue(err.Error()),
	}
}
