// Package format holds display formatting helpers shared across the
// application.
package format

import (
	"time"
)

// DefaultTimeFormat is used when no display format is configured.
const DefaultTimeFormat = "2006-01-02 15:04"

// FormatDate formats a timestamp for display using the given layout.
// An empty layout falls back to DefaultTimeFormat.
func FormatDate(t time.Time, layout string) string {
	if layout == "" {
		layout = DefaultTimeFormat
	}
	return t.Format(layout)
}
