package models

import (
	"fmt"
	"time"
)

var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseDate accepts RFC 3339 timestamps as well as the plain dates and
// datetime-local values sent by HTML date pickers.
func ParseDate(value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q", value)
}
