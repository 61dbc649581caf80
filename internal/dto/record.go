package dto

import (
	"strings"
	"time"
)

// backendTimeLayouts covers timezone-aware and naive UTC timestamps.
var backendTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	time.DateOnly,
}

func parseBackendTime(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range backendTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// recordID prefers the Mongo "_id" over "id".
func recordID(mongoID, id string) string {
	if mongoID != "" {
		return mongoID
	}
	return id
}
