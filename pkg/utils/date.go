package utils

import (
	"time"
)

var ictLocation = time.FixedZone("ICT", 7*60*60)

// ConvertDateTimeToHumanReadableFormat renders t in Indochina Time.
func ConvertDateTimeToHumanReadableFormat(t time.Time) string {
	return t.In(ictLocation).Format("02/01/2006, 15:04 ICT")
}

// CompletionYear returns the year of t, or "N/A" when t is unset.
func CompletionYear(t *time.Time) string {
	if t == nil || t.IsZero() {
		return "N/A"
	}
	return t.Format("2006")
}
