package utils

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var vnPrinter = message.NewPrinter(language.Vietnamese)

// FormatVND groups digits the Vietnamese way and appends the dong sign.
func FormatVND(amount float64) string {
	return vnPrinter.Sprintf("%d", int64(math.Round(amount))) + " ₫"
}
