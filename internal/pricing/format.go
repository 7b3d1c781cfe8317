package pricing

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// lakhThreshold is the value at which INR amounts switch to lakh
// notation (₹1.00 L == ₹100,000).
const lakhThreshold = 100000

// printer formats rupee amounts with Indian digit grouping.
//
//nolint:gochecknoglobals // Global printer is idiomatic for x/text/message usage.
var printer = message.NewPrinter(language.Make("en-IN"))

// FormatINR renders a rupee amount for display: lakh notation at or
// above ₹1,00,000, grouped digits below.
//
// Example: FormatINR(1479000) returns "₹14.79 L";
// FormatINR(75920) returns "₹75,920".
func FormatINR(value int) string {
	if value >= lakhThreshold || value <= -lakhThreshold {
		return fmt.Sprintf("₹%.2f L", float64(value)/lakhThreshold)
	}
	return printer.Sprintf("₹%d", value)
}

// FormatINRPtr renders a nullable rupee amount, using "N/A" for nil.
// Raw values always travel alongside these strings; the formatted form
// exists purely for display.
func FormatINRPtr(value *int) string {
	if value == nil {
		return "N/A"
	}
	return FormatINR(*value)
}
