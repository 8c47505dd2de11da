package shared

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// All monetary amounts are int64 đồng; formatting is display-only.
var vndPrinter = message.NewPrinter(language.Vietnamese)

// FormatVND renders an amount with Vietnamese digit grouping and the đồng sign.
func FormatVND(amount int64) string {
	return vndPrinter.Sprintf("%d ₫", amount)
}
