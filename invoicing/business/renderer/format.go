package renderer

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// currencySymbols covers the currencies the business actually bills in.
// Anything else falls back to a "{code} " prefix.
var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
	"AUD": "A$",
	"CAD": "C$",
}

type amountFormatter struct {
	printer *message.Printer
}

func newAmountFormatter(locale string) *amountFormatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	return &amountFormatter{printer: message.NewPrinter(tag)}
}

// Format renders cents as a currency amount with two decimal places and
// locale-aware thousands separators, e.g. 123456 USD -> "$1,234.56".
func (f *amountFormatter) Format(cents int64, currency string) string {
	symbol, ok := currencySymbols[strings.ToUpper(currency)]
	if !ok {
		symbol = strings.ToUpper(currency) + " "
	}
	return symbol + f.printer.Sprintf("%.2f", float64(cents)/100)
}

// maskAccountNumber hides all but the last four characters of an account
// number. Numbers of four characters or fewer are shown as-is.
func maskAccountNumber(account string) string {
	if len(account) <= 4 {
		return account
	}
	return strings.Repeat("*", len(account)-4) + account[len(account)-4:]
}
