package generator

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// currencySymbols maps the ISO codes projects commonly use to display
// symbols. Unlisted codes render as "CODE amount".
var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
	"CAD": "CA$",
	"AUD": "A$",
	"SEK": "kr ",
	"NOK": "kr ",
}

// priceFormatter formats monetary amounts with locale-aware digit grouping.
type priceFormatter struct {
	printer *message.Printer
	symbol  string
	code    string
}

func newPriceFormatter(locale, code string) priceFormatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.AmericanEnglish
	}
	sym, ok := currencySymbols[code]
	if !ok {
		sym = code + " "
	}
	return priceFormatter{printer: message.NewPrinter(tag), symbol: sym, code: code}
}

// Format renders an amount like "$9.99" or "€1,299.00" depending on locale.
func (f priceFormatter) Format(amount float64) string {
	return f.symbol + f.printer.Sprintf("%.2f", amount)
}
