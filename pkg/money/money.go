// Package money renders whole-unit amounts for display.
package money

import (
	"fmt"
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type Formatter struct {
	unit    currency.Unit
	printer *message.Printer
}

// NewFormatter builds a formatter for an ISO 4217 code such as "USD".
func NewFormatter(code string, tag language.Tag) (*Formatter, error) {
	unit, err := currency.ParseISO(strings.ToUpper(strings.TrimSpace(code)))
	if err != nil {
		return nil, fmt.Errorf("currency %q: %w", code, err)
	}
	return &Formatter{
		unit:    unit,
		printer: message.NewPrinter(tag),
	}, nil
}

func (f *Formatter) Format(amount int64) string {
	return f.printer.Sprint(currency.Symbol(f.unit.Amount(amount)))
}

func (f *Formatter) Code() string {
	return f.unit.String()
}
