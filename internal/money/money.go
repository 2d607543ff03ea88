// Package money holds the fixed-precision primitives used for prices,
// quantities and document totals.
package money

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Places is the number of fractional digits carried by every monetary value.
const Places = 2

// TaxRate is the flat rate applied to taxed invoice lines.
var TaxRate = decimal.RequireFromString("0.075")

var (
	ErrNegative  = errors.New("must not be negative")
	ErrPrecision = fmt.Errorf("must have at most %d fractional digits", Places)
)

// ParseAmount parses a non-negative decimal with at most two fractional digits.
// An empty string parses as zero.
func ParseAmount(s string) (decimal.Decimal, error) {
	d, err := parse(s)
	if err != nil {
		return decimal.Zero, err
	}

	if d.Exponent() < -Places && !d.Equal(d.Round(Places)) {
		return decimal.Zero, ErrPrecision
	}

	return d, nil
}

// ParseQuantity parses a non-negative decimal of any precision.
func ParseQuantity(s string) (decimal.Decimal, error) {
	return parse(s)
}

func parse(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, nil
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid number %q", s)
	}

	if d.IsNegative() {
		return decimal.Zero, ErrNegative
	}

	return d, nil
}

// Round rounds a computed value to monetary precision.
func Round(d decimal.Decimal) decimal.Decimal {
	return d.Round(Places)
}

// Sum adds values together; an empty input sums to zero.
func Sum(values ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(v)
	}

	return total
}

var printer = message.NewPrinter(language.English)

// Naira formats an amount for display, e.g. ₦1,234.50.
func Naira(d decimal.Decimal) string {
	return "₦" + Grouped(d)
}

// Grouped formats an amount with thousands separators and two decimals.
func Grouped(d decimal.Decimal) string {
	return printer.Sprintf("%.2f", d.Round(Places).InexactFloat64())
}
