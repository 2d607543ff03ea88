// Package words spells monetary totals as English currency phrases for
// printed invoices.
package words

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	majorUnit = "naira"
	minorUnit = "kobo"
	suffix    = " Naira Only"
)

// limit is the first magnitude the speller has no scale word for.
var limit = decimal.New(1, 15)

var (
	units = [...]string{
		"zero", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine",
		"ten", "eleven", "twelve", "thirteen", "fourteen", "fifteen", "sixteen",
		"seventeen", "eighteen", "nineteen",
	}
	tens   = [...]string{"", "", "twenty", "thirty", "forty", "fifty", "sixty", "seventy", "eighty", "ninety"}
	scales = [...]string{"", "thousand", "million", "billion", "trillion"}
)

var title = cases.Title(language.English)

// Naira renders total as e.g. "One Hundred And Eighty , Zero Kobo Naira Only".
// It returns "" when the amount cannot be spelled.
func Naira(total decimal.Decimal) string {
	phrase, ok := currency(total)
	if !ok {
		return ""
	}

	phrase = strings.ReplaceAll(phrase, majorUnit, "")
	phrase = strings.ReplaceAll(phrase, "(", "")

	return title.String(phrase) + suffix
}

// currency spells an amount as "<major> naira, <minor> kobo".
func currency(amount decimal.Decimal) (string, bool) {
	amount = amount.Round(2)
	if amount.Abs().GreaterThanOrEqual(limit) {
		return "", false
	}

	sign := ""
	if amount.IsNegative() {
		sign = "minus "
		amount = amount.Neg()
	}

	major := amount.IntPart()
	minor := amount.Sub(decimal.NewFromInt(major)).Shift(2).IntPart()

	return sign + Cardinal(major) + " " + majorUnit + ", " + Cardinal(minor) + " " + minorUnit, true
}

// Cardinal spells a non-negative integer below one quadrillion in British
// style, e.g. 1234 -> "one thousand, two hundred and thirty-four".
func Cardinal(n int64) string {
	if n == 0 {
		return units[0]
	}

	var groups []int64
	for v := n; v > 0; v /= 1000 {
		groups = append(groups, v%1000)
	}

	var sb strings.Builder

	for i := len(groups) - 1; i >= 0; i-- {
		g := groups[i]
		if g == 0 {
			continue
		}

		if sb.Len() > 0 {
			if i == 0 && g < 100 {
				sb.WriteString(" and ")
			} else {
				sb.WriteString(", ")
			}
		}

		sb.WriteString(hundreds(g))

		if scales[i] != "" {
			sb.WriteString(" ")
			sb.WriteString(scales[i])
		}
	}

	return sb.String()
}

func hundreds(n int64) string {
	h, r := n/100, n%100

	switch {
	case h == 0:
		return belowHundred(r)
	case r == 0:
		return units[h] + " hundred"
	default:
		return units[h] + " hundred and " + belowHundred(r)
	}
}

func belowHundred(n int64) string {
	if n < 20 {
		return units[n]
	}

	if n%10 == 0 {
		return tens[n/10]
	}

	return tens[n/10] + "-" + units[n%10]
}
