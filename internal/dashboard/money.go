package dashboard

import (
	"math"
	"strconv"
	"strings"
)

// CurrencySymbol prefixes every money value the dashboard renders.
const CurrencySymbol = "₺"

// FormatLira renders an amount with Turkish grouping: dot thousands
// separators, comma decimals, and two fraction digits only when the amount
// is not a whole number of lira. One policy everywhere, full precision, no
// "K" abbreviation.
func FormatLira(v float64) string {
	return CurrencySymbol + formatGrouped(v)
}

func formatGrouped(v float64) string {
	cents := int64(math.Round(v * 100))
	neg := cents < 0
	if neg {
		cents = -cents
	}
	whole := cents / 100
	frac := cents % 100

	digits := strconv.FormatInt(whole, 10)
	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}
	if frac != 0 {
		b.WriteByte(',')
		b.WriteString(strconv.FormatInt(frac/10, 10))
		b.WriteString(strconv.FormatInt(frac%10, 10))
	}
	return b.String()
}

// formatPercent renders an integer percentage in the dashboard's prefix
// style, e.g. "%25".
func formatPercent(p float64) string {
	return "%" + strconv.Itoa(int(math.Round(p)))
}

// parseLoosePrice extracts the leading numeric value out of free text the
// way the custom_text widget expects: currency marks and letters are
// stripped, then the longest leading float is parsed. Returns false when no
// digits lead the cleaned text.
func parseLoosePrice(text string) (float64, bool) {
	var cleaned strings.Builder
	for _, r := range text {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			cleaned.WriteRune(r)
		}
	}
	s := cleaned.String()
	if s == "" {
		return 0, false
	}

	// Longest valid leading prefix: optional sign, digits, one dot.
	end := 0
	seenDigit := false
	seenDot := false
	for i, r := range s {
		if r == '-' {
			if i != 0 {
				break
			}
		} else if r == '.' {
			if seenDot {
				break
			}
			seenDot = true
		} else if !seenDigit {
			seenDigit = true
		}
		end = i + 1
	}
	if !seenDigit {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.TrimSuffix(s[:end], "."), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
