// Package cli provides formatting, parsing and rendering utilities for terminal output.
package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the day.month.year layout used by the forms and lists.
const DateLayout = "02.01.2006"

var (
	// ErrInvalidAmount is returned when an amount cannot be parsed.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrInvalidDate is returned when a date is not in DateLayout.
	ErrInvalidDate = errors.New("invalid date")
)

var monthsGenitive = [...]string{
	"января", "февраля", "марта", "апреля", "мая", "июня",
	"июля", "августа", "сентября", "октября", "ноября", "декабря",
}

// FormatMoney formats an amount with space-grouped thousands and a decimal comma.
// Whole amounts drop the fraction: 1146.28 -> "1 146,28 ₽", 140 -> "140 ₽".
func FormatMoney(d decimal.Decimal, symbol string) string {
	neg := d.IsNegative()
	abs := d.Abs().Round(2)
	whole := abs.Truncate(0)
	cents := abs.Sub(whole).Shift(2).IntPart()

	s := groupDigits(whole.String(), " ")
	if cents > 0 {
		s += fmt.Sprintf(",%02d", cents)
	}
	if neg {
		s = "-" + s
	}
	if symbol != "" {
		s += " " + symbol
	}
	return s
}

// FormatSignedMoney prefixes incomes with "+" and expenses with "-".
func FormatSignedMoney(d decimal.Decimal, income bool, symbol string) string {
	if income {
		return "+" + FormatMoney(d.Abs(), symbol)
	}
	return "-" + FormatMoney(d.Abs(), symbol)
}

// ParseAmount parses user input such as "12 345,50" or "980.5".
// Spaces are treated as thousands separators and a comma as the decimal point.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\u00a0', '\u202f':
			return -1
		}
		return r
	}, s)
	s = strings.ReplaceAll(s, ",", ".")
	if s == "" {
		return decimal.Zero, ErrInvalidAmount
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	return d, nil
}

// FormatDate formats t as dd.mm.yyyy.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}

// ParseDate parses a dd.mm.yyyy date in the local time zone.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, strings.TrimSpace(s), time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return t, nil
}

// FormatDayMonth formats t as "8 ноября".
func FormatDayMonth(t time.Time) string {
	return fmt.Sprintf("%d %s", t.Day(), monthsGenitive[t.Month()-1])
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}
	return groupDigits(strconv.FormatInt(n, 10), ",")
}

// FormatPercent formats a 0-1 float as a percentage string.
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.1f%%", f*100)
}

func groupDigits(s, sep string) string {
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteString(sep)
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}
