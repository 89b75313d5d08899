package cli

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1146.28", "1 146,28 ₽"},
		{"140", "140 ₽"},
		{"28204.43", "28 204,43 ₽"},
		{"2450.3", "2 450,30 ₽"},
		{"1000000", "1 000 000 ₽"},
		{"-5.5", "-5,50 ₽"},
		{"0.004", "0 ₽"},
	}
	for _, tt := range tests {
		got := FormatMoney(decimal.RequireFromString(tt.in), "₽")
		if got != tt.want {
			t.Errorf("FormatMoney(%s) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatSignedMoney(t *testing.T) {
	if got := FormatSignedMoney(decimal.NewFromInt(50000), true, "₽"); got != "+50 000 ₽" {
		t.Fatalf("income = %q, want %q", got, "+50 000 ₽")
	}
	if got := FormatSignedMoney(decimal.NewFromInt(480), false, ""); got != "-480" {
		t.Fatalf("expense = %q, want %q", got, "-480")
	}
}

func TestParseAmount(t *testing.T) {
	got, err := ParseAmount("12 345,50")
	if err != nil {
		t.Fatalf("ParseAmount: %v", err)
	}
	if !got.Equal(decimal.RequireFromString("12345.5")) {
		t.Fatalf("ParseAmount = %s, want 12345.5", got)
	}

	neg, err := ParseAmount("-5")
	if err != nil {
		t.Fatalf("ParseAmount(-5): %v", err)
	}
	if !neg.IsNegative() {
		t.Fatalf("ParseAmount(-5) = %s, want negative", neg)
	}

	for _, bad := range []string{"", "   ", "abc", "1,2,3"} {
		if _, err := ParseAmount(bad); !errors.Is(err, ErrInvalidAmount) {
			t.Errorf("ParseAmount(%q) err = %v, want ErrInvalidAmount", bad, err)
		}
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate(" 08.11.2024 ")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if d.Year() != 2024 || d.Month() != time.November || d.Day() != 8 {
		t.Fatalf("ParseDate = %v, want 2024-11-08", d)
	}
	if FormatDate(d) != "08.11.2024" {
		t.Fatalf("FormatDate = %q", FormatDate(d))
	}
	if _, err := ParseDate("2024-11-08"); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("ParseDate(iso) err = %v, want ErrInvalidDate", err)
	}
}

func TestFormatDayMonth(t *testing.T) {
	d := time.Date(2024, time.November, 5, 0, 0, 0, 0, time.UTC)
	if got := FormatDayMonth(d); got != "5 ноября" {
		t.Fatalf("FormatDayMonth = %q, want %q", got, "5 ноября")
	}
}

func TestFormatNumber(t *testing.T) {
	if got := FormatNumber(1234567); got != "1,234,567" {
		t.Fatalf("FormatNumber = %q", got)
	}
	if got := FormatNumber(-1000); got != "-1,000" {
		t.Fatalf("FormatNumber(-1000) = %q", got)
	}
}
