package core

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Display helpers used by the assemblers. Renderers never format values
// themselves.

// Money formats d as a dollar amount with thousands separators and cents.
func Money(d decimal.Decimal) string {
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Neg()
	}
	f, _ := d.Round(2).Float64()
	return sign + "$" + humanize.FormatFloat("#,###.##", f)
}

// CompactMoney formats d with a K/M suffix for chart labels.
func CompactMoney(d decimal.Decimal) string {
	f, _ := d.Float64()
	abs := math.Abs(f)
	switch {
	case abs >= 1_000_000:
		return fmt.Sprintf("$%.1fM", f/1_000_000)
	case abs >= 1_000:
		return fmt.Sprintf("$%.0fK", f/1_000)
	default:
		return fmt.Sprintf("$%.0f", f)
	}
}

// Count formats n with thousands separators.
func Count(n int) string {
	return humanize.Comma(int64(n))
}

// Percent formats a ratio in [0, 1] as a whole percentage.
func Percent(ratio float64) string {
	if math.IsNaN(ratio) || math.IsInf(ratio, 0) {
		return "0%"
	}
	return fmt.Sprintf("%.0f%%", ratio*100)
}

// Ratio returns part/whole, or 0 when whole is zero.
func Ratio(part, whole decimal.Decimal) float64 {
	if whole.IsZero() {
		return 0
	}
	f, _ := part.Div(whole).Float64()
	return f
}

// Date formats t as "Jan 2, 2006". The zero time formats as an em dash.
func Date(t time.Time) string {
	if t.IsZero() {
		return "—"
	}
	return t.Format("Jan 2, 2006")
}

// MonthLabel formats t as "Jan 06".
func MonthLabel(t time.Time) string {
	return t.Format("Jan 06")
}

// MonthStart truncates t to the first day of its month.
func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// MonthsBetween returns the number of calendar months from from to to.
func MonthsBetween(from, to time.Time) int {
	return (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
}

// Hours formats a duration in hours with one decimal.
func Hours(h float64) string {
	return humanize.FormatFloat("#,###.#", h) + " h"
}

// Days formats a day count relative to the reference date, e.g. "in 12 days"
// or "3 days ago".
func Days(from, to time.Time) string {
	d := DaysBetween(from, to)
	switch {
	case d == 0:
		return "today"
	case d == 1:
		return "tomorrow"
	case d == -1:
		return "yesterday"
	case d > 0:
		return fmt.Sprintf("in %d days", d)
	default:
		return fmt.Sprintf("%d days ago", -d)
	}
}

// DaysBetween returns the whole days from from to to.
func DaysBetween(from, to time.Time) int {
	return int(math.Round(to.Sub(from).Hours() / 24))
}

// Label turns a status slug such as "out-of-order" into "Out Of Order".
func Label(slug string) string {
	// cases.Caser is not safe for concurrent use.
	caser := cases.Title(language.English)
	return caser.String(strings.ReplaceAll(slug, "-", " "))
}

// FileSize formats a size given in kilobytes.
func FileSize(kb int64) string {
	return humanize.Bytes(uint64(kb) * 1000)
}
