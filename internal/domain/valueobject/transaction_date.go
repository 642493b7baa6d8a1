package valueobject

import (
	"time"

	domainerror "github.com/finance-wallet/backend/internal/domain/error"
)

// Supported date bounds. Comparison is on epoch milliseconds of UTC instants;
// date-only input is always interpreted as UTC midnight, so boundary dates do
// not shift with the caller's timezone.
var (
	minTransactionDate = time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)
	maxTransactionDate = time.Date(2100, time.December, 30, 0, 0, 0, 0, time.UTC)
)

// transactionDateLayouts are the accepted string representations, tried in order.
var transactionDateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// TransactionDate is an immutable point in time within the supported range.
// All derived operations return new values; the wrapped time is never exposed
// as a mutable handle.
type TransactionDate struct {
	ts time.Time
}

// NewTransactionDate creates a validated TransactionDate from a time value.
func NewTransactionDate(t time.Time) (TransactionDate, error) {
	if t.IsZero() {
		return TransactionDate{}, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionDate,
			"transaction date must be a valid date",
			domainerror.ErrInvalidTransactionDate,
		)
	}

	utc := t.UTC()
	if utc.UnixMilli() < minTransactionDate.UnixMilli() || utc.UnixMilli() > maxTransactionDate.UnixMilli() {
		return TransactionDate{}, domainerror.NewTransactionError(
			domainerror.ErrCodeTransactionDateOutOfRange,
			"transaction date must be between 1900-01-01 and 2100-12-30",
			domainerror.ErrTransactionDateOutOfRange,
		)
	}

	return TransactionDate{ts: utc}, nil
}

// ParseTransactionDate creates a validated TransactionDate from a string.
// Date-only strings are interpreted as UTC midnight.
func ParseTransactionDate(raw string) (TransactionDate, error) {
	for _, layout := range transactionDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return NewTransactionDate(t)
		}
	}
	return TransactionDate{}, domainerror.NewTransactionError(
		domainerror.ErrCodeInvalidTransactionDate,
		"transaction date must be an ISO date (YYYY-MM-DD)",
		domainerror.ErrInvalidTransactionDate,
	)
}

// Time returns the wrapped UTC time.
func (d TransactionDate) Time() time.Time {
	return d.ts
}

// Day returns the day of the month.
func (d TransactionDate) Day() int {
	return d.ts.Day()
}

// Month returns the month (1–12).
func (d TransactionDate) Month() int {
	return int(d.ts.Month())
}

// Year returns the year.
func (d TransactionDate) Year() int {
	return d.ts.Year()
}

// Weekday returns the day of the week.
func (d TransactionDate) Weekday() time.Weekday {
	return d.ts.Weekday()
}

// AddDays returns a new date shifted forward by the given number of days.
func (d TransactionDate) AddDays(days int) (TransactionDate, error) {
	return NewTransactionDate(d.ts.AddDate(0, 0, days))
}

// SubtractDays returns a new date shifted backward by the given number of days.
func (d TransactionDate) SubtractDays(days int) (TransactionDate, error) {
	return NewTransactionDate(d.ts.AddDate(0, 0, -days))
}

// DateString returns the date in YYYY-MM-DD form.
func (d TransactionDate) DateString() string {
	return d.ts.Format("2006-01-02")
}

// DisplayString formats the date relative to now: "Today", "Yesterday", a short
// form within the current year, or a full form otherwise.
func (d TransactionDate) DisplayString(now time.Time) string {
	nowUTC := now.UTC()
	today := time.Date(nowUTC.Year(), nowUTC.Month(), nowUTC.Day(), 0, 0, 0, 0, time.UTC)
	day := time.Date(d.ts.Year(), d.ts.Month(), d.ts.Day(), 0, 0, 0, 0, time.UTC)

	switch {
	case day.Equal(today):
		return "Today"
	case day.Equal(today.AddDate(0, 0, -1)):
		return "Yesterday"
	case day.Year() == today.Year():
		return d.ts.Format("Jan 2")
	default:
		return d.ts.Format("Jan 2, 2006")
	}
}

// Before reports whether the date is before the other.
func (d TransactionDate) Before(other TransactionDate) bool {
	return d.ts.Before(other.ts)
}

// After reports whether the date is after the other.
func (d TransactionDate) After(other TransactionDate) bool {
	return d.ts.After(other.ts)
}

// Equals reports whether two dates hold the same instant.
func (d TransactionDate) Equals(other TransactionDate) bool {
	return d.ts.Equal(other.ts)
}
