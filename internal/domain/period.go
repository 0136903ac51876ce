package domain

import "time"

// DateLayout is the date format used in queries, cache keys and logs.
const DateLayout = "2006-01-02"

// DateRange is an inclusive range of calendar days.
type DateRange struct {
	From time.Time
	To   time.Time
}

// NewDateRange normalizes both ends to UTC midnight.
func NewDateRange(from, to time.Time) DateRange {
	return DateRange{From: TruncateDay(from), To: TruncateDay(to)}
}

// IsValid reports whether both ends are set and From <= To.
func (r DateRange) IsValid() bool {
	return !r.From.IsZero() && !r.To.IsZero() && !r.From.After(r.To)
}

// Contains reports whether the day falls inside the range.
func (r DateRange) Contains(day time.Time) bool {
	day = TruncateDay(day)
	return !day.Before(TruncateDay(r.From)) && !day.After(TruncateDay(r.To))
}

// Overlaps reports whether two ranges share at least one day.
func (r DateRange) Overlaps(other DateRange) bool {
	return !TruncateDay(r.From).After(TruncateDay(other.To)) && !TruncateDay(other.From).After(TruncateDay(r.To))
}

func (r DateRange) String() string {
	return r.From.Format(DateLayout) + ".." + r.To.Format(DateLayout)
}

// TruncateDay drops the time of day, keeping the calendar date in UTC.
func TruncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// EndOfPreviousMonth returns the last day of the month before t.
func EndOfPreviousMonth(t time.Time) time.Time {
	y, m, _ := t.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1)
}

// EndOfMonth returns the last day of the month of t.
func EndOfMonth(t time.Time) time.Time {
	y, m, _ := t.Date()
	return time.Date(y, m+1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1)
}

// CheckOpenPeriods verifies that period overlaps at least one opened calendar
// period of the chart.
func CheckOpenPeriods(chartUID string, period DateRange, open []DateRange) error {
	for _, p := range open {
		if p.Overlaps(period) {
			return nil
		}
	}
	return &InvalidPeriodError{AccountsChart: chartUID, Period: period}
}
