package slot

import (
	"errors"
	"time"
)

// MaxBookingDays caps the number of calendar days a single availability
// request or booking may span.
const MaxBookingDays = 90

const dateLayout = "2006-01-02"

var ErrDateRangeTooLong = errors.New("date range exceeds maximum booking days")

// Date is a single calendar day, independent of wall-clock time.
type Date struct {
	t time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, err
	}
	return Date{t: t}, nil
}

func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return NewDate(y, m, d)
}

func (d Date) String() string {
	return d.t.Format(dateLayout)
}

func (d Date) Time() time.Time {
	return d.t
}

func (d Date) AddDays(n int) Date {
	return Date{t: d.t.AddDate(0, 0, n)}
}

func (d Date) After(other Date) bool {
	return d.t.After(other.t)
}

func (d Date) Before(other Date) bool {
	return d.t.Before(other.t)
}

func (d Date) Equal(other Date) bool {
	return d.t.Equal(other.t)
}

func (d Date) IsZero() bool {
	return d.t.IsZero()
}

// ExpandRange expands an inclusive date range into the ordered sequence of
// calendar days it covers. A start date after the end date yields an empty
// sequence. Sequences longer than MaxBookingDays are rejected.
func ExpandRange(start, end Date) ([]Date, error) {
	var dates []Date
	for d := start; !d.After(end); d = d.AddDays(1) {
		dates = append(dates, d)
	}
	if len(dates) > MaxBookingDays {
		return nil, ErrDateRangeTooLong
	}
	return dates, nil
}
