package kernel

import (
	"errors"
	"fmt"
	"time"

	"rental/internal/pkg/errs"
)

const day = 24 * time.Hour

// ErrDateRangeIsNotConstructed is returned when validating a zero-value DateRange.
var ErrDateRangeIsNotConstructed = errors.New("DateRange must be created via NewDateRange or DefaultDateRange")

// DateRange is the rental window of a quotation. Both ends are calendar dates (UTC midnight)
// and End never precedes Start.
type DateRange struct {
	start         time.Time
	end           time.Time
	isConstructed bool
}

// NewDateRange truncates both instants to their UTC date and rejects end < start.
func NewDateRange(start, end time.Time) (DateRange, error) {
	if start.IsZero() {
		return DateRange{}, errs.NewValueIsRequiredError("startDate")
	}
	if end.IsZero() {
		return DateRange{}, errs.NewValueIsRequiredError("endDate")
	}

	s, e := truncateToDate(start), truncateToDate(end)
	if e.Before(s) {
		return DateRange{}, errs.NewValueIsInvalidErrorWithCause(
			"dateRange",
			fmt.Errorf("end %s precedes start %s", e.Format(time.DateOnly), s.Format(time.DateOnly)),
		)
	}

	return DateRange{start: s, end: e, isConstructed: true}, nil
}

// DefaultDateRange is [today, today+1] relative to now.
func DefaultDateRange(now time.Time) DateRange {
	today := truncateToDate(now)
	return DateRange{start: today, end: today.Add(day), isConstructed: true}
}

func (r DateRange) Validate() error {
	if !r.isConstructed {
		return ErrDateRangeIsNotConstructed
	}
	return nil
}

func (r DateRange) Start() time.Time {
	return r.start
}

func (r DateRange) End() time.Time {
	return r.end
}

// Days is the number of billable rental days: the whole days between Start and End,
// never less than one.
func (r DateRange) Days() int {
	days := int(r.end.Sub(r.start) / day)
	if days < 1 {
		return 1
	}
	return days
}

func (r DateRange) IsEqual(other DateRange) bool {
	return r.start.Equal(other.start) && r.end.Equal(other.end)
}

func (r DateRange) String() string {
	return fmt.Sprintf("%s..%s", r.start.Format(time.DateOnly), r.end.Format(time.DateOnly))
}

func truncateToDate(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
