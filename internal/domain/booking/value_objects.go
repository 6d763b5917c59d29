package booking

import (
	"errors"
	"fmt"
	"time"
)

// DateLayout is the only textual date form accepted at the boundary.
const DateLayout = "2006-01-02"

var (
	ErrInvalidStayRange = errors.New("stay start date must be before end date")
	ErrUnparsableDate   = errors.New("date must be in YYYY-MM-DD form")
)

// Overlaps reports whether the half-open day ranges [aFrom, aTo) and
// [bFrom, bTo) share at least one night. This is the single authoritative
// overlap predicate; every other component (including the SQL conflict
// query) must agree with it rather than re-derive the comparison.
func Overlaps(aFrom, aTo, bFrom, bTo time.Time) bool {
	return aFrom.Before(bTo) && aTo.After(bFrom)
}

// StayRange is a half-open interval of whole calendar days [from, to).
// A stay ending on day D and one starting on day D do not conflict.
// Dates are normalized to UTC midnight so no timezone arithmetic can
// shift them across day boundaries.
type StayRange struct {
	from time.Time
	to   time.Time
}

func NewStayRange(from, to time.Time) (StayRange, error) {
	from = truncateToDay(from)
	to = truncateToDay(to)

	if !from.Before(to) {
		return StayRange{}, fmt.Errorf("%w: got [%s, %s)",
			ErrInvalidStayRange, from.Format(DateLayout), to.Format(DateLayout))
	}

	return StayRange{from: from, to: to}, nil
}

// ParseStayRange builds a StayRange from two YYYY-MM-DD strings.
func ParseStayRange(fromStr, toStr string) (StayRange, error) {
	from, err := ParseDate(fromStr)
	if err != nil {
		return StayRange{}, err
	}
	to, err := ParseDate(toStr)
	if err != nil {
		return StayRange{}, err
	}
	return NewStayRange(from, to)
}

// ParseDate parses a calendar date as a whole-day value in UTC.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrUnparsableDate, s)
	}
	return t, nil
}

func (r StayRange) From() time.Time {
	return r.from
}

func (r StayRange) To() time.Time {
	return r.to
}

// Nights is the number of nights covered by the range, always >= 1.
func (r StayRange) Nights() int {
	return int(r.to.Sub(r.from).Hours() / 24)
}

func (r StayRange) Overlaps(other StayRange) bool {
	return Overlaps(r.from, r.to, other.from, other.to)
}

func (r StayRange) String() string {
	return r.from.Format(DateLayout) + "/" + r.to.Format(DateLayout)
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.In(time.UTC).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Money is an amount in cents.
type Money struct {
	cents int64
}

var ErrNegativeMoney = errors.New("money cannot be negative")

func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativeMoney
	}
	return Money{cents: cents}, nil
}

func (m Money) Cents() int64 {
	return m.cents
}
