package booking

import (
	"strings"
	"time"

	"homestay-api/internal/pkg/errs"
)

// DateLayout is the on-wire date format. Dates in this layout compare
// lexicographically in chronological order.
const DateLayout = "2006-01-02"

// Sentinels stay unmarked so they can be used as errs.Is targets; the
// returned errors carry the status mark.
var (
	ErrMissingDates     = errs.New("missing required fields: checkIn, checkOut")
	ErrMissingGuestName = errs.New("missing required fields: checkIn, checkOut, guestName")
	ErrInvalidDate      = errs.New("dates must use the YYYY-MM-DD format")
	ErrEmptyRange       = errs.New("checkIn must be before checkOut")
)

func invalid(err error) error {
	return errs.Mark(err, errs.ErrValidation)
}

func badRange(err error) error {
	return errs.Mark(err, errs.ErrInvalidInterval)
}

// Key addresses an interval inside a room. Intervals have no identifier of
// their own.
type Key struct {
	CheckIn  string
	CheckOut string
}

// Guest holds the mutable part of an interval.
type Guest struct {
	Name  string
	Phone string
	Email string
	Notes string
}

// Interval is a half-open [CheckIn, CheckOut) booking embedded in a room.
type Interval struct {
	CheckIn   string
	CheckOut  string
	Guest     Guest
	CreatedAt time.Time
	UpdatedAt *time.Time
}

func NewKey(checkIn, checkOut string) (Key, error) {
	checkIn = strings.TrimSpace(checkIn)
	checkOut = strings.TrimSpace(checkOut)
	if checkIn == "" || checkOut == "" {
		return Key{}, invalid(ErrMissingDates)
	}
	return Key{CheckIn: checkIn, CheckOut: checkOut}, nil
}

func NewGuest(name, phone, email, notes string) (Guest, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Guest{}, invalid(ErrMissingGuestName)
	}
	return Guest{Name: name, Phone: phone, Email: email, Notes: notes}, nil
}

// NewInterval builds a validated interval. Both dates must be real calendar
// dates in DateLayout and checkIn must be strictly before checkOut.
func NewInterval(key Key, guest Guest, now time.Time) (Interval, error) {
	if key.CheckIn == "" || key.CheckOut == "" {
		return Interval{}, invalid(ErrMissingDates)
	}
	if guest.Name == "" {
		return Interval{}, invalid(ErrMissingGuestName)
	}
	if err := ValidateRange(key); err != nil {
		return Interval{}, err
	}
	return Interval{
		CheckIn:   key.CheckIn,
		CheckOut:  key.CheckOut,
		Guest:     guest,
		CreatedAt: now,
	}, nil
}

func ValidateRange(key Key) error {
	in, err := time.Parse(DateLayout, key.CheckIn)
	if err != nil {
		return errs.Wrapf(badRange(ErrInvalidDate), "checkIn %q", key.CheckIn)
	}
	out, err := time.Parse(DateLayout, key.CheckOut)
	if err != nil {
		return errs.Wrapf(badRange(ErrInvalidDate), "checkOut %q", key.CheckOut)
	}
	if !in.Before(out) {
		return badRange(ErrEmptyRange)
	}
	return nil
}

func (i Interval) Key() Key {
	return Key{CheckIn: i.CheckIn, CheckOut: i.CheckOut}
}

func (i Interval) Matches(k Key) bool {
	return i.CheckIn == k.CheckIn && i.CheckOut == k.CheckOut
}

// Overlaps reports half-open range intersection. Back-to-back ranges
// (one's CheckOut equal to the other's CheckIn) do not overlap.
func (i Interval) Overlaps(other Interval) bool {
	if i.CheckIn == "" || i.CheckOut == "" {
		return false
	}
	return other.CheckIn < i.CheckOut && other.CheckOut > i.CheckIn
}

// Contains reports whether day falls inside [CheckIn, CheckOut).
func (i Interval) Contains(day string) bool {
	return i.CheckIn <= day && day < i.CheckOut
}

// WithGuest returns a copy carrying the new guest details.
func (i Interval) WithGuest(g Guest, now time.Time) Interval {
	i.Guest = g
	i.UpdatedAt = &now
	return i
}
