package room

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"homestay-api/internal/domain/booking"
	"homestay-api/internal/pkg/errs"
	"homestay-api/internal/pkg/patch"
)

const customIDLength = 4

var (
	ErrNegativePrice  = errs.New("price cannot be negative")
	ErrNonPositiveCap = errs.New("capacity must be a positive integer")
	ErrEmptyName      = errs.New("name cannot be empty")
)

func invalid(err error) error {
	return errs.Mark(err, errs.ErrValidation)
}

type Room struct {
	ID              string
	Name            string
	Price           float64
	Persons         int
	Description     string
	Amenities       []string
	BookedIntervals []booking.Interval
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Fields are the caller-controlled attributes of a room.
type Fields struct {
	Name        string
	Price       float64
	Persons     int
	Description string
	Amenities   []string
}

// Patch carries a partial update; nil members are left untouched.
type Patch struct {
	Name        *string
	Price       *float64
	Persons     *int
	Description *string
	Amenities   []string
	// HasAmenities distinguishes "set to empty" from "absent".
	HasAmenities bool
}

// NewRoom creates a room with an empty booking history. id may be empty when
// the backend is expected to assign one.
func NewRoom(id string, f Fields, now time.Time) (*Room, error) {
	if err := f.validate(); err != nil {
		return nil, err
	}
	amenities := f.Amenities
	if amenities == nil {
		amenities = []string{}
	}
	return &Room{
		ID:              id,
		Name:            f.Name,
		Price:           f.Price,
		Persons:         f.Persons,
		Description:     f.Description,
		Amenities:       amenities,
		BookedIntervals: []booking.Interval{},
		CreatedAt:       now,
		UpdatedAt:       now,
	}, nil
}

func (f Fields) validate() error {
	if strings.TrimSpace(f.Name) == "" {
		return invalid(ErrEmptyName)
	}
	if f.Price < 0 {
		return invalid(ErrNegativePrice)
	}
	if f.Persons <= 0 {
		return invalid(ErrNonPositiveCap)
	}
	return nil
}

func (p Patch) Validate() error {
	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		return invalid(ErrEmptyName)
	}
	if p.Price != nil && *p.Price < 0 {
		return invalid(ErrNegativePrice)
	}
	if p.Persons != nil && *p.Persons <= 0 {
		return invalid(ErrNonPositiveCap)
	}
	return nil
}

// Apply mutates r with the present fields of p and stamps UpdatedAt.
func (p Patch) Apply(r *Room, now time.Time) {
	r.Name = patch.Coalesce(p.Name, r.Name)
	r.Price = patch.Coalesce(p.Price, r.Price)
	r.Persons = patch.Coalesce(p.Persons, r.Persons)
	r.Description = patch.Coalesce(p.Description, r.Description)
	r.Amenities = patch.ReplaceSlice(p.HasAmenities, p.Amenities, r.Amenities)
	r.UpdatedAt = now
}

// ValidateCustomID accepts exactly four ASCII digits ("0101").
func ValidateCustomID(id string) error {
	if len(id) != customIDLength || !isDigits(id) {
		return invalid(errs.ErrInvalidRoomID)
	}
	return nil
}

// NextSequentialID returns the next id above the largest all-digit id in ids,
// zero-padded to four digits. Non-numeric ids are ignored.
func NextSequentialID(ids []string) string {
	maxID := 0
	for _, id := range ids {
		if id == "" || !isDigits(id) {
			continue
		}
		n, err := strconv.Atoi(id)
		if err != nil {
			continue
		}
		if n > maxID {
			maxID = n
		}
	}
	return fmt.Sprintf("%0*d", customIDLength, maxID+1)
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// FindInterval returns the index of the first interval with the given pair.
func (r *Room) FindInterval(k booking.Key) int {
	for i, iv := range r.BookedIntervals {
		if iv.Matches(k) {
			return i
		}
	}
	return -1
}

// AddInterval appends iv unless the booking policy rejects it.
func (r *Room) AddInterval(iv booking.Interval, now time.Time) error {
	if booking.HasConflict(r.BookedIntervals, iv) {
		return errs.ErrBookingConflict
	}
	r.BookedIntervals = append(r.BookedIntervals, iv)
	r.UpdatedAt = now
	return nil
}

func (r *Room) RemoveInterval(k booking.Key, now time.Time) error {
	idx := r.FindInterval(k)
	if idx < 0 {
		return errs.ErrBookingNotFound
	}
	r.BookedIntervals = append(r.BookedIntervals[:idx], r.BookedIntervals[idx+1:]...)
	r.UpdatedAt = now
	return nil
}

func (r *Room) UpdateIntervalGuest(k booking.Key, g booking.Guest, now time.Time) error {
	idx := r.FindInterval(k)
	if idx < 0 {
		return errs.ErrBookingNotFound
	}
	r.BookedIntervals[idx] = r.BookedIntervals[idx].WithGuest(g, now)
	r.UpdatedAt = now
	return nil
}

func (r *Room) Availability(asOf string) booking.Availability {
	return booking.ClassifyAvailability(r.BookedIntervals, asOf)
}
