package converter

import (
	"fmt"

	"homestay-api/internal/domain/booking"
	"homestay-api/internal/domain/room"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StorageID maps a canonical string id to the value stored in _id: ObjectID
// hex strings become ObjectIDs, everything else (e.g. "0101") stays a string.
func StorageID(id string) any {
	if oid, err := primitive.ObjectIDFromHex(id); err == nil {
		return oid
	}
	return id
}

// IDCandidates lists every _id value a caller-facing id may be stored under.
func IDCandidates(id string) []any {
	candidates := []any{id}
	if oid, err := primitive.ObjectIDFromHex(id); err == nil {
		candidates = append(candidates, oid)
	}
	return candidates
}

// CanonicalID renders a stored _id as the caller-facing string form.
func CanonicalID(v any) string {
	switch id := v.(type) {
	case nil:
		return ""
	case string:
		return id
	case primitive.ObjectID:
		return id.Hex()
	default:
		return fmt.Sprint(id)
	}
}

func RoomToDocument(r *room.Room) RoomDocument {
	intervals := make([]IntervalDocument, len(r.BookedIntervals))
	for i, iv := range r.BookedIntervals {
		intervals[i] = IntervalToDocument(iv)
	}
	amenities := r.Amenities
	if amenities == nil {
		amenities = []string{}
	}
	return RoomDocument{
		ID:              StorageID(r.ID),
		Name:            r.Name,
		Price:           r.Price,
		Persons:         r.Persons,
		Description:     r.Description,
		Amenities:       amenities,
		BookedIntervals: intervals,
		CreatedAt:       NewTimestamp(r.CreatedAt),
		UpdatedAt:       NewTimestamp(r.UpdatedAt),
	}
}

func DocumentToRoom(d RoomDocument) *room.Room {
	intervals := make([]booking.Interval, len(d.BookedIntervals))
	for i, iv := range d.BookedIntervals {
		intervals[i] = DocumentToInterval(iv)
	}
	amenities := d.Amenities
	if amenities == nil {
		amenities = []string{}
	}
	return &room.Room{
		ID:              CanonicalID(d.ID),
		Name:            d.Name,
		Price:           d.Price,
		Persons:         d.Persons,
		Description:     d.Description,
		Amenities:       amenities,
		BookedIntervals: intervals,
		CreatedAt:       d.CreatedAt.Time,
		UpdatedAt:       d.UpdatedAt.Time,
	}
}

func DocumentsToRooms(docs []RoomDocument) []*room.Room {
	rooms := make([]*room.Room, len(docs))
	for i, d := range docs {
		rooms[i] = DocumentToRoom(d)
	}
	return rooms
}

func RoomsToDocuments(rooms []*room.Room) []RoomDocument {
	docs := make([]RoomDocument, len(rooms))
	for i, r := range rooms {
		docs[i] = RoomToDocument(r)
	}
	return docs
}

func IntervalToDocument(iv booking.Interval) IntervalDocument {
	doc := IntervalDocument{
		CheckIn:    iv.CheckIn,
		CheckOut:   iv.CheckOut,
		GuestName:  iv.Guest.Name,
		GuestPhone: iv.Guest.Phone,
		GuestEmail: iv.Guest.Email,
		Notes:      iv.Guest.Notes,
		CreatedAt:  NewTimestamp(iv.CreatedAt),
	}
	if iv.UpdatedAt != nil {
		ts := NewTimestamp(*iv.UpdatedAt)
		doc.UpdatedAt = &ts
	}
	return doc
}

func DocumentToInterval(d IntervalDocument) booking.Interval {
	iv := booking.Interval{
		CheckIn:  d.CheckIn,
		CheckOut: d.CheckOut,
		Guest: booking.Guest{
			Name:  d.GuestName,
			Phone: d.GuestPhone,
			Email: d.GuestEmail,
			Notes: d.Notes,
		},
		CreatedAt: d.CreatedAt.Time,
	}
	if d.UpdatedAt != nil && !d.UpdatedAt.IsZero() {
		t := d.UpdatedAt.Time
		iv.UpdatedAt = &t
	}
	return iv
}
