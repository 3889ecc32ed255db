package converter

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RoomDocument is the stored shape of a room. The same struct is written to
// the collection and to the snapshot file so the two stay interchangeable.
type RoomDocument struct {
	// ID is a string ("0101") or a primitive.ObjectID.
	ID              any                `bson:"_id" json:"_id"`
	Name            string             `bson:"name" json:"name"`
	Price           float64            `bson:"price" json:"price"`
	Persons         int                `bson:"persons" json:"persons"`
	Description     string             `bson:"description" json:"description"`
	Amenities       []string           `bson:"amenities" json:"amenities"`
	BookedIntervals []IntervalDocument `bson:"bookedIntervals" json:"bookedIntervals"`
	CreatedAt       Timestamp          `bson:"created_at" json:"created_at"`
	UpdatedAt       Timestamp          `bson:"updated_at" json:"updated_at"`
}

type IntervalDocument struct {
	CheckIn    string     `bson:"checkIn" json:"checkIn"`
	CheckOut   string     `bson:"checkOut" json:"checkOut"`
	GuestName  string     `bson:"guestName" json:"guestName"`
	GuestPhone string     `bson:"guestPhone" json:"guestPhone"`
	GuestEmail string     `bson:"guestEmail" json:"guestEmail"`
	Notes      string     `bson:"notes" json:"notes"`
	CreatedAt  Timestamp  `bson:"createdAt" json:"createdAt"`
	UpdatedAt  *Timestamp `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// Timestamp stores as a BSON datetime and as an ISO-8601 string in JSON.
// Decoding also accepts ISO strings in BSON, which older documents carry.
type Timestamp struct {
	time.Time
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05.999999999-07:00",
}

func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t}
}

func ParseTimestamp(s string) (Timestamp, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Timestamp{}, nil
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Timestamp{Time: t}, nil
		}
	}
	return Timestamp{}, fmt.Errorf("unrecognized timestamp %q", s)
}

func (t Timestamp) MarshalBSONValue() (bsontype.Type, []byte, error) {
	if t.IsZero() {
		return bson.MarshalValue(nil)
	}
	return bson.MarshalValue(primitive.NewDateTimeFromTime(t.Time))
}

func (t *Timestamp) UnmarshalBSONValue(typ bsontype.Type, data []byte) error {
	raw := bson.RawValue{Type: typ, Value: data}
	switch typ {
	case bson.TypeDateTime:
		t.Time = raw.Time()
		return nil
	case bson.TypeString:
		parsed, err := ParseTimestamp(raw.StringValue())
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	case bson.TypeNull, bson.TypeUndefined:
		t.Time = time.Time{}
		return nil
	default:
		return fmt.Errorf("cannot decode %s into Timestamp", typ)
	}
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.UTC().Format(time.RFC3339Nano))
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		t.Time = time.Time{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseTimestamp(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
