package repository

import (
	"context"
	"errors"
	"time"

	"homestay-api/internal/domain/booking"
	"homestay-api/internal/domain/room"
	"homestay-api/internal/infra"
	"homestay-api/internal/infra/repository/converter"
	"homestay-api/internal/pkg/errs"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// RoomCollection is the subset of *mongo.Collection the repository uses.
type RoomCollection interface {
	Find(ctx context.Context, filter any, opts ...*options.FindOptions) (*mongo.Cursor, error)
	FindOne(ctx context.Context, filter any, opts ...*options.FindOneOptions) *mongo.SingleResult
	InsertOne(ctx context.Context, document any, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error)
	UpdateOne(ctx context.Context, filter any, update any, opts ...*options.UpdateOptions) (*mongo.UpdateResult, error)
	FindOneAndUpdate(ctx context.Context, filter any, update any, opts ...*options.FindOneAndUpdateOptions) *mongo.SingleResult
	DeleteOne(ctx context.Context, filter any, opts ...*options.DeleteOptions) (*mongo.DeleteResult, error)
}

type Pinger interface {
	Ping(ctx context.Context, rp *readpref.ReadPref) error
}

type MongoRoomRepository struct {
	coll   RoomCollection
	pinger Pinger
}

func NewMongoRoomRepository(coll RoomCollection, pinger Pinger) *MongoRoomRepository {
	return &MongoRoomRepository{coll: coll, pinger: pinger}
}

func (r *MongoRoomRepository) Ping(ctx context.Context) error {
	if r.pinger == nil {
		return nil
	}
	if err := r.pinger.Ping(ctx, readpref.Primary()); err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "ping failed", err)
	}
	return nil
}

func (r *MongoRoomRepository) List(ctx context.Context) ([]*room.Room, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to list rooms", err)
	}
	defer cur.Close(ctx)

	var docs []converter.RoomDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, infra.WrapRepoErr(infra.KindCodec, "failed to decode rooms", err)
	}
	return converter.DocumentsToRooms(docs), nil
}

func (r *MongoRoomRepository) Get(ctx context.Context, id string) (*room.Room, error) {
	var doc converter.RoomDocument
	if err := r.coll.FindOne(ctx, byID(id)).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errs.ErrRoomNotFound
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to get room", err)
	}
	return converter.DocumentToRoom(doc), nil
}

// Create inserts r. The unique _id index rejects duplicates, so an existing
// room is never overwritten.
func (r *MongoRoomRepository) Create(ctx context.Context, rm *room.Room) (*room.Room, error) {
	created := *rm
	if created.ID == "" {
		created.ID = primitive.NewObjectID().Hex()
	}

	if _, err := r.coll.InsertOne(ctx, converter.RoomToDocument(&created)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, errs.Mark(errs.Newf("Room with ID %s already exists", created.ID), errs.ErrRoomAlreadyExists)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to insert room", err)
	}
	return &created, nil
}

func (r *MongoRoomRepository) Update(ctx context.Context, id string, p room.Patch, now time.Time) (*room.Room, error) {
	set := bson.M{"updated_at": converter.NewTimestamp(now)}
	if p.Name != nil {
		set["name"] = *p.Name
	}
	if p.Price != nil {
		set["price"] = *p.Price
	}
	if p.Persons != nil {
		set["persons"] = *p.Persons
	}
	if p.Description != nil {
		set["description"] = *p.Description
	}
	if p.HasAmenities {
		amenities := p.Amenities
		if amenities == nil {
			amenities = []string{}
		}
		set["amenities"] = amenities
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc converter.RoomDocument
	if err := r.coll.FindOneAndUpdate(ctx, byID(id), bson.M{"$set": set}, opts).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errs.ErrRoomNotFound
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to update room", err)
	}
	return converter.DocumentToRoom(doc), nil
}

func (r *MongoRoomRepository) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, byID(id))
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to delete room", err)
	}
	if res.DeletedCount == 0 {
		return errs.ErrRoomNotFound
	}
	return nil
}

// AppendInterval runs the booking policy against the stored intervals, then
// pushes with a filter that repeats the conflict test, so a booking that raced
// in between is still rejected.
func (r *MongoRoomRepository) AppendInterval(ctx context.Context, id string, iv booking.Interval, now time.Time) error {
	current, err := r.Get(ctx, id)
	if err != nil {
		return err
	}
	if booking.HasConflict(current.BookedIntervals, iv) {
		return errs.ErrBookingConflict
	}

	filter := byID(id)
	filter["bookedIntervals"] = bson.M{"$not": bson.M{"$elemMatch": bson.M{"$or": bson.A{
		bson.M{"checkIn": iv.CheckIn, "checkOut": iv.CheckOut, "guestName": iv.Guest.Name},
		bson.M{
			"checkIn":  bson.M{"$ne": "", "$lt": iv.CheckOut},
			"checkOut": bson.M{"$ne": "", "$gt": iv.CheckIn},
		},
	}}}}
	update := bson.M{
		"$push": bson.M{"bookedIntervals": converter.IntervalToDocument(iv)},
		"$set":  bson.M{"updated_at": converter.NewTimestamp(now)},
	}

	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to append booking", err)
	}
	if res.MatchedCount == 0 {
		return r.missingOr(ctx, id, errs.ErrBookingConflict)
	}
	return nil
}

func (r *MongoRoomRepository) RemoveInterval(ctx context.Context, id string, key booking.Key, now time.Time) error {
	pair := bson.M{"checkIn": key.CheckIn, "checkOut": key.CheckOut}

	filter := byID(id)
	filter["bookedIntervals"] = bson.M{"$elemMatch": pair}
	update := bson.M{
		"$pull": bson.M{"bookedIntervals": pair},
		"$set":  bson.M{"updated_at": converter.NewTimestamp(now)},
	}

	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to remove booking", err)
	}
	if res.MatchedCount == 0 {
		return r.missingOr(ctx, id, errs.ErrBookingNotFound)
	}
	return nil
}

func (r *MongoRoomRepository) UpdateInterval(ctx context.Context, id string, key booking.Key, guest booking.Guest, now time.Time) error {
	ts := converter.NewTimestamp(now)

	filter := byID(id)
	filter["bookedIntervals"] = bson.M{"$elemMatch": bson.M{"checkIn": key.CheckIn, "checkOut": key.CheckOut}}
	update := bson.M{"$set": bson.M{
		"bookedIntervals.$.guestName":  guest.Name,
		"bookedIntervals.$.guestPhone": guest.Phone,
		"bookedIntervals.$.guestEmail": guest.Email,
		"bookedIntervals.$.notes":      guest.Notes,
		"bookedIntervals.$.updatedAt":  ts,
		"updated_at":                   ts,
	}}

	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to update booking", err)
	}
	if res.MatchedCount == 0 {
		return r.missingOr(ctx, id, errs.ErrBookingNotFound)
	}
	return nil
}

// missingOr tells an absent room apart from a guarded update that matched
// nothing for another reason.
func (r *MongoRoomRepository) missingOr(ctx context.Context, id string, otherwise error) error {
	if _, err := r.Get(ctx, id); err != nil {
		return err
	}
	return otherwise
}

// byID matches a room stored under either form of its id.
func byID(id string) bson.M {
	return bson.M{"_id": bson.M{"$in": converter.IDCandidates(id)}}
}
