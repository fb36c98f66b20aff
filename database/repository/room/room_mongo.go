package roomRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gobookhotel/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoRoomRepo implements RoomRepository using MongoDB.
type MongoRoomRepo struct {
	coll *mongo.Collection
}

// NewMongoRoomRepo creates a RoomRepository backed by the roomCollection.
func NewMongoRoomRepo(db *mongo.Database) RoomRepository {
	return &MongoRoomRepo{coll: db.Collection("roomCollection")}
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// GetAll retrieves all room documents, sorted by price_per_night when a
// direction is given.
func (r *MongoRoomRepo) GetAll(priceOrder int) ([]models.Room, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Find()
	if priceOrder == SortAsc || priceOrder == SortDesc {
		opts.SetSort(bson.D{{Key: "price_per_night", Value: priceOrder}})
	}

	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch rooms: %w", err)
	}
	var rooms []models.Room
	if err := cur.All(ctx, &rooms); err != nil {
		return nil, fmt.Errorf("failed to decode rooms: %w", err)
	}
	if rooms == nil {
		rooms = []models.Room{}
	}
	return rooms, nil
}

// GetByID retrieves a single room document by its ObjectID.
func (r *MongoRoomRepo) GetByID(id string) (*models.Room, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid room id %q: %w", id, err)
	}

	var room models.Room
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&room); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			// Passed through to the client as a null document.
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch room with id %s: %w", id, err)
	}
	return &room, nil
}
