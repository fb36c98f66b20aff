package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Room describes a bookable hotel room. Rooms are seeded out-of-band and are
// read-only from this service.
type Room struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name          string             `bson:"name,omitempty" json:"name,omitempty"`
	Image         string             `bson:"image,omitempty" json:"image,omitempty"`
	Description   string             `bson:"description,omitempty" json:"description,omitempty"`
	PricePerNight float64            `bson:"price_per_night" json:"price_per_night"`
	Capacity      int                `bson:"capacity,omitempty" json:"capacity,omitempty"`
	Size          string             `bson:"size,omitempty" json:"size,omitempty"`
	Availability  bool               `bson:"availability" json:"availability"`
}
