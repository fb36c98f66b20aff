package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Booking represents a room reservation owned by an email address.
type Booking struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email    string             `bson:"email,omitempty" json:"email,omitempty"`
	RoomID   string             `bson:"roomId,omitempty" json:"roomId,omitempty"`
	RoomName string             `bson:"roomName,omitempty" json:"roomName,omitempty"`
	Image    string             `bson:"image,omitempty" json:"image,omitempty"`
	CheckIn  string             `bson:"checkIn,omitempty" json:"checkIn,omitempty"`   // "YYYY-MM-DD"
	CheckOut string             `bson:"checkOut,omitempty" json:"checkOut,omitempty"` // "YYYY-MM-DD"
	Guests   int                `bson:"guests,omitempty" json:"guests,omitempty"`
	Price    float64            `bson:"price,omitempty" json:"price,omitempty"`
}
