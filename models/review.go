package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Review is guest feedback for a room. RefID is the generic "id" field the
// frontend filters on; it is not the store-native identifier.
type Review struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	RefID     string             `bson:"id,omitempty" json:"id,omitempty"`
	Email     string             `bson:"email,omitempty" json:"email,omitempty"`
	Name      string             `bson:"name,omitempty" json:"name,omitempty"`
	Rating    float64            `bson:"rating,omitempty" json:"rating,omitempty"`
	Comment   string             `bson:"comment,omitempty" json:"comment,omitempty"`
	Timestamp string             `bson:"timestamp,omitempty" json:"timestamp,omitempty"`
}
