package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Contact is a saved contact in the "contacts" collection.
// Name and PhoneNumber are always non-empty for a persisted record.
type Contact struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	PhoneNumber  string             `bson:"phoneNumber" json:"phoneNumber"`
	Relationship string             `bson:"relationship,omitempty" json:"relationship,omitempty"`
	Prompt       string             `bson:"prompt" json:"prompt"` // original utterance that produced the record
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
}
