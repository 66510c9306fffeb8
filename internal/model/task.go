package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Task is a reminder stored in the "tasks" collection.
// Description is always non-empty for a persisted record. Time is free text
// as spoken by the user ("tomorrow morning"), not a structured timestamp.
type Task struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Description string             `bson:"description" json:"description"`
	Time        string             `bson:"time,omitempty" json:"time,omitempty"`
	IsCompleted bool               `bson:"isCompleted" json:"isCompleted"`
	Prompt      string             `bson:"prompt" json:"prompt"` // original utterance that produced the record
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}
