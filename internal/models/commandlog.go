package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CommandLog records a free-text command a user issued, the intent it was
// matched to, whatever structured data was extracted from it, and the
// documents the command resolved to. No in-scope handler writes to this
// collection; the schema is kept for the assistant features built on top.
type CommandLog struct {
	ID            primitive.ObjectID     `bson:"_id,omitempty" json:"id,omitempty"`
	UserID        primitive.ObjectID     `bson:"userId" json:"userId"`
	InputText     string                 `bson:"inputText" json:"inputText"`
	MatchedIntent string                 `bson:"matchedIntent" json:"matchedIntent"`
	ExtractedData map[string]interface{} `bson:"extractedData,omitempty" json:"extractedData,omitempty"`
	ResultIDs     []primitive.ObjectID   `bson:"resultIds,omitempty" json:"resultIds,omitempty"`
	CreatedAt     time.Time              `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time              `bson:"updatedAt" json:"updatedAt"`
}
