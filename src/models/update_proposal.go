package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UpdateProposal links a published activity (old side) to its candidate
// replacement (new side, status "update"). At most one live proposal exists
// per old activity; resubmitting replaces the candidate in place.
type UpdateProposal struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	OldID     primitive.ObjectID `json:"oldId" bson:"oldId"`
	NewID     primitive.ObjectID `json:"newId" bson:"newId"`
	CreatorID primitive.ObjectID `json:"creatorId" bson:"creatorId"`
	// Ref is the token used in the notification mail deep link.
	Ref       string    `json:"ref" bson:"ref"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}
