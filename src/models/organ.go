package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Organ a sub-organization (committee, fraternity, board) that can organize
// activities and propose calendar options.
type Organ struct {
	ID           primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Abbreviation string             `json:"abbreviation" bson:"abbreviation" example:"AcCie"`
	Name         string             `json:"name" bson:"name" example:"Activity Committee"`
	Active       bool               `json:"active" bson:"active"`
}

// Company an external partner that can co-organize an activity.
type Company struct {
	ID     primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name   string             `json:"name" bson:"name" example:"TechCorp BV"`
	Active bool               `json:"active" bson:"active"`
}
