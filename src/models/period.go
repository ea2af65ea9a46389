package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CreationPeriod ช่วงเวลาวางแผนปฏิทินกิจกรรม
// Proposals may be submitted while now is inside the planning window; the
// proposed slots themselves must fall inside the option window. Several
// periods may be current at the same time.
type CreationPeriod struct {
	ID                primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	BeginPlanningTime time.Time          `json:"beginPlanningTime" bson:"beginPlanningTime"`
	EndPlanningTime   time.Time          `json:"endPlanningTime" bson:"endPlanningTime"`
	BeginOptionTime   time.Time          `json:"beginOptionTime" bson:"beginOptionTime"`
	EndOptionTime     time.Time          `json:"endOptionTime" bson:"endOptionTime"`
}

// PlanningContains reports whether t falls inside [beginPlanning, endPlanning).
func (p CreationPeriod) PlanningContains(t time.Time) bool {
	return !t.Before(p.BeginPlanningTime) && t.Before(p.EndPlanningTime)
}

// MaxActivities per-(organ, period) quota row, owned by its period.
// No row means the organ has no allotment in that period.
type MaxActivities struct {
	ID       primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	PeriodID primitive.ObjectID `json:"periodId" bson:"periodId"`
	OrganID  primitive.ObjectID `json:"organId" bson:"organId"`
	Value    int                `json:"value" bson:"value" example:"2"`
}

// CreationPeriodIn is the admin form for configuring a period.
type CreationPeriodIn struct {
	BeginPlanningTime string `json:"beginPlanningTime" validate:"required" example:"2025-01-01 00:00"`
	EndPlanningTime   string `json:"endPlanningTime" validate:"required" example:"2025-02-01 00:00"`
	BeginOptionTime   string `json:"beginOptionTime" validate:"required" example:"2025-07-01 00:00"`
	EndOptionTime     string `json:"endOptionTime" validate:"required" example:"2025-12-31 23:59"`
}
