package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Calendar option slot types
const (
	OptionMorning      = "morning"
	OptionLunch        = "lunch"
	OptionAfternoon    = "afternoon"
	OptionEvening      = "evening"
	OptionDay          = "day"
	OptionMultipleDays = "multipledays"
)

// Calendar option statuses; the empty string is "still pending".
const (
	OptionPending  = ""
	OptionApproved = "approved"
	OptionDeleted  = "deleted"
)

// OptionProposal ข้อเสนอขอช่วงเวลาในปฏิทินกิจกรรม
// Created by an organ, or with OrganAlt set ("Board", "Other", a member's own
// name) when no organ is involved. Never mutated after creation; it is
// conceptually closed once one of its options is approved.
type OptionProposal struct {
	ID          primitive.ObjectID  `json:"id,omitempty" bson:"_id,omitempty"`
	Name        string              `json:"name" bson:"name" example:"Spring hackathon"`
	Description string              `json:"description" bson:"description"`
	CreatorID   primitive.ObjectID  `json:"creatorId" bson:"creatorId"`
	OrganID     *primitive.ObjectID `json:"organId,omitempty" bson:"organId,omitempty"`
	OrganAlt    string              `json:"organAlt,omitempty" bson:"organAlt,omitempty" example:"Board"`
	CreatedAt   time.Time           `json:"createdAt" bson:"createdAt"`
}

// CalendarOption one candidate time slot for a proposal.
type CalendarOption struct {
	ID         primitive.ObjectID  `json:"id,omitempty" bson:"_id,omitempty"`
	ProposalID primitive.ObjectID  `json:"proposalId" bson:"proposalId"`
	BeginTime  time.Time           `json:"beginTime" bson:"beginTime"`
	EndTime    time.Time           `json:"endTime" bson:"endTime"`
	Type       string              `json:"type" bson:"type" example:"evening"`
	Status     string              `json:"status" bson:"status" example:""`
	ModifiedBy *primitive.ObjectID `json:"modifiedBy,omitempty" bson:"modifiedBy,omitempty"`
}

// OptionProposalCreate is the submitted form for a new proposal with its
// candidate slots. Period "-1" means no specific period and is only
// acceptable for callers with bypass authority.
type OptionProposalCreate struct {
	Name        string             `json:"name" validate:"required,max=100"`
	Description string             `json:"description" validate:"max=10000"`
	OrganID     string             `json:"organId" example:"0"`
	OrganAlt    string             `json:"organAlt" validate:"omitempty,max=100"`
	PeriodID    string             `json:"periodId" example:"-1"`
	Options     []CalendarOptionIn `json:"options" validate:"min=1,dive"`
}

type CalendarOptionIn struct {
	BeginTime string `json:"beginTime" validate:"required" example:"2025-04-02 18:00"`
	EndTime   string `json:"endTime" validate:"required" example:"2025-04-02 22:00"`
	Type      string `json:"type" validate:"required,oneof=morning lunch afternoon evening day multipledays"`
}
