package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Activity approval states
const (
	ActivityToApprove   = "toApprove"
	ActivityApproved    = "approved"
	ActivityDisapproved = "disapproved"
	// ActivityUpdate marks a candidate that only exists as the new side of
	// an update proposal; it is never listed on its own.
	ActivityUpdate = "update"
)

// LocalizedText หนึ่งข้อความสองภาษา
type LocalizedText struct {
	NL string `json:"nl" bson:"nl" example:"Programmeerwedstrijd"`
	EN string `json:"en" bson:"en" example:"Programming contest"`
}

// In returns the text for the given locale, falling back to the other
// language when the requested one is empty.
func (t LocalizedText) In(locale string) string {
	if locale == "nl" {
		if t.NL != "" {
			return t.NL
		}
		return t.EN
	}
	if t.EN != "" {
		return t.EN
	}
	return t.NL
}

// Activity กิจกรรมหลัก
type Activity struct {
	ID          primitive.ObjectID  `json:"id,omitempty" bson:"_id,omitempty"`
	Name        LocalizedText       `json:"name" bson:"name"`
	Location    LocalizedText       `json:"location" bson:"location"`
	Costs       LocalizedText       `json:"costs" bson:"costs"`
	Description LocalizedText       `json:"description" bson:"description"`
	BeginTime   time.Time           `json:"beginTime" bson:"beginTime"`
	EndTime     time.Time           `json:"endTime" bson:"endTime"`
	Status      string              `json:"status" bson:"status" example:"toApprove"`
	CreatorID   primitive.ObjectID  `json:"creatorId" bson:"creatorId"`
	ApproverID  *primitive.ObjectID `json:"approverId,omitempty" bson:"approverId,omitempty"`
	OrganID     *primitive.ObjectID `json:"organId,omitempty" bson:"organId,omitempty"`
	CompanyID   *primitive.ObjectID `json:"companyId,omitempty" bson:"companyId,omitempty"`
	OnlyMembers bool                `json:"onlyMembers" bson:"onlyMembers"`
	Highlighted bool                `json:"highlighted" bson:"highlighted"`
	Categories  []string            `json:"categories" bson:"categories" example:"sport,social"`
	SignupLists []SignupList        `json:"signupLists" bson:"signupLists"`
}

// SignupList รายชื่อลงทะเบียนของกิจกรรม
type SignupList struct {
	ID              primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name            LocalizedText      `json:"name" bson:"name"`
	OpenDate        time.Time          `json:"openDate" bson:"openDate"`
	CloseDate       time.Time          `json:"closeDate" bson:"closeDate"`
	LimitedCapacity bool               `json:"limitedCapacity" bson:"limitedCapacity"`
	Fields          []SignupField      `json:"fields" bson:"fields"`
}

// SignupField field types
const (
	FieldText     = "text"
	FieldNumber   = "number"
	FieldChoice   = "choice"
	FieldCheckbox = "checkbox"
)

type SignupField struct {
	Name     LocalizedText `json:"name" bson:"name"`
	Type     string        `json:"type" bson:"type" example:"choice"`
	MinValue *int          `json:"minValue,omitempty" bson:"minValue,omitempty"`
	MaxValue *int          `json:"maxValue,omitempty" bson:"maxValue,omitempty"`
	Options  []string      `json:"options,omitempty" bson:"options,omitempty" example:"S,M,L"`
}
