package authz

import (
	"Backend-AssocHub-012/src/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Actions checked against the oracle. Global checks pass nil as resource.
const (
	// ActivityUpdate with nil resource is the global update authority; with
	// an *models.Activity it asks whether the actor may act for that one.
	ActivityUpdate         = "activity.update"
	ActivityCreateProposal = "activity.create_proposal"

	OptionCreate = "activity_calendar.create"
	// OptionBypass is the "always allowed" authority: skips quota and
	// window checks entirely.
	OptionBypass    = "activity_calendar.always_allowed"
	OptionApprove   = "activity_calendar.approve"
	OptionDeleteAll = "activity_calendar.delete_all"
	OptionDeleteOwn = "activity_calendar.delete_own"

	OrganEdit = "organ.edit"
)

// Oracle answers permission questions. It is consulted before every
// mutating operation and never consulted afterwards.
type Oracle interface {
	IsAllowed(actor *models.User, action string, resource any) bool
}

// RoleOracle is the default oracle: admins may do everything, members get
// per-resource rights (own activities, own organs).
type RoleOracle struct{}

func (RoleOracle) IsAllowed(actor *models.User, action string, resource any) bool {
	if actor == nil {
		return false
	}
	if actor.Role == models.RoleAdmin {
		return true
	}

	switch action {
	case ActivityCreateProposal, OptionCreate, OptionDeleteOwn:
		return true
	case ActivityUpdate:
		a, ok := resource.(*models.Activity)
		if !ok {
			// Global update authority is admin-only.
			return false
		}
		if a.CreatorID == actor.ID {
			return true
		}
		return a.OrganID != nil && actor.MemberOf(*a.OrganID)
	case OrganEdit:
		switch r := resource.(type) {
		case primitive.ObjectID:
			return actor.MemberOf(r)
		case *models.Organ:
			return r != nil && actor.MemberOf(r.ID)
		}
		return false
	default:
		// OptionBypass, OptionApprove, OptionDeleteAll: centralized, admin-only.
		return false
	}
}
