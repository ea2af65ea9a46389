package models

import "go.mongodb.org/mongo-driver/bson/primitive"

const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

// User บัญชีสมาชิก
type User struct {
	ID       primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name     string             `json:"name" bson:"name" example:"Jan Jansen"`
	Email    string             `json:"email" bson:"email" example:"jan@example.org"`
	Password string             `json:"-" bson:"password"`
	Role     string             `json:"role" bson:"role" example:"member"`
	// Organs the member may act for (committee memberships).
	OrganIDs []primitive.ObjectID `json:"organIds,omitempty" bson:"organIds,omitempty"`
}

// MemberOf reports whether the user belongs to the given organ.
func (u *User) MemberOf(organID primitive.ObjectID) bool {
	for _, id := range u.OrganIDs {
		if id == organID {
			return true
		}
	}
	return false
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
