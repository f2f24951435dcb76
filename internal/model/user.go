package model

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role is the stored account role. Coordinator is not a role: it is derived
// per-resource by comparing coordinator references against the principal id.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User represents a member account. Every user belongs to exactly one
// department at all times; newly provisioned accounts land in the fallback
// department.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	MemberCode   string             `bson:"userID,omitempty" json:"userID,omitempty"` // legacy human code, uuid v4
	Email        string             `bson:"email" json:"email"`
	FirstName    string             `bson:"firstName" json:"firstName"`
	LastName     string             `bson:"lastName" json:"lastName"`
	DepartmentID primitive.ObjectID `bson:"departmentID" json:"departmentID"`
	Role         Role               `bson:"role" json:"role"`
	GoogleID     string             `bson:"googleId,omitempty" json:"googleId,omitempty"`
	Image        string             `bson:"image,omitempty" json:"image,omitempty"`
}

func (u *User) GetID() primitive.ObjectID   { return u.ID }
func (u *User) SetID(id primitive.ObjectID) { u.ID = id }

func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }

// Principal is the authenticated identity attached to each request by the
// auth middleware. Verification of the underlying credential happens in the
// external sign-in layer; the core only consumes the verified result.
type Principal struct {
	ID    primitive.ObjectID
	Email string
	Role  Role
}

func (p Principal) IsAdmin() bool { return p.Role == RoleAdmin }

// UserRef is the resolved contributor reference embedded in views.
type UserRef struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// Ref converts a user into its view reference.
func (u *User) Ref() UserRef {
	return UserRef{
		ID:        u.ID.Hex(),
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
	}
}

// GoogleLoginRequest carries the verified Google profile handed over by the
// external authentication layer.
type GoogleLoginRequest struct {
	Email string `json:"email" binding:"required"`
	Name  string `json:"name"`
	Image string `json:"image"`
}

// UpdateUserRequest is the partial user update payload.
type UpdateUserRequest struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	DepartmentID string `json:"departmentID"`
}

// AddToDepartmentRequest reassigns a user to a department.
type AddToDepartmentRequest struct {
	UserID       string `json:"userId" binding:"required"`
	DepartmentID string `json:"departmentId" binding:"required"`
}
