package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Department is one side of the two organizational axes. It does not own its
// members; each User holds the owning departmentID reference.
type Department struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name          string             `bson:"name" json:"name"`
	CoordinatorID primitive.ObjectID `bson:"coordinatorID,omitempty" json:"coordinatorID,omitempty"`
}

func (d *Department) GetID() primitive.ObjectID   { return d.ID }
func (d *Department) SetID(id primitive.ObjectID) { d.ID = id }

// HasCoordinator reports whether a coordinator is assigned.
func (d *Department) HasCoordinator() bool { return !d.CoordinatorID.IsZero() }

// CreateDepartmentRequest creates a named department.
type CreateDepartmentRequest struct {
	Name string `json:"name" binding:"required"`
}

// AssignCoordinatorRequest assigns a coordinator by email to a department.
type AssignCoordinatorRequest struct {
	Email        string `json:"email" binding:"required"`
	DepartmentID string `json:"departmentID" binding:"required"`
}
