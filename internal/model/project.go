package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Project is the cross-cutting axis: members join through team memberships
// independently of their department.
type Project struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Code          string             `bson:"projectID" json:"projectID"` // unique human project code
	Name          string             `bson:"name" json:"name"`
	CoordinatorID primitive.ObjectID `bson:"coordinatorID,omitempty" json:"coordinatorID,omitempty"`
}

func (p *Project) GetID() primitive.ObjectID   { return p.ID }
func (p *Project) SetID(id primitive.ObjectID) { p.ID = id }

func (p *Project) HasCoordinator() bool { return !p.CoordinatorID.IsZero() }

// CreateProjectRequest creates a project with its unique code.
type CreateProjectRequest struct {
	Code          string `json:"projectID" binding:"required"`
	Name          string `json:"name" binding:"required"`
	CoordinatorID string `json:"coordinatorID"`
}

// UpdateProjectCoordinatorRequest assigns a coordinator by email.
type UpdateProjectCoordinatorRequest struct {
	Email     string `json:"email" binding:"required"`
	ProjectID string `json:"projectID" binding:"required"`
}
