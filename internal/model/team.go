package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// TeamMembership links a user to a project. The (UserID, ProjectID) pair is
// unique; removing a membership cascades to the member's project tasks.
type TeamMembership struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"userID" json:"userID"`
	ProjectID primitive.ObjectID `bson:"projectID" json:"projectID"`
}

func (t *TeamMembership) GetID() primitive.ObjectID   { return t.ID }
func (t *TeamMembership) SetID(id primitive.ObjectID) { t.ID = id }

// TeamMemberView is the membership row joined with its user record.
type TeamMemberView struct {
	MembershipID string  `json:"membershipId"`
	User         UserRef `json:"user"`
}

// TeamProjectView is the membership row joined with its project record, used
// by the "my teams" projection.
type TeamProjectView struct {
	MembershipID string `json:"membershipId"`
	ProjectID    string `json:"projectId"`
	ProjectCode  string `json:"projectCode"`
	ProjectName  string `json:"projectName"`
}

// AddTeamMemberRequest creates a membership pair.
type AddTeamMemberRequest struct {
	UserID    string `json:"userID" binding:"required"`
	ProjectID string `json:"projectID" binding:"required"`
}

// RemoveTeamMemberRequest removes a membership pair together with the
// member's project tasks.
type RemoveTeamMemberRequest struct {
	UserID    string `json:"userID" binding:"required"`
	ProjectID string `json:"projectID" binding:"required"`
}
