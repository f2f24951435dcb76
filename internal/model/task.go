package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// ContainerKind distinguishes the two task namespaces. Both share one
// document shape and one state machine; only the container reference differs.
type ContainerKind string

const (
	KindProject    ContainerKind = "project"
	KindDepartment ContainerKind = "department"
)

// Task records contributed hours against one container (a project or a
// department). Approval starts false and only flips through the explicit
// approval operation.
type Task struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID      primitive.ObjectID `bson:"userID" json:"userID"`
	ContainerID primitive.ObjectID `bson:"containerID" json:"containerID"`
	Name        string             `bson:"name" json:"name"`
	HoursWorked float64            `bson:"hours_worked" json:"hours_worked"`
	Approved    bool               `bson:"approved" json:"approved"`
}

func (t *Task) GetID() primitive.ObjectID   { return t.ID }
func (t *Task) SetID(id primitive.ObjectID) { t.ID = id }

// ContainerRef is the resolved project or department reference in task views.
type ContainerRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Code string `json:"code,omitempty"` // project code; empty for departments
}

// TaskView is a task with its weak references resolved. A dangling
// contributor or container resolves to a zero ref, never an error.
type TaskView struct {
	ID          string        `json:"id"`
	Kind        ContainerKind `json:"kind"`
	Name        string        `json:"name"`
	HoursWorked float64       `json:"hours_worked"`
	Approved    bool          `json:"approved"`
	Contributor UserRef       `json:"contributor"`
	Container   ContainerRef  `json:"container"`
}

// CreateTaskRequest logs hours against a container. UserID defaults to the
// caller when empty.
type CreateTaskRequest struct {
	UserID      string   `json:"userID"`
	ContainerID string   `json:"containerID" binding:"required"`
	Name        string   `json:"name" binding:"required"`
	HoursWorked *float64 `json:"hours_worked" binding:"required"`
}

// UpdateTaskRequest is a partial edit; nil fields are left untouched.
type UpdateTaskRequest struct {
	Name        *string  `json:"name"`
	HoursWorked *float64 `json:"hours_worked"`
}

// SetApprovalRequest flips the approval flag.
type SetApprovalRequest struct {
	Approved *bool `json:"approved" binding:"required"`
}
