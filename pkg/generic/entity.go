package generic

import "go.mongodb.org/mongo-driver/bson/primitive"

// Entity is implemented by every persisted document so the base repository
// can manage identifiers uniformly.
type Entity interface {
	GetID() primitive.ObjectID
	SetID(primitive.ObjectID)
}
