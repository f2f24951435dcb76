package util

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Theo3883/Hour-Tracking-Application/pkg/apperror"
)

// ParseObjectID converts a hex string into an ObjectID, returning an
// InvalidInput error suitable for direct surfacing to clients.
func ParseObjectID(field, id string) (primitive.ObjectID, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, apperror.InvalidInput("invalid %s: %q is not a valid id", field, id)
	}
	return objID, nil
}

// IsValidObjectID reports whether the string is a valid ObjectID hex.
func IsValidObjectID(id string) bool {
	_, err := primitive.ObjectIDFromHex(id)
	return err == nil
}
