package generic

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Theo3883/Hour-Tracking-Application/pkg/apperror"
)

// BaseRepository Interface
type BaseRepository[T Entity] interface {
	Insert(ctx context.Context, entity T) error
	FindByID(ctx context.Context, id primitive.ObjectID) (T, error)
	Replace(ctx context.Context, entity T) error
	Remove(ctx context.Context, id primitive.ObjectID) error
}

// MongoBaseRepository implements the shared CRUD surface over one collection.
// Not-found conditions come back as apperror.NotFound so callers never touch
// mongo.ErrNoDocuments directly.
type MongoBaseRepository[T Entity] struct {
	Collection *mongo.Collection
	Label      string // human name used in not-found messages, e.g. "user"
}

func NewBaseRepository[T Entity](collection *mongo.Collection, label string) *MongoBaseRepository[T] {
	return &MongoBaseRepository[T]{Collection: collection, Label: label}
}

func (r *MongoBaseRepository[T]) Insert(ctx context.Context, entity T) error {
	if entity.GetID().IsZero() {
		entity.SetID(primitive.NewObjectID())
	}
	_, err := r.Collection.InsertOne(ctx, entity)
	if mongo.IsDuplicateKeyError(err) {
		return apperror.Conflict("%s already exists", r.Label)
	}
	return err
}

func (r *MongoBaseRepository[T]) FindByID(ctx context.Context, id primitive.ObjectID) (T, error) {
	var entity T
	err := r.Collection.FindOne(ctx, bson.M{"_id": id}).Decode(&entity)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return entity, apperror.NotFound("%s not found", r.Label)
	}
	return entity, err
}

func (r *MongoBaseRepository[T]) Replace(ctx context.Context, entity T) error {
	res, err := r.Collection.ReplaceOne(ctx, bson.M{"_id": entity.GetID()}, entity)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return apperror.NotFound("%s not found", r.Label)
	}
	return nil
}

// Remove deletes by id in a single checked step so a concurrent delete
// resolves to NotFound instead of a silent double-remove.
func (r *MongoBaseRepository[T]) Remove(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.Collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return apperror.NotFound("%s not found", r.Label)
	}
	return nil
}
