package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Theo3883/Hour-Tracking-Application/internal/model"
	"github.com/Theo3883/Hour-Tracking-Application/pkg/apperror"
	"github.com/Theo3883/Hour-Tracking-Application/pkg/generic"
)

// IDepartmentRepository defines department persistence
type IDepartmentRepository interface {
	Insert(ctx context.Context, department *model.Department) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Department, error)
	FindByName(ctx context.Context, name string) (*model.Department, error)
	FindAll(ctx context.Context) ([]*model.Department, error)
	SetCoordinator(ctx context.Context, departmentID, userID primitive.ObjectID) error
}

// DepartmentRepository implements department persistence
type DepartmentRepository struct {
	*generic.MongoBaseRepository[*model.Department]
}

func NewDepartmentRepository(db *mongo.Database) IDepartmentRepository {
	return &DepartmentRepository{
		MongoBaseRepository: generic.NewBaseRepository[*model.Department](db.Collection("departments"), "department"),
	}
}

// FindByName returns nil, nil when the name is unknown.
func (r *DepartmentRepository) FindByName(ctx context.Context, name string) (*model.Department, error) {
	var department *model.Department
	err := r.Collection.FindOne(ctx, bson.M{"name": name}).Decode(&department)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return department, nil
}

func (r *DepartmentRepository) FindAll(ctx context.Context) ([]*model.Department, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var departments []*model.Department
	if err := cursor.All(ctx, &departments); err != nil {
		return nil, err
	}
	return departments, nil
}

// SetCoordinator overwrites the single coordinator reference; no history kept.
func (r *DepartmentRepository) SetCoordinator(ctx context.Context, departmentID, userID primitive.ObjectID) error {
	res, err := r.Collection.UpdateOne(ctx,
		bson.M{"_id": departmentID},
		bson.M{"$set": bson.M{"coordinatorID": userID}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return apperror.NotFound("department not found")
	}
	return nil
}
