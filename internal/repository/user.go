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

// IUserRepository defines user persistence
type IUserRepository interface {
	Insert(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.User, error)
	Replace(ctx context.Context, user *model.User) error
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindAll(ctx context.Context) ([]*model.User, error)
	FindByDepartment(ctx context.Context, departmentID primitive.ObjectID) ([]*model.User, error)
	UpdateDepartment(ctx context.Context, userID, departmentID primitive.ObjectID) error
	UpdateRole(ctx context.Context, userID primitive.ObjectID, role model.Role) error
}

// UserRepository implements user persistence over the "users" collection
type UserRepository struct {
	*generic.MongoBaseRepository[*model.User]
}

func NewUserRepository(db *mongo.Database) IUserRepository {
	return &UserRepository{
		MongoBaseRepository: generic.NewBaseRepository[*model.User](db.Collection("users"), "user"),
	}
}

// FindByEmail returns nil, nil when no user carries the email.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user *model.User
	err := r.Collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r *UserRepository) FindAll(ctx context.Context) ([]*model.User, error) {
	return r.findMany(ctx, bson.M{})
}

func (r *UserRepository) FindByDepartment(ctx context.Context, departmentID primitive.ObjectID) ([]*model.User, error) {
	return r.findMany(ctx, bson.M{"departmentID": departmentID})
}

func (r *UserRepository) UpdateDepartment(ctx context.Context, userID, departmentID primitive.ObjectID) error {
	return r.updateOne(ctx, userID, bson.M{"departmentID": departmentID})
}

func (r *UserRepository) UpdateRole(ctx context.Context, userID primitive.ObjectID, role model.Role) error {
	return r.updateOne(ctx, userID, bson.M{"role": role})
}

func (r *UserRepository) updateOne(ctx context.Context, id primitive.ObjectID, set bson.M) error {
	res, err := r.Collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return apperror.NotFound("user not found")
	}
	return nil
}

func (r *UserRepository) findMany(ctx context.Context, filter bson.M) ([]*model.User, error) {
	cursor, err := r.Collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []*model.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}
