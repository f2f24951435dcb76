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

// ITeamRepository defines team membership persistence
type ITeamRepository interface {
	Insert(ctx context.Context, membership *model.TeamMembership) error
	FindPair(ctx context.Context, userID, projectID primitive.ObjectID) (*model.TeamMembership, error)
	FindByUser(ctx context.Context, userID primitive.ObjectID) ([]*model.TeamMembership, error)
	FindByProject(ctx context.Context, projectID primitive.ObjectID) ([]*model.TeamMembership, error)
	FindAll(ctx context.Context) ([]*model.TeamMembership, error)
	DeletePair(ctx context.Context, userID, projectID primitive.ObjectID) error
}

// TeamRepository implements membership persistence over "org_teams"
type TeamRepository struct {
	*generic.MongoBaseRepository[*model.TeamMembership]
}

func NewTeamRepository(db *mongo.Database) ITeamRepository {
	return &TeamRepository{
		MongoBaseRepository: generic.NewBaseRepository[*model.TeamMembership](db.Collection("org_teams"), "team membership"),
	}
}

// FindPair returns nil, nil when the pair does not exist.
func (r *TeamRepository) FindPair(ctx context.Context, userID, projectID primitive.ObjectID) (*model.TeamMembership, error) {
	var membership *model.TeamMembership
	err := r.Collection.FindOne(ctx, bson.M{"userID": userID, "projectID": projectID}).Decode(&membership)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return membership, nil
}

func (r *TeamRepository) FindByUser(ctx context.Context, userID primitive.ObjectID) ([]*model.TeamMembership, error) {
	return r.findMany(ctx, bson.M{"userID": userID})
}

func (r *TeamRepository) FindByProject(ctx context.Context, projectID primitive.ObjectID) ([]*model.TeamMembership, error) {
	return r.findMany(ctx, bson.M{"projectID": projectID})
}

func (r *TeamRepository) FindAll(ctx context.Context) ([]*model.TeamMembership, error) {
	return r.findMany(ctx, bson.M{})
}

// DeletePair removes the membership row, reporting NotFound when absent so
// concurrent removals resolve deterministically.
func (r *TeamRepository) DeletePair(ctx context.Context, userID, projectID primitive.ObjectID) error {
	res, err := r.Collection.DeleteOne(ctx, bson.M{"userID": userID, "projectID": projectID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return apperror.NotFound("team membership not found")
	}
	return nil
}

func (r *TeamRepository) findMany(ctx context.Context, filter bson.M) ([]*model.TeamMembership, error) {
	cursor, err := r.Collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var memberships []*model.TeamMembership
	if err := cursor.All(ctx, &memberships); err != nil {
		return nil, err
	}
	return memberships, nil
}
