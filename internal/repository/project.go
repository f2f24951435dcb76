package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Theo3883/Hour-Tracking-Application/internal/model"
	"github.com/Theo3883/Hour-Tracking-Application/pkg/apperror"
	"github.com/Theo3883/Hour-Tracking-Application/pkg/generic"
)

// IProjectRepository defines project persistence
type IProjectRepository interface {
	Insert(ctx context.Context, project *model.Project) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Project, error)
	FindAll(ctx context.Context) ([]*model.Project, error)
	SetCoordinator(ctx context.Context, projectID, userID primitive.ObjectID) error
}

// ProjectRepository implements project persistence
type ProjectRepository struct {
	*generic.MongoBaseRepository[*model.Project]
}

func NewProjectRepository(db *mongo.Database) IProjectRepository {
	return &ProjectRepository{
		MongoBaseRepository: generic.NewBaseRepository[*model.Project](db.Collection("projects"), "project"),
	}
}

func (r *ProjectRepository) FindAll(ctx context.Context) ([]*model.Project, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var projects []*model.Project
	if err := cursor.All(ctx, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

func (r *ProjectRepository) SetCoordinator(ctx context.Context, projectID, userID primitive.ObjectID) error {
	res, err := r.Collection.UpdateOne(ctx,
		bson.M{"_id": projectID},
		bson.M{"$set": bson.M{"coordinatorID": userID}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return apperror.NotFound("project not found")
	}
	return nil
}
