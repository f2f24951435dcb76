package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Theo3883/Hour-Tracking-Application/internal/model"
	"github.com/Theo3883/Hour-Tracking-Application/pkg/generic"
)

// ITaskRepository defines task persistence. One implementation serves both
// namespaces; project tasks and department tasks live in separate collections
// but share the document shape.
type ITaskRepository interface {
	Insert(ctx context.Context, task *model.Task) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Task, error)
	Replace(ctx context.Context, task *model.Task) error
	Remove(ctx context.Context, id primitive.ObjectID) error
	FindAll(ctx context.Context) ([]*model.Task, error)
	FindByContainer(ctx context.Context, containerID primitive.ObjectID) ([]*model.Task, error)
	FindApproved(ctx context.Context) ([]*model.Task, error)
	FindApprovedByUser(ctx context.Context, userID primitive.ObjectID) ([]*model.Task, error)
	FindApprovedByContainer(ctx context.Context, containerID primitive.ObjectID) ([]*model.Task, error)
	DeleteByUserAndContainer(ctx context.Context, userID, containerID primitive.ObjectID) (int64, error)
}

// TaskRepository implements task persistence over one collection
type TaskRepository struct {
	*generic.MongoBaseRepository[*model.Task]
}

// NewProjectTaskRepository serves the project-task namespace.
func NewProjectTaskRepository(db *mongo.Database) ITaskRepository {
	return &TaskRepository{
		MongoBaseRepository: generic.NewBaseRepository[*model.Task](db.Collection("tasks"), "task"),
	}
}

// NewDepartmentTaskRepository serves the department-task namespace.
func NewDepartmentTaskRepository(db *mongo.Database) ITaskRepository {
	return &TaskRepository{
		MongoBaseRepository: generic.NewBaseRepository[*model.Task](db.Collection("department_tasks"), "task"),
	}
}

func (r *TaskRepository) FindAll(ctx context.Context) ([]*model.Task, error) {
	return r.findMany(ctx, bson.M{})
}

func (r *TaskRepository) FindByContainer(ctx context.Context, containerID primitive.ObjectID) ([]*model.Task, error) {
	return r.findMany(ctx, bson.M{"containerID": containerID})
}

func (r *TaskRepository) FindApproved(ctx context.Context) ([]*model.Task, error) {
	return r.findMany(ctx, bson.M{"approved": true})
}

func (r *TaskRepository) FindApprovedByUser(ctx context.Context, userID primitive.ObjectID) ([]*model.Task, error) {
	return r.findMany(ctx, bson.M{"userID": userID, "approved": true})
}

func (r *TaskRepository) FindApprovedByContainer(ctx context.Context, containerID primitive.ObjectID) ([]*model.Task, error) {
	return r.findMany(ctx, bson.M{"containerID": containerID, "approved": true})
}

// DeleteByUserAndContainer removes every task the user holds in the given
// container, approved or not. Cascades call this inside a transaction.
func (r *TaskRepository) DeleteByUserAndContainer(ctx context.Context, userID, containerID primitive.ObjectID) (int64, error) {
	res, err := r.Collection.DeleteMany(ctx, bson.M{"userID": userID, "containerID": containerID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (r *TaskRepository) findMany(ctx context.Context, filter bson.M) ([]*model.Task, error) {
	cursor, err := r.Collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var tasks []*model.Task
	if err := cursor.All(ctx, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}
