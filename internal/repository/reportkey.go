package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Theo3883/Hour-Tracking-Application/internal/model"
	"github.com/Theo3883/Hour-Tracking-Application/pkg/apperror"
	"github.com/Theo3883/Hour-Tracking-Application/pkg/generic"
)

// IReportKeyRepository defines report key persistence
type IReportKeyRepository interface {
	Insert(ctx context.Context, key *model.ReportKey) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.ReportKey, error)
	FindAll(ctx context.Context) ([]*model.ReportKey, error)
	FindActive(ctx context.Context) ([]*model.ReportKey, error)
	SetActive(ctx context.Context, id primitive.ObjectID, active bool) error
	UpdateLastUsed(ctx context.Context, id primitive.ObjectID) error
	Remove(ctx context.Context, id primitive.ObjectID) error
}

// ReportKeyRepository implements report key persistence
type ReportKeyRepository struct {
	*generic.MongoBaseRepository[*model.ReportKey]
}

func NewReportKeyRepository(db *mongo.Database) IReportKeyRepository {
	return &ReportKeyRepository{
		MongoBaseRepository: generic.NewBaseRepository[*model.ReportKey](db.Collection("report_keys"), "report key"),
	}
}

func (r *ReportKeyRepository) FindAll(ctx context.Context) ([]*model.ReportKey, error) {
	return r.findMany(ctx, bson.M{})
}

func (r *ReportKeyRepository) FindActive(ctx context.Context) ([]*model.ReportKey, error) {
	return r.findMany(ctx, bson.M{"isActive": true})
}

func (r *ReportKeyRepository) SetActive(ctx context.Context, id primitive.ObjectID, active bool) error {
	res, err := r.Collection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"isActive": active, "updatedAt": time.Now()}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return apperror.NotFound("report key not found")
	}
	return nil
}

// UpdateLastUsed is best-effort; validation does not fail on a miss here.
func (r *ReportKeyRepository) UpdateLastUsed(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.Collection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"lastUsedAt": time.Now()}})
	return err
}

func (r *ReportKeyRepository) findMany(ctx context.Context, filter bson.M) ([]*model.ReportKey, error) {
	cursor, err := r.Collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var keys []*model.ReportKey
	if err := cursor.All(ctx, &keys); err != nil {
		return nil, err
	}
	return keys, nil
}
