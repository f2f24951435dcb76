package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the unique constraints the ledgers rely on:
// user email and codes, department names, project codes, and the composite
// membership pair that prevents duplicate team rows.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	sparse := options.Index().SetUnique(true).SetSparse(true)
	unique := options.Index().SetUnique(true)

	indexes := map[string][]mongo.IndexModel{
		"users": {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "googleId", Value: 1}}, Options: sparse},
			{Keys: bson.D{{Key: "userID", Value: 1}}, Options: sparse},
		},
		"departments": {
			{Keys: bson.D{{Key: "name", Value: 1}}, Options: unique},
		},
		"projects": {
			{Keys: bson.D{{Key: "projectID", Value: 1}}, Options: unique},
		},
		"org_teams": {
			{Keys: bson.D{{Key: "userID", Value: 1}, {Key: "projectID", Value: 1}}, Options: unique},
		},
	}

	for collection, models := range indexes {
		if _, err := db.Collection(collection).Indexes().CreateMany(ctx, models); err != nil {
			return err
		}
	}
	return nil
}
