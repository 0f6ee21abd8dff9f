package settingsRepo

import (
	"context"
	"fmt"
	"time"

	"weddify/database"
	"weddify/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const settingsDocID = "platform"

// MongoSettingsRepo implements SettingsRepository using MongoDB.
type MongoSettingsRepo struct {
	coll *mongo.Collection
}

// NewMongoSettingsRepo creates a new instance of SettingsRepository using MongoDB.
func NewMongoSettingsRepo() SettingsRepository {
	return &MongoSettingsRepo{coll: database.Collection("settings")}
}

func (r *MongoSettingsRepo) Get() (*models.PlatformSettings, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	var settings models.PlatformSettings
	if err := r.coll.FindOne(ctx, bson.M{"id": settingsDocID}).Decode(&settings); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch platform settings: %w", err)
	}
	return &settings, nil
}

// Patch writes only the given fields, so concurrent patches of disjoint
// fields cannot overwrite each other.
func (r *MongoSettingsRepo) Patch(set, defaults map[string]interface{}) (*models.PlatformSettings, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	onInsert := bson.M{}
	for k, v := range defaults {
		if _, overridden := set[k]; !overridden {
			onInsert[k] = v
		}
	}
	update := bson.M{"$set": bson.M(set)}
	if len(onInsert) > 0 {
		update["$setOnInsert"] = onInsert
	}

	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	var settings models.PlatformSettings
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": settingsDocID}, update, opts).Decode(&settings); err != nil {
		return nil, fmt.Errorf("failed to patch platform settings: %w", err)
	}
	return &settings, nil
}
