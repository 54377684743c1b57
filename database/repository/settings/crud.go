package settingsRepo

import (
	"context"
	"errors"

	"brilho/database"
	"brilho/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const settingsDocID = "platform"

type mongoSettingsRepo struct {
	coll *mongo.Collection
}

// NewMongoSettingsRepo returns a new SettingsRepository instance using MongoDB.
func NewMongoSettingsRepo() SettingsRepository {
	db := database.MongoClient.Database(database.DatabaseName)
	return &mongoSettingsRepo{
		coll: db.Collection("platform_settings"),
	}
}

// Get loads the singleton settings document. A missing document is seeded
// with defaults so the settlement path always has a payout matrix.
func (r *mongoSettingsRepo) Get(ctx context.Context) (*models.PlatformSettings, error) {
	var settings models.PlatformSettings
	err := r.coll.FindOne(ctx, bson.M{"id": settingsDocID}).Decode(&settings)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			defaults := models.DefaultPlatformSettings()
			if err := r.Replace(ctx, defaults); err != nil {
				return nil, err
			}
			return &defaults, nil
		}
		return nil, err
	}
	return &settings, nil
}

// Replace overwrites the settings document wholesale (admin save).
func (r *mongoSettingsRepo) Replace(ctx context.Context, settings models.PlatformSettings) error {
	settings.ID = settingsDocID
	opts := options.Replace().SetUpsert(true)
	_, err := r.coll.ReplaceOne(ctx, bson.M{"id": settingsDocID}, settings, opts)
	return err
}
