package collaboratorRepo

import (
	"context"
	"errors"
	"time"

	"brilho/database"
	"brilho/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when no collaborator matches.
var ErrNotFound = errors.New("collaborator not found")

type mongoCollaboratorRepo struct {
	coll *mongo.Collection
}

// NewMongoCollaboratorRepo returns a new CollaboratorRepository instance using MongoDB.
func NewMongoCollaboratorRepo() CollaboratorRepository {
	db := database.MongoClient.Database(database.DatabaseName)
	return &mongoCollaboratorRepo{
		coll: db.Collection("collaborators"),
	}
}

// GetByID returns a collaborator by ID.
func (r *mongoCollaboratorRepo) GetByID(ctx context.Context, id string) (*models.Collaborator, error) {
	var collab models.Collaborator
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&collab)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &collab, nil
}

// ListAll fetches every collaborator, alphabetically.
func (r *mongoCollaboratorRepo) ListAll(ctx context.Context) ([]models.Collaborator, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var collabs []models.Collaborator
	if err := cursor.All(ctx, &collabs); err != nil {
		return nil, err
	}
	return collabs, nil
}

// Upsert inserts or replaces a collaborator and returns its ID.
func (r *mongoCollaboratorRepo) Upsert(ctx context.Context, collab models.Collaborator) (string, error) {
	if collab.ID == "" {
		collab.ID = uuid.New().String()
	}
	if collab.CreatedAt.IsZero() {
		collab.CreatedAt = time.Now()
	}
	opts := options.Replace().SetUpsert(true)
	_, err := r.coll.ReplaceOne(ctx, bson.M{"id": collab.ID}, collab, opts)
	if err != nil {
		return "", err
	}
	return collab.ID, nil
}
