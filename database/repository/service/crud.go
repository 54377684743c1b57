package serviceRepo

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

// ErrNotFound is returned by GetByID when no service matches.
var ErrNotFound = errors.New("service not found")

type mongoServiceRepo struct {
	coll *mongo.Collection
}

// NewMongoServiceRepo returns a new ServiceRepository instance using MongoDB.
func NewMongoServiceRepo() ServiceRepository {
	db := database.MongoClient.Database(database.DatabaseName)
	return &mongoServiceRepo{
		coll: db.Collection("services"),
	}
}

// Create inserts a new service record.
func (r *mongoServiceRepo) Create(ctx context.Context, svc models.Service) error {
	if svc.ID == "" {
		svc.ID = uuid.New().String()
	}
	if svc.CreatedAt.IsZero() {
		svc.CreatedAt = time.Now()
	}
	_, err := r.coll.InsertOne(ctx, svc)
	return err
}

// GetByID returns a service by its ID.
func (r *mongoServiceRepo) GetByID(ctx context.Context, id string) (*models.Service, error) {
	var svc models.Service
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&svc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &svc, nil
}

// ListAll fetches every service, most recently created first.
func (r *mongoServiceRepo) ListAll(ctx context.Context) ([]models.Service, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var services []models.Service
	if err := cursor.All(ctx, &services); err != nil {
		return nil, err
	}
	return services, nil
}

// UpdateFields applies a partial $set built from the patch. The camelCase
// domain fields map one-for-one onto the snake_case storage fields; this
// translation is the only contract between the engine and its backing store.
func (r *mongoServiceRepo) UpdateFields(ctx context.Context, id string, status *models.ServiceStatus, patch models.ServicePatch) error {
	set := bson.M{}
	if status != nil {
		set["status"] = *status
	}
	if patch.Price != nil {
		set["price"] = *patch.Price
	}
	if patch.Summary != nil {
		set["summary"] = *patch.Summary
	}
	if patch.Notes != nil {
		set["notes"] = *patch.Notes
	}
	if patch.PaymentStatus != nil {
		set["payment_status"] = *patch.PaymentStatus
	}
	if patch.PaymentLinkSignal != nil {
		set["payment_link_signal"] = *patch.PaymentLinkSignal
	}
	if patch.PaymentLinkFinal != nil {
		set["payment_link_final"] = *patch.PaymentLinkFinal
	}
	if patch.PaymentProofSignal != nil {
		set["payment_proof_signal"] = *patch.PaymentProofSignal
	}
	if patch.PaymentProofFinal != nil {
		set["payment_proof_final"] = *patch.PaymentProofFinal
	}
	if patch.CheckedInAt != nil {
		set["checked_in_at"] = *patch.CheckedInAt
	}
	if patch.PhotosBefore != nil {
		set["photos_before"] = patch.PhotosBefore
	}
	if patch.PhotosAfter != nil {
		set["photos_after"] = patch.PhotosAfter
	}
	if patch.CollaboratorID != nil {
		set["collaborator_id"] = *patch.CollaboratorID
	}
	if patch.CollaboratorName != nil {
		set["collaborator_name"] = *patch.CollaboratorName
	}
	if patch.Duration != nil {
		set["duration"] = *patch.Duration
	}
	if len(set) == 0 {
		return nil
	}

	// MatchedCount 0 (unknown id) is deliberately not an error.
	_, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": set})
	return err
}
