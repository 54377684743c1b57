package transactionRepo

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

// ErrNotFound is returned when no transaction matches.
var ErrNotFound = errors.New("transaction not found")

type mongoTransactionRepo struct {
	coll *mongo.Collection
}

// NewMongoTransactionRepo returns a new TransactionRepository instance using MongoDB.
func NewMongoTransactionRepo() TransactionRepository {
	db := database.MongoClient.Database(database.DatabaseName)
	return &mongoTransactionRepo{
		coll: db.Collection("transactions"),
	}
}

// Append inserts a new ledger entry and returns its ID.
func (r *mongoTransactionRepo) Append(ctx context.Context, txn models.Transaction) (string, error) {
	if txn.ID == "" {
		txn.ID = uuid.New().String()
	}
	if txn.CreatedAt.IsZero() {
		txn.CreatedAt = time.Now()
	}
	if txn.Date == "" {
		txn.Date = txn.CreatedAt.Format("2006-01-02")
	}
	_, err := r.coll.InsertOne(ctx, txn)
	if err != nil {
		return "", err
	}
	return txn.ID, nil
}

// GetByID returns a ledger entry by its ID.
func (r *mongoTransactionRepo) GetByID(ctx context.Context, id string) (*models.Transaction, error) {
	var txn models.Transaction
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&txn)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &txn, nil
}

// ListAll fetches every ledger entry, newest first.
func (r *mongoTransactionRepo) ListAll(ctx context.Context) ([]models.Transaction, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var txns []models.Transaction
	if err := cursor.All(ctx, &txns); err != nil {
		return nil, err
	}
	return txns, nil
}

// UpdateStatus sets the settlement status of an entry.
func (r *mongoTransactionRepo) UpdateStatus(ctx context.Context, id string, status models.TransactionStatus) error {
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteByID removes a ledger entry permanently.
func (r *mongoTransactionRepo) DeleteByID(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
