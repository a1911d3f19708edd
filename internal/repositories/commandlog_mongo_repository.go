package repositories

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"smartretail/internal/models"
)

// MongoCommandLogRepository is a MongoDB implementation of CommandLogRepository.
type MongoCommandLogRepository struct {
	coll *mongo.Collection
}

// NewMongoCommandLogRepository creates a new instance of MongoCommandLogRepository.
func NewMongoCommandLogRepository(db *mongo.Database) *MongoCommandLogRepository {
	return &MongoCommandLogRepository{coll: db.Collection("commandlogs")}
}

// Create inserts a new command-log entry, stamping createdAt/updatedAt.
func (r *MongoCommandLogRepository) Create(ctx context.Context, entry *models.CommandLog) error {
	now := time.Now().UTC()
	entry.CreatedAt = now
	entry.UpdatedAt = now

	res, err := r.coll.InsertOne(ctx, entry)
	if err != nil {
		return fmt.Errorf("failed to create command log entry: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		entry.ID = oid
	}
	return nil
}

// ListByUserID retrieves all command-log entries for the given user.
func (r *MongoCommandLogRepository) ListByUserID(ctx context.Context, userID string) ([]models.CommandLog, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, nil
	}
	cur, err := r.coll.Find(ctx, bson.M{"userId": oid})
	if err != nil {
		return nil, fmt.Errorf("failed to list command logs for user %s: %w", userID, err)
	}
	defer cur.Close(ctx)

	var entries []models.CommandLog
	if err := cur.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode command logs: %w", err)
	}
	return entries, nil
}
