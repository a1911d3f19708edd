package repositories

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"smartretail/internal/models"
)

// MockCommandLogRepository is an in-memory implementation of CommandLogRepository.
type MockCommandLogRepository struct {
	entries []models.CommandLog
	mu      sync.RWMutex
}

// NewMockCommandLogRepository creates a new instance of MockCommandLogRepository.
func NewMockCommandLogRepository() *MockCommandLogRepository {
	return &MockCommandLogRepository{}
}

// Create appends a new command-log entry.
func (r *MockCommandLogRepository) Create(_ context.Context, entry *models.CommandLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if entry.ID.IsZero() {
		entry.ID = primitive.NewObjectID()
	}
	now := time.Now().UTC()
	entry.CreatedAt = now
	entry.UpdatedAt = now
	r.entries = append(r.entries, *entry)
	return nil
}

// ListByUserID returns all entries recorded for the given user.
func (r *MockCommandLogRepository) ListByUserID(_ context.Context, userID string) ([]models.CommandLog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []models.CommandLog
	for _, e := range r.entries {
		if e.UserID.Hex() == userID {
			out = append(out, e)
		}
	}
	return out, nil
}
