package repositories

import (
	"context"

	"smartretail/internal/models"
)

// CommandLogRepository defines the interface for command-log data access.
// Nothing in the request flows writes to it yet.
type CommandLogRepository interface {
	Create(ctx context.Context, entry *models.CommandLog) error
	ListByUserID(ctx context.Context, userID string) ([]models.CommandLog, error)
}
