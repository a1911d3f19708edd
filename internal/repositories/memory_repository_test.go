package repositories_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"smartretail/internal/models"
	"smartretail/internal/repositories"
)

func TestMockUserRepository(t *testing.T) {
	repo := repositories.NewMockUserRepository()
	ctx := context.Background()

	user := &models.User{Name: "Ann", Email: "ann@x.com", PasswordHash: "digest"}
	require.NoError(t, repo.Create(ctx, user))
	assert.False(t, user.ID.IsZero())
	assert.False(t, user.CreatedAt.IsZero())

	// Unique email holds, same as the Mongo index.
	err := repo.Create(ctx, &models.User{Name: "Ann2", Email: "ann@x.com"})
	assert.ErrorIs(t, err, repositories.ErrUserExists)

	got, err := repo.GetByEmail(ctx, "ann@x.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	got, err = repo.GetByID(ctx, user.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, "Ann", got.Name)

	_, err = repo.GetByEmail(ctx, "ghost@x.com")
	assert.ErrorIs(t, err, repositories.ErrUserNotFound)
}

func TestMockProductRepository(t *testing.T) {
	repo := repositories.NewMockProductRepository()
	ctx := context.Background()

	product := &models.Product{Name: "Sneaker", Price: 0, Stock: 0}
	require.NoError(t, repo.Create(ctx, product))
	assert.False(t, product.ID.IsZero())

	got, err := repo.GetByID(ctx, product.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, "Sneaker", got.Name)

	require.NoError(t, repo.Delete(ctx, product.ID.Hex()))
	assert.ErrorIs(t, repo.Delete(ctx, product.ID.Hex()), repositories.ErrProductNotFound)

	_, err = repo.GetByID(ctx, product.ID.Hex())
	assert.ErrorIs(t, err, repositories.ErrProductNotFound)
}

func TestMockCartRepository(t *testing.T) {
	repo := repositories.NewMockCartRepository()
	ctx := context.Background()

	userID := primitive.NewObjectID()
	cart := &models.Cart{
		UserID: userID,
		Items: []models.CartItem{
			{ProductID: primitive.NewObjectID(), Quantity: 2},
		},
	}
	require.NoError(t, repo.Create(ctx, cart))

	got, err := repo.GetByUserID(ctx, userID.Hex())
	require.NoError(t, err)
	assert.Len(t, got.Items, 1)
	assert.Equal(t, 2, got.Items[0].Quantity)

	_, err = repo.GetByUserID(ctx, primitive.NewObjectID().Hex())
	assert.ErrorIs(t, err, repositories.ErrCartNotFound)
}

func TestMockCommandLogRepository(t *testing.T) {
	repo := repositories.NewMockCommandLogRepository()
	ctx := context.Background()

	userID := primitive.NewObjectID()
	entry := &models.CommandLog{
		UserID:        userID,
		InputText:     "show me white sneakers under 50",
		MatchedIntent: "product.search",
		ExtractedData: map[string]interface{}{"color": "white", "maxPrice": 50},
	}
	require.NoError(t, repo.Create(ctx, entry))
	require.NoError(t, repo.Create(ctx, &models.CommandLog{
		UserID:        primitive.NewObjectID(),
		InputText:     "unrelated",
		MatchedIntent: "fallback",
	}))

	entries, err := repo.ListByUserID(ctx, userID.Hex())
	require.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Equal(t, "product.search", entries[0].MatchedIntent)
}
