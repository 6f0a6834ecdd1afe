//go:build integration

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/moshiurrahman/portfolio-api/internal/domain"
	"github.com/moshiurrahman/portfolio-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviewRepository(t *testing.T) {
	ctx := context.Background()
	pc := testutil.NewPostgresContainer(ctx, t)
	defer pc.Terminate(ctx)

	pool := testutil.NewTestPool(ctx, t, pc, "../../migrations")
	defer pool.Close()

	repo := NewReviewRepository(pool)
	now := time.Now().UTC().Truncate(time.Microsecond)

	t.Run("stats with no reviews", func(t *testing.T) {
		stats, err := repo.Stats(ctx)
		require.NoError(t, err)
		assert.Equal(t, "0.0", stats.Avg)
		assert.Zero(t, stats.Count)
	})

	reviews := []*domain.Review{
		{ID: uuid.NewString(), Name: "Alice", Rating: 5, Comment: "great", CreatedAt: now},
		{ID: uuid.NewString(), Name: "Bob", Rating: 4, Comment: "good", CreatedAt: now.Add(time.Minute)},
		{ID: uuid.NewString(), Name: "Carol", Rating: 2, Comment: "meh", CreatedAt: now.Add(2 * time.Minute)},
	}
	for _, review := range reviews {
		require.NoError(t, repo.Create(ctx, review))
	}

	t.Run("list newest first", func(t *testing.T) {
		got, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, "Carol", got[0].Name)
		assert.Equal(t, "Alice", got[2].Name)
	})

	t.Run("stats averages to one decimal", func(t *testing.T) {
		stats, err := repo.Stats(ctx)
		require.NoError(t, err)
		assert.Equal(t, "3.7", stats.Avg)
		assert.Equal(t, int64(3), stats.Count)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, reviews[0].ID))
		assert.ErrorIs(t, repo.Delete(ctx, reviews[0].ID), domain.ErrReviewNotFound)

		got, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})
}
