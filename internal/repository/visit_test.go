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

func TestVisitRepository_CountBetween(t *testing.T) {
	ctx := context.Background()
	pc := testutil.NewPostgresContainer(ctx, t)
	defer pc.Terminate(ctx)

	pool := testutil.NewTestPool(ctx, t, pc, "../../migrations")
	defer pool.Close()

	repo := NewVisitRepository(pool)

	start := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	record := func(at time.Time) {
		v := &domain.Visit{ID: uuid.NewString(), IP: "203.0.113.7", UserAgent: "test-agent", VisitedAt: at}
		require.NoError(t, repo.Create(ctx, v))
	}

	record(start)                       // inclusive lower bound
	record(start.Add(15 * 24 * time.Hour))
	record(end.Add(-time.Second))
	record(end)                         // exclusive upper bound
	record(start.Add(-time.Second))     // previous month

	count, err := repo.CountBetween(ctx, start, end)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	count, err = repo.CountBetween(ctx, end, end.AddDate(0, 1, 0))
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
