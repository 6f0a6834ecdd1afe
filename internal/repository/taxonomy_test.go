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

func TestTaxonomyRepository(t *testing.T) {
	ctx := context.Background()
	pc := testutil.NewPostgresContainer(ctx, t)
	defer pc.Terminate(ctx)

	pool := testutil.NewTestPool(ctx, t, pc, "../../migrations")
	defer pool.Close()

	repo := NewTaxonomyRepository(pool)
	now := time.Now().UTC().Truncate(time.Microsecond)

	t.Run("tags sorted by name", func(t *testing.T) {
		for _, name := range []string{"postgres", "go", "chi"} {
			tag := &domain.Tag{ID: uuid.NewString(), Name: name, CreatedAt: now}
			require.NoError(t, repo.CreateTag(ctx, tag))
		}

		tags, err := repo.ListTags(ctx)
		require.NoError(t, err)
		require.Len(t, tags, 3)
		assert.Equal(t, "chi", tags[0].Name)
		assert.Equal(t, "go", tags[1].Name)
		assert.Equal(t, "postgres", tags[2].Name)
	})

	t.Run("duplicate tag name", func(t *testing.T) {
		dup := &domain.Tag{ID: uuid.NewString(), Name: "go", CreatedAt: now}
		assert.ErrorIs(t, repo.CreateTag(ctx, dup), domain.ErrTagAlreadyExists)
	})

	t.Run("categories sorted by name", func(t *testing.T) {
		for _, name := range []string{"tutorial", "devlog"} {
			c := &domain.Category{ID: uuid.NewString(), Name: name, CreatedAt: now}
			require.NoError(t, repo.CreateCategory(ctx, c))
		}

		categories, err := repo.ListCategories(ctx)
		require.NoError(t, err)
		require.Len(t, categories, 2)
		assert.Equal(t, "devlog", categories[0].Name)
	})

	t.Run("duplicate category name", func(t *testing.T) {
		dup := &domain.Category{ID: uuid.NewString(), Name: "devlog", CreatedAt: now}
		assert.ErrorIs(t, repo.CreateCategory(ctx, dup), domain.ErrCategoryAlreadyExists)
	})

	t.Run("same name allowed across kinds", func(t *testing.T) {
		tag := &domain.Tag{ID: uuid.NewString(), Name: "devlog", CreatedAt: now}
		assert.NoError(t, repo.CreateTag(ctx, tag))
	})
}
