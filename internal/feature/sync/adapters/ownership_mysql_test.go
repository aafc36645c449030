package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"fitness_backend/internal/feature/sync/domain/entity"
	"fitness_backend/internal/feature/sync/usecase"
)

// setupTestDB prepares an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to initialize test database")

	models := append(OwnershipModels(), CatalogClockModels()...)
	err = db.AutoMigrate(models...)
	require.NoError(t, err, "failed to migrate tables")

	return db
}

func TestNewOwnershipMySQL(t *testing.T) {
	db := setupTestDB(t)

	repo := NewOwnershipMySQL(db)

	assert.NotNil(t, repo, "repository is nil")
	assert.NotNil(t, repo.db, "database connection is nil")
	assert.NotNil(t, repo.now, "clock source is nil")
}

func TestOwnershipMySQL_AddAndTouch(t *testing.T) {
	t.Run("first add records the reference and advances the clock", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewOwnershipMySQL(db)
		ctx := context.Background()

		ts, err := repo.AddAndTouch(ctx, 1, entity.CategoryDiets, "D1")

		require.NoError(t, err)
		assert.Greater(t, ts, entity.EpochSentinel, "timestamp should be after the epoch sentinel")

		owned, err := repo.Owns(ctx, 1, entity.CategoryDiets, "D1")
		require.NoError(t, err)
		assert.True(t, owned)

		ids, err := repo.ListIDs(ctx, 1, entity.CategoryDiets)
		require.NoError(t, err)
		assert.Equal(t, []string{"D1"}, ids)
	})

	t.Run("duplicate add fails and leaves the clock unchanged", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewOwnershipMySQL(db)
		ctx := context.Background()

		first, err := repo.AddAndTouch(ctx, 1, entity.CategoryDiets, "D1")
		require.NoError(t, err)

		_, err = repo.AddAndTouch(ctx, 1, entity.CategoryDiets, "D1")
		assert.ErrorIs(t, err, usecase.ErrAlreadyOwned)

		clocks, err := repo.Clocks(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, first, clocks.Diets, "failed add must not advance the clock")

		ids, err := repo.ListIDs(ctx, 1, entity.CategoryDiets)
		require.NoError(t, err)
		assert.Equal(t, []string{"D1"}, ids, "collection must hold the id at most once")
	})

	t.Run("same id can be owned by two users independently", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewOwnershipMySQL(db)
		ctx := context.Background()

		_, err := repo.AddAndTouch(ctx, 1, entity.CategoryRecipes, "R1")
		require.NoError(t, err)
		_, err = repo.AddAndTouch(ctx, 2, entity.CategoryRecipes, "R1")
		require.NoError(t, err)

		ownedA, err := repo.Owns(ctx, 1, entity.CategoryRecipes, "R1")
		require.NoError(t, err)
		ownedB, err := repo.Owns(ctx, 2, entity.CategoryRecipes, "R1")
		require.NoError(t, err)
		assert.True(t, ownedA)
		assert.True(t, ownedB)
	})

	t.Run("insertion order is preserved", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewOwnershipMySQL(db)
		ctx := context.Background()

		for _, id := range []string{"M3", "M1", "M2"} {
			_, err := repo.AddAndTouch(ctx, 1, entity.CategoryMeals, id)
			require.NoError(t, err)
		}

		ids, err := repo.ListIDs(ctx, 1, entity.CategoryMeals)
		require.NoError(t, err)
		assert.Equal(t, []string{"M3", "M1", "M2"}, ids)
	})

	t.Run("reference and clock are committed together or not at all", func(t *testing.T) {
		// クロックテーブルを作らないことで、トランザクション後半を強制的に失敗させる
		db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
		require.NoError(t, err)
		require.NoError(t, db.AutoMigrate(OwnershipModels()[0]))

		repo := NewOwnershipMySQL(db)
		ctx := context.Background()

		_, err = repo.AddAndTouch(ctx, 1, entity.CategoryDiets, "D1")
		assert.Error(t, err, "clock persistence failure must fail the whole operation")

		owned, err := repo.Owns(ctx, 1, entity.CategoryDiets, "D1")
		require.NoError(t, err)
		assert.False(t, owned, "reference must not survive a rolled-back transaction")
	})
}

func TestOwnershipMySQL_RemoveAndTouch(t *testing.T) {
	t.Run("remove deletes the reference and advances the clock", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewOwnershipMySQL(db)
		ctx := context.Background()

		addTS, err := repo.AddAndTouch(ctx, 1, entity.CategoryDiets, "D1")
		require.NoError(t, err)

		removeTS, err := repo.RemoveAndTouch(ctx, 1, entity.CategoryDiets, "D1")
		require.NoError(t, err)
		assert.Greater(t, removeTS, addTS, "each mutation must observably advance the clock")

		ids, err := repo.ListIDs(ctx, 1, entity.CategoryDiets)
		require.NoError(t, err)
		assert.Empty(t, ids)
	})

	t.Run("removing an unowned id fails and leaves the clock unchanged", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewOwnershipMySQL(db)
		ctx := context.Background()

		_, err := repo.AddAndTouch(ctx, 1, entity.CategoryDiets, "D1")
		require.NoError(t, err)
		removeTS, err := repo.RemoveAndTouch(ctx, 1, entity.CategoryDiets, "D1")
		require.NoError(t, err)

		_, err = repo.RemoveAndTouch(ctx, 1, entity.CategoryDiets, "D1")
		assert.ErrorIs(t, err, usecase.ErrNotOwned)

		clocks, err := repo.Clocks(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, removeTS, clocks.Diets, "failed remove must not advance the clock")
	})

	t.Run("other users' references are untouched", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewOwnershipMySQL(db)
		ctx := context.Background()

		_, err := repo.AddAndTouch(ctx, 1, entity.CategoryRecipes, "R1")
		require.NoError(t, err)
		_, err = repo.AddAndTouch(ctx, 2, entity.CategoryRecipes, "R1")
		require.NoError(t, err)

		_, err = repo.RemoveAndTouch(ctx, 1, entity.CategoryRecipes, "R1")
		require.NoError(t, err)

		owned, err := repo.Owns(ctx, 2, entity.CategoryRecipes, "R1")
		require.NoError(t, err)
		assert.True(t, owned)
	})
}

func TestOwnershipMySQL_Touch(t *testing.T) {
	t.Run("successive touches within the same millisecond stay strictly ordered", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewOwnershipMySQL(db)
		// 壁時計を固定して同一ミリ秒内の連続更新を再現する
		fixed := time.UnixMilli(1700000000000)
		repo.now = func() time.Time { return fixed }
		ctx := context.Background()

		first, err := repo.Touch(ctx, 1, entity.CategoryPreferences)
		require.NoError(t, err)
		second, err := repo.Touch(ctx, 1, entity.CategoryPreferences)
		require.NoError(t, err)
		third, err := repo.Touch(ctx, 1, entity.CategoryPreferences)
		require.NoError(t, err)

		assert.Equal(t, fixed.UnixMilli(), first)
		assert.Equal(t, first+1, second)
		assert.Equal(t, second+1, third)
	})

	t.Run("clock never moves backwards when wall clock regresses", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewOwnershipMySQL(db)
		ctx := context.Background()

		repo.now = func() time.Time { return time.UnixMilli(2000) }
		first, err := repo.Touch(ctx, 1, entity.CategoryDiets)
		require.NoError(t, err)

		repo.now = func() time.Time { return time.UnixMilli(1000) }
		second, err := repo.Touch(ctx, 1, entity.CategoryDiets)
		require.NoError(t, err)

		assert.Greater(t, second, first)
	})

	t.Run("touching one category leaves the others at the epoch sentinel", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewOwnershipMySQL(db)
		ctx := context.Background()

		_, err := repo.Touch(ctx, 1, entity.CategoryMeals)
		require.NoError(t, err)

		clocks, err := repo.Clocks(ctx, 1)
		require.NoError(t, err)
		assert.Greater(t, clocks.Meals, entity.EpochSentinel)
		assert.Equal(t, entity.EpochSentinel, clocks.Diets)
		assert.Equal(t, entity.EpochSentinel, clocks.Recipes)
		assert.Equal(t, entity.EpochSentinel, clocks.Programs)
		assert.Equal(t, entity.EpochSentinel, clocks.Trainings)
		assert.Equal(t, entity.EpochSentinel, clocks.Preferences)
	})
}

func TestOwnershipMySQL_Clocks(t *testing.T) {
	t.Run("fresh user reports every category at the epoch sentinel", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewOwnershipMySQL(db)

		clocks, err := repo.Clocks(context.Background(), 42)

		require.NoError(t, err)
		assert.Equal(t, entity.PrivateLastUpdates{}, clocks)
	})

	t.Run("clocks are scoped per user", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewOwnershipMySQL(db)
		ctx := context.Background()

		_, err := repo.AddAndTouch(ctx, 1, entity.CategoryDiets, "D1")
		require.NoError(t, err)

		other, err := repo.Clocks(ctx, 2)
		require.NoError(t, err)
		assert.Equal(t, entity.EpochSentinel, other.Diets)
	})
}
