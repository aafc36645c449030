package adapters

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"fitness_backend/internal/feature/resources/domain/entity"
	"fitness_backend/internal/feature/resources/usecase"
	syncentity "fitness_backend/internal/feature/sync/domain/entity"
)

func setupDocumentTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(DocumentModels()...))
	t.Cleanup(func() {
		sqlDB, err := db.DB()
		require.NoError(t, err)
		sqlDB.Close()
	})
	return db
}

func TestDocumentMySQL_CreateAndFindByID(t *testing.T) {
	db := setupDocumentTestDB(t)
	repo := NewDocumentMySQL(db)
	ctx := context.Background()

	doc := &entity.Document{
		ID:       "diet-1",
		Category: syncentity.CategoryDiets,
		Body:     json.RawMessage(`{"name":"cut","kcal":1800}`),
	}
	require.NoError(t, repo.Create(ctx, doc))

	got, err := repo.FindByID(ctx, syncentity.CategoryDiets, "diet-1")
	require.NoError(t, err)
	assert.Equal(t, "diet-1", got.ID)
	assert.Equal(t, syncentity.CategoryDiets, got.Category)
	assert.JSONEq(t, `{"name":"cut","kcal":1800}`, string(got.Body))
}

func TestDocumentMySQL_FindByID_NotFound(t *testing.T) {
	db := setupDocumentTestDB(t)
	repo := NewDocumentMySQL(db)

	_, err := repo.FindByID(context.Background(), syncentity.CategoryDiets, "missing")
	assert.ErrorIs(t, err, usecase.ErrDocumentNotFound)
}

func TestDocumentMySQL_FindByID_CategoryScoped(t *testing.T) {
	db := setupDocumentTestDB(t)
	repo := NewDocumentMySQL(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entity.Document{
		ID:       "shared-id",
		Category: syncentity.CategoryMeals,
		Body:     json.RawMessage(`{"name":"lunch"}`),
	}))

	// 同じIDでも別カテゴリからは見えない
	_, err := repo.FindByID(ctx, syncentity.CategoryRecipes, "shared-id")
	assert.ErrorIs(t, err, usecase.ErrDocumentNotFound)
}

func TestDocumentMySQL_Update(t *testing.T) {
	db := setupDocumentTestDB(t)
	repo := NewDocumentMySQL(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entity.Document{
		ID:       "recipe-1",
		Category: syncentity.CategoryRecipes,
		Body:     json.RawMessage(`{"name":"old"}`),
	}))

	err := repo.Update(ctx, syncentity.CategoryRecipes, "recipe-1", json.RawMessage(`{"name":"new"}`))
	require.NoError(t, err)

	got, err := repo.FindByID(ctx, syncentity.CategoryRecipes, "recipe-1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"new"}`, string(got.Body))
}

func TestDocumentMySQL_Update_IdenticalBody(t *testing.T) {
	db := setupDocumentTestDB(t)
	repo := NewDocumentMySQL(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entity.Document{
		ID:       "recipe-1",
		Category: syncentity.CategoryRecipes,
		Body:     json.RawMessage(`{"name":"same"}`),
	}))

	// 同一内容のPUTでも既存行への更新として成功する
	// （MySQL接続はclientFoundRowsで変更行数ではなく一致行数を報告する）
	err := repo.Update(ctx, syncentity.CategoryRecipes, "recipe-1", json.RawMessage(`{"name":"same"}`))
	require.NoError(t, err)
}

func TestDocumentMySQL_Update_NotFound(t *testing.T) {
	db := setupDocumentTestDB(t)
	repo := NewDocumentMySQL(db)

	err := repo.Update(context.Background(), syncentity.CategoryPrograms, "missing", json.RawMessage(`{}`))
	assert.ErrorIs(t, err, usecase.ErrDocumentNotFound)
}

func TestDocumentMySQL_Delete(t *testing.T) {
	db := setupDocumentTestDB(t)
	repo := NewDocumentMySQL(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entity.Document{
		ID:       "training-1",
		Category: syncentity.CategoryTrainings,
		Body:     json.RawMessage(`{"name":"push day"}`),
	}))

	require.NoError(t, repo.Delete(ctx, syncentity.CategoryTrainings, "training-1"))

	_, err := repo.FindByID(ctx, syncentity.CategoryTrainings, "training-1")
	assert.ErrorIs(t, err, usecase.ErrDocumentNotFound)

	// 既に消えていても成功扱い
	assert.NoError(t, repo.Delete(ctx, syncentity.CategoryTrainings, "training-1"))
}

func TestDocumentMySQL_FindAllByCategory(t *testing.T) {
	db := setupDocumentTestDB(t)
	repo := NewDocumentMySQL(db)
	ctx := context.Background()

	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, repo.Create(ctx, &entity.Document{
			ID:       id,
			Category: syncentity.CategoryDiets,
			Body:     json.RawMessage(`{"name":"` + id + `"}`),
		}))
	}
	require.NoError(t, repo.Create(ctx, &entity.Document{
		ID:       "other",
		Category: syncentity.CategoryMeals,
		Body:     json.RawMessage(`{"name":"other"}`),
	}))

	docs, err := repo.FindAllByCategory(ctx, syncentity.CategoryDiets)
	require.NoError(t, err)
	require.Len(t, docs, 3)
	for _, doc := range docs {
		assert.Equal(t, syncentity.CategoryDiets, doc.Category)
	}
}
