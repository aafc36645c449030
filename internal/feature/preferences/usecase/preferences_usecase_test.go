package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	syncentity "fitness_backend/internal/feature/sync/domain/entity"
)

// mockPreferencesRepository はPreferencesRepositoryインターフェースのモック実装です。
type mockPreferencesRepository struct {
	GetThemeFunc func(ctx context.Context, userID uint) (string, error)
	SetThemeFunc func(ctx context.Context, userID uint, theme string) error
}

func (m *mockPreferencesRepository) GetTheme(ctx context.Context, userID uint) (string, error) {
	return m.GetThemeFunc(ctx, userID)
}

func (m *mockPreferencesRepository) SetTheme(ctx context.Context, userID uint, theme string) error {
	return m.SetThemeFunc(ctx, userID, theme)
}

// mockSyncService はSyncServiceインターフェースのモック実装です。
type mockSyncService struct {
	TouchCategoryFunc func(ctx context.Context, userID uint, category syncentity.Category) (int64, error)
	touched           []syncentity.Category
}

func (m *mockSyncService) TouchCategory(ctx context.Context, userID uint, category syncentity.Category) (int64, error) {
	m.touched = append(m.touched, category)
	if m.TouchCategoryFunc != nil {
		return m.TouchCategoryFunc(ctx, userID, category)
	}
	return 1700000000000, nil
}

func TestPreferencesUsecase_Get(t *testing.T) {
	prefs := &mockPreferencesRepository{
		GetThemeFunc: func(ctx context.Context, userID uint) (string, error) {
			assert.Equal(t, uint(1), userID)
			return "dark", nil
		},
	}
	uc := NewPreferencesUsecase(prefs, &mockSyncService{})

	got, err := uc.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "dark", got.Theme)
}

func TestPreferencesUsecase_Update(t *testing.T) {
	var saved string
	prefs := &mockPreferencesRepository{
		SetThemeFunc: func(ctx context.Context, userID uint, theme string) error {
			saved = theme
			return nil
		},
	}
	sync := &mockSyncService{}
	uc := NewPreferencesUsecase(prefs, sync)

	ts, err := uc.Update(context.Background(), 1, "light")
	require.NoError(t, err)
	assert.Equal(t, "light", saved)
	assert.Equal(t, int64(1700000000000), ts)
	// 変更はpreferencesクロックだけを進める
	assert.Equal(t, []syncentity.Category{syncentity.CategoryPreferences}, sync.touched)
}

func TestPreferencesUsecase_Update_InvalidTheme(t *testing.T) {
	sync := &mockSyncService{}
	uc := NewPreferencesUsecase(&mockPreferencesRepository{}, sync)

	_, err := uc.Update(context.Background(), 1, "neon")
	assert.ErrorIs(t, err, ErrInvalidTheme)
	assert.Empty(t, sync.touched)
}

func TestPreferencesUsecase_Update_StorageFailureSkipsClock(t *testing.T) {
	prefs := &mockPreferencesRepository{
		SetThemeFunc: func(ctx context.Context, userID uint, theme string) error {
			return errors.New("db down")
		},
	}
	sync := &mockSyncService{}
	uc := NewPreferencesUsecase(prefs, sync)

	_, err := uc.Update(context.Background(), 1, "dark")
	assert.Error(t, err)
	assert.Empty(t, sync.touched)
}
