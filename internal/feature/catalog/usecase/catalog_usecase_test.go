package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitness_backend/internal/feature/catalog/domain/entity"
	syncentity "fitness_backend/internal/feature/sync/domain/entity"
)

// mockFoodRepository はFoodRepositoryインターフェースのモック実装です。
type mockFoodRepository struct {
	FindAllFunc       func(ctx context.Context) ([]entity.Food, error)
	FindByIDFunc      func(ctx context.Context, id uint) (*entity.Food, error)
	FindByBarcodeFunc func(ctx context.Context, barcode string) (*entity.Food, error)
	CreateFunc        func(ctx context.Context, food *entity.Food) error
	UpdateFunc        func(ctx context.Context, food *entity.Food) error
	DeleteFunc        func(ctx context.Context, id uint) error
}

func (m *mockFoodRepository) FindAll(ctx context.Context) ([]entity.Food, error) {
	return m.FindAllFunc(ctx)
}
func (m *mockFoodRepository) FindByID(ctx context.Context, id uint) (*entity.Food, error) {
	return m.FindByIDFunc(ctx, id)
}
func (m *mockFoodRepository) FindByBarcode(ctx context.Context, barcode string) (*entity.Food, error) {
	return m.FindByBarcodeFunc(ctx, barcode)
}
func (m *mockFoodRepository) Create(ctx context.Context, food *entity.Food) error {
	return m.CreateFunc(ctx, food)
}
func (m *mockFoodRepository) Update(ctx context.Context, food *entity.Food) error {
	return m.UpdateFunc(ctx, food)
}
func (m *mockFoodRepository) Delete(ctx context.Context, id uint) error {
	return m.DeleteFunc(ctx, id)
}

// mockExerciseRepository はExerciseRepositoryインターフェースのモック実装です。
type mockExerciseRepository struct {
	FindAllFunc  func(ctx context.Context) ([]entity.Exercise, error)
	FindByIDFunc func(ctx context.Context, id uint) (*entity.Exercise, error)
	CreateFunc   func(ctx context.Context, exercise *entity.Exercise) error
	UpdateFunc   func(ctx context.Context, exercise *entity.Exercise) error
	DeleteFunc   func(ctx context.Context, id uint) error
}

func (m *mockExerciseRepository) FindAll(ctx context.Context) ([]entity.Exercise, error) {
	return m.FindAllFunc(ctx)
}
func (m *mockExerciseRepository) FindByID(ctx context.Context, id uint) (*entity.Exercise, error) {
	return m.FindByIDFunc(ctx, id)
}
func (m *mockExerciseRepository) Create(ctx context.Context, exercise *entity.Exercise) error {
	return m.CreateFunc(ctx, exercise)
}
func (m *mockExerciseRepository) Update(ctx context.Context, exercise *entity.Exercise) error {
	return m.UpdateFunc(ctx, exercise)
}
func (m *mockExerciseRepository) Delete(ctx context.Context, id uint) error {
	return m.DeleteFunc(ctx, id)
}

// mockClockService はClockServiceインターフェースのモック実装です。
type mockClockService struct {
	TouchCatalogFunc func(ctx context.Context, catalog syncentity.Catalog) (int64, error)
	touched          []syncentity.Catalog
}

func (m *mockClockService) TouchCatalog(ctx context.Context, catalog syncentity.Catalog) (int64, error) {
	m.touched = append(m.touched, catalog)
	if m.TouchCatalogFunc != nil {
		return m.TouchCatalogFunc(ctx, catalog)
	}
	return 1700000000000, nil
}

func newCatalogUsecaseForTest(foods FoodRepository, exercises ExerciseRepository, clock ClockService) *catalogUsecase {
	return NewCatalogUsecase(foods, exercises, nil, nil, clock)
}

func TestCatalogUsecase_CreateFood(t *testing.T) {
	created := false
	foods := &mockFoodRepository{
		CreateFunc: func(ctx context.Context, food *entity.Food) error {
			created = true
			food.ID = 7
			return nil
		},
	}
	clock := &mockClockService{}
	uc := newCatalogUsecaseForTest(foods, nil, clock)

	food := &entity.Food{Barcode: " 123 ", Name: " Apple "}
	ts, err := uc.CreateFood(context.Background(), food)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, int64(1700000000000), ts)
	// 前後の空白は正規化される
	assert.Equal(t, "123", food.Barcode)
	assert.Equal(t, "Apple", food.Name)
	// 書き込みはfoodsクロックだけを進める
	assert.Equal(t, []syncentity.Catalog{syncentity.CatalogFoods}, clock.touched)
}

func TestCatalogUsecase_CreateFood_Validation(t *testing.T) {
	clock := &mockClockService{}
	uc := newCatalogUsecaseForTest(&mockFoodRepository{}, nil, clock)

	_, err := uc.CreateFood(context.Background(), &entity.Food{Name: "no barcode"})
	assert.ErrorIs(t, err, ErrMissingBarcode)

	_, err = uc.CreateFood(context.Background(), &entity.Food{Barcode: "123"})
	assert.ErrorIs(t, err, ErrMissingName)

	// 検証エラー時はクロックに触れない
	assert.Empty(t, clock.touched)
}

func TestCatalogUsecase_CreateFood_RepositoryFailureSkipsClock(t *testing.T) {
	foods := &mockFoodRepository{
		CreateFunc: func(ctx context.Context, food *entity.Food) error {
			return errors.New("db down")
		},
	}
	clock := &mockClockService{}
	uc := newCatalogUsecaseForTest(foods, nil, clock)

	_, err := uc.CreateFood(context.Background(), &entity.Food{Barcode: "123", Name: "Apple"})
	assert.Error(t, err)
	assert.Empty(t, clock.touched)
}

func TestCatalogUsecase_UpdateAndDeleteFood_TouchClock(t *testing.T) {
	foods := &mockFoodRepository{
		UpdateFunc: func(ctx context.Context, food *entity.Food) error { return nil },
		DeleteFunc: func(ctx context.Context, id uint) error { return nil },
	}
	clock := &mockClockService{}
	uc := newCatalogUsecaseForTest(foods, nil, clock)

	_, err := uc.UpdateFood(context.Background(), &entity.Food{ID: 1, Barcode: "123", Name: "Apple"})
	require.NoError(t, err)

	_, err = uc.DeleteFood(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, []syncentity.Catalog{syncentity.CatalogFoods, syncentity.CatalogFoods}, clock.touched)
}

func TestCatalogUsecase_ReadsDoNotTouchClock(t *testing.T) {
	foods := &mockFoodRepository{
		FindAllFunc: func(ctx context.Context) ([]entity.Food, error) {
			return []entity.Food{{ID: 1, Name: "Apple"}}, nil
		},
		FindByBarcodeFunc: func(ctx context.Context, barcode string) (*entity.Food, error) {
			return &entity.Food{ID: 1, Barcode: barcode}, nil
		},
	}
	clock := &mockClockService{}
	uc := newCatalogUsecaseForTest(foods, nil, clock)

	_, err := uc.ListFoods(context.Background())
	require.NoError(t, err)
	_, err = uc.GetFoodByBarcode(context.Background(), "123")
	require.NoError(t, err)

	assert.Empty(t, clock.touched)
}

func TestCatalogUsecase_CreateExercise(t *testing.T) {
	exercises := &mockExerciseRepository{
		CreateFunc: func(ctx context.Context, exercise *entity.Exercise) error {
			exercise.ID = 3
			return nil
		},
	}
	clock := &mockClockService{}
	uc := newCatalogUsecaseForTest(nil, exercises, clock)

	ts, err := uc.CreateExercise(context.Background(), &entity.Exercise{
		Names: entity.LocalizedText{"en": "Squat"},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1700000000000), ts)
	assert.Equal(t, []syncentity.Catalog{syncentity.CatalogExercises}, clock.touched)
}

func TestCatalogUsecase_CreateExercise_RequiresName(t *testing.T) {
	clock := &mockClockService{}
	uc := newCatalogUsecaseForTest(nil, &mockExerciseRepository{}, clock)

	_, err := uc.CreateExercise(context.Background(), &entity.Exercise{Names: entity.LocalizedText{}})
	assert.ErrorIs(t, err, ErrMissingName)

	_, err = uc.CreateExercise(context.Background(), &entity.Exercise{
		Names: entity.LocalizedText{"en": "   "},
	})
	assert.ErrorIs(t, err, ErrMissingName)

	assert.Empty(t, clock.touched)
}
