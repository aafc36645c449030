// Package usecase はcatalogフィーチャーのビジネスロジックを実装します。
// カタログは全ユーザー共有の参照データで、書き込みは管理者のみです。
// 全ての書き込みは対応する共有クロックを更新し、新しいタイムスタンプを返します。
package usecase

import (
	"context"
	"strings"

	"fitness_backend/internal/feature/catalog/domain/entity"
	syncentity "fitness_backend/internal/feature/sync/domain/entity"
)

// FoodRepository は食品カタログの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type FoodRepository interface {
	FindAll(ctx context.Context) ([]entity.Food, error)
	FindByID(ctx context.Context, id uint) (*entity.Food, error)
	FindByBarcode(ctx context.Context, barcode string) (*entity.Food, error)
	Create(ctx context.Context, food *entity.Food) error
	Update(ctx context.Context, food *entity.Food) error
	Delete(ctx context.Context, id uint) error
}

// ExerciseRepository は運動カタログの永続化層を抽象化します。
type ExerciseRepository interface {
	FindAll(ctx context.Context) ([]entity.Exercise, error)
	FindByID(ctx context.Context, id uint) (*entity.Exercise, error)
	Create(ctx context.Context, exercise *entity.Exercise) error
	Update(ctx context.Context, exercise *entity.Exercise) error
	Delete(ctx context.Context, id uint) error
}

// MuscleRepository は筋肉カタログの永続化層を抽象化します。
type MuscleRepository interface {
	FindAll(ctx context.Context) ([]entity.Muscle, error)
	FindByID(ctx context.Context, id uint) (*entity.Muscle, error)
	Create(ctx context.Context, muscle *entity.Muscle) error
	Update(ctx context.Context, muscle *entity.Muscle) error
	Delete(ctx context.Context, id uint) error
}

// MuscleGroupRepository は筋肉グループカタログの永続化層を抽象化します。
type MuscleGroupRepository interface {
	FindAll(ctx context.Context) ([]entity.MuscleGroup, error)
	FindByID(ctx context.Context, id uint) (*entity.MuscleGroup, error)
	Create(ctx context.Context, group *entity.MuscleGroup) error
	Update(ctx context.Context, group *entity.MuscleGroup) error
	Delete(ctx context.Context, id uint) error
}

// ClockService は共有カタログクロックへの窓口を抽象化します。
// 実装はsyncフィーチャーのusecaseです。
type ClockService interface {
	// TouchCatalog はカタログのクロックを更新し、新しいタイムスタンプを返します。
	TouchCatalog(ctx context.Context, catalog syncentity.Catalog) (int64, error)
}

// catalogUsecase は4つの共有カタログに対するCRUDを実装します。
type catalogUsecase struct {
	foods        FoodRepository
	exercises    ExerciseRepository
	muscles      MuscleRepository
	muscleGroups MuscleGroupRepository
	clock        ClockService
}

// NewCatalogUsecase はcatalogUsecaseの新しいインスタンスを生成します。
func NewCatalogUsecase(
	foods FoodRepository,
	exercises ExerciseRepository,
	muscles MuscleRepository,
	muscleGroups MuscleGroupRepository,
	clock ClockService,
) *catalogUsecase {
	return &catalogUsecase{
		foods:        foods,
		exercises:    exercises,
		muscles:      muscles,
		muscleGroups: muscleGroups,
		clock:        clock,
	}
}

// validateFood は食品の必須フィールドを検証し、バーコードを正規化します。
func validateFood(food *entity.Food) error {
	food.Barcode = strings.TrimSpace(food.Barcode)
	food.Name = strings.TrimSpace(food.Name)
	if food.Barcode == "" {
		return ErrMissingBarcode
	}
	if food.Name == "" {
		return ErrMissingName
	}
	return nil
}

// validateNames は訳語マップに少なくとも1訳語があることを検証します。
func validateNames(names entity.LocalizedText) error {
	for _, v := range names {
		if strings.TrimSpace(v) != "" {
			return nil
		}
	}
	return ErrMissingName
}
