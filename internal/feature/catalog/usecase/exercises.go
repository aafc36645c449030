package usecase

import (
	"context"

	"fitness_backend/internal/feature/catalog/domain/entity"
	syncentity "fitness_backend/internal/feature/sync/domain/entity"
)

// ListExercises は運動カタログ全体を返します。
func (u *catalogUsecase) ListExercises(ctx context.Context) ([]entity.Exercise, error) {
	return u.exercises.FindAll(ctx)
}

// GetExercise はIDで運動を取得します。
func (u *catalogUsecase) GetExercise(ctx context.Context, id uint) (*entity.Exercise, error) {
	return u.exercises.FindByID(ctx, id)
}

// CreateExercise は運動を登録し、exercisesクロックを更新します。
func (u *catalogUsecase) CreateExercise(ctx context.Context, exercise *entity.Exercise) (int64, error) {
	if err := validateNames(exercise.Names); err != nil {
		return 0, err
	}
	if err := u.exercises.Create(ctx, exercise); err != nil {
		return 0, err
	}
	return u.clock.TouchCatalog(ctx, syncentity.CatalogExercises)
}

// UpdateExercise は運動を更新し、exercisesクロックを更新します。
func (u *catalogUsecase) UpdateExercise(ctx context.Context, exercise *entity.Exercise) (int64, error) {
	if err := validateNames(exercise.Names); err != nil {
		return 0, err
	}
	if err := u.exercises.Update(ctx, exercise); err != nil {
		return 0, err
	}
	return u.clock.TouchCatalog(ctx, syncentity.CatalogExercises)
}

// DeleteExercise は運動を削除し、exercisesクロックを更新します。
func (u *catalogUsecase) DeleteExercise(ctx context.Context, id uint) (int64, error) {
	if err := u.exercises.Delete(ctx, id); err != nil {
		return 0, err
	}
	return u.clock.TouchCatalog(ctx, syncentity.CatalogExercises)
}
