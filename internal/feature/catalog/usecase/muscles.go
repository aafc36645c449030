package usecase

import (
	"context"

	"fitness_backend/internal/feature/catalog/domain/entity"
	syncentity "fitness_backend/internal/feature/sync/domain/entity"
)

// ListMuscles は筋肉カタログ全体を返します。
func (u *catalogUsecase) ListMuscles(ctx context.Context) ([]entity.Muscle, error) {
	return u.muscles.FindAll(ctx)
}

// GetMuscle はIDで筋肉を取得します。
func (u *catalogUsecase) GetMuscle(ctx context.Context, id uint) (*entity.Muscle, error) {
	return u.muscles.FindByID(ctx, id)
}

// CreateMuscle は筋肉を登録し、musclesクロックを更新します。
func (u *catalogUsecase) CreateMuscle(ctx context.Context, muscle *entity.Muscle) (int64, error) {
	if err := validateNames(muscle.Names); err != nil {
		return 0, err
	}
	if err := u.muscles.Create(ctx, muscle); err != nil {
		return 0, err
	}
	return u.clock.TouchCatalog(ctx, syncentity.CatalogMuscles)
}

// UpdateMuscle は筋肉を更新し、musclesクロックを更新します。
func (u *catalogUsecase) UpdateMuscle(ctx context.Context, muscle *entity.Muscle) (int64, error) {
	if err := validateNames(muscle.Names); err != nil {
		return 0, err
	}
	if err := u.muscles.Update(ctx, muscle); err != nil {
		return 0, err
	}
	return u.clock.TouchCatalog(ctx, syncentity.CatalogMuscles)
}

// DeleteMuscle は筋肉を削除し、musclesクロックを更新します。
func (u *catalogUsecase) DeleteMuscle(ctx context.Context, id uint) (int64, error) {
	if err := u.muscles.Delete(ctx, id); err != nil {
		return 0, err
	}
	return u.clock.TouchCatalog(ctx, syncentity.CatalogMuscles)
}

// ListMuscleGroups は筋肉グループカタログ全体を返します。
func (u *catalogUsecase) ListMuscleGroups(ctx context.Context) ([]entity.MuscleGroup, error) {
	return u.muscleGroups.FindAll(ctx)
}

// GetMuscleGroup はIDで筋肉グループを取得します。
func (u *catalogUsecase) GetMuscleGroup(ctx context.Context, id uint) (*entity.MuscleGroup, error) {
	return u.muscleGroups.FindByID(ctx, id)
}

// CreateMuscleGroup は筋肉グループを登録し、muscleGroupsクロックを更新します。
func (u *catalogUsecase) CreateMuscleGroup(ctx context.Context, group *entity.MuscleGroup) (int64, error) {
	if err := u.muscleGroups.Create(ctx, group); err != nil {
		return 0, err
	}
	return u.clock.TouchCatalog(ctx, syncentity.CatalogMuscleGroups)
}

// UpdateMuscleGroup は筋肉グループを更新し、muscleGroupsクロックを更新します。
func (u *catalogUsecase) UpdateMuscleGroup(ctx context.Context, group *entity.MuscleGroup) (int64, error) {
	if err := u.muscleGroups.Update(ctx, group); err != nil {
		return 0, err
	}
	return u.clock.TouchCatalog(ctx, syncentity.CatalogMuscleGroups)
}

// DeleteMuscleGroup は筋肉グループを削除し、muscleGroupsクロックを更新します。
func (u *catalogUsecase) DeleteMuscleGroup(ctx context.Context, id uint) (int64, error) {
	if err := u.muscleGroups.Delete(ctx, id); err != nil {
		return 0, err
	}
	return u.clock.TouchCatalog(ctx, syncentity.CatalogMuscleGroups)
}
