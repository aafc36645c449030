package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"fitness_backend/internal/feature/catalog/domain/entity"
	"fitness_backend/internal/feature/catalog/usecase"
)

// muscleMySQL はMuscleRepositoryのGORM実装です。
type muscleMySQL struct {
	db *gorm.DB
}

// NewMuscleMySQL はmuscleMySQLの新しいインスタンスを生成します。
func NewMuscleMySQL(db *gorm.DB) *muscleMySQL {
	return &muscleMySQL{db: db}
}

var _ usecase.MuscleRepository = (*muscleMySQL)(nil)

// FindAll は登録済みの全筋肉を返します。
func (r *muscleMySQL) FindAll(ctx context.Context) ([]entity.Muscle, error) {
	var muscles []entity.Muscle
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&muscles).Error; err != nil {
		return nil, err
	}
	return muscles, nil
}

// FindByID はIDで筋肉を取得します。
func (r *muscleMySQL) FindByID(ctx context.Context, id uint) (*entity.Muscle, error) {
	var muscle entity.Muscle
	if err := r.db.WithContext(ctx).First(&muscle, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrNotFound
		}
		return nil, err
	}
	return &muscle, nil
}

// Create は筋肉を保存します。
func (r *muscleMySQL) Create(ctx context.Context, muscle *entity.Muscle) error {
	return r.db.WithContext(ctx).Create(muscle).Error
}

// Update は筋肉の全フィールドを置き換えます。
func (r *muscleMySQL) Update(ctx context.Context, muscle *entity.Muscle) error {
	result := r.db.WithContext(ctx).Model(&entity.Muscle{}).
		Where("id = ?", muscle.ID).
		Select("*").Omit("id", "created_at").
		Updates(muscle)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return usecase.ErrNotFound
	}
	return nil
}

// Delete は筋肉を削除します。対象が存在しなくても成功扱いです。
func (r *muscleMySQL) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&entity.Muscle{}, id).Error
}

// muscleGroupMySQL はMuscleGroupRepositoryのGORM実装です。
type muscleGroupMySQL struct {
	db *gorm.DB
}

// NewMuscleGroupMySQL はmuscleGroupMySQLの新しいインスタンスを生成します。
func NewMuscleGroupMySQL(db *gorm.DB) *muscleGroupMySQL {
	return &muscleGroupMySQL{db: db}
}

var _ usecase.MuscleGroupRepository = (*muscleGroupMySQL)(nil)

// FindAll は登録済みの全筋肉グループを返します。
func (r *muscleGroupMySQL) FindAll(ctx context.Context) ([]entity.MuscleGroup, error) {
	var groups []entity.MuscleGroup
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&groups).Error; err != nil {
		return nil, err
	}
	return groups, nil
}

// FindByID はIDで筋肉グループを取得します。
func (r *muscleGroupMySQL) FindByID(ctx context.Context, id uint) (*entity.MuscleGroup, error) {
	var group entity.MuscleGroup
	if err := r.db.WithContext(ctx).First(&group, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrNotFound
		}
		return nil, err
	}
	return &group, nil
}

// Create は筋肉グループを保存します。
func (r *muscleGroupMySQL) Create(ctx context.Context, group *entity.MuscleGroup) error {
	return r.db.WithContext(ctx).Create(group).Error
}

// Update は筋肉グループの全フィールドを置き換えます。
func (r *muscleGroupMySQL) Update(ctx context.Context, group *entity.MuscleGroup) error {
	result := r.db.WithContext(ctx).Model(&entity.MuscleGroup{}).
		Where("id = ?", group.ID).
		Select("*").Omit("id", "created_at").
		Updates(group)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return usecase.ErrNotFound
	}
	return nil
}

// Delete は筋肉グループを削除します。対象が存在しなくても成功扱いです。
func (r *muscleGroupMySQL) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&entity.MuscleGroup{}, id).Error
}
