package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"fitness_backend/internal/feature/catalog/domain/entity"
	"fitness_backend/internal/feature/catalog/usecase"
)

// exerciseMySQL はExerciseRepositoryのGORM実装です。
type exerciseMySQL struct {
	db *gorm.DB
}

// NewExerciseMySQL はexerciseMySQLの新しいインスタンスを生成します。
func NewExerciseMySQL(db *gorm.DB) *exerciseMySQL {
	return &exerciseMySQL{db: db}
}

var _ usecase.ExerciseRepository = (*exerciseMySQL)(nil)

// FindAll は登録済みの全運動を返します。
func (r *exerciseMySQL) FindAll(ctx context.Context) ([]entity.Exercise, error) {
	var exercises []entity.Exercise
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&exercises).Error; err != nil {
		return nil, err
	}
	return exercises, nil
}

// FindByID はIDで運動を取得します。
func (r *exerciseMySQL) FindByID(ctx context.Context, id uint) (*entity.Exercise, error) {
	var exercise entity.Exercise
	if err := r.db.WithContext(ctx).First(&exercise, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrNotFound
		}
		return nil, err
	}
	return &exercise, nil
}

// Create は運動を保存します。
func (r *exerciseMySQL) Create(ctx context.Context, exercise *entity.Exercise) error {
	return r.db.WithContext(ctx).Create(exercise).Error
}

// Update は運動の全フィールドを置き換えます。
func (r *exerciseMySQL) Update(ctx context.Context, exercise *entity.Exercise) error {
	result := r.db.WithContext(ctx).Model(&entity.Exercise{}).
		Where("id = ?", exercise.ID).
		Select("*").Omit("id", "created_at").
		Updates(exercise)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return usecase.ErrNotFound
	}
	return nil
}

// Delete は運動を削除します。対象が存在しなくても成功扱いです。
func (r *exerciseMySQL) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&entity.Exercise{}, id).Error
}
