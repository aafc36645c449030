// Package adapters はpreferencesフィーチャーの永続化実装を提供します。
// 設定はusersテーブルの列として保持されるため、専用テーブルはありません。
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	authentity "fitness_backend/internal/feature/auth/domain/entity"
	authusecase "fitness_backend/internal/feature/auth/usecase"
	"fitness_backend/internal/feature/preferences/usecase"
)

// preferencesMySQL はPreferencesRepositoryのGORM実装です。
type preferencesMySQL struct {
	db *gorm.DB
}

// NewPreferencesMySQL はpreferencesMySQLの新しいインスタンスを生成します。
func NewPreferencesMySQL(db *gorm.DB) *preferencesMySQL {
	return &preferencesMySQL{db: db}
}

// コンパイル時にインターフェースを満たしているか検証する
var _ usecase.PreferencesRepository = (*preferencesMySQL)(nil)

// GetTheme はユーザーのテーマ設定を返します。
func (r *preferencesMySQL) GetTheme(ctx context.Context, userID uint) (string, error) {
	var user authentity.User
	err := r.db.WithContext(ctx).Select("theme").First(&user, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", authusecase.ErrUserNotFound
		}
		return "", err
	}
	return user.Theme, nil
}

// SetTheme はユーザーのテーマ設定を書き換えます。
func (r *preferencesMySQL) SetTheme(ctx context.Context, userID uint, theme string) error {
	result := r.db.WithContext(ctx).Model(&authentity.User{}).
		Where("id = ?", userID).
		Update("theme", theme)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return authusecase.ErrUserNotFound
	}
	return nil
}
