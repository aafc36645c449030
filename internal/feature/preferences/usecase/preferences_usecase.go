// Package usecase はpreferencesフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"

	"fitness_backend/internal/feature/preferences/domain/entity"
	syncentity "fitness_backend/internal/feature/sync/domain/entity"
)

// ErrInvalidTheme は受理できないテーマ値を表します。
var ErrInvalidTheme = errors.New("invalid theme")

// PreferencesRepository はユーザー設定の永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type PreferencesRepository interface {
	// GetTheme はユーザーのテーマ設定を返します。
	GetTheme(ctx context.Context, userID uint) (string, error)
	// SetTheme はユーザーのテーマ設定を書き換えます。
	SetTheme(ctx context.Context, userID uint, theme string) error
}

// SyncService は設定カテゴリのクロックへの窓口を抽象化します。
// 実装はsyncフィーチャーのusecaseです。
type SyncService interface {
	TouchCategory(ctx context.Context, userID uint, category syncentity.Category) (int64, error)
}

// preferencesUsecase はユーザー設定の読み書きを実装します。
type preferencesUsecase struct {
	prefs PreferencesRepository
	sync  SyncService
}

// NewPreferencesUsecase はpreferencesUsecaseの新しいインスタンスを生成します。
func NewPreferencesUsecase(prefs PreferencesRepository, sync SyncService) *preferencesUsecase {
	return &preferencesUsecase{prefs: prefs, sync: sync}
}

// Get はユーザーの設定を返します。
func (u *preferencesUsecase) Get(ctx context.Context, userID uint) (*entity.Preferences, error) {
	theme, err := u.prefs.GetTheme(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &entity.Preferences{Theme: theme}, nil
}

// Update はテーマ設定を書き換え、preferencesクロックを更新して
// 新しいタイムスタンプを返します。
func (u *preferencesUsecase) Update(ctx context.Context, userID uint, theme string) (int64, error) {
	if !entity.ValidTheme(theme) {
		return 0, ErrInvalidTheme
	}
	if err := u.prefs.SetTheme(ctx, userID, theme); err != nil {
		return 0, err
	}
	return u.sync.TouchCategory(ctx, userID, syncentity.CategoryPreferences)
}
