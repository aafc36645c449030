package usecase

import (
	"context"

	"fitness_backend/internal/feature/auth/domain/entity"
)

// SessionRepository はリフレッシュセッションの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（platform/session, adapters）ではなく
// コンシューマー（usecase）が定義します。
type SessionRepository interface {
	// Create は新しいセッションを永続化します。
	Create(ctx context.Context, session *entity.Session) error

	// FindByID はIDでセッションを取得します。
	// セッションが存在しない場合、ErrSessionNotFoundを返します。
	FindByID(ctx context.Context, id string) (*entity.Session, error)

	// Revoke はセッションを失効させます。
	Revoke(ctx context.Context, id string) error
}
