// Package usecase はauthフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"fitness_backend/internal/feature/auth/domain/entity"
)

const (
	// minPasswordLength はパスワードの最低文字数を定義します。
	minPasswordLength = 8
	// sessionTTL はリフレッシュセッションの有効期間です。
	sessionTTL = 30 * 24 * time.Hour
	// validationTTL はメール確認リンクの有効期間です。
	validationTTL = 10 * time.Minute
)

// UserRepository はユーザーエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type UserRepository interface {
	// Create は新しいユーザーをストレージに永続化します。
	// 同じメールアドレスまたはユーザー名のユーザーが既に存在する場合、エラーを返します。
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail は指定されたメールアドレスに一致するユーザーを取得します。
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByUsername は指定されたユーザー名に一致するユーザーを取得します。
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// FindByID は指定されたIDに一致するユーザーを取得します。
	FindByID(ctx context.Context, id uint) (*entity.User, error)

	// FindByValidationSecret は発行済みのメール確認シークレットに一致するユーザーを取得します。
	FindByValidationSecret(ctx context.Context, secret string) (*entity.User, error)

	// SetValidation はメール確認シークレットと有効期限をユーザーに保存します。
	SetValidation(ctx context.Context, userID uint, secret string, expiresAt time.Time) error

	// ClearValidation はアカウントを確認済みにし、保留中のシークレットを消去します。
	ClearValidation(ctx context.Context, userID uint) error

	// FindAll は登録済みの全ユーザーを取得します。管理者向けの一覧表示に使用します。
	FindAll(ctx context.Context) ([]entity.User, error)
}

// JWTGenerator はJWTトークン生成のインターフェースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（platform/jwt）ではなくコンシューマー（usecase）が定義します。
type JWTGenerator interface {
	// GenerateToken は指定されたユーザーの署名済みJWTトークンを生成します。
	GenerateToken(userID uint, email string) (string, error)
}

// TokenPair はログイン・リフレッシュ成功時に返されるトークンの組です。
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// authUsecase は認証ビジネスロジックを実装します。
type authUsecase struct {
	users        UserRepository
	sessions     SessionRepository
	jwtGenerator JWTGenerator
}

// NewAuthUsecase はauthUsecaseの新しいインスタンスを生成します。
func NewAuthUsecase(users UserRepository, sessions SessionRepository, jwtGenerator JWTGenerator) *authUsecase {
	return &authUsecase{
		users:        users,
		sessions:     sessions,
		jwtGenerator: jwtGenerator,
	}
}

// validateEmail はメールアドレスの形式を簡易チェックします。
func validateEmail(email string) error {
	if len(email) < 3 || !strings.Contains(email, "@") ||
		strings.HasPrefix(email, "@") || strings.HasSuffix(email, "@") {
		return fmt.Errorf("invalid email address")
	}
	return nil
}

// validatePassword はパスワードがセキュリティ要件を満たしているかチェックします。
// 最低8文字で、小文字・大文字・数字をそれぞれ1文字以上含む必要があります。
func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return fmt.Errorf("password must be at least %d characters long", minPasswordLength)
	}
	var hasLower, hasUpper, hasDigit bool
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= '0' && r <= '9':
			hasDigit = true
		}
	}
	if !hasLower || !hasUpper || !hasDigit {
		return fmt.Errorf("password must contain a lowercase letter, an uppercase letter and a digit")
	}
	return nil
}

// randomToken は64文字のhex文字列のトークンを生成します。
// セッションIDとメール確認シークレットの両方に使用します。
func randomToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// Signup はハッシュ化されたパスワードで新規ユーザーを登録します。
// 所有リファレンスのコレクションは空、各カテゴリのクロックはエポックセンチネルから始まります
// （クロック行は最初の変更まで作成されないため、未更新として観測されます）。
func (u *authUsecase) Signup(ctx context.Context, username, email, password string) error {
	username = strings.TrimSpace(username)
	email = strings.ToLower(strings.TrimSpace(email))
	if username == "" {
		return fmt.Errorf("username is required")
	}
	if err := validateEmail(email); err != nil {
		return err
	}
	if err := validatePassword(password); err != nil {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user := &entity.User{
		Username: username,
		Email:    email,
		Password: string(hashed),
		Theme:    "system",
	}
	return u.users.Create(ctx, user)
}

// Login はユーザーを認証し、成功時にアクセストークンとリフレッシュトークンを返します。
// ログイン名にはメールアドレスまたはユーザー名のどちらでも使えます。
// タイミング攻撃を防止するため、ユーザーが存在しない場合でもbcrypt比較を実行します。
func (u *authUsecase) Login(ctx context.Context, login, password, userAgent, ipAddress string) (*TokenPair, error) {
	var (
		user *entity.User
		err  error
	)
	if strings.Contains(login, "@") {
		user, err = u.users.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(login)))
	} else {
		user, err = u.users.FindByUsername(ctx, strings.TrimSpace(login))
	}

	// ユーザーが存在しない場合のタイミング攻撃緩和用ダミーハッシュ
	// bcrypt.CompareHashAndPasswordが常に呼ばれることを保証する
	passwordHash := "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
	if err == nil {
		passwordHash = user.Password
	}

	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))

	// ユーザー未検出またはパスワード不一致の場合、汎用エラーを返す
	if err != nil || compareErr != nil {
		return nil, ErrInvalidCredentials
	}

	return u.issueTokens(ctx, user, userAgent, ipAddress)
}

// Refresh はリフレッシュトークンを検証し、ローテーションして新しいトークンの組を返します。
func (u *authUsecase) Refresh(ctx context.Context, refreshToken, userAgent, ipAddress string) (*TokenPair, error) {
	if len(refreshToken) != 64 {
		return nil, ErrInvalidRefreshToken
	}

	session, err := u.sessions.FindByID(ctx, refreshToken)
	if err != nil {
		return nil, err
	}
	if session.IsRevoked() {
		return nil, ErrSessionRevoked
	}
	if session.IsExpired() {
		return nil, ErrSessionExpired
	}

	user, err := u.users.FindByID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}

	// 使用済みトークンは失効させる（ワンタイムローテーション）
	if err := u.sessions.Revoke(ctx, session.ID); err != nil {
		return nil, err
	}

	return u.issueTokens(ctx, user, userAgent, ipAddress)
}

// Logout はリフレッシュセッションを失効させます。
func (u *authUsecase) Logout(ctx context.Context, refreshToken string) error {
	if len(refreshToken) != 64 {
		return ErrInvalidRefreshToken
	}
	return u.sessions.Revoke(ctx, refreshToken)
}

// FindByID は認証ミドルウェアが解決したユーザーIDからユーザーを取得します。
func (u *authUsecase) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	return u.users.FindByID(ctx, id)
}

// RequestValidation はメール確認シークレットを発行して保存します。
// シークレットの配送（メール送信）はここでは扱いません。
// 有効なリンクが既に発行されている間は再発行しません。
func (u *authUsecase) RequestValidation(ctx context.Context, email string) error {
	user, err := u.users.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return err
	}
	if user.Validated {
		return ErrAlreadyValidated
	}
	if user.ValidationExpiresAt != nil && time.Now().Before(*user.ValidationExpiresAt) {
		return ErrValidationPending
	}

	secret, err := randomToken()
	if err != nil {
		return err
	}
	return u.users.SetValidation(ctx, user.ID, secret, time.Now().Add(validationTTL))
}

// Validate はメール確認シークレットを検証し、アカウントを確認済みにします。
// シークレットは使い捨てで、成功時に消去されます。
func (u *authUsecase) Validate(ctx context.Context, secret string) error {
	if len(secret) != 64 {
		return ErrUnknownValidationSecret
	}

	user, err := u.users.FindByValidationSecret(ctx, secret)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return ErrUnknownValidationSecret
		}
		return err
	}
	if user.ValidationExpiresAt == nil || time.Now().After(*user.ValidationExpiresAt) {
		return ErrValidationExpired
	}
	return u.users.ClearValidation(ctx, user.ID)
}

// ListUsers は登録済みの全ユーザーを返します。管理者専用の操作です。
func (u *authUsecase) ListUsers(ctx context.Context) ([]entity.User, error) {
	return u.users.FindAll(ctx)
}

// issueTokens はアクセストークンの生成とリフレッシュセッションの作成をまとめて行います。
func (u *authUsecase) issueTokens(ctx context.Context, user *entity.User, userAgent, ipAddress string) (*TokenPair, error) {
	access, err := u.jwtGenerator.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	id, err := randomToken()
	if err != nil {
		return nil, err
	}
	session := &entity.Session{
		ID:        id,
		UserID:    user.ID,
		UserAgent: userAgent,
		IPAddress: ipAddress,
		CreatedAt: time.Now(),
		ExpiresAt: time.Now().Add(sessionTTL),
	}
	if err := u.sessions.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return &TokenPair{AccessToken: access, RefreshToken: session.ID}, nil
}
