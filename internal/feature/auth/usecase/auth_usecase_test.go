package usecase

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"fitness_backend/internal/feature/auth/domain/entity"
)

// mockUserRepository はUserRepositoryインターフェースのモック実装です。
type mockUserRepository struct {
	CreateFunc                 func(ctx context.Context, user *entity.User) error
	FindByEmailFunc            func(ctx context.Context, email string) (*entity.User, error)
	FindByUsernameFunc         func(ctx context.Context, username string) (*entity.User, error)
	FindByIDFunc               func(ctx context.Context, id uint) (*entity.User, error)
	FindByValidationSecretFunc func(ctx context.Context, secret string) (*entity.User, error)
	SetValidationFunc          func(ctx context.Context, userID uint, secret string, expiresAt time.Time) error
	ClearValidationFunc        func(ctx context.Context, userID uint) error
	FindAllFunc                func(ctx context.Context) ([]entity.User, error)
}

func (m *mockUserRepository) Create(ctx context.Context, user *entity.User) error {
	return m.CreateFunc(ctx, user)
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return m.FindByEmailFunc(ctx, email)
}

func (m *mockUserRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	return m.FindByUsernameFunc(ctx, username)
}

func (m *mockUserRepository) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	return m.FindByIDFunc(ctx, id)
}

func (m *mockUserRepository) FindByValidationSecret(ctx context.Context, secret string) (*entity.User, error) {
	return m.FindByValidationSecretFunc(ctx, secret)
}

func (m *mockUserRepository) SetValidation(ctx context.Context, userID uint, secret string, expiresAt time.Time) error {
	return m.SetValidationFunc(ctx, userID, secret, expiresAt)
}

func (m *mockUserRepository) ClearValidation(ctx context.Context, userID uint) error {
	return m.ClearValidationFunc(ctx, userID)
}

func (m *mockUserRepository) FindAll(ctx context.Context) ([]entity.User, error) {
	return m.FindAllFunc(ctx)
}

// mockSessionRepository はSessionRepositoryインターフェースのモック実装です。
type mockSessionRepository struct {
	CreateFunc   func(ctx context.Context, session *entity.Session) error
	FindByIDFunc func(ctx context.Context, id string) (*entity.Session, error)
	RevokeFunc   func(ctx context.Context, id string) error
}

func (m *mockSessionRepository) Create(ctx context.Context, session *entity.Session) error {
	return m.CreateFunc(ctx, session)
}

func (m *mockSessionRepository) FindByID(ctx context.Context, id string) (*entity.Session, error) {
	return m.FindByIDFunc(ctx, id)
}

func (m *mockSessionRepository) Revoke(ctx context.Context, id string) error {
	return m.RevokeFunc(ctx, id)
}

// mockJWTGenerator はJWTGeneratorインターフェースのモック実装です。
type mockJWTGenerator struct {
	GenerateTokenFunc func(userID uint, email string) (string, error)
}

func (m *mockJWTGenerator) GenerateToken(userID uint, email string) (string, error) {
	if m.GenerateTokenFunc != nil {
		return m.GenerateTokenFunc(userID, email)
	}
	return "jwt-token", nil
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hashed)
}

func TestAuthUsecase_Signup(t *testing.T) {
	var created *entity.User
	users := &mockUserRepository{
		CreateFunc: func(ctx context.Context, user *entity.User) error {
			created = user
			return nil
		},
	}
	uc := NewAuthUsecase(users, &mockSessionRepository{}, &mockJWTGenerator{})

	err := uc.Signup(context.Background(), "  alice  ", " Alice@Example.COM ", "Password1")
	require.NoError(t, err)
	require.NotNil(t, created)

	// 前後空白の除去とメールアドレスの小文字化
	assert.Equal(t, "alice", created.Username)
	assert.Equal(t, "alice@example.com", created.Email)
	// パスワードは平文では保存されない
	assert.NotEqual(t, "Password1", created.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("Password1")))
	// 新規ユーザーのテーマはsystem
	assert.Equal(t, "system", created.Theme)
	assert.False(t, created.Admin)
}

func TestAuthUsecase_Signup_Validation(t *testing.T) {
	uc := NewAuthUsecase(&mockUserRepository{}, &mockSessionRepository{}, &mockJWTGenerator{})

	tests := []struct {
		name     string
		username string
		email    string
		password string
	}{
		{"missing username", "", "alice@example.com", "Password1"},
		{"invalid email", "alice", "not-an-email", "Password1"},
		{"password too short", "alice", "alice@example.com", "Pw1"},
		{"password without uppercase", "alice", "alice@example.com", "password1"},
		{"password without lowercase", "alice", "alice@example.com", "PASSWORD1"},
		{"password without digit", "alice", "alice@example.com", "PasswordX"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := uc.Signup(context.Background(), tt.username, tt.email, tt.password)
			assert.Error(t, err)
		})
	}
}

func TestAuthUsecase_Login_WithEmail(t *testing.T) {
	hashed := hashPassword(t, "Password1")
	users := &mockUserRepository{
		FindByEmailFunc: func(ctx context.Context, email string) (*entity.User, error) {
			assert.Equal(t, "alice@example.com", email)
			return &entity.User{ID: 1, Email: email, Password: hashed}, nil
		},
	}
	var createdSession *entity.Session
	sessions := &mockSessionRepository{
		CreateFunc: func(ctx context.Context, session *entity.Session) error {
			createdSession = session
			return nil
		},
	}
	uc := NewAuthUsecase(users, sessions, &mockJWTGenerator{})

	tokens, err := uc.Login(context.Background(), "Alice@Example.com", "Password1", "test-agent", "127.0.0.1")
	require.NoError(t, err)

	assert.Equal(t, "jwt-token", tokens.AccessToken)
	// リフレッシュトークンは64文字のhex
	assert.Len(t, tokens.RefreshToken, 64)
	require.NotNil(t, createdSession)
	assert.Equal(t, tokens.RefreshToken, createdSession.ID)
	assert.Equal(t, uint(1), createdSession.UserID)
	assert.Equal(t, "test-agent", createdSession.UserAgent)
	assert.True(t, createdSession.ExpiresAt.After(time.Now()))
}

func TestAuthUsecase_Login_WithUsername(t *testing.T) {
	hashed := hashPassword(t, "Password1")
	users := &mockUserRepository{
		FindByUsernameFunc: func(ctx context.Context, username string) (*entity.User, error) {
			assert.Equal(t, "alice", username)
			return &entity.User{ID: 1, Username: username, Password: hashed}, nil
		},
	}
	sessions := &mockSessionRepository{
		CreateFunc: func(ctx context.Context, session *entity.Session) error { return nil },
	}
	uc := NewAuthUsecase(users, sessions, &mockJWTGenerator{})

	// @を含まないログイン名はユーザー名として解決される
	_, err := uc.Login(context.Background(), "alice", "Password1", "", "")
	require.NoError(t, err)
}

func TestAuthUsecase_Login_WrongPassword(t *testing.T) {
	hashed := hashPassword(t, "Password1")
	users := &mockUserRepository{
		FindByEmailFunc: func(ctx context.Context, email string) (*entity.User, error) {
			return &entity.User{ID: 1, Email: email, Password: hashed}, nil
		},
	}
	uc := NewAuthUsecase(users, &mockSessionRepository{}, &mockJWTGenerator{})

	_, err := uc.Login(context.Background(), "alice@example.com", "WrongPassword1", "", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthUsecase_Login_UnknownUser(t *testing.T) {
	users := &mockUserRepository{
		FindByEmailFunc: func(ctx context.Context, email string) (*entity.User, error) {
			return nil, ErrUserNotFound
		},
	}
	uc := NewAuthUsecase(users, &mockSessionRepository{}, &mockJWTGenerator{})

	// 未知ユーザーもパスワード不一致も同じ汎用エラー
	_, err := uc.Login(context.Background(), "ghost@example.com", "Password1", "", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthUsecase_Refresh_RotatesSession(t *testing.T) {
	oldToken := strings.Repeat("a", 64)
	revoked := []string{}
	sessions := &mockSessionRepository{
		FindByIDFunc: func(ctx context.Context, id string) (*entity.Session, error) {
			assert.Equal(t, oldToken, id)
			return &entity.Session{
				ID:        oldToken,
				UserID:    1,
				CreatedAt: time.Now().Add(-time.Hour),
				ExpiresAt: time.Now().Add(time.Hour),
			}, nil
		},
		RevokeFunc: func(ctx context.Context, id string) error {
			revoked = append(revoked, id)
			return nil
		},
		CreateFunc: func(ctx context.Context, session *entity.Session) error { return nil },
	}
	users := &mockUserRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*entity.User, error) {
			return &entity.User{ID: id, Email: "alice@example.com"}, nil
		},
	}
	uc := NewAuthUsecase(users, sessions, &mockJWTGenerator{})

	tokens, err := uc.Refresh(context.Background(), oldToken, "", "")
	require.NoError(t, err)

	// 使用済みトークンは失効し、新しいトークンは別物になる
	assert.Equal(t, []string{oldToken}, revoked)
	assert.NotEqual(t, oldToken, tokens.RefreshToken)
	assert.Len(t, tokens.RefreshToken, 64)
}

func TestAuthUsecase_Refresh_RejectsRevokedSession(t *testing.T) {
	token := strings.Repeat("b", 64)
	now := time.Now()
	sessions := &mockSessionRepository{
		FindByIDFunc: func(ctx context.Context, id string) (*entity.Session, error) {
			return &entity.Session{
				ID:        token,
				UserID:    1,
				CreatedAt: now.Add(-time.Hour),
				ExpiresAt: now.Add(time.Hour),
				RevokedAt: &now,
			}, nil
		},
	}
	uc := NewAuthUsecase(&mockUserRepository{}, sessions, &mockJWTGenerator{})

	_, err := uc.Refresh(context.Background(), token, "", "")
	assert.ErrorIs(t, err, ErrSessionRevoked)
}

func TestAuthUsecase_Refresh_RejectsExpiredSession(t *testing.T) {
	token := strings.Repeat("c", 64)
	sessions := &mockSessionRepository{
		FindByIDFunc: func(ctx context.Context, id string) (*entity.Session, error) {
			return &entity.Session{
				ID:        token,
				UserID:    1,
				CreatedAt: time.Now().Add(-48 * time.Hour),
				ExpiresAt: time.Now().Add(-time.Hour),
			}, nil
		},
	}
	uc := NewAuthUsecase(&mockUserRepository{}, sessions, &mockJWTGenerator{})

	_, err := uc.Refresh(context.Background(), token, "", "")
	assert.ErrorIs(t, err, ErrSessionExpired)
}

func TestAuthUsecase_Refresh_RejectsMalformedToken(t *testing.T) {
	uc := NewAuthUsecase(&mockUserRepository{}, &mockSessionRepository{}, &mockJWTGenerator{})

	_, err := uc.Refresh(context.Background(), "short", "", "")
	assert.ErrorIs(t, err, ErrInvalidRefreshToken)
}

func TestAuthUsecase_Logout(t *testing.T) {
	token := strings.Repeat("d", 64)
	var revoked string
	sessions := &mockSessionRepository{
		RevokeFunc: func(ctx context.Context, id string) error {
			revoked = id
			return nil
		},
	}
	uc := NewAuthUsecase(&mockUserRepository{}, sessions, &mockJWTGenerator{})

	require.NoError(t, uc.Logout(context.Background(), token))
	assert.Equal(t, token, revoked)

	assert.ErrorIs(t, uc.Logout(context.Background(), "short"), ErrInvalidRefreshToken)
}

func TestAuthUsecase_RequestValidation(t *testing.T) {
	var (
		savedID     uint
		savedSecret string
		savedExpiry time.Time
	)
	users := &mockUserRepository{
		FindByEmailFunc: func(ctx context.Context, email string) (*entity.User, error) {
			assert.Equal(t, "alice@example.com", email)
			return &entity.User{ID: 7, Email: email}, nil
		},
		SetValidationFunc: func(ctx context.Context, userID uint, secret string, expiresAt time.Time) error {
			savedID = userID
			savedSecret = secret
			savedExpiry = expiresAt
			return nil
		},
	}
	uc := NewAuthUsecase(users, &mockSessionRepository{}, &mockJWTGenerator{})

	require.NoError(t, uc.RequestValidation(context.Background(), "  Alice@Example.com "))
	assert.Equal(t, uint(7), savedID)
	assert.Len(t, savedSecret, 64)
	assert.WithinDuration(t, time.Now().Add(10*time.Minute), savedExpiry, 5*time.Second)
}

func TestAuthUsecase_RequestValidation_AlreadyValidated(t *testing.T) {
	users := &mockUserRepository{
		FindByEmailFunc: func(ctx context.Context, email string) (*entity.User, error) {
			return &entity.User{ID: 7, Email: email, Validated: true}, nil
		},
	}
	uc := NewAuthUsecase(users, &mockSessionRepository{}, &mockJWTGenerator{})

	err := uc.RequestValidation(context.Background(), "alice@example.com")
	assert.ErrorIs(t, err, ErrAlreadyValidated)
}

func TestAuthUsecase_RequestValidation_LinkStillValid(t *testing.T) {
	expiry := time.Now().Add(5 * time.Minute)
	users := &mockUserRepository{
		FindByEmailFunc: func(ctx context.Context, email string) (*entity.User, error) {
			return &entity.User{
				ID:                  7,
				Email:               email,
				ValidationSecret:    strings.Repeat("a", 64),
				ValidationExpiresAt: &expiry,
			}, nil
		},
	}
	uc := NewAuthUsecase(users, &mockSessionRepository{}, &mockJWTGenerator{})

	err := uc.RequestValidation(context.Background(), "alice@example.com")
	assert.ErrorIs(t, err, ErrValidationPending)
}

func TestAuthUsecase_RequestValidation_ReissuesExpiredLink(t *testing.T) {
	expiry := time.Now().Add(-time.Minute)
	reissued := false
	users := &mockUserRepository{
		FindByEmailFunc: func(ctx context.Context, email string) (*entity.User, error) {
			return &entity.User{
				ID:                  7,
				Email:               email,
				ValidationSecret:    strings.Repeat("a", 64),
				ValidationExpiresAt: &expiry,
			}, nil
		},
		SetValidationFunc: func(ctx context.Context, userID uint, secret string, expiresAt time.Time) error {
			reissued = true
			assert.NotEqual(t, strings.Repeat("a", 64), secret)
			return nil
		},
	}
	uc := NewAuthUsecase(users, &mockSessionRepository{}, &mockJWTGenerator{})

	require.NoError(t, uc.RequestValidation(context.Background(), "alice@example.com"))
	assert.True(t, reissued)
}

func TestAuthUsecase_RequestValidation_UnknownEmail(t *testing.T) {
	users := &mockUserRepository{
		FindByEmailFunc: func(ctx context.Context, email string) (*entity.User, error) {
			return nil, ErrUserNotFound
		},
	}
	uc := NewAuthUsecase(users, &mockSessionRepository{}, &mockJWTGenerator{})

	err := uc.RequestValidation(context.Background(), "ghost@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestAuthUsecase_Validate(t *testing.T) {
	secret := strings.Repeat("b", 64)
	expiry := time.Now().Add(5 * time.Minute)
	var clearedID uint
	users := &mockUserRepository{
		FindByValidationSecretFunc: func(ctx context.Context, s string) (*entity.User, error) {
			assert.Equal(t, secret, s)
			return &entity.User{ID: 9, ValidationSecret: secret, ValidationExpiresAt: &expiry}, nil
		},
		ClearValidationFunc: func(ctx context.Context, userID uint) error {
			clearedID = userID
			return nil
		},
	}
	uc := NewAuthUsecase(users, &mockSessionRepository{}, &mockJWTGenerator{})

	require.NoError(t, uc.Validate(context.Background(), secret))
	assert.Equal(t, uint(9), clearedID)
}

func TestAuthUsecase_Validate_Expired(t *testing.T) {
	secret := strings.Repeat("b", 64)
	expiry := time.Now().Add(-time.Minute)
	users := &mockUserRepository{
		FindByValidationSecretFunc: func(ctx context.Context, s string) (*entity.User, error) {
			return &entity.User{ID: 9, ValidationSecret: secret, ValidationExpiresAt: &expiry}, nil
		},
	}
	uc := NewAuthUsecase(users, &mockSessionRepository{}, &mockJWTGenerator{})

	err := uc.Validate(context.Background(), secret)
	assert.ErrorIs(t, err, ErrValidationExpired)
}

func TestAuthUsecase_Validate_UnknownSecret(t *testing.T) {
	users := &mockUserRepository{
		FindByValidationSecretFunc: func(ctx context.Context, s string) (*entity.User, error) {
			return nil, ErrUserNotFound
		},
	}
	uc := NewAuthUsecase(users, &mockSessionRepository{}, &mockJWTGenerator{})

	err := uc.Validate(context.Background(), strings.Repeat("e", 64))
	assert.ErrorIs(t, err, ErrUnknownValidationSecret)

	// 長さが不正なシークレットはストレージに問い合わせず拒否する
	err = uc.Validate(context.Background(), "short")
	assert.ErrorIs(t, err, ErrUnknownValidationSecret)
}

func TestAuthUsecase_ListUsers(t *testing.T) {
	users := &mockUserRepository{
		FindAllFunc: func(ctx context.Context) ([]entity.User, error) {
			return []entity.User{
				{ID: 1, Username: "alice"},
				{ID: 2, Username: "bob"},
			}, nil
		},
	}
	uc := NewAuthUsecase(users, &mockSessionRepository{}, &mockJWTGenerator{})

	got, err := uc.ListUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "alice", got[0].Username)
	assert.Equal(t, "bob", got[1].Username)
}
