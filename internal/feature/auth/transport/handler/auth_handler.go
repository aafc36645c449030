// Package handler はauthフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"fitness_backend/internal/feature/auth/domain/entity"
	"fitness_backend/internal/feature/auth/transport/http/dto"
	"fitness_backend/internal/feature/auth/usecase"
	jwtmw "fitness_backend/internal/platform/jwt"
	"fitness_backend/internal/shared/httpapi"
)

// AuthUsecase は認証操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type AuthUsecase interface {
	// Signup は指定されたユーザー名・メールアドレス・パスワードで新規ユーザーを登録します。
	Signup(ctx context.Context, username, email, password string) error
	// Login はユーザーを認証し、成功時にトークンペアを返します。
	Login(ctx context.Context, login, password, userAgent, ipAddress string) (*usecase.TokenPair, error)
	// Refresh はリフレッシュトークンをローテーションして新しいトークンペアを返します。
	Refresh(ctx context.Context, refreshToken, userAgent, ipAddress string) (*usecase.TokenPair, error)
	// Logout はリフレッシュセッションを失効させます。
	Logout(ctx context.Context, refreshToken string) error
	// FindByID はIDでユーザーを取得します。
	FindByID(ctx context.Context, id uint) (*entity.User, error)
	// RequestValidation はメール確認シークレットを発行します。
	RequestValidation(ctx context.Context, email string) error
	// Validate はメール確認シークレットを検証し、アカウントを確認済みにします。
	Validate(ctx context.Context, secret string) error
	// ListUsers は登録済みの全ユーザーを返します。
	ListUsers(ctx context.Context) ([]entity.User, error)
}

// AuthHandler は認証操作のHTTPリクエストを処理します。
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler はAuthHandlerの新しいインスタンスを生成します。
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Signup はユーザー登録APIエンドポイントを処理します。
// - バリデーションエラー時は400を返却
// - ユーザー作成失敗時（メール・ユーザー名重複等）は409を返却
// - 成功時は201を返却
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("signup validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, httpapi.ErrorResponse{Error: "invalid request"})
		return
	}
	if err := h.auth.Signup(c.Request.Context(), req.Username, req.Email, req.Password); err != nil {
		// ユーザー列挙攻撃を防止するため、実際のエラーを公開しない
		slog.Warn("signup failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
		c.JSON(http.StatusConflict, httpapi.ErrorResponse{Error: "signup failed"})
		return
	}
	slog.Info("user signup successful", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, httpapi.MessageResponse{Message: "ok"})
}

// Login はユーザーログインAPIエンドポイントを処理します。
// - 認証失敗時は401を返却
// - 認証成功時はアクセストークンとリフレッシュトークンの対を返却
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, httpapi.ErrorResponse{Error: "invalid request"})
		return
	}
	tokens, err := h.auth.Login(c.Request.Context(), req.Login, req.Password, c.Request.UserAgent(), c.ClientIP())
	if err != nil {
		// ユーザー列挙攻撃を防止するため、実際のエラーを公開しない
		slog.Warn("login failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusUnauthorized, httpapi.ErrorResponse{Error: "invalid credentials"})
		return
	}
	slog.Info("user login successful", "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.TokenResponse{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	})
}

// Refresh はトークン更新APIエンドポイントを処理します。
// リフレッシュトークンは使い捨てで、成功のたびに新しい対が発行されます。
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpapi.ErrorResponse{Error: "invalid request"})
		return
	}
	tokens, err := h.auth.Refresh(c.Request.Context(), req.RefreshToken, c.Request.UserAgent(), c.ClientIP())
	if err != nil {
		slog.Warn("token refresh failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusUnauthorized, httpapi.ErrorResponse{Error: "invalid refresh token"})
		return
	}
	c.JSON(http.StatusOK, dto.TokenResponse{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	})
}

// Logout はログアウトAPIエンドポイントを処理します。
// 未知のトークンでも成功扱いにして、セッションの存在を漏らしません。
func (h *AuthHandler) Logout(c *gin.Context) {
	var req dto.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpapi.ErrorResponse{Error: "invalid request"})
		return
	}
	if err := h.auth.Logout(c.Request.Context(), req.RefreshToken); err != nil &&
		!errors.Is(err, usecase.ErrSessionNotFound) && !errors.Is(err, usecase.ErrInvalidRefreshToken) {
		slog.Error("logout failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, httpapi.ErrorResponse{Error: "internal server error"})
		return
	}
	c.JSON(http.StatusOK, httpapi.MessageResponse{Message: "ok"})
}

// Me はログイン中ユーザーのプロフィール取得エンドポイントを処理します。
func (h *AuthHandler) Me(c *gin.Context) {
	v, ok := c.Get(jwtmw.ContextUserID)
	if !ok {
		c.JSON(http.StatusUnauthorized, httpapi.ErrorResponse{Error: "unauthorized"})
		return
	}
	userID, ok := v.(uint)
	if !ok {
		c.JSON(http.StatusUnauthorized, httpapi.ErrorResponse{Error: "unauthorized"})
		return
	}
	user, err := h.auth.FindByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, httpapi.ErrorResponse{Error: "user not found"})
			return
		}
		slog.Error("profile read failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, httpapi.ErrorResponse{Error: "internal server error"})
		return
	}
	c.JSON(http.StatusOK, dto.MeResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Admin:    user.Admin,
	})
}

// RequestValidation はメール確認リンクの発行エンドポイントを処理します。
// シークレットの保存のみを行い、レスポンスには含めません（配送は別チャネル）。
func (h *AuthHandler) RequestValidation(c *gin.Context) {
	var req dto.ValidationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpapi.ErrorResponse{Error: "invalid request"})
		return
	}
	if err := h.auth.RequestValidation(c.Request.Context(), req.Email); err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserNotFound):
			c.JSON(http.StatusBadRequest, httpapi.ErrorResponse{Error: "unknown email"})
		case errors.Is(err, usecase.ErrAlreadyValidated):
			c.JSON(http.StatusBadRequest, httpapi.ErrorResponse{Error: "account already validated"})
		case errors.Is(err, usecase.ErrValidationPending):
			c.JSON(http.StatusBadRequest, httpapi.ErrorResponse{Error: "a validation link is already available"})
		default:
			slog.Error("validation request failed", "error", err, "remote_addr", c.ClientIP())
			c.JSON(http.StatusInternalServerError, httpapi.ErrorResponse{Error: "internal server error"})
		}
		return
	}
	c.JSON(http.StatusOK, httpapi.MessageResponse{Message: "ok"})
}

// Validate はメール確認エンドポイントを処理します。
// 期限切れのシークレットには410を返却します。
func (h *AuthHandler) Validate(c *gin.Context) {
	secret := c.Param("secret")
	if err := h.auth.Validate(c.Request.Context(), secret); err != nil {
		switch {
		case errors.Is(err, usecase.ErrUnknownValidationSecret):
			c.JSON(http.StatusBadRequest, httpapi.ErrorResponse{Error: "unknown secret"})
		case errors.Is(err, usecase.ErrValidationExpired):
			c.JSON(http.StatusGone, httpapi.ErrorResponse{Error: "validation expired"})
		default:
			slog.Error("account validation failed", "error", err, "remote_addr", c.ClientIP())
			c.JSON(http.StatusInternalServerError, httpapi.ErrorResponse{Error: "internal server error"})
		}
		return
	}
	c.JSON(http.StatusOK, httpapi.MessageResponse{Message: "ok"})
}

// ListUsers は管理者向けのユーザー一覧エンドポイントを処理します。
// 管理者チェックはミドルウェアで行われます。
func (h *AuthHandler) ListUsers(c *gin.Context) {
	users, err := h.auth.ListUsers(c.Request.Context())
	if err != nil {
		slog.Error("user listing failed", "error", err)
		c.JSON(http.StatusInternalServerError, httpapi.ErrorResponse{Error: "internal server error"})
		return
	}
	resp := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, dto.UserResponse{
			ID:        u.ID,
			Username:  u.Username,
			Email:     u.Email,
			Admin:     u.Admin,
			Validated: u.Validated,
			CreatedAt: u.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, resp)
}
