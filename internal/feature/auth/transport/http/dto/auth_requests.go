// Package dto はauth HTTP APIのデータ転送オブジェクトを定義します。
package dto

import "time"

// SignupRequest はユーザー登録リクエストDTOです。
type SignupRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginRequest はログインリクエストDTOです。
// Loginにはメールアドレスまたはユーザー名を指定できます。
type LoginRequest struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest はトークン更新リクエストDTOです。
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// TokenResponse はトークン発行レスポンスDTOです。
type TokenResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// MeResponse はログイン中ユーザーのプロフィールレスポンスDTOです。
type MeResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Admin    bool   `json:"admin"`
}

// ValidationRequest はメール確認リンクの発行リクエストDTOです。
type ValidationRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// UserResponse は管理者向けユーザー一覧の1エントリです。
// パスワードハッシュや確認シークレットは含めません。
type UserResponse struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Admin     bool      `json:"admin"`
	Validated bool      `json:"validated"`
	CreatedAt time.Time `json:"createdAt"`
}
