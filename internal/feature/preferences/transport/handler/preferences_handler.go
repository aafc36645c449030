// Package handler はpreferencesフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"fitness_backend/internal/feature/preferences/domain/entity"
	"fitness_backend/internal/feature/preferences/transport/http/dto"
	"fitness_backend/internal/feature/preferences/usecase"
	jwtmw "fitness_backend/internal/platform/jwt"
	"fitness_backend/internal/shared/httpapi"
)

// PreferencesUsecase はユーザー設定操作のユースケースを定義します。
type PreferencesUsecase interface {
	Get(ctx context.Context, userID uint) (*entity.Preferences, error)
	Update(ctx context.Context, userID uint, theme string) (int64, error)
}

// PreferencesHandler はユーザー設定のHTTPリクエストを処理します。
type PreferencesHandler struct {
	uc PreferencesUsecase
}

// NewPreferencesHandler はPreferencesHandlerの新しいインスタンスを生成します。
func NewPreferencesHandler(uc PreferencesUsecase) *PreferencesHandler {
	return &PreferencesHandler{uc: uc}
}

func currentUserID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(jwtmw.ContextUserID)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

// Get は自分の設定取得エンドポイントを処理します。
//
// エンドポイント例:
// GET /preferences
func (h *PreferencesHandler) Get(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, httpapi.ErrorResponse{Error: "unauthorized"})
		return
	}
	prefs, err := h.uc.Get(c.Request.Context(), userID)
	if err != nil {
		slog.Error("preferences read failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, httpapi.ErrorResponse{Error: "internal server error"})
		return
	}
	c.JSON(http.StatusOK, dto.PreferencesResponse{Theme: prefs.Theme})
}

// Update はテーマ変更エンドポイントを処理します。
// 変更はpreferencesクロックを進め、新しいタイムスタンプを返します。
//
// エンドポイント例:
// PUT /preferences
func (h *PreferencesHandler) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, httpapi.ErrorResponse{Error: "unauthorized"})
		return
	}
	var req dto.UpdatePreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpapi.ErrorResponse{Error: "invalid request"})
		return
	}
	ts, err := h.uc.Update(c.Request.Context(), userID, req.Theme)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidTheme) {
			c.JSON(http.StatusBadRequest, httpapi.ErrorResponse{Error: "invalid theme"})
			return
		}
		slog.Error("preferences update failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, httpapi.ErrorResponse{Error: "internal server error"})
		return
	}
	c.JSON(http.StatusOK, dto.UpdatedResponse{Theme: req.Theme, LastUpdate: ts})
}
