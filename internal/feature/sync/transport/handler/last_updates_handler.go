// Package handler はsyncフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"fitness_backend/internal/feature/sync/domain/entity"
	"fitness_backend/internal/feature/sync/transport/http/dto"
	jwtmw "fitness_backend/internal/platform/jwt"
	"fitness_backend/internal/shared/httpapi"
)

// SyncUsecase はクロック読み取りのユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type SyncUsecase interface {
	PrivateLastUpdates(ctx context.Context, userID uint) (entity.PrivateLastUpdates, error)
	PublicLastUpdates(ctx context.Context) (entity.PublicLastUpdates, error)
	LastUpdates(ctx context.Context, userID uint) (entity.LastUpdates, error)
}

// LastUpdatesHandler はクロック読み取りのHTTPリクエストを処理します。
// クライアントはこれらのタイムスタンプと手元のキャッシュを比較して、
// どのカテゴリを再取得すべきかを判断します。
type LastUpdatesHandler struct {
	uc SyncUsecase
}

// NewLastUpdatesHandler はLastUpdatesHandlerの新しいインスタンスを生成します。
func NewLastUpdatesHandler(uc SyncUsecase) *LastUpdatesHandler {
	return &LastUpdatesHandler{uc: uc}
}

func currentUserID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(jwtmw.ContextUserID)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

// All はユーザー別と共有の全クロックをまとめて返します。
//
// エンドポイント例:
// GET /lastupdates
func (h *LastUpdatesHandler) All(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, httpapi.ErrorResponse{Error: "unauthorized"})
		return
	}
	updates, err := h.uc.LastUpdates(c.Request.Context(), userID)
	if err != nil {
		slog.Error("last updates read failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, httpapi.ErrorResponse{Error: "internal server error"})
		return
	}
	c.JSON(http.StatusOK, dto.FromLastUpdates(updates))
}

// Private はユーザー別クロックだけを返します。
//
// エンドポイント例:
// GET /lastupdates/private
func (h *LastUpdatesHandler) Private(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, httpapi.ErrorResponse{Error: "unauthorized"})
		return
	}
	updates, err := h.uc.PrivateLastUpdates(c.Request.Context(), userID)
	if err != nil {
		slog.Error("private last updates read failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, httpapi.ErrorResponse{Error: "internal server error"})
		return
	}
	c.JSON(http.StatusOK, dto.FromPrivate(updates))
}

// Public は共有カタログクロックだけを返します。
//
// エンドポイント例:
// GET /lastupdates/public
func (h *LastUpdatesHandler) Public(c *gin.Context) {
	updates, err := h.uc.PublicLastUpdates(c.Request.Context())
	if err != nil {
		slog.Error("public last updates read failed", "error", err)
		c.JSON(http.StatusInternalServerError, httpapi.ErrorResponse{Error: "internal server error"})
		return
	}
	c.JSON(http.StatusOK, dto.FromPublic(updates))
}
