// Package handler はresourcesフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"fitness_backend/internal/feature/resources/domain/entity"
	"fitness_backend/internal/feature/resources/transport/http/dto"
	"fitness_backend/internal/feature/resources/usecase"
	syncentity "fitness_backend/internal/feature/sync/domain/entity"
	syncusecase "fitness_backend/internal/feature/sync/usecase"
	jwtmw "fitness_backend/internal/platform/jwt"
	"fitness_backend/internal/shared/httpapi"
)

// maxBodyBytes はドキュメント本文の上限サイズです。
const maxBodyBytes = 1 << 20 // 1MB

// ResourcesUsecase はリソース操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type ResourcesUsecase interface {
	Create(ctx context.Context, userID uint, category syncentity.Category, body json.RawMessage) (*usecase.CreatedResource, error)
	Get(ctx context.Context, userID uint, category syncentity.Category, id string) (*entity.Document, error)
	Update(ctx context.Context, userID uint, category syncentity.Category, id string, body json.RawMessage) (int64, error)
	Delete(ctx context.Context, userID uint, category syncentity.Category, id string) (int64, error)
	Mine(ctx context.Context, userID uint, category syncentity.Category) (*usecase.OwnedCollection, error)
	All(ctx context.Context, category syncentity.Category) ([]entity.Document, error)
}

// ResourcesHandler は所有カテゴリ5種に共通のCRUDエンドポイントを処理します。
// カテゴリはルーター側でクロージャに束縛されるため、ハンドラー本体は1組だけです。
type ResourcesHandler struct {
	uc ResourcesUsecase
}

// NewResourcesHandler はResourcesHandlerの新しいインスタンスを生成します。
func NewResourcesHandler(uc ResourcesUsecase) *ResourcesHandler {
	return &ResourcesHandler{uc: uc}
}

// currentUserID はJWTミドルウェアが格納したユーザーIDを取り出します。
func currentUserID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(jwtmw.ContextUserID)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

// readBody はリクエスト本文をサイズ制限付きで読み取ります。
func readBody(c *gin.Context) (json.RawMessage, error) {
	return io.ReadAll(io.LimitReader(c.Request.Body, maxBodyBytes))
}

// Create はドキュメント作成エンドポイントを処理します。
//
// エンドポイント例:
// POST /diets
func (h *ResourcesHandler) Create(category syncentity.Category) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, httpapi.ErrorResponse{Error: "unauthorized"})
			return
		}
		body, err := readBody(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, httpapi.ErrorResponse{Error: "invalid request"})
			return
		}
		created, err := h.uc.Create(c.Request.Context(), userID, category, body)
		if err != nil {
			if errors.Is(err, usecase.ErrInvalidBody) {
				c.JSON(http.StatusBadRequest, httpapi.ErrorResponse{Error: "body must be a JSON object"})
				return
			}
			h.writeReadError(c, err, category, userID)
			return
		}
		c.JSON(http.StatusCreated, dto.CreatedResponse{ID: created.ID, LastUpdate: created.LastUpdate})
	}
}

// Mine は自分の所有ドキュメント一覧エンドポイントを処理します。
//
// エンドポイント例:
// GET /diets
func (h *ResourcesHandler) Mine(category syncentity.Category) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, httpapi.ErrorResponse{Error: "unauthorized"})
			return
		}
		collection, err := h.uc.Mine(c.Request.Context(), userID, category)
		if err != nil {
			slog.Error("resource list failed", "error", err, "category", string(category), "user_id", userID)
			c.JSON(http.StatusInternalServerError, httpapi.ErrorResponse{Error: "internal server error"})
			return
		}
		c.JSON(http.StatusOK, toCollectionResponse(collection))
	}
}

// Get は所有チェック付きの単一ドキュメント取得エンドポイントを処理します。
//
// エンドポイント例:
// GET /diets/:id
func (h *ResourcesHandler) Get(category syncentity.Category) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, httpapi.ErrorResponse{Error: "unauthorized"})
			return
		}
		doc, err := h.uc.Get(c.Request.Context(), userID, category, c.Param("id"))
		if err != nil {
			h.writeReadError(c, err, category, userID)
			return
		}
		c.JSON(http.StatusOK, dto.ResourceResponse{ID: doc.ID, Body: doc.Body})
	}
}

// Update はドキュメント更新エンドポイントを処理します。
//
// エンドポイント例:
// PUT /diets/:id
func (h *ResourcesHandler) Update(category syncentity.Category) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, httpapi.ErrorResponse{Error: "unauthorized"})
			return
		}
		body, err := readBody(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, httpapi.ErrorResponse{Error: "invalid request"})
			return
		}
		id := c.Param("id")
		ts, err := h.uc.Update(c.Request.Context(), userID, category, id, body)
		if err != nil {
			if errors.Is(err, usecase.ErrInvalidBody) {
				c.JSON(http.StatusBadRequest, httpapi.ErrorResponse{Error: "body must be a JSON object"})
				return
			}
			h.writeReadError(c, err, category, userID)
			return
		}
		c.JSON(http.StatusOK, dto.MutatedResponse{ID: id, LastUpdate: ts})
	}
}

// Delete はドキュメント削除エンドポイントを処理します。
//
// エンドポイント例:
// DELETE /diets/:id
func (h *ResourcesHandler) Delete(category syncentity.Category) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, httpapi.ErrorResponse{Error: "unauthorized"})
			return
		}
		id := c.Param("id")
		ts, err := h.uc.Delete(c.Request.Context(), userID, category, id)
		if err != nil {
			h.writeReadError(c, err, category, userID)
			return
		}
		c.JSON(http.StatusOK, dto.MutatedResponse{ID: id, LastUpdate: ts})
	}
}

// All はカテゴリ内全ドキュメントの管理者用一覧エンドポイントを処理します。
//
// エンドポイント例:
// GET /admin/diets
func (h *ResourcesHandler) All(category syncentity.Category) gin.HandlerFunc {
	return func(c *gin.Context) {
		docs, err := h.uc.All(c.Request.Context(), category)
		if err != nil {
			slog.Error("resource admin list failed", "error", err, "category", string(category))
			c.JSON(http.StatusInternalServerError, httpapi.ErrorResponse{Error: "internal server error"})
			return
		}
		out := make([]dto.ResourceResponse, 0, len(docs))
		for _, doc := range docs {
			out = append(out, dto.ResourceResponse{ID: doc.ID, Body: doc.Body})
		}
		c.JSON(http.StatusOK, out)
	}
}

// writeReadError は所有チェック付き操作のエラーをHTTPステータスに変換します。
// 所有していないリソースは存在の有無を漏らさないよう401で統一します。
func (h *ResourcesHandler) writeReadError(c *gin.Context, err error, category syncentity.Category, userID uint) {
	switch {
	case errors.Is(err, usecase.ErrNotOwner):
		c.JSON(http.StatusUnauthorized, httpapi.ErrorResponse{Error: "not your resource"})
	case errors.Is(err, usecase.ErrDocumentNotFound):
		c.JSON(http.StatusNotFound, httpapi.ErrorResponse{Error: "resource not found"})
	case errors.Is(err, syncusecase.ErrAlreadyOwned), errors.Is(err, syncusecase.ErrNotOwned):
		// 所有チェックと衝突する競合書き込み
		c.JSON(http.StatusConflict, httpapi.ErrorResponse{Error: "conflicting ownership change"})
	default:
		slog.Error("resource operation failed", "error", err, "category", string(category), "user_id", userID)
		c.JSON(http.StatusInternalServerError, httpapi.ErrorResponse{Error: "internal server error"})
	}
}

func toCollectionResponse(collection *usecase.OwnedCollection) dto.CollectionResponse {
	resources := make([]dto.ResourceResponse, 0, len(collection.Documents))
	for _, doc := range collection.Documents {
		resources = append(resources, dto.ResourceResponse{ID: doc.ID, Body: doc.Body})
	}
	return dto.CollectionResponse{
		Resources:  resources,
		LastUpdate: collection.LastUpdate,
		Dropped:    collection.Dropped,
	}
}
