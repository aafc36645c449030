// Package handler はcatalogフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"fitness_backend/internal/feature/catalog/domain/entity"
	"fitness_backend/internal/feature/catalog/transport/http/dto"
	"fitness_backend/internal/feature/catalog/usecase"
	"fitness_backend/internal/shared/httpapi"
)

// CatalogUsecase はカタログ操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type CatalogUsecase interface {
	ListFoods(ctx context.Context) ([]entity.Food, error)
	GetFood(ctx context.Context, id uint) (*entity.Food, error)
	GetFoodByBarcode(ctx context.Context, barcode string) (*entity.Food, error)
	CreateFood(ctx context.Context, food *entity.Food) (int64, error)
	UpdateFood(ctx context.Context, food *entity.Food) (int64, error)
	DeleteFood(ctx context.Context, id uint) (int64, error)

	ListExercises(ctx context.Context) ([]entity.Exercise, error)
	GetExercise(ctx context.Context, id uint) (*entity.Exercise, error)
	CreateExercise(ctx context.Context, exercise *entity.Exercise) (int64, error)
	UpdateExercise(ctx context.Context, exercise *entity.Exercise) (int64, error)
	DeleteExercise(ctx context.Context, id uint) (int64, error)

	ListMuscles(ctx context.Context) ([]entity.Muscle, error)
	GetMuscle(ctx context.Context, id uint) (*entity.Muscle, error)
	CreateMuscle(ctx context.Context, muscle *entity.Muscle) (int64, error)
	UpdateMuscle(ctx context.Context, muscle *entity.Muscle) (int64, error)
	DeleteMuscle(ctx context.Context, id uint) (int64, error)

	ListMuscleGroups(ctx context.Context) ([]entity.MuscleGroup, error)
	GetMuscleGroup(ctx context.Context, id uint) (*entity.MuscleGroup, error)
	CreateMuscleGroup(ctx context.Context, group *entity.MuscleGroup) (int64, error)
	UpdateMuscleGroup(ctx context.Context, group *entity.MuscleGroup) (int64, error)
	DeleteMuscleGroup(ctx context.Context, id uint) (int64, error)
}

// CatalogHandler は共有カタログのHTTPリクエストを処理します。
// 読み取りは認証ユーザー全員、書き込みはルーター側で管理者に制限されます。
type CatalogHandler struct {
	uc CatalogUsecase
}

// NewCatalogHandler はCatalogHandlerの新しいインスタンスを生成します。
func NewCatalogHandler(uc CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// pathID は:idパラメータを数値IDへ変換します。
func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpapi.ErrorResponse{Error: "invalid id"})
		return 0, false
	}
	return uint(id), true
}

// writeCatalogError はカタログ操作のエラーをHTTPステータスに変換します。
func writeCatalogError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrNotFound):
		c.JSON(http.StatusNotFound, httpapi.ErrorResponse{Error: "catalog entry not found"})
	case errors.Is(err, usecase.ErrBarcodeAlreadyExists):
		c.JSON(http.StatusConflict, httpapi.ErrorResponse{Error: "barcode already exists"})
	case errors.Is(err, usecase.ErrMissingBarcode), errors.Is(err, usecase.ErrMissingName):
		c.JSON(http.StatusBadRequest, httpapi.ErrorResponse{Error: err.Error()})
	default:
		slog.Error("catalog operation failed", "error", err)
		c.JSON(http.StatusInternalServerError, httpapi.ErrorResponse{Error: "internal server error"})
	}
}

// ListFoods は食品カタログ一覧エンドポイントを処理します。
// barcodeクエリパラメータが付いている場合はバーコード検索になります。
//
// エンドポイント例:
// GET /foods
// GET /foods?barcode=3017620422003
func (h *CatalogHandler) ListFoods(c *gin.Context) {
	if barcode := c.Query("barcode"); barcode != "" {
		food, err := h.uc.GetFoodByBarcode(c.Request.Context(), barcode)
		if err != nil {
			writeCatalogError(c, err)
			return
		}
		c.JSON(http.StatusOK, food)
		return
	}

	foods, err := h.uc.ListFoods(c.Request.Context())
	if err != nil {
		writeCatalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, foods)
}

// GetFood は食品取得エンドポイントを処理します。
func (h *CatalogHandler) GetFood(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	food, err := h.uc.GetFood(c.Request.Context(), id)
	if err != nil {
		writeCatalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, food)
}

// CreateFood は食品登録エンドポイントを処理します（管理者のみ）。
func (h *CatalogHandler) CreateFood(c *gin.Context) {
	var req dto.FoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpapi.ErrorResponse{Error: "invalid request"})
		return
	}
	food := req.ToEntity(0)
	ts, err := h.uc.CreateFood(c.Request.Context(), food)
	if err != nil {
		writeCatalogError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.MutatedResponse{ID: food.ID, LastUpdate: ts})
}

// UpdateFood は食品更新エンドポイントを処理します（管理者のみ）。
func (h *CatalogHandler) UpdateFood(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.FoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpapi.ErrorResponse{Error: "invalid request"})
		return
	}
	ts, err := h.uc.UpdateFood(c.Request.Context(), req.ToEntity(id))
	if err != nil {
		writeCatalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MutatedResponse{ID: id, LastUpdate: ts})
}

// DeleteFood は食品削除エンドポイントを処理します（管理者のみ）。
func (h *CatalogHandler) DeleteFood(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	ts, err := h.uc.DeleteFood(c.Request.Context(), id)
	if err != nil {
		writeCatalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MutatedResponse{LastUpdate: ts})
}

// ListExercises は運動カタログ一覧エンドポイントを処理します。
func (h *CatalogHandler) ListExercises(c *gin.Context) {
	exercises, err := h.uc.ListExercises(c.Request.Context())
	if err != nil {
		writeCatalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, exercises)
}

// GetExercise は運動取得エンドポイントを処理します。
func (h *CatalogHandler) GetExercise(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	exercise, err := h.uc.GetExercise(c.Request.Context(), id)
	if err != nil {
		writeCatalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, exercise)
}

// CreateExercise は運動登録エンドポイントを処理します（管理者のみ）。
func (h *CatalogHandler) CreateExercise(c *gin.Context) {
	var req dto.ExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpapi.ErrorResponse{Error: "invalid request"})
		return
	}
	exercise := req.ToEntity(0)
	ts, err := h.uc.CreateExercise(c.Request.Context(), exercise)
	if err != nil {
		writeCatalogError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.MutatedResponse{ID: exercise.ID, LastUpdate: ts})
}

// UpdateExercise は運動更新エンドポイントを処理します（管理者のみ）。
func (h *CatalogHandler) UpdateExercise(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.ExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpapi.ErrorResponse{Error: "invalid request"})
		return
	}
	ts, err := h.uc.UpdateExercise(c.Request.Context(), req.ToEntity(id))
	if err != nil {
		writeCatalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MutatedResponse{ID: id, LastUpdate: ts})
}

// DeleteExercise は運動削除エンドポイントを処理します（管理者のみ）。
func (h *CatalogHandler) DeleteExercise(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	ts, err := h.uc.DeleteExercise(c.Request.Context(), id)
	if err != nil {
		writeCatalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MutatedResponse{LastUpdate: ts})
}

// ListMuscles は筋肉カタログ一覧エンドポイントを処理します。
func (h *CatalogHandler) ListMuscles(c *gin.Context) {
	muscles, err := h.uc.ListMuscles(c.Request.Context())
	if err != nil {
		writeCatalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, muscles)
}

// GetMuscle は筋肉取得エンドポイントを処理します。
func (h *CatalogHandler) GetMuscle(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	muscle, err := h.uc.GetMuscle(c.Request.Context(), id)
	if err != nil {
		writeCatalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, muscle)
}

// CreateMuscle は筋肉登録エンドポイントを処理します（管理者のみ）。
func (h *CatalogHandler) CreateMuscle(c *gin.Context) {
	var req dto.MuscleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpapi.ErrorResponse{Error: "invalid request"})
		return
	}
	muscle := req.ToEntity(0)
	ts, err := h.uc.CreateMuscle(c.Request.Context(), muscle)
	if err != nil {
		writeCatalogError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.MutatedResponse{ID: muscle.ID, LastUpdate: ts})
}

// UpdateMuscle は筋肉更新エンドポイントを処理します（管理者のみ）。
func (h *CatalogHandler) UpdateMuscle(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.MuscleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpapi.ErrorResponse{Error: "invalid request"})
		return
	}
	ts, err := h.uc.UpdateMuscle(c.Request.Context(), req.ToEntity(id))
	if err != nil {
		writeCatalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MutatedResponse{ID: id, LastUpdate: ts})
}

// DeleteMuscle は筋肉削除エンドポイントを処理します（管理者のみ）。
func (h *CatalogHandler) DeleteMuscle(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	ts, err := h.uc.DeleteMuscle(c.Request.Context(), id)
	if err != nil {
		writeCatalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MutatedResponse{LastUpdate: ts})
}

// ListMuscleGroups は筋肉グループカタログ一覧エンドポイントを処理します。
func (h *CatalogHandler) ListMuscleGroups(c *gin.Context) {
	groups, err := h.uc.ListMuscleGroups(c.Request.Context())
	if err != nil {
		writeCatalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, groups)
}

// GetMuscleGroup は筋肉グループ取得エンドポイントを処理します。
func (h *CatalogHandler) GetMuscleGroup(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	group, err := h.uc.GetMuscleGroup(c.Request.Context(), id)
	if err != nil {
		writeCatalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, group)
}

// CreateMuscleGroup は筋肉グループ登録エンドポイントを処理します（管理者のみ）。
func (h *CatalogHandler) CreateMuscleGroup(c *gin.Context) {
	var req dto.MuscleGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpapi.ErrorResponse{Error: "invalid request"})
		return
	}
	group := req.ToEntity(0)
	ts, err := h.uc.CreateMuscleGroup(c.Request.Context(), group)
	if err != nil {
		writeCatalogError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.MutatedResponse{ID: group.ID, LastUpdate: ts})
}

// UpdateMuscleGroup は筋肉グループ更新エンドポイントを処理します（管理者のみ）。
func (h *CatalogHandler) UpdateMuscleGroup(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.MuscleGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpapi.ErrorResponse{Error: "invalid request"})
		return
	}
	ts, err := h.uc.UpdateMuscleGroup(c.Request.Context(), req.ToEntity(id))
	if err != nil {
		writeCatalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MutatedResponse{ID: id, LastUpdate: ts})
}

// DeleteMuscleGroup は筋肉グループ削除エンドポイントを処理します（管理者のみ）。
func (h *CatalogHandler) DeleteMuscleGroup(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	ts, err := h.uc.DeleteMuscleGroup(c.Request.Context(), id)
	if err != nil {
		writeCatalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MutatedResponse{LastUpdate: ts})
}
