// Package handler はdataフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"fitness_backend/internal/feature/data/transport/http/dto"
	"fitness_backend/internal/feature/data/usecase"
	syncentity "fitness_backend/internal/feature/sync/domain/entity"
	syncdto "fitness_backend/internal/feature/sync/transport/http/dto"
	jwtmw "fitness_backend/internal/platform/jwt"
	"fitness_backend/internal/shared/httpapi"
)

// DataUsecase は合成データ取得のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type DataUsecase interface {
	MyData(ctx context.Context, userID uint) (*usecase.MyData, error)
	PublicData(ctx context.Context) (*usecase.PublicData, error)
	SomeData(ctx context.Context, userID uint, names []string) (*usecase.Selection, error)
}

// DataHandler は合成データ取得のHTTPリクエストを処理します。
type DataHandler struct {
	uc DataUsecase
}

// NewDataHandler はDataHandlerの新しいインスタンスを生成します。
func NewDataHandler(uc DataUsecase) *DataHandler {
	return &DataHandler{uc: uc}
}

func currentUserID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(jwtmw.ContextUserID)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

// Mine は自分の全データ取得エンドポイントを処理します。
// 初回同期やキャッシュ破棄後のリストアに使われます。
//
// エンドポイント例:
// GET /data/mine
func (h *DataHandler) Mine(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, httpapi.ErrorResponse{Error: "unauthorized"})
		return
	}
	data, err := h.uc.MyData(c.Request.Context(), userID)
	if err != nil {
		slog.Error("my data read failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, httpapi.ErrorResponse{Error: "internal server error"})
		return
	}

	resp := dto.MyDataResponse{
		LastUpdates: syncdto.FromLastUpdates(data.LastUpdates),
		Preferences: dto.PreferencesPayload{Theme: data.Preferences.Theme},
	}
	for category, collection := range data.Collections {
		converted := dto.ToCollection(collection)
		switch category {
		case syncentity.CategoryDiets:
			resp.Diets = converted
		case syncentity.CategoryMeals:
			resp.Meals = converted
		case syncentity.CategoryRecipes:
			resp.Recipes = converted
		case syncentity.CategoryPrograms:
			resp.Programs = converted
		case syncentity.CategoryTrainings:
			resp.Trainings = converted
		}
	}
	c.JSON(http.StatusOK, resp)
}

// Public は共有カタログの全量取得エンドポイントを処理します。
//
// エンドポイント例:
// GET /data/public
func (h *DataHandler) Public(c *gin.Context) {
	data, err := h.uc.PublicData(c.Request.Context())
	if err != nil {
		slog.Error("public data read failed", "error", err)
		c.JSON(http.StatusInternalServerError, httpapi.ErrorResponse{Error: "internal server error"})
		return
	}
	c.JSON(http.StatusOK, dto.PublicDataResponse{
		PublicLastUpdates: syncdto.FromPublic(data.LastUpdates),
		Foods:             data.Foods,
		Exercises:         data.Exercises,
		Muscles:           data.Muscles,
		MuscleGroups:      data.MuscleGroups,
	})
}

// Some は選択取得エンドポイントを処理します。
// dataクエリパラメータの繰り返しで断面を指定します。
//
// エンドポイント例:
// GET /data?data=diets&data=preferences&data=exercises
func (h *DataHandler) Some(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, httpapi.ErrorResponse{Error: "unauthorized"})
		return
	}
	names := c.QueryArray("data")
	if len(names) == 0 {
		c.JSON(http.StatusBadRequest, httpapi.ErrorResponse{Error: "no data selection provided"})
		return
	}
	selection, err := h.uc.SomeData(c.Request.Context(), userID, names)
	if err != nil {
		if errors.Is(err, usecase.ErrUnknownSelection) {
			c.JSON(http.StatusBadRequest, httpapi.ErrorResponse{Error: "unknown data selection"})
			return
		}
		slog.Error("data selection read failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, httpapi.ErrorResponse{Error: "internal server error"})
		return
	}

	resp := dto.SelectionResponse{
		Foods:        selection.Foods,
		Exercises:    selection.Exercises,
		Muscles:      selection.Muscles,
		MuscleGroups: selection.MuscleGroups,
	}
	if selection.Preferences != nil {
		resp.Preferences = &dto.PreferencesPayload{Theme: selection.Preferences.Theme}
	}
	for category, collection := range selection.Collections {
		resp.AssignCollection(category, dto.ToCollection(collection))
	}
	c.JSON(http.StatusOK, resp)
}
