// Package handler はfoodvisionフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"fitness_backend/internal/feature/foodvision/domain/entity"
	"fitness_backend/internal/feature/foodvision/transport/http/dto"
	"fitness_backend/internal/feature/foodvision/usecase"
	"fitness_backend/internal/shared/httpapi"
)

// FoodVisionUsecase はラベル検出・栄養分析のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type FoodVisionUsecase interface {
	ScanImage(ctx context.Context, imageData []byte) ([]entity.DetectedLabel, error)
	AnalyzeFood(ctx context.Context, foodName string) (*entity.NutritionSummary, error)
}

// FoodVisionHandler はラベル検出・栄養分析のHTTPリクエストを処理します。
type FoodVisionHandler struct {
	uc FoodVisionUsecase
}

// NewFoodVisionHandler はFoodVisionHandlerの新しいインスタンスを生成します。
func NewFoodVisionHandler(uc FoodVisionUsecase) *FoodVisionHandler {
	return &FoodVisionHandler{uc: uc}
}

// ScanImage は画像をアップロードして食品ラベル候補を検出します。
//
// エンドポイント: POST /foods/scan
// Content-Type: multipart/form-data
// フィールド: image（画像ファイル、最大10MB）
func (h *FoodVisionHandler) ScanImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		slog.Warn("画像ファイルの取得に失敗", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, httpapi.ErrorResponse{Error: "image file is required"})
		return
	}

	f, err := file.Open()
	if err != nil {
		slog.Error("画像ファイルのオープンに失敗", "error", err)
		c.JSON(http.StatusInternalServerError, httpapi.ErrorResponse{Error: "failed to read image"})
		return
	}
	defer func() {
		if err := f.Close(); err != nil {
			slog.Warn("画像ファイルのクローズに失敗", "error", err)
		}
	}()

	imageData, err := io.ReadAll(io.LimitReader(f, usecase.MaxImageSize+1))
	if err != nil {
		slog.Error("画像データの読み取りに失敗", "error", err)
		c.JSON(http.StatusInternalServerError, httpapi.ErrorResponse{Error: "failed to read image"})
		return
	}

	labels, err := h.uc.ScanImage(c.Request.Context(), imageData)
	if err != nil {
		if errors.Is(err, usecase.ErrEmptyImage) || errors.Is(err, usecase.ErrImageTooLarge) {
			c.JSON(http.StatusBadRequest, httpapi.ErrorResponse{Error: err.Error()})
			return
		}
		slog.Error("ラベル検出に失敗", "error", err)
		c.JSON(http.StatusBadGateway, httpapi.ErrorResponse{Error: "label detection failed"})
		return
	}

	out := make([]dto.DetectedLabelResponse, 0, len(labels))
	for _, l := range labels {
		out = append(out, dto.DetectedLabelResponse{
			Name:       l.Name,
			Confidence: l.Confidence,
		})
	}
	c.JSON(http.StatusOK, out)
}

// AnalyzeFood は食品名から栄養サマリーを生成します。
//
// エンドポイント: POST /foods/analyze
// Content-Type: application/json
func (h *FoodVisionHandler) AnalyzeFood(c *gin.Context) {
	var req dto.AnalyzeFoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("栄養分析リクエストのバリデーションに失敗", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, httpapi.ErrorResponse{Error: "food name is required"})
		return
	}

	analysis, err := h.uc.AnalyzeFood(c.Request.Context(), req.Name)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidFoodName) {
			c.JSON(http.StatusBadRequest, httpapi.ErrorResponse{Error: err.Error()})
			return
		}
		slog.Error("栄養分析に失敗", "error", err, "food", req.Name)
		c.JSON(http.StatusBadGateway, httpapi.ErrorResponse{Error: "nutrition analysis failed"})
		return
	}

	c.JSON(http.StatusOK, dto.NutritionResponse{
		Name:    analysis.FoodName,
		Summary: analysis.Summary,
	})
}
