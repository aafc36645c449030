// Package usecase はfoodvisionフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"unicode/utf8"

	"fitness_backend/internal/feature/foodvision/domain/entity"
)

const (
	// MaxImageSize は画像アップロードの最大サイズ（10MB）です。
	MaxImageSize = 10 * 1024 * 1024
	// NutritionPromptTemplate は栄養分析のプロンプトテンプレートです。
	NutritionPromptTemplate = "As a nutritionist, give a concise nutritional summary of %s: typical macronutrients per 100g and two practical health notes."
	// MaxFoodNameLength は食品名の最大文字数（rune数）です。
	MaxFoodNameLength = 100
)

var (
	// ErrEmptyImage は画像データが空の場合に返されます。
	ErrEmptyImage = errors.New("image data is empty")

	// ErrImageTooLarge は画像がMaxImageSizeを超える場合に返されます。
	ErrImageTooLarge = errors.New("image size exceeds maximum")

	// ErrInvalidFoodName は食品名が空、長すぎる、または不正な文字を含む場合に返されます。
	ErrInvalidFoodName = errors.New("invalid food name")
)

// validFoodName は食品名に許可される文字パターンです（文字・数字・スペース・一般的な区切り記号）。
var validFoodName = regexp.MustCompile(`^[\p{L}\p{N}\s'\-\.&,%()]+$`)

// LabelDetector は画像から食品ラベルを検出するリポジトリインターフェースです。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type LabelDetector interface {
	// DetectLabels は画像バイト列から食品ラベルを検出し、検出結果を返します。
	DetectLabels(ctx context.Context, imageData []byte) ([]entity.DetectedLabel, error)
}

// NutritionAnalyzer は栄養サマリーを生成するリポジトリインターフェースです。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type NutritionAnalyzer interface {
	// Analyze はプロンプトから栄養サマリーを生成します。
	Analyze(ctx context.Context, prompt string) (string, error)
}

// Pacer は外部APIの呼び出し頻度を制御します。
type Pacer interface {
	WaitIfNeeded()
}

// foodvisionUsecase はラベル検出・栄養分析のビジネスロジックを提供します。
// 外部API（Vision / Gemini）の呼び出しはpacerでクォータ保護されます。
type foodvisionUsecase struct {
	labelDetector     LabelDetector
	nutritionAnalyzer NutritionAnalyzer
	pacer             Pacer
}

// NewFoodVisionUsecase はfoodvisionUsecaseの新しいインスタンスを生成します。
func NewFoodVisionUsecase(ld LabelDetector, na NutritionAnalyzer, pacer Pacer) *foodvisionUsecase {
	return &foodvisionUsecase{labelDetector: ld, nutritionAnalyzer: na, pacer: pacer}
}

// ScanImage は画像データから食品ラベル候補を検出します。
func (u *foodvisionUsecase) ScanImage(ctx context.Context, imageData []byte) ([]entity.DetectedLabel, error) {
	if len(imageData) == 0 {
		return nil, ErrEmptyImage
	}
	if len(imageData) > MaxImageSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrImageTooLarge, len(imageData))
	}
	u.pacer.WaitIfNeeded()
	return u.labelDetector.DetectLabels(ctx, imageData)
}

// AnalyzeFood は食品名から栄養サマリーを生成します。
func (u *foodvisionUsecase) AnalyzeFood(ctx context.Context, foodName string) (*entity.NutritionSummary, error) {
	if foodName == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidFoodName)
	}
	if utf8.RuneCountInString(foodName) > MaxFoodNameLength {
		return nil, fmt.Errorf("%w: name exceeds %d characters", ErrInvalidFoodName, MaxFoodNameLength)
	}
	if !validFoodName.MatchString(foodName) {
		return nil, fmt.Errorf("%w: name contains invalid characters", ErrInvalidFoodName)
	}
	prompt := fmt.Sprintf(NutritionPromptTemplate, foodName)
	u.pacer.WaitIfNeeded()
	summary, err := u.nutritionAnalyzer.Analyze(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("nutrition analyzer failed for %q: %w", foodName, err)
	}
	return &entity.NutritionSummary{
		FoodName: foodName,
		Summary:  summary,
	}, nil
}
