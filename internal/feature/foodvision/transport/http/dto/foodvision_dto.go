// Package dto はfoodvisionフィーチャーのHTTPリクエスト/レスポンス型を定義します。
package dto

// DetectedLabelResponse は検出された食品ラベル1件のレスポンスです。
type DetectedLabelResponse struct {
	Name       string  `json:"name"`
	Confidence float32 `json:"confidence"`
}

// AnalyzeFoodRequest は栄養分析リクエストのボディです。
type AnalyzeFoodRequest struct {
	Name string `json:"name" binding:"required"`
}

// NutritionResponse は栄養分析結果のレスポンスです。
type NutritionResponse struct {
	Name    string `json:"name"`
	Summary string `json:"summary"`
}
