package entity

// NutritionSummary は食品の栄養分析結果を表します。
type NutritionSummary struct {
	FoodName string // 分析対象の食品名
	Summary  string // AI生成の栄養サマリー
}
