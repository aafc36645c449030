// Package entity はfoodvisionフィーチャーのドメインモデルを定義します。
package entity

// DetectedLabel は画像から検出された食品ラベルを表します。
type DetectedLabel struct {
	Name       string  // 検出されたラベル名
	Confidence float32 // 信頼度スコア（0.0 ~ 1.0）
}
