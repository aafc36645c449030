// Package dto はpreferences HTTP APIのデータ転送オブジェクトを定義します。
package dto

// UpdatePreferencesRequest はテーマ変更リクエストDTOです。
type UpdatePreferencesRequest struct {
	Theme string `json:"theme" binding:"required"`
}

// PreferencesResponse は設定取得レスポンスDTOです。
type PreferencesResponse struct {
	Theme string `json:"theme"`
}

// UpdatedResponse は設定変更レスポンスDTOです。
type UpdatedResponse struct {
	Theme      string `json:"theme"`
	LastUpdate int64  `json:"lastUpdate"`
}
