// Package dto はresources HTTP APIのデータ転送オブジェクトを定義します。
package dto

import "encoding/json"

// ResourceResponse は単一ドキュメントのレスポンスDTOです。
// 本文はカテゴリごとにスキーマが異なるため、そのまま透過します。
type ResourceResponse struct {
	ID   string          `json:"id"`
	Body json.RawMessage `json:"body"`
}

// CreatedResponse は作成操作のレスポンスDTOです。
// クライアントは返されたタイムスタンプで同期カーソルを進めます。
type CreatedResponse struct {
	ID         string `json:"id"`
	LastUpdate int64  `json:"lastUpdate"`
}

// MutatedResponse は更新・削除操作のレスポンスDTOです。
type MutatedResponse struct {
	ID         string `json:"id"`
	LastUpdate int64  `json:"lastUpdate"`
}

// CollectionResponse は所有コレクション1カテゴリ分のレスポンスDTOです。
type CollectionResponse struct {
	Resources  []ResourceResponse `json:"resources"`
	LastUpdate int64              `json:"lastUpdate"`
	Dropped    int                `json:"dropped,omitempty"`
}
