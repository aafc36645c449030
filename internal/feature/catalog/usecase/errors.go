package usecase

import "errors"

var (
	// ErrNotFound はカタログに該当エントリが存在しないことを表します。
	ErrNotFound = errors.New("catalog entry not found")
	// ErrBarcodeAlreadyExists は同じバーコードの食品が既に登録済みであることを表します。
	ErrBarcodeAlreadyExists = errors.New("barcode already exists")
	// ErrMissingBarcode は食品の必須フィールド不足を表します。
	ErrMissingBarcode = errors.New("barcode is required")
	// ErrMissingName は名称の必須フィールド不足を表します。
	ErrMissingName = errors.New("name is required")
)
