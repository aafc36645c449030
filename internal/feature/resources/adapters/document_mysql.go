// Package adapters はresourcesフィーチャーの永続化実装を提供します。
package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"

	"fitness_backend/internal/feature/resources/domain/entity"
	"fitness_backend/internal/feature/resources/usecase"
	syncentity "fitness_backend/internal/feature/sync/domain/entity"
)

// documentModel はresource_documentsテーブルのGORMモデルです。
// 本文はカテゴリごとにスキーマが異なるため、不透明なJSONとして保存します。
type documentModel struct {
	ID        string    `gorm:"primaryKey;size:64"`
	Category  string    `gorm:"primaryKey;size:32"`
	Body      []byte    `gorm:"type:json;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (documentModel) TableName() string { return "resource_documents" }

func (m *documentModel) toEntity() *entity.Document {
	return &entity.Document{
		ID:        m.ID,
		Category:  syncentity.Category(m.Category),
		Body:      json.RawMessage(m.Body),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// DocumentModels はマイグレーション対象のモデル一覧を返します。
func DocumentModels() []any {
	return []any{&documentModel{}}
}

// documentMySQL はDocumentRepositoryのGORM実装です。
type documentMySQL struct {
	db *gorm.DB
}

// NewDocumentMySQL はdocumentMySQLの新しいインスタンスを生成します。
func NewDocumentMySQL(db *gorm.DB) *documentMySQL {
	return &documentMySQL{db: db}
}

// コンパイル時にインターフェースを満たしているか検証する
var _ usecase.DocumentRepository = (*documentMySQL)(nil)

// Create はドキュメントを保存します。
func (r *documentMySQL) Create(ctx context.Context, doc *entity.Document) error {
	model := documentModel{
		ID:       doc.ID,
		Category: string(doc.Category),
		Body:     []byte(doc.Body),
	}
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return err
	}
	doc.CreatedAt = model.CreatedAt
	doc.UpdatedAt = model.UpdatedAt
	return nil
}

// FindByID はカテゴリ内のIDでドキュメントを取得します。
func (r *documentMySQL) FindByID(ctx context.Context, category syncentity.Category, id string) (*entity.Document, error) {
	var model documentModel
	err := r.db.WithContext(ctx).
		Where("id = ? AND category = ?", id, string(category)).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrDocumentNotFound
		}
		return nil, err
	}
	return model.toEntity(), nil
}

// Update はドキュメント本文を置き換えます。
func (r *documentMySQL) Update(ctx context.Context, category syncentity.Category, id string, body json.RawMessage) error {
	result := r.db.WithContext(ctx).
		Model(&documentModel{}).
		Where("id = ? AND category = ?", id, string(category)).
		Update("body", []byte(body))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return usecase.ErrDocumentNotFound
	}
	return nil
}

// Delete はドキュメントを削除します。対象が存在しなくても成功扱いです。
func (r *documentMySQL) Delete(ctx context.Context, category syncentity.Category, id string) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND category = ?", id, string(category)).
		Delete(&documentModel{}).Error
}

// FindAllByCategory はカテゴリ内の全ドキュメントを作成順で返します。
func (r *documentMySQL) FindAllByCategory(ctx context.Context, category syncentity.Category) ([]entity.Document, error) {
	var models []documentModel
	err := r.db.WithContext(ctx).
		Where("category = ?", string(category)).
		Order("created_at ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	docs := make([]entity.Document, 0, len(models))
	for i := range models {
		docs = append(docs, *models[i].toEntity())
	}
	return docs, nil
}
