// Package usecase はresourcesフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"fitness_backend/internal/feature/resources/domain/entity"
	syncentity "fitness_backend/internal/feature/sync/domain/entity"
)

// DocumentRepository はリソースドキュメントの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type DocumentRepository interface {
	// Create は新しいドキュメントをストレージに永続化します。
	Create(ctx context.Context, doc *entity.Document) error

	// FindByID はカテゴリ内のIDでドキュメントを取得します。
	// 存在しない場合、ErrDocumentNotFoundを返します。
	FindByID(ctx context.Context, category syncentity.Category, id string) (*entity.Document, error)

	// Update はドキュメントの本文を置き換えます。
	// 存在しない場合、ErrDocumentNotFoundを返します。
	Update(ctx context.Context, category syncentity.Category, id string, body json.RawMessage) error

	// Delete はドキュメントを削除します。存在しない場合もエラーにしません。
	Delete(ctx context.Context, category syncentity.Category, id string) error

	// FindAllByCategory はカテゴリ内の全ドキュメントを返します（管理者用）。
	FindAllByCategory(ctx context.Context, category syncentity.Category) ([]entity.Document, error)
}

// SyncService は所有権ガード・変更プロトコル・クロックへの窓口を抽象化します。
// 実装はsyncフィーチャーのusecaseです。
type SyncService interface {
	// Owns はユーザーがカテゴリ内でリソースを所有しているかを判定します。
	Owns(ctx context.Context, userID uint, category syncentity.Category, resourceID string) (bool, error)

	// Own は所有リファレンスを記録し、カテゴリのクロックを更新して新しいタイムスタンプを返します。
	Own(ctx context.Context, userID uint, category syncentity.Category, resourceID string) (int64, error)

	// Disown は所有リファレンスを取り除き、カテゴリのクロックを更新して新しいタイムスタンプを返します。
	Disown(ctx context.Context, userID uint, category syncentity.Category, resourceID string) (int64, error)

	// TouchCategory はコレクションを変更せずにカテゴリのクロックのみを更新します。
	TouchCategory(ctx context.Context, userID uint, category syncentity.Category) (int64, error)

	// OwnedIDs はユーザーが保持しているリソースIDを追加順で返します。
	OwnedIDs(ctx context.Context, userID uint, category syncentity.Category) ([]string, error)

	// PrivateLastUpdates はユーザーのカテゴリ別クロックを返します。
	PrivateLastUpdates(ctx context.Context, userID uint) (syncentity.PrivateLastUpdates, error)
}

// CreatedResource は作成操作の結果です。クライアントが追加の読み取りなしで
// 同期カーソルを進められるよう、新しいIDとカテゴリのタイムスタンプを常に対で返します。
type CreatedResource struct {
	ID         string
	LastUpdate int64
}

// OwnedCollection は1カテゴリ分の解決済みドキュメントとクロックのスナップショットです。
// Droppedは解決できなかった（対象が削除済みの）リファレンスの数です。
type OwnedCollection struct {
	Documents  []entity.Document
	LastUpdate int64
	Dropped    int
}

// resourcesUsecase は所有カテゴリに対する統一CRUDを実装します。
type resourcesUsecase struct {
	docs DocumentRepository
	sync SyncService
}

// NewResourcesUsecase はresourcesUsecaseの新しいインスタンスを生成します。
func NewResourcesUsecase(docs DocumentRepository, sync SyncService) *resourcesUsecase {
	return &resourcesUsecase{docs: docs, sync: sync}
}

// validateBody はドキュメント本文がJSONオブジェクトであることを検証します。
func validateBody(body json.RawMessage) error {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' || !json.Valid(trimmed) {
		return ErrInvalidBody
	}
	return nil
}

// Create はドキュメントを作成し、所有リファレンスを記録します。
// ドキュメント本体の作成が先、所有権の記録（コレクション追加＋クロック更新、
// 単一トランザクション）が後です。
func (u *resourcesUsecase) Create(ctx context.Context, userID uint, category syncentity.Category, body json.RawMessage) (*CreatedResource, error) {
	if err := validateBody(body); err != nil {
		return nil, err
	}

	doc := &entity.Document{
		ID:       uuid.NewString(),
		Category: category,
		Body:     body,
	}
	if err := u.docs.Create(ctx, doc); err != nil {
		return nil, err
	}

	ts, err := u.sync.Own(ctx, userID, category, doc.ID)
	if err != nil {
		return nil, err
	}
	return &CreatedResource{ID: doc.ID, LastUpdate: ts}, nil
}

// Get は所有チェック済みの単一ドキュメント読み取りです。
// 所有していない場合はErrNotOwner、所有しているのにドキュメントが存在しない場合は
// ErrDocumentNotFoundを返します。所有チェックが先です。
func (u *resourcesUsecase) Get(ctx context.Context, userID uint, category syncentity.Category, id string) (*entity.Document, error) {
	owned, err := u.sync.Owns(ctx, userID, category, id)
	if err != nil {
		return nil, err
	}
	if !owned {
		return nil, ErrNotOwner
	}
	return u.docs.FindByID(ctx, category, id)
}

// Update はドキュメント本文を置き換え、カテゴリのクロックを更新します。
// 所有権に変化はないため、コレクションには触れません。
func (u *resourcesUsecase) Update(ctx context.Context, userID uint, category syncentity.Category, id string, body json.RawMessage) (int64, error) {
	if err := validateBody(body); err != nil {
		return 0, err
	}

	owned, err := u.sync.Owns(ctx, userID, category, id)
	if err != nil {
		return 0, err
	}
	if !owned {
		return 0, ErrNotOwner
	}

	if err := u.docs.Update(ctx, category, id, body); err != nil {
		return 0, err
	}

	// 論理的な変更1回につきクロック更新はちょうど1回
	return u.sync.TouchCategory(ctx, userID, category)
}

// Delete は所有リファレンスを取り除いてからドキュメントを削除します。
// リファレンスの削除とクロックの更新は単一トランザクションでコミットされるため、
// ドキュメント削除が失敗しても半端な所有状態は残りません（残った本体は
// 読み取りパスの孤児トレランスが吸収します）。
func (u *resourcesUsecase) Delete(ctx context.Context, userID uint, category syncentity.Category, id string) (int64, error) {
	owned, err := u.sync.Owns(ctx, userID, category, id)
	if err != nil {
		return 0, err
	}
	if !owned {
		return 0, ErrNotOwner
	}

	ts, err := u.sync.Disown(ctx, userID, category, id)
	if err != nil {
		return 0, err
	}

	if err := u.docs.Delete(ctx, category, id); err != nil {
		return 0, err
	}
	return ts, nil
}

// Mine はユーザーの所有ドキュメントを追加順で解決して返します。
// 解決できないリファレンス（対象が削除済み）はエラーにせずスキップし、
// 件数を記録します。
func (u *resourcesUsecase) Mine(ctx context.Context, userID uint, category syncentity.Category) (*OwnedCollection, error) {
	ids, err := u.sync.OwnedIDs(ctx, userID, category)
	if err != nil {
		return nil, err
	}

	collection := &OwnedCollection{Documents: make([]entity.Document, 0, len(ids))}
	for _, id := range ids {
		doc, err := u.docs.FindByID(ctx, category, id)
		if err != nil {
			if errors.Is(err, ErrDocumentNotFound) {
				collection.Dropped++
				continue
			}
			return nil, err
		}
		collection.Documents = append(collection.Documents, *doc)
	}

	if collection.Dropped > 0 {
		slog.Warn("stale resource references skipped",
			"user_id", userID, "category", string(category), "dropped", collection.Dropped)
	}

	clocks, err := u.sync.PrivateLastUpdates(ctx, userID)
	if err != nil {
		return nil, err
	}
	collection.LastUpdate = clocks.Get(category)
	return collection, nil
}

// All はカテゴリ内の全ドキュメントを返します（管理者用）。
func (u *resourcesUsecase) All(ctx context.Context, category syncentity.Category) ([]entity.Document, error) {
	return u.docs.FindAllByCategory(ctx, category)
}

// Snapshot は要求されたカテゴリ（未指定なら全カテゴリ）の所有ドキュメントを
// まとめて解決します。
func (u *resourcesUsecase) Snapshot(ctx context.Context, userID uint, categories []syncentity.Category) (map[syncentity.Category]*OwnedCollection, error) {
	if len(categories) == 0 {
		categories = syncentity.OwnedCategories()
	}

	snapshot := make(map[syncentity.Category]*OwnedCollection, len(categories))
	for _, category := range categories {
		collection, err := u.Mine(ctx, userID, category)
		if err != nil {
			return nil, err
		}
		snapshot[category] = collection
	}
	return snapshot, nil
}
