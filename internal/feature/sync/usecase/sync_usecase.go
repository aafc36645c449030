// Package usecase はsyncフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"strings"

	"fitness_backend/internal/feature/sync/domain/entity"
)

// OwnershipRepository はユーザーの所有リファレンスとカテゴリ別クロックの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
//
// 追加・削除・タッチの各操作は、コレクションの変更とクロックの更新を
// 単一のトランザクションでコミットしなければなりません（部分適用された状態を
// 後続の読み取りから観測できてはならない）。
type OwnershipRepository interface {
	// Owns はユーザーが指定カテゴリのコレクションにresourceIDを保持しているかを返します。
	Owns(ctx context.Context, userID uint, category entity.Category, resourceID string) (bool, error)

	// ListIDs はコレクションの内容を追加順で返します。
	ListIDs(ctx context.Context, userID uint, category entity.Category) ([]string, error)

	// AddAndTouch はresourceIDをコレクションに追加し、同一トランザクション内で
	// カテゴリのクロックを更新して新しいタイムスタンプを返します。
	// 既に保持している場合はErrAlreadyOwnedを返します。
	AddAndTouch(ctx context.Context, userID uint, category entity.Category, resourceID string) (int64, error)

	// RemoveAndTouch はresourceIDをコレクションから取り除き、同一トランザクション内で
	// カテゴリのクロックを更新して新しいタイムスタンプを返します。
	// 保持していない場合はErrNotOwnedを返します。
	RemoveAndTouch(ctx context.Context, userID uint, category entity.Category, resourceID string) (int64, error)

	// Touch はコレクションを変更せずにカテゴリのクロックのみを更新します（内容のみの変更用）。
	Touch(ctx context.Context, userID uint, category entity.Category) (int64, error)

	// Clocks はユーザーの全カテゴリのクロックを返します。未更新のカテゴリは
	// エポックセンチネル（0）として報告されます。
	Clocks(ctx context.Context, userID uint) (entity.PrivateLastUpdates, error)
}

// CatalogClockRepository は共有カタログクロック（プロセス全体のシングルトン）の永続化層を抽象化します。
// 更新はフィールドスコープでなければなりません。あるカタログへの書き込みが、
// 古いインメモリコピー経由で別のカタログの値を上書きしてはなりません。
type CatalogClockRepository interface {
	// Touch は指定カタログのクロックを更新し、新しいタイムスタンプを返します。
	Touch(ctx context.Context, catalog entity.Catalog) (int64, error)

	// Clocks は4つの共有カタログの現在のクロックを返します。純粋な読み取りです。
	Clocks(ctx context.Context) (entity.PublicLastUpdates, error)
}

// syncUsecase は所有権ガード・変更プロトコル・同期読み取りパスを提供します。
type syncUsecase struct {
	owned   OwnershipRepository
	catalog CatalogClockRepository
}

// NewSyncUsecase はsyncUsecaseの新しいインスタンスを生成します。
func NewSyncUsecase(owned OwnershipRepository, catalog CatalogClockRepository) *syncUsecase {
	return &syncUsecase{owned: owned, catalog: catalog}
}

// canonicalID は比較に使う正規形のリソースIDを返します。リソースIDはワイヤ上では
// 文字列として届くため、両辺を同じ表現に正規化してから等価比較します。
func canonicalID(resourceID string) string {
	return strings.TrimSpace(resourceID)
}

// Owns はユーザーがカテゴリ内でリソースを所有しているかを判定します。
// 不正・未知のリソースIDや空のコレクションに対しては常にfalseを返し、エラーにはしません。
func (u *syncUsecase) Owns(ctx context.Context, userID uint, category entity.Category, resourceID string) (bool, error) {
	id := canonicalID(resourceID)
	if id == "" {
		return false, nil
	}
	return u.owned.Owns(ctx, userID, category, id)
}

// Own はリソースのリファレンスをユーザーのコレクションに記録し、カテゴリの
// クロックを更新して新しいタイムスタンプを返します。リソース本体は呼び出し前に
// 作成済みでなければなりません。Ownは所有権を記録するだけで、リソースを作成しません。
func (u *syncUsecase) Own(ctx context.Context, userID uint, category entity.Category, resourceID string) (int64, error) {
	id := canonicalID(resourceID)
	if id == "" {
		return 0, ErrInvalidResourceID
	}
	return u.owned.AddAndTouch(ctx, userID, category, id)
}

// Disown はリソースのリファレンスをコレクションから取り除き、カテゴリの
// クロックを更新して新しいタイムスタンプを返します。
func (u *syncUsecase) Disown(ctx context.Context, userID uint, category entity.Category, resourceID string) (int64, error) {
	id := canonicalID(resourceID)
	if id == "" {
		return 0, ErrInvalidResourceID
	}
	return u.owned.RemoveAndTouch(ctx, userID, category, id)
}

// TouchCategory はコレクションを変更せずにカテゴリのクロックのみを更新します。
// リソース本体の内容変更（所有権に変化がない場合）の後に、論理的な変更1回につき
// ちょうど1回呼び出します。
func (u *syncUsecase) TouchCategory(ctx context.Context, userID uint, category entity.Category) (int64, error) {
	return u.owned.Touch(ctx, userID, category)
}

// OwnedIDs はユーザーが指定カテゴリで保持しているリソースIDを追加順で返します。
func (u *syncUsecase) OwnedIDs(ctx context.Context, userID uint, category entity.Category) ([]string, error) {
	return u.owned.ListIDs(ctx, userID, category)
}

// TouchCatalog は共有カタログのクロックを更新し、新しいタイムスタンプを返します。
func (u *syncUsecase) TouchCatalog(ctx context.Context, catalog entity.Catalog) (int64, error) {
	return u.catalog.Touch(ctx, catalog)
}

// PrivateLastUpdates はユーザーのカテゴリ別クロックを返します。副作用はありません。
func (u *syncUsecase) PrivateLastUpdates(ctx context.Context, userID uint) (entity.PrivateLastUpdates, error) {
	return u.owned.Clocks(ctx, userID)
}

// PublicLastUpdates は共有カタログのクロックを返します。副作用はありません。
func (u *syncUsecase) PublicLastUpdates(ctx context.Context) (entity.PublicLastUpdates, error) {
	return u.catalog.Clocks(ctx)
}

// LastUpdates はユーザーのカテゴリ別クロックと共有カタログクロックをマージして返します。
// 純粋な読み取りで、どのクロックも進めません。
func (u *syncUsecase) LastUpdates(ctx context.Context, userID uint) (entity.LastUpdates, error) {
	private, err := u.owned.Clocks(ctx, userID)
	if err != nil {
		return entity.LastUpdates{}, err
	}
	public, err := u.catalog.Clocks(ctx)
	if err != nil {
		return entity.LastUpdates{}, err
	}
	return entity.LastUpdates{Private: private, Public: public}, nil
}
