// Package adapters はsyncフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"
	"time"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"fitness_backend/internal/feature/sync/domain/entity"
	"fitness_backend/internal/feature/sync/usecase"
)

// ownedReferenceModel は所有リファレンスのGORMモデルです。ユーザードキュメント全体を
// 書き戻す代わりに、(user, category, resource)ごとの行として保持することで、
// 同時リクエスト間の更新消失（lost update）を構造的に防ぎます。
type ownedReferenceModel struct {
	ID         uint   `gorm:"primaryKey"`
	UserID     uint   `gorm:"uniqueIndex:idx_owned_reference,priority:1;not null"`
	Category   string `gorm:"uniqueIndex:idx_owned_reference,priority:2;size:32;not null"`
	ResourceID string `gorm:"uniqueIndex:idx_owned_reference,priority:3;size:64;not null"`
	CreatedAt  time.Time
}

// TableName はテーブル名を固定します。
func (ownedReferenceModel) TableName() string { return "owned_references" }

// syncClockModel は(user, category)ごとのlast-updateクロック行です。
// 値はUnixミリ秒で、行が存在しないカテゴリはエポックセンチネル（0）として扱います。
type syncClockModel struct {
	UserID    uint   `gorm:"primaryKey;autoIncrement:false"`
	Category  string `gorm:"primaryKey;size:32"`
	TouchedAt int64  `gorm:"not null"`
}

// TableName はテーブル名を固定します。
func (syncClockModel) TableName() string { return "sync_clocks" }

// ownershipMySQL はOwnershipRepositoryインターフェースのGORM実装です。
type ownershipMySQL struct {
	db  *gorm.DB
	now func() time.Time
}

// ownershipMySQLがOwnershipRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.OwnershipRepository = (*ownershipMySQL)(nil)

// NewOwnershipMySQL は指定されたgorm.DB接続でownershipMySQLの新しいインスタンスを生成します。
func NewOwnershipMySQL(db *gorm.DB) *ownershipMySQL {
	return &ownershipMySQL{db: db, now: time.Now}
}

// OwnershipModels はマイグレーション対象のモデルを返します。
func OwnershipModels() []any {
	return []any{&ownedReferenceModel{}, &syncClockModel{}}
}

// isDuplicateEntry はMySQLのユニークキー重複（エラー1062）を判定します。
func isDuplicateEntry(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == 1062
}

// touchClock はカテゴリのクロック行を単一のフィールドスコープUPDATEで進めます。
// 新しい値はSQL内で計算されます: 現在値がnow以上なら+1ミリ秒、そうでなければnow。
// これによりクロックは常に単調増加し、同一ミリ秒内の連続更新も観測可能な順序を持ちます。
func touchClock(tx *gorm.DB, userID uint, category string, nowMs int64) (int64, error) {
	res := tx.Model(&syncClockModel{}).
		Where("user_id = ? AND category = ?", userID, category).
		Update("touched_at", gorm.Expr("CASE WHEN touched_at >= ? THEN touched_at + 1 ELSE ? END", nowMs, nowMs))
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		// 初回更新: 行を作成する。同時挿入と競合した場合のみ更新をやり直す。
		create := tx.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&syncClockModel{UserID: userID, Category: category, TouchedAt: nowMs})
		if create.Error != nil {
			return 0, create.Error
		}
		if create.RowsAffected == 0 {
			res = tx.Model(&syncClockModel{}).
				Where("user_id = ? AND category = ?", userID, category).
				Update("touched_at", gorm.Expr("CASE WHEN touched_at >= ? THEN touched_at + 1 ELSE ? END", nowMs, nowMs))
			if res.Error != nil {
				return 0, res.Error
			}
		}
	}

	var row syncClockModel
	if err := tx.Where("user_id = ? AND category = ?", userID, category).First(&row).Error; err != nil {
		return 0, err
	}
	return row.TouchedAt, nil
}

// Owns はユーザーがカテゴリ内でresourceIDを保持しているかを返します。副作用はありません。
func (r *ownershipMySQL) Owns(ctx context.Context, userID uint, category entity.Category, resourceID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&ownedReferenceModel{}).
		Where("user_id = ? AND category = ? AND resource_id = ?", userID, string(category), resourceID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListIDs はコレクションの内容を追加順で返します。
func (r *ownershipMySQL) ListIDs(ctx context.Context, userID uint, category entity.Category) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).Model(&ownedReferenceModel{}).
		Where("user_id = ? AND category = ?", userID, string(category)).
		Order("id ASC").
		Pluck("resource_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// AddAndTouch はリファレンスの追加とクロックの更新を単一トランザクションでコミットします。
// どちらか一方だけが永続化された状態は後続の読み取りから観測できません。
func (r *ownershipMySQL) AddAndTouch(ctx context.Context, userID uint, category entity.Category, resourceID string) (int64, error) {
	var ts int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&ownedReferenceModel{}).
			Where("user_id = ? AND category = ? AND resource_id = ?", userID, string(category), resourceID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return usecase.ErrAlreadyOwned
		}

		ref := ownedReferenceModel{UserID: userID, Category: string(category), ResourceID: resourceID}
		if err := tx.Create(&ref).Error; err != nil {
			// 事前チェックとすれ違った同時追加はユニークインデックスが止める
			if isDuplicateEntry(err) {
				return usecase.ErrAlreadyOwned
			}
			return err
		}

		t, err := touchClock(tx, userID, string(category), r.now().UnixMilli())
		if err != nil {
			return err
		}
		ts = t
		return nil
	})
	if err != nil {
		return 0, err
	}
	return ts, nil
}

// RemoveAndTouch はリファレンスの削除とクロックの更新を単一トランザクションでコミットします。
// リファレンスが存在しない場合はErrNotOwnedを返し、クロックは進みません。
func (r *ownershipMySQL) RemoveAndTouch(ctx context.Context, userID uint, category entity.Category, resourceID string) (int64, error) {
	var ts int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("user_id = ? AND category = ? AND resource_id = ?", userID, string(category), resourceID).
			Delete(&ownedReferenceModel{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return usecase.ErrNotOwned
		}

		t, err := touchClock(tx, userID, string(category), r.now().UnixMilli())
		if err != nil {
			return err
		}
		ts = t
		return nil
	})
	if err != nil {
		return 0, err
	}
	return ts, nil
}

// Touch はコレクションを変更せずにカテゴリのクロックのみを進めます。
func (r *ownershipMySQL) Touch(ctx context.Context, userID uint, category entity.Category) (int64, error) {
	var ts int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		t, err := touchClock(tx, userID, string(category), r.now().UnixMilli())
		if err != nil {
			return err
		}
		ts = t
		return nil
	})
	if err != nil {
		return 0, err
	}
	return ts, nil
}

// Clocks はユーザーの全カテゴリのクロックを返します。行が存在しないカテゴリは
// エポックセンチネル（0）のままです。
func (r *ownershipMySQL) Clocks(ctx context.Context, userID uint) (entity.PrivateLastUpdates, error) {
	var rows []syncClockModel
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&rows).Error; err != nil {
		return entity.PrivateLastUpdates{}, err
	}
	var clocks entity.PrivateLastUpdates
	for _, row := range rows {
		clocks.Set(entity.Category(row.Category), row.TouchedAt)
	}
	return clocks, nil
}
