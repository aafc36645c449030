package adapters

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"fitness_backend/internal/feature/sync/domain/entity"
	"fitness_backend/internal/feature/sync/usecase"
)

// catalogClockModel は共有カタログクロックの1カタログ分の行です。
// 元実装では"publicLastUpdates"という既知の名前を持つ単一ドキュメントでしたが、
// カタログごとの行に分割することで、あるカタログへの書き込みが別のカタログの値を
// 古いコピー経由で上書きすることを構造的に防ぎます。
type catalogClockModel struct {
	Name      string `gorm:"primaryKey;size:32"`
	TouchedAt int64  `gorm:"not null"`
}

// TableName はテーブル名を固定します。
func (catalogClockModel) TableName() string { return "catalog_clocks" }

// catalogClockMySQL はCatalogClockRepositoryインターフェースのGORM実装です。
type catalogClockMySQL struct {
	db  *gorm.DB
	now func() time.Time
}

// catalogClockMySQLがCatalogClockRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.CatalogClockRepository = (*catalogClockMySQL)(nil)

// NewCatalogClockMySQL は指定されたgorm.DB接続でcatalogClockMySQLの新しいインスタンスを生成します。
func NewCatalogClockMySQL(db *gorm.DB) *catalogClockMySQL {
	return &catalogClockMySQL{db: db, now: time.Now}
}

// CatalogClockModels はマイグレーション対象のモデルを返します。
func CatalogClockModels() []any {
	return []any{&catalogClockModel{}}
}

// Touch は指定カタログのクロック行だけを単一のUPDATEで進めます。
// 異なるカタログへの同時Touchは互いの値を上書きしません。
func (r *catalogClockMySQL) Touch(ctx context.Context, catalog entity.Catalog) (int64, error) {
	var ts int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		nowMs := r.now().UnixMilli()
		res := tx.Model(&catalogClockModel{}).
			Where("name = ?", string(catalog)).
			Update("touched_at", gorm.Expr("CASE WHEN touched_at >= ? THEN touched_at + 1 ELSE ? END", nowMs, nowMs))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			create := tx.Clauses(clause.OnConflict{DoNothing: true}).
				Create(&catalogClockModel{Name: string(catalog), TouchedAt: nowMs})
			if create.Error != nil {
				return create.Error
			}
			if create.RowsAffected == 0 {
				res = tx.Model(&catalogClockModel{}).
					Where("name = ?", string(catalog)).
					Update("touched_at", gorm.Expr("CASE WHEN touched_at >= ? THEN touched_at + 1 ELSE ? END", nowMs, nowMs))
				if res.Error != nil {
					return res.Error
				}
			}
		}

		var row catalogClockModel
		if err := tx.Where("name = ?", string(catalog)).First(&row).Error; err != nil {
			return err
		}
		ts = row.TouchedAt
		return nil
	})
	if err != nil {
		return 0, err
	}
	return ts, nil
}

// Clocks は4つの共有カタログの現在のクロックを返します。行が存在しないカタログは
// エポックセンチネル（0）のままです。
func (r *catalogClockMySQL) Clocks(ctx context.Context) (entity.PublicLastUpdates, error) {
	var rows []catalogClockModel
	if err := r.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return entity.PublicLastUpdates{}, err
	}
	var clocks entity.PublicLastUpdates
	for _, row := range rows {
		clocks.Set(entity.Catalog(row.Name), row.TouchedAt)
	}
	return clocks, nil
}
