// Package adapters はcatalogフィーチャーの永続化実装を提供します。
package adapters

import (
	"context"
	"errors"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"fitness_backend/internal/feature/catalog/domain/entity"
	"fitness_backend/internal/feature/catalog/usecase"
)

// CatalogModels はマイグレーション対象のモデル一覧を返します。
func CatalogModels() []any {
	return []any{
		&entity.Food{},
		&entity.Exercise{},
		&entity.Muscle{},
		&entity.MuscleGroup{},
	}
}

// isDuplicateEntry はMySQLのユニークキー重複（エラー1062）を判定します。
func isDuplicateEntry(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == 1062
}

// foodMySQL はFoodRepositoryのGORM実装です。
type foodMySQL struct {
	db *gorm.DB
}

// NewFoodMySQL はfoodMySQLの新しいインスタンスを生成します。
func NewFoodMySQL(db *gorm.DB) *foodMySQL {
	return &foodMySQL{db: db}
}

// コンパイル時にインターフェースを満たしているか検証する
var _ usecase.FoodRepository = (*foodMySQL)(nil)

// FindAll は登録済みの全食品を返します。
func (r *foodMySQL) FindAll(ctx context.Context) ([]entity.Food, error) {
	var foods []entity.Food
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&foods).Error; err != nil {
		return nil, err
	}
	return foods, nil
}

// FindByID はIDで食品を取得します。
func (r *foodMySQL) FindByID(ctx context.Context, id uint) (*entity.Food, error) {
	var food entity.Food
	if err := r.db.WithContext(ctx).First(&food, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrNotFound
		}
		return nil, err
	}
	return &food, nil
}

// FindByBarcode はバーコードで食品を取得します。
func (r *foodMySQL) FindByBarcode(ctx context.Context, barcode string) (*entity.Food, error) {
	var food entity.Food
	err := r.db.WithContext(ctx).Where("barcode = ?", barcode).First(&food).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrNotFound
		}
		return nil, err
	}
	return &food, nil
}

// Create は食品を保存します。バーコード重複時はErrBarcodeAlreadyExistsを返します。
func (r *foodMySQL) Create(ctx context.Context, food *entity.Food) error {
	if err := r.db.WithContext(ctx).Create(food).Error; err != nil {
		if isDuplicateEntry(err) || errors.Is(err, gorm.ErrDuplicatedKey) {
			return usecase.ErrBarcodeAlreadyExists
		}
		return err
	}
	return nil
}

// Update は食品の全フィールドを置き換えます。
func (r *foodMySQL) Update(ctx context.Context, food *entity.Food) error {
	result := r.db.WithContext(ctx).Model(&entity.Food{}).
		Where("id = ?", food.ID).
		Select("*").Omit("id", "created_at").
		Updates(food)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return usecase.ErrNotFound
	}
	return nil
}

// Delete は食品を削除します。対象が存在しなくても成功扱いです。
func (r *foodMySQL) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&entity.Food{}, id).Error
}
