package usecase

import (
	"context"

	"fitness_backend/internal/feature/catalog/domain/entity"
	syncentity "fitness_backend/internal/feature/sync/domain/entity"
)

// ListFoods は食品カタログ全体を返します。
func (u *catalogUsecase) ListFoods(ctx context.Context) ([]entity.Food, error) {
	return u.foods.FindAll(ctx)
}

// GetFood はIDで食品を取得します。
func (u *catalogUsecase) GetFood(ctx context.Context, id uint) (*entity.Food, error) {
	return u.foods.FindByID(ctx, id)
}

// GetFoodByBarcode はバーコードで食品を取得します。
func (u *catalogUsecase) GetFoodByBarcode(ctx context.Context, barcode string) (*entity.Food, error) {
	return u.foods.FindByBarcode(ctx, barcode)
}

// CreateFood は食品を登録し、foodsクロックを更新します。
// 書き込みとクロック更新のタイムスタンプを対で返すことで、
// クライアントは追加の読み取りなしで同期カーソルを進められます。
func (u *catalogUsecase) CreateFood(ctx context.Context, food *entity.Food) (int64, error) {
	if err := validateFood(food); err != nil {
		return 0, err
	}
	if err := u.foods.Create(ctx, food); err != nil {
		return 0, err
	}
	return u.clock.TouchCatalog(ctx, syncentity.CatalogFoods)
}

// UpdateFood は食品を更新し、foodsクロックを更新します。
func (u *catalogUsecase) UpdateFood(ctx context.Context, food *entity.Food) (int64, error) {
	if err := validateFood(food); err != nil {
		return 0, err
	}
	if err := u.foods.Update(ctx, food); err != nil {
		return 0, err
	}
	return u.clock.TouchCatalog(ctx, syncentity.CatalogFoods)
}

// DeleteFood は食品を削除し、foodsクロックを更新します。
// 対象が存在しなくてもクロックは更新されます。
func (u *catalogUsecase) DeleteFood(ctx context.Context, id uint) (int64, error) {
	if err := u.foods.Delete(ctx, id); err != nil {
		return 0, err
	}
	return u.clock.TouchCatalog(ctx, syncentity.CatalogFoods)
}
