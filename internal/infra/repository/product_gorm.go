package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"comercio/internal/domain/model"
	repo "comercio/internal/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProductGormRepository struct {
	db *gorm.DB
}

// DI
func NewProductGormRepository(db *gorm.DB) *ProductGormRepository {
	return &ProductGormRepository{db: db}
}

// 全商品を返す。qがあればname/barcodeの部分一致で絞る。
func (r *ProductGormRepository) List(ctx context.Context, q repo.ProductListQuery) ([]model.Product, error) {
	var products []model.Product

	tx := r.db.WithContext(ctx).Model(&model.Product{})

	if s := strings.TrimSpace(q.Q); s != "" {
		like := "%" + s + "%"
		tx = tx.Where("name ILIKE ? OR barcode ILIKE ?", like, like)
	}

	if err := tx.Order("created_at asc").Order("barcode asc").Find(&products).Error; err != nil {
		return []model.Product{}, err
	}
	return products, nil
}

// バーコードで商品を取得
func (r *ProductGormRepository) FindByBarcode(ctx context.Context, barcode string) (model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).First(&p, "barcode = ?", barcode).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Product{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Product{}, err
	}
	return p, nil
}

// 新規なら作成、既存なら置き換え。
// 衝突時の更新カラムにcreated_atを含めないことで元の作成時刻を守る。
func (r *ProductGormRepository) Upsert(ctx context.Context, p model.Product) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "barcode"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "price", "quantity", "photo", "updated_at"}),
	}).Create(&p).Error
}

// 商品削除。無ければ何もしない。
func (r *ProductGormRepository) Delete(ctx context.Context, barcode string) error {
	return r.db.WithContext(ctx).Delete(&model.Product{}, "barcode = ?", barcode).Error
}

// quantityをmax(0, quantity+delta)へ。1文のUPDATEなので並行呼び出しでも更新は消えない。
func (r *ProductGormRepository) AdjustQuantity(ctx context.Context, barcode string, delta int64, now time.Time) (model.Product, error) {
	res := r.db.WithContext(ctx).Model(&model.Product{}).
		Where("barcode = ?", barcode).
		Updates(map[string]interface{}{
			"quantity":   gorm.Expr("GREATEST(0, quantity + ?)", delta),
			"updated_at": now,
		})
	if res.Error != nil {
		return model.Product{}, res.Error
	}
	if res.RowsAffected == 0 {
		return model.Product{}, repo.ErrNotFound
	}
	return r.FindByBarcode(ctx, barcode)
}

// 売上確定の在庫減算。0で止める。存在しなければfalse（呼び出し側でスキップ）。
func (r *ProductGormRepository) DecrementClamped(ctx context.Context, barcode string, qty int64, now time.Time) (bool, error) {
	res := r.db.WithContext(ctx).Model(&model.Product{}).
		Where("barcode = ?", barcode).
		Updates(map[string]interface{}{
			"quantity":   gorm.Expr("GREATEST(0, quantity - ?)", qty),
			"updated_at": now,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
