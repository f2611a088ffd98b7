package repository

import (
	"context"
	"errors"

	"comercio/internal/domain/model"
	repo "comercio/internal/repository"

	"gorm.io/gorm"
)

type SaleGormRepository struct {
	db *gorm.DB
}

// DI
func NewSaleGormRepository(db *gorm.DB) *SaleGormRepository {
	return &SaleGormRepository{db: db}
}

// 明細を投入順で読むためのPreload
func withItems(db *gorm.DB) *gorm.DB {
	return db.Order("id asc")
}

// 売上と明細をまとめて保存してIDを返す。
func (r *SaleGormRepository) Create(ctx context.Context, s model.Sale) (int64, error) {
	if err := r.db.WithContext(ctx).Create(&s).Error; err != nil {
		return 0, err
	}
	return s.ID, nil
}

func (r *SaleGormRepository) FindByID(ctx context.Context, id int64) (model.Sale, error) {
	var s model.Sale
	err := r.db.WithContext(ctx).Preload("Items", withItems).First(&s, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Sale{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Sale{}, err
	}
	return s, nil
}

// 日付インデックスで取得。該当なしは空スライス。
func (r *SaleGormRepository) ListByDate(ctx context.Context, date string) ([]model.Sale, error) {
	var sales []model.Sale
	err := r.db.WithContext(ctx).
		Preload("Items", withItems).
		Where("date = ?", date).
		Order("id asc").
		Find(&sales).Error
	if err != nil {
		return []model.Sale{}, err
	}
	return sales, nil
}

func (r *SaleGormRepository) ListAll(ctx context.Context) ([]model.Sale, error) {
	var sales []model.Sale
	err := r.db.WithContext(ctx).
		Preload("Items", withItems).
		Order("id asc").
		Find(&sales).Error
	if err != nil {
		return []model.Sale{}, err
	}
	return sales, nil
}

// 同じキーなら同じ売上を返す
func (r *SaleGormRepository) FindByIdempotencyKey(ctx context.Context, key string) (model.Sale, bool, error) {
	var s model.Sale
	err := r.db.WithContext(ctx).Preload("Items", withItems).First(&s, "idempotency_key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Sale{}, false, nil
	}
	if err != nil {
		return model.Sale{}, false, err
	}
	return s, true, nil
}
