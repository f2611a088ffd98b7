package repository

import (
	"context"

	"comercio/internal/domain/model"
)

// 売上台帳。追記のみで、更新・削除は提供しない。
type SaleRepository interface {
	// 明細ごと保存して採番されたIDを返す。
	Create(ctx context.Context, s model.Sale) (int64, error)

	FindByID(ctx context.Context, id int64) (model.Sale, error)

	// dateはYYYY-MM-DD。該当なしは空スライス。
	ListByDate(ctx context.Context, date string) ([]model.Sale, error)
	ListAll(ctx context.Context) ([]model.Sale, error)

	// 同じキーなら同じ売上を返す（二重確定防止）。
	FindByIdempotencyKey(ctx context.Context, key string) (model.Sale, bool, error)
}
