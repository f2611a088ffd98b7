package repository

import (
	"context"
	"errors"
	"time"

	"comercio/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

// 一覧検索（name/barcodeの部分一致）
type ProductListQuery struct {
	Q string
}

// 商品の永続化（保存・取得）だけを約束。
type ProductRepository interface {
	List(ctx context.Context, q ProductListQuery) ([]model.Product, error)
	FindByBarcode(ctx context.Context, barcode string) (model.Product, error)

	// 新規なら作成、既存なら置き換え。created_atは既存の値を保持する。
	Upsert(ctx context.Context, p model.Product) error

	// 無ければ何もしない。
	Delete(ctx context.Context, barcode string) error

	// quantity = max(0, quantity + delta)。存在しなければErrNotFound。
	// 同一barcodeへの並行呼び出しで更新が消えないこと。
	AdjustQuantity(ctx context.Context, barcode string, delta int64, now time.Time) (model.Product, error)

	// 売上確定の在庫減算。存在しない商品はスキップできるようfoundを返す。
	DecrementClamped(ctx context.Context, barcode string, qty int64, now time.Time) (bool, error)
}
