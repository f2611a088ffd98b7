package model

import "github.com/shopspring/decimal"

// 売上の明細
// 販売時点の価格を必ず保存。
type SaleItem struct {
	ID       int64           `gorm:"primaryKey;autoIncrement" json:"-"`
	SaleID   int64           `gorm:"not null;index" json:"-"`
	Barcode  string          `gorm:"type:varchar(64);not null" json:"barcode"`
	Name     string          `gorm:"type:varchar(255);not null" json:"name"`
	Price    decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"price"`
	Quantity int64           `gorm:"not null" json:"quantity"`
}
