package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// barcodeが主キー。quantityは0未満にならない。
type Product struct {
	Barcode   string          `gorm:"type:varchar(64);primaryKey" json:"barcode"`
	Name      string          `gorm:"type:varchar(255);not null;index" json:"name"`
	Price     decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"price"`
	Quantity  int64           `gorm:"not null" json:"quantity"`
	Photo     string          `gorm:"type:text" json:"photo,omitempty"`
	CreatedAt time.Time       `gorm:"not null;index" json:"created_at"`
	UpdatedAt time.Time       `gorm:"not null" json:"updated_at"`
}
