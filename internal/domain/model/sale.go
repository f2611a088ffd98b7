package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// 売上は追記専用。作成後に更新・削除されることはない。
type Sale struct {
	ID             int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	Total          decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"total"`
	Date           string          `gorm:"type:varchar(10);not null;index" json:"date"`
	Timestamp      time.Time       `gorm:"not null;index" json:"timestamp"`
	IdempotencyKey string          `gorm:"type:varchar(255);not null;uniqueIndex" json:"-"`
	Items          []SaleItem      `gorm:"foreignKey:SaleID" json:"items"`
}
