package event

import (
	evbus "github.com/asaskevich/EventBus"
	"github.com/shopspring/decimal"
)

const (
	topicStockUpdated  = "stock:updated"
	topicSaleConfirmed = "sale:confirmed"
)

// 在庫が変わったことを知らせる。商品の編集・削除・売上確定の後に飛ぶ。
type StockUpdated struct {
	Barcodes []string
}

// 売上確定の通知
type SaleConfirmed struct {
	SaleID int64
	Total  decimal.Decimal
	Units  int64
	Date   string
}

// EventBusの薄いラッパ。グローバルに持たず、組み立て時に注入する。
// 購読者はSubscribe側で明示的に登録する。
type Bus struct {
	bus evbus.Bus
}

func NewBus() *Bus {
	return &Bus{bus: evbus.New()}
}

func (b *Bus) PublishStockUpdated(e StockUpdated) {
	b.bus.Publish(topicStockUpdated, e)
}

func (b *Bus) SubscribeStockUpdated(fn func(e StockUpdated)) error {
	return b.bus.Subscribe(topicStockUpdated, fn)
}

func (b *Bus) PublishSaleConfirmed(e SaleConfirmed) {
	b.bus.Publish(topicSaleConfirmed, e)
}

func (b *Bus) SubscribeSaleConfirmed(fn func(e SaleConfirmed)) error {
	return b.bus.Subscribe(topicSaleConfirmed, fn)
}
