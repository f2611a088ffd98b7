package usecase

import (
	"context"
	"net/http"
	"strings"
	"time"

	"comercio/internal/currency"
	"comercio/internal/domain/model"
	"comercio/internal/event"
	repo "comercio/internal/repository"

	"github.com/shopspring/decimal"
)

type CheckoutUsecase struct {
	tx    repo.TransactionManager
	clock Clock
	idGen IDGenerator
	bus   *event.Bus
}

// DI
func NewCheckoutUsecase(tx repo.TransactionManager, clock Clock, idGen IDGenerator, bus *event.Bus) *CheckoutUsecase {
	return &CheckoutUsecase{
		tx:    tx,
		clock: clock,
		idGen: idGen,
		bus:   bus,
	}
}

// カート1行。price/nameは追加時点のスナップショット。
type CartItemInput struct {
	Barcode  string          `json:"barcode"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int64           `json:"quantity"`
}

type ConfirmSaleInput struct {
	Items          []CartItemInput
	IdempotencyKey string
}

type SaleItemOutput struct {
	Barcode  string          `json:"barcode"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int64           `json:"quantity"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

type SaleOutput struct {
	ID             int64            `json:"id"`
	Total          decimal.Decimal  `json:"total"`
	TotalFormatted string           `json:"total_formatted"`
	Date           string           `json:"date"`
	Timestamp      time.Time        `json:"timestamp"`
	Items          []SaleItemOutput `json:"items"`
}

func toSaleOutput(s model.Sale) SaleOutput {
	items := make([]SaleItemOutput, 0, len(s.Items))
	for _, it := range s.Items {
		items = append(items, SaleItemOutput{
			Barcode:  it.Barcode,
			Name:     it.Name,
			Price:    it.Price,
			Quantity: it.Quantity,
			Subtotal: it.Price.Mul(decimal.NewFromInt(it.Quantity)),
		})
	}
	return SaleOutput{
		ID:             s.ID,
		Total:          s.Total,
		TotalFormatted: currency.Format(s.Total),
		Date:           s.Date,
		Timestamp:      s.Timestamp,
		Items:          items,
	}
}

// 売上確定。在庫減算と台帳追記を同一トランザクションで行う。
// 途中で失敗したらどちらも残らない。
func (u *CheckoutUsecase) ConfirmSale(ctx context.Context, in ConfirmSaleInput) (SaleOutput, error) {
	if len(in.Items) == 0 {
		return SaleOutput{}, NewHTTPError(http.StatusBadRequest, "cart empty")
	}
	for _, it := range in.Items {
		if strings.TrimSpace(it.Barcode) == "" {
			return SaleOutput{}, NewHTTPError(http.StatusBadRequest, "invalid barcode")
		}
		if it.Quantity <= 0 {
			return SaleOutput{}, NewHTTPError(http.StatusBadRequest, "invalid quantity")
		}
		if it.Price.IsNegative() {
			return SaleOutput{}, NewHTTPError(http.StatusBadRequest, "invalid price")
		}
	}

	// 同じキーなら同じ結果（再送しても二重計上しない）
	key := strings.TrimSpace(in.IdempotencyKey)
	if len(key) > 255 {
		return SaleOutput{}, NewHTTPError(http.StatusBadRequest, "invalid idempotency_key")
	}
	if key == "" {
		key = u.idGen.NewID()
	}

	var out SaleOutput
	var created bool
	var touched []string

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		existing, found, err := r.Sales().FindByIdempotencyKey(ctx, key)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if found {
			//既存売上を返す
			out = toSaleOutput(existing)
			return nil
		}

		now := u.clock.Now()

		//在庫減算。消えた商品はスキップし、売上にはスナップショットのまま残す。
		items := make([]model.SaleItem, 0, len(in.Items))
		total := decimal.Zero
		for _, it := range in.Items {
			found, err := r.Products().DecrementClamped(ctx, it.Barcode, it.Quantity, now)
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
			if found {
				touched = append(touched, it.Barcode)
			}

			items = append(items, model.SaleItem{
				Barcode:  it.Barcode,
				Name:     it.Name,
				Price:    it.Price,
				Quantity: it.Quantity,
			})
			total = total.Add(it.Price.Mul(decimal.NewFromInt(it.Quantity)))
		}

		sale := model.Sale{
			Total:          total,
			Date:           now.Format(dateLayout),
			Timestamp:      now,
			IdempotencyKey: key,
			Items:          items,
		}

		id, err := r.Sales().Create(ctx, sale)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		sale.ID = id
		out = toSaleOutput(sale)
		created = true
		return nil
	})
	if err != nil {
		return SaleOutput{}, err
	}

	//通知はコミット後。リプレイ時は飛ばさない。
	if created {
		if len(touched) > 0 {
			u.bus.PublishStockUpdated(event.StockUpdated{Barcodes: touched})
		}
		var units int64
		for _, it := range out.Items {
			units += it.Quantity
		}
		u.bus.PublishSaleConfirmed(event.SaleConfirmed{
			SaleID: out.ID,
			Total:  out.Total,
			Units:  units,
			Date:   out.Date,
		})
	}

	return out, nil
}
