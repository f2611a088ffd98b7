package usecase

import (
	"context"
	"net/http"
	"sort"
	"time"

	"comercio/internal/currency"
	repo "comercio/internal/repository"

	"github.com/shopspring/decimal"
)

type ReportUsecase struct {
	saleRepo repo.SaleRepository
	clock    Clock
}

// DI
func NewReportUsecase(saleRepo repo.SaleRepository, clock Clock) *ReportUsecase {
	return &ReportUsecase{saleRepo: saleRepo, clock: clock}
}

type ProductSummary struct {
	Barcode           string          `json:"barcode"`
	Name              string          `json:"name"`
	Price             decimal.Decimal `json:"price"`
	UnitsSold         int64           `json:"units_sold"`
	Subtotal          decimal.Decimal `json:"subtotal"`
	SubtotalFormatted string          `json:"subtotal_formatted"`
}

type ReportSummary struct {
	Date                  string           `json:"date"`
	TotalRevenue          decimal.Decimal  `json:"total_revenue"`
	TotalRevenueFormatted string           `json:"total_revenue_formatted"`
	SaleCount             int              `json:"sale_count"`
	TotalUnits            int64            `json:"total_units"`
	PerProduct            []ProductSummary `json:"per_product"`
}

// その日の売上を商品別に畳み込む。売上ゼロの日も正常（全部ゼロ）。
// dateが空なら今日。
func (u *ReportUsecase) Daily(ctx context.Context, date string) (ReportSummary, error) {
	if date == "" {
		date = u.clock.Now().Format(dateLayout)
	} else if _, err := time.Parse(dateLayout, date); err != nil {
		return ReportSummary{}, NewHTTPError(http.StatusBadRequest, "invalid date")
	}

	sales, err := u.saleRepo.ListByDate(ctx, date)
	if err != nil {
		return ReportSummary{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	totalRevenue := decimal.Zero
	var totalUnits int64

	//barcode -> rowsの添字。rowsは初出順を保つ。
	idx := make(map[string]int)
	rows := []ProductSummary{}

	for _, s := range sales {
		totalRevenue = totalRevenue.Add(s.Total)
		for _, it := range s.Items {
			totalUnits += it.Quantity

			i, ok := idx[it.Barcode]
			if !ok {
				i = len(rows)
				idx[it.Barcode] = i
				rows = append(rows, ProductSummary{
					Barcode:  it.Barcode,
					Subtotal: decimal.Zero,
				})
			}

			//name/priceは最後に見たスナップショット
			rows[i].Name = it.Name
			rows[i].Price = it.Price
			rows[i].UnitsSold += it.Quantity
			rows[i].Subtotal = rows[i].Subtotal.Add(it.Price.Mul(decimal.NewFromInt(it.Quantity)))
		}
	}

	//小計の降順。同額は初出順のまま。
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Subtotal.GreaterThan(rows[j].Subtotal)
	})

	for i := range rows {
		rows[i].SubtotalFormatted = currency.Format(rows[i].Subtotal)
	}

	return ReportSummary{
		Date:                  date,
		TotalRevenue:          totalRevenue,
		TotalRevenueFormatted: currency.Format(totalRevenue),
		SaleCount:             len(sales),
		TotalUnits:            totalUnits,
		PerProduct:            rows,
	}, nil
}
