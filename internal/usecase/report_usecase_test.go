package usecase_test

import (
	"context"
	"testing"

	"comercio/internal/domain/model"
	"comercio/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestReportDaily_InvalidDate(t *testing.T) {
	uc := usecase.NewReportUsecase(new(SaleRepoMock), fixedClock{t: testNow})

	_, err := uc.Daily(context.Background(), "10-03-2025")
	assertErrContains(t, err, "invalid date")
}

// date未指定は今日として扱う
func TestReportDaily_DefaultsToToday(t *testing.T) {
	sRepo := new(SaleRepoMock)
	uc := usecase.NewReportUsecase(sRepo, fixedClock{t: testNow})

	sRepo.On("ListByDate", mock.Anything, "2025-03-10").Return([]model.Sale{}, nil)

	out, err := uc.Daily(context.Background(), "")
	assert.NoError(t, err)
	assert.Equal(t, "2025-03-10", out.Date)
	sRepo.AssertExpectations(t)
}

// 売上ゼロの日は全部ゼロの正常レスポンス
func TestReportDaily_EmptyDay(t *testing.T) {
	sRepo := new(SaleRepoMock)
	uc := usecase.NewReportUsecase(sRepo, fixedClock{t: testNow})

	sRepo.On("ListByDate", mock.Anything, "2025-03-09").Return([]model.Sale{}, nil)

	out, err := uc.Daily(context.Background(), "2025-03-09")
	assert.NoError(t, err)
	assert.True(t, out.TotalRevenue.IsZero())
	assert.Equal(t, 0, out.SaleCount)
	assert.Equal(t, int64(0), out.TotalUnits)
	assert.Empty(t, out.PerProduct)
	assert.NotNil(t, out.PerProduct)
}

func TestReportDaily_SingleSale(t *testing.T) {
	sRepo := new(SaleRepoMock)
	uc := usecase.NewReportUsecase(sRepo, fixedClock{t: testNow})

	sRepo.On("ListByDate", mock.Anything, "2025-03-10").Return([]model.Sale{
		{
			ID: 1, Total: d("15.00"), Date: "2025-03-10", Timestamp: testNow,
			Items: []model.SaleItem{
				{Barcode: "111", Name: "Yerba", Price: d("5.00"), Quantity: 3},
			},
		},
	}, nil)

	out, err := uc.Daily(context.Background(), "2025-03-10")
	assert.NoError(t, err)
	assert.True(t, out.TotalRevenue.Equal(d("15.00")))
	assert.Equal(t, 1, out.SaleCount)
	assert.Equal(t, int64(3), out.TotalUnits)
	if assert.Len(t, out.PerProduct, 1) {
		assert.Equal(t, "111", out.PerProduct[0].Barcode)
		assert.Equal(t, int64(3), out.PerProduct[0].UnitsSold)
		assert.True(t, out.PerProduct[0].Subtotal.Equal(d("15.00")))
	}
}

// 商品別に畳み込み、小計の降順。同額は初出順。
func TestReportDaily_FoldAndSort(t *testing.T) {
	sRepo := new(SaleRepoMock)
	uc := usecase.NewReportUsecase(sRepo, fixedClock{t: testNow})

	sRepo.On("ListByDate", mock.Anything, "2025-03-10").Return([]model.Sale{
		{
			ID: 1, Total: d("13.00"), Date: "2025-03-10",
			Items: []model.SaleItem{
				{Barcode: "A", Name: "Azucar", Price: d("2.00"), Quantity: 4}, // A: 8.00
				{Barcode: "B", Name: "Leche", Price: d("5.00"), Quantity: 1},  // B: 5.00
			},
		},
		{
			ID: 2, Total: d("13.00"), Date: "2025-03-10",
			Items: []model.SaleItem{
				{Barcode: "C", Name: "Cafe", Price: d("8.00"), Quantity: 1},   // C: 8.00（Aと同額）
				{Barcode: "B", Name: "Leche", Price: d("5.00"), Quantity: 1},  // B: 計10.00
			},
		},
	}, nil)

	out, err := uc.Daily(context.Background(), "2025-03-10")
	assert.NoError(t, err)
	assert.True(t, out.TotalRevenue.Equal(d("26.00")))
	assert.Equal(t, 2, out.SaleCount)
	assert.Equal(t, int64(7), out.TotalUnits)

	if assert.Len(t, out.PerProduct, 3) {
		// B(10.00) → A(8.00) → C(8.00)：同額は初出順で安定
		assert.Equal(t, "B", out.PerProduct[0].Barcode)
		assert.Equal(t, "A", out.PerProduct[1].Barcode)
		assert.Equal(t, "C", out.PerProduct[2].Barcode)
		assert.Equal(t, int64(2), out.PerProduct[0].UnitsSold)
	}
}

// name/priceは最後に見たスナップショット
func TestReportDaily_LastSeenSnapshot(t *testing.T) {
	sRepo := new(SaleRepoMock)
	uc := usecase.NewReportUsecase(sRepo, fixedClock{t: testNow})

	sRepo.On("ListByDate", mock.Anything, "2025-03-10").Return([]model.Sale{
		{
			ID: 1, Total: d("5.00"), Date: "2025-03-10",
			Items: []model.SaleItem{
				{Barcode: "A", Name: "Azucar", Price: d("5.00"), Quantity: 1},
			},
		},
		{
			ID: 2, Total: d("6.00"), Date: "2025-03-10",
			Items: []model.SaleItem{
				{Barcode: "A", Name: "Azucar 1kg", Price: d("6.00"), Quantity: 1},
			},
		},
	}, nil)

	out, err := uc.Daily(context.Background(), "2025-03-10")
	assert.NoError(t, err)
	if assert.Len(t, out.PerProduct, 1) {
		assert.Equal(t, "Azucar 1kg", out.PerProduct[0].Name)
		assert.True(t, out.PerProduct[0].Price.Equal(d("6.00")))
		assert.True(t, out.PerProduct[0].Subtotal.Equal(d("11.00")))
	}
}

func TestReportDaily_StorageError(t *testing.T) {
	sRepo := new(SaleRepoMock)
	uc := usecase.NewReportUsecase(sRepo, fixedClock{t: testNow})

	sRepo.On("ListByDate", mock.Anything, "2025-03-10").Return(nil, assert.AnError)

	_, err := uc.Daily(context.Background(), "2025-03-10")
	assertErrContains(t, err, "db error")
}
