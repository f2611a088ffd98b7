package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"comercio/internal/domain/model"
	"comercio/internal/event"
	"comercio/internal/handler"
	repo "comercio/internal/repository"
	"comercio/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type productRepoMock struct{ mock.Mock }

func (m *productRepoMock) List(ctx context.Context, q repo.ProductListQuery) ([]model.Product, error) {
	args := m.Called(ctx, q)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Error(1)
}

func (m *productRepoMock) FindByBarcode(ctx context.Context, barcode string) (model.Product, error) {
	args := m.Called(ctx, barcode)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *productRepoMock) Upsert(ctx context.Context, p model.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *productRepoMock) Delete(ctx context.Context, barcode string) error {
	args := m.Called(ctx, barcode)
	return args.Error(0)
}

func (m *productRepoMock) AdjustQuantity(ctx context.Context, barcode string, delta int64, now time.Time) (model.Product, error) {
	args := m.Called(ctx, barcode, delta, now)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *productRepoMock) DecrementClamped(ctx context.Context, barcode string, qty int64, now time.Time) (bool, error) {
	args := m.Called(ctx, barcode, qty, now)
	return args.Bool(0), args.Error(1)
}

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

var testNow = time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC)

func newServer(pRepo *productRepoMock) *echo.Echo {
	uc := usecase.NewProductUsecase(pRepo, fixedClock{t: testNow}, event.NewBus())
	h := handler.NewProductHandler(uc)

	e := echo.New()
	h.RegisterRoutes(e)
	return e
}

func TestProductList(t *testing.T) {
	pRepo := new(productRepoMock)
	pRepo.On("List", mock.Anything, repo.ProductListQuery{Q: "yerba"}).Return([]model.Product{
		{Barcode: "111", Name: "Yerba", Price: decimal.RequireFromString("5.00"), Quantity: 10},
	}, nil)

	e := newServer(pRepo)

	req := httptest.NewRequest(http.MethodGet, "/products?q=yerba", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"barcode":"111"`)
	assert.Contains(t, rec.Body.String(), `"total":1`)
}

func TestProductDetail_NotFound(t *testing.T) {
	pRepo := new(productRepoMock)
	pRepo.On("FindByBarcode", mock.Anything, "404").Return(model.Product{}, repo.ErrNotFound)

	e := newServer(pRepo)

	req := httptest.NewRequest(http.MethodGet, "/products/404", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"error":"not found"`)
}

func TestProductAdjust(t *testing.T) {
	pRepo := new(productRepoMock)
	pRepo.On("AdjustQuantity", mock.Anything, "111", int64(-3), testNow).
		Return(model.Product{Barcode: "111", Quantity: 7}, nil)

	e := newServer(pRepo)

	body := strings.NewReader(`{"delta": -3}`)
	req := httptest.NewRequest(http.MethodPost, "/products/111/adjust", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"quantity":7`)
}

func TestProductCreate_InvalidBody(t *testing.T) {
	e := newServer(new(productRepoMock))

	body := strings.NewReader(`{"price": "not-a-number"}`)
	req := httptest.NewRequest(http.MethodPost, "/products", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
