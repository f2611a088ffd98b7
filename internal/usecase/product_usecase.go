package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"comercio/internal/domain/model"
	"comercio/internal/event"
	repo "comercio/internal/repository"

	"github.com/shopspring/decimal"
)

type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

type ProductUsecase struct {
	productRepo repo.ProductRepository
	clock       Clock
	bus         *event.Bus
}

// DI
func NewProductUsecase(productRepo repo.ProductRepository, clock Clock, bus *event.Bus) *ProductUsecase {
	return &ProductUsecase{
		productRepo: productRepo,
		clock:       clock,
		bus:         bus,
	}
}

// GET /productsの入力DTO
type ListProductsInput struct {
	Q string
}

type ProductListOutput struct {
	Items []model.Product `json:"items"`
	Total int             `json:"total"`
}

func (u *ProductUsecase) ListProducts(ctx context.Context, in ListProductsInput) (ProductListOutput, error) {
	if len(in.Q) > 100 {
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid q")
	}

	items, err := u.productRepo.List(ctx, repo.ProductListQuery{Q: in.Q})
	if err != nil {
		return ProductListOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return ProductListOutput{Items: items, Total: len(items)}, nil
}

func (u *ProductUsecase) GetProduct(ctx context.Context, barcode string) (model.Product, error) {
	if strings.TrimSpace(barcode) == "" {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid barcode")
	}

	p, err := u.productRepo.FindByBarcode(ctx, barcode)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return p, nil
}

type SaveProductInput struct {
	Barcode  string
	Name     string
	Price    decimal.Decimal
	Quantity int64
	Photo    string
}

func validateSaveProductInput(in SaveProductInput) error {
	if strings.TrimSpace(in.Barcode) == "" {
		return NewHTTPError(http.StatusBadRequest, "invalid barcode")
	}
	if strings.TrimSpace(in.Name) == "" {
		return NewHTTPError(http.StatusBadRequest, "invalid name")
	}
	if in.Price.IsNegative() {
		return NewHTTPError(http.StatusBadRequest, "invalid price")
	}
	if in.Quantity < 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid quantity")
	}
	return nil
}

// 新規登録。バーコード重複は409。
func (u *ProductUsecase) CreateProduct(ctx context.Context, in SaveProductInput) (model.Product, error) {
	if err := validateSaveProductInput(in); err != nil {
		return model.Product{}, err
	}

	barcode := strings.TrimSpace(in.Barcode)

	_, err := u.productRepo.FindByBarcode(ctx, barcode)
	if err == nil {
		return model.Product{}, NewHTTPError(http.StatusConflict, "barcode already exists")
	}
	if !errors.Is(err, repo.ErrNotFound) {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	now := u.clock.Now()
	p := model.Product{
		Barcode:   barcode,
		Name:      strings.TrimSpace(in.Name),
		Price:     in.Price,
		Quantity:  in.Quantity,
		Photo:     in.Photo,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := u.productRepo.Upsert(ctx, p); err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	u.bus.PublishStockUpdated(event.StockUpdated{Barcodes: []string{p.Barcode}})
	return p, nil
}

// 更新。created_atは元の値を引き継ぐ（失うと作成日が壊れる）。
func (u *ProductUsecase) UpdateProduct(ctx context.Context, barcode string, in SaveProductInput) (model.Product, error) {
	in.Barcode = barcode
	if err := validateSaveProductInput(in); err != nil {
		return model.Product{}, err
	}

	existing, err := u.productRepo.FindByBarcode(ctx, barcode)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	p := model.Product{
		Barcode:   existing.Barcode,
		Name:      strings.TrimSpace(in.Name),
		Price:     in.Price,
		Quantity:  in.Quantity,
		Photo:     in.Photo,
		CreatedAt: existing.CreatedAt,
		UpdatedAt: u.clock.Now(),
	}

	if err := u.productRepo.Upsert(ctx, p); err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	u.bus.PublishStockUpdated(event.StockUpdated{Barcodes: []string{p.Barcode}})
	return p, nil
}

// 削除。存在しなくてもエラーにしない。
func (u *ProductUsecase) DeleteProduct(ctx context.Context, barcode string) error {
	if strings.TrimSpace(barcode) == "" {
		return NewHTTPError(http.StatusBadRequest, "invalid barcode")
	}

	if err := u.productRepo.Delete(ctx, barcode); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	u.bus.PublishStockUpdated(event.StockUpdated{Barcodes: []string{barcode}})
	return nil
}

type AdjustQuantityInput struct {
	Delta int64
}

// 在庫調整。quantityは0で止まる。
func (u *ProductUsecase) AdjustQuantity(ctx context.Context, barcode string, in AdjustQuantityInput) (model.Product, error) {
	if strings.TrimSpace(barcode) == "" {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid barcode")
	}

	p, err := u.productRepo.AdjustQuantity(ctx, barcode, in.Delta, u.clock.Now())
	if errors.Is(err, repo.ErrNotFound) {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	u.bus.PublishStockUpdated(event.StockUpdated{Barcodes: []string{barcode}})
	return p, nil
}
