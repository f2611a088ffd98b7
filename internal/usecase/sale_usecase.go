package usecase

import (
	"context"
	"errors"
	"net/http"
	"time"

	repo "comercio/internal/repository"
)

// 台帳の読み取り
type SaleUsecase struct {
	saleRepo repo.SaleRepository
}

// DI
func NewSaleUsecase(saleRepo repo.SaleRepository) *SaleUsecase {
	return &SaleUsecase{saleRepo: saleRepo}
}

type SaleListOutput struct {
	Items []SaleOutput `json:"items"`
	Total int          `json:"total"`
}

// dateが空なら全件、あればその日の売上。
func (u *SaleUsecase) ListSales(ctx context.Context, date string) (SaleListOutput, error) {
	if date != "" {
		if _, err := time.Parse(dateLayout, date); err != nil {
			return SaleListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid date")
		}
	}

	var err error
	var sales []SaleOutput
	if date == "" {
		all, e := u.saleRepo.ListAll(ctx)
		err = e
		for _, s := range all {
			sales = append(sales, toSaleOutput(s))
		}
	} else {
		byDate, e := u.saleRepo.ListByDate(ctx, date)
		err = e
		for _, s := range byDate {
			sales = append(sales, toSaleOutput(s))
		}
	}
	if err != nil {
		return SaleListOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if sales == nil {
		sales = []SaleOutput{}
	}
	return SaleListOutput{Items: sales, Total: len(sales)}, nil
}

func (u *SaleUsecase) GetSale(ctx context.Context, id int64) (SaleOutput, error) {
	if id <= 0 {
		return SaleOutput{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	s, err := u.saleRepo.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return SaleOutput{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return SaleOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return toSaleOutput(s), nil
}
