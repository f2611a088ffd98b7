package handler

import (
	"net/http"
	"strconv"

	"comercio/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /sales のAPI
type SaleHandler struct {
	checkout *usecase.CheckoutUsecase
	sales    *usecase.SaleUsecase
}

// DI
func NewSaleHandler(checkout *usecase.CheckoutUsecase, sales *usecase.SaleUsecase) *SaleHandler {
	return &SaleHandler{checkout: checkout, sales: sales}
}

func (h *SaleHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/sales", h.confirm)
	e.GET("/sales", h.list)
	e.GET("/sales/:id", h.detail)
}

type ConfirmSaleRequest struct {
	Items          []usecase.CartItemInput `json:"items"`
	IdempotencyKey string                  `json:"idempotency_key"`
}

func (h *SaleHandler) confirm(c echo.Context) error {
	var req ConfirmSaleRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.checkout.ConfirmSale(c.Request().Context(), usecase.ConfirmSaleInput{
		Items:          req.Items,
		IdempotencyKey: req.IdempotencyKey,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *SaleHandler) list(c echo.Context) error {
	out, err := h.sales.ListSales(c.Request().Context(), c.QueryParam("date"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *SaleHandler) detail(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	out, err := h.sales.GetSale(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
