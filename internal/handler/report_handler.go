package handler

import (
	"net/http"

	"comercio/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /reports のAPI
type ReportHandler struct {
	uc *usecase.ReportUsecase
}

// DI
func NewReportHandler(uc *usecase.ReportUsecase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

func (h *ReportHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/reports/daily", h.daily)
}

// date未指定は今日
func (h *ReportHandler) daily(c echo.Context) error {
	out, err := h.uc.Daily(c.Request().Context(), c.QueryParam("date"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
