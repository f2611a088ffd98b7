package server

import (
	"net/http"

	"comercio/internal/config"
	"comercio/internal/handler"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func RegisterRoutes(
	e *echo.Echo,
	cfg config.Config,
	productH *handler.ProductHandler,
	saleH *handler.SaleHandler,
	reportH *handler.ReportHandler,
) {
	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	//METRICS_ENABLED=trueのときだけ公開
	if cfg.MetricsEnabled {
		e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	}

	productH.RegisterRoutes(e)
	saleH.RegisterRoutes(e)
	reportH.RegisterRoutes(e)
}
