package server

import (
	"comercio/internal/config"
	"comercio/internal/handler"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

func New(
	cfg config.Config,
	logger *zap.Logger,
	productH *handler.ProductHandler,
	saleH *handler.SaleHandler,
	reportH *handler.ReportHandler,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(echomw.Recover())
	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			logger.Info("request",
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
			)
			return nil
		},
	}))

	RegisterRoutes(e, cfg, productH, saleH, reportH)
	return e
}

func Start(e *echo.Echo, addr string) error {
	return e.Start(addr)
}
