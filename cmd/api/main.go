package main

import (
	"time"

	"comercio/internal/config"
	"comercio/internal/domain/model"
	"comercio/internal/event"
	"comercio/internal/handler"
	"comercio/internal/infra/db"
	infraRepo "comercio/internal/infra/repository"
	"comercio/internal/metrics"
	"comercio/internal/report"
	"comercio/internal/server"
	"comercio/internal/usecase"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

type uuidGenerator struct{}

func (g *uuidGenerator) NewID() string {
	return uuid.NewString()
}

type realClock struct{}

func (c *realClock) Now() time.Time {
	return time.Now()
}

func newLogger(env string) (*zap.Logger, error) {
	if env == "prod" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

func main() {
	//.envは無くてもよい（本番は環境変数のみ）
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger, err := newLogger(cfg.GoEnv)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	//DB接続
	gormDB, err := db.Connect(cfg)
	if err != nil {
		logger.Fatal("db connect failed", zap.Error(err))
	}
	defer db.Close(gormDB)

	if err := gormDB.AutoMigrate(
		&model.Product{},
		&model.Sale{},
		&model.SaleItem{},
	); err != nil {
		logger.Fatal("migrate failed", zap.Error(err))
	}

	//Repository（GORM実装）生成
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	saleRepo := infraRepo.NewSaleGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	//usecaseに渡す部品
	clock := &realClock{}
	idGen := &uuidGenerator{}
	bus := event.NewBus()

	//在庫変化はログに残す（UIはこの通知相当をpollingで追従する）
	if err := bus.SubscribeStockUpdated(func(e event.StockUpdated) {
		logger.Info("stock updated", zap.Strings("barcodes", e.Barcodes))
	}); err != nil {
		logger.Fatal("subscribe failed", zap.Error(err))
	}

	if cfg.MetricsEnabled {
		if err := metrics.NewSaleMetrics().Bind(bus); err != nil {
			logger.Fatal("metrics bind failed", zap.Error(err))
		}
	}

	//Usecase生成
	productUC := usecase.NewProductUsecase(productRepo, clock, bus)
	checkoutUC := usecase.NewCheckoutUsecase(txManager, clock, idGen, bus)
	saleUC := usecase.NewSaleUsecase(saleRepo)
	reportUC := usecase.NewReportUsecase(saleRepo, clock)

	//Handler生成
	productH := handler.NewProductHandler(productUC)
	saleH := handler.NewSaleHandler(checkoutUC, saleUC)
	reportH := handler.NewReportHandler(reportUC)

	//日次レポートジョブ（設定があるときだけ）
	if cfg.DailyReportCron != "" {
		sched := report.NewScheduler(reportUC, clock, logger)
		if err := sched.Start(cfg.DailyReportCron); err != nil {
			logger.Fatal("scheduler start failed", zap.Error(err))
		}
		defer sched.Stop()
	}

	//Server起動
	addr := cfg.Port
	if addr[0] != ':' {
		addr = ":" + addr
	}

	e := server.New(cfg, logger, productH, saleH, reportH)

	logger.Info("listening", zap.String("addr", addr))
	if err := server.Start(e, addr); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
