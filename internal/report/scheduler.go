package report

import (
	"context"
	"time"

	"comercio/internal/usecase"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// 閉店後に前日分の売上サマリをログへ残すジョブ
type Scheduler struct {
	c      *cron.Cron
	uc     *usecase.ReportUsecase
	clock  usecase.Clock
	logger *zap.Logger
}

// DI
func NewScheduler(uc *usecase.ReportUsecase, clock usecase.Clock, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		c:      cron.New(),
		uc:     uc,
		clock:  clock,
		logger: logger,
	}
}

// specはcron書式（例: "5 0 * * *"）。
func (s *Scheduler) Start(spec string) error {
	if _, err := s.c.AddFunc(spec, s.run); err != nil {
		return err
	}
	s.c.Start()
	return nil
}

func (s *Scheduler) Stop() {
	s.c.Stop()
}

func (s *Scheduler) run() {
	//前日分を集計する
	date := s.clock.Now().AddDate(0, 0, -1).Format("2006-01-02")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	sum, err := s.uc.Daily(ctx, date)
	if err != nil {
		s.logger.Error("daily report failed", zap.String("date", date), zap.Error(err))
		return
	}

	s.logger.Info("daily report",
		zap.String("date", sum.Date),
		zap.String("total_revenue", sum.TotalRevenue.String()),
		zap.Int("sale_count", sum.SaleCount),
		zap.Int64("total_units", sum.TotalUnits),
	)
}
