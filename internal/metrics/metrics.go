package metrics

import (
	"comercio/internal/event"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// 売上のPrometheusカウンタ
type SaleMetrics struct {
	Confirmed prometheus.Counter
	Revenue   prometheus.Counter
	Units     prometheus.Counter
}

func NewSaleMetrics() *SaleMetrics {
	return &SaleMetrics{
		Confirmed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "comercio_sales_confirmed_total",
			Help: "Number of confirmed sales.",
		}),
		Revenue: promauto.NewCounter(prometheus.CounterOpts{
			Name: "comercio_sales_revenue_total",
			Help: "Revenue from confirmed sales, in currency units.",
		}),
		Units: promauto.NewCounter(prometheus.CounterOpts{
			Name: "comercio_sale_units_total",
			Help: "Units sold in confirmed sales.",
		}),
	}
}

// 売上確定イベントで加算する。
func (m *SaleMetrics) Bind(bus *event.Bus) error {
	return bus.SubscribeSaleConfirmed(func(e event.SaleConfirmed) {
		m.Confirmed.Inc()
		f, _ := e.Total.Float64()
		m.Revenue.Add(f)
		m.Units.Add(float64(e.Units))
	})
}
