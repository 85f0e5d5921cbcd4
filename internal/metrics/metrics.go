package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OrdersCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lasatastore_purchase_orders_created_total",
		Help: "Purchase orders created.",
	})
	OrdersUpdated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lasatastore_purchase_orders_updated_total",
		Help: "Purchase orders updated.",
	})
	OrdersDeleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lasatastore_purchase_orders_deleted_total",
		Help: "Purchase orders deleted.",
	})
	StockMovements = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lasatastore_stock_movements_total",
		Help: "Stock ledger movements by reason.",
	}, []string{"reason"})
)
