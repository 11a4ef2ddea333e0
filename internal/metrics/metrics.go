// Package metrics exposes the Prometheus instruments for the rental flows.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RentalsConfirmed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gearshed_rentals_confirmed_total",
		Help: "Rental lines confirmed at checkout",
	})

	ItemsReturned = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gearshed_returns_total",
		Help: "Rentals closed by a return",
	})

	InsufficientStockRejections = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gearshed_insufficient_stock_rejections_total",
		Help: "Reservations or checkouts rejected for insufficient stock",
	})

	ReportsFiled = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gearshed_reports_filed_total",
		Help: "Lost/broken-item reports filed",
	})

	OverdueRentals = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "gearshed_overdue_rentals",
		Help: "Open rentals past their due date, updated by the nightly scan",
	})
)
