package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// CatalogMetrics covers the catalog's query and redemption traffic.
// Counters register against the given registerer, so tests can use an
// isolated registry.
type CatalogMetrics struct {
	QueriesTotal       *prometheus.CounterVec
	DealsPostedTotal   *prometheus.CounterVec
	RedemptionsTotal   *prometheus.CounterVec
	PointsAwardedTotal *prometheus.CounterVec
	VerificationsTotal *prometheus.CounterVec
}

func NewCatalogMetrics(reg prometheus.Registerer) *CatalogMetrics {
	factory := promauto.With(reg)
	return &CatalogMetrics{
		QueriesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "catalog_queries_total",
				Help: "Catalog queries served, by deal type filter and sort key",
			},
			[]string{"deal_type", "sort"},
		),
		DealsPostedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "catalog_deals_posted_total",
				Help: "Deals posted to the catalog, by deal type",
			},
			[]string{"deal_type"},
		),
		RedemptionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "catalog_redemptions_total",
				Help: "Redemption lifecycle actions, by deal type and action",
			},
			[]string{"deal_type", "action"},
		),
		PointsAwardedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "catalog_points_awarded_total",
				Help: "Points credited to users, by reason",
			},
			[]string{"reason"},
		),
		VerificationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "catalog_verifications_total",
				Help: "Simulated verification tasks completed, by kind and result",
			},
			[]string{"kind", "result"},
		),
	}
}

func (m *CatalogMetrics) RecordQuery(dealType, sort string) {
	m.QueriesTotal.WithLabelValues(dealType, sort).Inc()
}

func (m *CatalogMetrics) RecordDealPosted(dealType string) {
	m.DealsPostedTotal.WithLabelValues(dealType).Inc()
}

func (m *CatalogMetrics) RecordRedemption(dealType, action string) {
	m.RedemptionsTotal.WithLabelValues(dealType, action).Inc()
}

func (m *CatalogMetrics) RecordPointsAwarded(reason string, points int) {
	m.PointsAwardedTotal.WithLabelValues(reason).Add(float64(points))
}

func (m *CatalogMetrics) RecordVerification(kind, result string) {
	m.VerificationsTotal.WithLabelValues(kind, result).Inc()
}
