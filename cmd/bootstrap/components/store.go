package components

import (
	"log/slog"

	"savesphere/internal/infra/memstore"
	"savesphere/internal/infra/metrics"
	"savesphere/internal/pkg/clock"
	"savesphere/internal/pkg/config"
	"savesphere/internal/pkg/task"
	"savesphere/internal/usecase/commands"
	"savesphere/internal/usecase/queries"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

// StoreModule wires the in-memory stores and seeds them with fixture
// data on startup. The concrete stores double as the command and query
// ports, so each gets a thin adapter per interface.
var StoreModule = fx.Module("store",
	fx.Provide(
		memstore.NewDealStore,
		memstore.NewUserStore,
		memstore.NewRedemptionStore,
		memstore.NewNotificationStore,
		func() *metrics.CatalogMetrics { return metrics.NewCatalogMetrics(prometheus.DefaultRegisterer) },
		NewTaskRunner,

		func(s *memstore.DealStore) queries.DealReadStore { return s },
		func(s *memstore.DealStore) commands.DealStore { return s },
		func(s *memstore.RedemptionStore) queries.RedemptionReadStore { return s },
		func(s *memstore.RedemptionStore) commands.RedemptionStore { return s },
		func(s *memstore.UserStore) queries.UserReadStore { return s },
		func(s *memstore.UserStore) commands.UserStore { return s },
		func(s *memstore.NotificationStore) queries.NotificationReadStore { return s },
		func(s *memstore.NotificationStore) commands.NotificationStore { return s },
		func(s *memstore.NotificationStore) commands.NotificationInboxStore { return s },
	),
	fx.Invoke(seedFixtures),
)

func NewTaskRunner(cfg config.Config) *task.Runner {
	return task.NewRunner(cfg.Catalog.VerificationDelay)
}

func seedFixtures(
	deals *memstore.DealStore,
	users *memstore.UserStore,
	notifications *memstore.NotificationStore,
	clk clock.Clock,
	logger *slog.Logger,
) {
	fixtures := memstore.NewFixtures(clk.Now())
	deals.Seed(fixtures.Deals)
	users.Seed(fixtures.Users)
	notifications.Seed(fixtures.Notifications)
	logger.Info("fixtures seeded",
		"deals", len(fixtures.Deals),
		"users", len(fixtures.Users),
		"notifications", len(fixtures.Notifications))
}
