package cmd

import (
	"log/slog"

	apphttp "github.com/moisescpp/tierno-oficial/internal/adapters/in/http"
	"github.com/moisescpp/tierno-oficial/internal/adapters/out/fallback"
	"github.com/moisescpp/tierno-oficial/internal/adapters/out/postgres/orderrepo"
	"github.com/moisescpp/tierno-oficial/internal/adapters/out/sqlitecache"
	"github.com/moisescpp/tierno-oficial/internal/core/application/usecases/commands"
	"github.com/moisescpp/tierno-oficial/internal/core/application/usecases/queries"
	"github.com/moisescpp/tierno-oficial/internal/core/domain/model/catalog"
	"github.com/moisescpp/tierno-oficial/internal/core/ports"
	"github.com/moisescpp/tierno-oficial/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot wires the order book together: the postgres store wrapped
// by the snapshot fallback, the product catalog, and every command and
// query handler the HTTP server needs.
type CompositionRoot struct {
	store   ports.OrderStore
	catalog catalog.Catalog
	logger  *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	var store ports.OrderStore = orderrepo.NewGormOrderStore(gormDB)

	if config.SnapshotPath != "" {
		cache, err := sqlitecache.NewSqliteSnapshotCache(config.SnapshotPath)
		if err != nil {
			return CompositionRoot{}, err
		}
		store = fallback.NewStore(store, cache, logger)
	}

	return CompositionRoot{
		store:   store,
		catalog: catalog.DefaultCatalog(),
		logger:  logger,
	}, nil
}

func (c *CompositionRoot) OrderStore() ports.OrderStore {
	return c.store
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.store, c.catalog)
}

func (c *CompositionRoot) CreateEditOrderCommandHandler() commands.EditOrderCommandHandler {
	return commands.NewEditOrderCommandHandler(c.store, c.catalog)
}

func (c *CompositionRoot) CreateMarkDeliveredCommandHandler() commands.MarkDeliveredCommandHandler {
	return commands.NewMarkDeliveredCommandHandler(c.store)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.store)
}

func (c *CompositionRoot) CreateMoveOrderCommandHandler() commands.MoveOrderCommandHandler {
	return commands.NewMoveOrderCommandHandler(c.store)
}

func (c *CompositionRoot) CreateResequenceRouteCommandHandler() commands.ResequenceRouteCommandHandler {
	return commands.NewResequenceRouteCommandHandler(c.store)
}

func (c *CompositionRoot) CreateGetDayScheduleQueryHandler() queries.GetDayScheduleQueryHandler {
	return queries.NewGetDayScheduleQueryHandler(c.store)
}

func (c *CompositionRoot) CreateGetWeekScheduleQueryHandler() queries.GetWeekScheduleQueryHandler {
	return queries.NewGetWeekScheduleQueryHandler(c.store)
}

func (c *CompositionRoot) CreateGetScheduleSummaryQueryHandler() queries.GetScheduleSummaryQueryHandler {
	return queries.NewGetScheduleSummaryQueryHandler(c.store)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.store, c.logger)
}

// CreateServer assembles the HTTP server over the handlers above. The job
// manager's refresh job doubles as the suspend/resume control.
func (c *CompositionRoot) CreateServer(manager *jobs.JobManager) *apphttp.Server {
	return apphttp.NewServer(apphttp.ServerParams{
		Store:                  c.store,
		Catalog:                c.catalog,
		CreateOrderHandler:     c.CreateCreateOrderCommandHandler(),
		EditOrderHandler:       c.CreateEditOrderCommandHandler(),
		MarkDeliveredHandler:   c.CreateMarkDeliveredCommandHandler(),
		DeleteOrderHandler:     c.CreateDeleteOrderCommandHandler(),
		MoveOrderHandler:       c.CreateMoveOrderCommandHandler(),
		ResequenceRouteHandler: c.CreateResequenceRouteCommandHandler(),
		DayScheduleHandler:     c.CreateGetDayScheduleQueryHandler(),
		WeekScheduleHandler:    c.CreateGetWeekScheduleQueryHandler(),
		ScheduleSummaryHandler: c.CreateGetScheduleSummaryQueryHandler(),
		Refresh:                manager.RefreshJob(),
	})
}
