package cmd

import (
	"log/slog"

	"warehouse/internal/adapters/out/csvsink"
	"warehouse/internal/adapters/out/metrics"
	"warehouse/internal/adapters/out/postgres"
	"warehouse/internal/adapters/out/xlsxsink"
	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/application/usecases/queries"
	"warehouse/internal/core/domain/services"
	"warehouse/internal/core/ports"
	"warehouse/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters into use case handlers. In report mode there
// is no database and gormDB is nil; only the file-driven handlers may be created.
type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	metrics    *metrics.Recorder
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	root := CompositionRoot{
		config:  config,
		gormDB:  gormDB,
		metrics: metrics.NewRecorder(),
		logger:  logger,
	}
	if gormDB != nil {
		root.uowFactory = postgres.NewGormUnitOfWorkFactory(gormDB)
	}
	return root
}

func (c *CompositionRoot) Metrics() *metrics.Recorder {
	return c.metrics
}

// ReportWriters returns the configured sinks: CSV always, Excel when enabled.
func (c *CompositionRoot) ReportWriters() []ports.ReportWriter {
	writers := []ports.ReportWriter{csvsink.NewWriter(c.config.ResultsDir)}
	if c.config.XLSXEnabled {
		writers = append(writers, xlsxsink.NewWriter(c.config.ResultsDir))
	}
	return writers
}

// LedgerReader reads orders from the database.
func (c *CompositionRoot) LedgerReader() ports.OrderReader {
	return c.uowFactory.Create().OrderRepository()
}

func (c *CompositionRoot) CreateGenerateReportCommandHandler(reader ports.OrderReader) commands.GenerateReportCommandHandler {
	return commands.NewGenerateReportCommandHandler(
		reader,
		services.NewReportBuilder(),
		c.ReportWriters(),
		c.metrics,
		c.logger,
	)
}

func (c *CompositionRoot) CreateImportOrdersCommandHandler() commands.ImportOrdersCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewImportOrdersCommandHandler(f, c.metrics)
}

func (c *CompositionRoot) CreateGetReportQueryHandler() queries.GetReportQueryHandler {
	return queries.NewGetReportQueryHandler(c.LedgerReader(), services.NewReportBuilder())
}

func (c *CompositionRoot) CreateGetWarehouseCategoriesQueryHandler() queries.GetWarehouseCategoriesQueryHandler {
	return queries.NewGetWarehouseCategoriesQueryHandler(c.LedgerReader(), services.NewReportBuilder())
}

func (c *CompositionRoot) CreateListWarehousesQueryHandler() queries.ListWarehousesQueryHandler {
	return queries.NewListWarehousesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	handler := c.CreateGenerateReportCommandHandler(c.LedgerReader())
	return jobs.NewJobManager(handler, c.config.ReportSchedule, c.logger)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
