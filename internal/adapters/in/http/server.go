package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	"warehouse/internal/adapters/in/orderjson"
	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/application/usecases/queries"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/report"
	"warehouse/internal/core/domain/services"
	"warehouse/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Use case ports the server depends on. The concrete handlers from the
// commands and queries packages satisfy them.
type (
	OrderImporter interface {
		Handle(ctx context.Context, cmd commands.ImportOrdersCommand) error
	}

	ReportGenerator interface {
		Handle(ctx context.Context, cmd commands.GenerateReportCommand) error
	}

	ReportGetter interface {
		Handle(ctx context.Context, query queries.GetReportQuery) (report.Report, error)
	}

	WarehouseCategoriesGetter interface {
		Handle(ctx context.Context, query queries.GetWarehouseCategoriesQuery) ([]report.RankedStat, error)
	}

	WarehouseLister interface {
		Handle(ctx context.Context, query queries.ListWarehousesQuery) ([]queries.ListWarehousesQueryResponse, error)
	}
)

// Error is the body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ImportResponse is returned by POST /api/v1/orders.
type ImportResponse struct {
	Imported int `json:"imported"`
}

// GenerateResponse is returned by POST /api/v1/reports.
type GenerateResponse struct {
	ReportID string `json:"report_id"`
}

// Server routes HTTP requests to the application use cases.
type Server struct {
	// Command handlers
	importOrders   OrderImporter
	generateReport ReportGenerator

	// Query handlers
	getReport      ReportGetter
	getCategories  WarehouseCategoriesGetter
	listWarehouses WarehouseLister

	metrics http.Handler
	logger  *slog.Logger
}

func NewServer(
	importOrders OrderImporter,
	generateReport ReportGenerator,
	getReport ReportGetter,
	getCategories WarehouseCategoriesGetter,
	listWarehouses WarehouseLister,
	metrics http.Handler,
	logger *slog.Logger,
) *Server {
	return &Server{
		importOrders:   importOrders,
		generateReport: generateReport,
		getReport:      getReport,
		getCategories:  getCategories,
		listWarehouses: listWarehouses,
		metrics:        metrics,
		logger:         logger.With("component", "http"),
	}
}

// Register mounts the routes and middleware on e.
func (s *Server) Register(e *echo.Echo) {
	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			s.logger.LogAttrs(c.Request().Context(), slog.LevelInfo, "request",
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
			)
			return nil
		},
	}))

	e.GET("/health", s.Health)
	e.GET("/metrics", echo.WrapHandler(s.metrics))

	api := e.Group("/api/v1")
	api.POST("/orders", s.ImportOrders)
	api.GET("/reports", s.GetReport)
	api.POST("/reports", s.GenerateReport)
	api.GET("/warehouses", s.ListWarehouses)
	api.GET("/warehouses/:name/categories", s.GetWarehouseCategories)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// ImportOrders handles POST /api/v1/orders. The body is a JSON array of orders;
// the batch is stored atomically.
func (s *Server) ImportOrders(ctx echo.Context) error {
	orders, err := orderjson.Decode(ctx.Request().Body)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewImportOrdersCommand(orders)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.importOrders.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, ImportResponse{Imported: len(orders)})
}

// GetReport handles GET /api/v1/reports, building the report over the stored ledger.
func (s *Server) GetReport(ctx echo.Context) error {
	rep, err := s.getReport.Handle(ctx.Request().Context(), queries.NewGetReportQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, rep)
}

// GenerateReport handles POST /api/v1/reports: one synchronous run into the configured sinks.
func (s *Server) GenerateReport(ctx echo.Context) error {
	cmd, err := commands.NewGenerateReportCommand(kernel.NewReportID())
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.generateReport.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, GenerateResponse{ReportID: cmd.ReportID().String()})
}

// ListWarehouses handles GET /api/v1/warehouses.
func (s *Server) ListWarehouses(ctx echo.Context) error {
	warehouses, err := s.listWarehouses.Handle(ctx.Request().Context(), queries.NewListWarehousesQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, warehouses)
}

// GetWarehouseCategories handles GET /api/v1/warehouses/:name/categories.
func (s *Server) GetWarehouseCategories(ctx echo.Context) error {
	name := ctx.Param("name")
	// echo matches on RawPath when the request has one, leaving params escaped.
	if ctx.Request().URL.RawPath != "" {
		unescaped, err := url.PathUnescape(name)
		if err != nil {
			return s.fail(ctx, errs.NewValueIsInvalidErrorWithCause("name", err))
		}
		name = unescaped
	}

	query, err := queries.NewGetWarehouseCategoriesQuery(name)
	if err != nil {
		return s.fail(ctx, err)
	}

	rows, err := s.getCategories.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, rows)
}

func (s *Server) fail(ctx echo.Context, err error) error {
	code := statusOf(err)
	if code >= http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), "Request failed", "path", ctx.Path(), "error", err)
		return ctx.JSON(code, Error{Code: code, Message: http.StatusText(code)})
	}

	return ctx.JSON(code, Error{Code: code, Message: err.Error()})
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, orderjson.ErrMalformedInput),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	case errors.Is(err, commands.ErrDuplicateOrderID):
		return http.StatusConflict
	case errors.Is(err, errs.ErrObjectNotFound),
		errors.Is(err, services.ErrNoOrders):
		return http.StatusNotFound
	case errors.Is(err, services.ErrZeroTotalQuantity),
		errors.Is(err, services.ErrZeroWarehouseProfit):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
