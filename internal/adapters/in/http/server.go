// Package http exposes the order book over an Echo HTTP API. Handlers
// translate wire payloads into commands and queries and map domain errors
// to status codes: validation failures become 400, missing orders 404,
// and an unreachable store 503.
package http

import (
	"net/http"

	"github.com/moisescpp/tierno-oficial/internal/adapters/wire"
	"github.com/moisescpp/tierno-oficial/internal/core/application/usecases/commands"
	"github.com/moisescpp/tierno-oficial/internal/core/application/usecases/queries"
	"github.com/moisescpp/tierno-oficial/internal/core/domain/model/catalog"
	"github.com/moisescpp/tierno-oficial/internal/core/domain/model/kernel"
	"github.com/moisescpp/tierno-oficial/internal/core/domain/model/order"
	"github.com/moisescpp/tierno-oficial/internal/core/ports"

	"github.com/labstack/echo/v4"
)

// RefreshControl pauses and resumes the background schedule refresh while
// a client edit is in flight.
type RefreshControl interface {
	Suspend()
	Resume()
}

// Server coordinates between HTTP handlers and the application use cases.
type Server struct {
	store   ports.OrderStore
	catalog catalog.Catalog

	createOrderHandler     commands.CreateOrderCommandHandler
	editOrderHandler       commands.EditOrderCommandHandler
	markDeliveredHandler   commands.MarkDeliveredCommandHandler
	deleteOrderHandler     commands.DeleteOrderCommandHandler
	moveOrderHandler       commands.MoveOrderCommandHandler
	resequenceRouteHandler commands.ResequenceRouteCommandHandler

	dayScheduleHandler     queries.GetDayScheduleQueryHandler
	weekScheduleHandler    queries.GetWeekScheduleQueryHandler
	scheduleSummaryHandler queries.GetScheduleSummaryQueryHandler

	refresh RefreshControl
}

// ServerParams carries the dependencies for NewServer.
type ServerParams struct {
	Store   ports.OrderStore
	Catalog catalog.Catalog

	CreateOrderHandler     commands.CreateOrderCommandHandler
	EditOrderHandler       commands.EditOrderCommandHandler
	MarkDeliveredHandler   commands.MarkDeliveredCommandHandler
	DeleteOrderHandler     commands.DeleteOrderCommandHandler
	MoveOrderHandler       commands.MoveOrderCommandHandler
	ResequenceRouteHandler commands.ResequenceRouteCommandHandler

	DayScheduleHandler     queries.GetDayScheduleQueryHandler
	WeekScheduleHandler    queries.GetWeekScheduleQueryHandler
	ScheduleSummaryHandler queries.GetScheduleSummaryQueryHandler

	Refresh RefreshControl
}

// NewServer creates the HTTP server with its command and query handlers.
func NewServer(params ServerParams) *Server {
	return &Server{
		store:                  params.Store,
		catalog:                params.Catalog,
		createOrderHandler:     params.CreateOrderHandler,
		editOrderHandler:       params.EditOrderHandler,
		markDeliveredHandler:   params.MarkDeliveredHandler,
		deleteOrderHandler:     params.DeleteOrderHandler,
		moveOrderHandler:       params.MoveOrderHandler,
		resequenceRouteHandler: params.ResequenceRouteHandler,
		dayScheduleHandler:     params.DayScheduleHandler,
		weekScheduleHandler:    params.WeekScheduleHandler,
		scheduleSummaryHandler: params.ScheduleSummaryHandler,
		refresh:                params.Refresh,
	}
}

// RegisterRoutes mounts every endpoint under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.GET("/catalog", s.GetCatalog)

	api.GET("/orders", s.ListOrders)
	api.POST("/orders", s.CreateOrder)
	api.PUT("/orders/:id", s.EditOrder)
	api.DELETE("/orders/:id", s.DeleteOrder)
	api.POST("/orders/:id/delivered", s.MarkDelivered)
	api.POST("/orders/:id/position", s.MoveOrder)

	api.POST("/routes/:date/resequence", s.ResequenceRoute)

	api.GET("/schedule/days/:date", s.GetDaySchedule)
	api.GET("/schedule/weeks/:date", s.GetWeekSchedule)
	api.GET("/schedule/summary", s.GetScheduleSummary)

	api.POST("/refresh/suspend", s.SuspendRefresh)
	api.POST("/refresh/resume", s.ResumeRefresh)
}

// ListOrders handles GET /api/v1/orders.
func (s *Server) ListOrders(ctx echo.Context) error {
	orders, err := s.store.List(ctx.Request().Context())
	if err != nil {
		return errorJSON(ctx, err)
	}
	return ctx.JSON(http.StatusOK, wire.FromDomainSlice(orders))
}

// CreateOrder handles POST /api/v1/orders. A request without an id gets a
// generated one; sending the id makes the create replayable.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req orderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequestJSON(ctx, "invalid request body")
	}

	id := kernel.NewUUID()
	if req.ID != "" {
		parsed, err := kernel.UUIDFromString(req.ID)
		if err != nil {
			return badRequestJSON(ctx, "invalid order id")
		}
		id = parsed
	}

	params, err := req.createParams(id)
	if err != nil {
		return errorJSON(ctx, err)
	}
	cmd, err := commands.NewCreateOrderCommand(params)
	if err != nil {
		return errorJSON(ctx, err)
	}

	orders, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorJSON(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, wire.FromDomainSlice(orders))
}

// EditOrder handles PUT /api/v1/orders/:id.
func (s *Server) EditOrder(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequestJSON(ctx, "invalid order id")
	}

	var req orderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequestJSON(ctx, "invalid request body")
	}

	params, err := req.editParams(id)
	if err != nil {
		return errorJSON(ctx, err)
	}
	cmd, err := commands.NewEditOrderCommand(params)
	if err != nil {
		return errorJSON(ctx, err)
	}

	orders, err := s.editOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorJSON(ctx, err)
	}
	return ctx.JSON(http.StatusOK, wire.FromDomainSlice(orders))
}

// DeleteOrder handles DELETE /api/v1/orders/:id.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequestJSON(ctx, "invalid order id")
	}

	cmd, err := commands.NewDeleteOrderCommand(id)
	if err != nil {
		return errorJSON(ctx, err)
	}

	orders, err := s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorJSON(ctx, err)
	}
	return ctx.JSON(http.StatusOK, wire.FromDomainSlice(orders))
}

// MarkDelivered handles POST /api/v1/orders/:id/delivered.
func (s *Server) MarkDelivered(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequestJSON(ctx, "invalid order id")
	}

	var req markDeliveredRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequestJSON(ctx, "invalid request body")
	}
	method, err := order.PaymentMethodFromString(req.PaymentMethod)
	if err != nil {
		return errorJSON(ctx, err)
	}

	cmd, err := commands.NewMarkDeliveredCommand(id, method)
	if err != nil {
		return errorJSON(ctx, err)
	}

	orders, err := s.markDeliveredHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorJSON(ctx, err)
	}
	return ctx.JSON(http.StatusOK, wire.FromDomainSlice(orders))
}

// MoveOrder handles POST /api/v1/orders/:id/position.
func (s *Server) MoveOrder(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequestJSON(ctx, "invalid order id")
	}

	var req moveOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequestJSON(ctx, "invalid request body")
	}

	cmd, err := commands.NewMoveOrderCommand(id, req.Position)
	if err != nil {
		return errorJSON(ctx, err)
	}

	orders, err := s.moveOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorJSON(ctx, err)
	}
	return ctx.JSON(http.StatusOK, wire.FromDomainSlice(orders))
}

// ResequenceRoute handles POST /api/v1/routes/:date/resequence. The body
// may carry the operator's full visit order for the date; without one the
// current order is kept and gaps close.
func (s *Server) ResequenceRoute(ctx echo.Context) error {
	date, err := kernel.DateFromString(ctx.Param("date"))
	if err != nil {
		return errorJSON(ctx, err)
	}

	var req resequenceRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequestJSON(ctx, "invalid request body")
	}
	ids, err := req.ids()
	if err != nil {
		return badRequestJSON(ctx, "invalid order id")
	}

	cmd, err := commands.NewResequenceRouteCommand(date, ids)
	if err != nil {
		return errorJSON(ctx, err)
	}

	orders, err := s.resequenceRouteHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorJSON(ctx, err)
	}
	return ctx.JSON(http.StatusOK, wire.FromDomainSlice(orders))
}

// GetDaySchedule handles GET /api/v1/schedule/days/:date.
func (s *Server) GetDaySchedule(ctx echo.Context) error {
	date, err := kernel.DateFromString(ctx.Param("date"))
	if err != nil {
		return errorJSON(ctx, err)
	}

	query, err := queries.NewGetDayScheduleQuery(date)
	if err != nil {
		return errorJSON(ctx, err)
	}

	day, err := s.dayScheduleHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}
	return ctx.JSON(http.StatusOK, dayScheduleJSON(day))
}

// GetWeekSchedule handles GET /api/v1/schedule/weeks/:date. Any date
// inside a week selects that week.
func (s *Server) GetWeekSchedule(ctx echo.Context) error {
	date, err := kernel.DateFromString(ctx.Param("date"))
	if err != nil {
		return errorJSON(ctx, err)
	}

	query, err := queries.NewGetWeekScheduleQuery(date)
	if err != nil {
		return errorJSON(ctx, err)
	}

	week, err := s.weekScheduleHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}
	return ctx.JSON(http.StatusOK, weekScheduleJSON(week))
}

// GetScheduleSummary handles GET /api/v1/schedule/summary.
func (s *Server) GetScheduleSummary(ctx echo.Context) error {
	summary, err := s.scheduleSummaryHandler.Handle(ctx.Request().Context(), queries.NewGetScheduleSummaryQuery())
	if err != nil {
		return errorJSON(ctx, err)
	}
	return ctx.JSON(http.StatusOK, summaryJSON(summary))
}

// SuspendRefresh handles POST /api/v1/refresh/suspend.
func (s *Server) SuspendRefresh(ctx echo.Context) error {
	s.refresh.Suspend()
	return ctx.NoContent(http.StatusNoContent)
}

// ResumeRefresh handles POST /api/v1/refresh/resume.
func (s *Server) ResumeRefresh(ctx echo.Context) error {
	s.refresh.Resume()
	return ctx.NoContent(http.StatusNoContent)
}

// GetCatalog handles GET /api/v1/catalog. It lists the vendor's products
// with their selling units and per-unit prices for the order form.
func (s *Server) GetCatalog(ctx echo.Context) error {
	payload, err := catalogJSON(s.catalog)
	if err != nil {
		return errorJSON(ctx, err)
	}
	return ctx.JSON(http.StatusOK, payload)
}
