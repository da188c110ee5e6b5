package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"orderboard/internal/core/application/usecases/commands"
	"orderboard/internal/core/application/usecases/queries"
	"orderboard/internal/core/domain/model/order"
	"orderboard/internal/pkg/errs"
	"orderboard/internal/pkg/lock"

	"github.com/labstack/echo/v4"
)

const defaultCleanupDays = 7

// Server wires HTTP routes to the application command and query handlers.
type Server struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler
	cleanupOrdersHandler     commands.CleanupOrdersCommandHandler
	deleteOrderHandler       commands.DeleteOrderCommandHandler

	// Query handlers
	getOrdersHandler queries.GetOrdersQueryHandler
	getOrderHandler  queries.GetOrderQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	cleanupOrdersHandler commands.CleanupOrdersCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		updateOrderStatusHandler: updateOrderStatusHandler,
		cleanupOrdersHandler:     cleanupOrdersHandler,
		deleteOrderHandler:       deleteOrderHandler,
		getOrdersHandler:         getOrdersHandler,
		getOrderHandler:          getOrderHandler,
	}
}

// RegisterRoutes mounts the public and admin routes on the echo instance.
// Admin routes require the bearer token; an empty token disables them.
func (s *Server) RegisterRoutes(e *echo.Echo, adminToken string) {
	e.GET("/health", s.Health)
	e.POST("/orders", s.CreateOrder)
	e.GET("/orders", s.GetOrders)
	e.GET("/orders/:id", s.GetOrder)
	e.POST("/orders/cleanup", s.CleanupOrders)

	admin := e.Group("/admin", BearerAuth(adminToken))
	admin.PATCH("/orders/:id/status", s.UpdateOrderStatus)
	admin.DELETE("/orders/:id", s.DeleteOrder)
}

// ErrorResponse is the uniform error body for every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// OrderListResponse wraps the order list with its count.
type OrderListResponse struct {
	Orders []*order.Order `json:"orders"`
	Count  int            `json:"count"`
}

// CreateOrderRequest is the payload for POST /orders, posted by the payment
// webhook once a checkout session is paid.
type CreateOrderRequest struct {
	ExternalRef string       `json:"externalRef"`
	Items       []order.Item `json:"items"`
	Total       float64      `json:"total"`
}

// UpdateOrderStatusRequest is the payload for PATCH /admin/orders/:id/status.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// CleanupRequest is the payload for POST /orders/cleanup.
type CleanupRequest struct {
	Days int `json:"days"`
}

// CleanupResponse reports the outcome of a cleanup run.
type CleanupResponse struct {
	Success bool   `json:"success"`
	Removed int    `json:"removed"`
	Message string `json:"message"`
}

// DeleteOrderResponse reports the outcome of an admin delete.
type DeleteOrderResponse struct {
	Success      bool         `json:"success"`
	Message      string       `json:"message"`
	DeletedOrder *order.Order `json:"deletedOrder"`
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateOrder handles POST /orders - records a paid checkout session as an order.
// Posting the same session twice returns the existing order with 200.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewCreateOrderCommand(req.ExternalRef, req.Items, req.Total)
	if err != nil {
		return errorJSON(ctx, err)
	}

	created, isNew, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if !isNew {
		return ctx.JSON(http.StatusOK, created)
	}
	return ctx.JSON(http.StatusCreated, created)
}

// GetOrders handles GET /orders - lists orders newest first.
// Supports ?status=a,b ?includeCompleted=true ?limit=n.
func (s *Server) GetOrders(ctx echo.Context) error {
	statuses, err := parseStatuses(ctx.QueryParam("status"))
	if err != nil {
		return errorJSON(ctx, err)
	}

	includeCompleted := ctx.QueryParam("includeCompleted") == "true"

	limit := 0
	if raw := ctx.QueryParam("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, ErrorResponse{
				Code:    http.StatusBadRequest,
				Message: "limit must be an integer",
			})
		}
	}

	query, err := queries.NewGetOrdersQuery(statuses, includeCompleted, limit)
	if err != nil {
		return errorJSON(ctx, err)
	}

	orders, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, OrderListResponse{Orders: orders, Count: len(orders)})
}

// GetOrder handles GET /orders/:id - looks up one order by checkout session ID
// or order number.
func (s *Server) GetOrder(ctx echo.Context) error {
	query, err := queries.NewGetOrderQuery(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, err)
	}

	found, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, found)
}

// CleanupOrders handles POST /orders/cleanup - removes delivered orders older
// than the given number of days.
func (s *Server) CleanupOrders(ctx echo.Context) error {
	req := CleanupRequest{Days: defaultCleanupDays}
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if req.Days == 0 {
		req.Days = defaultCleanupDays
	}

	cmd, err := commands.NewCleanupOrdersCommand(req.Days)
	if err != nil {
		return errorJSON(ctx, err)
	}

	removed, err := s.cleanupOrdersHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, CleanupResponse{
		Success: true,
		Removed: removed,
		Message: fmt.Sprintf("Removed %d orders older than %d days", removed, req.Days),
	})
}

// UpdateOrderStatus handles PATCH /admin/orders/:id/status - manually pins an
// order to a status and freezes it against the automatic sweep.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	var req UpdateOrderStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	status, err := order.ParseStatus(req.Status)
	if err != nil {
		return errorJSON(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(ctx.Param("id"), status)
	if err != nil {
		return errorJSON(ctx, err)
	}

	updated, err := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, updated)
}

// DeleteOrder handles DELETE /admin/orders/:id - removes an order entirely.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	cmd, err := commands.NewDeleteOrderCommand(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, err)
	}

	deleted, err := s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, DeleteOrderResponse{
		Success:      true,
		Message:      fmt.Sprintf("Order %s deleted", deleted.OrderNumber),
		DeletedOrder: deleted,
	})
}

func parseStatuses(raw string) ([]order.Status, error) {
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	statuses := make([]order.Status, 0, len(parts))
	for _, p := range parts {
		status, err := order.ParseStatus(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		statuses = append(statuses, status)
	}
	return statuses, nil
}

func errorJSON(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	case errors.Is(err, lock.ErrTimeout):
		code = http.StatusServiceUnavailable
	}

	return ctx.JSON(code, ErrorResponse{Code: code, Message: err.Error()})
}
