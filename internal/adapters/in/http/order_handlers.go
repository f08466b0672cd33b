package http

import (
	"net/http"

	"rental/internal/adapters/in/http/api"
	"rental/internal/core/application/usecases/commands"
	"rental/internal/core/application/usecases/queries"
	"rental/internal/core/domain/model/kernel"
	"rental/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ListMyOrders handles GET /api/v1/orders: the caller's submitted orders.
func (s *Server) ListMyOrders(ctx echo.Context) error {
	orders, err := s.h.ListCustomerOrders.Handle(ctx.Request().Context(), queries.NewListCustomerOrdersQuery(actor(ctx)))
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toAPIOrders(orders))
}

// SubmitOrder handles POST /api/v1/orders/{orderId}/submit.
func (s *Server) SubmitOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	id, err := fromAPIID(orderId)
	if err != nil {
		return s.fail(ctx, err)
	}

	caller := actor(ctx)
	cmd, err := commands.NewSubmitQuotationCommand(caller, id)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.h.SubmitQuotation.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return s.respondOrder(ctx, caller, id)
}

// ListVendorOrders handles GET /api/v1/vendor/orders.
func (s *Server) ListVendorOrders(ctx echo.Context) error {
	orders, err := s.h.ListVendorOrders.Handle(ctx.Request().Context(), queries.NewListVendorOrdersQuery(actor(ctx)))
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toAPIOrders(orders))
}

// ListOrders handles GET /api/v1/admin/orders, the admin order board.
func (s *Server) ListOrders(ctx echo.Context, params api.ListOrdersParams) error {
	var statuses []string
	if params.Status != nil {
		statuses = *params.Status
	}

	query, err := queries.NewListOrdersQuery(actor(ctx), statuses)
	if err != nil {
		return s.fail(ctx, err)
	}
	orders, err := s.h.ListOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toAPIOrders(orders))
}

// GetOrder handles GET /api/v1/admin/orders/{orderId}.
func (s *Server) GetOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	id, err := fromAPIID(orderId)
	if err != nil {
		return s.fail(ctx, err)
	}
	return s.respondOrder(ctx, actor(ctx), id)
}

// UpdateOrderStatus handles PUT /api/v1/admin/orders/{orderId}/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context, orderId openapi_types.UUID) error {
	var body api.StatusUpdate
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	id, err := fromAPIID(orderId)
	if err != nil {
		return s.fail(ctx, err)
	}

	// An unknown name becomes order.Unknown, which the handler rejects after the role check.
	target, _ := order.ParseStatus(body.Status)

	caller := actor(ctx)
	cmd, err := commands.NewUpdateOrderStatusCommand(caller, id, target)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.h.UpdateOrderStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return s.respondOrder(ctx, caller, id)
}

func (s *Server) respondOrder(ctx echo.Context, caller kernel.Actor, orderID kernel.UUID) error {
	query, err := queries.NewGetOrderQuery(caller, orderID)
	if err != nil {
		return s.fail(ctx, err)
	}
	o, err := s.h.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toAPIOrder(*o))
}
