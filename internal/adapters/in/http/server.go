// Package http is the REST adapter of the rental marketplace. It implements
// api.ServerInterface on top of the command and query handlers and owns the
// transport concerns: bearer tokens, request validation, rate limiting and
// the mapping of core errors to status codes.
package http

import (
	"context"
	"log/slog"

	"rental/internal/adapters/in/http/api"
	"rental/internal/core/application/usecases/commands"
	"rental/internal/core/application/usecases/queries"
)

type (
	// CommandHandler is satisfied by every handler in the commands package.
	CommandHandler[C any] interface {
		Handle(ctx context.Context, cmd C) error
	}

	// QueryHandler is satisfied by every handler in the queries package.
	QueryHandler[Q, R any] interface {
		Handle(ctx context.Context, query Q) (R, error)
	}
)

// Handlers groups the use cases reachable over HTTP.
type Handlers struct {
	AddLine           CommandHandler[commands.AddLineCommand]
	RemoveLine        CommandHandler[commands.RemoveLineCommand]
	SubmitQuotation   CommandHandler[commands.SubmitQuotationCommand]
	UpdateOrderStatus CommandHandler[commands.UpdateOrderStatusCommand]
	CreateProduct     CommandHandler[commands.CreateProductCommand]
	UpdateProduct     CommandHandler[commands.UpdateProductCommand]
	DeleteProduct     CommandHandler[commands.DeleteProductCommand]
	DeleteUser        CommandHandler[commands.DeleteUserCommand]

	ListCategories     QueryHandler[queries.ListCategoriesQuery, []queries.CategoryResponse]
	ListProducts       QueryHandler[queries.ListProductsQuery, []queries.ProductResponse]
	GetProduct         QueryHandler[queries.GetProductQuery, *queries.ProductResponse]
	GetCart            QueryHandler[queries.GetCartQuery, *queries.GetCartQueryResponse]
	ListCustomerOrders QueryHandler[queries.ListCustomerOrdersQuery, []queries.OrderResponse]
	ListVendorOrders   QueryHandler[queries.ListVendorOrdersQuery, []queries.OrderResponse]
	ListOrders         QueryHandler[queries.ListOrdersQuery, []queries.OrderResponse]
	GetOrder           QueryHandler[queries.GetOrderQuery, *queries.OrderResponse]
	ListUsers          QueryHandler[queries.ListUsersQuery, []queries.UserResponse]
	AdminStats         QueryHandler[queries.AdminStatsQuery, *queries.AdminStatsResponse]
}

// Server implements api.ServerInterface.
type Server struct {
	h      Handlers
	logger *slog.Logger
}

var _ api.ServerInterface = (*Server)(nil)

func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		h:      handlers,
		logger: logger.With("component", "http"),
	}
}
