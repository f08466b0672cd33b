package http

import (
	"net/http"

	"rental/internal/adapters/in/http/api"
	"rental/internal/core/application/usecases/commands"
	"rental/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// GetCart handles GET /api/v1/cart.
func (s *Server) GetCart(ctx echo.Context) error {
	cart, err := s.h.GetCart.Handle(ctx.Request().Context(), queries.NewGetCartQuery(actor(ctx)))
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toAPICart(cart))
}

// AddCartLine handles POST /api/v1/cart/lines. The line is priced at the product's
// current daily price and the updated cart is returned.
func (s *Server) AddCartLine(ctx echo.Context) error {
	caller := actor(ctx)
	if err := caller.Authenticate(); err != nil {
		return s.fail(ctx, err)
	}

	var body api.NewCartLine
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	productID, err := fromAPIID(body.ProductId)
	if err != nil {
		return s.fail(ctx, err)
	}
	period, err := periodOf(body.StartDate, body.EndDate)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetProductQuery(productID)
	if err != nil {
		return s.fail(ctx, err)
	}
	p, err := s.h.GetProduct.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewAddLineCommand(caller, productID, p.PriceDaily, period)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.h.AddLine.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return s.GetCart(ctx)
}

// RemoveCartLine handles DELETE /api/v1/cart/lines/{lineId}.
func (s *Server) RemoveCartLine(ctx echo.Context, lineId openapi_types.UUID) error {
	id, err := fromAPIID(lineId)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewRemoveLineCommand(actor(ctx), id)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.h.RemoveLine.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return s.GetCart(ctx)
}
