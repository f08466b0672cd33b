package http

import (
	"net/http"

	"rental/internal/adapters/in/http/api"
	"rental/internal/core/application/usecases/commands"
	"rental/internal/core/application/usecases/queries"
	"rental/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ListCategories handles GET /api/v1/categories.
func (s *Server) ListCategories(ctx echo.Context) error {
	categories, err := s.h.ListCategories.Handle(ctx.Request().Context(), queries.NewListCategoriesQuery())
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toAPICategories(categories))
}

// ListProducts handles GET /api/v1/products, optionally narrowed to one category.
func (s *Server) ListProducts(ctx echo.Context, params api.ListProductsParams) error {
	var categoryID *kernel.UUID
	if params.CategoryId != nil {
		id, err := fromAPIID(*params.CategoryId)
		if err != nil {
			return s.fail(ctx, err)
		}
		categoryID = &id
	}

	products, err := s.h.ListProducts.Handle(ctx.Request().Context(), queries.NewListProductsQuery(categoryID))
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toAPIProducts(products))
}

// GetProduct handles GET /api/v1/products/{productId}.
func (s *Server) GetProduct(ctx echo.Context, productId openapi_types.UUID) error {
	id, err := fromAPIID(productId)
	if err != nil {
		return s.fail(ctx, err)
	}
	return s.respondProduct(ctx, http.StatusOK, id)
}

// CreateProduct handles POST /api/v1/products. The product id is generated here.
func (s *Server) CreateProduct(ctx echo.Context) error {
	var body api.ProductInput
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	fields, err := productFields(body)
	if err != nil {
		return s.fail(ctx, err)
	}

	productID := kernel.NewUUID()
	cmd, err := commands.NewCreateProductCommand(actor(ctx), productID, fields)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.h.CreateProduct.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return s.respondProduct(ctx, http.StatusCreated, productID)
}

// UpdateProduct handles PUT /api/v1/products/{productId}.
func (s *Server) UpdateProduct(ctx echo.Context, productId openapi_types.UUID) error {
	var body api.ProductInput
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	id, err := fromAPIID(productId)
	if err != nil {
		return s.fail(ctx, err)
	}
	fields, err := productFields(body)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewUpdateProductCommand(actor(ctx), id, fields)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.h.UpdateProduct.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return s.respondProduct(ctx, http.StatusOK, id)
}

// DeleteProduct handles DELETE /api/v1/products/{productId}.
func (s *Server) DeleteProduct(ctx echo.Context, productId openapi_types.UUID) error {
	id, err := fromAPIID(productId)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewDeleteProductCommand(actor(ctx), id)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.h.DeleteProduct.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) respondProduct(ctx echo.Context, code int, productID kernel.UUID) error {
	query, err := queries.NewGetProductQuery(productID)
	if err != nil {
		return s.fail(ctx, err)
	}
	p, err := s.h.GetProduct.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(code, toAPIProduct(*p))
}
