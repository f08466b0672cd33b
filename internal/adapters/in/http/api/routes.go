package api

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ServerInterface is implemented by the transport adapter, one method per operation.
type ServerInterface interface {
	ListCategories(ctx echo.Context) error
	ListProducts(ctx echo.Context, params ListProductsParams) error
	CreateProduct(ctx echo.Context) error
	GetProduct(ctx echo.Context, productId openapi_types.UUID) error
	UpdateProduct(ctx echo.Context, productId openapi_types.UUID) error
	DeleteProduct(ctx echo.Context, productId openapi_types.UUID) error
	GetCart(ctx echo.Context) error
	AddCartLine(ctx echo.Context) error
	RemoveCartLine(ctx echo.Context, lineId openapi_types.UUID) error
	ListMyOrders(ctx echo.Context) error
	SubmitOrder(ctx echo.Context, orderId openapi_types.UUID) error
	ListVendorOrders(ctx echo.Context) error
	ListOrders(ctx echo.Context, params ListOrdersParams) error
	ExportOrders(ctx echo.Context) error
	GetOrder(ctx echo.Context, orderId openapi_types.UUID) error
	UpdateOrderStatus(ctx echo.Context, orderId openapi_types.UUID) error
	GetAdminStats(ctx echo.Context) error
	ListUsers(ctx echo.Context) error
	DeleteUser(ctx echo.Context, userId openapi_types.UUID) error
}

// ServerInterfaceWrapper converts echo contexts to typed parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func (w *ServerInterfaceWrapper) ListCategories(ctx echo.Context) error {
	return w.Handler.ListCategories(ctx)
}

func (w *ServerInterfaceWrapper) ListProducts(ctx echo.Context) error {
	var params ListProductsParams
	err := runtime.BindQueryParameter("form", true, false, "categoryId", ctx.QueryParams(), &params.CategoryId)
	if err != nil {
		return badParameter("categoryId", err)
	}
	return w.Handler.ListProducts(ctx, params)
}

func (w *ServerInterfaceWrapper) CreateProduct(ctx echo.Context) error {
	return w.Handler.CreateProduct(ctx)
}

func (w *ServerInterfaceWrapper) GetProduct(ctx echo.Context) error {
	productId, err := pathUUID(ctx, "productId")
	if err != nil {
		return err
	}
	return w.Handler.GetProduct(ctx, productId)
}

func (w *ServerInterfaceWrapper) UpdateProduct(ctx echo.Context) error {
	productId, err := pathUUID(ctx, "productId")
	if err != nil {
		return err
	}
	return w.Handler.UpdateProduct(ctx, productId)
}

func (w *ServerInterfaceWrapper) DeleteProduct(ctx echo.Context) error {
	productId, err := pathUUID(ctx, "productId")
	if err != nil {
		return err
	}
	return w.Handler.DeleteProduct(ctx, productId)
}

func (w *ServerInterfaceWrapper) GetCart(ctx echo.Context) error {
	return w.Handler.GetCart(ctx)
}

func (w *ServerInterfaceWrapper) AddCartLine(ctx echo.Context) error {
	return w.Handler.AddCartLine(ctx)
}

func (w *ServerInterfaceWrapper) RemoveCartLine(ctx echo.Context) error {
	lineId, err := pathUUID(ctx, "lineId")
	if err != nil {
		return err
	}
	return w.Handler.RemoveCartLine(ctx, lineId)
}

func (w *ServerInterfaceWrapper) ListMyOrders(ctx echo.Context) error {
	return w.Handler.ListMyOrders(ctx)
}

func (w *ServerInterfaceWrapper) SubmitOrder(ctx echo.Context) error {
	orderId, err := pathUUID(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.SubmitOrder(ctx, orderId)
}

func (w *ServerInterfaceWrapper) ListVendorOrders(ctx echo.Context) error {
	return w.Handler.ListVendorOrders(ctx)
}

func (w *ServerInterfaceWrapper) ListOrders(ctx echo.Context) error {
	var params ListOrdersParams
	err := runtime.BindQueryParameter("form", true, false, "status", ctx.QueryParams(), &params.Status)
	if err != nil {
		return badParameter("status", err)
	}
	return w.Handler.ListOrders(ctx, params)
}

func (w *ServerInterfaceWrapper) ExportOrders(ctx echo.Context) error {
	return w.Handler.ExportOrders(ctx)
}

func (w *ServerInterfaceWrapper) GetOrder(ctx echo.Context) error {
	orderId, err := pathUUID(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.GetOrder(ctx, orderId)
}

func (w *ServerInterfaceWrapper) UpdateOrderStatus(ctx echo.Context) error {
	orderId, err := pathUUID(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.UpdateOrderStatus(ctx, orderId)
}

func (w *ServerInterfaceWrapper) GetAdminStats(ctx echo.Context) error {
	return w.Handler.GetAdminStats(ctx)
}

func (w *ServerInterfaceWrapper) ListUsers(ctx echo.Context) error {
	return w.Handler.ListUsers(ctx)
}

func (w *ServerInterfaceWrapper) DeleteUser(ctx echo.Context) error {
	userId, err := pathUUID(ctx, "userId")
	if err != nil {
		return err
	}
	return w.Handler.DeleteUser(ctx, userId)
}

// EchoRouter is satisfied by *echo.Echo and *echo.Group.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers mounts every operation of openapi.yaml on router.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	w := &ServerInterfaceWrapper{Handler: si}

	router.GET("/api/v1/categories", w.ListCategories)
	router.GET("/api/v1/products", w.ListProducts)
	router.POST("/api/v1/products", w.CreateProduct)
	router.GET("/api/v1/products/:productId", w.GetProduct)
	router.PUT("/api/v1/products/:productId", w.UpdateProduct)
	router.DELETE("/api/v1/products/:productId", w.DeleteProduct)
	router.GET("/api/v1/cart", w.GetCart)
	router.POST("/api/v1/cart/lines", w.AddCartLine)
	router.DELETE("/api/v1/cart/lines/:lineId", w.RemoveCartLine)
	router.GET("/api/v1/orders", w.ListMyOrders)
	router.POST("/api/v1/orders/:orderId/submit", w.SubmitOrder)
	router.GET("/api/v1/vendor/orders", w.ListVendorOrders)
	router.GET("/api/v1/admin/orders", w.ListOrders)
	router.GET("/api/v1/admin/orders/export", w.ExportOrders)
	router.GET("/api/v1/admin/orders/:orderId", w.GetOrder)
	router.PUT("/api/v1/admin/orders/:orderId/status", w.UpdateOrderStatus)
	router.GET("/api/v1/admin/stats", w.GetAdminStats)
	router.GET("/api/v1/admin/users", w.ListUsers)
	router.DELETE("/api/v1/admin/users/:userId", w.DeleteUser)
}

func pathUUID(ctx echo.Context, name string) (openapi_types.UUID, error) {
	var id openapi_types.UUID
	err := runtime.BindStyledParameterWithOptions("simple", name, ctx.Param(name), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return id, badParameter(name, err)
	}
	return id, nil
}

func badParameter(name string, err error) error {
	return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
}
