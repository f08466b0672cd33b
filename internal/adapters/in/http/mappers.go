package http

import (
	"time"

	"rental/internal/adapters/in/http/api"
	"rental/internal/core/application/usecases/commands"
	"rental/internal/core/application/usecases/queries"
	"rental/internal/core/domain/model/kernel"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

func fromAPIID(id openapi_types.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(id[:])
}

func toAPIID(id kernel.UUID) openapi_types.UUID {
	return id.Bytes()
}

func toAPIDate(t time.Time) openapi_types.Date {
	return openapi_types.Date{Time: t}
}

// periodOf returns nil when neither date is sent. A single date fails in
// kernel.NewDateRange as a missing value.
func periodOf(start, end *openapi_types.Date) (*kernel.DateRange, error) {
	if start == nil && end == nil {
		return nil, nil
	}

	var s, e time.Time
	if start != nil {
		s = start.Time
	}
	if end != nil {
		e = end.Time
	}

	period, err := kernel.NewDateRange(s, e)
	if err != nil {
		return nil, err
	}
	return &period, nil
}

// productFields treats the body as a full replacement; an absent isRentable means rentable.
func productFields(in api.ProductInput) (commands.ProductFields, error) {
	categoryID, err := fromAPIID(in.CategoryId)
	if err != nil {
		return commands.ProductFields{}, err
	}

	fields := commands.ProductFields{
		Name:       in.Name,
		PriceDaily: in.PriceDaily,
		CategoryID: categoryID,
		IsRentable: true,
	}
	if in.Description != nil {
		fields.Description = *in.Description
	}
	if in.Image != nil {
		fields.Image = *in.Image
	}
	if in.TotalStock != nil {
		fields.TotalStock = *in.TotalStock
	}
	if in.IsRentable != nil {
		fields.IsRentable = *in.IsRentable
	}
	return fields, nil
}

func toAPICategories(categories []queries.CategoryResponse) []api.Category {
	out := make([]api.Category, len(categories))
	for i, c := range categories {
		out[i] = api.Category{
			Id:          toAPIID(c.ID),
			Name:        c.Name,
			Slug:        c.Slug,
			Description: c.Description,
		}
	}
	return out
}

func toAPIProduct(p queries.ProductResponse) api.Product {
	out := api.Product{
		Id:             toAPIID(p.ID),
		CategoryId:     toAPIID(p.CategoryID),
		CategoryName:   p.CategoryName,
		Name:           p.Name,
		Description:    p.Description,
		Image:          p.Image,
		PriceDaily:     p.PriceDaily.String(),
		TotalStock:     p.TotalStock,
		AvailableStock: p.AvailableStock,
		IsRentable:     p.IsRentable,
	}
	if p.VendorID != nil {
		vendorID := toAPIID(*p.VendorID)
		out.VendorId = &vendorID
	}
	return out
}

func toAPIProducts(products []queries.ProductResponse) []api.Product {
	out := make([]api.Product, len(products))
	for i, p := range products {
		out[i] = toAPIProduct(p)
	}
	return out
}

func toAPICart(cart *queries.GetCartQueryResponse) api.Cart {
	out := api.Cart{
		StartDate: toAPIDate(cart.StartDate),
		EndDate:   toAPIDate(cart.EndDate),
		Days:      cart.Days,
		Total:     cart.Total.String(),
		Estimate:  cart.Estimate.String(),
		Lines:     make([]api.CartLine, len(cart.Lines)),
	}
	if cart.OrderID != nil {
		orderID := toAPIID(*cart.OrderID)
		out.OrderId = &orderID
	}
	for i, l := range cart.Lines {
		out.Lines[i] = api.CartLine{
			LineId:      toAPIID(l.LineID),
			ProductId:   toAPIID(l.ProductID),
			ProductName: l.ProductName,
			Image:       l.Image,
			Quantity:    l.Quantity,
			Price:       l.Price.String(),
			Subtotal:    l.Subtotal.String(),
		}
	}
	return out
}

func toAPIOrder(o queries.OrderResponse) api.Order {
	out := api.Order{
		Id:            toAPIID(o.ID),
		CustomerId:    toAPIID(o.CustomerID),
		CustomerName:  o.CustomerName,
		CustomerEmail: o.CustomerEmail,
		Status:        o.Status.String(),
		StartDate:     toAPIDate(o.StartDate),
		EndDate:       toAPIDate(o.EndDate),
		Days:          o.Days,
		Total:         o.Total.String(),
		Estimate:      o.Estimate.String(),
		CreatedAt:     o.CreatedAt,
		Lines:         make([]api.OrderLine, len(o.Lines)),
	}
	for i, l := range o.Lines {
		out.Lines[i] = api.OrderLine{
			LineId:      toAPIID(l.LineID),
			ProductId:   toAPIID(l.ProductID),
			ProductName: l.ProductName,
			Quantity:    l.Quantity,
			Price:       l.Price.String(),
			Subtotal:    l.Subtotal.String(),
		}
	}
	return out
}

func toAPIOrders(orders []queries.OrderResponse) []api.Order {
	out := make([]api.Order, len(orders))
	for i, o := range orders {
		out[i] = toAPIOrder(o)
	}
	return out
}

func toAPIUsers(users []queries.UserResponse) []api.User {
	out := make([]api.User, len(users))
	for i, u := range users {
		out[i] = api.User{
			Id:            toAPIID(u.ID),
			Email:         u.Email,
			Name:          u.Name,
			Role:          u.Role.String(),
			CreatedAt:     u.CreatedAt,
			IsMasterAdmin: u.IsMasterAdmin,
		}
	}
	return out
}

func toAPIAdminStats(stats *queries.AdminStatsResponse) api.AdminStats {
	return api.AdminStats{
		Users:        stats.Users,
		Vendors:      stats.Vendors,
		Customers:    stats.Customers,
		Products:     stats.Products,
		Orders:       stats.Orders,
		Revenue:      stats.Revenue.String(),
		RecentOrders: toAPIOrders(stats.RecentOrders),
	}
}
