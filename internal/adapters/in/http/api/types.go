// Package api holds the HTTP contract of the service: the OpenAPI document in
// openapi.yaml, the request and response bodies, and the routing glue that binds
// path and query parameters before calling a ServerInterface.
package api

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type Category struct {
	Id          openapi_types.UUID `json:"id"`
	Name        string             `json:"name"`
	Slug        string             `json:"slug"`
	Description string             `json:"description"`
}

type Product struct {
	Id             openapi_types.UUID  `json:"id"`
	VendorId       *openapi_types.UUID `json:"vendorId"`
	CategoryId     openapi_types.UUID  `json:"categoryId"`
	CategoryName   string              `json:"categoryName"`
	Name           string              `json:"name"`
	Description    string              `json:"description"`
	Image          string              `json:"image"`
	PriceDaily     string              `json:"priceDaily"`
	TotalStock     int                 `json:"totalStock"`
	AvailableStock int                 `json:"availableStock"`
	IsRentable     bool                `json:"isRentable"`
}

type ProductInput struct {
	Name        string             `json:"name"`
	Description *string            `json:"description,omitempty"`
	Image       *string            `json:"image,omitempty"`
	PriceDaily  string             `json:"priceDaily"`
	TotalStock  *int               `json:"totalStock,omitempty"`
	CategoryId  openapi_types.UUID `json:"categoryId"`
	IsRentable  *bool              `json:"isRentable,omitempty"`
}

type NewCartLine struct {
	ProductId openapi_types.UUID  `json:"productId"`
	StartDate *openapi_types.Date `json:"startDate,omitempty"`
	EndDate   *openapi_types.Date `json:"endDate,omitempty"`
}

type CartLine struct {
	LineId      openapi_types.UUID `json:"lineId"`
	ProductId   openapi_types.UUID `json:"productId"`
	ProductName string             `json:"productName"`
	Image       string             `json:"image"`
	Quantity    int                `json:"quantity"`
	Price       string             `json:"price"`
	Subtotal    string             `json:"subtotal"`
}

type Cart struct {
	OrderId   *openapi_types.UUID `json:"orderId"`
	StartDate openapi_types.Date  `json:"startDate"`
	EndDate   openapi_types.Date  `json:"endDate"`
	Days      int                 `json:"days"`
	Total     string              `json:"total"`
	Estimate  string              `json:"estimate"`
	Lines     []CartLine          `json:"lines"`
}

type OrderLine struct {
	LineId      openapi_types.UUID `json:"lineId"`
	ProductId   openapi_types.UUID `json:"productId"`
	ProductName string             `json:"productName"`
	Quantity    int                `json:"quantity"`
	Price       string             `json:"price"`
	Subtotal    string             `json:"subtotal"`
}

type Order struct {
	Id            openapi_types.UUID `json:"id"`
	CustomerId    openapi_types.UUID `json:"customerId"`
	CustomerName  string             `json:"customerName"`
	CustomerEmail string             `json:"customerEmail"`
	Status        string             `json:"status"`
	StartDate     openapi_types.Date `json:"startDate"`
	EndDate       openapi_types.Date `json:"endDate"`
	Days          int                `json:"days"`
	Total         string             `json:"total"`
	Estimate      string             `json:"estimate"`
	CreatedAt     time.Time          `json:"createdAt"`
	Lines         []OrderLine        `json:"lines"`
}

type User struct {
	Id            openapi_types.UUID `json:"id"`
	Email         string             `json:"email"`
	Name          string             `json:"name"`
	Role          string             `json:"role"`
	CreatedAt     time.Time          `json:"createdAt"`
	IsMasterAdmin bool               `json:"isMasterAdmin"`
}

type AdminStats struct {
	Users        int     `json:"users"`
	Vendors      int     `json:"vendors"`
	Customers    int     `json:"customers"`
	Products     int     `json:"products"`
	Orders       int     `json:"orders"`
	Revenue      string  `json:"revenue"`
	RecentOrders []Order `json:"recentOrders"`
}

type StatusUpdate struct {
	Status string `json:"status"`
}

type ListProductsParams struct {
	CategoryId *openapi_types.UUID `form:"categoryId,omitempty" json:"categoryId,omitempty"`
}

type ListOrdersParams struct {
	Status *[]string `form:"status,omitempty" json:"status,omitempty"`
}
