// Package orderrepo persists rental order aggregates and their lines.
package orderrepo

import (
	"time"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ActiveQuotationIndex is the partial unique index allowing one QUOTATION per customer.
const ActiveQuotationIndex = "idx_rental_orders_active_quotation"

// RentalOrderDTO is the rental_orders row. Status holds the upper-case status name.
type RentalOrderDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CustomerID  uuid.UUID       `gorm:"type:uuid;not null;index:idx_rental_orders_customer;uniqueIndex:idx_rental_orders_active_quotation,where:status = 'QUOTATION'"` //nolint:lll
	Status      string          `gorm:"type:varchar(16);not null;index"`
	StartDate   time.Time       `gorm:"type:date;not null"`
	EndDate     time.Time       `gorm:"type:date;not null"`
	TotalAmount decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	CreatedAt   time.Time       `gorm:"not null"`
	Lines       []OrderLineDTO  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (RentalOrderDTO) TableName() string {
	return "rental_orders"
}

// OrderLineDTO is the order_lines row. Position keeps lines in the order they were added.
type OrderLineDTO struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_order_lines_order_product,priority:1"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null;index;uniqueIndex:idx_order_lines_order_product,priority:2"`
	Quantity  int             `gorm:"not null"`
	Price     decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Position  int             `gorm:"not null;default:0"`
}

func (OrderLineDTO) TableName() string {
	return "order_lines"
}

func fromDomain(o *order.RentalOrder) RentalOrderDTO {
	orderID := o.ID().Bytes()
	lines := make([]OrderLineDTO, 0, len(o.Lines()))
	for i, l := range o.Lines() {
		lines = append(lines, OrderLineDTO{
			ID:        l.ID().Bytes(),
			OrderID:   orderID,
			ProductID: l.ProductID().Bytes(),
			Quantity:  l.Quantity(),
			Price:     l.Price().Amount(),
			Position:  i,
		})
	}

	return RentalOrderDTO{
		ID:          orderID,
		CustomerID:  o.CustomerID().Bytes(),
		Status:      o.Status().String(),
		StartDate:   o.Period().Start(),
		EndDate:     o.Period().End(),
		TotalAmount: o.Total().Amount(),
		CreatedAt:   o.CreatedAt(),
		Lines:       lines,
	}
}

func toDomain(dto RentalOrderDTO) (*order.RentalOrder, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}
	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}
	period, err := kernel.NewDateRange(dto.StartDate, dto.EndDate)
	if err != nil {
		return nil, err
	}
	total, err := kernel.NewMoney(dto.TotalAmount)
	if err != nil {
		return nil, err
	}

	lines := make([]*order.Line, 0, len(dto.Lines))
	for _, lineDTO := range dto.Lines {
		l, lineErr := lineToDomain(lineDTO)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, l)
	}

	return order.RestoreRentalOrder(id, customerID, status, period, total, dto.CreatedAt, lines)
}

func lineToDomain(dto OrderLineDTO) (*order.Line, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}
	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}
	return order.RestoreLine(id, productID, dto.Quantity, price)
}
