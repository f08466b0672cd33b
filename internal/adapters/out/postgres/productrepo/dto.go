// Package productrepo persists catalog products.
package productrepo

import (
	"time"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/core/domain/model/product"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductDTO is the products row.
type ProductDTO struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	VendorID       *uuid.UUID      `gorm:"type:uuid;index"`
	CategoryID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name           string          `gorm:"type:varchar(255);not null"`
	Description    string          `gorm:"type:text"`
	Image          string          `gorm:"type:text"`
	PriceDaily     decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	TotalStock     int             `gorm:"not null"`
	AvailableStock int             `gorm:"not null"`
	IsRentable     bool            `gorm:"not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (ProductDTO) TableName() string {
	return "products"
}

func fromDomain(p *product.Product) ProductDTO {
	var vendorID *uuid.UUID
	if p.VendorID() != nil {
		raw := p.VendorID().Bytes()
		vendorID = &raw
	}

	d := p.Details()
	return ProductDTO{
		ID:             p.ID().Bytes(),
		VendorID:       vendorID,
		CategoryID:     d.CategoryID.Bytes(),
		Name:           d.Name,
		Description:    d.Description,
		Image:          d.Image,
		PriceDaily:     d.PriceDaily.Amount(),
		TotalStock:     d.TotalStock,
		AvailableStock: p.AvailableStock(),
		IsRentable:     d.IsRentable,
	}
}

func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var vendorID *kernel.UUID
	if dto.VendorID != nil {
		v, vendorErr := kernel.UUIDFromBytes((*dto.VendorID)[:])
		if vendorErr != nil {
			return nil, vendorErr
		}
		vendorID = &v
	}

	categoryID, err := kernel.UUIDFromBytes(dto.CategoryID[:])
	if err != nil {
		return nil, err
	}
	price, err := kernel.NewMoney(dto.PriceDaily)
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(id, vendorID, product.Details{
		Name:        dto.Name,
		Description: dto.Description,
		Image:       dto.Image,
		CategoryID:  categoryID,
		PriceDaily:  price,
		TotalStock:  dto.TotalStock,
		IsRentable:  dto.IsRentable,
	}, dto.AvailableStock)
}
