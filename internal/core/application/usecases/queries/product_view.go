package queries

import (
	"database/sql"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductResponse is a catalog entry. VendorID is nil for products owned by the platform.
type ProductResponse struct {
	ID             kernel.UUID
	VendorID       *kernel.UUID
	CategoryID     kernel.UUID
	CategoryName   string
	Name           string
	Description    string
	Image          string
	PriceDaily     kernel.Money
	TotalStock     int
	AvailableStock int
	IsRentable     bool
}

const productColumns = `
		SELECT
			p.id,
			p.vendor_id,
			p.category_id,
			c.name,
			p.name,
			COALESCE(p.description, ''),
			COALESCE(p.image, ''),
			p.price_daily,
			p.total_stock,
			p.available_stock,
			p.is_rentable
		FROM products p
		JOIN categories c ON c.id = p.category_id`

func scanProduct(rows *sql.Rows) (ProductResponse, error) {
	var (
		p              ProductResponse
		id, categoryID uuid.UUID
		vendorID       uuid.NullUUID
		price          decimal.Decimal
	)

	err := rows.Scan(
		&id,
		&vendorID,
		&categoryID,
		&p.CategoryName,
		&p.Name,
		&p.Description,
		&p.Image,
		&price,
		&p.TotalStock,
		&p.AvailableStock,
		&p.IsRentable,
	)
	if err != nil {
		return ProductResponse{}, errs.NewStorageError("scan product", err)
	}

	if p.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return ProductResponse{}, err
	}
	if p.CategoryID, err = kernel.UUIDFromBytes(categoryID[:]); err != nil {
		return ProductResponse{}, err
	}
	if vendorID.Valid {
		vendor, vErr := kernel.UUIDFromBytes(vendorID.UUID[:])
		if vErr != nil {
			return ProductResponse{}, vErr
		}
		p.VendorID = &vendor
	}
	if p.PriceDaily, err = kernel.NewMoney(price); err != nil {
		return ProductResponse{}, err
	}

	return p, nil
}
