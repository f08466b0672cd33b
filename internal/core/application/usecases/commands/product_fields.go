package commands

import (
	"strings"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/core/domain/model/product"
)

// defaultTotalStock applies when a product form leaves the stock empty.
const defaultTotalStock = 1

// ProductFields is the raw product form shared by create and update.
// PriceDaily is kept as text so non-numeric input surfaces as a validation error.
type ProductFields struct {
	Name        string
	Description string
	Image       string
	PriceDaily  string
	TotalStock  int
	CategoryID  kernel.UUID
	IsRentable  bool
}

func (f ProductFields) details() (product.Details, error) {
	price, err := kernel.MoneyFromString(strings.TrimSpace(f.PriceDaily))
	if err != nil {
		return product.Details{}, err
	}

	stock := f.TotalStock
	if stock == 0 {
		stock = defaultTotalStock
	}

	return product.Details{
		Name:        f.Name,
		Description: f.Description,
		Image:       f.Image,
		CategoryID:  f.CategoryID,
		PriceDaily:  price,
		TotalStock:  stock,
		IsRentable:  f.IsRentable,
	}, nil
}
