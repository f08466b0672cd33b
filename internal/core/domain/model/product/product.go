package product

import (
	"errors"
	"fmt"
	"strings"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/pkg/errs"
)

// PlaceholderImage is used when a product is created without an image.
const PlaceholderImage = "https://placehold.co/400x300?text=No+Image"

var (
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct or RestoreProduct")

	// ErrInsufficientStock is returned when a pickup needs more units than are available.
	ErrInsufficientStock = errs.NewValueIsInvalidErrorWithCause("availableStock", errors.New("insufficient stock"))
)

// Details are the editable attributes of a product.
type Details struct {
	Name        string
	Description string
	Image       string
	CategoryID  kernel.UUID
	PriceDaily  kernel.Money
	TotalStock  int
	IsRentable  bool
}

// Product is a rentable catalog item. availableStock counts units not currently
// picked up by a customer; it is adjusted only by order lifecycle transitions
// and by changes to totalStock.
type Product struct {
	id             kernel.UUID
	vendorID       *kernel.UUID
	details        Details
	availableStock int
	isConstructed  bool
}

// NewProduct creates a rentable product with all of its stock available.
// vendorID is nil for products created by an admin.
func NewProduct(id kernel.UUID, vendorID *kernel.UUID, details Details) (*Product, error) {
	details.IsRentable = true
	return RestoreProduct(id, vendorID, details, details.TotalStock)
}

// RestoreProduct rebuilds a persisted product.
func RestoreProduct(id kernel.UUID, vendorID *kernel.UUID, details Details, availableStock int) (*Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if vendorID != nil {
		if err := vendorID.Validate(); err != nil {
			return nil, err
		}
	}

	details, err := normalize(details)
	if err != nil {
		return nil, err
	}
	if availableStock < 0 || availableStock > details.TotalStock {
		return nil, errs.NewValueIsOutOfRangeError("availableStock", availableStock, 0, details.TotalStock)
	}

	return &Product{
		id:             id,
		vendorID:       vendorID,
		details:        details,
		availableStock: availableStock,
		isConstructed:  true,
	}, nil
}

func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

func (p *Product) ID() kernel.UUID { return p.id }
func (p *Product) VendorID() *kernel.UUID { return p.vendorID }
func (p *Product) Details() Details { return p.details }
func (p *Product) Name() string { return p.details.Name }
func (p *Product) PriceDaily() kernel.Money { return p.details.PriceDaily }
func (p *Product) TotalStock() int { return p.details.TotalStock }
func (p *Product) AvailableStock() int { return p.availableStock }
func (p *Product) IsRentable() bool { return p.details.IsRentable }

// CanBeManagedBy reports whether actor may edit or delete the product:
// any admin, or the vendor that owns it.
func (p *Product) CanBeManagedBy(actor kernel.Actor) bool {
	if actor.IsAdmin() {
		return true
	}
	return actor.IsVendor() && p.vendorID != nil && actor.Is(*p.vendorID)
}

// Update replaces the editable attributes. A change of total stock shifts available
// stock by the same delta; lowering total stock below the units currently rented out
// is rejected.
func (p *Product) Update(details Details) error {
	details, err := normalize(details)
	if err != nil {
		return err
	}

	rentedOut := p.details.TotalStock - p.availableStock
	if details.TotalStock < rentedOut {
		return errs.NewValueIsOutOfRangeError("totalStock", details.TotalStock, rentedOut, "unbounded")
	}

	p.availableStock = details.TotalStock - rentedOut
	p.details = details
	return nil
}

// Reserve takes quantity units out of available stock.
func (p *Product) Reserve(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, "unbounded")
	}
	if quantity > p.availableStock {
		return fmt.Errorf("%w: product %s has %d, %d requested",
			ErrInsufficientStock, p.id, p.availableStock, quantity)
	}
	p.availableStock -= quantity
	return nil
}

// Release puts quantity units back, never exceeding total stock.
func (p *Product) Release(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, "unbounded")
	}
	p.availableStock = min(p.availableStock+quantity, p.details.TotalStock)
	return nil
}

func normalize(d Details) (Details, error) {
	d.Name = strings.TrimSpace(d.Name)
	d.Description = strings.TrimSpace(d.Description)
	d.Image = strings.TrimSpace(d.Image)
	if d.Image == "" {
		d.Image = PlaceholderImage
	}

	var problems []error
	if d.Name == "" {
		problems = append(problems, errs.NewValueIsRequiredError("name"))
	}
	if err := d.CategoryID.Validate(); err != nil {
		problems = append(problems, errs.NewValueIsRequiredError("categoryId"))
	}
	if err := d.PriceDaily.Validate(); err != nil {
		problems = append(problems, errs.NewValueIsRequiredError("priceDaily"))
	}
	if d.TotalStock < 1 {
		problems = append(problems, errs.NewValueIsOutOfRangeError("totalStock", d.TotalStock, 1, "unbounded"))
	}

	if len(problems) > 0 {
		return Details{}, errors.Join(problems...)
	}
	return d, nil
}
