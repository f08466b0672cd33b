package product

import (
	"errors"
	"regexp"
	"strings"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/pkg/errs"
)

var ErrCategoryIsNotConstructed = errors.New("Category must be created via NewCategory")

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lower-cases name, collapses every run of non-alphanumerics to "-" and trims dashes.
//
//	Slugify("Cameras & Lenses") // "cameras-lenses"
func Slugify(name string) string {
	return strings.Trim(nonAlphanumeric.ReplaceAllString(strings.ToLower(name), "-"), "-")
}

// Category groups products in the catalog.
type Category struct {
	id            kernel.UUID
	name          string
	slug          string
	description   string
	isConstructed bool
}

func NewCategory(id kernel.UUID, name, description string) (*Category, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	name = strings.TrimSpace(name)
	slug := Slugify(name)
	if slug == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}

	return &Category{
		id:            id,
		name:          name,
		slug:          slug,
		description:   strings.TrimSpace(description),
		isConstructed: true,
	}, nil
}

func (c *Category) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCategoryIsNotConstructed
	}
	return nil
}

func (c *Category) ID() kernel.UUID { return c.id }
func (c *Category) Name() string { return c.name }
func (c *Category) Slug() string { return c.slug }
func (c *Category) Description() string { return c.description }

// RestoreCategory rebuilds a persisted category, keeping its stored slug.
func RestoreCategory(id kernel.UUID, name, slug, description string) (*Category, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if slug == "" {
		return nil, errs.NewValueIsRequiredError("slug")
	}

	return &Category{
		id:            id,
		name:          name,
		slug:          slug,
		description:   description,
		isConstructed: true,
	}, nil
}
