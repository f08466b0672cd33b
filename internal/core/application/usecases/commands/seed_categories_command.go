package commands

import (
	"errors"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/core/domain/model/product"
	"rental/internal/pkg/guard"
)

var (
	ErrSeedCategoriesCommandIsNotConstructed = errors.New(
		"SeedCategoriesCommand must be created via NewSeedCategoriesCommand constructor",
	)
	ErrCategoriesAreRequired = errors.New("at least one category is required")
)

// CategorySeed is one entry of the category seed file.
type CategorySeed struct {
	Name        string
	Description string
}

// SeedCategoriesCommand makes sure the listed categories exist. Entries are matched by slug,
// so running it twice keeps a single row per category.
type SeedCategoriesCommand struct {
	categories []*product.Category

	guard guard.ConstructorGuard
}

func NewSeedCategoriesCommand(seeds []CategorySeed) (SeedCategoriesCommand, error) {
	if len(seeds) == 0 {
		return SeedCategoriesCommand{}, ErrCategoriesAreRequired
	}

	categories := make([]*product.Category, 0, len(seeds))
	var problems []error
	for _, s := range seeds {
		c, err := product.NewCategory(kernel.NewUUID(), s.Name, s.Description)
		if err != nil {
			problems = append(problems, err)
			continue
		}
		categories = append(categories, c)
	}
	if err := errors.Join(problems...); err != nil {
		return SeedCategoriesCommand{}, err
	}

	return SeedCategoriesCommand{
		categories: categories,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c SeedCategoriesCommand) Validate() error {
	return c.guard.Validate(ErrSeedCategoriesCommandIsNotConstructed)
}

func (c SeedCategoriesCommand) Categories() []*product.Category {
	return c.categories
}
