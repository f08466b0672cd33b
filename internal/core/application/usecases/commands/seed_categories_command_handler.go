package commands

import (
	"context"
)

type SeedCategoriesCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewSeedCategoriesCommandHandler(uowFactory CatalogUoWFactory) SeedCategoriesCommandHandler {
	return SeedCategoriesCommandHandler{uowFactory: uowFactory}
}

// Handle upserts all categories in one transaction.
func (h SeedCategoriesCommandHandler) Handle(ctx context.Context, cmd SeedCategoriesCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	categoryRepo := uow.CategoryRepository()
	for _, c := range cmd.Categories() {
		if err := categoryRepo.UpsertBySlug(ctx, c); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
