package userrepo

import (
	"context"
	"errors"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/core/domain/model/user"
	"rental/internal/core/ports"
	"rental/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormUserRepository implements ports.UserRepository.
type GormUserRepository struct {
	db *gorm.DB
}

func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

func (r *GormUserRepository) Get(ctx context.Context, id kernel.UUID) (*user.Account, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto UserDTO
	err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("user", id.String())
		}
		return nil, errs.NewStorageError("get user", err)
	}

	return dto.toDomain()
}

// Delete refuses to remove a user that rental orders or products still point to.
// customer_id and vendor_id carry no foreign keys, so the check is explicit.
func (r *GormUserRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	var referenced bool
	err := r.db.WithContext(ctx).Raw(`
		SELECT EXISTS (SELECT 1 FROM rental_orders WHERE customer_id = ?)
		    OR EXISTS (SELECT 1 FROM products WHERE vendor_id = ?)`,
		id.Bytes(), id.Bytes(),
	).Scan(&referenced).Error
	if err != nil {
		return errs.NewStorageError("check user references", err)
	}
	if referenced {
		return ports.ErrUserIsReferenced
	}

	result := r.db.WithContext(ctx).Delete(&UserDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return errs.NewStorageError("delete user", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("user", id.String())
	}

	return nil
}
