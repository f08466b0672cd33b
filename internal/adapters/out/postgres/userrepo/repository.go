// Package userrepo reads and administers the users table,
// which is written by the identity service.
package userrepo

import (
	"context"
	"errors"
	"time"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/core/domain/model/user"
	"rental/internal/core/ports"
	"rental/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email     string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Name      string    `gorm:"type:varchar(255)"`
	Role      string    `gorm:"type:varchar(16);not null;default:CUSTOMER"`
	CreatedAt time.Time
}

func (UserDTO) TableName() string {
	return "users"
}

func (dto UserDTO) toDomain() (*user.Account, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return user.RestoreAccount(id, dto.Email, dto.Name, dto.Role)
}

// GormCustomerDirectory implements ports.CustomerDirectory.
type GormCustomerDirectory struct {
	db *gorm.DB
}

func NewGormCustomerDirectory(db *gorm.DB) *GormCustomerDirectory {
	return &GormCustomerDirectory{db: db}
}

func (d *GormCustomerDirectory) Contact(ctx context.Context, customerID kernel.UUID) (ports.Contact, error) {
	if err := customerID.Validate(); err != nil {
		return ports.Contact{}, err
	}

	var dto UserDTO
	err := d.db.WithContext(ctx).Select("email", "name").First(&dto, "id = ?", customerID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.Contact{}, errs.NewObjectNotFoundError("user", customerID.String())
		}
		return ports.Contact{}, errs.NewStorageError("get user contact", err)
	}

	return ports.Contact{Email: dto.Email, Name: dto.Name}, nil
}
