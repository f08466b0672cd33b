package ports

import (
	"context"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/core/domain/model/user"
)

// UserRepository manages registered accounts.
type UserRepository interface {
	Get(ctx context.Context, id kernel.UUID) (*user.Account, error)

	// Delete removes the account. Fails with ErrUserIsReferenced while orders or
	// products still belong to it.
	Delete(ctx context.Context, id kernel.UUID) error
}
