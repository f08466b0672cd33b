package queries

import (
	"context"
	"time"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/core/domain/model/user"
	"rental/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListUsersQueryHandler struct {
	db               *gorm.DB
	masterAdminEmail string
}

func NewListUsersQueryHandler(db *gorm.DB, masterAdminEmail string) ListUsersQueryHandler {
	return ListUsersQueryHandler{db: db, masterAdminEmail: masterAdminEmail}
}

// Handle returns all accounts, newest first. Admin only.
func (h ListUsersQueryHandler) Handle(ctx context.Context, query ListUsersQuery) ([]UserResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	actor := query.Actor()
	if err := actor.Authenticate(); err != nil {
		return nil, err
	}
	if !actor.IsAdmin() {
		return nil, errs.NewForbiddenError("list users", "requires "+kernel.RoleAdmin.String())
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			email,
			COALESCE(name, ''),
			role,
			created_at
		FROM users
		ORDER BY created_at DESC
	`).Rows()
	if err != nil {
		return nil, errs.NewStorageError("read users", err)
	}
	defer rows.Close()

	users := make([]UserResponse, 0)
	for rows.Next() {
		var (
			id                uuid.UUID
			email, name, role string
			createdAt         time.Time
		)
		if err := rows.Scan(&id, &email, &name, &role, &createdAt); err != nil {
			return nil, errs.NewStorageError("scan user", err)
		}

		userID, err := kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		account, err := user.RestoreAccount(userID, email, name, role)
		if err != nil {
			return nil, err
		}

		users = append(users, UserResponse{
			ID:            account.ID(),
			Email:         account.Email(),
			Name:          account.Name(),
			Role:          account.Role(),
			CreatedAt:     createdAt,
			IsMasterAdmin: account.IsMasterAdmin(h.masterAdminEmail),
		})
	}

	if err := rows.Err(); err != nil {
		return nil, errs.NewStorageError("read users", err)
	}
	return users, nil
}
