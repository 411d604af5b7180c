package service

import (
	"context"

	"hrcore/internal/domain/entity"
)

// RoleResolver resolves the role an employee holds right now. Authorization
// queries it fresh on every check instead of trusting the role a token was
// minted with, so role changes take effect without re-login.
type RoleResolver interface {
	CurrentRole(ctx context.Context, userID int64) (*entity.Role, error)
}
