package postgres

import (
	"context"

	"hrcore/internal/domain/entity"
	"hrcore/internal/domain/repository"
	"hrcore/internal/domain/service"
	"hrcore/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// roleResolver implements service.RoleResolver against the role lookup table.
// Authorization checks go through here on every request so that role changes
// take effect immediately, regardless of what any outstanding token claims.
type roleResolver struct {
	db *gorm.DB
}

// NewRoleResolver is the constructor for roleResolver.
func NewRoleResolver(db *gorm.DB) service.RoleResolver {
	return &roleResolver{db: db}
}

// CurrentRole returns the role currently stored for the user.
func (r *roleResolver) CurrentRole(ctx context.Context, userID int64) (*entity.Role, error) {
	var rows []*model.RoleRow
	if err := r.db.WithContext(ctx).Raw(sqlRoleByUserID, userID).Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to resolve role by user id")
	}
	if len(rows) == 0 {
		return nil, repository.ErrUserNotFound
	}

	return &entity.Role{RoleID: rows[0].RoleID, Name: rows[0].Name}, nil
}
