// Package repository defines the persistence contracts the use cases depend
// on. Concrete implementations live under internal/infra/persistence.
package repository

import (
	"context"
	"time"

	"hrcore/internal/domain/entity"
	"hrcore/internal/errors"
)

// Sentinel errors shared by repository implementations.
var (
	// ErrUserNotFound is returned when no employee row matches the lookup.
	ErrUserNotFound = errors.New("user not found")
	// ErrAccountNotFound is returned when no credential row matches the email.
	ErrAccountNotFound = errors.New("account not found")
	// ErrEmptyFilters is returned by Search when no filter is set.
	ErrEmptyFilters = errors.New("no search filters provided")
)

// UserFilters holds the optional predicates of the employee search. Every set
// field becomes one parameterized WHERE clause; at least one must be set.
type UserFilters struct {
	Name          string     // Substring match over names + last names.
	HiredAfter    *time.Time // fechaingreso lower bound.
	HiredBefore   *time.Time // fechaingreso upper bound.
	IsVirtual     *bool
	PersonStateID *int64
	RoleID        *int64
}

// Empty reports whether no filter is set.
func (f UserFilters) Empty() bool {
	return f.Name == "" && f.HiredAfter == nil && f.HiredBefore == nil &&
		f.IsVirtual == nil && f.PersonStateID == nil && f.RoleID == nil
}

// UserRepository is the contract for employee rows and their lookup tables.
type UserRepository interface {
	All(ctx context.Context) ([]*entity.User, error)
	ByID(ctx context.Context, userID int64) (*entity.User, error)
	ByIdentification(ctx context.Context, identification string) (*entity.User, error)
	Search(ctx context.Context, filters UserFilters) ([]*entity.User, error)
	Save(ctx context.Context, user *entity.User) (int64, error)
	Update(ctx context.Context, userID int64, user *entity.User) error
	Delete(ctx context.Context, userID int64) error

	// AccountByEmail returns the credential projection used at login time.
	AccountByEmail(ctx context.Context, email string) (*entity.UserAccount, error)

	AllStates(ctx context.Context) ([]*entity.UserState, error)
	AllRoles(ctx context.Context) ([]*entity.Role, error)
	AllIdentificationTypes(ctx context.Context) ([]*entity.IdentificationType, error)
}

// FaultRepository is the contract for employee absence records.
type FaultRepository interface {
	All(ctx context.Context) ([]*entity.Fault, error)
	ByID(ctx context.Context, faultID int64) (*entity.Fault, error)
	ByUserID(ctx context.Context, userID int64) ([]*entity.Fault, error)
	CurrentByUserID(ctx context.Context, userID int64) ([]*entity.Fault, error)
	Save(ctx context.Context, fault *entity.Fault) (int64, error)
	Update(ctx context.Context, faultID int64, fault *entity.Fault) error
	Delete(ctx context.Context, faultID int64) error
}
