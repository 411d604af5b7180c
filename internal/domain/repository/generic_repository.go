package repository

import (
	"context"

	"hrcore/internal/domain/entity"
)

// GenericRepository is the contract for the shared lookup tables: branch
// offices and payment methods.
type GenericRepository interface {
	AllBranchOffices(ctx context.Context) ([]*entity.BranchOffice, error)
	BranchOfficeByID(ctx context.Context, id int64) (*entity.BranchOffice, error)
	BranchOfficesByName(ctx context.Context, pattern string) ([]*entity.BranchOffice, error)
	SaveBranchOffice(ctx context.Context, bo *entity.BranchOffice) (int64, error)
	UpdateBranchOffice(ctx context.Context, id int64, bo *entity.BranchOffice) error

	AllPaymentMethods(ctx context.Context) ([]*entity.PaymentMethod, error)
	PaymentMethodByID(ctx context.Context, id int64) (*entity.PaymentMethod, error)
	PaymentMethodsByName(ctx context.Context, pattern string) ([]*entity.PaymentMethod, error)
	SavePaymentMethod(ctx context.Context, pm *entity.PaymentMethod) (int64, error)
	UpdatePaymentMethod(ctx context.Context, id int64, pm *entity.PaymentMethod) error
}
