package usecase

import (
	"context"

	"hrcore/internal/domain/entity"
)

// GenericUsecase defines the shared-lookup operations: branch offices and
// payment methods.
type GenericUsecase interface {
	AllBranchOffices(ctx context.Context) ([]*entity.BranchOffice, error)
	BranchOfficeByID(ctx context.Context, id int64) (*entity.BranchOffice, error)
	SearchBranchOffices(ctx context.Context, name string) ([]*entity.BranchOffice, error)
	CreateBranchOffice(ctx context.Context, bo *entity.BranchOffice) (int64, error)
	UpdateBranchOffice(ctx context.Context, id int64, bo *entity.BranchOffice) error

	AllPaymentMethods(ctx context.Context) ([]*entity.PaymentMethod, error)
	PaymentMethodByID(ctx context.Context, id int64) (*entity.PaymentMethod, error)
	SearchPaymentMethods(ctx context.Context, name string) ([]*entity.PaymentMethod, error)
	CreatePaymentMethod(ctx context.Context, pm *entity.PaymentMethod) (int64, error)
	UpdatePaymentMethod(ctx context.Context, id int64, pm *entity.PaymentMethod) error
}
