package impl

import (
	"context"

	"hrcore/internal/domain/entity"
	"hrcore/internal/domain/repository"
	"hrcore/internal/usecase"

	"go.uber.org/fx"
)

// genericService implements the GenericUsecase interface.
type genericService struct {
	genericRepo repository.GenericRepository
}

// GenericServiceParams holds dependencies for genericService, injected by Fx.
type GenericServiceParams struct {
	fx.In

	GenericRepo repository.GenericRepository
}

// NewGenericService is the constructor for genericService.
func NewGenericService(params GenericServiceParams) usecase.GenericUsecase {
	return &genericService{genericRepo: params.GenericRepo}
}

func (srv *genericService) AllBranchOffices(ctx context.Context) ([]*entity.BranchOffice, error) {
	return srv.genericRepo.AllBranchOffices(ctx)
}

func (srv *genericService) BranchOfficeByID(ctx context.Context, id int64) (*entity.BranchOffice, error) {
	bo, err := srv.genericRepo.BranchOfficeByID(ctx, id)

	return bo, mapNotFound(err)
}

func (srv *genericService) SearchBranchOffices(ctx context.Context, name string) ([]*entity.BranchOffice, error) {
	return srv.genericRepo.BranchOfficesByName(ctx, name)
}

func (srv *genericService) CreateBranchOffice(ctx context.Context, bo *entity.BranchOffice) (int64, error) {
	return srv.genericRepo.SaveBranchOffice(ctx, bo)
}

func (srv *genericService) UpdateBranchOffice(ctx context.Context, id int64, bo *entity.BranchOffice) error {
	return srv.genericRepo.UpdateBranchOffice(ctx, id, bo)
}

func (srv *genericService) AllPaymentMethods(ctx context.Context) ([]*entity.PaymentMethod, error) {
	return srv.genericRepo.AllPaymentMethods(ctx)
}

func (srv *genericService) PaymentMethodByID(ctx context.Context, id int64) (*entity.PaymentMethod, error) {
	pm, err := srv.genericRepo.PaymentMethodByID(ctx, id)

	return pm, mapNotFound(err)
}

func (srv *genericService) SearchPaymentMethods(ctx context.Context, name string) ([]*entity.PaymentMethod, error) {
	return srv.genericRepo.PaymentMethodsByName(ctx, name)
}

func (srv *genericService) CreatePaymentMethod(ctx context.Context, pm *entity.PaymentMethod) (int64, error) {
	return srv.genericRepo.SavePaymentMethod(ctx, pm)
}

func (srv *genericService) UpdatePaymentMethod(ctx context.Context, id int64, pm *entity.PaymentMethod) error {
	return srv.genericRepo.UpdatePaymentMethod(ctx, id, pm)
}
