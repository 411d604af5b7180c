package postgres

import (
	"context"
	"strings"

	"hrcore/internal/domain/entity"
	"hrcore/internal/domain/repository"
	"hrcore/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// genericRepository implements repository.GenericRepository using GORM.
type genericRepository struct {
	db *gorm.DB
}

// NewGenericRepository is the constructor for genericRepository.
func NewGenericRepository(db *gorm.DB) repository.GenericRepository {
	return &genericRepository{db: db}
}

// AllBranchOffices lists the branch-office catalog.
func (repo *genericRepository) AllBranchOffices(ctx context.Context) ([]*entity.BranchOffice, error) {
	var rows []*model.BranchOfficeRow
	if err := repo.db.WithContext(ctx).Raw(sqlAllBranchOffices).Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list branch offices")
	}

	return toBranchOfficesDomain(rows), nil
}

// BranchOfficeByID retrieves a single branch office.
func (repo *genericRepository) BranchOfficeByID(ctx context.Context, id int64) (*entity.BranchOffice, error) {
	var rows []*model.BranchOfficeRow
	if err := repo.db.WithContext(ctx).Raw(sqlBranchOfficeByID, id).Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find branch office")
	}
	if len(rows) == 0 {
		return nil, repository.ErrNotFound
	}

	return toBranchOfficeDomain(rows[0]), nil
}

// BranchOfficesByName lists branch offices whose name contains the pattern.
func (repo *genericRepository) BranchOfficesByName(ctx context.Context, pattern string) ([]*entity.BranchOffice, error) {
	var rows []*model.BranchOfficeRow
	arg := "%" + strings.ToLower(pattern) + "%"
	if err := repo.db.WithContext(ctx).Raw(sqlBranchOfficesByName, arg).Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to search branch offices")
	}

	return toBranchOfficesDomain(rows), nil
}

// SaveBranchOffice persists a new branch office and returns the generated id.
func (repo *genericRepository) SaveBranchOffice(ctx context.Context, bo *entity.BranchOffice) (int64, error) {
	return execProcedureSave(ctx, repo.db, sqlSaveBranchOffice, fromBranchOfficeDomain(bo))
}

// UpdateBranchOffice rewrites a branch office.
func (repo *genericRepository) UpdateBranchOffice(ctx context.Context, id int64, bo *entity.BranchOffice) error {
	return execProcedureUpdate(ctx, repo.db, sqlUpdateBranchOffice, fromBranchOfficeDomain(bo), id)
}

// AllPaymentMethods lists the payment-method catalog.
func (repo *genericRepository) AllPaymentMethods(ctx context.Context) ([]*entity.PaymentMethod, error) {
	var rows []*model.PaymentMethodRow
	if err := repo.db.WithContext(ctx).Raw(sqlAllPaymentMethods).Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list payment methods")
	}

	return toPaymentMethodsDomain(rows), nil
}

// PaymentMethodByID retrieves a single payment method.
func (repo *genericRepository) PaymentMethodByID(ctx context.Context, id int64) (*entity.PaymentMethod, error) {
	var rows []*model.PaymentMethodRow
	if err := repo.db.WithContext(ctx).Raw(sqlPaymentMethodByID, id).Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find payment method")
	}
	if len(rows) == 0 {
		return nil, repository.ErrNotFound
	}

	return &entity.PaymentMethod{PaymentMethodID: rows[0].PaymentMethodID, Name: rows[0].Name}, nil
}

// PaymentMethodsByName lists payment methods whose name contains the pattern.
func (repo *genericRepository) PaymentMethodsByName(ctx context.Context, pattern string) ([]*entity.PaymentMethod, error) {
	var rows []*model.PaymentMethodRow
	arg := "%" + strings.ToLower(pattern) + "%"
	if err := repo.db.WithContext(ctx).Raw(sqlPaymentMethodsByName, arg).Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to search payment methods")
	}

	return toPaymentMethodsDomain(rows), nil
}

// SavePaymentMethod persists a new payment method and returns the generated id.
func (repo *genericRepository) SavePaymentMethod(ctx context.Context, pm *entity.PaymentMethod) (int64, error) {
	return execProcedureSave(ctx, repo.db, sqlSavePaymentMethod, &model.PaymentMethodPayload{PaymentMethod: pm.Name})
}

// UpdatePaymentMethod rewrites a payment method.
func (repo *genericRepository) UpdatePaymentMethod(ctx context.Context, id int64, pm *entity.PaymentMethod) error {
	return execProcedureUpdate(ctx, repo.db, sqlUpdatePaymentMethod, &model.PaymentMethodPayload{PaymentMethod: pm.Name}, id)
}

func toBranchOfficeDomain(data *model.BranchOfficeRow) *entity.BranchOffice {
	if data == nil {
		return nil
	}

	return &entity.BranchOffice{
		BranchOfficeID: data.BranchOfficeID,
		Name:           data.Name,
		Address:        data.Address,
		CityID:         data.CityID,
	}
}

func toBranchOfficesDomain(rows []*model.BranchOfficeRow) []*entity.BranchOffice {
	offices := make([]*entity.BranchOffice, 0, len(rows))
	for _, row := range rows {
		offices = append(offices, toBranchOfficeDomain(row))
	}

	return offices
}

func fromBranchOfficeDomain(data *entity.BranchOffice) *model.BranchOfficePayload {
	if data == nil {
		return nil
	}

	return &model.BranchOfficePayload{
		BranchOffice: data.Name,
		Address:      data.Address,
		CityID:       data.CityID,
	}
}

func toPaymentMethodsDomain(rows []*model.PaymentMethodRow) []*entity.PaymentMethod {
	methods := make([]*entity.PaymentMethod, 0, len(rows))
	for _, row := range rows {
		methods = append(methods, &entity.PaymentMethod{PaymentMethodID: row.PaymentMethodID, Name: row.Name})
	}

	return methods
}
