package postgres

import (
	"context"
	"fmt"

	"hrcore/internal/domain/entity"
	"hrcore/internal/domain/repository"
	"hrcore/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const faultDateLayout = "2006-01-02"

// faultRepository implements the repository.FaultRepository interface using GORM.
type faultRepository struct {
	db *gorm.DB
}

// NewFaultRepository is the constructor for faultRepository.
func NewFaultRepository(db *gorm.DB) repository.FaultRepository {
	return &faultRepository{db: db}
}

// All lists every absence record.
func (repo *faultRepository) All(ctx context.Context) ([]*entity.Fault, error) {
	var rows []*model.FaultRow
	if err := repo.db.WithContext(ctx).Raw(sqlAllFaults).Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list faults")
	}

	return toFaultsDomain(rows), nil
}

// ByID retrieves a single absence record.
func (repo *faultRepository) ByID(ctx context.Context, faultID int64) (*entity.Fault, error) {
	var rows []*model.FaultRow
	if err := repo.db.WithContext(ctx).Raw(sqlFaultByID, faultID).Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find fault by id")
	}
	if len(rows) == 0 {
		return nil, repository.ErrNotFound
	}

	return toFaultDomain(rows[0]), nil
}

// ByUserID lists the absence records of one employee.
func (repo *faultRepository) ByUserID(ctx context.Context, userID int64) ([]*entity.Fault, error) {
	var rows []*model.FaultRow
	if err := repo.db.WithContext(ctx).Raw(sqlFaultsByUserID, userID).Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list faults by user")
	}

	return toFaultsDomain(rows), nil
}

// CurrentByUserID lists the absence records of one employee whose day range
// covers today.
func (repo *faultRepository) CurrentByUserID(ctx context.Context, userID int64) ([]*entity.Fault, error) {
	var rows []*model.FaultRow
	if err := repo.db.WithContext(ctx).Raw(sqlCurrentFaultsByUserID, userID).Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list current faults by user")
	}

	return toFaultsDomain(rows), nil
}

// Save persists a new absence record and returns the generated id.
func (repo *faultRepository) Save(ctx context.Context, fault *entity.Fault) (int64, error) {
	return execProcedureSave(ctx, repo.db, sqlSaveFault, fromFaultDomain(fault))
}

// Update rewrites an absence record.
func (repo *faultRepository) Update(ctx context.Context, faultID int64, fault *entity.Fault) error {
	return execProcedureUpdate(ctx, repo.db, sqlUpdateFault, fromFaultDomain(fault), faultID)
}

// Delete removes an absence record permanently.
func (repo *faultRepository) Delete(ctx context.Context, faultID int64) error {
	return execProcedureDelete(ctx, repo.db, sqlDeleteFault, faultID)
}

func toFaultDomain(data *model.FaultRow) *entity.Fault {
	if data == nil {
		return nil
	}

	return &entity.Fault{
		FaultID:   data.FaultID,
		UserID:    data.UserID,
		Reason:    data.Reason,
		StartDate: data.StartDate,
		EndDate:   data.EndDate,
	}
}

func toFaultsDomain(rows []*model.FaultRow) []*entity.Fault {
	faults := make([]*entity.Fault, 0, len(rows))
	for _, row := range rows {
		faults = append(faults, toFaultDomain(row))
	}

	return faults
}

// fromFaultDomain collapses the date pair into the daterange literal the
// procedures expect.
func fromFaultDomain(data *entity.Fault) *model.FaultPayload {
	if data == nil {
		return nil
	}

	return &model.FaultPayload{
		UserID:        data.UserID,
		Justification: data.Reason,
		Date: fmt.Sprintf("[%s,%s]",
			data.StartDate.Format(faultDateLayout),
			data.EndDate.Format(faultDateLayout)),
	}
}
