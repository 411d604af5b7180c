// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"encoding/json"

	domainerrors "hrcore/internal/domain/errors"
	"hrcore/internal/errors"

	"gorm.io/gorm"
)

// Mutations go through stored procedures that take a json payload plus an
// INOUT id. Save passes id 0 and reads the generated id back from p_id,
// update passes the target id, delete takes only the id.

type procedureRow struct {
	ID int64 `gorm:"column:p_id"`
}

func execProcedureSave(ctx context.Context, db *gorm.DB, stmt string, payload any) (int64, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return 0, errors.Wrap(err, "failed to marshal procedure payload")
	}

	var row procedureRow
	if err := db.WithContext(ctx).Raw(stmt, string(body), 0).Scan(&row).Error; err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to execute save procedure")
	}

	return row.ID, nil
}

func execProcedureUpdate(ctx context.Context, db *gorm.DB, stmt string, payload any, id int64) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return errors.Wrap(err, "failed to marshal procedure payload")
	}

	if err := db.WithContext(ctx).Exec(stmt, string(body), id).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to execute update procedure")
	}

	return nil
}

func execProcedureDelete(ctx context.Context, db *gorm.DB, stmt string, id int64) error {
	if err := db.WithContext(ctx).Exec(stmt, id).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to execute delete procedure")
	}

	return nil
}
