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

// userRepository implements the repository.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a repository.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// All retrieves every employee row ordered by id.
func (repo *userRepository) All(ctx context.Context) ([]*entity.User, error) {
	var rows []*model.UserRow
	if err := repo.db.WithContext(ctx).Raw(sqlAllUsers).Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return toUsersDomain(rows), nil
}

// ByID retrieves a single employee by their unique id.
func (repo *userRepository) ByID(ctx context.Context, userID int64) (*entity.User, error) {
	var rows []*model.UserRow
	if err := repo.db.WithContext(ctx).Raw(sqlUserByID, userID).Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find user by id")
	}
	if len(rows) == 0 {
		return nil, repository.ErrUserNotFound
	}

	return toUserDomain(rows[0]), nil
}

// ByIdentification retrieves a single employee by their national identification number.
func (repo *userRepository) ByIdentification(ctx context.Context, identification string) (*entity.User, error) {
	var rows []*model.UserRow
	if err := repo.db.WithContext(ctx).Raw(sqlUserByIdentification, identification).Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find user by identification")
	}
	if len(rows) == 0 {
		return nil, repository.ErrUserNotFound
	}

	return toUserDomain(rows[0]), nil
}

// Search retrieves employees matching the given filters. Every set filter
// becomes one parameterized predicate; values never reach the SQL text.
func (repo *userRepository) Search(ctx context.Context, filters repository.UserFilters) ([]*entity.User, error) {
	if filters.Empty() {
		return nil, repository.ErrEmptyFilters
	}

	var predicates []string
	var args []any

	if filters.Name != "" {
		predicates = append(predicates, `lower(nombres) || ' ' || lower(apellidos) ILIKE ?`)
		args = append(args, "%"+strings.ToLower(filters.Name)+"%")
	}
	if filters.HiredAfter != nil {
		predicates = append(predicates, `fechaingreso > ?`)
		args = append(args, *filters.HiredAfter)
	}
	if filters.HiredBefore != nil {
		predicates = append(predicates, `fechaingreso < ?`)
		args = append(args, *filters.HiredBefore)
	}
	if filters.IsVirtual != nil {
		predicates = append(predicates, `virtual = ?`)
		args = append(args, *filters.IsVirtual)
	}
	if filters.PersonStateID != nil {
		predicates = append(predicates, `estadopersona_id = ?`)
		args = append(args, *filters.PersonStateID)
	}
	if filters.RoleID != nil {
		predicates = append(predicates, `rol_id = ?`)
		args = append(args, *filters.RoleID)
	}

	query := `SELECT ` + sqlUserColumns + `
		FROM usuarios."TB_Personales"
		WHERE ` + strings.Join(predicates, " AND ") + `
		ORDER BY personal_id ASC`

	var rows []*model.UserRow
	if err := repo.db.WithContext(ctx).Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to search users")
	}

	return toUsersDomain(rows), nil
}

// Save persists a new employee through the add-user procedure and returns the
// generated id. The caller hashes the password beforehand.
func (repo *userRepository) Save(ctx context.Context, user *entity.User) (int64, error) {
	return execProcedureSave(ctx, repo.db, sqlSaveUser, fromUserDomain(user))
}

// Update rewrites an employee row through the edit-user procedure.
func (repo *userRepository) Update(ctx context.Context, userID int64, user *entity.User) error {
	return execProcedureUpdate(ctx, repo.db, sqlUpdateUser, fromUserDomain(user), userID)
}

// Delete removes an employee row permanently.
func (repo *userRepository) Delete(ctx context.Context, userID int64) error {
	return execProcedureDelete(ctx, repo.db, sqlDeleteUser, userID)
}

// AccountByEmail returns the credential projection used at login time.
func (repo *userRepository) AccountByEmail(ctx context.Context, email string) (*entity.UserAccount, error) {
	var rows []*model.AccountRow
	if err := repo.db.WithContext(ctx).Raw(sqlUserAccountByEmail, email).Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find account by email")
	}
	if len(rows) == 0 {
		return nil, repository.ErrAccountNotFound
	}

	return &entity.UserAccount{
		UserID:   rows[0].UserID,
		Email:    rows[0].Email,
		Password: rows[0].Password,
	}, nil
}

// AllStates lists the person-state lookup table.
func (repo *userRepository) AllStates(ctx context.Context) ([]*entity.UserState, error) {
	var rows []*model.UserStateRow
	if err := repo.db.WithContext(ctx).Raw(sqlAllStates).Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list user states")
	}

	states := make([]*entity.UserState, 0, len(rows))
	for _, row := range rows {
		states = append(states, &entity.UserState{StateID: row.StateID, Name: row.Name})
	}

	return states, nil
}

// AllRoles lists the role lookup table.
func (repo *userRepository) AllRoles(ctx context.Context) ([]*entity.Role, error) {
	var rows []*model.RoleRow
	if err := repo.db.WithContext(ctx).Raw(sqlAllRoles).Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list roles")
	}

	roles := make([]*entity.Role, 0, len(rows))
	for _, row := range rows {
		roles = append(roles, &entity.Role{RoleID: row.RoleID, Name: row.Name})
	}

	return roles, nil
}

// AllIdentificationTypes lists the identification-type lookup table.
func (repo *userRepository) AllIdentificationTypes(ctx context.Context) ([]*entity.IdentificationType, error) {
	var rows []*model.IdentificationTypeRow
	if err := repo.db.WithContext(ctx).Raw(sqlAllIdentificationTypes).Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list identification types")
	}

	types := make([]*entity.IdentificationType, 0, len(rows))
	for _, row := range rows {
		types = append(types, &entity.IdentificationType{
			IdentificationTypeID: row.IdentificationTypeID,
			Name:                 row.Name,
		})
	}

	return types, nil
}

// --- Mapper Functions ---

// toUserDomain converts a UserRow to a domain User entity.
func toUserDomain(data *model.UserRow) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		UserID:               data.UserID,
		Name:                 data.Name,
		LastName:             data.LastName,
		HireDate:             data.HireDate,
		Email:                data.Email,
		Phone:                data.Phone,
		Identification:       data.Identification,
		IsVirtual:            data.IsVirtual,
		Account:              data.Account,
		Address:              data.Address,
		RoleID:               data.RoleID,
		IdentificationTypeID: data.IdentificationTypeID,
		BranchOfficeID:       data.BranchOfficeID,
		PersonStateID:        data.PersonStateID,
		PaymentMethodID:      data.PaymentMethodID,
		Password:             data.Password,
	}
}

func toUsersDomain(rows []*model.UserRow) []*entity.User {
	users := make([]*entity.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, toUserDomain(row))
	}

	return users
}

// fromUserDomain converts a domain User entity to the procedure payload.
func fromUserDomain(data *entity.User) *model.UserPayload {
	if data == nil {
		return nil
	}

	return &model.UserPayload{
		Email:            data.Email,
		Password:         data.Password,
		Name:             data.Name,
		LastName:         data.LastName,
		Phone:            data.Phone,
		Identification:   data.Identification,
		IsVirtual:        data.IsVirtual,
		Account:          data.Account,
		Address:          data.Address,
		RoleID:           data.RoleID,
		IdentificationID: data.IdentificationTypeID,
		BranchOfficeID:   data.BranchOfficeID,
		PersonStateID:    data.PersonStateID,
		PaymentMethodID:  data.PaymentMethodID,
	}
}
