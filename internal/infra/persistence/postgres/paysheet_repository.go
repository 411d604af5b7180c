package postgres

import (
	"context"
	"strings"
	"time"

	"hrcore/internal/domain/entity"
	"hrcore/internal/domain/repository"
	"hrcore/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const rangeDateLayout = "2006-01-02"

// paysheetRepository implements repository.PaysheetRepository using GORM.
type paysheetRepository struct {
	db *gorm.DB
}

// NewPaysheetRepository is the constructor for paysheetRepository.
func NewPaysheetRepository(db *gorm.DB) repository.PaysheetRepository {
	return &paysheetRepository{db: db}
}

// AllJobPositions lists the job-position catalog.
func (repo *paysheetRepository) AllJobPositions(ctx context.Context) ([]*entity.JobPosition, error) {
	var rows []*model.JobPositionRow
	if err := repo.db.WithContext(ctx).Raw(sqlAllJobPositions).Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list job positions")
	}

	positions := make([]*entity.JobPosition, 0, len(rows))
	for _, row := range rows {
		positions = append(positions, &entity.JobPosition{JobPositionID: row.JobPositionID, Name: row.Name})
	}

	return positions, nil
}

// JobPositionByID retrieves a single job position.
func (repo *paysheetRepository) JobPositionByID(ctx context.Context, id int64) (*entity.JobPosition, error) {
	var rows []*model.JobPositionRow
	if err := repo.db.WithContext(ctx).Raw(sqlJobPositionByID, id).Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find job position")
	}
	if len(rows) == 0 {
		return nil, repository.ErrNotFound
	}

	return &entity.JobPosition{JobPositionID: rows[0].JobPositionID, Name: rows[0].Name}, nil
}

// SaveJobPosition persists a new job position and returns the generated id.
func (repo *paysheetRepository) SaveJobPosition(ctx context.Context, jp *entity.JobPosition) (int64, error) {
	return execProcedureSave(ctx, repo.db, sqlSaveJobPosition, &model.JobPositionPayload{JobPosition: jp.Name})
}

// UpdateJobPosition rewrites a job position.
func (repo *paysheetRepository) UpdateJobPosition(ctx context.Context, id int64, jp *entity.JobPosition) error {
	return execProcedureUpdate(ctx, repo.db, sqlUpdateJobPosition, &model.JobPositionPayload{JobPosition: jp.Name}, id)
}

// DeleteJobPosition removes a job position permanently.
func (repo *paysheetRepository) DeleteJobPosition(ctx context.Context, id int64) error {
	return execProcedureDelete(ctx, repo.db, sqlDeleteJobPosition, id)
}

// AllPaysheets lists every payroll contract with the employee's name joined in.
func (repo *paysheetRepository) AllPaysheets(ctx context.Context) ([]*entity.Paysheet, error) {
	var rows []*model.PaysheetRow
	if err := repo.db.WithContext(ctx).Raw(sqlAllPaysheets).Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list paysheets")
	}

	return toPaysheetsDomain(rows), nil
}

// PaysheetsByUserID lists the payroll contracts of one employee.
func (repo *paysheetRepository) PaysheetsByUserID(ctx context.Context, userID int64) ([]*entity.Paysheet, error) {
	var rows []*model.PaysheetRow
	if err := repo.db.WithContext(ctx).Raw(sqlPaysheetsByUserID, userID).Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list paysheets by user")
	}

	return toPaysheetsDomain(rows), nil
}

// MakePaysheet persists a new payroll contract and returns the generated id.
func (repo *paysheetRepository) MakePaysheet(ctx context.Context, p *entity.Paysheet) (int64, error) {
	return execProcedureSave(ctx, repo.db, sqlMakePaysheet, fromPaysheetDomain(p))
}

// UpdatePaysheet rewrites a payroll contract.
func (repo *paysheetRepository) UpdatePaysheet(ctx context.Context, id int64, p *entity.Paysheet) error {
	return execProcedureUpdate(ctx, repo.db, sqlUpdatePaysheet, fromPaysheetDomain(p), id)
}

// DeletePaysheet removes a payroll contract permanently.
func (repo *paysheetRepository) DeletePaysheet(ctx context.Context, id int64) error {
	return execProcedureDelete(ctx, repo.db, sqlDeletePaysheet, id)
}

// AllContractTypes lists the contract-modality catalog.
func (repo *paysheetRepository) AllContractTypes(ctx context.Context) ([]*entity.ContractType, error) {
	var rows []*model.ContractTypeRow
	if err := repo.db.WithContext(ctx).Raw(sqlAllContractTypes).Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list contract types")
	}

	types := make([]*entity.ContractType, 0, len(rows))
	for _, row := range rows {
		types = append(types, toContractTypeDomain(row))
	}

	return types, nil
}

// ContractTypeByID retrieves a single contract modality.
func (repo *paysheetRepository) ContractTypeByID(ctx context.Context, id int64) (*entity.ContractType, error) {
	var rows []*model.ContractTypeRow
	if err := repo.db.WithContext(ctx).Raw(sqlContractTypeByID, id).Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find contract type")
	}
	if len(rows) == 0 {
		return nil, repository.ErrNotFound
	}

	return toContractTypeDomain(rows[0]), nil
}

// SaveContractType persists a new contract modality and returns the generated id.
func (repo *paysheetRepository) SaveContractType(ctx context.Context, ct *entity.ContractType) (int64, error) {
	return execProcedureSave(ctx, repo.db, sqlSaveContractType, fromContractTypeDomain(ct))
}

// UpdateContractType rewrites a contract modality.
func (repo *paysheetRepository) UpdateContractType(ctx context.Context, id int64, ct *entity.ContractType) error {
	return execProcedureUpdate(ctx, repo.db, sqlUpdateContractType, fromContractTypeDomain(ct), id)
}

// DeleteContractType removes a contract modality permanently.
func (repo *paysheetRepository) DeleteContractType(ctx context.Context, id int64) error {
	return execProcedureDelete(ctx, repo.db, sqlDeleteContractType, id)
}

// AllPaysheetTypes lists the payroll-cycle catalog.
func (repo *paysheetRepository) AllPaysheetTypes(ctx context.Context) ([]*entity.PaysheetType, error) {
	var rows []*model.PaysheetTypeRow
	if err := repo.db.WithContext(ctx).Raw(sqlAllPaysheetTypes).Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list paysheet types")
	}

	types := make([]*entity.PaysheetType, 0, len(rows))
	for _, row := range rows {
		types = append(types, toPaysheetTypeDomain(row))
	}

	return types, nil
}

// PaysheetTypeByID retrieves a single payroll cycle.
func (repo *paysheetRepository) PaysheetTypeByID(ctx context.Context, id int64) (*entity.PaysheetType, error) {
	var rows []*model.PaysheetTypeRow
	if err := repo.db.WithContext(ctx).Raw(sqlPaysheetTypeByID, id).Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find paysheet type")
	}
	if len(rows) == 0 {
		return nil, repository.ErrNotFound
	}

	return toPaysheetTypeDomain(rows[0]), nil
}

// SavePaysheetType persists a new payroll cycle and returns the generated id.
func (repo *paysheetRepository) SavePaysheetType(ctx context.Context, pt *entity.PaysheetType) (int64, error) {
	return execProcedureSave(ctx, repo.db, sqlSavePaysheetType, fromPaysheetTypeDomain(pt))
}

// UpdatePaysheetType rewrites a payroll cycle.
func (repo *paysheetRepository) UpdatePaysheetType(ctx context.Context, id int64, pt *entity.PaysheetType) error {
	return execProcedureUpdate(ctx, repo.db, sqlUpdatePaysheetType, fromPaysheetTypeDomain(pt), id)
}

// DeletePaysheetType removes a payroll cycle permanently.
func (repo *paysheetRepository) DeletePaysheetType(ctx context.Context, id int64) error {
	return execProcedureDelete(ctx, repo.db, sqlDeletePaysheetType, id)
}

// AllNovelties lists payroll incidents, optionally narrowed to the ones whose
// day range covers the given date.
func (repo *paysheetRepository) AllNovelties(ctx context.Context, date *time.Time) ([]*entity.Novelty, error) {
	var rows []*model.NoveltyRow
	var err error
	if date != nil {
		err = repo.db.WithContext(ctx).Raw(sqlNoveltiesByDate, date.Format(rangeDateLayout)).Scan(&rows).Error
	} else {
		err = repo.db.WithContext(ctx).Raw(sqlAllNovelties).Scan(&rows).Error
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to list novelties")
	}

	return toNoveltiesDomain(rows), nil
}

// NoveltyByID retrieves a single payroll incident.
func (repo *paysheetRepository) NoveltyByID(ctx context.Context, id int64) (*entity.Novelty, error) {
	var rows []*model.NoveltyRow
	if err := repo.db.WithContext(ctx).Raw(sqlNoveltyByID, id).Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find novelty")
	}
	if len(rows) == 0 {
		return nil, repository.ErrNotFound
	}

	return toNoveltyDomain(rows[0]), nil
}

// NoveltiesByContract lists the incidents of one contract, optionally bounded
// by a date window.
func (repo *paysheetRepository) NoveltiesByContract(ctx context.Context, contractID int64, from, to *time.Time) ([]*entity.Novelty, error) {
	predicates := []string{`tn."contratoNomina_id" = ?`}
	args := []any{contractID}

	if from != nil {
		predicates = append(predicates, `upper(tn."fecha") >= ?`)
		args = append(args, *from)
	}
	if to != nil {
		predicates = append(predicates, `lower(tn."fecha") <= ?`)
		args = append(args, *to)
	}

	query := `SELECT ` + sqlNoveltyColumns + `
		FROM nominas."TB_Novedades" tn
		WHERE ` + strings.Join(predicates, " AND ") + `
		ORDER BY tn."novedad_id" ASC`

	var rows []*model.NoveltyRow
	if err := repo.db.WithContext(ctx).Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list novelties by contract")
	}

	return toNoveltiesDomain(rows), nil
}

// SaveNovelty persists a new payroll incident and returns the generated id.
func (repo *paysheetRepository) SaveNovelty(ctx context.Context, n *entity.Novelty) (int64, error) {
	return execProcedureSave(ctx, repo.db, sqlSaveNovelty, fromNoveltyDomain(n))
}

// UpdateNovelty rewrites a payroll incident.
func (repo *paysheetRepository) UpdateNovelty(ctx context.Context, id int64, n *entity.Novelty) error {
	return execProcedureUpdate(ctx, repo.db, sqlUpdateNovelty, fromNoveltyDomain(n), id)
}

// DeleteNovelty removes a payroll incident permanently.
func (repo *paysheetRepository) DeleteNovelty(ctx context.Context, id int64) error {
	return execProcedureDelete(ctx, repo.db, sqlDeleteNovelty, id)
}

// AllConceptTypes lists the concept-category catalog.
func (repo *paysheetRepository) AllConceptTypes(ctx context.Context) ([]*entity.ConceptType, error) {
	var rows []*model.ConceptTypeRow
	if err := repo.db.WithContext(ctx).Raw(sqlAllConceptTypes).Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list concept types")
	}

	types := make([]*entity.ConceptType, 0, len(rows))
	for _, row := range rows {
		types = append(types, toConceptTypeDomain(row))
	}

	return types, nil
}

// ConceptTypeByID retrieves a single concept category.
func (repo *paysheetRepository) ConceptTypeByID(ctx context.Context, id int64) (*entity.ConceptType, error) {
	var rows []*model.ConceptTypeRow
	if err := repo.db.WithContext(ctx).Raw(sqlConceptTypeByID, id).Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find concept type")
	}
	if len(rows) == 0 {
		return nil, repository.ErrNotFound
	}

	return toConceptTypeDomain(rows[0]), nil
}

// SaveConceptType persists a new concept category and returns the generated id.
func (repo *paysheetRepository) SaveConceptType(ctx context.Context, ct *entity.ConceptType) (int64, error) {
	return execProcedureSave(ctx, repo.db, sqlSaveConceptType, fromConceptTypeDomain(ct))
}

// UpdateConceptType rewrites a concept category.
func (repo *paysheetRepository) UpdateConceptType(ctx context.Context, id int64, ct *entity.ConceptType) error {
	return execProcedureUpdate(ctx, repo.db, sqlUpdateConceptType, fromConceptTypeDomain(ct), id)
}

// DeleteConceptType removes a concept category permanently.
func (repo *paysheetRepository) DeleteConceptType(ctx context.Context, id int64) error {
	return execProcedureDelete(ctx, repo.db, sqlDeleteConceptType, id)
}

// AllConcepts lists the scoped concepts.
func (repo *paysheetRepository) AllConcepts(ctx context.Context) ([]*entity.Concept, error) {
	var rows []*model.ConceptRow
	if err := repo.db.WithContext(ctx).Raw(sqlAllConcepts).Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list concepts")
	}

	concepts := make([]*entity.Concept, 0, len(rows))
	for _, row := range rows {
		concepts = append(concepts, toConceptDomain(row))
	}

	return concepts, nil
}

// ConceptByID retrieves a single scoped concept.
func (repo *paysheetRepository) ConceptByID(ctx context.Context, id int64) (*entity.Concept, error) {
	var rows []*model.ConceptRow
	if err := repo.db.WithContext(ctx).Raw(sqlConceptByID, id).Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find concept")
	}
	if len(rows) == 0 {
		return nil, repository.ErrNotFound
	}

	return toConceptDomain(rows[0]), nil
}

// SaveConcept persists a new scoped concept and returns the generated id.
func (repo *paysheetRepository) SaveConcept(ctx context.Context, c *entity.Concept) (int64, error) {
	return execProcedureSave(ctx, repo.db, sqlSaveConcept, fromConceptDomain(c))
}

// UpdateConcept rewrites a scoped concept.
func (repo *paysheetRepository) UpdateConcept(ctx context.Context, id int64, c *entity.Concept) error {
	return execProcedureUpdate(ctx, repo.db, sqlUpdateConcept, fromConceptDomain(c), id)
}

// DeleteConcept removes a scoped concept permanently.
func (repo *paysheetRepository) DeleteConcept(ctx context.Context, id int64) error {
	return execProcedureDelete(ctx, repo.db, sqlDeleteConcept, id)
}

// AllPayments lists disbursements, optionally bounded by a payment-date window.
func (repo *paysheetRepository) AllPayments(ctx context.Context, from, to *time.Time) ([]*entity.Payment, error) {
	predicates := []string{}
	args := []any{}

	if from != nil {
		predicates = append(predicates, `tp."fechaPago" >= ?`)
		args = append(args, *from)
	}
	if to != nil {
		predicates = append(predicates, `tp."fechaPago" <= ?`)
		args = append(args, *to)
	}

	query := sqlAllPayments
	if len(predicates) > 0 {
		query = `SELECT ` + sqlPaymentColumns + `
			FROM nominas."TB_Pagos" tp
			WHERE ` + strings.Join(predicates, " AND ") + `
			ORDER BY tp."pago_id" ASC`
	}

	var rows []*model.PaymentRow
	if err := repo.db.WithContext(ctx).Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list payments")
	}

	return toPaymentsDomain(rows), nil
}

// PaymentByID retrieves a single disbursement.
func (repo *paysheetRepository) PaymentByID(ctx context.Context, id int64) (*entity.Payment, error) {
	var rows []*model.PaymentRow
	if err := repo.db.WithContext(ctx).Raw(sqlPaymentByID, id).Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find payment")
	}
	if len(rows) == 0 {
		return nil, repository.ErrNotFound
	}

	return toPaymentDomain(rows[0]), nil
}

// PaymentsByUserID lists the disbursements of one employee's contracts.
func (repo *paysheetRepository) PaymentsByUserID(ctx context.Context, userID int64) ([]*entity.Payment, error) {
	var rows []*model.PaymentRow
	if err := repo.db.WithContext(ctx).Raw(sqlPaymentsByUserID, userID).Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list payments by user")
	}

	return toPaymentsDomain(rows), nil
}

// AllPendingPayments lists disbursements without a receipt yet.
func (repo *paysheetRepository) AllPendingPayments(ctx context.Context) ([]*entity.Payment, error) {
	var rows []*model.PaymentRow
	if err := repo.db.WithContext(ctx).Raw(sqlPendingPayments).Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list pending payments")
	}

	return toPaymentsDomain(rows), nil
}

// PendingPaymentsByUserID lists one employee's disbursements without a receipt.
func (repo *paysheetRepository) PendingPaymentsByUserID(ctx context.Context, userID int64) ([]*entity.Payment, error) {
	var rows []*model.PaymentRow
	if err := repo.db.WithContext(ctx).Raw(sqlPendingPaymentsByUserID, userID).Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list pending payments by user")
	}

	return toPaymentsDomain(rows), nil
}

// SavePayment persists a new disbursement and returns the generated id.
func (repo *paysheetRepository) SavePayment(ctx context.Context, p *entity.Payment) (int64, error) {
	return execProcedureSave(ctx, repo.db, sqlSavePayment, fromPaymentDomain(p))
}

// UpdatePayment rewrites a disbursement, typically to attach the receipt.
func (repo *paysheetRepository) UpdatePayment(ctx context.Context, id int64, p *entity.Payment) error {
	return execProcedureUpdate(ctx, repo.db, sqlUpdatePayment, fromPaymentDomain(p), id)
}

// DeletePayment removes a disbursement permanently.
func (repo *paysheetRepository) DeletePayment(ctx context.Context, id int64) error {
	return execProcedureDelete(ctx, repo.db, sqlDeletePayment, id)
}

// --- Mapper Functions ---

func toPaysheetDomain(data *model.PaysheetRow) *entity.Paysheet {
	if data == nil {
		return nil
	}

	return &entity.Paysheet{
		PaysheetID:     data.PaysheetID,
		Salary:         data.Salary,
		ContractRange:  data.ContractRange,
		FileID:         data.FileID,
		PaysheetTypeID: data.PaysheetTypeID,
		ContractTypeID: data.ContractTypeID,
		JobPositionID:  data.JobPositionID,
		RequestID:      data.RequestID,
		UserID:         data.UserID,
		UserName:       data.UserName,
		Identification: data.Identification,
	}
}

func toPaysheetsDomain(rows []*model.PaysheetRow) []*entity.Paysheet {
	paysheets := make([]*entity.Paysheet, 0, len(rows))
	for _, row := range rows {
		paysheets = append(paysheets, toPaysheetDomain(row))
	}

	return paysheets
}

func fromPaysheetDomain(data *entity.Paysheet) *model.PaysheetPayload {
	if data == nil {
		return nil
	}

	return &model.PaysheetPayload{
		Salary:         data.Salary,
		Date:           data.ContractRange,
		FileID:         data.FileID,
		PaysheetTypeID: data.PaysheetTypeID,
		ContractTypeID: data.ContractTypeID,
		JobPositionID:  data.JobPositionID,
		RequestID:      data.RequestID,
		UserID:         data.UserID,
	}
}

func toContractTypeDomain(data *model.ContractTypeRow) *entity.ContractType {
	return &entity.ContractType{
		ContractTypeID: data.ContractTypeID,
		Name:           data.Name,
		MaxDays:        data.MaxDays,
	}
}

func fromContractTypeDomain(data *entity.ContractType) *model.ContractTypePayload {
	return &model.ContractTypePayload{
		ContractType: data.Name,
		MaxDays:      data.MaxDays,
	}
}

func toPaysheetTypeDomain(data *model.PaysheetTypeRow) *entity.PaysheetType {
	return &entity.PaysheetType{
		PaysheetTypeID: data.PaysheetTypeID,
		Name:           data.Name,
		PayDay:         data.PayDay,
	}
}

func fromPaysheetTypeDomain(data *entity.PaysheetType) *model.PaysheetTypePayload {
	return &model.PaysheetTypePayload{
		Paysheet: data.Name,
		PayDay:   data.PayDay,
	}
}

func toNoveltyDomain(data *model.NoveltyRow) *entity.Novelty {
	if data == nil {
		return nil
	}

	return &entity.Novelty{
		NoveltyID:  data.NoveltyID,
		ContractID: data.ContractID,
		ConceptID:  data.ConceptID,
		Detail:     data.Detail,
		StartDate:  data.StartDate,
		EndDate:    data.EndDate,
	}
}

func toNoveltiesDomain(rows []*model.NoveltyRow) []*entity.Novelty {
	novelties := make([]*entity.Novelty, 0, len(rows))
	for _, row := range rows {
		novelties = append(novelties, toNoveltyDomain(row))
	}

	return novelties
}

func fromNoveltyDomain(data *entity.Novelty) *model.NoveltyPayload {
	if data == nil {
		return nil
	}

	return &model.NoveltyPayload{
		ContractID: data.ContractID,
		ConceptID:  data.ConceptID,
		Detail:     data.Detail,
		Date: "[" + data.StartDate.Format(rangeDateLayout) + "," +
			data.EndDate.Format(rangeDateLayout) + "]",
	}
}

func toConceptTypeDomain(data *model.ConceptTypeRow) *entity.ConceptType {
	return &entity.ConceptType{
		ConceptTypeID: data.ConceptTypeID,
		Name:          data.Name,
		MinValue:      data.MinValue,
		MaxValue:      data.MaxValue,
		Percentage:    data.Percentage,
	}
}

func fromConceptTypeDomain(data *entity.ConceptType) *model.ConceptTypePayload {
	return &model.ConceptTypePayload{
		ConceptType: data.Name,
		MinValue:    data.MinValue,
		MaxValue:    data.MaxValue,
		Percentage:  data.Percentage,
	}
}

func toConceptDomain(data *model.ConceptRow) *entity.Concept {
	return &entity.Concept{
		ConceptID:     data.ConceptID,
		ConceptTypeID: data.ConceptTypeID,
		CityID:        data.CityID,
		CompanyID:     data.CompanyID,
	}
}

func fromConceptDomain(data *entity.Concept) *model.ConceptPayload {
	return &model.ConceptPayload{
		ConceptTypeID: data.ConceptTypeID,
		CityID:        data.CityID,
		CompanyID:     data.CompanyID,
	}
}

func toPaymentDomain(data *model.PaymentRow) *entity.Payment {
	if data == nil {
		return nil
	}

	payment := &entity.Payment{
		PaymentID:  data.PaymentID,
		FileID:     data.FileID,
		NoveltyID:  data.NoveltyID,
		ConceptID:  data.ConceptID,
		ContractID: data.ContractID,
	}
	if data.PaidAt != nil {
		payment.PaidAt = *data.PaidAt
	}

	return payment
}

func toPaymentsDomain(rows []*model.PaymentRow) []*entity.Payment {
	payments := make([]*entity.Payment, 0, len(rows))
	for _, row := range rows {
		payments = append(payments, toPaymentDomain(row))
	}

	return payments
}

func fromPaymentDomain(data *entity.Payment) *model.PaymentPayload {
	if data == nil {
		return nil
	}

	payload := &model.PaymentPayload{
		FileID:     data.FileID,
		NoveltyID:  data.NoveltyID,
		ConceptID:  data.ConceptID,
		ContractID: data.ContractID,
	}
	if !data.PaidAt.IsZero() {
		payload.PaidAt = data.PaidAt.Format(rangeDateLayout)
	}

	return payload
}
