package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "hrcore/internal/delivery/context"
	"hrcore/internal/domain/entity"
	domainerrors "hrcore/internal/domain/errors"
	"hrcore/internal/domain/repository"
	"hrcore/internal/errors"
	"hrcore/internal/usecase"

	"go.uber.org/fx"
)

// paysheetService implements the PaysheetUsecase interface. Most operations
// delegate straight to the repository; the service maps the not-found
// sentinel to the application error taxonomy.
type paysheetService struct {
	paysheetRepo repository.PaysheetRepository
	logger       *slog.Logger
}

// PaysheetServiceParams holds dependencies for paysheetService, injected by Fx.
type PaysheetServiceParams struct {
	fx.In

	PaysheetRepo repository.PaysheetRepository
	Logger       *slog.Logger
}

// NewPaysheetService is the constructor for paysheetService.
func NewPaysheetService(params PaysheetServiceParams) usecase.PaysheetUsecase {
	return &paysheetService{
		paysheetRepo: params.PaysheetRepo,
		logger:       params.Logger,
	}
}

func (srv *paysheetService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func mapNotFound(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return domainerrors.ErrNotFound
	}

	return err
}

func (srv *paysheetService) AllJobPositions(ctx context.Context) ([]*entity.JobPosition, error) {
	return srv.paysheetRepo.AllJobPositions(ctx)
}

func (srv *paysheetService) JobPositionByID(ctx context.Context, id int64) (*entity.JobPosition, error) {
	jp, err := srv.paysheetRepo.JobPositionByID(ctx, id)

	return jp, mapNotFound(err)
}

func (srv *paysheetService) CreateJobPosition(ctx context.Context, jp *entity.JobPosition) (int64, error) {
	return srv.paysheetRepo.SaveJobPosition(ctx, jp)
}

func (srv *paysheetService) UpdateJobPosition(ctx context.Context, id int64, jp *entity.JobPosition) error {
	return srv.paysheetRepo.UpdateJobPosition(ctx, id, jp)
}

func (srv *paysheetService) DeleteJobPosition(ctx context.Context, id int64) error {
	return srv.paysheetRepo.DeleteJobPosition(ctx, id)
}

func (srv *paysheetService) AllPaysheets(ctx context.Context) ([]*entity.Paysheet, error) {
	return srv.paysheetRepo.AllPaysheets(ctx)
}

func (srv *paysheetService) PaysheetsByUserID(ctx context.Context, userID int64) ([]*entity.Paysheet, error) {
	return srv.paysheetRepo.PaysheetsByUserID(ctx, userID)
}

func (srv *paysheetService) CreatePaysheet(ctx context.Context, p *entity.Paysheet) (int64, error) {
	id, err := srv.paysheetRepo.MakePaysheet(ctx, p)
	if err != nil {
		return 0, err
	}

	srv.log(ctx).Info("paysheet created", slog.Int64("paysheetId", id), slog.Int64("userId", p.UserID))

	return id, nil
}

func (srv *paysheetService) UpdatePaysheet(ctx context.Context, id int64, p *entity.Paysheet) error {
	return srv.paysheetRepo.UpdatePaysheet(ctx, id, p)
}

func (srv *paysheetService) DeletePaysheet(ctx context.Context, id int64) error {
	return srv.paysheetRepo.DeletePaysheet(ctx, id)
}

func (srv *paysheetService) AllContractTypes(ctx context.Context) ([]*entity.ContractType, error) {
	return srv.paysheetRepo.AllContractTypes(ctx)
}

func (srv *paysheetService) ContractTypeByID(ctx context.Context, id int64) (*entity.ContractType, error) {
	ct, err := srv.paysheetRepo.ContractTypeByID(ctx, id)

	return ct, mapNotFound(err)
}

func (srv *paysheetService) CreateContractType(ctx context.Context, ct *entity.ContractType) (int64, error) {
	return srv.paysheetRepo.SaveContractType(ctx, ct)
}

func (srv *paysheetService) UpdateContractType(ctx context.Context, id int64, ct *entity.ContractType) error {
	return srv.paysheetRepo.UpdateContractType(ctx, id, ct)
}

func (srv *paysheetService) DeleteContractType(ctx context.Context, id int64) error {
	return srv.paysheetRepo.DeleteContractType(ctx, id)
}

func (srv *paysheetService) AllPaysheetTypes(ctx context.Context) ([]*entity.PaysheetType, error) {
	return srv.paysheetRepo.AllPaysheetTypes(ctx)
}

func (srv *paysheetService) PaysheetTypeByID(ctx context.Context, id int64) (*entity.PaysheetType, error) {
	pt, err := srv.paysheetRepo.PaysheetTypeByID(ctx, id)

	return pt, mapNotFound(err)
}

func (srv *paysheetService) CreatePaysheetType(ctx context.Context, pt *entity.PaysheetType) (int64, error) {
	return srv.paysheetRepo.SavePaysheetType(ctx, pt)
}

func (srv *paysheetService) UpdatePaysheetType(ctx context.Context, id int64, pt *entity.PaysheetType) error {
	return srv.paysheetRepo.UpdatePaysheetType(ctx, id, pt)
}

func (srv *paysheetService) DeletePaysheetType(ctx context.Context, id int64) error {
	return srv.paysheetRepo.DeletePaysheetType(ctx, id)
}

func (srv *paysheetService) AllNovelties(ctx context.Context, date *time.Time) ([]*entity.Novelty, error) {
	return srv.paysheetRepo.AllNovelties(ctx, date)
}

func (srv *paysheetService) NoveltyByID(ctx context.Context, id int64) (*entity.Novelty, error) {
	n, err := srv.paysheetRepo.NoveltyByID(ctx, id)

	return n, mapNotFound(err)
}

func (srv *paysheetService) NoveltiesByContract(ctx context.Context, contractID int64, from, to *time.Time) ([]*entity.Novelty, error) {
	return srv.paysheetRepo.NoveltiesByContract(ctx, contractID, from, to)
}

func (srv *paysheetService) CreateNovelty(ctx context.Context, n *entity.Novelty) (int64, error) {
	return srv.paysheetRepo.SaveNovelty(ctx, n)
}

func (srv *paysheetService) UpdateNovelty(ctx context.Context, id int64, n *entity.Novelty) error {
	return srv.paysheetRepo.UpdateNovelty(ctx, id, n)
}

func (srv *paysheetService) DeleteNovelty(ctx context.Context, id int64) error {
	return srv.paysheetRepo.DeleteNovelty(ctx, id)
}

func (srv *paysheetService) AllConceptTypes(ctx context.Context) ([]*entity.ConceptType, error) {
	return srv.paysheetRepo.AllConceptTypes(ctx)
}

func (srv *paysheetService) ConceptTypeByID(ctx context.Context, id int64) (*entity.ConceptType, error) {
	ct, err := srv.paysheetRepo.ConceptTypeByID(ctx, id)

	return ct, mapNotFound(err)
}

func (srv *paysheetService) CreateConceptType(ctx context.Context, ct *entity.ConceptType) (int64, error) {
	return srv.paysheetRepo.SaveConceptType(ctx, ct)
}

func (srv *paysheetService) UpdateConceptType(ctx context.Context, id int64, ct *entity.ConceptType) error {
	return srv.paysheetRepo.UpdateConceptType(ctx, id, ct)
}

func (srv *paysheetService) DeleteConceptType(ctx context.Context, id int64) error {
	return srv.paysheetRepo.DeleteConceptType(ctx, id)
}

func (srv *paysheetService) AllConcepts(ctx context.Context) ([]*entity.Concept, error) {
	return srv.paysheetRepo.AllConcepts(ctx)
}

func (srv *paysheetService) ConceptByID(ctx context.Context, id int64) (*entity.Concept, error) {
	c, err := srv.paysheetRepo.ConceptByID(ctx, id)

	return c, mapNotFound(err)
}

func (srv *paysheetService) CreateConcept(ctx context.Context, c *entity.Concept) (int64, error) {
	return srv.paysheetRepo.SaveConcept(ctx, c)
}

func (srv *paysheetService) UpdateConcept(ctx context.Context, id int64, c *entity.Concept) error {
	return srv.paysheetRepo.UpdateConcept(ctx, id, c)
}

func (srv *paysheetService) DeleteConcept(ctx context.Context, id int64) error {
	return srv.paysheetRepo.DeleteConcept(ctx, id)
}

func (srv *paysheetService) AllPayments(ctx context.Context, from, to *time.Time) ([]*entity.Payment, error) {
	return srv.paysheetRepo.AllPayments(ctx, from, to)
}

func (srv *paysheetService) PaymentByID(ctx context.Context, id int64) (*entity.Payment, error) {
	p, err := srv.paysheetRepo.PaymentByID(ctx, id)

	return p, mapNotFound(err)
}

func (srv *paysheetService) PaymentsByUserID(ctx context.Context, userID int64) ([]*entity.Payment, error) {
	return srv.paysheetRepo.PaymentsByUserID(ctx, userID)
}

func (srv *paysheetService) PendingPayments(ctx context.Context) ([]*entity.Payment, error) {
	return srv.paysheetRepo.AllPendingPayments(ctx)
}

func (srv *paysheetService) PendingPaymentsByUserID(ctx context.Context, userID int64) ([]*entity.Payment, error) {
	return srv.paysheetRepo.PendingPaymentsByUserID(ctx, userID)
}

func (srv *paysheetService) CreatePayment(ctx context.Context, p *entity.Payment) (int64, error) {
	return srv.paysheetRepo.SavePayment(ctx, p)
}

func (srv *paysheetService) UpdatePayment(ctx context.Context, id int64, p *entity.Payment) error {
	return srv.paysheetRepo.UpdatePayment(ctx, id, p)
}

func (srv *paysheetService) DeletePayment(ctx context.Context, id int64) error {
	return srv.paysheetRepo.DeletePayment(ctx, id)
}
