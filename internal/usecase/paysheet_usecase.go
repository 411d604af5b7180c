package usecase

import (
	"context"
	"time"

	"hrcore/internal/domain/entity"
)

// PaysheetUsecase defines the payroll business operations: contracts, their
// catalogs, incident novelties and disbursements.
type PaysheetUsecase interface {
	AllJobPositions(ctx context.Context) ([]*entity.JobPosition, error)
	JobPositionByID(ctx context.Context, id int64) (*entity.JobPosition, error)
	CreateJobPosition(ctx context.Context, jp *entity.JobPosition) (int64, error)
	UpdateJobPosition(ctx context.Context, id int64, jp *entity.JobPosition) error
	DeleteJobPosition(ctx context.Context, id int64) error

	AllPaysheets(ctx context.Context) ([]*entity.Paysheet, error)
	PaysheetsByUserID(ctx context.Context, userID int64) ([]*entity.Paysheet, error)
	CreatePaysheet(ctx context.Context, p *entity.Paysheet) (int64, error)
	UpdatePaysheet(ctx context.Context, id int64, p *entity.Paysheet) error
	DeletePaysheet(ctx context.Context, id int64) error

	AllContractTypes(ctx context.Context) ([]*entity.ContractType, error)
	ContractTypeByID(ctx context.Context, id int64) (*entity.ContractType, error)
	CreateContractType(ctx context.Context, ct *entity.ContractType) (int64, error)
	UpdateContractType(ctx context.Context, id int64, ct *entity.ContractType) error
	DeleteContractType(ctx context.Context, id int64) error

	AllPaysheetTypes(ctx context.Context) ([]*entity.PaysheetType, error)
	PaysheetTypeByID(ctx context.Context, id int64) (*entity.PaysheetType, error)
	CreatePaysheetType(ctx context.Context, pt *entity.PaysheetType) (int64, error)
	UpdatePaysheetType(ctx context.Context, id int64, pt *entity.PaysheetType) error
	DeletePaysheetType(ctx context.Context, id int64) error

	// AllNovelties optionally restricts to the novelties active on a date.
	AllNovelties(ctx context.Context, date *time.Time) ([]*entity.Novelty, error)
	NoveltyByID(ctx context.Context, id int64) (*entity.Novelty, error)
	NoveltiesByContract(ctx context.Context, contractID int64, from, to *time.Time) ([]*entity.Novelty, error)
	CreateNovelty(ctx context.Context, n *entity.Novelty) (int64, error)
	UpdateNovelty(ctx context.Context, id int64, n *entity.Novelty) error
	DeleteNovelty(ctx context.Context, id int64) error

	AllConceptTypes(ctx context.Context) ([]*entity.ConceptType, error)
	ConceptTypeByID(ctx context.Context, id int64) (*entity.ConceptType, error)
	CreateConceptType(ctx context.Context, ct *entity.ConceptType) (int64, error)
	UpdateConceptType(ctx context.Context, id int64, ct *entity.ConceptType) error
	DeleteConceptType(ctx context.Context, id int64) error

	AllConcepts(ctx context.Context) ([]*entity.Concept, error)
	ConceptByID(ctx context.Context, id int64) (*entity.Concept, error)
	CreateConcept(ctx context.Context, c *entity.Concept) (int64, error)
	UpdateConcept(ctx context.Context, id int64, c *entity.Concept) error
	DeleteConcept(ctx context.Context, id int64) error

	// AllPayments optionally restricts to a paid-at window.
	AllPayments(ctx context.Context, from, to *time.Time) ([]*entity.Payment, error)
	PaymentByID(ctx context.Context, id int64) (*entity.Payment, error)
	PaymentsByUserID(ctx context.Context, userID int64) ([]*entity.Payment, error)
	PendingPayments(ctx context.Context) ([]*entity.Payment, error)
	PendingPaymentsByUserID(ctx context.Context, userID int64) ([]*entity.Payment, error)
	CreatePayment(ctx context.Context, p *entity.Payment) (int64, error)
	UpdatePayment(ctx context.Context, id int64, p *entity.Payment) error
	DeletePayment(ctx context.Context, id int64) error
}
