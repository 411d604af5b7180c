package entity

import "time"

// JobPosition is a row of the nominas job-position catalog.
type JobPosition struct {
	JobPositionID int64
	Name          string
}

// ContractType is a contract modality with its maximum duration in days.
type ContractType struct {
	ContractTypeID int64
	Name           string
	MaxDays        int
}

// PaysheetType is a payroll cycle definition (e.g. monthly) with its pay day.
type PaysheetType struct {
	PaysheetTypeID int64
	Name           string
	PayDay         int
}

// Paysheet is a payroll contract binding an employee to a salary, a job
// position and a contract modality over a day range.
type Paysheet struct {
	PaysheetID     int64
	Salary         float64
	ContractRange  string // Postgres daterange literal, e.g. "[2024-01-01,2024-12-31]".
	FileID         string // Document-store id of the signed contract, if any.
	PaysheetTypeID int64
	ContractTypeID int64
	JobPositionID  int64
	RequestID      string
	UserID         int64
	// Denormalized from the employee row on list queries.
	UserName       string
	Identification string
}

// Novelty is a payroll incident (overtime, absence, bonus...) attached to a
// contract over a day range.
type Novelty struct {
	NoveltyID  int64
	ContractID int64
	ConceptID  int64
	Detail     string
	StartDate  time.Time
	EndDate    time.Time
}

// ConceptType is a payroll concept category with its value bounds and the
// percentage it applies over the base salary.
type ConceptType struct {
	ConceptTypeID int64
	Name          string
	MinValue      float64
	MaxValue      float64
	Percentage    float64
}

// Concept binds a concept type to a city and company scope.
type Concept struct {
	ConceptID     int64
	ConceptTypeID int64
	CityID        string
	CompanyID     string
}

// Payment is an executed (or pending) payroll disbursement.
type Payment struct {
	PaymentID  int64
	FileID     string // Receipt document id, empty while the payment is pending.
	PaidAt     time.Time
	NoveltyID  int64
	ConceptID  int64
	ContractID int64
}
