// Package model holds the persistence-layer row and payload shapes. Row
// structs mirror the column aliases of the raw queries; payload structs
// mirror the json keys the stored procedures parse, legacy spellings
// included.
package model

import "time"

// UserRow is the projection of an employee row from usuarios."TB_Personales".
type UserRow struct {
	UserID               int64     `gorm:"column:user_id"`
	Name                 string    `gorm:"column:name"`
	LastName             string    `gorm:"column:last_name"`
	HireDate             time.Time `gorm:"column:hire_date"`
	Email                string    `gorm:"column:email"`
	Phone                string    `gorm:"column:phone"`
	Identification       string    `gorm:"column:identification"`
	IsVirtual            bool      `gorm:"column:is_virtual"`
	Account              string    `gorm:"column:account"`
	Address              string    `gorm:"column:address"`
	RoleID               int64     `gorm:"column:role_id"`
	IdentificationTypeID int64     `gorm:"column:identification_type_id"`
	BranchOfficeID       int64     `gorm:"column:branch_office_id"`
	PersonStateID        int64     `gorm:"column:person_state_id"`
	PaymentMethodID      int64     `gorm:"column:payment_method_id"`
	Password             string    `gorm:"column:password"`
}

// AccountRow is the credential projection used at login time.
type AccountRow struct {
	UserID   int64  `gorm:"column:user_id"`
	Email    string `gorm:"column:email"`
	Password string `gorm:"column:password"`
}

// RoleRow is a row of usuarios."TB_Roles".
type RoleRow struct {
	RoleID int64  `gorm:"column:role_id"`
	Name   string `gorm:"column:name"`
}

// UserStateRow is a row of usuarios."TB_EstadosPersonas".
type UserStateRow struct {
	StateID int64  `gorm:"column:state_id"`
	Name    string `gorm:"column:name"`
}

// IdentificationTypeRow is a row of usuarios."TB_TipoIdentificacion".
type IdentificationTypeRow struct {
	IdentificationTypeID int64  `gorm:"column:identification_type_id"`
	Name                 string `gorm:"column:name"`
}

// FaultRow is a row of usuarios."TB_Faltas" with the day range split.
type FaultRow struct {
	FaultID   int64     `gorm:"column:fault_id"`
	UserID    int64     `gorm:"column:user_id"`
	Reason    string    `gorm:"column:reason"`
	StartDate time.Time `gorm:"column:start_date"`
	EndDate   time.Time `gorm:"column:end_date"`
}

// UserPayload is the json body of the user save/update procedures.
type UserPayload struct {
	Email            string `json:"email"`
	Password         string `json:"password"`
	Name             string `json:"name"`
	LastName         string `json:"lastName"`
	Phone            string `json:"phone"`
	Identification   string `json:"identification"`
	IsVirtual        bool   `json:"isVirtual"`
	Account          string `json:"acount"`
	Address          string `json:"address"`
	RoleID           int64  `json:"roleId"`
	IdentificationID int64  `json:"identificationId"`
	BranchOfficeID   int64  `json:"branchOficeId"`
	PersonStateID    int64  `json:"personStateId,omitempty"`
	PaymentMethodID  int64  `json:"meansOfPayment"`
}

// FaultPayload is the json body of the fault save/update procedures. The two
// dates collapse into a single daterange literal before the call.
type FaultPayload struct {
	UserID        int64  `json:"userId"`
	Justification string `json:"justification"`
	Date          string `json:"date"`
}
