// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is an employee record from the usuarios schema. It carries both the
// personal data and the foreign keys into the lookup tables.
type User struct {
	UserID               int64     // Surrogate key (personal_id).
	Name                 string    // Given names.
	LastName             string    // Family names.
	HireDate             time.Time // Date the employee joined.
	Email                string    // Login identifier, unique.
	Phone                string    // Contact phone number.
	Identification       string    // National identification number.
	IsVirtual            bool      // Whether the employee works remotely.
	Account              string    // Bank account for payments.
	Address              string    // Home address.
	RoleID               int64     // FK to the role lookup table.
	IdentificationTypeID int64     // FK to the identification-type lookup table.
	BranchOfficeID       int64     // FK to the branch-office lookup table.
	PersonStateID        int64     // FK to the person-state lookup table.
	PaymentMethodID      int64     // FK to the payment-method lookup table.
	Password             string    // bcrypt hash. Never serialized, never signed into tokens.
}

// UserAccount is the credential projection of a User: just enough to
// authenticate. The Password field holds the stored bcrypt hash and is
// stripped before any token is minted from the account.
type UserAccount struct {
	UserID   int64
	Email    string
	Password string
}

// Role is a row of the role lookup table.
type Role struct {
	RoleID int64
	Name   string
}

// UserState is a row of the person-state lookup table.
type UserState struct {
	StateID int64
	Name    string
}

// IdentificationType is a row of the identification-type lookup table.
type IdentificationType struct {
	IdentificationTypeID int64
	Name                 string
}

// Fault is an absence record covering a day range.
type Fault struct {
	FaultID   int64
	UserID    int64
	Reason    string
	StartDate time.Time
	EndDate   time.Time
}
