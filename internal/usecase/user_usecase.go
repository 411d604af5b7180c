package usecase

import (
	"context"

	"hrcore/internal/domain/entity"
	"hrcore/internal/domain/repository"
)

// CreateUserInput defines the data required to register a new employee.
type CreateUserInput struct {
	Email                string
	Password             string
	Name                 string
	LastName             string
	Phone                string
	Identification       string
	IsVirtual            bool
	Account              string
	Address              string
	RoleID               int64
	IdentificationTypeID int64
	BranchOfficeID       int64
	PaymentMethodID      int64
}

// AttachFileInput defines the data required to attach a document to an employee.
type AttachFileInput struct {
	UserID     int64
	FileTypeID int64
	FileName   string
	Content    []byte
}

// UserUsecase defines the employee-record business operations, covering the
// employee rows, their lookup tables, absence records and attached documents.
type UserUsecase interface {
	AllUsers(ctx context.Context) ([]*entity.User, error)
	UserByID(ctx context.Context, userID int64) (*entity.User, error)
	UserByIdentification(ctx context.Context, identification string) (*entity.User, error)
	SearchUsers(ctx context.Context, filters repository.UserFilters) ([]*entity.User, error)
	// CreateUser hashes the password, persists the employee and sends the
	// welcome mail. A mail failure does not abort the registration.
	CreateUser(ctx context.Context, input CreateUserInput) (int64, error)
	UpdateUser(ctx context.Context, userID int64, input CreateUserInput) error
	DeleteUser(ctx context.Context, userID int64) error

	AllStates(ctx context.Context) ([]*entity.UserState, error)
	AllRoles(ctx context.Context) ([]*entity.Role, error)
	AllIdentificationTypes(ctx context.Context) ([]*entity.IdentificationType, error)

	AllFaults(ctx context.Context) ([]*entity.Fault, error)
	FaultByID(ctx context.Context, faultID int64) (*entity.Fault, error)
	FaultsByUserID(ctx context.Context, userID int64) ([]*entity.Fault, error)
	CurrentFaultsByUserID(ctx context.Context, userID int64) ([]*entity.Fault, error)
	CreateFault(ctx context.Context, fault *entity.Fault) (int64, error)
	UpdateFault(ctx context.Context, faultID int64, fault *entity.Fault) error
	DeleteFault(ctx context.Context, faultID int64) error

	AllFileTypes(ctx context.Context) ([]*entity.FileType, error)
	CreateFileType(ctx context.Context, fileType *entity.FileType) (int64, error)
	UpdateFileType(ctx context.Context, fileTypeID int64, fileType *entity.FileType) error
	DeleteFileType(ctx context.Context, fileTypeID int64) error

	AllUserFiles(ctx context.Context) ([]*entity.UserFile, error)
	// UserFilesWithMetadata lists one employee's documents, each merged with
	// its document-store metadata when present.
	UserFilesWithMetadata(ctx context.Context, userID int64) ([]*entity.UserFile, error)
	// AttachFile stores the blob and links it to the employee.
	AttachFile(ctx context.Context, input AttachFileInput) (*entity.UserFile, error)
	// RemoveUserFile deletes a document after checking it belongs to the user.
	RemoveUserFile(ctx context.Context, userID int64, fileID string) error
}
