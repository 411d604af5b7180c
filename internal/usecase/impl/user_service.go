package impl

import (
	"context"
	"log/slog"

	deliverycontext "hrcore/internal/delivery/context"
	"hrcore/internal/domain/entity"
	domainerrors "hrcore/internal/domain/errors"
	"hrcore/internal/domain/repository"
	"hrcore/internal/domain/service"
	"hrcore/internal/errors"
	"hrcore/internal/usecase"

	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo     repository.UserRepository
	faultRepo    repository.FaultRepository
	userFileRepo repository.UserFileRepository
	fileUsecase  usecase.FileUsecase
	hasher       service.PasswordHasher
	mailer       service.Mailer
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	FaultRepo    repository.FaultRepository
	UserFileRepo repository.UserFileRepository
	FileUsecase  usecase.FileUsecase
	Hasher       service.PasswordHasher
	Mailer       service.Mailer
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo:     params.UserRepo,
		faultRepo:    params.FaultRepo,
		userFileRepo: params.UserFileRepo,
		fileUsecase:  params.FileUsecase,
		hasher:       params.Hasher,
		mailer:       params.Mailer,
		logger:       params.Logger,
	}
}

func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *userService) AllUsers(ctx context.Context) ([]*entity.User, error) {
	return srv.userRepo.All(ctx)
}

func (srv *userService) UserByID(ctx context.Context, userID int64) (*entity.User, error) {
	user, err := srv.userRepo.ByID(ctx, userID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrUserNotFound
	}

	return user, err
}

func (srv *userService) UserByIdentification(ctx context.Context, identification string) (*entity.User, error) {
	user, err := srv.userRepo.ByIdentification(ctx, identification)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrUserNotFound
	}

	return user, err
}

func (srv *userService) SearchUsers(ctx context.Context, filters repository.UserFilters) ([]*entity.User, error) {
	if filters.Empty() {
		return nil, domainerrors.ErrNoFilters
	}

	return srv.userRepo.Search(ctx, filters)
}

func userFromInput(input usecase.CreateUserInput) *entity.User {
	return &entity.User{
		Email:                input.Email,
		Password:             input.Password,
		Name:                 input.Name,
		LastName:             input.LastName,
		Phone:                input.Phone,
		Identification:       input.Identification,
		IsVirtual:            input.IsVirtual,
		Account:              input.Account,
		Address:              input.Address,
		RoleID:               input.RoleID,
		IdentificationTypeID: input.IdentificationTypeID,
		BranchOfficeID:       input.BranchOfficeID,
		PaymentMethodID:      input.PaymentMethodID,
	}
}

// CreateUser hashes the password, persists the employee and sends the welcome
// mail. A mail failure is logged and does not undo the registration.
func (srv *userService) CreateUser(ctx context.Context, input usecase.CreateUserInput) (int64, error) {
	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return 0, errors.Wrap(err, "failed to hash password")
	}

	user := userFromInput(input)
	user.Password = hash

	userID, err := srv.userRepo.Save(ctx, user)
	if err != nil {
		return 0, errors.Wrap(err, "failed to save user")
	}

	if err := srv.mailer.SendWelcome(ctx, input.Email); err != nil {
		srv.log(ctx).Warn("welcome mail failed", slog.String("email", input.Email), slog.Any("error", err))
	}

	srv.log(ctx).Info("user created", slog.Int64("userId", userID))

	return userID, nil
}

func (srv *userService) UpdateUser(ctx context.Context, userID int64, input usecase.CreateUserInput) error {
	user := userFromInput(input)
	if input.Password != "" {
		hash, err := srv.hasher.Hash(input.Password)
		if err != nil {
			return errors.Wrap(err, "failed to hash password")
		}
		user.Password = hash
	}

	return srv.userRepo.Update(ctx, userID, user)
}

func (srv *userService) DeleteUser(ctx context.Context, userID int64) error {
	return srv.userRepo.Delete(ctx, userID)
}

func (srv *userService) AllStates(ctx context.Context) ([]*entity.UserState, error) {
	return srv.userRepo.AllStates(ctx)
}

func (srv *userService) AllRoles(ctx context.Context) ([]*entity.Role, error) {
	return srv.userRepo.AllRoles(ctx)
}

func (srv *userService) AllIdentificationTypes(ctx context.Context) ([]*entity.IdentificationType, error) {
	return srv.userRepo.AllIdentificationTypes(ctx)
}

func (srv *userService) AllFaults(ctx context.Context) ([]*entity.Fault, error) {
	return srv.faultRepo.All(ctx)
}

func (srv *userService) FaultByID(ctx context.Context, faultID int64) (*entity.Fault, error) {
	fault, err := srv.faultRepo.ByID(ctx, faultID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, domainerrors.ErrNotFound
	}

	return fault, err
}

func (srv *userService) FaultsByUserID(ctx context.Context, userID int64) ([]*entity.Fault, error) {
	return srv.faultRepo.ByUserID(ctx, userID)
}

func (srv *userService) CurrentFaultsByUserID(ctx context.Context, userID int64) ([]*entity.Fault, error) {
	return srv.faultRepo.CurrentByUserID(ctx, userID)
}

func (srv *userService) CreateFault(ctx context.Context, fault *entity.Fault) (int64, error) {
	return srv.faultRepo.Save(ctx, fault)
}

func (srv *userService) UpdateFault(ctx context.Context, faultID int64, fault *entity.Fault) error {
	return srv.faultRepo.Update(ctx, faultID, fault)
}

func (srv *userService) DeleteFault(ctx context.Context, faultID int64) error {
	return srv.faultRepo.Delete(ctx, faultID)
}

func (srv *userService) AllFileTypes(ctx context.Context) ([]*entity.FileType, error) {
	return srv.userFileRepo.AllFileTypes(ctx)
}

func (srv *userService) CreateFileType(ctx context.Context, fileType *entity.FileType) (int64, error) {
	return srv.userFileRepo.SaveFileType(ctx, fileType)
}

func (srv *userService) UpdateFileType(ctx context.Context, fileTypeID int64, fileType *entity.FileType) error {
	return srv.userFileRepo.UpdateFileType(ctx, fileTypeID, fileType)
}

func (srv *userService) DeleteFileType(ctx context.Context, fileTypeID int64) error {
	return srv.userFileRepo.DeleteFileType(ctx, fileTypeID)
}

func (srv *userService) AllUserFiles(ctx context.Context) ([]*entity.UserFile, error) {
	return srv.userFileRepo.AllUserFiles(ctx)
}

// UserFilesWithMetadata merges one employee's document links with the
// metadata the document store holds for them. Both sides come back ordered by
// file id, so each link finds its metadata with a binary search. Links whose
// metadata is gone keep empty metadata fields.
func (srv *userService) UserFilesWithMetadata(ctx context.Context, userID int64) ([]*entity.UserFile, error) {
	links, err := srv.userFileRepo.UserFilesByUserID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list user files")
	}
	if len(links) == 0 {
		return links, nil
	}

	fileIDs := make([]string, 0, len(links))
	for _, link := range links {
		fileIDs = append(fileIDs, link.FileID)
	}

	metas, err := srv.fileUsecase.MetadataByIDs(ctx, fileIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load file metadata")
	}

	for _, link := range links {
		if meta := findMetadata(metas, link.FileID); meta != nil {
			link.FileName = meta.Name
			link.Container = meta.Container
			link.SHA256 = meta.SHA256
		}
	}

	return links, nil
}

// findMetadata binary-searches metas, which is sorted by FileID.
func findMetadata(metas []*entity.FileMetadata, fileID string) *entity.FileMetadata {
	lo, hi := 0, len(metas)-1
	for lo <= hi {
		mid := (lo + hi) / 2
		switch {
		case metas[mid].FileID == fileID:
			return metas[mid]
		case metas[mid].FileID < fileID:
			lo = mid + 1
		default:
			hi = mid - 1
		}
	}

	return nil
}

// AttachFile stores the blob and links it to the employee.
func (srv *userService) AttachFile(ctx context.Context, input usecase.AttachFileInput) (*entity.UserFile, error) {
	uploaded, err := srv.fileUsecase.Upload(ctx, input.FileName, input.Content)
	if err != nil {
		return nil, errors.Wrap(err, "failed to upload file")
	}

	link := &entity.UserFile{
		FileTypeID: input.FileTypeID,
		FileID:     uploaded.FileID,
		UserID:     input.UserID,
	}

	link.UserFileID, err = srv.userFileRepo.SaveUserFile(ctx, link)
	if err != nil {
		return nil, errors.Wrap(err, "failed to link file to user")
	}

	srv.log(ctx).Info("file attached",
		slog.Int64("userId", input.UserID),
		slog.String("fileId", uploaded.FileID),
		slog.Bool("reused", uploaded.Reused))

	return link, nil
}

// RemoveUserFile deletes a document after checking it belongs to the user.
func (srv *userService) RemoveUserFile(ctx context.Context, userID int64, fileID string) error {
	link, err := srv.userFileRepo.UserFileByUserAndFile(ctx, userID, fileID)
	if err != nil {
		if errors.Is(err, repository.ErrUserFileNotFound) {
			return domainerrors.ErrFileOwnership
		}

		return errors.Wrap(err, "failed to check file ownership")
	}

	if err := srv.userFileRepo.DeleteUserFile(ctx, link.UserFileID); err != nil {
		return errors.Wrap(err, "failed to unlink file")
	}

	return srv.fileUsecase.Delete(ctx, fileID)
}
