package impl

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"time"

	"hrcore/internal/domain/entity"
	"hrcore/internal/domain/repository"
	"hrcore/internal/domain/service"
	"hrcore/internal/errors"
	"hrcore/internal/usecase"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeHasher hashes by prefixing, which keeps assertions readable.
type fakeHasher struct {
	hashErr error
}

func (f *fakeHasher) Hash(password string) (string, error) {
	if f.hashErr != nil {
		return "", f.hashErr
	}

	return "hashed:" + password, nil
}

func (f *fakeHasher) Check(password, hash string) bool {
	return hash == "hashed:"+password
}

// fakeTokenService signs tokens it can verify back from an in-memory map.
type fakeTokenService struct {
	signErr  error
	looseErr error
	ttl      time.Duration

	issued map[string]*service.Claims
}

func newFakeTokenService() *fakeTokenService {
	return &fakeTokenService{ttl: time.Hour, issued: map[string]*service.Claims{}}
}

func (f *fakeTokenService) Sign(userID int64, email string) (string, error) {
	if f.signErr != nil {
		return "", f.signErr
	}
	token := "token-" + email
	f.issued[token] = &service.Claims{UserID: userID, Email: email}

	return token, nil
}

func (f *fakeTokenService) Verify(token string) (*service.Claims, error) {
	claims, ok := f.issued[token]
	if !ok {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}

func (f *fakeTokenService) VerifyLoose(token string) (*service.Claims, error) {
	if f.looseErr != nil {
		return nil, f.looseErr
	}

	return f.Verify(token)
}

func (f *fakeTokenService) TTL() time.Duration {
	return f.ttl
}

// fakeOAuthService returns a canned profile.
type fakeOAuthService struct {
	stateOK     bool
	profile     *service.OAuthProfile
	exchangeErr error
}

func (f *fakeOAuthService) BuildAuthorizationURL(state string) string {
	return "https://accounts.example.com/auth?state=" + state
}

func (f *fakeOAuthService) ValidateState(string) bool {
	return f.stateOK
}

func (f *fakeOAuthService) ExchangeCode(context.Context, string) (*service.OAuthProfile, error) {
	if f.exchangeErr != nil {
		return nil, f.exchangeErr
	}

	return f.profile, nil
}

// fakeMailer records recipients.
type fakeMailer struct {
	sent    []string
	sendErr error
}

func (f *fakeMailer) SendWelcome(_ context.Context, to string) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent = append(f.sent, to)

	return nil
}

// fakeUserRepo is a map-backed UserRepository.
type fakeUserRepo struct {
	users    map[int64]*entity.User
	accounts map[string]*entity.UserAccount
	roles    []*entity.Role
	nextID   int64

	saved   []*entity.User
	saveErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users:    map[int64]*entity.User{},
		accounts: map[string]*entity.UserAccount{},
		nextID:   100,
	}
}

func (f *fakeUserRepo) All(context.Context) ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UserID < out[j].UserID })

	return out, nil
}

func (f *fakeUserRepo) ByID(_ context.Context, userID int64) (*entity.User, error) {
	user, ok := f.users[userID]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return user, nil
}

func (f *fakeUserRepo) ByIdentification(_ context.Context, identification string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Identification == identification {
			return u, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (f *fakeUserRepo) Search(_ context.Context, filters repository.UserFilters) ([]*entity.User, error) {
	if filters.Empty() {
		return nil, repository.ErrEmptyFilters
	}

	return f.All(context.Background())
}

func (f *fakeUserRepo) Save(_ context.Context, user *entity.User) (int64, error) {
	if f.saveErr != nil {
		return 0, f.saveErr
	}
	f.nextID++
	user.UserID = f.nextID
	f.users[user.UserID] = user
	f.accounts[user.Email] = &entity.UserAccount{UserID: user.UserID, Email: user.Email, Password: user.Password}
	f.saved = append(f.saved, user)

	return user.UserID, nil
}

func (f *fakeUserRepo) Update(_ context.Context, userID int64, user *entity.User) error {
	user.UserID = userID
	f.users[userID] = user

	return nil
}

func (f *fakeUserRepo) Delete(_ context.Context, userID int64) error {
	delete(f.users, userID)

	return nil
}

func (f *fakeUserRepo) AccountByEmail(_ context.Context, email string) (*entity.UserAccount, error) {
	account, ok := f.accounts[email]
	if !ok {
		return nil, repository.ErrAccountNotFound
	}

	return account, nil
}

func (f *fakeUserRepo) AllStates(context.Context) ([]*entity.UserState, error) {
	return nil, nil
}

func (f *fakeUserRepo) AllRoles(context.Context) ([]*entity.Role, error) {
	return f.roles, nil
}

func (f *fakeUserRepo) AllIdentificationTypes(context.Context) ([]*entity.IdentificationType, error) {
	return nil, nil
}

// fakeFaultRepo is a map-backed FaultRepository.
type fakeFaultRepo struct {
	faults map[int64]*entity.Fault
	nextID int64
}

func newFakeFaultRepo() *fakeFaultRepo {
	return &fakeFaultRepo{faults: map[int64]*entity.Fault{}}
}

func (f *fakeFaultRepo) All(context.Context) ([]*entity.Fault, error) {
	out := make([]*entity.Fault, 0, len(f.faults))
	for _, fault := range f.faults {
		out = append(out, fault)
	}

	return out, nil
}

func (f *fakeFaultRepo) ByID(_ context.Context, faultID int64) (*entity.Fault, error) {
	fault, ok := f.faults[faultID]
	if !ok {
		return nil, repository.ErrNotFound
	}

	return fault, nil
}

func (f *fakeFaultRepo) ByUserID(_ context.Context, userID int64) ([]*entity.Fault, error) {
	var out []*entity.Fault
	for _, fault := range f.faults {
		if fault.UserID == userID {
			out = append(out, fault)
		}
	}

	return out, nil
}

func (f *fakeFaultRepo) CurrentByUserID(ctx context.Context, userID int64) ([]*entity.Fault, error) {
	return f.ByUserID(ctx, userID)
}

func (f *fakeFaultRepo) Save(_ context.Context, fault *entity.Fault) (int64, error) {
	f.nextID++
	fault.FaultID = f.nextID
	f.faults[fault.FaultID] = fault

	return fault.FaultID, nil
}

func (f *fakeFaultRepo) Update(_ context.Context, faultID int64, fault *entity.Fault) error {
	fault.FaultID = faultID
	f.faults[faultID] = fault

	return nil
}

func (f *fakeFaultRepo) Delete(_ context.Context, faultID int64) error {
	delete(f.faults, faultID)

	return nil
}

// fakeUserFileRepo is a map-backed UserFileRepository.
type fakeUserFileRepo struct {
	fileTypes map[int64]*entity.FileType
	links     map[int64]*entity.UserFile
	nextID    int64
}

func newFakeUserFileRepo() *fakeUserFileRepo {
	return &fakeUserFileRepo{
		fileTypes: map[int64]*entity.FileType{},
		links:     map[int64]*entity.UserFile{},
	}
}

func (f *fakeUserFileRepo) AllFileTypes(context.Context) ([]*entity.FileType, error) {
	out := make([]*entity.FileType, 0, len(f.fileTypes))
	for _, ft := range f.fileTypes {
		out = append(out, ft)
	}

	return out, nil
}

func (f *fakeUserFileRepo) SaveFileType(_ context.Context, fileType *entity.FileType) (int64, error) {
	f.nextID++
	fileType.FileTypeID = f.nextID
	f.fileTypes[fileType.FileTypeID] = fileType

	return fileType.FileTypeID, nil
}

func (f *fakeUserFileRepo) UpdateFileType(_ context.Context, fileTypeID int64, fileType *entity.FileType) error {
	fileType.FileTypeID = fileTypeID
	f.fileTypes[fileTypeID] = fileType

	return nil
}

func (f *fakeUserFileRepo) DeleteFileType(_ context.Context, fileTypeID int64) error {
	delete(f.fileTypes, fileTypeID)

	return nil
}

func (f *fakeUserFileRepo) AllUserFiles(context.Context) ([]*entity.UserFile, error) {
	out := make([]*entity.UserFile, 0, len(f.links))
	for _, link := range f.links {
		out = append(out, link)
	}

	return out, nil
}

func (f *fakeUserFileRepo) UserFilesByUserID(_ context.Context, userID int64) ([]*entity.UserFile, error) {
	var out []*entity.UserFile
	for _, link := range f.links {
		if link.UserID == userID {
			out = append(out, link)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].FileID < out[j].FileID })

	return out, nil
}

func (f *fakeUserFileRepo) UserFileByUserAndFile(_ context.Context, userID int64, fileID string) (*entity.UserFile, error) {
	for _, link := range f.links {
		if link.UserID == userID && link.FileID == fileID {
			return link, nil
		}
	}

	return nil, repository.ErrUserFileNotFound
}

func (f *fakeUserFileRepo) SaveUserFile(_ context.Context, link *entity.UserFile) (int64, error) {
	f.nextID++
	stored := *link
	stored.UserFileID = f.nextID
	f.links[stored.UserFileID] = &stored

	return stored.UserFileID, nil
}

func (f *fakeUserFileRepo) DeleteUserFile(_ context.Context, userFileID int64) error {
	delete(f.links, userFileID)

	return nil
}

// fakeMetadataRepo is a map-backed FileMetadataRepository.
type fakeMetadataRepo struct {
	docs      map[string]*entity.FileMetadata
	nextID    int
	insertErr error
	deleted   []string
}

func newFakeMetadataRepo() *fakeMetadataRepo {
	return &fakeMetadataRepo{docs: map[string]*entity.FileMetadata{}}
}

func (f *fakeMetadataRepo) ByID(_ context.Context, fileID string) (*entity.FileMetadata, error) {
	meta, ok := f.docs[fileID]
	if !ok {
		return nil, repository.ErrFileNotFound
	}

	return meta, nil
}

func (f *fakeMetadataRepo) ByIDs(_ context.Context, fileIDs []string) ([]*entity.FileMetadata, error) {
	var out []*entity.FileMetadata
	for _, id := range fileIDs {
		if meta, ok := f.docs[id]; ok {
			out = append(out, meta)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].FileID < out[j].FileID })

	return out, nil
}

func (f *fakeMetadataRepo) BySHA256(_ context.Context, digest string) (*entity.FileMetadata, error) {
	for _, meta := range f.docs {
		if meta.SHA256 == digest {
			return meta, nil
		}
	}

	return nil, repository.ErrFileNotFound
}

func (f *fakeMetadataRepo) Insert(_ context.Context, meta *entity.FileMetadata) (string, error) {
	if f.insertErr != nil {
		return "", f.insertErr
	}
	f.nextID++
	id := "file-" + string(rune('a'+f.nextID-1))
	stored := *meta
	stored.FileID = id
	f.docs[id] = &stored

	return id, nil
}

func (f *fakeMetadataRepo) Delete(_ context.Context, fileID string) error {
	delete(f.docs, fileID)
	f.deleted = append(f.deleted, fileID)

	return nil
}

// fakeBlobStore is a map-backed BlobStore.
type fakeBlobStore struct {
	blobs  map[string][]byte
	putErr error
}

func newFakeBlobStore() *fakeBlobStore {
	return &fakeBlobStore{blobs: map[string][]byte{}}
}

func (f *fakeBlobStore) Put(_ context.Context, key string, data []byte) error {
	if f.putErr != nil {
		return f.putErr
	}
	f.blobs[key] = data

	return nil
}

func (f *fakeBlobStore) Get(_ context.Context, key string) ([]byte, error) {
	data, ok := f.blobs[key]
	if !ok {
		return nil, errors.New("blob not found")
	}

	return data, nil
}

func (f *fakeBlobStore) Delete(_ context.Context, key string) error {
	delete(f.blobs, key)

	return nil
}

// fakeFileUsecase records uploads and deletions for user-service tests.
type fakeFileUsecase struct {
	metas     []*entity.FileMetadata
	uploadOut *usecase.UploadOutput
	uploadErr error
	deleted   []string
}

func (f *fakeFileUsecase) Upload(context.Context, string, []byte) (*usecase.UploadOutput, error) {
	if f.uploadErr != nil {
		return nil, f.uploadErr
	}

	return f.uploadOut, nil
}

func (f *fakeFileUsecase) Download(context.Context, string) (*usecase.DownloadOutput, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeFileUsecase) Delete(_ context.Context, fileID string) error {
	f.deleted = append(f.deleted, fileID)

	return nil
}

func (f *fakeFileUsecase) MetadataByIDs(context.Context, []string) ([]*entity.FileMetadata, error) {
	return f.metas, nil
}
