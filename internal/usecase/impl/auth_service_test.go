package impl

import (
	"context"
	"testing"

	"hrcore/internal/domain/entity"
	domainerrors "hrcore/internal/domain/errors"
	"hrcore/internal/domain/service"
	"hrcore/internal/errors"
	"hrcore/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type authServiceFixtures struct {
	service      usecase.AuthUsecase
	userRepo     *fakeUserRepo
	hasher       *fakeHasher
	tokenService *fakeTokenService
	oauthService *fakeOAuthService
	mailer       *fakeMailer
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	t.Helper()

	userRepo := newFakeUserRepo()
	hasher := &fakeHasher{}
	tokenService := newFakeTokenService()
	oauthService := &fakeOAuthService{stateOK: true}
	mailer := &fakeMailer{}

	svc := NewAuthService(AuthServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		OAuthService: oauthService,
		Mailer:       mailer,
		Logger:       discardLogger(),
	})

	return authServiceFixtures{
		service:      svc,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
		oauthService: oauthService,
		mailer:       mailer,
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	fixtures := createTestAuthService(t)
	fixtures.userRepo.accounts["ana@example.com"] = &entity.UserAccount{
		UserID:   7,
		Email:    "ana@example.com",
		Password: "hashed:secret",
	}

	out, err := fixtures.service.Login(context.Background(), usecase.LoginInput{
		Email:    "ana@example.com",
		Password: "secret",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, 3600, out.ExpiresIn)

	claims, err := fixtures.tokenService.Verify(out.Token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
	assert.Equal(t, "ana@example.com", claims.Email)
}

func TestAuthService_Login_UnknownEmailAndWrongPasswordFailAlike(t *testing.T) {
	fixtures := createTestAuthService(t)
	fixtures.userRepo.accounts["ana@example.com"] = &entity.UserAccount{
		UserID:   7,
		Email:    "ana@example.com",
		Password: "hashed:secret",
	}

	_, unknownErr := fixtures.service.Login(context.Background(), usecase.LoginInput{
		Email:    "nobody@example.com",
		Password: "secret",
	})
	_, wrongPassErr := fixtures.service.Login(context.Background(), usecase.LoginInput{
		Email:    "ana@example.com",
		Password: "guess",
	})

	require.Error(t, unknownErr)
	require.Error(t, wrongPassErr)
	assert.Equal(t, unknownErr, wrongPassErr)
	assert.Equal(t, domainerrors.ErrInvalidCredentials, unknownErr)
}

func TestAuthService_Refresh_ReissuesToken(t *testing.T) {
	fixtures := createTestAuthService(t)
	token, err := fixtures.tokenService.Sign(7, "ana@example.com")
	require.NoError(t, err)

	out, err := fixtures.service.Refresh(context.Background(), token)

	require.NoError(t, err)
	assert.Equal(t, 3600, out.ExpiresIn)

	claims, err := fixtures.tokenService.Verify(out.Token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
}

func TestAuthService_Refresh_RejectsBadSignature(t *testing.T) {
	fixtures := createTestAuthService(t)
	fixtures.tokenService.looseErr = errors.New("bad signature")

	_, err := fixtures.service.Refresh(context.Background(), "forged")

	assert.Equal(t, domainerrors.ErrTokenInvalid, err)
}

func TestAuthService_GoogleCallback_ExistingAccount(t *testing.T) {
	fixtures := createTestAuthService(t)
	fixtures.userRepo.accounts["ana@example.com"] = &entity.UserAccount{
		UserID:   7,
		Email:    "ana@example.com",
		Password: "hashed:secret",
	}
	fixtures.oauthService.profile = &service.OAuthProfile{
		ProviderUserID: "google-1",
		Email:          "ana@example.com",
		Name:           "Ana",
	}

	out, err := fixtures.service.GoogleCallback(context.Background(), "state", "code")

	require.NoError(t, err)
	claims, err := fixtures.tokenService.Verify(out.Token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
	assert.Empty(t, fixtures.userRepo.saved, "no provisioning for a known email")
}

func TestAuthService_GoogleCallback_ProvisionsUnknownEmail(t *testing.T) {
	fixtures := createTestAuthService(t)
	fixtures.userRepo.roles = []*entity.Role{
		{RoleID: 1, Name: entity.RoleNameAdministrator},
		{RoleID: 2, Name: entity.RoleNameAdministrative},
	}
	fixtures.oauthService.profile = &service.OAuthProfile{
		ProviderUserID: "google-2",
		Email:          "nueva@example.com",
		Name:           "Nueva",
	}

	out, err := fixtures.service.GoogleCallback(context.Background(), "state", "code")

	require.NoError(t, err)
	require.Len(t, fixtures.userRepo.saved, 1)
	provisioned := fixtures.userRepo.saved[0]
	assert.Equal(t, "nueva@example.com", provisioned.Email)
	assert.Equal(t, int64(2), provisioned.RoleID)
	assert.NotEmpty(t, provisioned.Password)
	assert.Equal(t, []string{"nueva@example.com"}, fixtures.mailer.sent)

	claims, err := fixtures.tokenService.Verify(out.Token)
	require.NoError(t, err)
	assert.Equal(t, provisioned.UserID, claims.UserID)
}

func TestAuthService_GoogleCallback_SecondCallbackReusesProvisionedAccount(t *testing.T) {
	fixtures := createTestAuthService(t)
	fixtures.userRepo.roles = []*entity.Role{
		{RoleID: 2, Name: entity.RoleNameAdministrative},
	}
	fixtures.oauthService.profile = &service.OAuthProfile{
		ProviderUserID: "google-4",
		Email:          "nueva@example.com",
		Name:           "Nueva",
	}

	first, err := fixtures.service.GoogleCallback(context.Background(), "state", "code")
	require.NoError(t, err)
	require.Len(t, fixtures.userRepo.saved, 1)
	provisioned := fixtures.userRepo.saved[0]

	second, err := fixtures.service.GoogleCallback(context.Background(), "state", "code")

	require.NoError(t, err)
	assert.Len(t, fixtures.userRepo.saved, 1, "a known email must never provision twice")

	claims, err := fixtures.tokenService.Verify(first.Token)
	require.NoError(t, err)
	assert.Equal(t, provisioned.UserID, claims.UserID)

	claims, err = fixtures.tokenService.Verify(second.Token)
	require.NoError(t, err)
	assert.Equal(t, provisioned.UserID, claims.UserID)
}

func TestAuthService_GoogleCallback_MissingEmail(t *testing.T) {
	fixtures := createTestAuthService(t)
	fixtures.oauthService.profile = &service.OAuthProfile{ProviderUserID: "google-3"}

	_, err := fixtures.service.GoogleCallback(context.Background(), "state", "code")

	assert.Equal(t, domainerrors.ErrFederatedEmailMissing, err)
}

func TestAuthService_GoogleCallback_InvalidState(t *testing.T) {
	fixtures := createTestAuthService(t)
	fixtures.oauthService.stateOK = false

	_, err := fixtures.service.GoogleCallback(context.Background(), "tampered", "code")

	assert.Equal(t, domainerrors.ErrUnauthorized, err)
}
