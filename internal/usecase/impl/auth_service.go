// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "hrcore/internal/delivery/context"
	"hrcore/internal/domain/entity"
	domainerrors "hrcore/internal/domain/errors"
	"hrcore/internal/domain/repository"
	"hrcore/internal/domain/service"
	"hrcore/internal/errors"
	"hrcore/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	oauthService service.OAuthService
	mailer       service.Mailer
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	OAuthService service.OAuthService
	Mailer       service.Mailer
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		oauthService: params.OAuthService,
		mailer:       params.Mailer,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *authService) session(token string) *usecase.SessionOutput {
	return &usecase.SessionOutput{
		Token:     token,
		ExpiresIn: int(srv.tokenService.TTL() / time.Second),
	}
}

// Login validates the credentials and mints a session token. Unknown email
// and wrong password return the same error.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.SessionOutput, error) {
	account, err := srv.userRepo.AccountByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to load account")
	}

	if !srv.hasher.Check(input.Password, account.Password) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := srv.tokenService.Sign(account.UserID, account.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign token")
	}

	srv.log(ctx).Info("session opened", slog.Int64("userId", account.UserID))

	return srv.session(token), nil
}

// Refresh re-signs an authentic token with a fresh full lifetime. Expiry is
// ignored on purpose; only the signature has to hold.
func (srv *authService) Refresh(ctx context.Context, token string) (*usecase.SessionOutput, error) {
	claims, err := srv.tokenService.VerifyLoose(token)
	if err != nil {
		return nil, domainerrors.ErrTokenInvalid
	}

	fresh, err := srv.tokenService.Sign(claims.UserID, claims.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to re-sign token")
	}

	srv.log(ctx).Debug("session refreshed", slog.Int64("userId", claims.UserID))

	return srv.session(fresh), nil
}

// GoogleAuthURL returns the federated-login redirect URL for a state.
func (srv *authService) GoogleAuthURL(state string) string {
	return srv.oauthService.BuildAuthorizationURL(state)
}

// GoogleCallback completes the federated login. An unknown email gets a new
// employee record provisioned with placeholder fields before the session is
// minted.
func (srv *authService) GoogleCallback(ctx context.Context, state, code string) (*usecase.SessionOutput, error) {
	if !srv.oauthService.ValidateState(state) {
		return nil, domainerrors.ErrUnauthorized
	}

	profile, err := srv.oauthService.ExchangeCode(ctx, code)
	if err != nil {
		return nil, errors.Wrap(err, "failed to exchange authorization code")
	}
	if profile.Email == "" {
		return nil, domainerrors.ErrFederatedEmailMissing
	}

	account, err := srv.userRepo.AccountByEmail(ctx, profile.Email)
	if errors.Is(err, repository.ErrAccountNotFound) {
		account, err = srv.provisionFederatedUser(ctx, profile)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve federated account")
	}

	token, err := srv.tokenService.Sign(account.UserID, account.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign token")
	}

	return srv.session(token), nil
}

// provisionFederatedUser registers an employee from the provider profile. The
// password is set to a random unguessable value so the account can only open
// sessions through the provider until an administrator resets it.
func (srv *authService) provisionFederatedUser(ctx context.Context, profile *service.OAuthProfile) (*entity.UserAccount, error) {
	roleID, err := srv.defaultRoleID(ctx)
	if err != nil {
		return nil, err
	}

	hash, err := srv.hasher.Hash(uuid.NewString())
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash placeholder password")
	}

	user := &entity.User{
		Email:    profile.Email,
		Password: hash,
		Name:     profile.Name,
		RoleID:   roleID,
	}

	userID, err := srv.userRepo.Save(ctx, user)
	if err != nil {
		return nil, errors.Wrap(err, "failed to provision user")
	}

	if err := srv.mailer.SendWelcome(ctx, profile.Email); err != nil {
		srv.log(ctx).Warn("welcome mail failed", slog.String("email", profile.Email), slog.Any("error", err))
	}

	srv.log(ctx).Info("federated user provisioned", slog.Int64("userId", userID), slog.String("email", profile.Email))

	return &entity.UserAccount{UserID: userID, Email: profile.Email, Password: hash}, nil
}

func (srv *authService) defaultRoleID(ctx context.Context) (int64, error) {
	roles, err := srv.userRepo.AllRoles(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to list roles")
	}
	for _, role := range roles {
		if role.Name == entity.RoleNameAdministrative {
			return role.RoleID, nil
		}
	}

	return 0, errors.New("default role not configured")
}
