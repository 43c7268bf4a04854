// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "identity/internal/delivery/context"
	"identity/internal/domain/entity"
	domainerrors "identity/internal/domain/errors"
	"identity/internal/domain/repository"
	"identity/internal/domain/service"
	"identity/internal/errors"
	"identity/internal/usecase"

	"go.uber.org/fx"
)

// identityService implements the IdentityUsecase interface.
// Emails and passwords are never written to the log.
type identityService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// IdentityServiceParams holds dependencies for IdentityService, injected by Fx.
type IdentityServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewIdentityService is the constructor for identityService. It receives all dependencies as interfaces.
func NewIdentityService(params IdentityServiceParams) usecase.IdentityUsecase {
	return &identityService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *identityService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new account and issues its first token.
func (srv *identityService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	srv.log(ctx).Debug("Starting registration")

	_, err := srv.userRepo.FindByEmail(ctx, input.Email)
	switch {
	case err == nil:
		srv.log(ctx).Warn("Registration rejected, account already exists")

		return nil, domainerrors.ErrAlreadyExists.WrapMessage("email already registered")
	case !errors.Is(err, repository.ErrUserNotFound):
		srv.log(ctx).Error("Failed to look up account during registration", slog.Any("error", err))

		return nil, internalError(err, "failed to look up account")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, internalError(err, "failed to hash password")
	}

	user := &entity.User{
		Email:        input.Email,
		Name:         input.Name,
		PasswordHash: hash,
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		// A concurrent registration for the same email won the unique index.
		if errors.Is(err, repository.ErrUserConflict) {
			srv.log(ctx).Warn("Registration rejected by unique email index")

			return nil, domainerrors.ErrAlreadyExists.WrapMessage("email already registered")
		}

		srv.log(ctx).Error("Failed to create user during registration", slog.Any("error", err))

		return nil, internalError(err, "failed to create user")
	}

	output, err := srv.issue(ctx, user.Claims())
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Registration completed", slog.String("userID", user.ID.String()))

	return output, nil
}

// Login checks the credentials and issues a token.
// Unknown email and wrong password fail identically.
func (srv *identityService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Login rejected")

			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
		}

		srv.log(ctx).Error("Failed to look up account during login", slog.Any("error", err))

		return nil, internalError(err, "failed to look up account")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login rejected")

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
	}

	output, err := srv.issue(ctx, user.Claims())
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Login succeeded", slog.String("userID", user.ID.String()))

	return output, nil
}

// VerifyToken validates a token and answers with a freshly signed one for the same identity.
func (srv *identityService) VerifyToken(ctx context.Context, input *usecase.VerifyTokenInput) (*usecase.AuthOutput, error) {
	claims, err := srv.tokenService.Verify(input.Token)
	if err != nil {
		srv.log(ctx).Warn("Token verification failed", slog.Any("error", err))

		return nil, domainerrors.ErrInvalidToken.WrapMessage("token rejected")
	}

	output, err := srv.issue(ctx, claims)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("Token refreshed", slog.String("userID", claims.ID.String()))

	return output, nil
}

func (srv *identityService) issue(ctx context.Context, claims *entity.Claims) (*usecase.AuthOutput, error) {
	token, err := srv.tokenService.Sign(claims)
	if err != nil {
		srv.log(ctx).Error("Failed to sign token", slog.Any("error", err))

		return nil, internalError(err, "failed to sign token")
	}

	return &usecase.AuthOutput{User: claims, Token: token}, nil
}

// internalError hides the cause from clients while keeping it in Details for logs.
func internalError(err error, message string) error {
	return errors.Wrap(domainerrors.ErrInternalError.WithDetails(err.Error()), message)
}
