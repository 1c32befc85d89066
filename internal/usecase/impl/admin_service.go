package impl

import (
	"context"
	"log/slog"

	"keygate/config"
	deliverycontext "keygate/internal/delivery/context"
	domainerrors "keygate/internal/domain/errors"
	"keygate/internal/domain/service"
	"keygate/internal/usecase"

	"github.com/pkg/errors"
)

// adminSubject is the session subject of the single admin account.
const adminSubject = "admin"

type adminService struct {
	passwordHash string
	hasher       service.PasswordHasher
	tokenSvc     service.TokenService
	logger       *slog.Logger
}

// NewAdminService hashes the configured admin password once at startup.
func NewAdminService(
	cfg *config.Config,
	hasher service.PasswordHasher,
	tokenSvc service.TokenService,
	logger *slog.Logger,
) (usecase.AdminUsecase, error) {
	if cfg.Admin.Password == "" {
		return nil, errors.New("admin password must be configured")
	}

	hash, err := hasher.Hash(cfg.Admin.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash admin password")
	}

	return &adminService{
		passwordHash: hash,
		hasher:       hasher,
		tokenSvc:     tokenSvc,
		logger:       logger,
	}, nil
}

// Login checks the shared admin password and issues a session token.
func (s *adminService) Login(ctx context.Context, password string) (*usecase.AdminSession, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	if password == "" || !s.hasher.Check(password, s.passwordHash) {
		logger.Warn("Admin login rejected")

		return nil, domainerrors.ErrInvalidCredentials
	}

	token, expiresAt, err := s.tokenSvc.IssueSession(adminSubject)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue admin session")
	}

	logger.Info("Admin logged in")

	return &usecase.AdminSession{Token: token, ExpiresAt: expiresAt}, nil
}

// Authenticate accepts only unexpired admin session tokens.
func (s *adminService) Authenticate(_ context.Context, token string) error {
	if token == "" {
		return domainerrors.ErrUnauthorized
	}

	claims, err := s.tokenSvc.ValidateSession(token)
	if err != nil || claims.Subject != adminSubject {
		return domainerrors.ErrUnauthorized
	}

	return nil
}
