package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/wheelmate/internal/apperror"
	"github.com/shenikar/wheelmate/internal/auth"
	"github.com/shenikar/wheelmate/internal/models"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=auth.go -destination=mocks/auth_mock.go -package=mocks

// UserRepository определяет контракт для хранилища пользователей
type UserRepository interface {
	// Create возвращает models.ErrDuplicate, если имя уже занято
	Create(ctx context.Context, user *models.User) error
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

// AuthService определяет контракт для регистрации и входа
type AuthService interface {
	Register(ctx context.Context, input models.RegisterInput) (*models.User, error)
	Login(ctx context.Context, input models.LoginInput) (*models.LoginResult, error)
	VerifyToken(token string) (models.Identity, error)
}

type authService struct {
	repo   UserRepository
	tokens *auth.TokenManager
	logger *logrus.Logger
	now    func() time.Time
}

func NewAuthService(repo UserRepository, tokens *auth.TokenManager, logger *logrus.Logger) AuthService {
	return &authService{
		repo:   repo,
		tokens: tokens,
		logger: logger,
		now:    time.Now,
	}
}

// Register создает пользователя с хешированным паролем
func (s *authService) Register(ctx context.Context, input models.RegisterInput) (*models.User, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "auth",
		"method":   "Register",
		"username": input.Username,
	})

	if err := input.Validate(); err != nil {
		log.WithError(err).Warn("Registration input rejected")
		return nil, err
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		log.WithError(err).Error("Failed to hash password")
		return nil, apperror.NewInternal("could not register user", err)
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Username:     input.Username,
		PasswordHash: hash,
		CreatedAt:    s.now().UTC(),
	}
	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, models.ErrDuplicate) {
			log.Warn("Username already exists")
			return nil, apperror.NewValidation("username already exists")
		}
		log.WithError(err).Error("Failed to create user in repository")
		return nil, apperror.NewInternal("could not register user", err)
	}

	log.WithField("user_id", user.ID).Info("User registered successfully")
	return user, nil
}

// Login проверяет учетные данные и выпускает токен
func (s *authService) Login(ctx context.Context, input models.LoginInput) (*models.LoginResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "auth",
		"method":   "Login",
		"username": input.Username,
	})

	if err := input.Validate(); err != nil {
		return nil, err
	}

	user, err := s.repo.GetByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			log.Warn("Login attempt for unknown user")
			return nil, apperror.NewUnauthorized("invalid credentials")
		}
		log.WithError(err).Error("Failed to get user in repository")
		return nil, apperror.NewInternal("could not log in", err)
	}

	if err := auth.CheckPassword(user.PasswordHash, input.Password); err != nil {
		if errors.Is(err, auth.ErrPasswordMismatch) {
			log.Warn("Login attempt with wrong password")
			return nil, apperror.NewUnauthorized("invalid credentials")
		}
		log.WithError(err).Error("Failed to check password")
		return nil, apperror.NewInternal("could not log in", err)
	}

	token, expiresAt, err := s.tokens.Generate(user)
	if err != nil {
		log.WithError(err).Error("Failed to issue token")
		return nil, apperror.NewInternal("could not log in", err)
	}

	log.WithField("user_id", user.ID).Info("User logged in successfully")
	return &models.LoginResult{Token: token, ExpiresAt: expiresAt, User: user}, nil
}

// VerifyToken возвращает владельца действительного токена
func (s *authService) VerifyToken(token string) (models.Identity, error) {
	if token == "" {
		return models.Identity{}, apperror.NewUnauthorized("token required")
	}
	identity, err := s.tokens.Verify(token)
	if err != nil {
		s.logger.WithError(err).Debug("Token rejected")
		return models.Identity{}, apperror.NewUnauthorized("invalid or expired token")
	}
	return identity, nil
}
