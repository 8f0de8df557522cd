package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/job-board-service/internal/auth"
	"github.com/spec-kit/job-board-service/internal/config"
	"github.com/spec-kit/job-board-service/internal/domain"
	"github.com/spec-kit/job-board-service/internal/events"
	"github.com/spec-kit/job-board-service/internal/repository"
	apperrors "github.com/spec-kit/job-board-service/pkg/util"
)

// UserService coordinates signup, login, and account management flows.
type UserService struct {
	users      repository.UserRepository
	tokenMgr   *auth.TokenManager
	dispatcher events.Dispatcher
	bcryptCost int
}

// UserDependencies bundles collaborators for the user service.
type UserDependencies struct {
	UserRepo   repository.UserRepository
	Dispatcher events.Dispatcher
}

// SignupInput describes the registration payload.
type SignupInput struct {
	FullName string
	Email    string
	Password string
	Role     domain.UserRole
}

// UserUpdateInput describes a partial profile update.
type UserUpdateInput struct {
	FullName *string
	Email    *string
	IsActive *bool
}

// NewUserService builds the service.
func NewUserService(cfg config.Config, deps UserDependencies) *UserService {
	return &UserService{
		users:      deps.UserRepo,
		tokenMgr:   auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes, cfg.Auth.VerificationTokenTTLMinutes),
		dispatcher: deps.Dispatcher,
		bcryptCost: cfg.Auth.BcryptCost,
	}
}

// Signup creates a new account and issues an email verification token.
func (s *UserService) Signup(ctx context.Context, input SignupInput) (*domain.User, string, error) {
	if !input.Role.IsValid() {
		return nil, "", apperrors.NewValidationError("Role must be either applicant or company", nil)
	}
	fullName, err := domain.NormalizeFullName(input.FullName)
	if err != nil {
		return nil, "", apperrors.NewValidationError(err.Error(), nil)
	}
	if len(input.Password) < 8 {
		return nil, "", apperrors.NewValidationError("Password must be at least 8 characters long", nil)
	}

	exists, err := s.users.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, "", err
	}
	if exists {
		return nil, "", apperrors.NewConflict(fmt.Sprintf("User with email %s already exists", input.Email))
	}

	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, "", err
	}

	user := &domain.User{
		FullName:     fullName,
		Email:        input.Email,
		PasswordHash: hash,
		Role:         input.Role,
		IsActive:     true,
		IsVerified:   false,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, "", err
	}

	verificationToken, err := s.tokenMgr.GenerateVerificationToken(user.ID)
	if err != nil {
		return nil, "", err
	}
	s.publishEvent(ctx, events.Event{
		Type:     events.EventUserRegistered,
		EntityID: user.ID,
		Payload: events.UserRegisteredPayload{
			Email:             user.Email,
			Role:              user.Role,
			VerificationToken: verificationToken,
		},
	})
	return user, verificationToken, nil
}

// Login authenticates an account and returns an access token.
func (s *UserService) Login(ctx context.Context, email, password string) (*domain.User, string, time.Time, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", time.Time{}, apperrors.NewAuthenticationError("Invalid email or password")
		}
		return nil, "", time.Time{}, err
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, apperrors.NewAuthenticationError("Invalid email or password")
	}
	if !user.IsVerified {
		return nil, "", time.Time{}, apperrors.NewValidationError("Email not verified. Please verify your email before logging in.", nil)
	}
	if !user.IsActive {
		return nil, "", time.Time{}, apperrors.NewValidationError("User account is not active or email is not verified", nil)
	}

	token, exp, err := s.tokenMgr.GenerateAccessToken(user.ID, user.Role)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return user, token, exp, nil
}

// VerifyEmail marks the account verified when the token is valid. An expired
// token with a good signature triggers a reissue so the caller can retry.
func (s *UserService) VerifyEmail(ctx context.Context, token string) (*domain.User, error) {
	userID, expired, err := s.tokenMgr.ParseVerificationToken(token)
	if err != nil {
		return nil, apperrors.NewValidationError("Invalid verification token", nil)
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("User not found")
		}
		return nil, err
	}

	if expired {
		reissued, genErr := s.tokenMgr.GenerateVerificationToken(user.ID)
		if genErr == nil {
			s.publishEvent(ctx, events.Event{
				Type:     events.EventUserRegistered,
				EntityID: user.ID,
				Payload: events.UserRegisteredPayload{
					Email:             user.Email,
					Role:              user.Role,
					VerificationToken: reissued,
				},
			})
		}
		return nil, apperrors.NewValidationError("Verification token expired. A new verification email has been sent.", nil)
	}

	if user.IsVerified {
		return user, nil
	}
	user.IsVerified = true
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Update applies a partial profile update, guarding email uniqueness.
func (s *UserService) Update(ctx context.Context, userID string, patch UserUpdateInput) (*domain.User, error) {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if patch.FullName != nil {
		fullName, err := domain.NormalizeFullName(*patch.FullName)
		if err != nil {
			return nil, apperrors.NewValidationError(err.Error(), nil)
		}
		user.FullName = fullName
	}
	if patch.Email != nil && *patch.Email != user.Email {
		existing, err := s.users.GetByEmail(ctx, *patch.Email)
		if err != nil && !errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		if existing != nil && existing.ID != userID {
			return nil, apperrors.NewConflict(fmt.Sprintf("Email %s is already taken", *patch.Email))
		}
		user.Email = *patch.Email
	}
	if patch.IsActive != nil {
		user.IsActive = *patch.IsActive
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// ChangePassword verifies the current password before storing a new hash.
func (s *UserService) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return err
	}
	if err := auth.ComparePassword(user.PasswordHash, currentPassword); err != nil {
		return apperrors.NewValidationError("Current password is incorrect", nil)
	}
	if len(newPassword) < 8 {
		return apperrors.NewValidationError("Password must be at least 8 characters long", nil)
	}

	hash, err := auth.HashPassword(newPassword, s.bcryptCost)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	return s.users.Update(ctx, user)
}

// GetByID fetches a single account.
func (s *UserService) GetByID(ctx context.Context, userID string) (*domain.User, error) {
	return s.getUser(ctx, userID)
}

// List returns a page of accounts.
func (s *UserService) List(ctx context.Context, page Page) ([]domain.User, error) {
	limit, offset := page.Normalize()
	users, err := s.users.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []domain.User{}
	}
	return users, nil
}

// Delete removes an account. Owned jobs and applications cascade in the
// persistence layer.
func (s *UserService) Delete(ctx context.Context, userID string) error {
	if err := s.users.Delete(ctx, userID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound(fmt.Sprintf("User with ID %s not found", userID))
		}
		return err
	}
	return nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *UserService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

func (s *UserService) getUser(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound(fmt.Sprintf("User with ID %s not found", userID))
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}
