package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sara/shopease/internal/database/models"
	"github.com/sara/shopease/internal/mailer"
	"github.com/sara/shopease/internal/store"
	"github.com/sara/shopease/pkg/config"
)

var (
	ErrUserNotFound          = errors.New("user not found")
	ErrEmailTaken            = errors.New("email already in use")
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrNotVerified           = errors.New("email not verified")
	ErrInvalidVerifyToken    = errors.New("invalid verification token")
	ErrInvalidOrExpiredToken = errors.New("invalid or expired token")
)

// EmailSender delivers a notification email. Implementations are best-effort;
// the service never rolls back a committed state change because a send failed.
type EmailSender interface {
	Send(ctx context.Context, to, subject, html string) error
}

// Service orchestrates the credential lifecycle: register, verify, login,
// forgot-password, reset-password. It is the only writer of password hashes
// and token fields.
type Service struct {
	users     *store.Users
	jwt       *JWTService
	email     EmailSender
	policy    config.AuthConfig
	clientURL string
	logger    *slog.Logger
}

func NewService(users *store.Users, jwt *JWTService, email EmailSender, policy config.AuthConfig, clientURL string, logger *slog.Logger) *Service {
	return &Service{
		users:     users,
		jwt:       jwt,
		email:     email,
		policy:    policy,
		clientURL: clientURL,
		logger:    logger,
	}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

type LoginInput struct {
	Email    string
	Password string
}

type UpdateProfileInput struct {
	Name     string
	Email    string
	Password string
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *Service) Register(ctx context.Context, input RegisterInput) (*AuthResponse, error) {
	email := normalizeEmail(input.Email)

	hash, err := HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &models.User{
		Name:         strings.TrimSpace(input.Name),
		Email:        email,
		PasswordHash: hash,
		Role:         models.RoleUser,
	}

	var verifyToken string
	if s.policy.RequireVerification {
		verifyToken, err = NewOneTimeToken()
		if err != nil {
			return nil, err
		}
		user.VerificationToken = &verifyToken
	} else {
		user.IsVerified = true
	}

	// The unique index on email decides duplicates; no pre-check needed.
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, store.ErrDuplicateEmail) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	if s.policy.RequireVerification {
		verifyURL := fmt.Sprintf("%s/verify/%s", s.clientURL, verifyToken)
		s.notify(ctx, user.Email, mailer.SubjectVerify, mailer.VerifyEmail(user.Name, verifyURL))
	} else {
		s.notify(ctx, user.Email, mailer.SubjectWelcome, mailer.Welcome(user.Name))
	}

	token, err := s.jwt.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, err
	}

	return &AuthResponse{Token: token, User: user}, nil
}

// VerifyEmail consumes a verification token. The token is cleared in the same
// update that flips the verified flag, so it can succeed at most once.
func (s *Service) VerifyEmail(ctx context.Context, token string) (*models.User, error) {
	user, err := s.users.ConsumeVerificationToken(ctx, token)
	if err != nil {
		if errors.Is(err, store.ErrTokenNotFound) {
			return nil, ErrInvalidVerifyToken
		}
		return nil, err
	}
	return user, nil
}

// Login authenticates with email and password. Unknown email and wrong
// password collapse into the same error so callers cannot probe for accounts.
func (s *Service) Login(ctx context.Context, input LoginInput) (*AuthResponse, error) {
	user, err := s.users.FindByEmail(ctx, normalizeEmail(input.Email))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if s.policy.RequireVerification && !user.IsVerified {
		return nil, ErrNotVerified
	}

	if !CheckPassword(input.Password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, err
	}

	s.notify(ctx, user.Email, mailer.SubjectLoginNotice, mailer.LoginNotification(user.Name))

	return &AuthResponse{Token: token, User: user}, nil
}

// AdminLogin is Login with an additional role requirement. The password is
// verified before the role so a non-admin account fails exactly like a wrong
// password: same error, same status.
func (s *Service) AdminLogin(ctx context.Context, input LoginInput) (*AuthResponse, error) {
	user, err := s.users.FindByEmail(ctx, normalizeEmail(input.Email))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !CheckPassword(input.Password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	if !user.IsAdmin() {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, err
	}

	return &AuthResponse{Token: token, User: user}, nil
}

// ForgotPassword issues a reset token when the email exists and does nothing
// otherwise. Callers always report the same generic message either way.
func (s *Service) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.users.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil
		}
		return err
	}

	token, err := NewOneTimeToken()
	if err != nil {
		return err
	}

	expires := time.Now().Add(s.policy.ResetTokenTTL())
	if err := s.users.SetResetToken(ctx, user.ID, token, expires); err != nil {
		return err
	}

	resetURL := fmt.Sprintf("%s/reset-password/%s", s.clientURL, token)
	s.notify(ctx, user.Email, mailer.SubjectReset, mailer.ResetPassword(user.Name, resetURL))
	return nil
}

// ResetPassword consumes a pending reset token and installs the new password
// hash. Token, expiry and hash all change in one atomic update.
func (s *Service) ResetPassword(ctx context.Context, token, newPassword string) error {
	hash, err := HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}

	user, err := s.users.ConsumeResetToken(ctx, token, hash, time.Now())
	if err != nil {
		if errors.Is(err, store.ErrTokenNotFound) {
			return ErrInvalidOrExpiredToken
		}
		return err
	}

	s.notify(ctx, user.Email, mailer.SubjectResetSuccess, mailer.ResetSuccess(user.Name))
	return nil
}

func (s *Service) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// UpdateProfile changes name, email and password. Role is deliberately not
// part of the input: elevation goes through the admin bootstrap only.
func (s *Service) UpdateProfile(ctx context.Context, id uuid.UUID, input UpdateProfileInput) (*models.User, error) {
	user, err := s.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		user.Name = strings.TrimSpace(input.Name)
	}
	if input.Email != "" {
		user.Email = normalizeEmail(input.Email)
	}
	if input.Password != "" {
		hash, err := HashPassword(input.Password)
		if err != nil {
			return nil, fmt.Errorf("hashing password: %w", err)
		}
		user.PasswordHash = hash
	}

	if err := s.users.Save(ctx, user); err != nil {
		if errors.Is(err, store.ErrDuplicateEmail) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return user, nil
}

// ListEmployees returns all non-admin accounts.
func (s *Service) ListEmployees(ctx context.Context) ([]models.User, error) {
	return s.users.ListByRole(ctx, models.RoleUser)
}

// notify sends an email without letting delivery problems surface to the
// caller. The credential mutation has already committed at this point.
func (s *Service) notify(ctx context.Context, to, subject, html string) {
	if s.email == nil {
		return
	}
	if err := s.email.Send(ctx, to, subject, html); err != nil {
		s.logger.Warn("notification email failed", "to", to, "subject", subject, "error", err)
	}
}
