package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sara/shopease/internal/database/models"
	"gorm.io/gorm"
)

var (
	ErrNotFound       = errors.New("user not found")
	ErrDuplicateEmail = errors.New("email already in use")
	ErrTokenNotFound  = errors.New("token not found")
)

// Users is the single writer of user records. Every lookup is keyed by a
// unique indexed column (email, id, verification_token, reset_password_token).
type Users struct {
	db *gorm.DB
}

func NewUsers(db *gorm.DB) *Users {
	return &Users{db: db}
}

func (s *Users) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *Users) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// Create inserts a new user. The unique index on email is the final arbiter
// for duplicates, regardless of any earlier existence check.
func (s *Users) Create(ctx context.Context, user *models.User) error {
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateEmail
		}
		return err
	}
	return nil
}

func (s *Users) Save(ctx context.Context, user *models.User) error {
	if err := s.db.WithContext(ctx).Save(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateEmail
		}
		return err
	}
	return nil
}

func (s *Users) EmailExists(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.User{}).
		Where("email = ?", email).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *Users) AdminExists(ctx context.Context) (bool, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.User{}).
		Where("role = ?", models.RoleAdmin).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *Users) ListByRole(ctx context.Context, role string) ([]models.User, error) {
	var users []models.User
	if err := s.db.WithContext(ctx).
		Where("role = ?", role).
		Order("created_at DESC").
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// ConsumeVerificationToken marks the matching user verified and clears the
// token in a single UPDATE, so two concurrent consumers cannot both succeed.
func (s *Users) ConsumeVerificationToken(ctx context.Context, token string) (*models.User, error) {
	if token == "" {
		return nil, ErrTokenNotFound
	}

	var user models.User
	if err := s.db.WithContext(ctx).Where("verification_token = ?", token).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTokenNotFound
		}
		return nil, err
	}

	// The WHERE clause re-checks the token so a concurrent consumer that got
	// there first leaves this update with zero rows.
	res := s.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ? AND verification_token = ?", user.ID, token).
		Updates(map[string]interface{}{
			"is_verified":        true,
			"verification_token": nil,
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrTokenNotFound
	}

	user.IsVerified = true
	user.VerificationToken = nil
	return &user, nil
}

// SetResetToken stores a pending reset token and its expiry for the user.
func (s *Users) SetResetToken(ctx context.Context, userID uuid.UUID, token string, expires time.Time) error {
	return s.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"reset_password_token":   token,
			"reset_password_expires": expires,
		}).Error
}

// ConsumeResetToken swaps in the new password hash and clears both reset
// fields in a single UPDATE guarded by the expiry, preventing replay and
// post-expiry use.
func (s *Users) ConsumeResetToken(ctx context.Context, token, newHash string, now time.Time) (*models.User, error) {
	if token == "" {
		return nil, ErrTokenNotFound
	}

	var user models.User
	if err := s.db.WithContext(ctx).
		Where("reset_password_token = ? AND reset_password_expires > ?", token, now).
		First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTokenNotFound
		}
		return nil, err
	}

	res := s.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ? AND reset_password_token = ? AND reset_password_expires > ?", user.ID, token, now).
		Updates(map[string]interface{}{
			"password_hash":          newHash,
			"reset_password_token":   nil,
			"reset_password_expires": nil,
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrTokenNotFound
	}

	user.PasswordHash = newHash
	user.ResetPasswordToken = nil
	user.ResetPasswordExpires = nil
	return &user, nil
}
