package models

import "time"

// User roles
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	Base
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
	Name         string `json:"name"`
	Role         string `gorm:"default:'user'" json:"role"` // user, admin
	IsVerified   bool   `gorm:"default:false" json:"is_verified"`

	// One-time tokens. Nullable so the unique indexes only bite while a
	// token is actually outstanding; cleared in the same update that
	// consumes them.
	VerificationToken    *string    `gorm:"uniqueIndex" json:"-"`
	ResetPasswordToken   *string    `gorm:"uniqueIndex" json:"-"`
	ResetPasswordExpires *time.Time `json:"-"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
