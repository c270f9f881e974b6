package models

import "time"

// Roles an account can hold.
const (
	RolePartner    = "Partner"
	RoleUser       = "User"
	RoleSuperAdmin = "SuperAdmin"
)

// User represents a customer account.
type User struct {
	ID                string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	FullName          string    `json:"fullName" gorm:"type:varchar(100);not null"`
	Email             string    `json:"email" gorm:"uniqueIndex;type:varchar(255);not null"`
	Password          string    `json:"-" gorm:"type:varchar(255);not null"` // bcrypt hash
	Role              string    `json:"role" gorm:"type:varchar(20)"`
	IsVerified        bool      `json:"isVerified" gorm:"default:false"`
	VerifyOtp         string    `json:"-" gorm:"type:varchar(10)"`
	VerifyOtpExpireAt int64     `json:"-"`
	ResetOtp          string    `json:"-" gorm:"type:varchar(10)"`
	ResetOtpExpireAt  int64     `json:"-"`
	Avatar            string    `json:"avatar" gorm:"type:varchar(512)"` // relative storage path
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// Partner represents a restaurant owner account.
type Partner struct {
	ID                string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	FullName          string    `json:"fullName" gorm:"type:varchar(100);not null"`
	Email             string    `json:"email" gorm:"uniqueIndex;type:varchar(255);not null"`
	Password          string    `json:"-" gorm:"type:varchar(255);not null"`
	Contact           string    `json:"contact" gorm:"type:varchar(32)"`
	Role              string    `json:"role" gorm:"type:varchar(20)"`
	IsVerified        bool      `json:"isVerified" gorm:"default:false"`
	VerifyOtp         string    `json:"-" gorm:"type:varchar(10)"`
	VerifyOtpExpireAt int64     `json:"-"`
	ResetOtp          string    `json:"-" gorm:"type:varchar(10)"`
	ResetOtpExpireAt  int64     `json:"-"`
	IsApproved        bool      `json:"isApproved" gorm:"default:false"`
	Avatar            string    `json:"avatar" gorm:"type:varchar(512)"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}
