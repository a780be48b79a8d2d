package model

import "time"

// OTP is a short-lived one-time code authorizing a password reset for an email.
//
// A code becomes usable for a password change only after verification within
// its expiry window. All codes for an email are purged once the password is
// changed; until then multiple outstanding codes may coexist.
type OTP struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Email     string    `json:"email" gorm:"size:255;not null;index"`
	Code      string    `json:"-" gorm:"size:10;not null"`
	ExpiresAt time.Time `json:"expires_at" gorm:"not null"`
	Verified  bool      `json:"verified" gorm:"default:false"`
	CreatedAt time.Time `json:"created_at"`
}
