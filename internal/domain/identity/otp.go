package identity

import (
	"crypto/rand"
	"math/big"
	"time"

	"github.com/rezillion/backend/internal/domain/shared"
)

// OTPVerification holds a single-use signup verification code.
// There is at most one live code per email: requesting a new code
// overwrites the previous one. Codes are matched exactly and carry no
// expiry; timestamps exist for operational visibility only.
type OTPVerification struct {
	Email     string `gorm:"primaryKey;type:varchar(255)"`
	Code      string `gorm:"column:otp;type:varchar(6);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName returns the table name for GORM
func (OTPVerification) TableName() string {
	return "otp_verification"
}

// NewOTPVerification creates a verification record with a fresh random code
func NewOTPVerification(email string) (*OTPVerification, error) {
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	code, err := GenerateOTPCode()
	if err != nil {
		return nil, err
	}
	return &OTPVerification{Email: email, Code: code}, nil
}

// GenerateOTPCode returns a uniformly random 6-digit code in [100000, 999999]
func GenerateOTPCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", shared.NewDomainError("OTP_GENERATION_ERROR", "Failed to generate verification code")
	}
	return (n.Add(n, big.NewInt(100000))).String(), nil
}

// Matches reports whether the submitted code equals the stored one
func (o *OTPVerification) Matches(code string) bool {
	return o.Code == code
}
