package identity

import "context"

// OTPRepository defines the interface for verification code persistence
type OTPRepository interface {
	// Upsert stores the code for an email, replacing any existing one
	Upsert(ctx context.Context, otp *OTPVerification) error

	// FindByEmailAndCode finds a record matching both email and code exactly
	FindByEmailAndCode(ctx context.Context, email, code string) (*OTPVerification, error)

	// DeleteByEmail removes the record for an email after it is consumed
	DeleteByEmail(ctx context.Context, email string) error
}
