package identity

import (
	"context"
	"errors"
	"fmt"

	"github.com/rezillion/backend/internal/domain/identity"
	"github.com/rezillion/backend/internal/domain/shared"
	"github.com/rezillion/backend/internal/infrastructure/mail"
	"go.uber.org/zap"
)

// AuthService handles supplier account operations
type AuthService struct {
	supplierRepo identity.SupplierRepository
	otpRepo      identity.OTPRepository
	sender       mail.Sender
	logger       *zap.Logger
}

// NewAuthService creates a new authentication service
func NewAuthService(
	supplierRepo identity.SupplierRepository,
	otpRepo identity.OTPRepository,
	sender mail.Sender,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		supplierRepo: supplierRepo,
		otpRepo:      otpRepo,
		sender:       sender,
		logger:       logger,
	}
}

// RequestOTP generates a fresh verification code for the email, stores it
// (replacing any previous code), and mails it. Any failure along the way is
// reported as a single dispatch error.
func (s *AuthService) RequestOTP(ctx context.Context, input RequestOTPInput) error {
	if input.Email == "" {
		return shared.NewDomainError("DISPATCH_FAILED", "Failed to send OTP")
	}

	otp, err := identity.NewOTPVerification(input.Email)
	if err != nil {
		s.logger.Error("Failed to create verification code", zap.Error(err))
		return shared.NewDomainError("DISPATCH_FAILED", "Failed to send OTP")
	}

	if err := s.otpRepo.Upsert(ctx, otp); err != nil {
		s.logger.Error("Failed to store verification code", zap.Error(err))
		return shared.NewDomainError("DISPATCH_FAILED", "Failed to send OTP")
	}

	msg := mail.Message{
		To:      input.Email,
		Subject: "Your Verification Code",
		HTML:    fmt.Sprintf("<h1>%s</h1><p>Enter this code to verify your account.</p>", otp.Code),
	}
	if err := s.sender.Send(msg); err != nil {
		s.logger.Error("Failed to send verification email", zap.Error(err))
		return shared.NewDomainError("DISPATCH_FAILED", "Failed to send OTP")
	}

	s.logger.Info("Verification code sent", zap.String("email", input.Email))
	return nil
}

// Signup registers a new supplier account after verifying the emailed code.
// The pending code is consumed on success so it cannot be replayed.
func (s *AuthService) Signup(ctx context.Context, input SignupInput) (*SupplierInfo, error) {
	if input.CompanyName == "" || input.Email == "" || input.Password == "" || input.OTP == "" {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Missing required fields")
	}

	// Emails are compared exactly, byte for byte. The code requested for
	// one spelling of an address only verifies that same spelling.
	if _, err := s.otpRepo.FindByEmailAndCode(ctx, input.Email, input.OTP); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			s.logger.Warn("Signup with invalid verification code", zap.String("email", input.Email))
			return nil, shared.NewDomainError("INVALID_OTP", "Invalid or expired OTP")
		}
		s.logger.Error("Failed to look up verification code", zap.Error(err))
		return nil, err
	}

	exists, err := s.supplierRepo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		s.logger.Error("Failed to check for existing supplier", zap.Error(err))
		return nil, err
	}
	if exists {
		s.logger.Warn("Signup with already registered email", zap.String("email", input.Email))
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Email already registered")
	}

	supplier, err := identity.NewSupplier(input.CompanyName, input.Email, input.Password)
	if err != nil {
		return nil, err
	}

	if err := s.supplierRepo.Create(ctx, supplier); err != nil {
		s.logger.Error("Failed to create supplier", zap.Error(err))
		return nil, err
	}

	// The code is single-use. A delete failure here is logged but does not
	// fail the signup: the account already exists.
	if err := s.otpRepo.DeleteByEmail(ctx, input.Email); err != nil {
		s.logger.Error("Failed to delete consumed verification code",
			zap.String("email", input.Email), zap.Error(err))
	}

	s.logger.Info("Supplier registered",
		zap.Int64("supplier_id", supplier.ID),
		zap.String("email", supplier.Email))

	return &SupplierInfo{
		ID:          supplier.ID,
		CompanyName: supplier.CompanyName,
		Email:       supplier.Email,
	}, nil
}

// Login authenticates a supplier by email and password. Unknown email and
// wrong password produce the same error so callers cannot enumerate accounts.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*SupplierInfo, error) {
	if input.Email == "" || input.Password == "" {
		return nil, shared.ErrInvalidCredentials
	}

	supplier, err := s.supplierRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			s.logger.Warn("Login with unknown email", zap.String("email", input.Email))
			return nil, shared.ErrInvalidCredentials
		}
		s.logger.Error("Failed to look up supplier", zap.Error(err))
		return nil, err
	}

	if !supplier.VerifyPassword(input.Password) {
		s.logger.Warn("Login with wrong password", zap.String("email", input.Email))
		return nil, shared.ErrInvalidCredentials
	}

	s.logger.Info("Supplier logged in",
		zap.Int64("supplier_id", supplier.ID),
		zap.String("email", supplier.Email))

	return &SupplierInfo{
		ID:          supplier.ID,
		CompanyName: supplier.CompanyName,
		Email:       supplier.Email,
	}, nil
}
