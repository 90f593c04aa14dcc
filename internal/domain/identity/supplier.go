package identity

import (
	"strings"
	"time"

	"github.com/rezillion/backend/internal/domain/shared"
	"golang.org/x/crypto/bcrypt"
)

// Password cost for bcrypt
const bcryptCost = 10

// Supplier represents a registered supplier account.
// It is the aggregate root for authentication and account operations.
type Supplier struct {
	shared.BaseEntity
	CompanyName  string `gorm:"type:varchar(200);not null"`
	Email        string `gorm:"type:varchar(255);not null;uniqueIndex"`
	PasswordHash string `gorm:"type:varchar(100);not null"`
}

// TableName returns the table name for GORM
func (Supplier) TableName() string {
	return "suppliers"
}

// NewSupplier creates a new supplier account with a hashed password
func NewSupplier(companyName, email, password string) (*Supplier, error) {
	if err := validateCompanyName(companyName); err != nil {
		return nil, err
	}
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if password == "" {
		return nil, shared.NewDomainError("INVALID_PASSWORD", "Password cannot be empty")
	}

	hash, err := hashPassword(password)
	if err != nil {
		return nil, shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}

	return &Supplier{
		CompanyName:  strings.TrimSpace(companyName),
		Email:        email,
		PasswordHash: hash,
	}, nil
}

// VerifyPassword checks the given password against the stored hash
func (s *Supplier) VerifyPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(s.PasswordHash), []byte(password))
	return err == nil
}

// Touch updates the modification timestamp
func (s *Supplier) Touch() {
	s.UpdatedAt = time.Now()
}

// hashPassword hashes a plaintext password with bcrypt
func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// validateCompanyName validates the supplier's company name
func validateCompanyName(name string) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_NAME", "Company name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Company name cannot exceed 200 characters")
	}
	return nil
}

// validateEmail performs a minimal structural check; full format validation
// happens at the request-binding layer.
func validateEmail(email string) error {
	if email == "" {
		return shared.NewDomainError("INVALID_EMAIL", "Email cannot be empty")
	}
	if !strings.Contains(email, "@") || len(email) > 255 {
		return shared.NewDomainError("INVALID_EMAIL", "Email is not valid")
	}
	return nil
}
