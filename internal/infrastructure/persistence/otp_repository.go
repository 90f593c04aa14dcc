package persistence

import (
	"context"
	"errors"

	"github.com/rezillion/backend/internal/domain/identity"
	"github.com/rezillion/backend/internal/domain/shared"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOTPRepository implements OTPRepository using GORM
type GormOTPRepository struct {
	db *gorm.DB
}

// NewGormOTPRepository creates a new GormOTPRepository
func NewGormOTPRepository(db *gorm.DB) *GormOTPRepository {
	return &GormOTPRepository{db: db}
}

// Upsert stores a verification code, replacing any previous code for the email
func (r *GormOTPRepository) Upsert(ctx context.Context, otp *identity.OTPVerification) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "email"}},
			DoUpdates: clause.AssignmentColumns([]string{"otp", "updated_at"}),
		}).
		Create(otp).Error
}

// FindByEmailAndCode finds a pending verification matching both email and code
func (r *GormOTPRepository) FindByEmailAndCode(ctx context.Context, email, code string) (*identity.OTPVerification, error) {
	var otp identity.OTPVerification
	if err := r.db.WithContext(ctx).
		Where("email = ? AND otp = ?", email, code).
		First(&otp).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &otp, nil
}

// DeleteByEmail removes the pending verification for an email, if any
func (r *GormOTPRepository) DeleteByEmail(ctx context.Context, email string) error {
	return r.db.WithContext(ctx).
		Delete(&identity.OTPVerification{}, "email = ?", email).Error
}

// Ensure GormOTPRepository implements OTPRepository
var _ identity.OTPRepository = (*GormOTPRepository)(nil)
