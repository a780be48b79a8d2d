package repository

import (
	"context"

	"gorm.io/gorm"

	"proplist/internal/model"
)

// OTPRepository defines persistence for password-reset codes.
type OTPRepository interface {
	Create(ctx context.Context, otp *model.OTP) error
	Update(ctx context.Context, otp *model.OTP) error
	FindByEmailAndCode(ctx context.Context, email, code string) (*model.OTP, error)
	FindVerifiedByEmail(ctx context.Context, email string) (*model.OTP, error)
	DeleteByEmail(ctx context.Context, email string) error
}

type otpRepository struct {
	db *gorm.DB
}

// NewOTPRepository builds a GORM-backed repository.
func NewOTPRepository(db *gorm.DB) OTPRepository {
	return &otpRepository{db: db}
}

func (r *otpRepository) Create(ctx context.Context, otp *model.OTP) error {
	return r.db.WithContext(ctx).Create(otp).Error
}

func (r *otpRepository) Update(ctx context.Context, otp *model.OTP) error {
	return r.db.WithContext(ctx).Save(otp).Error
}

func (r *otpRepository) FindByEmailAndCode(ctx context.Context, email, code string) (*model.OTP, error) {
	var otp model.OTP
	if err := r.db.WithContext(ctx).
		Where("email = ? AND code = ?", email, code).
		First(&otp).Error; err != nil {
		return nil, err
	}
	return &otp, nil
}

func (r *otpRepository) FindVerifiedByEmail(ctx context.Context, email string) (*model.OTP, error) {
	var otp model.OTP
	if err := r.db.WithContext(ctx).
		Where("email = ? AND verified = ?", email, true).
		First(&otp).Error; err != nil {
		return nil, err
	}
	return &otp, nil
}

func (r *otpRepository) DeleteByEmail(ctx context.Context, email string) error {
	return r.db.WithContext(ctx).Where("email = ?", email).Delete(&model.OTP{}).Error
}
