package service

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"proplist/internal/auth"
	apperrors "proplist/internal/errors"
	"proplist/internal/mail"
	"proplist/internal/model"
	"proplist/internal/repository"
)

const bcryptCost = 10

// RegisterInput carries the fields needed to create a user.
type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Number    string
	Roles     []model.Role
	StaffRole model.StaffRole
}

// AuthService handles registration, login and the password-reset flow.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (string, error)
	Login(ctx context.Context, email, password string, role model.Role, staffRole model.StaffRole) (string, error)
	RequestPasswordReset(ctx context.Context, email string) error
	VerifyOTP(ctx context.Context, email, code string) error
	ChangePassword(ctx context.Context, email, newPassword string) error
}

type authService struct {
	users  repository.UserRepository
	otps   repository.OTPRepository
	jwt    *auth.JWTService
	mailer mail.Mailer
}

// NewAuthService creates a new authentication service.
func NewAuthService(users repository.UserRepository, otps repository.OTPRepository, jwt *auth.JWTService, mailer mail.Mailer) AuthService {
	return &authService{
		users:  users,
		otps:   otps,
		jwt:    jwt,
		mailer: mailer,
	}
}

// Register creates a user with a hashed password and returns an issued token.
// Registrations without an explicit role default to Tenant. The staff sub-role
// is kept only for users actually holding the Staff role.
func (s *authService) Register(ctx context.Context, input RegisterInput) (string, error) {
	roles := model.RoleList(input.Roles)
	if len(roles) == 0 {
		roles = model.RoleList{model.RoleTenant}
	}
	for _, r := range roles {
		if !r.Valid() {
			return "", fmt.Errorf("%w: %s", apperrors.ErrInvalidRole, r)
		}
	}

	staffRole := input.StaffRole
	if !roles.Contains(model.RoleStaff) {
		staffRole = ""
	} else if staffRole != "" && !staffRole.Valid() {
		return "", fmt.Errorf("%w: %s", apperrors.ErrInvalidStaffRole, staffRole)
	}

	existing, err := s.users.FindByEmail(ctx, input.Email)
	if err == nil && existing != nil {
		return "", apperrors.ErrEmailTaken
	}
	if err != nil && err != gorm.ErrRecordNotFound {
		return "", fmt.Errorf("check user existence: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		PasswordHash: string(hashed),
		Number:       input.Number,
		Roles:        roles,
		StaffRole:    staffRole,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return "", fmt.Errorf("create user: %w", err)
	}

	return s.jwt.Generate(user)
}

// Login authenticates a user for a declared role. A multi-role user must state
// which role they are logging in as; Staff logins may additionally declare a
// sub-role, which then has to match the stored one.
func (s *authService) Login(ctx context.Context, email, password string, role model.Role, staffRole model.StaffRole) (string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", apperrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", apperrors.ErrInvalidCredentials
	}

	if !user.Roles.Contains(role) {
		return "", apperrors.ErrUnauthorizedRole
	}

	if role == model.RoleStaff && staffRole != "" && user.StaffRole != staffRole {
		return "", apperrors.ErrUnauthorizedStaffRole
	}

	return s.jwt.Generate(user)
}

// RequestPasswordReset generates a reset code, persists it and mails it to the
// user. Outstanding codes for the same email are left untouched.
func (s *authService) RequestPasswordReset(ctx context.Context, email string) error {
	if _, err := s.users.FindByEmail(ctx, email); err != nil {
		return apperrors.ErrUserNotFound
	}

	code, expiresAt, err := auth.GenerateOTP()
	if err != nil {
		return err
	}

	otp := &model.OTP{
		Email:     email,
		Code:      code,
		ExpiresAt: expiresAt,
	}
	if err := s.otps.Create(ctx, otp); err != nil {
		return fmt.Errorf("store otp: %w", err)
	}

	if err := s.mailer.SendOTP(email, code); err != nil {
		return fmt.Errorf("send otp: %w", err)
	}
	return nil
}

// VerifyOTP marks a matching, unexpired code as verified.
func (s *authService) VerifyOTP(ctx context.Context, email, code string) error {
	otp, err := s.otps.FindByEmailAndCode(ctx, email, code)
	if err != nil {
		return apperrors.ErrInvalidOrExpiredOTP
	}
	if otp.ExpiresAt.Before(time.Now()) {
		return apperrors.ErrInvalidOrExpiredOTP
	}

	otp.Verified = true
	if err := s.otps.Update(ctx, otp); err != nil {
		return fmt.Errorf("mark otp verified: %w", err)
	}
	return nil
}

// ChangePassword re-hashes the password once a verified code exists, then
// purges every code for the email. This is the single point of OTP
// invalidation.
func (s *authService) ChangePassword(ctx context.Context, email, newPassword string) error {
	if _, err := s.otps.FindVerifiedByEmail(ctx, email); err != nil {
		return apperrors.ErrOTPNotVerified
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return apperrors.ErrUserNotFound
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	user.PasswordHash = string(hashed)
	if err := s.users.Update(ctx, user); err != nil {
		return fmt.Errorf("update password: %w", err)
	}

	if err := s.otps.DeleteByEmail(ctx, email); err != nil {
		return fmt.Errorf("purge otps: %w", err)
	}
	return nil
}
