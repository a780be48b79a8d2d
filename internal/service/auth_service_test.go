package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"proplist/internal/auth"
	apperrors "proplist/internal/errors"
	"proplist/internal/model"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

// MockOTPRepository is a mock implementation of OTPRepository.
type MockOTPRepository struct {
	mock.Mock
}

func (m *MockOTPRepository) Create(ctx context.Context, otp *model.OTP) error {
	args := m.Called(ctx, otp)
	return args.Error(0)
}

func (m *MockOTPRepository) Update(ctx context.Context, otp *model.OTP) error {
	args := m.Called(ctx, otp)
	return args.Error(0)
}

func (m *MockOTPRepository) FindByEmailAndCode(ctx context.Context, email, code string) (*model.OTP, error) {
	args := m.Called(ctx, email, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.OTP), args.Error(1)
}

func (m *MockOTPRepository) FindVerifiedByEmail(ctx context.Context, email string) (*model.OTP, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.OTP), args.Error(1)
}

func (m *MockOTPRepository) DeleteByEmail(ctx context.Context, email string) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

// MockMailer is a mock implementation of mail.Mailer.
type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) SendOTP(to, code string) error {
	args := m.Called(to, code)
	return args.Error(0)
}

func newTestAuthService(users *MockUserRepository, otps *MockOTPRepository, mailer *MockMailer) AuthService {
	return NewAuthService(users, otps, auth.NewJWTService("test-secret"), mailer)
}

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name          string
		input         RegisterInput
		setupMock     func(*MockUserRepository)
		expectedError error
		checkUser     func(*testing.T, *model.User)
	}{
		{
			name: "successful registration with default role",
			input: RegisterInput{
				FirstName: "Jane",
				LastName:  "Doe",
				Email:     "jane@example.com",
				Password:  "password123",
				Number:    "0821234567",
			},
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "jane@example.com").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
			checkUser: func(t *testing.T, user *model.User) {
				assert.Equal(t, model.RoleList{model.RoleTenant}, user.Roles)
				assert.NotEqual(t, "password123", user.PasswordHash)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("password123")))
			},
		},
		{
			name: "staff role keeps sub-role",
			input: RegisterInput{
				FirstName: "Sam",
				LastName:  "Smith",
				Email:     "sam@example.com",
				Password:  "password123",
				Number:    "0837654321",
				Roles:     []model.Role{model.RoleStaff},
				StaffRole: model.StaffRoleEditor,
			},
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "sam@example.com").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
			checkUser: func(t *testing.T, user *model.User) {
				assert.Equal(t, model.StaffRoleEditor, user.StaffRole)
			},
		},
		{
			name: "non-staff registration drops sub-role",
			input: RegisterInput{
				FirstName: "Lee",
				LastName:  "Jones",
				Email:     "lee@example.com",
				Password:  "password123",
				Number:    "0831112222",
				Roles:     []model.Role{model.RoleLandlord},
				StaffRole: model.StaffRoleEditor,
			},
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "lee@example.com").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
			checkUser: func(t *testing.T, user *model.User) {
				assert.Empty(t, user.StaffRole)
			},
		},
		{
			name: "email already taken",
			input: RegisterInput{
				FirstName: "Jane",
				LastName:  "Doe",
				Email:     "taken@example.com",
				Password:  "password123",
				Number:    "0821234567",
			},
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "taken@example.com").Return(&model.User{Email: "taken@example.com"}, nil)
			},
			expectedError: apperrors.ErrEmailTaken,
		},
		{
			name: "unknown role rejected",
			input: RegisterInput{
				FirstName: "Jane",
				LastName:  "Doe",
				Email:     "jane@example.com",
				Password:  "password123",
				Number:    "0821234567",
				Roles:     []model.Role{"Wizard"},
			},
			setupMock:     func(m *MockUserRepository) {},
			expectedError: apperrors.ErrInvalidRole,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUsers := new(MockUserRepository)
			tt.setupMock(mockUsers)

			var created *model.User
			for _, call := range mockUsers.ExpectedCalls {
				if call.Method == "Create" {
					call.Run(func(args mock.Arguments) {
						created = args.Get(1).(*model.User)
					})
				}
			}

			svc := newTestAuthService(mockUsers, new(MockOTPRepository), new(MockMailer))
			token, err := svc.Register(context.Background(), tt.input)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, token)
				if tt.checkUser != nil {
					assert.NotNil(t, created)
					tt.checkUser(t, created)
				}
			}

			mockUsers.AssertExpectations(t)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), 10)
	staffUser := &model.User{
		ID:           uuid.New(),
		Email:        "staff@example.com",
		PasswordHash: string(hashed),
		Roles:        model.RoleList{model.RoleStaff},
		StaffRole:    model.StaffRoleViewer,
	}
	tenantUser := &model.User{
		ID:           uuid.New(),
		Email:        "tenant@example.com",
		PasswordHash: string(hashed),
		Roles:        model.RoleList{model.RoleTenant, model.RoleLandlord},
	}

	tests := []struct {
		name          string
		email         string
		password      string
		role          model.Role
		staffRole     model.StaffRole
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name:     "successful login with held role",
			email:    "tenant@example.com",
			password: "password123",
			role:     model.RoleLandlord,
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "tenant@example.com").Return(tenantUser, nil)
			},
		},
		{
			name:     "role not held fails even with correct password",
			email:    "tenant@example.com",
			password: "password123",
			role:     model.RoleAgent,
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "tenant@example.com").Return(tenantUser, nil)
			},
			expectedError: apperrors.ErrUnauthorizedRole,
		},
		{
			name:      "staff login with wrong sub-role",
			email:     "staff@example.com",
			password:  "password123",
			role:      model.RoleStaff,
			staffRole: model.StaffRoleSuperUser,
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "staff@example.com").Return(staffUser, nil)
			},
			expectedError: apperrors.ErrUnauthorizedStaffRole,
		},
		{
			name:     "staff login with omitted sub-role succeeds",
			email:    "staff@example.com",
			password: "password123",
			role:     model.RoleStaff,
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "staff@example.com").Return(staffUser, nil)
			},
		},
		{
			name:     "wrong password",
			email:    "tenant@example.com",
			password: "nope",
			role:     model.RoleTenant,
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "tenant@example.com").Return(tenantUser, nil)
			},
			expectedError: apperrors.ErrInvalidCredentials,
		},
		{
			name:     "unknown email",
			email:    "ghost@example.com",
			password: "password123",
			role:     model.RoleTenant,
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "ghost@example.com").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUsers := new(MockUserRepository)
			tt.setupMock(mockUsers)

			svc := newTestAuthService(mockUsers, new(MockOTPRepository), new(MockMailer))
			token, err := svc.Login(context.Background(), tt.email, tt.password, tt.role, tt.staffRole)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, token)
			}

			mockUsers.AssertExpectations(t)
		})
	}
}

func TestAuthService_RequestPasswordReset(t *testing.T) {
	t.Run("generates, stores and mails a six digit code", func(t *testing.T) {
		mockUsers := new(MockUserRepository)
		mockOTPs := new(MockOTPRepository)
		mockMailer := new(MockMailer)

		mockUsers.On("FindByEmail", mock.Anything, "jane@example.com").Return(&model.User{Email: "jane@example.com"}, nil)

		var stored *model.OTP
		mockOTPs.On("Create", mock.Anything, mock.AnythingOfType("*model.OTP")).Run(func(args mock.Arguments) {
			stored = args.Get(1).(*model.OTP)
		}).Return(nil)
		mockMailer.On("SendOTP", "jane@example.com", mock.AnythingOfType("string")).Return(nil)

		svc := newTestAuthService(mockUsers, mockOTPs, mockMailer)
		err := svc.RequestPasswordReset(context.Background(), "jane@example.com")

		assert.NoError(t, err)
		assert.NotNil(t, stored)
		assert.Len(t, stored.Code, 6)
		assert.WithinDuration(t, time.Now().Add(auth.OTPExpiry), stored.ExpiresAt, 5*time.Second)
		assert.False(t, stored.Verified)

		mockMailer.AssertCalled(t, "SendOTP", "jane@example.com", stored.Code)
		mockOTPs.AssertExpectations(t)
	})

	t.Run("unknown email", func(t *testing.T) {
		mockUsers := new(MockUserRepository)
		mockUsers.On("FindByEmail", mock.Anything, "ghost@example.com").Return(nil, gorm.ErrRecordNotFound)

		svc := newTestAuthService(mockUsers, new(MockOTPRepository), new(MockMailer))
		err := svc.RequestPasswordReset(context.Background(), "ghost@example.com")

		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	})
}

func TestAuthService_VerifyOTP(t *testing.T) {
	tests := []struct {
		name          string
		setupMock     func(*MockOTPRepository)
		expectedError error
	}{
		{
			name: "matching fresh code gets verified",
			setupMock: func(m *MockOTPRepository) {
				m.On("FindByEmailAndCode", mock.Anything, "jane@example.com", "123456").Return(&model.OTP{
					Email:     "jane@example.com",
					Code:      "123456",
					ExpiresAt: time.Now().Add(5 * time.Minute),
				}, nil)
				m.On("Update", mock.Anything, mock.MatchedBy(func(otp *model.OTP) bool {
					return otp.Verified
				})).Return(nil)
			},
		},
		{
			name: "wrong code",
			setupMock: func(m *MockOTPRepository) {
				m.On("FindByEmailAndCode", mock.Anything, "jane@example.com", "123456").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrInvalidOrExpiredOTP,
		},
		{
			name: "expired code",
			setupMock: func(m *MockOTPRepository) {
				m.On("FindByEmailAndCode", mock.Anything, "jane@example.com", "123456").Return(&model.OTP{
					Email:     "jane@example.com",
					Code:      "123456",
					ExpiresAt: time.Now().Add(-time.Minute),
				}, nil)
			},
			expectedError: apperrors.ErrInvalidOrExpiredOTP,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockOTPs := new(MockOTPRepository)
			tt.setupMock(mockOTPs)

			svc := newTestAuthService(new(MockUserRepository), mockOTPs, new(MockMailer))
			err := svc.VerifyOTP(context.Background(), "jane@example.com", "123456")

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				mockOTPs.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
			} else {
				assert.NoError(t, err)
			}

			mockOTPs.AssertExpectations(t)
		})
	}
}

func TestAuthService_ChangePassword(t *testing.T) {
	t.Run("succeeds after verification and purges all codes", func(t *testing.T) {
		hashed, _ := bcrypt.GenerateFromPassword([]byte("oldpassword"), 10)
		user := &model.User{ID: uuid.New(), Email: "jane@example.com", PasswordHash: string(hashed)}

		mockUsers := new(MockUserRepository)
		mockOTPs := new(MockOTPRepository)

		mockOTPs.On("FindVerifiedByEmail", mock.Anything, "jane@example.com").Return(&model.OTP{
			Email:    "jane@example.com",
			Verified: true,
		}, nil)
		mockUsers.On("FindByEmail", mock.Anything, "jane@example.com").Return(user, nil)
		mockUsers.On("Update", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
			return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("newpassword")) == nil
		})).Return(nil)
		mockOTPs.On("DeleteByEmail", mock.Anything, "jane@example.com").Return(nil)

		svc := newTestAuthService(mockUsers, mockOTPs, new(MockMailer))
		err := svc.ChangePassword(context.Background(), "jane@example.com", "newpassword")

		assert.NoError(t, err)
		mockUsers.AssertExpectations(t)
		mockOTPs.AssertExpectations(t)
	})

	t.Run("fails without a verified code", func(t *testing.T) {
		mockOTPs := new(MockOTPRepository)
		mockOTPs.On("FindVerifiedByEmail", mock.Anything, "jane@example.com").Return(nil, gorm.ErrRecordNotFound)

		mockUsers := new(MockUserRepository)

		svc := newTestAuthService(mockUsers, mockOTPs, new(MockMailer))
		err := svc.ChangePassword(context.Background(), "jane@example.com", "newpassword")

		assert.ErrorIs(t, err, apperrors.ErrOTPNotVerified)
		mockUsers.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}
