package identity

import (
	"context"
	"errors"
	"testing"

	"github.com/rezillion/backend/internal/domain/identity"
	"github.com/rezillion/backend/internal/domain/shared"
	"github.com/rezillion/backend/internal/infrastructure/mail"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockSupplierRepository is a mock implementation of identity.SupplierRepository
type MockSupplierRepository struct {
	mock.Mock
}

func (m *MockSupplierRepository) Create(ctx context.Context, supplier *identity.Supplier) error {
	args := m.Called(ctx, supplier)
	return args.Error(0)
}

func (m *MockSupplierRepository) FindByID(ctx context.Context, id int64) (*identity.Supplier, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.Supplier), args.Error(1)
}

func (m *MockSupplierRepository) FindByEmail(ctx context.Context, email string) (*identity.Supplier, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.Supplier), args.Error(1)
}

func (m *MockSupplierRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

// MockOTPRepository is a mock implementation of identity.OTPRepository
type MockOTPRepository struct {
	mock.Mock
}

func (m *MockOTPRepository) Upsert(ctx context.Context, otp *identity.OTPVerification) error {
	args := m.Called(ctx, otp)
	return args.Error(0)
}

func (m *MockOTPRepository) FindByEmailAndCode(ctx context.Context, email, code string) (*identity.OTPVerification, error) {
	args := m.Called(ctx, email, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.OTPVerification), args.Error(1)
}

func (m *MockOTPRepository) DeleteByEmail(ctx context.Context, email string) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

// MockSender is a mock implementation of mail.Sender
type MockSender struct {
	mock.Mock
}

func (m *MockSender) Send(msg mail.Message) error {
	args := m.Called(msg)
	return args.Error(0)
}

func newTestAuthService() (*AuthService, *MockSupplierRepository, *MockOTPRepository, *MockSender) {
	supplierRepo := new(MockSupplierRepository)
	otpRepo := new(MockOTPRepository)
	sender := new(MockSender)
	service := NewAuthService(supplierRepo, otpRepo, sender, zap.NewNop())
	return service, supplierRepo, otpRepo, sender
}

func TestAuthService_RequestOTP(t *testing.T) {
	ctx := context.Background()

	t.Run("stores code and mails it", func(t *testing.T) {
		service, _, otpRepo, sender := newTestAuthService()

		var stored *identity.OTPVerification
		otpRepo.On("Upsert", ctx, mock.AnythingOfType("*identity.OTPVerification")).
			Run(func(args mock.Arguments) {
				stored = args.Get(1).(*identity.OTPVerification)
			}).Return(nil)
		sender.On("Send", mock.AnythingOfType("mail.Message")).Return(nil)

		err := service.RequestOTP(ctx, RequestOTPInput{Email: "Buyer@Example.COM"})
		require.NoError(t, err)

		// The address is stored exactly as submitted, casing included.
		require.NotNil(t, stored)
		assert.Equal(t, "Buyer@Example.COM", stored.Email)
		assert.Len(t, stored.Code, 6)

		sentMsg := sender.Calls[0].Arguments.Get(0).(mail.Message)
		assert.Equal(t, "Buyer@Example.COM", sentMsg.To)
		assert.Equal(t, "Your Verification Code", sentMsg.Subject)
		assert.Contains(t, sentMsg.HTML, stored.Code)
		otpRepo.AssertExpectations(t)
		sender.AssertExpectations(t)
	})

	t.Run("empty email reports dispatch failure", func(t *testing.T) {
		service, _, _, _ := newTestAuthService()

		err := service.RequestOTP(ctx, RequestOTPInput{Email: ""})
		require.Error(t, err)
		assert.Equal(t, "Failed to send OTP", err.Error())
	})

	t.Run("store failure reports dispatch failure", func(t *testing.T) {
		service, _, otpRepo, sender := newTestAuthService()
		otpRepo.On("Upsert", ctx, mock.Anything).Return(errors.New("db down"))

		err := service.RequestOTP(ctx, RequestOTPInput{Email: "a@b.example"})
		require.Error(t, err)
		assert.Equal(t, "Failed to send OTP", err.Error())
		sender.AssertNotCalled(t, "Send", mock.Anything)
	})

	t.Run("mail failure reports dispatch failure", func(t *testing.T) {
		service, _, otpRepo, sender := newTestAuthService()
		otpRepo.On("Upsert", ctx, mock.Anything).Return(nil)
		sender.On("Send", mock.Anything).Return(errors.New("relay refused"))

		err := service.RequestOTP(ctx, RequestOTPInput{Email: "a@b.example"})
		require.Error(t, err)
		assert.Equal(t, "Failed to send OTP", err.Error())
	})
}

func TestAuthService_Signup(t *testing.T) {
	ctx := context.Background()

	input := SignupInput{
		CompanyName: "Acme Solar",
		Email:       "sales@acme.example",
		Password:    "s3cret",
		OTP:         "482913",
	}

	t.Run("registers supplier and consumes code", func(t *testing.T) {
		service, supplierRepo, otpRepo, _ := newTestAuthService()

		otpRepo.On("FindByEmailAndCode", ctx, "sales@acme.example", "482913").
			Return(&identity.OTPVerification{Email: "sales@acme.example", Code: "482913"}, nil)
		supplierRepo.On("ExistsByEmail", ctx, "sales@acme.example").Return(false, nil)
		supplierRepo.On("Create", ctx, mock.AnythingOfType("*identity.Supplier")).
			Run(func(args mock.Arguments) {
				args.Get(1).(*identity.Supplier).ID = 42
			}).Return(nil)
		otpRepo.On("DeleteByEmail", ctx, "sales@acme.example").Return(nil)

		info, err := service.Signup(ctx, input)
		require.NoError(t, err)

		assert.Equal(t, int64(42), info.ID)
		assert.Equal(t, "Acme Solar", info.CompanyName)
		assert.Equal(t, "sales@acme.example", info.Email)
		supplierRepo.AssertExpectations(t)
		otpRepo.AssertExpectations(t)
	})

	t.Run("missing field rejected before any lookup", func(t *testing.T) {
		service, supplierRepo, otpRepo, _ := newTestAuthService()

		bad := input
		bad.Password = ""

		_, err := service.Signup(ctx, bad)
		require.Error(t, err)
		assert.Equal(t, "Missing required fields", err.Error())
		otpRepo.AssertNotCalled(t, "FindByEmailAndCode", mock.Anything, mock.Anything, mock.Anything)
		supplierRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("wrong code rejected", func(t *testing.T) {
		service, supplierRepo, otpRepo, _ := newTestAuthService()

		otpRepo.On("FindByEmailAndCode", ctx, "sales@acme.example", "482913").
			Return(nil, shared.ErrNotFound)

		_, err := service.Signup(ctx, input)
		require.Error(t, err)
		assert.Equal(t, "Invalid or expired OTP", err.Error())
		supplierRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("duplicate email rejected", func(t *testing.T) {
		service, supplierRepo, otpRepo, _ := newTestAuthService()

		otpRepo.On("FindByEmailAndCode", ctx, "sales@acme.example", "482913").
			Return(&identity.OTPVerification{Email: "sales@acme.example", Code: "482913"}, nil)
		supplierRepo.On("ExistsByEmail", ctx, "sales@acme.example").Return(true, nil)

		_, err := service.Signup(ctx, input)
		require.Error(t, err)
		assert.Equal(t, "Email already registered", err.Error())
		supplierRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("email is matched exactly", func(t *testing.T) {
		service, supplierRepo, otpRepo, _ := newTestAuthService()

		// A code issued for sales@acme.example does not verify a
		// differently-cased spelling of the same address.
		otpRepo.On("FindByEmailAndCode", ctx, "SALES@acme.example", "482913").
			Return(nil, shared.ErrNotFound)

		cased := input
		cased.Email = "SALES@acme.example"

		_, err := service.Signup(ctx, cased)
		require.Error(t, err)
		assert.Equal(t, "Invalid or expired OTP", err.Error())
		otpRepo.AssertExpectations(t)
		supplierRepo.AssertNotCalled(t, "ExistsByEmail", mock.Anything, mock.Anything)
	})

	t.Run("email is stored as submitted", func(t *testing.T) {
		service, supplierRepo, otpRepo, _ := newTestAuthService()

		otpRepo.On("FindByEmailAndCode", ctx, "Sales@Acme.Example", "482913").
			Return(&identity.OTPVerification{Email: "Sales@Acme.Example", Code: "482913"}, nil)
		supplierRepo.On("ExistsByEmail", ctx, "Sales@Acme.Example").Return(false, nil)
		supplierRepo.On("Create", ctx, mock.AnythingOfType("*identity.Supplier")).
			Run(func(args mock.Arguments) {
				args.Get(1).(*identity.Supplier).ID = 7
			}).Return(nil)
		otpRepo.On("DeleteByEmail", ctx, "Sales@Acme.Example").Return(nil)

		cased := input
		cased.Email = "Sales@Acme.Example"

		info, err := service.Signup(ctx, cased)
		require.NoError(t, err)
		assert.Equal(t, "Sales@Acme.Example", info.Email)
		supplierRepo.AssertExpectations(t)
	})

	t.Run("delete failure does not fail the signup", func(t *testing.T) {
		service, supplierRepo, otpRepo, _ := newTestAuthService()

		otpRepo.On("FindByEmailAndCode", ctx, "sales@acme.example", "482913").
			Return(&identity.OTPVerification{Email: "sales@acme.example", Code: "482913"}, nil)
		supplierRepo.On("ExistsByEmail", ctx, "sales@acme.example").Return(false, nil)
		supplierRepo.On("Create", ctx, mock.Anything).Return(nil)
		otpRepo.On("DeleteByEmail", ctx, "sales@acme.example").Return(errors.New("db down"))

		_, err := service.Signup(ctx, input)
		assert.NoError(t, err)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	supplier, err := identity.NewSupplier("Acme Solar", "sales@acme.example", "correct-horse")
	require.NoError(t, err)
	supplier.ID = 42

	t.Run("returns supplier info on success", func(t *testing.T) {
		service, supplierRepo, _, _ := newTestAuthService()
		supplierRepo.On("FindByEmail", ctx, "sales@acme.example").Return(supplier, nil)

		info, err := service.Login(ctx, LoginInput{Email: "sales@acme.example", Password: "correct-horse"})
		require.NoError(t, err)
		assert.Equal(t, int64(42), info.ID)
		assert.Equal(t, "Acme Solar", info.CompanyName)
	})

	t.Run("unknown email and wrong password are indistinguishable", func(t *testing.T) {
		service, supplierRepo, _, _ := newTestAuthService()
		supplierRepo.On("FindByEmail", ctx, "ghost@acme.example").Return(nil, shared.ErrNotFound)
		supplierRepo.On("FindByEmail", ctx, "sales@acme.example").Return(supplier, nil)

		_, unknownErr := service.Login(ctx, LoginInput{Email: "ghost@acme.example", Password: "whatever"})
		_, wrongErr := service.Login(ctx, LoginInput{Email: "sales@acme.example", Password: "battery-staple"})

		require.Error(t, unknownErr)
		require.Error(t, wrongErr)
		assert.Equal(t, unknownErr.Error(), wrongErr.Error())
		assert.Equal(t, "Invalid email or password", unknownErr.Error())
	})

	t.Run("missing credentials rejected without lookup", func(t *testing.T) {
		service, supplierRepo, _, _ := newTestAuthService()

		_, err := service.Login(ctx, LoginInput{Email: "", Password: "pw"})
		require.Error(t, err)
		assert.Equal(t, "Invalid email or password", err.Error())
		supplierRepo.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
	})

	t.Run("email is matched exactly", func(t *testing.T) {
		service, supplierRepo, _, _ := newTestAuthService()
		supplierRepo.On("FindByEmail", ctx, "SALES@Acme.Example").Return(nil, shared.ErrNotFound)

		// A differently-cased spelling is a different, unknown account.
		_, err := service.Login(ctx, LoginInput{Email: "SALES@Acme.Example", Password: "correct-horse"})
		require.Error(t, err)
		assert.Equal(t, "Invalid email or password", err.Error())
		supplierRepo.AssertExpectations(t)
	})
}
