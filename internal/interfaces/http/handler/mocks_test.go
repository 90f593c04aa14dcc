package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rezillion/backend/internal/domain/catalog"
	"github.com/rezillion/backend/internal/domain/identity"
	"github.com/rezillion/backend/internal/infrastructure/mail"
	"github.com/rezillion/backend/internal/interfaces/http/middleware"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var setupOnce sync.Once

// newTestRouter builds a gin engine in test mode with the custom validator
// registered, mirroring the production setup
func newTestRouter() *gin.Engine {
	setupOnce.Do(func() {
		gin.SetMode(gin.TestMode)
		middleware.SetupValidator()
	})
	return gin.New()
}

// performJSON issues a request with a JSON body against the engine
func performJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// decodeBody unmarshals a response body into a generic map
func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

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

// MockProductRepository is a mock implementation of catalog.ProductRepository
// and catalog.CatalogRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Create(ctx context.Context, product *catalog.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Replace(ctx context.Context, id int64, name string, attrs catalog.AttributeMap) error {
	args := m.Called(ctx, id, name, attrs)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProductRepository) FindBySupplier(ctx context.Context, supplierID int64) ([]catalog.Product, error) {
	args := m.Called(ctx, supplierID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) ListAll(ctx context.Context) ([]catalog.MarketplaceRow, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.MarketplaceRow), args.Error(1)
}

// MockSettingRepository is a mock implementation of catalog.SettingRepository
type MockSettingRepository struct {
	mock.Mock
}

func (m *MockSettingRepository) Upsert(ctx context.Context, setting *catalog.DashboardSetting) error {
	args := m.Called(ctx, setting)
	return args.Error(0)
}

func (m *MockSettingRepository) FindAll(ctx context.Context) ([]catalog.DashboardSetting, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.DashboardSetting), args.Error(1)
}

// MockSender is a mock implementation of mail.Sender
type MockSender struct {
	mock.Mock
}

func (m *MockSender) Send(msg mail.Message) error {
	args := m.Called(msg)
	return args.Error(0)
}

// ctxMatcher matches any context argument
var ctxMatcher = mock.MatchedBy(func(ctx context.Context) bool { return true })

// assertErrorBody asserts an exact error payload
func assertErrorBody(t *testing.T, w *httptest.ResponseRecorder, status int, message string) {
	t.Helper()
	require.Equal(t, status, w.Code)
	body := decodeBody(t, w)
	require.Equal(t, message, body["error"])
}
