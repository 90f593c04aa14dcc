package handler

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	applead "github.com/rezillion/backend/internal/application/lead"
	"github.com/rezillion/backend/internal/domain/identity"
	"github.com/rezillion/backend/internal/domain/shared"
	"github.com/rezillion/backend/internal/infrastructure/mail"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupLeadRouter() (*gin.Engine, *MockSupplierRepository, *MockSender) {
	repo := new(MockSupplierRepository)
	sender := new(MockSender)
	service := applead.NewLeadService(repo, sender, "leads@rezillion.example", zap.NewNop())
	h := NewLeadHandler(service)

	router := newTestRouter()
	h.RegisterRoutes(router.Group(""))
	return router, repo, sender
}

func TestLeadHandler_ContactSupplier(t *testing.T) {
	payload := map[string]any{
		"userEmail": "buyer@example.com",
		"product": map[string]any{
			"name":       "Vertex N 720W",
			"supplierId": 3,
			"priceEx":    24.5,
		},
	}

	t.Run("dispatches the inquiry", func(t *testing.T) {
		router, repo, sender := setupLeadRouter()

		supplier, err := identity.NewSupplier("Acme Solar", "sales@acme.example", "pw")
		require.NoError(t, err)
		repo.On("FindByID", ctxMatcher, int64(3)).Return(supplier, nil)
		sender.On("Send", mock.AnythingOfType("mail.Message")).Return(nil)

		w := performJSON(t, router, http.MethodPost, "/contact-supplier", payload)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, true, decodeBody(t, w)["success"])

		msg := sender.Calls[0].Arguments.Get(0).(mail.Message)
		assert.Equal(t, "sales@acme.example", msg.To)
		assert.Equal(t, "buyer@example.com", msg.ReplyTo)
	})

	t.Run("unknown supplier still succeeds via operator address", func(t *testing.T) {
		router, repo, sender := setupLeadRouter()

		repo.On("FindByID", ctxMatcher, int64(3)).Return(nil, shared.ErrNotFound)
		sender.On("Send", mock.AnythingOfType("mail.Message")).Return(nil)

		w := performJSON(t, router, http.MethodPost, "/contact-supplier", payload)

		require.Equal(t, http.StatusOK, w.Code)
		msg := sender.Calls[0].Arguments.Get(0).(mail.Message)
		assert.Equal(t, "leads@rezillion.example", msg.To)
	})

	t.Run("missing details rejected", func(t *testing.T) {
		router, _, _ := setupLeadRouter()

		w := performJSON(t, router, http.MethodPost, "/contact-supplier",
			map[string]any{"userEmail": "buyer@example.com"})
		assertErrorBody(t, w, http.StatusBadRequest, "Missing product or supplier details")
	})

	t.Run("send failure reports server error", func(t *testing.T) {
		router, repo, sender := setupLeadRouter()

		supplier, err := identity.NewSupplier("Acme Solar", "sales@acme.example", "pw")
		require.NoError(t, err)
		repo.On("FindByID", ctxMatcher, int64(3)).Return(supplier, nil)
		sender.On("Send", mock.Anything).Return(assert.AnError)

		w := performJSON(t, router, http.MethodPost, "/contact-supplier", payload)
		assertErrorBody(t, w, http.StatusInternalServerError, "Server Error")
	})
}
