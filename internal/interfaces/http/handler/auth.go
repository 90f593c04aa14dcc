package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	appidentity "github.com/rezillion/backend/internal/application/identity"
	"github.com/rezillion/backend/internal/interfaces/http/dto"
)

// AuthHandler handles supplier authentication endpoints
type AuthHandler struct {
	BaseHandler
	authService *appidentity.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *appidentity.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RegisterRoutes registers all auth routes
func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")
	{
		auth.POST("/send-otp", h.SendOTP)
		auth.POST("/signup", h.Signup)
		auth.POST("/login", h.Login)
	}
}

// SendOTP handles POST /auth/send-otp
func (h *AuthHandler) SendOTP(c *gin.Context) {
	var req SendOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// The contract for this endpoint knows only one failure mode
		h.InternalError(c, "Failed to send OTP")
		return
	}

	if err := h.authService.RequestOTP(c.Request.Context(), appidentity.RequestOTPInput{
		Email: req.Email,
	}); err != nil {
		h.HandleError(c, err, "Failed to send OTP")
		return
	}

	h.Success(c)
}

// Signup handles POST /auth/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// A malformed code can never match a stored one, so it gets the
		// same answer as a wrong code. Everything else is missing input.
		if hasFailedTag(err, "otp") {
			h.Unauthorized(c, "Invalid or expired OTP")
			return
		}
		h.BadRequest(c, "Missing required fields")
		return
	}

	info, err := h.authService.Signup(c.Request.Context(), appidentity.SignupInput{
		CompanyName: req.CompanyName,
		Email:       req.Email,
		Password:    req.Password,
		OTP:         req.OTP,
	})
	if err != nil {
		h.HandleError(c, err, "Internal Server Error")
		return
	}

	h.OK(c, dto.AuthResponse{
		Success: true,
		User: dto.UserResponse{
			ID:          info.ID,
			CompanyName: info.CompanyName,
			Email:       info.Email,
		},
	})
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// Indistinguishable from a wrong password
		h.Unauthorized(c, "Invalid email or password")
		return
	}

	info, err := h.authService.Login(c.Request.Context(), appidentity.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.HandleError(c, err, "Login failed")
		return
	}

	h.OK(c, dto.AuthResponse{
		Success: true,
		User: dto.UserResponse{
			ID:          info.ID,
			CompanyName: info.CompanyName,
			Email:       info.Email,
		},
	})
}

// hasFailedTag reports whether a binding error includes a validation
// failure for the given tag
func hasFailedTag(err error, tag string) bool {
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			if e.Tag() == tag {
				return true
			}
		}
	}
	return false
}
