package handler

// SendOTPRequest asks for a verification code to be emailed
type SendOTPRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// SignupRequest registers a supplier account
type SignupRequest struct {
	CompanyName string `json:"companyName" binding:"required"`
	Email       string `json:"email" binding:"required"`
	Password    string `json:"password" binding:"required"`
	OTP         string `json:"otp" binding:"required,otp"`
}

// LoginRequest authenticates a supplier
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}
