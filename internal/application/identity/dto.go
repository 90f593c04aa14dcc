package identity

// RequestOTPInput contains the input for requesting a verification code
type RequestOTPInput struct {
	Email string
}

// SignupInput contains the input for supplier registration
type SignupInput struct {
	CompanyName string
	Email       string
	Password    string
	OTP         string
}

// LoginInput contains the input for supplier login
type LoginInput struct {
	Email    string
	Password string
}

// SupplierInfo is the public supplier shape returned after signup and login
type SupplierInfo struct {
	ID          int64
	CompanyName string
	Email       string
}
