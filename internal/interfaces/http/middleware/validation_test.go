package middleware

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type otpPayload struct {
	OTP string `json:"otp" binding:"otp"`
}

func TestValidateOTP(t *testing.T) {
	SetupValidator()
	v, ok := binding.Validator.Engine().(*validator.Validate)
	require.True(t, ok)

	tests := []struct {
		name  string
		code  string
		valid bool
	}{
		{"six digits", "482913", true},
		{"all zeros", "000000", true},
		{"too short", "4829", false},
		{"too long", "4829135", false},
		{"letters", "48a913", false},
		{"empty", "", false},
		{"unicode digits", "٤٨٢٩١٣", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(otpPayload{OTP: tt.code})
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
