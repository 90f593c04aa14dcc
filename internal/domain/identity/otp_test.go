package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateOTPCode(t *testing.T) {
	t.Run("produces six digit codes", func(t *testing.T) {
		for i := 0; i < 50; i++ {
			code, err := GenerateOTPCode()
			require.NoError(t, err)
			require.Len(t, code, 6)
			for _, ch := range code {
				assert.True(t, ch >= '0' && ch <= '9')
			}
			// never starts with zero: the range is [100000, 999999]
			assert.NotEqual(t, byte('0'), code[0])
		}
	})
}

func TestNewOTPVerification(t *testing.T) {
	t.Run("creates record with fresh code", func(t *testing.T) {
		otp, err := NewOTPVerification("buyer@example.com")
		require.NoError(t, err)
		assert.Equal(t, "buyer@example.com", otp.Email)
		assert.Len(t, otp.Code, 6)
	})

	t.Run("rejects invalid email", func(t *testing.T) {
		_, err := NewOTPVerification("nope")
		assert.Error(t, err)
	})
}

func TestOTPVerification_Matches(t *testing.T) {
	otp := &OTPVerification{Email: "a@b.example", Code: "482913"}

	assert.True(t, otp.Matches("482913"))
	assert.False(t, otp.Matches("482914"))
	assert.False(t, otp.Matches(""))
	// no partial or prefix matching
	assert.False(t, otp.Matches("4829"))
}
