package utils_test

import (
	"testing"
	"time"

	"github.com/SscSPs/scan_payroll_app/internal/utils"
	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashing(t *testing.T) {
	hash, err := utils.HashPassword("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", hash)
	assert.True(t, utils.CheckPasswordHash("secret123", hash))
	assert.False(t, utils.CheckPasswordHash("wrong", hash))
	assert.False(t, utils.CheckPasswordHash("secret123", ""))

	_, err = utils.HashPassword("abc")
	assert.Error(t, err)
}

func TestJWTRoundTrip(t *testing.T) {
	token, err := utils.GenerateJWT("staff-1", "secret", time.Now(), time.Hour, "scanpay")
	require.NoError(t, err)

	claims, err := utils.ParseAndValidateJWT(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, "staff-1", claims.Subject)
	assert.Equal(t, "scanpay", claims.Issuer)

	_, err = utils.ParseAndValidateJWT(token, "other")
	assert.Error(t, err)

	expired, err := utils.GenerateJWT("staff-1", "secret", time.Now(), -time.Minute, "scanpay")
	require.NoError(t, err)
	_, err = utils.ParseAndValidateJWT(expired, "secret")
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestFormatValidators(t *testing.T) {
	assert.True(t, utils.IsValidMobile("9876543210"))
	assert.False(t, utils.IsValidMobile("5876543210"))
	assert.False(t, utils.IsValidMobile("98765"))

	assert.True(t, utils.IsValidPAN("ABCDE1234F"))
	assert.False(t, utils.IsValidPAN("abcde1234f"))

	assert.True(t, utils.IsValidBankAccount("123456789"))
	assert.False(t, utils.IsValidBankAccount("12345"))

	assert.True(t, utils.IsValidIFSC("SBIN0001234"))
	assert.False(t, utils.IsValidIFSC("SBIN1001234"))
}

func TestRegisterValidators(t *testing.T) {
	v := validator.New()
	require.NoError(t, utils.RegisterValidators(v))

	type payload struct {
		Mobile string `validate:"mobile"`
		Stage  string `validate:"entrystage"`
		IFSC   string `validate:"omitempty,ifsc"`
	}
	assert.NoError(t, v.Struct(payload{Mobile: "9876543210", Stage: "center"}))
	assert.Error(t, v.Struct(payload{Mobile: "9876543210", Stage: "qa"}))
	assert.Error(t, v.Struct(payload{Mobile: "123", Stage: "center"}))
	assert.Error(t, v.Struct(payload{Mobile: "9876543210", Stage: "finance", IFSC: "bad"}))
}

func TestGenerateSecureRandomString(t *testing.T) {
	s, err := utils.GenerateSecureRandomString(8)
	require.NoError(t, err)
	assert.Len(t, s, 16)

	_, err = utils.GenerateSecureRandomString(0)
	assert.Error(t, err)
}
