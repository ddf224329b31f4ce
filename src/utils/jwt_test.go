package utils

import (
	"testing"
	"time"

	"Backend-ClubHub/src/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func TestGenerateAndParseJWT(t *testing.T) {
	token, err := GenerateJWT("665f1c2b9d1e8a0012345678", "65160205@go.buu.ac.th", models.RoleOfficer)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := ParseJWT(token)
	assert.NoError(t, err)
	assert.Equal(t, "665f1c2b9d1e8a0012345678", claims.UserID)
	assert.Equal(t, "65160205@go.buu.ac.th", claims.Email)
	assert.Equal(t, models.RoleOfficer, claims.Role)
	assert.Equal(t, tokenIssuer, claims.Issuer)
}

func TestGenerateJWTDefaultsRoleToStudent(t *testing.T) {
	token, err := GenerateJWT("665f1c2b9d1e8a0012345678", "a@b.c", "")
	assert.NoError(t, err)

	claims, err := ParseJWT(token)
	assert.NoError(t, err)
	assert.Equal(t, models.RoleStudent, claims.Role)
}

func TestParseJWTRejectsBadTokens(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		_, err := ParseJWT("")
		assert.Error(t, err)
	})

	t.Run("Tampered", func(t *testing.T) {
		token, _ := GenerateJWT("u1", "a@b.c", models.RoleStudent)
		_, err := ParseJWT(token + "x")
		assert.Error(t, err)
	})

	// token ที่ไม่มีลายเซ็นต้องถูกปัดตกเสมอ
	t.Run("NoneAlgorithm", func(t *testing.T) {
		unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, AccessClaims{
			UserID: "u1",
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    tokenIssuer,
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		})
		tokenStr, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
		assert.NoError(t, err)

		_, err = ParseJWT(tokenStr)
		assert.Error(t, err)
	})

	t.Run("WrongIssuer", func(t *testing.T) {
		foreign := jwt.NewWithClaims(jwt.SigningMethodHS256, AccessClaims{
			UserID: "u1",
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    "someone-else",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		})
		tokenStr, err := foreign.SignedString(jwtSecret())
		assert.NoError(t, err)

		_, err = ParseJWT(tokenStr)
		assert.Error(t, err)
	})

	t.Run("Expired", func(t *testing.T) {
		expired := jwt.NewWithClaims(jwt.SigningMethodHS256, AccessClaims{
			UserID: "u1",
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    tokenIssuer,
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			},
		})
		tokenStr, err := expired.SignedString(jwtSecret())
		assert.NoError(t, err)

		_, err = ParseJWT(tokenStr)
		assert.Error(t, err)
	})
}

func TestGenerateRandomString(t *testing.T) {
	a := GenerateRandomString(64)
	b := GenerateRandomString(64)
	assert.Len(t, a, 64)
	assert.NotEqual(t, a, b)
}
