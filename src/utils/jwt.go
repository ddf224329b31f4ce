package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"strconv"
	"time"

	"Backend-ClubHub/src/models"

	"github.com/golang-jwt/jwt/v5"
)

const tokenIssuer = "clubhub"

// AccessClaims ข้อมูลใน access token: ใช้ตัดสิทธิ์ student/officer/admin
type AccessClaims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

func jwtSecret() []byte {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "clubhub_dev_secret" // ใช้เฉพาะตอน dev เท่านั้น
	}
	return []byte(secret)
}

// อายุ token ตั้งได้ผ่าน JWT_TTL_HOURS (ค่าตั้งต้น 24 ชม.)
func tokenTTL() time.Duration {
	if h, err := strconv.Atoi(os.Getenv("JWT_TTL_HOURS")); err == nil && h > 0 {
		return time.Duration(h) * time.Hour
	}
	return 24 * time.Hour
}

// GenerateJWT ออก access token ให้ user (role ว่างถือเป็น student)
func GenerateJWT(userID, email, role string) (string, error) {
	if role == "" {
		role = models.RoleStudent
	}

	now := time.Now()
	claims := AccessClaims{
		UserID: userID,
		Email:  email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL())),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret())
}

// ParseJWT ตรวจลายเซ็นและวันหมดอายุ รับเฉพาะ HS256 ที่ออกโดยระบบนี้
func ParseJWT(tokenStr string) (*AccessClaims, error) {
	if tokenStr == "" {
		return nil, fmt.Errorf("empty token string")
	}

	token, err := jwt.ParseWithClaims(tokenStr, &AccessClaims{},
		func(t *jwt.Token) (interface{}, error) {
			return jwtSecret(), nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
	)
	if err != nil || token == nil {
		return nil, fmt.Errorf("token rejected: %v", err)
	}

	claims, ok := token.Claims.(*AccessClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}
	return claims, nil
}

// GenerateRandomString สุ่ม hex สำหรับ refresh token
func GenerateRandomString(length int) string {
	bytes := make([]byte, length/2)
	if _, err := rand.Read(bytes); err != nil {
		return ""
	}
	return hex.EncodeToString(bytes)
}
