package utils

import (
	"fmt"
	"time"

	DB "Backend-ClubHub/src/database"

	"github.com/redis/go-redis/v9"
)

// StoreRefreshToken เก็บ refresh token ใน Redis พร้อม expiration
// Returns nil if Redis is not available (development mode)
func StoreRefreshToken(userID, refreshToken string, expiresIn time.Duration) error {
	if DB.RedisClient == nil {
		// ไม่มี Redis ใน dev mode - ข้าม
		return nil
	}

	key := fmt.Sprintf("refresh_token:%s", userID)
	if err := DB.RedisClient.Set(DB.RedisCtx, key, refreshToken, expiresIn).Err(); err != nil {
		return fmt.Errorf("failed to store refresh token: %v", err)
	}
	return nil
}

// ValidateRefreshToken ตรวจสอบว่า refresh token ตรงกับที่เก็บไว้หรือไม่
func ValidateRefreshToken(userID, refreshToken string) (bool, error) {
	if DB.RedisClient == nil {
		// ไม่มี Redis ใน dev mode - ข้ามการตรวจสอบ
		return true, nil
	}

	key := fmt.Sprintf("refresh_token:%s", userID)
	storedToken, err := DB.RedisClient.Get(DB.RedisCtx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, fmt.Errorf("failed to get refresh token: %v", err)
	}
	return storedToken == refreshToken, nil
}

// DeleteRefreshToken ลบ refresh token จาก Redis (ใช้ตอน logout)
func DeleteRefreshToken(userID string) error {
	if DB.RedisClient == nil {
		return nil
	}

	key := fmt.Sprintf("refresh_token:%s", userID)
	if err := DB.RedisClient.Del(DB.RedisCtx, key).Err(); err != nil {
		return fmt.Errorf("failed to delete refresh token: %v", err)
	}
	return nil
}

// BlacklistToken เพิ่ม access token เข้า blacklist (ใช้ตอน logout)
func BlacklistToken(token string, expiresIn time.Duration) error {
	if DB.RedisClient == nil {
		return nil
	}

	key := fmt.Sprintf("blacklist:%s", token)
	if err := DB.RedisClient.Set(DB.RedisCtx, key, "1", expiresIn).Err(); err != nil {
		return fmt.Errorf("failed to blacklist token: %v", err)
	}
	return nil
}

// IsTokenBlacklisted ตรวจสอบว่า token อยู่ใน blacklist หรือไม่
func IsTokenBlacklisted(token string) (bool, error) {
	if DB.RedisClient == nil {
		// ไม่มี Redis ใน dev mode - ไม่มี blacklist
		return false, nil
	}

	key := fmt.Sprintf("blacklist:%s", token)
	_, err := DB.RedisClient.Get(DB.RedisCtx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, fmt.Errorf("failed to check blacklist: %v", err)
	}
	return true, nil
}
