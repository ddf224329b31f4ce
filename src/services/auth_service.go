package services

import (
	"Backend-ClubHub/src/database"
	"Backend-ClubHub/src/models"
	"Backend-ClubHub/src/utils"
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

// AuthenticateUser ตรวจ email/password แล้วออก access + refresh token
func AuthenticateUser(email, password string) (*models.User, string, string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var user models.User
	err := database.UserCollection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, "", "", errors.New("invalid email or password")
		}
		return nil, "", "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", "", errors.New("invalid email or password")
	}

	accessToken, err := utils.GenerateJWT(user.ID.Hex(), user.Email, user.Role)
	if err != nil {
		return nil, "", "", err
	}

	refreshToken := utils.GenerateRandomString(64)
	if err := utils.StoreRefreshToken(user.ID.Hex(), refreshToken, 7*24*time.Hour); err != nil {
		return nil, "", "", err
	}

	return &user, accessToken, refreshToken, nil
}

// RegisterUser สมัครผู้ใช้ใหม่ (hash password ก่อนเก็บเสมอ)
func RegisterUser(user *models.User, password string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	count, err := database.UserCollection.CountDocuments(ctx, bson.M{"email": user.Email})
	if err != nil {
		return err
	}
	if count > 0 {
		return errors.New("email already registered")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.Password = string(hashed)
	if user.Role == "" {
		user.Role = models.RoleStudent
	}
	user.CreatedAt = time.Now()

	_, err = database.UserCollection.InsertOne(ctx, user)
	return err
}

// Logout เพิกถอน refresh token และ blacklist access token ที่เหลืออายุ
func Logout(userID, accessToken string) error {
	if err := utils.DeleteRefreshToken(userID); err != nil {
		return err
	}
	return utils.BlacklistToken(accessToken, 24*time.Hour)
}
