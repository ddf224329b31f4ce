package checkin

import (
	"Backend-ClubHub/src/database"
	"Backend-ClubHub/src/models"
	"Backend-ClubHub/src/services/participation"
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Token Configuration
const (
	TokenExpiry = 10 * time.Minute // token เช็คอินหมดอายุเอง officer ไม่ต้องกดปิด
)

// CreateToken officer สร้าง token เช็คอินของกิจกรรม (แปะใน QR ได้)
func CreateToken(activityID primitive.ObjectID) (string, int64, error) {
	if database.RedisClient == nil {
		return "", 0, errors.New("redis is required for check-in tokens")
	}

	token := uuid.NewString()
	key := checkinKey(token)
	value := activityID.Hex()

	if err := database.RedisClient.Set(database.RedisCtx, key, value, TokenExpiry).Err(); err != nil {
		log.Printf("❌ [CreateToken] Failed to store token: %v", err)
		return "", 0, err
	}

	expiresAt := time.Now().Add(TokenExpiry).Unix()
	log.Printf("✅ [CreateToken] Created: activityId=%s, expires=%ds", value, int(TokenExpiry.Seconds()))
	return token, expiresAt, nil
}

// Claim student ใช้ token เช็คอิน — ผ่านได้เฉพาะตอนกิจกรรมกำลังดำเนิน
// และ participant อยู่ในสถานะ approved (ตัดสินโดย tracker ไม่เขียนเงื่อนไขซ้ำ)
func Claim(token, userID string) error {
	if database.RedisClient == nil {
		return errors.New("redis is required for check-in tokens")
	}

	value, err := database.RedisClient.Get(database.RedisCtx, checkinKey(token)).Result()
	if err != nil {
		return errors.New("token ไม่ถูกต้องหรือหมดอายุแล้ว")
	}

	activityID, err := primitive.ObjectIDFromHex(value)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var activity models.Activity
	if err := database.ActivityCollection.FindOne(ctx, bson.M{"_id": activityID}).Decode(&activity); err != nil {
		return errors.New("activity not found")
	}

	var participant *models.Participant
	for i := range activity.Participants {
		if participation.ExtractID(activity.Participants[i].UserRef) == userID {
			participant = &activity.Participants[i]
			break
		}
	}
	if participant == nil {
		return errors.New("participant not found")
	}

	view, err := participation.Evaluate(participant, &activity, userID, time.Now())
	if err != nil {
		return err
	}
	if !view.CanCheckIn {
		return errors.New("ไม่สามารถเช็คอินได้: กิจกรรมยังไม่เริ่มหรือยังไม่ได้รับอนุมัติ")
	}

	record := models.CheckinRecord{Timestamp: time.Now(), Token: token}
	_, err = database.ActivityCollection.UpdateOne(ctx,
		bson.M{"_id": activityID, "participants._id": participant.ID},
		bson.M{"$push": bson.M{"participants.$.checkinRecords": record}},
	)
	return err
}

func checkinKey(token string) string {
	return fmt.Sprintf("checkin_token:%s", token)
}
