package jobs

import (
	"Backend-ClubHub/src/database"
	"Backend-ClubHub/src/models"
	"context"
	"encoding/json"
	"log"

	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// HandleBeginActivityTask เปลี่ยนสถานะแสดงผลเป็น open เมื่อถึงเวลาเริ่มจริง
// สถานะนี้ใช้แสดงผลเท่านั้น หน้า list ตัดสินจากเวลาจริงเสมอ
func HandleBeginActivityTask(ctx context.Context, t *asynq.Task) error {
	return setActivityState(ctx, t, models.StateOpen)
}

// HandleCompleteActivityTask ปิดกิจกรรมเมื่อ slot สุดท้ายจบแล้ว
func HandleCompleteActivityTask(ctx context.Context, t *asynq.Task) error {
	return setActivityState(ctx, t, models.StateComplete)
}

func setActivityState(ctx context.Context, t *asynq.Task, state string) error {
	var payload ActivityPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		log.Println("❌ Payload decode error:", err)
		return err
	}

	id, err := primitive.ObjectIDFromHex(payload.ActivityID)
	if err != nil {
		return err
	}

	collection := database.GetCollection(database.DBName, "activities")

	// ✅ ตรวจสอบว่า activity ยังมีอยู่ไหม
	var activity bson.M
	if err := collection.FindOne(ctx, bson.M{"_id": id}).Decode(&activity); err != nil {
		if err == mongo.ErrNoDocuments {
			log.Println("⚠️ Activity not found. Possibly deleted. Skipping task:", id.Hex())
			return nil // ✅ ไม่ถือว่า error
		}
		log.Println("❌ Failed to find activity:", err)
		return err
	}

	_, err = collection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"activityState": state}},
	)
	if err != nil {
		log.Println("❌ Failed to update activity state:", err)
		return err
	}

	log.Printf("✅ Activity %s → %s", id.Hex(), state)
	return nil
}

// StartWorker รัน asynq worker สำหรับงานเปลี่ยนสถานะตามเวลา
func StartWorker(redisURI string) {
	srv := asynq.NewServer(
		asynq.RedisClientOpt{Addr: redisURI},
		asynq.Config{Concurrency: 5},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeBeginActivity, HandleBeginActivityTask)
	mux.HandleFunc(TypeCompleteActivity, HandleCompleteActivityTask)

	go func() {
		if err := srv.Run(mux); err != nil {
			log.Println("❌ Asynq worker stopped:", err)
		}
	}()
	log.Println("✅ Asynq worker started")
}
