package activities

import (
	"Backend-ClubHub/src/database"
	"Backend-ClubHub/src/jobs"
	"Backend-ClubHub/src/models"
	"Backend-ClubHub/src/services/schedule"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/bson"
)

// Helper functions for activities service

// ===== Redis Cache Helpers =====

func setCache(key string, value interface{}, ttl time.Duration) {
	if database.RedisClient == nil {
		return
	}
	b, _ := json.Marshal(value)
	database.RedisClient.Set(database.RedisCtx, key, b, ttl)
}

func getCache(key string, dest interface{}) bool {
	if database.RedisClient == nil {
		return false
	}
	val, err := database.RedisClient.Get(database.RedisCtx, key).Result()
	if err != nil {
		return false
	}
	return json.Unmarshal([]byte(val), dest) == nil
}

func invalidateListCache() {
	if database.RedisClient == nil {
		return
	}
	iter := database.RedisClient.Scan(database.RedisCtx, 0, "activities:list:*", 0).Iterator()
	for iter.Next(database.RedisCtx) {
		database.RedisClient.Del(database.RedisCtx, iter.Val())
	}
}

func buildListCacheKey(params models.PaginationParams, states []string, bucket string) string {
	return fmt.Sprintf(
		"activities:list:page=%d&limit=%d&search=%s&sortBy=%s&order=%s&states=%v&bucket=%s",
		params.Page, params.Limit, params.Search, params.SortBy, params.Order,
		states, bucket,
	)
}

// ===== Mongo Filter Helpers =====

func buildActivitiesFilter(params models.PaginationParams, states []string) bson.M {
	filter := bson.M{}
	if params.Search != "" {
		searchRegex := bson.M{"$regex": params.Search, "$options": "i"}
		filter["$or"] = bson.A{
			bson.M{"name": searchRegex},
			bson.M{"category": searchRegex},
			bson.M{"location": searchRegex},
		}
	}
	if len(states) > 0 && states[0] != "" {
		filter["activityState"] = bson.M{"$in": states}
	}
	return filter
}

func getSortFieldAndOrder(sortBy, order string) (string, int) {
	field := sortBy
	if field == "" {
		field = "date"
	}
	ord := 1
	if strings.ToLower(order) == "desc" {
		ord = -1
	}
	return field, ord
}

// ===== Asynq/Task Helpers =====

// DeleteTask ลบ task เดิมก่อน (ถ้ามี)
func DeleteTask(taskID string, redisURI string) {
	inspector := asynq.NewInspector(asynq.RedisClientOpt{Addr: redisURI})
	err := inspector.DeleteTask("default", taskID)
	if err != nil && err != asynq.ErrTaskNotFound {
		log.Println("⚠️ Failed to delete old task "+taskID+", then skipping:", err)
	} else if err == nil {
		log.Println("🗑️ Deleted previous task:", taskID)
	}
}

// enqueueTask สร้างและ enqueue งานใหม่
func enqueueTask(
	asynqClient *asynq.Client,
	taskID string,
	createFunc func(string) (*asynq.Task, error),
	runAt time.Time,
	activityID string,
	redisURI string,
) error {
	task, err := createFunc(activityID)
	if err != nil {
		log.Printf("❌ Failed to create task %s: %v", taskID, err)
		return err
	}
	DeleteTask(taskID, redisURI)
	_, err = asynqClient.Enqueue(task, asynq.ProcessAt(runAt), asynq.TaskID(taskID))
	if err != nil {
		log.Printf("❌ Failed to enqueue task %s: %v", taskID, err)
		return err
	}
	log.Printf("✅ Task scheduled: %s | RunAt=%s", taskID, runAt.Format(time.RFC3339))
	return nil
}

// ScheduleStateJobs ตั้งเวลางานเปลี่ยนสถานะจาก slot จริงของกิจกรรม
// ใช้ตัวจำแนกเวลาเดียวกับหน้า list จะได้ไม่มีสองสูตรให้เพี้ยนกัน
func ScheduleStateJobs(asynqClient *asynq.Client, redisURI string, activity *models.Activity) error {
	if asynqClient == nil {
		return errors.New("asynq client is not initialized")
	}

	activityID := activity.ID.Hex()

	if startAt, ok := schedule.EarliestStart(activity); ok && startAt.After(time.Now()) {
		if err := enqueueTask(
			asynqClient,
			"begin-activity-"+activityID,
			jobs.NewBeginActivityTask,
			startAt,
			activityID,
			redisURI,
		); err != nil {
			return err
		}
	} else {
		log.Println("⏩ Skipped begin-activity task (invalid or past time)")
	}

	if endAt, ok := schedule.LatestEnd(activity); ok && endAt.After(time.Now()) {
		if err := enqueueTask(
			asynqClient,
			"complete-activity-"+activityID,
			jobs.NewCompleteActivityTask,
			endAt,
			activityID,
			redisURI,
		); err != nil {
			return err
		}
	} else {
		log.Println("⏩ Skipped complete-activity task (invalid or past time)")
	}

	return nil
}
