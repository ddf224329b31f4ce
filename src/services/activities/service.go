package activities

import (
	"Backend-ClubHub/src/database"
	"Backend-ClubHub/src/models"
	"Backend-ClubHub/src/services/listing"
	"context"
	"errors"
	"log"
	"math"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ListResult ผลลัพธ์หน้า list: กิจกรรมพร้อมผล derive + badge ต่อ tab
type ListResult struct {
	Data       []listing.Entry `json:"data"`
	Counts     listing.Counts  `json:"counts"`
	Total      int64           `json:"total"`
	TotalPages int             `json:"totalPages"`
}

// CreateActivity สร้างกิจกรรมใหม่ และตั้งเวลางานเปลี่ยนสถานะ
func CreateActivity(activity *models.Activity) (*models.Activity, error) {
	defer invalidateListCache()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	activity.ID = primitive.NewObjectID()
	if activity.ActivityState == "" {
		activity.ActivityState = models.StatePlanning
	}
	if activity.Participants == nil {
		activity.Participants = []models.Participant{}
	}
	normalizeSchedule(activity)
	activity.CreatedAt = time.Now()
	activity.UpdatedAt = activity.CreatedAt

	if _, err := database.ActivityCollection.InsertOne(ctx, activity); err != nil {
		return nil, err
	}

	// ตั้งเวลา job เปิด/ปิดตาม slot จริง (ไม่มี Redis ก็ข้ามไป)
	if database.AsynqClient != nil {
		if err := ScheduleStateJobs(database.AsynqClient, database.RedisURI, activity); err != nil {
			log.Println("⚠️ Failed to schedule state jobs:", err)
		}
	}

	return activity, nil
}

// GetAllActivities ดึงกิจกรรมทั้งหมดพร้อมจำแนกสถานะตามเวลา
// bucket กรองหลังจำแนก (นับ badge จากชุดก่อนกรองเสมอ)
func GetAllActivities(params models.PaginationParams, states []string, bucket, currentUserID string) (*ListResult, error) {
	params.Normalize()
	cacheKey := buildListCacheKey(params, states, bucket) + "&user=" + currentUserID
	var cached ListResult
	if getCache(cacheKey, &cached) {
		return &cached, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	filter := buildActivitiesFilter(params, states)
	sortField, sortOrder := getSortFieldAndOrder(params.SortBy, params.Order)

	cursor, err := database.ActivityCollection.Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: sortField, Value: sortOrder}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var activities []models.Activity
	if err := cursor.All(ctx, &activities); err != nil {
		return nil, err
	}

	entries := listing.Build(activities, currentUserID, time.Now())
	counts := listing.BucketCounts(entries)
	filtered := listing.Filter(entries, bucket, "")

	page, totalPages := paginateEntries(filtered, params)
	result := &ListResult{
		Data:       page,
		Counts:     counts,
		Total:      int64(len(filtered)),
		TotalPages: totalPages,
	}
	setCache(cacheKey, result, 2*time.Minute)
	return result, nil
}

// GetActivityByID ดึงกิจกรรมเดียวพร้อมผลจำแนกเวลา
func GetActivityByID(id primitive.ObjectID, currentUserID string) (*listing.Entry, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var activity models.Activity
	if err := database.ActivityCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&activity); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.New("activity not found")
		}
		return nil, err
	}

	entries := listing.Build([]models.Activity{activity}, currentUserID, time.Now())
	return &entries[0], nil
}

// UpdateActivity แก้ไขกิจกรรม และตั้งเวลางานใหม่ตาม slot ที่เปลี่ยน
func UpdateActivity(id primitive.ObjectID, update *models.Activity) (*models.Activity, error) {
	defer invalidateListCache()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	normalizeSchedule(update)
	update.UpdatedAt = time.Now()

	set := bson.M{
		"name":            update.Name,
		"description":     update.Description,
		"location":        update.Location,
		"category":        update.Category,
		"activityState":   update.ActivityState,
		"date":            update.Date,
		"endDate":         update.EndDate,
		"timeSlots":       update.TimeSlots,
		"schedule":        update.Schedule,
		"maxParticipants": update.MaxParticipants,
		"file":            update.File,
		"updatedAt":       update.UpdatedAt,
	}

	res := database.ActivityCollection.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)

	var updated models.Activity
	if err := res.Decode(&updated); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.New("activity not found")
		}
		return nil, err
	}

	if database.AsynqClient != nil {
		if err := ScheduleStateJobs(database.AsynqClient, database.RedisURI, &updated); err != nil {
			log.Println("⚠️ Failed to reschedule state jobs:", err)
		}
	}

	return &updated, nil
}

// DeleteActivity ลบกิจกรรมและยกเลิก task ที่ตั้งไว้
func DeleteActivity(id primitive.ObjectID) error {
	defer invalidateListCache()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, err := database.ActivityCollection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return errors.New("activity not found")
	}

	if database.RedisURI != "" {
		DeleteTask("begin-activity-"+id.Hex(), database.RedisURI)
		DeleteTask("complete-activity-"+id.Hex(), database.RedisURI)
	}
	return nil
}

// paginateEntries แบ่งหน้าหลังกรอง bucket (จำแนกเวลาใน Mongo ไม่ได้)
// page/limit ต้องผ่าน Normalize มาแล้ว แต่กันช่วงติดลบซ้ำอีกชั้น
func paginateEntries(entries []listing.Entry, params models.PaginationParams) ([]listing.Entry, int) {
	if params.Limit < 1 {
		params.Normalize()
	}

	total := int64(len(entries))
	start := params.GetSkip()
	if start < 0 {
		start = 0
	}
	if start > total {
		start = total
	}
	end := start + int64(params.Limit)
	if end > total {
		end = total
	}

	totalPages := int(math.Ceil(float64(total) / float64(params.Limit)))
	return entries[start:end], totalPages
}

// normalizeSchedule เติม schedule ให้ครบทุกวันของช่วง date..endDate
// (invariant: schedule ต้องยาวเท่าช่วงวันแบบรวมปลาย)
func normalizeSchedule(activity *models.Activity) {
	if !activity.IsMultiDay() {
		activity.Schedule = nil
		return
	}

	start, err := time.Parse("2006-01-02", activity.Date)
	if err != nil {
		return
	}
	end, err := time.Parse("2006-01-02", *activity.EndDate)
	if err != nil || end.Before(start) {
		return
	}

	span := int(end.Sub(start).Hours()/24) + 1
	if len(activity.Schedule) == span {
		return
	}

	schedule := make([]models.ScheduleDay, 0, span)
	for i := 0; i < span; i++ {
		schedule = append(schedule, models.ScheduleDay{
			Day:  i + 1,
			Date: start.AddDate(0, 0, i).Format("2006-01-02"),
		})
	}
	activity.Schedule = schedule
}
