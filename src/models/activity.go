package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// สถานะที่ admin/officer ตั้งเอง (ใช้แสดงผลเท่านั้น ไม่ใช้ตัดสินเวลาจริง)
const (
	StatePlanning = "planning"
	StateOpen     = "open"
	StateClose    = "close"
	StateComplete = "complete"
)

// Activity กิจกรรมของชมรม
type Activity struct {
	ID              primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	ClubID          primitive.ObjectID `json:"clubId,omitempty" bson:"clubId,omitempty"`
	Name            *string            `json:"name" bson:"name" example:"Football Tournament"`
	Description     *string            `json:"description" bson:"description" example:"Annual club tournament"`
	Location        *string            `json:"location" bson:"location" example:"Main Field"`
	Category        string             `json:"category" bson:"category" example:"sport"`
	ActivityState   string             `json:"activityState" bson:"activityState" example:"open"`
	Date            string             `json:"date" bson:"date" example:"2025-06-10"`
	EndDate         *string            `json:"endDate,omitempty" bson:"endDate,omitempty" example:"2025-06-12"`
	TimeSlots       []TimeWindow       `json:"timeSlots" bson:"timeSlots"`
	Schedule        []ScheduleDay      `json:"schedule,omitempty" bson:"schedule,omitempty"`
	MaxParticipants *int               `json:"maxParticipants" bson:"maxParticipants" example:"40"`
	Participants    []Participant      `json:"participants" bson:"participants"`
	File            string             `json:"file" bson:"file" example:"image.jpg"`
	CreatedAt       time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt       time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// TimeWindow ช่วงเวลาภายในวันเดียว (ไม่ข้ามเที่ยงคืน)
type TimeWindow struct {
	StartTime string `json:"startTime" bson:"stime" example:"10:00"`
	EndTime   string `json:"endTime" bson:"etime" example:"12:00"`
	IsActive  bool   `json:"isActive" bson:"isActive" example:"true"`
}

// ScheduleDay หนึ่งวันของกิจกรรมหลายวัน
type ScheduleDay struct {
	Day  int    `json:"day" bson:"day" example:"1"`
	Date string `json:"date" bson:"date" example:"2025-06-10"`
}

// IsMultiDay กิจกรรมกินเวลามากกว่า 1 วันหรือไม่
func (a *Activity) IsMultiDay() bool {
	return a.EndDate != nil && *a.EndDate != "" && *a.EndDate != a.Date
}
