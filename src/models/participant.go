package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// สถานะการอนุมัติของผู้เข้าร่วมกิจกรรม
const (
	ApprovalPending  = "pending"
	ApprovalApproved = "approved"
	ApprovalRejected = "rejected"
	ApprovalRemoved  = "removed"
)

// ช่วงเวลาของ slot ในแต่ละวัน
const (
	SlotMorning   = "morning"
	SlotAfternoon = "afternoon"
	SlotEvening   = "evening"
)

// Participant การเข้าร่วมกิจกรรมของนิสิต 1 คน
// UserRef อาจเป็น id ตรง ๆ หรือ document ที่ถูก populate มาจาก backend
// (ทั้งสองแบบต้อง normalize ก่อนเปรียบเทียบ)
type Participant struct {
	ID                 primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	ActivityID         primitive.ObjectID `json:"activityId,omitempty" bson:"activityId,omitempty"`
	UserRef            interface{}        `json:"user" bson:"user"`
	ApprovalStatus     string             `json:"approvalStatus" bson:"approvalStatus" example:"pending"`
	RegisteredDaySlots []DaySlot          `json:"registeredDaySlots" bson:"registeredDaySlots"`
	RejectionReason    *string            `json:"rejectionReason,omitempty" bson:"rejectionReason,omitempty"`
	RejectedBy         *string            `json:"rejectedBy,omitempty" bson:"rejectedBy,omitempty"`
	RejectedAt         *time.Time         `json:"rejectedAt,omitempty" bson:"rejectedAt,omitempty"`
	RemovalReason      *string            `json:"removalReason,omitempty" bson:"removalReason,omitempty"`
	JoinedAt           time.Time          `json:"joinedAt" bson:"joinedAt"`
	CheckinRecords     []CheckinRecord    `json:"checkinRecords,omitempty" bson:"checkinRecords,omitempty"`
}

// DaySlot การเลือกช่วงเวลาของวันหนึ่ง ๆ (เฉพาะกิจกรรมหลายวัน)
type DaySlot struct {
	Day  int    `json:"day" bson:"day" example:"1"`
	Slot string `json:"slot" bson:"slot" example:"morning"`
}

// CheckinRecord บันทึกการเช็คอินระหว่างกิจกรรมดำเนินอยู่
type CheckinRecord struct {
	Timestamp time.Time `json:"timestamp" bson:"timestamp"`
	Token     string    `json:"token" bson:"token"`
}
