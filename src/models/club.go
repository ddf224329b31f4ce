package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Club ชมรมนิสิต
type Club struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name        *string            `json:"name" bson:"name" example:"Football Club"`
	Description *string            `json:"description" bson:"description"`
	Category    string             `json:"category" bson:"category" example:"sport"`
	Logo        string             `json:"logo" bson:"logo" example:"logo.png"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
}

// Membership คำขอเข้าเป็นสมาชิกชมรม (ใช้วงจรอนุมัติเดียวกับ Participant)
type Membership struct {
	ID              primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	ClubID          primitive.ObjectID `json:"clubId" bson:"clubId"`
	UserID          primitive.ObjectID `json:"userId" bson:"userId"`
	Role            string             `json:"role" bson:"role" example:"member"`
	ApprovalStatus  string             `json:"approvalStatus" bson:"approvalStatus" example:"pending"`
	RejectionReason *string            `json:"rejectionReason,omitempty" bson:"rejectionReason,omitempty"`
	RequestedAt     time.Time          `json:"requestedAt" bson:"requestedAt"`
	DecidedAt       *time.Time         `json:"decidedAt,omitempty" bson:"decidedAt,omitempty"`
	DecidedBy       *string            `json:"decidedBy,omitempty" bson:"decidedBy,omitempty"`
}
