package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// บทบาทของผู้ใช้ในระบบ
const (
	RoleStudent = "student"
	RoleOfficer = "officer"
	RoleAdmin   = "admin"
)

// User ผู้ใช้งานระบบ
type User struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Code      string             `json:"code" bson:"code" example:"65160205"`
	Name      string             `json:"name" bson:"name" example:"สมชาย ใจดี"`
	Email     string             `json:"email" bson:"email" example:"65160205@go.buu.ac.th"`
	Password  string             `json:"-" bson:"password"`
	Role      string             `json:"role" bson:"role" example:"student"`
	Major     string             `json:"major" bson:"major" example:"CS"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}
