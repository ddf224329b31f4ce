package database

import (
	"log"

	"github.com/hibiken/asynq"
)

// AsynqClient ใช้ตั้งเวลางานเปลี่ยนสถานะกิจกรรม (nil = โหมดไม่มี Redis)
var AsynqClient *asynq.Client

// InitAsynq เปิด client เมื่อมี Redis เท่านั้น — ระบบทำงานต่อได้โดยไม่มี
// งานตั้งเวลา แค่สถานะกิจกรรมจะไม่ถูกสลับอัตโนมัติ
func InitAsynq() {
	if RedisClient == nil || RedisURI == "" {
		log.Println("⚠️ Redis not available, activity state jobs disabled")
		return
	}

	AsynqClient = asynq.NewClient(asynq.RedisClientOpt{Addr: RedisURI})
	log.Println("✅ Asynq client ready for activity state jobs")
}

// CloseAsynq ปิด connection ตอน shutdown
func CloseAsynq() {
	if AsynqClient == nil {
		return
	}
	if err := AsynqClient.Close(); err != nil {
		log.Println("⚠️ Failed to close Asynq client:", err)
	}
	AsynqClient = nil
}
