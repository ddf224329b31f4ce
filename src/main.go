package main

import (
	_ "Backend-ClubHub/docs"
	"Backend-ClubHub/src/database"
	"Backend-ClubHub/src/jobs"
	"Backend-ClubHub/src/routes"
	"fmt"
	"log"
	"net/url"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"
)

// @title ClubHub API
// @version 1.0
// @description Student club management backend
func main() {

	// เชื่อมต่อกับ MongoDB
	if err := database.ConnectMongoDB(); err != nil {
		log.Fatalf("Error connecting to the database: %v", err)
	}
	database.InitRedis()
	database.InitAsynq()
	defer database.CloseAsynq()

	// worker สำหรับงานเปลี่ยนสถานะกิจกรรมตามเวลา
	if database.RedisURI != "" {
		jobs.StartWorker(database.RedisURI)
	}

	// สร้าง app instance
	app := fiber.New()

	// ✅ เปิดใช้งาน CORS Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins:     "*",
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: false, // ❌ ต้องเป็น false ถ้าใช้ "*"
	}))

	// เปิดใช้งาน Swagger ที่ URL /swagger
	app.Get("/swagger/*", swagger.HandlerDefault)

	// รวม routes จากแต่ละ module
	routes.InitRoutes(app)

	// get url from .env
	appURI := os.Getenv("APP_URI")
	if appURI == "" {
		appURI = "8888" // ใช้ 8888 เป็นค่าเริ่มต้น
	}

	// เริ่มเซิร์ฟเวอร์
	log.Println("Server is running on port " + appURI)
	if err := app.Listen(fmt.Sprintf(":%s", url.PathEscape(appURI))); err != nil {
		log.Println("❌ Server stopped:", err)
	}
}
