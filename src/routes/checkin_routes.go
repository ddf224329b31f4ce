package routes

import (
	"Backend-ClubHub/src/controllers"
	"Backend-ClubHub/src/middleware"
	"Backend-ClubHub/src/models"

	"github.com/gofiber/fiber/v2"
)

// CheckinRoutes กำหนดเส้นทางสำหรับการเช็คอินด้วย token
func CheckinRoutes(app *fiber.App) {
	officer := middleware.RequireRole(models.RoleOfficer, models.RoleAdmin)
	app.Post("/activities/:activityId/checkin/token", middleware.AuthJWT, officer, controllers.CreateCheckinToken)
	app.Post("/checkin/claim", middleware.AuthJWT, controllers.ClaimCheckin)
}
