package routes

import (
	"Backend-ClubHub/src/controllers"
	"Backend-ClubHub/src/middleware"
	"Backend-ClubHub/src/models"

	"github.com/gofiber/fiber/v2"
)

// ActivityRoutes กำหนดเส้นทางสำหรับ Activity API
func ActivityRoutes(app *fiber.App) {
	activities := app.Group("/activities", middleware.AuthJWT)
	activities.Get("/", controllers.GetAllActivities)
	activities.Get("/:id", controllers.GetActivityByID)
	activities.Get("/:id/certificate", controllers.GetParticipationCertificate)

	officer := middleware.RequireRole(models.RoleOfficer, models.RoleAdmin)
	activities.Post("/", officer, controllers.CreateActivity)
	activities.Put("/:id", officer, controllers.UpdateActivity)
	activities.Delete("/:id", officer, controllers.DeleteActivity)
}
