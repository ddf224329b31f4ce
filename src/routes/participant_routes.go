package routes

import (
	"Backend-ClubHub/src/controllers"
	"Backend-ClubHub/src/middleware"
	"Backend-ClubHub/src/models"

	"github.com/gofiber/fiber/v2"
)

// ParticipantRoutes กำหนดเส้นทางสำหรับการสมัคร/อนุมัติผู้เข้าร่วม
func ParticipantRoutes(app *fiber.App) {
	participants := app.Group("/activities/:activityId/participants", middleware.AuthJWT)
	participants.Post("/", controllers.RegisterParticipant)
	participants.Delete("/", controllers.UnregisterParticipant)
	participants.Put("/slots", controllers.ChooseSlots)

	officer := middleware.RequireRole(models.RoleOfficer, models.RoleAdmin)
	participants.Post("/:participantId/approve", officer, controllers.ApproveParticipant)
	participants.Post("/:participantId/reject", officer, controllers.RejectParticipant)
	participants.Post("/:participantId/remove", officer, controllers.RemoveParticipant)

	app.Get("/participants/me", middleware.AuthJWT, controllers.GetMyRegistrations)
}
