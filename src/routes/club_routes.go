package routes

import (
	"Backend-ClubHub/src/controllers"
	"Backend-ClubHub/src/middleware"
	"Backend-ClubHub/src/models"

	"github.com/gofiber/fiber/v2"
)

// ClubRoutes กำหนดเส้นทางสำหรับชมรมและสมาชิก
func ClubRoutes(app *fiber.App) {
	clubs := app.Group("/clubs", middleware.AuthJWT)
	clubs.Get("/", controllers.GetAllClubs)
	clubs.Get("/:clubId/members", controllers.GetClubMembers)
	clubs.Post("/:clubId/memberships", controllers.RequestMembership)

	officer := middleware.RequireRole(models.RoleOfficer, models.RoleAdmin)
	clubs.Post("/", middleware.RequireRole(models.RoleAdmin), controllers.CreateClub)
	app.Put("/memberships/:membershipId", middleware.AuthJWT, officer, controllers.DecideMembership)
}
