package routes

import (
	"Backend-ClubHub/src/controllers"
	"Backend-ClubHub/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// AuthRoutes กำหนดเส้นทางสำหรับ Authentication
func AuthRoutes(app *fiber.App) {
	auth := app.Group("/auth")
	auth.Post("/login", controllers.Login)
	auth.Post("/register", controllers.Register)
	auth.Post("/logout", middleware.AuthJWT, controllers.Logout)
}
