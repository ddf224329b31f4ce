package controllers

import (
	"Backend-ClubHub/src/models"
	"Backend-ClubHub/src/services"
	"Backend-ClubHub/src/utils"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// LoginRequest ข้อมูล login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest ข้อมูลสมัครผู้ใช้ใหม่
type RegisterRequest struct {
	Code     string `json:"code" validate:"required"`
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Major    string `json:"major"`
}

// Login godoc
// @Summary      เข้าสู่ระบบ
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        credentials body LoginRequest true "Login credentials"
// @Success      200  {object}  models.SuccessResponse
// @Failure      401  {object}  models.ErrorResponse
// @Router       /auth/login [post]
func Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "Invalid input format")
	}
	if err := validate.Struct(&req); err != nil {
		return utils.HandleError(c, http.StatusBadRequest, err.Error())
	}

	user, accessToken, refreshToken, err := services.AuthenticateUser(req.Email, req.Password)
	if err != nil {
		return utils.HandleError(c, http.StatusUnauthorized, err.Error())
	}

	return c.JSON(fiber.Map{
		"user":         user,
		"accessToken":  accessToken,
		"refreshToken": refreshToken,
	})
}

// Register godoc
// @Summary      สมัครผู้ใช้ใหม่
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        user body RegisterRequest true "User data"
// @Success      201  {object}  models.SuccessResponse
// @Failure      409  {object}  models.ErrorResponse
// @Router       /auth/register [post]
func Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "Invalid input format")
	}
	if err := validate.Struct(&req); err != nil {
		return utils.HandleError(c, http.StatusBadRequest, err.Error())
	}

	user := &models.User{
		Code:  req.Code,
		Name:  req.Name,
		Email: req.Email,
		Major: req.Major,
	}
	if err := services.RegisterUser(user, req.Password); err != nil {
		return utils.HandleError(c, http.StatusConflict, err.Error())
	}
	return c.Status(http.StatusCreated).JSON(models.SuccessResponse{Message: "User registered"})
}

// Logout godoc
// @Summary      ออกจากระบบ (เพิกถอน token)
// @Tags         auth
// @Success      200  {object}  models.SuccessResponse
// @Failure      401  {object}  models.ErrorResponse
// @Router       /auth/logout [post]
func Logout(c *fiber.Ctx) error {
	userID, _ := c.Locals("userId").(string)
	token := strings.TrimPrefix(c.Get("Authorization"), "Bearer ")

	if err := services.Logout(userID, token); err != nil {
		return utils.HandleError(c, http.StatusInternalServerError, err.Error())
	}
	return c.JSON(fiber.Map{"message": "Logged out"})
}
