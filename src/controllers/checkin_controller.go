package controllers

import (
	"Backend-ClubHub/src/services/checkin"
	"Backend-ClubHub/src/utils"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CreateCheckinToken godoc
// @Summary      สร้าง token เช็คอิน (officer)
// @Description  token อายุสั้น ใช้ฝังใน QR ให้นิสิตสแกน
// @Tags         checkin
// @Produce      json
// @Param        activityId path string true "Activity ID"
// @Success      201  {object}  models.SuccessResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /activities/{activityId}/checkin/token [post]
func CreateCheckinToken(c *fiber.Ctx) error {
	activityID, err := primitive.ObjectIDFromHex(c.Params("activityId"))
	if err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "Invalid activityId format")
	}

	token, expiresAt, err := checkin.CreateToken(activityID)
	if err != nil {
		return utils.HandleError(c, http.StatusInternalServerError, err.Error())
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"token":     token,
		"expiresAt": expiresAt,
	})
}

// ClaimCheckin godoc
// @Summary      เช็คอินด้วย token
// @Description  ผ่านได้เฉพาะตอนกิจกรรม ongoing และสถานะ approved
// @Tags         checkin
// @Accept       json
// @Success      200  {object}  models.SuccessResponse
// @Failure      409  {object}  models.ErrorResponse
// @Router       /checkin/claim [post]
func ClaimCheckin(c *fiber.Ctx) error {
	var req struct {
		Token string `json:"token"`
	}
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "Invalid input format")
	}

	userID, _ := c.Locals("userId").(string)
	if err := checkin.Claim(req.Token, userID); err != nil {
		return utils.HandleError(c, http.StatusConflict, err.Error())
	}
	return c.JSON(fiber.Map{"message": "Check-in successful"})
}
