package controllers

import (
	"Backend-ClubHub/src/models"
	"Backend-ClubHub/src/services/participants"
	"Backend-ClubHub/src/utils"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RegisterParticipant godoc
// @Summary      สมัครเข้าร่วมกิจกรรม
// @Description  นิสิตสมัครเข้าร่วม เริ่มที่สถานะ pending เสมอ
// @Tags         participants
// @Produce      json
// @Param        activityId path string true "Activity ID"
// @Success      201  {object}  models.SuccessResponse
// @Failure      409  {object}  models.ErrorResponse
// @Router       /activities/{activityId}/participants [post]
func RegisterParticipant(c *fiber.Ctx) error {
	activityID, err := primitive.ObjectIDFromHex(c.Params("activityId"))
	if err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "Invalid activityId format")
	}

	userID, _ := c.Locals("userId").(string)
	participant, err := participants.Register(activityID, userID)
	if err != nil {
		return utils.HandleError(c, http.StatusConflict, err.Error())
	}
	return c.Status(http.StatusCreated).JSON(models.SuccessResponse{
		Message: "Registration successful",
		Data:    participant,
	})
}

// ChooseSlots godoc
// @Summary      เลือกวัน/ช่วงเวลาของกิจกรรมหลายวัน
// @Description  จังหวะที่สองของการสมัคร: เลือก slot หลัง join แล้ว
// @Tags         participants
// @Accept       json
// @Produce      json
// @Param        activityId path string true "Activity ID"
// @Success      200  {object}  models.SuccessResponse
// @Failure      400  {object}  models.ErrorResponse
// @Router       /activities/{activityId}/participants/slots [put]
func ChooseSlots(c *fiber.Ctx) error {
	activityID, err := primitive.ObjectIDFromHex(c.Params("activityId"))
	if err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "Invalid activityId format")
	}

	var req struct {
		Slots []models.DaySlot `json:"slots"`
	}
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "Invalid input format")
	}

	userID, _ := c.Locals("userId").(string)
	if err := participants.ChooseSlots(activityID, userID, req.Slots); err != nil {
		return utils.HandleError(c, http.StatusBadRequest, err.Error())
	}
	return c.JSON(fiber.Map{"message": "Slots updated"})
}

// ApproveParticipant godoc
// @Summary      อนุมัติผู้เข้าร่วม
// @Tags         participants
// @Param        activityId path string true "Activity ID"
// @Param        participantId path string true "Participant ID"
// @Success      200  {object}  models.SuccessResponse
// @Failure      409  {object}  models.ErrorResponse
// @Router       /activities/{activityId}/participants/{participantId}/approve [post]
func ApproveParticipant(c *fiber.Ctx) error {
	activityID, participantID, err := parseParticipantParams(c)
	if err != nil {
		return utils.HandleError(c, http.StatusBadRequest, err.Error())
	}

	if err := participants.Approve(activityID, participantID); err != nil {
		return utils.HandleError(c, http.StatusConflict, err.Error())
	}
	return c.JSON(fiber.Map{"message": "Participant approved"})
}

// RejectParticipant godoc
// @Summary      ปฏิเสธผู้เข้าร่วม (บันทึกเหตุผลและผู้ตัดสิน)
// @Tags         participants
// @Accept       json
// @Param        activityId path string true "Activity ID"
// @Param        participantId path string true "Participant ID"
// @Success      200  {object}  models.SuccessResponse
// @Failure      409  {object}  models.ErrorResponse
// @Router       /activities/{activityId}/participants/{participantId}/reject [post]
func RejectParticipant(c *fiber.Ctx) error {
	activityID, participantID, err := parseParticipantParams(c)
	if err != nil {
		return utils.HandleError(c, http.StatusBadRequest, err.Error())
	}

	var req struct {
		Reason string `json:"reason"`
	}
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "Invalid input format")
	}

	actor, _ := c.Locals("userId").(string)
	if err := participants.Reject(activityID, participantID, req.Reason, actor); err != nil {
		return utils.HandleError(c, http.StatusConflict, err.Error())
	}
	return c.JSON(fiber.Map{"message": "Participant rejected"})
}

// RemoveParticipant godoc
// @Summary      ถอดผู้เข้าร่วม (soft delete)
// @Tags         participants
// @Accept       json
// @Param        activityId path string true "Activity ID"
// @Param        participantId path string true "Participant ID"
// @Success      200  {object}  models.SuccessResponse
// @Failure      409  {object}  models.ErrorResponse
// @Router       /activities/{activityId}/participants/{participantId}/remove [post]
func RemoveParticipant(c *fiber.Ctx) error {
	activityID, participantID, err := parseParticipantParams(c)
	if err != nil {
		return utils.HandleError(c, http.StatusBadRequest, err.Error())
	}

	var req struct {
		Reason string `json:"reason"`
	}
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "Invalid input format")
	}

	if err := participants.Remove(activityID, participantID, req.Reason); err != nil {
		return utils.HandleError(c, http.StatusConflict, err.Error())
	}
	return c.JSON(fiber.Map{"message": "Participant removed"})
}

// UnregisterParticipant godoc
// @Summary      ยกเลิกการสมัครของตัวเอง
// @Description  ทำได้เฉพาะตอนกิจกรรมยังไม่เริ่ม และยังไม่ถูก reject/remove
// @Tags         participants
// @Param        activityId path string true "Activity ID"
// @Success      200  {object}  models.SuccessResponse
// @Failure      409  {object}  models.ErrorResponse
// @Router       /activities/{activityId}/participants [delete]
func UnregisterParticipant(c *fiber.Ctx) error {
	activityID, err := primitive.ObjectIDFromHex(c.Params("activityId"))
	if err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "Invalid activityId format")
	}

	userID, _ := c.Locals("userId").(string)
	if err := participants.Unregister(activityID, userID); err != nil {
		return utils.HandleError(c, http.StatusConflict, err.Error())
	}
	return c.JSON(fiber.Map{"message": "Registration cancelled"})
}

// GetMyRegistrations godoc
// @Summary      กิจกรรมที่ฉันลงทะเบียนไว้
// @Description  ไม่รวมกิจกรรมหลายวันที่ยังไม่ได้เลือก slot
// @Tags         participants
// @Produce      json
// @Success      200  {object}  models.SuccessResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /participants/me [get]
func GetMyRegistrations(c *fiber.Ctx) error {
	userID, _ := c.Locals("userId").(string)
	entries, err := participants.GetMyRegistrations(userID)
	if err != nil {
		return utils.HandleError(c, http.StatusInternalServerError, err.Error())
	}
	return c.JSON(fiber.Map{"data": entries})
}

func parseParticipantParams(c *fiber.Ctx) (primitive.ObjectID, primitive.ObjectID, error) {
	activityID, err := primitive.ObjectIDFromHex(c.Params("activityId"))
	if err != nil {
		return primitive.NilObjectID, primitive.NilObjectID, fiber.NewError(http.StatusBadRequest, "Invalid activityId format")
	}
	participantID, err := primitive.ObjectIDFromHex(c.Params("participantId"))
	if err != nil {
		return primitive.NilObjectID, primitive.NilObjectID, fiber.NewError(http.StatusBadRequest, "Invalid participantId format")
	}
	return activityID, participantID, nil
}
