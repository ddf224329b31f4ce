package controllers

import (
	"Backend-ClubHub/src/services/certificates"
	"Backend-ClubHub/src/utils"
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GetParticipationCertificate godoc
// @Summary      ดาวน์โหลดเกียรติบัตรเข้าร่วมกิจกรรม
// @Description  ออกให้เฉพาะผู้เข้าร่วมสถานะ approved หลังกิจกรรมจบแล้ว
// @Tags         certificates
// @Produce      application/pdf
// @Param        id path string true "Activity ID"
// @Success      200  {file}    file
// @Failure      403  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /activities/{id}/certificate [get]
func GetParticipationCertificate(c *fiber.Ctx) error {
	activityID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "Invalid activity ID format")
	}

	userID, _ := c.Locals("userId").(string)
	pdf, err := certificates.RenderParticipationCertificate(activityID, userID)
	if err != nil {
		if errors.Is(err, certificates.ErrNotEligible) {
			return utils.HandleError(c, http.StatusForbidden, err.Error())
		}
		if err.Error() == "activity not found" || err.Error() == "user not found" {
			return utils.HandleError(c, http.StatusNotFound, err.Error())
		}
		return utils.HandleError(c, http.StatusInternalServerError, err.Error())
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="certificate.pdf"`)
	return c.Send(pdf)
}
