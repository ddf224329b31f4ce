package controllers

import (
	"Backend-ClubHub/src/models"
	"Backend-ClubHub/src/services/clubs"
	"Backend-ClubHub/src/utils"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ClubRequest ข้อมูลสร้างชมรม
type ClubRequest struct {
	Name        string `json:"name" validate:"required,min=1"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Logo        string `json:"logo"`
}

// CreateClub godoc
// @Summary      สร้างชมรมใหม่
// @Tags         clubs
// @Accept       json
// @Produce      json
// @Param        club body ClubRequest true "Club data"
// @Success      201  {object}  models.SuccessResponse
// @Failure      400  {object}  models.ErrorResponse
// @Router       /clubs [post]
func CreateClub(c *fiber.Ctx) error {
	var req ClubRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "Invalid input format")
	}
	if err := validate.Struct(&req); err != nil {
		return utils.HandleError(c, http.StatusBadRequest, err.Error())
	}

	club := &models.Club{
		Name:        &req.Name,
		Description: &req.Description,
		Category:    req.Category,
		Logo:        req.Logo,
	}
	created, err := clubs.CreateClub(club)
	if err != nil {
		return utils.HandleError(c, http.StatusInternalServerError, err.Error())
	}
	return c.Status(http.StatusCreated).JSON(models.SuccessResponse{Message: "Club created", Data: created})
}

// GetAllClubs godoc
// @Summary      ดึงชมรมทั้งหมด
// @Tags         clubs
// @Produce      json
// @Success      200  {object}  models.PaginatedResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /clubs [get]
func GetAllClubs(c *fiber.Ctx) error {
	params := models.DefaultPagination()
	params.Page, _ = strconv.Atoi(c.Query("page", strconv.Itoa(params.Page)))
	params.Limit, _ = strconv.Atoi(c.Query("limit", strconv.Itoa(params.Limit)))
	params.Search = c.Query("search", "")
	params.Order = c.Query("order", "asc")

	result, total, err := clubs.GetAllClubs(params)
	if err != nil {
		return utils.HandleError(c, http.StatusInternalServerError, err.Error())
	}
	return c.JSON(models.NewPaginatedResponse(result, total, params))
}

// RequestMembership godoc
// @Summary      ขอเข้าเป็นสมาชิกชมรม
// @Tags         clubs
// @Param        clubId path string true "Club ID"
// @Success      201  {object}  models.SuccessResponse
// @Failure      409  {object}  models.ErrorResponse
// @Router       /clubs/{clubId}/memberships [post]
func RequestMembership(c *fiber.Ctx) error {
	clubID, err := primitive.ObjectIDFromHex(c.Params("clubId"))
	if err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "Invalid clubId format")
	}

	userIDStr, _ := c.Locals("userId").(string)
	userID, err := primitive.ObjectIDFromHex(userIDStr)
	if err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "Invalid user id")
	}

	membership, err := clubs.RequestMembership(clubID, userID)
	if err != nil {
		return utils.HandleError(c, http.StatusConflict, err.Error())
	}
	return c.Status(http.StatusCreated).JSON(models.SuccessResponse{
		Message: "Membership requested",
		Data:    membership,
	})
}

// DecideMembership godoc
// @Summary      อนุมัติ/ปฏิเสธคำขอสมาชิก
// @Tags         clubs
// @Accept       json
// @Param        membershipId path string true "Membership ID"
// @Success      200  {object}  models.SuccessResponse
// @Failure      409  {object}  models.ErrorResponse
// @Router       /memberships/{membershipId} [put]
func DecideMembership(c *fiber.Ctx) error {
	membershipID, err := primitive.ObjectIDFromHex(c.Params("membershipId"))
	if err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "Invalid membershipId format")
	}

	var req struct {
		Approve bool   `json:"approve"`
		Reason  string `json:"reason"`
	}
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "Invalid input format")
	}

	actor, _ := c.Locals("userId").(string)
	if err := clubs.DecideMembership(membershipID, req.Approve, req.Reason, actor); err != nil {
		return utils.HandleError(c, http.StatusConflict, err.Error())
	}
	return c.JSON(fiber.Map{"message": "Membership decided"})
}

// GetClubMembers godoc
// @Summary      สมาชิกของชมรม
// @Tags         clubs
// @Produce      json
// @Param        clubId path string true "Club ID"
// @Success      200  {object}  models.SuccessResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /clubs/{clubId}/members [get]
func GetClubMembers(c *fiber.Ctx) error {
	clubID, err := primitive.ObjectIDFromHex(c.Params("clubId"))
	if err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "Invalid clubId format")
	}

	members, err := clubs.GetClubMembers(clubID)
	if err != nil {
		return utils.HandleError(c, http.StatusInternalServerError, err.Error())
	}
	return c.JSON(fiber.Map{"data": members})
}
