package controllers

import (
	"Backend-ClubHub/src/models"
	"Backend-ClubHub/src/services/activities"
	"Backend-ClubHub/src/utils"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var validate = validator.New()

// ActivityRequest ข้อมูลสร้าง/แก้ไขกิจกรรม
type ActivityRequest struct {
	Name            string               `json:"name" validate:"required,min=1"`
	Description     string               `json:"description"`
	Location        string               `json:"location"`
	Category        string               `json:"category"`
	ActivityState   string               `json:"activityState" validate:"omitempty,oneof=planning open close complete"`
	Date            string               `json:"date" validate:"required,datetime=2006-01-02"`
	EndDate         *string              `json:"endDate" validate:"omitempty,datetime=2006-01-02"`
	TimeSlots       []models.TimeWindow  `json:"timeSlots"`
	Schedule        []models.ScheduleDay `json:"schedule"`
	MaxParticipants *int                 `json:"maxParticipants" validate:"omitempty,min=1"`
	File            string               `json:"file"`
}

func (r *ActivityRequest) toModel() *models.Activity {
	return &models.Activity{
		Name:            &r.Name,
		Description:     &r.Description,
		Location:        &r.Location,
		Category:        r.Category,
		ActivityState:   r.ActivityState,
		Date:            r.Date,
		EndDate:         r.EndDate,
		TimeSlots:       r.TimeSlots,
		Schedule:        r.Schedule,
		MaxParticipants: r.MaxParticipants,
		File:            r.File,
	}
}

// CreateActivity godoc
// @Summary      สร้างกิจกรรมใหม่
// @Description  officer สร้างกิจกรรมพร้อมวันและ time slot
// @Tags         activities
// @Accept       json
// @Produce      json
// @Param        activity body ActivityRequest true "Activity data"
// @Success      201  {object}  models.SuccessResponse
// @Failure      400  {object}  models.ErrorResponse
// @Router       /activities [post]
func CreateActivity(c *fiber.Ctx) error {
	var req ActivityRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "Invalid input format")
	}
	if err := validate.Struct(&req); err != nil {
		return utils.HandleError(c, http.StatusBadRequest, err.Error())
	}

	created, err := activities.CreateActivity(req.toModel())
	if err != nil {
		return utils.HandleError(c, http.StatusInternalServerError, err.Error())
	}
	return c.Status(http.StatusCreated).JSON(models.SuccessResponse{
		Message: "Activity created",
		Data:    created,
	})
}

// GetAllActivities godoc
// @Summary      ดึงกิจกรรมทั้งหมด
// @Description  รายการกิจกรรมพร้อมสถานะตามเวลาจริงและจำนวนต่อ tab
// @Tags         activities
// @Produce      json
// @Param        bucket query string false "all | upcoming | ongoing | past"
// @Param        states query string false "comma-separated activity states"
// @Success      200  {object}  activities.ListResult
// @Failure      500  {object}  models.ErrorResponse
// @Router       /activities [get]
func GetAllActivities(c *fiber.Ctx) error {
	params := models.DefaultPagination()
	params.Page, _ = strconv.Atoi(c.Query("page", strconv.Itoa(params.Page)))
	params.Limit, _ = strconv.Atoi(c.Query("limit", strconv.Itoa(params.Limit)))
	params.Search = c.Query("search", "")
	params.SortBy = c.Query("sortBy", "date")
	params.Order = c.Query("order", "asc")

	states := strings.Split(c.Query("states"), ",")
	if len(states) == 1 && states[0] == "" {
		states = []string{}
	}
	bucket := c.Query("bucket", "all")
	userID, _ := c.Locals("userId").(string)

	result, err := activities.GetAllActivities(params, states, bucket, userID)
	if err != nil {
		return utils.HandleError(c, http.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"data":   result.Data,
		"counts": result.Counts,
		"meta": fiber.Map{
			"page":       params.Page,
			"limit":      params.Limit,
			"total":      result.Total,
			"totalPages": result.TotalPages,
		},
	})
}

// GetActivityByID godoc
// @Summary      ดึงกิจกรรมตาม id
// @Tags         activities
// @Produce      json
// @Param        id path string true "Activity ID"
// @Success      200  {object}  models.SuccessResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /activities/{id} [get]
func GetActivityByID(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "Invalid activity id format")
	}

	userID, _ := c.Locals("userId").(string)
	entry, err := activities.GetActivityByID(id, userID)
	if err != nil {
		return utils.HandleError(c, http.StatusNotFound, err.Error())
	}
	return c.JSON(entry)
}

// UpdateActivity godoc
// @Summary      แก้ไขกิจกรรม
// @Tags         activities
// @Accept       json
// @Produce      json
// @Param        id path string true "Activity ID"
// @Param        activity body ActivityRequest true "Activity data"
// @Success      200  {object}  models.SuccessResponse
// @Failure      400  {object}  models.ErrorResponse
// @Router       /activities/{id} [put]
func UpdateActivity(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "Invalid activity id format")
	}

	var req ActivityRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "Invalid input format")
	}
	if err := validate.Struct(&req); err != nil {
		return utils.HandleError(c, http.StatusBadRequest, err.Error())
	}

	updated, err := activities.UpdateActivity(id, req.toModel())
	if err != nil {
		return utils.HandleError(c, http.StatusNotFound, err.Error())
	}
	return c.JSON(models.SuccessResponse{Message: "Activity updated", Data: updated})
}

// DeleteActivity godoc
// @Summary      ลบกิจกรรม
// @Tags         activities
// @Param        id path string true "Activity ID"
// @Success      200  {object}  models.SuccessResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /activities/{id} [delete]
func DeleteActivity(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "Invalid activity id format")
	}

	if err := activities.DeleteActivity(id); err != nil {
		return utils.HandleError(c, http.StatusNotFound, err.Error())
	}
	return c.JSON(fiber.Map{"message": "Activity deleted successfully"})
}
