package participants

import (
	"testing"

	"Backend-ClubHub/src/models"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func multiDayActivity() *models.Activity {
	end := "2025-06-03"
	return &models.Activity{
		ID:      primitive.NewObjectID(),
		Date:    "2025-06-01",
		EndDate: &end,
		Schedule: []models.ScheduleDay{
			{Day: 1, Date: "2025-06-01"},
			{Day: 2, Date: "2025-06-02"},
			{Day: 3, Date: "2025-06-03"},
		},
	}
}

func TestValidateDaySlot(t *testing.T) {
	activity := multiDayActivity()

	assert.NoError(t, validateDaySlot(activity, models.DaySlot{Day: 1, Slot: models.SlotMorning}))
	assert.NoError(t, validateDaySlot(activity, models.DaySlot{Day: 3, Slot: models.SlotEvening}))

	// วันนอกช่วงของกิจกรรม
	err := validateDaySlot(activity, models.DaySlot{Day: 4, Slot: models.SlotMorning})
	assert.Error(t, err)

	// ชื่อ slot ไม่รู้จัก
	err = validateDaySlot(activity, models.DaySlot{Day: 1, Slot: "midnight"})
	assert.Error(t, err)
}

func TestFindParticipant(t *testing.T) {
	activity := multiDayActivity()
	activity.Participants = []models.Participant{
		{ID: primitive.NewObjectID(), UserRef: "u1"},
		{ID: primitive.NewObjectID(), UserRef: map[string]interface{}{"_id": "u2"}},
	}

	found := findParticipant(activity, "u2")
	if assert.NotNil(t, found) {
		assert.Equal(t, activity.Participants[1].ID, found.ID)
	}

	assert.Nil(t, findParticipant(activity, "unknown"))
}
