package participation

import (
	"testing"
	"time"

	"Backend-ClubHub/src/models"
	"Backend-ClubHub/src/services/schedule"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func at(t *testing.T, value string) time.Time {
	t.Helper()
	ts, err := time.ParseInLocation("2006-01-02 15:04", value, schedule.Location())
	assert.NoError(t, err)
	return ts
}

// กิจกรรมวันเดียว 2025-06-10 08:00-10:00
func fixtureActivity() *models.Activity {
	return &models.Activity{
		ID:   primitive.NewObjectID(),
		Name: strPtr("Football Tournament"),
		Date: "2025-06-10",
		TimeSlots: []models.TimeWindow{
			{StartTime: "08:00", EndTime: "10:00", IsActive: true},
		},
	}
}

func fixtureParticipant(userRef interface{}, status string) *models.Participant {
	return &models.Participant{
		ID:             primitive.NewObjectID(),
		UserRef:        userRef,
		ApprovalStatus: status,
		JoinedAt:       time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestEvaluatePreconditions(t *testing.T) {
	now := at(t, "2025-06-09 09:00")

	_, err := Evaluate(nil, fixtureActivity(), "abc123", now)
	assert.ErrorIs(t, err, ErrNilParticipant)

	_, err = Evaluate(fixtureParticipant("abc123", models.ApprovalPending), nil, "abc123", now)
	assert.ErrorIs(t, err, ErrNilActivity)
}

func TestEvaluateIdentifierNormalization(t *testing.T) {
	activity := fixtureActivity()
	now := at(t, "2025-06-09 09:00")

	// user ref มาได้หลายทรง ต้อง match ได้หมด
	refs := map[string]interface{}{
		"bare string":      "abc123",
		"padded string":    "  abc123  ",
		"populated doc":    map[string]interface{}{"_id": "abc123", "name": "สมชาย"},
		"doc with id":      map[string]interface{}{"id": "abc123"},
	}
	for name, ref := range refs {
		t.Run(name, func(t *testing.T) {
			view, err := Evaluate(fixtureParticipant(ref, models.ApprovalPending), activity, "abc123", now)
			assert.NoError(t, err)
			assert.True(t, view.IsRegistered)
		})
	}

	t.Run("different user", func(t *testing.T) {
		view, err := Evaluate(fixtureParticipant("someone-else", models.ApprovalPending), activity, "abc123", now)
		assert.NoError(t, err)
		assert.False(t, view.IsRegistered)
	})

	t.Run("empty current user never matches", func(t *testing.T) {
		view, err := Evaluate(fixtureParticipant("", models.ApprovalPending), activity, "", now)
		assert.NoError(t, err)
		assert.False(t, view.IsRegistered)
	})
}

func TestExtractID(t *testing.T) {
	oid := primitive.NewObjectID()

	assert.Equal(t, "abc123", ExtractID("abc123"))
	assert.Equal(t, "abc123", ExtractID(" abc123 "))
	assert.Equal(t, oid.Hex(), ExtractID(oid))
	assert.Equal(t, oid.Hex(), ExtractID(map[string]interface{}{"_id": oid}))
	assert.Equal(t, "abc123", ExtractID(bson.D{{Key: "_id", Value: "abc123"}}))
	assert.Equal(t, oid.Hex(), ExtractID(models.User{ID: oid}))
	assert.Equal(t, "", ExtractID(nil))
	assert.Equal(t, "", ExtractID(42))
	assert.Equal(t, "", ExtractID(map[string]interface{}{"name": "no id"}))
}

func TestEvaluateDefaultStatus(t *testing.T) {
	// ไม่มีสถานะ → ถือเป็น pending
	view, err := Evaluate(fixtureParticipant("abc123", ""), fixtureActivity(), "abc123", at(t, "2025-06-09 09:00"))
	assert.NoError(t, err)
	assert.Equal(t, models.ApprovalPending, view.EffectiveStatus)
	assert.True(t, view.CanApprove)
	assert.True(t, view.CanReject)
}

func TestEvaluateCapacityPercent(t *testing.T) {
	activity := fixtureActivity()
	activity.MaxParticipants = intPtr(10)
	activity.Participants = []models.Participant{
		*fixtureParticipant("u1", models.ApprovalApproved),
		*fixtureParticipant("u2", models.ApprovalPending),
		*fixtureParticipant("u3", models.ApprovalRejected),
		*fixtureParticipant("u4", models.ApprovalRemoved), // ไม่นับ
	}

	view, err := Evaluate(&activity.Participants[0], activity, "u1", at(t, "2025-06-09 09:00"))
	assert.NoError(t, err)
	if assert.NotNil(t, view.CapacityPercent) {
		assert.Equal(t, 30, *view.CapacityPercent)
	}

	t.Run("unbounded capacity", func(t *testing.T) {
		activity.MaxParticipants = nil
		view, err := Evaluate(&activity.Participants[0], activity, "u1", at(t, "2025-06-09 09:00"))
		assert.NoError(t, err)
		assert.Nil(t, view.CapacityPercent)
	})

	t.Run("negative capacity treated as unbounded", func(t *testing.T) {
		activity.MaxParticipants = intPtr(-5)
		view, err := Evaluate(&activity.Participants[0], activity, "u1", at(t, "2025-06-09 09:00"))
		assert.NoError(t, err)
		assert.Nil(t, view.CapacityPercent)
	})
}

func TestEvaluateEligibilityFlags(t *testing.T) {
	upcoming := at(t, "2025-06-09 09:00")
	ongoing := at(t, "2025-06-10 09:00")

	t.Run("RejectedCannotUnregisterButCanBeRemoved", func(t *testing.T) {
		p := fixtureParticipant("abc123", models.ApprovalRejected)
		p.RejectionReason = strPtr("เอกสารไม่ครบ")

		view, err := Evaluate(p, fixtureActivity(), "abc123", upcoming)
		assert.NoError(t, err)
		assert.False(t, view.CanUnregister)
		assert.True(t, view.CanRemove)
		assert.False(t, view.CanApprove)
	})

	t.Run("ApprovedCanUnregisterWhileUpcoming", func(t *testing.T) {
		view, err := Evaluate(fixtureParticipant("abc123", models.ApprovalApproved), fixtureActivity(), "abc123", upcoming)
		assert.NoError(t, err)
		assert.True(t, view.CanUnregister)
		assert.False(t, view.CanCheckIn)
	})

	t.Run("NoUnregisterOnceOngoing", func(t *testing.T) {
		view, err := Evaluate(fixtureParticipant("abc123", models.ApprovalApproved), fixtureActivity(), "abc123", ongoing)
		assert.NoError(t, err)
		assert.False(t, view.CanUnregister)
		assert.True(t, view.CanCheckIn)
	})

	t.Run("PendingCannotCheckIn", func(t *testing.T) {
		view, err := Evaluate(fixtureParticipant("abc123", models.ApprovalPending), fixtureActivity(), "abc123", ongoing)
		assert.NoError(t, err)
		assert.False(t, view.CanCheckIn)
	})

	t.Run("RemovedCannotBeRemovedAgain", func(t *testing.T) {
		view, err := Evaluate(fixtureParticipant("abc123", models.ApprovalRemoved), fixtureActivity(), "abc123", upcoming)
		assert.NoError(t, err)
		assert.False(t, view.CanRemove)
		assert.False(t, view.CanUnregister)
	})
}

func TestEvaluateMultiDaySlots(t *testing.T) {
	activity := fixtureActivity()
	activity.Date = "2025-06-01"
	activity.EndDate = strPtr("2025-06-03")
	activity.Schedule = []models.ScheduleDay{
		{Day: 1, Date: "2025-06-01"},
		{Day: 2, Date: "2025-06-02"},
		{Day: 3, Date: "2025-06-03"},
	}
	now := at(t, "2025-05-20 09:00")

	t.Run("SlotSummaryGroupedAndOrdered", func(t *testing.T) {
		p := fixtureParticipant("abc123", models.ApprovalApproved)
		p.RegisteredDaySlots = []models.DaySlot{
			{Day: 1, Slot: "afternoon"},
			{Day: 1, Slot: "morning"},
			{Day: 3, Slot: "evening"},
		}

		view, err := Evaluate(p, activity, "abc123", now)
		assert.NoError(t, err)
		assert.Equal(t, []string{"Morning", "Afternoon"}, view.SlotSummary[1])
		assert.Equal(t, []string{"Evening"}, view.SlotSummary[3])
		assert.NotContains(t, view.SlotSummary, 2)
		assert.True(t, view.HasActiveRegistration)

		// เลือกแล้ว 3 จาก 9 slot (3 วัน × 3 ช่วง)
		if assert.NotNil(t, view.CompletenessPercent) {
			assert.Equal(t, 33, *view.CompletenessPercent)
		}
	})

	t.Run("CompletenessTwoOfNine", func(t *testing.T) {
		p := fixtureParticipant("abc123", models.ApprovalApproved)
		p.RegisteredDaySlots = []models.DaySlot{
			{Day: 1, Slot: "morning"},
			{Day: 1, Slot: "afternoon"},
		}

		view, err := Evaluate(p, activity, "abc123", now)
		assert.NoError(t, err)
		if assert.NotNil(t, view.CompletenessPercent) {
			assert.Equal(t, 22, *view.CompletenessPercent)
		}
	})

	// สมัครแล้วแต่ยังไม่เลือก slot = ยังไม่นับว่าลงทะเบียนจริง
	t.Run("ZeroSlotsIsNotActiveRegistration", func(t *testing.T) {
		p := fixtureParticipant("abc123", models.ApprovalPending)
		p.RegisteredDaySlots = []models.DaySlot{}

		view, err := Evaluate(p, activity, "abc123", now)
		assert.NoError(t, err)
		assert.True(t, view.IsRegistered)
		assert.False(t, view.HasActiveRegistration)
		assert.Empty(t, view.SlotSummary)
	})

	t.Run("UnknownSlotNamesIgnored", func(t *testing.T) {
		p := fixtureParticipant("abc123", models.ApprovalApproved)
		p.RegisteredDaySlots = []models.DaySlot{
			{Day: 1, Slot: "midnight"},
			{Day: 2, Slot: "Morning "}, // case/space ไม่ตรงก็ยังอ่านออก
		}

		view, err := Evaluate(p, activity, "abc123", now)
		assert.NoError(t, err)
		assert.NotContains(t, view.SlotSummary, 1)
		assert.Equal(t, []string{"Morning"}, view.SlotSummary[2])
	})

	t.Run("SingleDayHasEmptySummary", func(t *testing.T) {
		p := fixtureParticipant("abc123", models.ApprovalApproved)
		p.RegisteredDaySlots = []models.DaySlot{{Day: 1, Slot: "morning"}}

		view, err := Evaluate(p, fixtureActivity(), "abc123", now)
		assert.NoError(t, err)
		assert.Empty(t, view.SlotSummary)
		assert.True(t, view.HasActiveRegistration)
	})
}

func TestEvaluateIdempotence(t *testing.T) {
	activity := fixtureActivity()
	activity.MaxParticipants = intPtr(5)
	p := fixtureParticipant("abc123", models.ApprovalApproved)
	activity.Participants = []models.Participant{*p}
	now := at(t, "2025-06-09 09:00")

	first, err := Evaluate(p, activity, "abc123", now)
	assert.NoError(t, err)
	second, err := Evaluate(p, activity, "abc123", now)
	assert.NoError(t, err)
	assert.Equal(t, first, second)
}
