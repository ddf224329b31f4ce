package listing

import (
	"testing"
	"time"

	"Backend-ClubHub/src/models"
	"Backend-ClubHub/src/services/schedule"
	"Backend-ClubHub/test"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func activityOn(name, date string, slots ...models.TimeWindow) models.Activity {
	return models.Activity{
		Name:      strPtr(name),
		Date:      date,
		TimeSlots: slots,
		Participants: []models.Participant{
			{UserRef: "abc123", ApprovalStatus: models.ApprovalApproved},
			{UserRef: "someone-else", ApprovalStatus: models.ApprovalPending},
		},
	}
}

func fixtureEntries(t *testing.T) []Entry {
	t.Helper()
	now, err := time.ParseInLocation("2006-01-02 15:04", "2025-06-10 09:00", schedule.Location())
	assert.NoError(t, err)

	window := models.TimeWindow{StartTime: "08:00", EndTime: "10:00", IsActive: true}
	activities := []models.Activity{
		activityOn("past", "2025-06-01", window),
		activityOn("ongoing", "2025-06-10", window),
		activityOn("upcoming-today", "2025-06-10"), // ไม่มี slot → upcoming
		activityOn("upcoming", "2025-06-20", window),
	}
	return Build(activities, "abc123", now)
}

func TestBuildClassifiesAndEvaluates(t *testing.T) {
	entries := fixtureEntries(t)
	assert.Len(t, entries, 4)

	assert.Equal(t, schedule.StatusPast, entries[0].Classification.Status)
	assert.Equal(t, schedule.StatusOngoing, entries[1].Classification.Status)
	assert.Equal(t, schedule.StatusUpcoming, entries[2].Classification.Status)
	assert.Equal(t, schedule.StatusUpcoming, entries[3].Classification.Status)

	// ทุกกิจกรรมมี participant ของ user นี้ → View ต้องถูก evaluate
	for _, e := range entries {
		if assert.NotNil(t, e.View) {
			assert.True(t, e.View.IsRegistered)
			assert.Equal(t, models.ApprovalApproved, e.View.EffectiveStatus)
		}
	}

	// เช็คอินได้เฉพาะตัวที่ ongoing
	assert.False(t, entries[0].View.CanCheckIn)
	assert.True(t, entries[1].View.CanCheckIn)
}

func TestBuildWithoutMatchingParticipant(t *testing.T) {
	now, _ := time.ParseInLocation("2006-01-02 15:04", "2025-06-10 09:00", schedule.Location())
	entries := Build([]models.Activity{activityOn("x", "2025-06-20")}, "stranger", now)
	assert.Len(t, entries, 1)
	assert.Nil(t, entries[0].View)
}

// user ว่างต้องไม่จับคู่กับ participant ที่ ref เสีย (normalize เป็น "" เหมือนกัน)
func TestBuildEmptyUserSkipsBrokenRefs(t *testing.T) {
	now, _ := time.ParseInLocation("2006-01-02 15:04", "2025-06-10 09:00", schedule.Location())
	activity := activityOn("x", "2025-06-20")
	activity.Participants = append(activity.Participants, models.Participant{
		UserRef:        nil, // ref หายจากข้อมูลเก่า
		ApprovalStatus: models.ApprovalApproved,
	})

	for _, userID := range []string{"", "   "} {
		entries := Build([]models.Activity{activity}, userID, now)
		assert.Len(t, entries, 1)
		assert.Nil(t, entries[0].View)
	}
}

func TestFilterByBucket(t *testing.T) {
	timer := test.NewTestTimer("Filter by bucket")
	defer timer.Stop()

	entries := fixtureEntries(t)

	assert.Len(t, Filter(entries, BucketUpcoming, ""), 2)
	assert.Len(t, Filter(entries, BucketOngoing, ""), 1)
	assert.Len(t, Filter(entries, BucketPast, ""), 1)
	assert.Len(t, Filter(entries, BucketAll, ""), 4)
	assert.Len(t, Filter(entries, "", ""), 4)
	assert.Len(t, Filter(entries, "  ONGOING ", ""), 1) // ตัวพิมพ์/ช่องว่างไม่สำคัญ
}

func TestFilterByApprovalStatus(t *testing.T) {
	entries := fixtureEntries(t)

	assert.Len(t, Filter(entries, BucketAll, models.ApprovalApproved), 4)
	assert.Len(t, Filter(entries, BucketAll, models.ApprovalPending), 0)
	assert.Len(t, Filter(entries, BucketUpcoming, models.ApprovalApproved), 2)

	// entry ที่ไม่มี View ผ่านเฉพาะตอนไม่กรอง
	now, _ := time.ParseInLocation("2006-01-02 15:04", "2025-06-10 09:00", schedule.Location())
	noView := Build([]models.Activity{activityOn("x", "2025-06-20")}, "stranger", now)
	assert.Len(t, Filter(noView, BucketAll, models.ApprovalApproved), 0)
	assert.Len(t, Filter(noView, BucketAll, "all"), 1)
}

// badge ต้องนับจากชุดก่อนกรอง สลับ tab แล้วตัวเลขของ tab อื่นไม่ขยับ
func TestBucketCountsComputedOverUnfilteredSet(t *testing.T) {
	entries := fixtureEntries(t)

	counts := BucketCounts(entries)
	assert.Equal(t, Counts{All: 4, Upcoming: 2, Ongoing: 1, Past: 1}, counts)

	filtered := Filter(entries, BucketPast, "")
	assert.Len(t, filtered, 1)

	// นับซ้ำจากชุดเต็มต้องได้เท่าเดิม (ไม่ใช่จากชุดที่กรองแล้ว)
	assert.Equal(t, counts, BucketCounts(entries))
}
