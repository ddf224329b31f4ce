package listing

import (
	"Backend-ClubHub/src/models"
	"Backend-ClubHub/src/services/participation"
	"Backend-ClubHub/src/services/schedule"
	"strings"
	"time"
)

// temporal bucket ที่หน้า list ใช้เป็น tab
const (
	BucketAll      = "all"
	BucketUpcoming = "upcoming"
	BucketOngoing  = "ongoing"
	BucketPast     = "past"
)

// Entry กิจกรรมหนึ่งรายการพร้อมผลการ derive ทั้งสองฝั่ง
type Entry struct {
	Activity       *models.Activity        `json:"activity"`
	Classification schedule.Classification `json:"classification"`
	View           *participation.View     `json:"participation,omitempty"`
}

// Counts จำนวนกิจกรรมต่อ bucket สำหรับ badge บน tab
type Counts struct {
	All      int `json:"all"`
	Upcoming int `json:"upcoming"`
	Ongoing  int `json:"ongoing"`
	Past     int `json:"past"`
}

// Build จำแนกทุกกิจกรรม และ evaluate participant ของ user ปัจจุบัน (ถ้ามี)
func Build(activities []models.Activity, currentUserID string, now time.Time) []Entry {
	userID := strings.TrimSpace(currentUserID)
	entries := make([]Entry, 0, len(activities))
	for i := range activities {
		activity := &activities[i]
		entry := Entry{
			Activity:       activity,
			Classification: schedule.Classify(activity, now),
		}
		// user ว่างไม่ต้องไล่หา participant (ref เสียจะ normalize เป็น "" เหมือนกัน)
		if userID != "" {
			for j := range activity.Participants {
				p := &activity.Participants[j]
				if participation.ExtractID(p.UserRef) != userID {
					continue
				}
				if view, err := participation.Evaluate(p, activity, currentUserID, now); err == nil {
					entry.View = view
				}
				break
			}
		}
		entries = append(entries, entry)
	}
	return entries
}

// Filter กรองตาม temporal bucket + สถานะอนุมัติ
// bucket/approval ว่างหรือ "all" = ไม่กรอง
func Filter(entries []Entry, bucket, approval string) []Entry {
	bucket = strings.ToLower(strings.TrimSpace(bucket))
	approval = strings.ToLower(strings.TrimSpace(approval))

	filtered := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if !matchBucket(e, bucket) || !matchApproval(e, approval) {
			continue
		}
		filtered = append(filtered, e)
	}
	return filtered
}

// BucketCounts นับจากชุดที่ยังไม่กรอง
// ตั้งใจให้สลับ tab แล้ว badge ของ tab อื่นไม่เปลี่ยน (นับแบบ what-if)
func BucketCounts(entries []Entry) Counts {
	counts := Counts{All: len(entries)}
	for _, e := range entries {
		switch e.Classification.Status {
		case schedule.StatusUpcoming:
			counts.Upcoming++
		case schedule.StatusOngoing:
			counts.Ongoing++
		case schedule.StatusPast:
			counts.Past++
		}
	}
	return counts
}

func matchBucket(e Entry, bucket string) bool {
	if bucket == "" || bucket == BucketAll {
		return true
	}
	return string(e.Classification.Status) == bucket
}

func matchApproval(e Entry, approval string) bool {
	if approval == "" || approval == BucketAll {
		return true
	}
	if e.View == nil {
		return false
	}
	return e.View.EffectiveStatus == approval
}
