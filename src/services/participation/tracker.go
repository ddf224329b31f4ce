package participation

import (
	"Backend-ClubHub/src/models"
	"Backend-ClubHub/src/services/schedule"
	"errors"
	"math"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// caller ต้องเช็คว่ามีข้อมูลก่อนเรียก ถ้า nil ถือว่าเป็นบั๊กของ caller
var (
	ErrNilActivity    = errors.New("participation: activity is required")
	ErrNilParticipant = errors.New("participation: participant is required")
)

// ลำดับการแสดง slot คงที่ เช้า → บ่าย → เย็น
var slotOrder = []string{models.SlotMorning, models.SlotAfternoon, models.SlotEvening}

var slotDisplayNames = map[string]string{
	models.SlotMorning:   "Morning",
	models.SlotAfternoon: "Afternoon",
	models.SlotEvening:   "Evening",
}

// View มุมมองการเข้าร่วมที่ derive แล้ว ใช้ขับปุ่ม/badge บนทุกหน้า list
type View struct {
	IsRegistered          bool             `json:"isRegistered"`
	EffectiveStatus       string           `json:"effectiveStatus"`
	SlotSummary           map[int][]string `json:"slotSummary"`
	CompletenessPercent   *int             `json:"completenessPercent"`
	CapacityPercent       *int             `json:"capacityPercent"`
	HasActiveRegistration bool             `json:"hasActiveRegistration"`
	CanUnregister         bool             `json:"canUnregister"`
	CanApprove            bool             `json:"canApprove"`
	CanReject             bool             `json:"canReject"`
	CanRemove             bool             `json:"canRemove"`
	CanCheckIn            bool             `json:"canCheckIn"`
}

// Evaluate สร้าง View จากข้อมูลดิบของ participant + activity
// เป็น pure function เรียกซ้ำกี่ครั้งก็ได้ ผลเหมือนเดิม
// field ที่หายไปจะถูกแทนด้วยค่า default ที่ปลอดภัย ไม่ error
func Evaluate(participant *models.Participant, activity *models.Activity, currentUserID string, now time.Time) (*View, error) {
	if activity == nil {
		return nil, ErrNilActivity
	}
	if participant == nil {
		return nil, ErrNilParticipant
	}

	status := participant.ApprovalStatus
	if status == "" {
		status = models.ApprovalPending
	}

	currentUserID = strings.TrimSpace(currentUserID)
	isRegistered := currentUserID != "" && ExtractID(participant.UserRef) == currentUserID

	multiDay := activity.IsMultiDay()

	summary := slotSummary(participant, multiDay)
	view := &View{
		IsRegistered:        isRegistered,
		EffectiveStatus:     status,
		SlotSummary:         summary,
		CompletenessPercent: completenessPercent(summary, activity, multiDay),
		CapacityPercent:     capacityPercent(activity),
	}

	// กิจกรรมหลายวัน: สมัครแล้วแต่ยังไม่เลือก slot = ยังไม่นับว่าลงทะเบียนจริง
	// (flow สองจังหวะ: join ก่อน ค่อยเลือกวัน/ช่วงเวลา)
	view.HasActiveRegistration = isRegistered && (!multiDay || len(participant.RegisteredDaySlots) > 0)

	temporal := schedule.Classify(activity, now).Status
	view.CanUnregister = temporal == schedule.StatusUpcoming &&
		status != models.ApprovalRejected && status != models.ApprovalRemoved
	view.CanApprove = status == models.ApprovalPending
	view.CanReject = status == models.ApprovalPending
	view.CanRemove = status != models.ApprovalRemoved
	view.CanCheckIn = temporal == schedule.StatusOngoing && status == models.ApprovalApproved

	return view, nil
}

// ExtractID ดึง id ออกจาก user reference ที่มาได้หลายทรง
// บางครั้ง backend ส่ง id string ตรง ๆ บางครั้ง populate เป็น document
// ถ้าเทียบแบบตรง ๆ โดยไม่ normalize จะ match ไม่เจอทั้งที่เป็นคนเดียวกัน
func ExtractID(ref interface{}) string {
	switch v := ref.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	case primitive.ObjectID:
		return v.Hex()
	case models.User:
		return v.ID.Hex()
	case *models.User:
		if v == nil {
			return ""
		}
		return v.ID.Hex()
	case map[string]interface{}:
		if id, ok := v["_id"]; ok {
			return ExtractID(id)
		}
		if id, ok := v["id"]; ok {
			return ExtractID(id)
		}
		return ""
	case bson.D:
		return ExtractID(v.Map())
	default:
		return ""
	}
}

// slotSummary จัดกลุ่ม slot ที่เลือกไว้ตามวัน เรียงชื่อตามลำดับคงที่
func slotSummary(participant *models.Participant, multiDay bool) map[int][]string {
	summary := map[int][]string{}
	if !multiDay {
		return summary
	}

	chosen := map[int]map[string]bool{}
	for _, ds := range participant.RegisteredDaySlots {
		slot := strings.ToLower(strings.TrimSpace(ds.Slot))
		if _, known := slotDisplayNames[slot]; !known {
			continue
		}
		if chosen[ds.Day] == nil {
			chosen[ds.Day] = map[string]bool{}
		}
		chosen[ds.Day][slot] = true
	}

	for day, slots := range chosen {
		var names []string
		for _, slot := range slotOrder {
			if slots[slot] {
				names = append(names, slotDisplayNames[slot])
			}
		}
		if len(names) > 0 {
			summary[day] = names
		}
	}
	return summary
}

// completenessPercent % ของ slot ที่เลือกแล้วเทียบกับ slot ทั้งหมดของกิจกรรม
// (จำนวนวันตาม schedule × 3 ช่วงต่อวัน)
func completenessPercent(summary map[int][]string, activity *models.Activity, multiDay bool) *int {
	if !multiDay || len(activity.Schedule) == 0 {
		return nil
	}

	chosen := 0
	for _, names := range summary {
		chosen += len(names)
	}

	total := len(activity.Schedule) * len(slotOrder)
	pct := int(math.Round(100 * float64(chosen) / float64(total)))
	return &pct
}

// capacityPercent % ที่นั่งที่ถูกใช้ไป (คนที่ถูก removed ไม่นับ)
func capacityPercent(activity *models.Activity) *int {
	if activity.MaxParticipants == nil || *activity.MaxParticipants <= 0 {
		return nil
	}

	active := 0
	for _, p := range activity.Participants {
		if p.ApprovalStatus != models.ApprovalRemoved {
			active++
		}
	}

	pct := int(math.Round(100 * float64(active) / float64(*activity.MaxParticipants)))
	return &pct
}

// ActiveParticipantCount จำนวนผู้เข้าร่วมที่ยังไม่ถูก removed (ใช้เช็คโควต้า)
func ActiveParticipantCount(activity *models.Activity) int {
	if activity == nil {
		return 0
	}
	count := 0
	for _, p := range activity.Participants {
		if p.ApprovalStatus != models.ApprovalRemoved {
			count++
		}
	}
	return count
}
