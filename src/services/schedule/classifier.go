package schedule

import (
	"Backend-ClubHub/src/models"
	"math"
	"time"
)

// TemporalStatus สถานะของกิจกรรมเทียบกับเวลาจริง
type TemporalStatus string

const (
	StatusUpcoming TemporalStatus = "upcoming"
	StatusOngoing  TemporalStatus = "ongoing"
	StatusPast     TemporalStatus = "past"
)

// Classification ผลการจำแนกสถานะตามเวลา
// ProgressPercent มีค่าเฉพาะตอน Ongoing และคำนวณได้เท่านั้น
type Classification struct {
	Status          TemporalStatus `json:"status"`
	ProgressPercent *int           `json:"progressPercent,omitempty"`
}

const dayLayout = "2006-01-02"

// Location โซนเวลาที่ใช้ตีความวันและเวลาของกิจกรรม
func Location() *time.Location {
	loc, err := time.LoadLocation("Asia/Bangkok")
	if err != nil {
		return time.Local
	}
	return loc
}

// Classify จำแนกกิจกรรมเป็น upcoming / ongoing / past จาก date + timeSlots
// ตั้งใจไม่ดู activityState ที่คนตั้งไว้ เพราะมักตั้งค้างไม่ตรงเวลาจริง
// ข้อมูลวันที่/เวลาที่ parse ไม่ได้จะ fallback เป็น upcoming ไม่ panic
// เพราะถูกเรียกซ้ำ ๆ จากหน้า list ทุกครั้งที่ refresh
func Classify(activity *models.Activity, now time.Time) Classification {
	if activity == nil {
		return Classification{Status: StatusUpcoming}
	}

	loc := Location()
	now = now.In(loc)

	startDay, err := parseDay(activity.Date, loc)
	if err != nil {
		// วันที่เสีย → upcoming (อย่าทำให้ทั้ง list พัง)
		return Classification{Status: StatusUpcoming}
	}

	// กิจกรรมหลายวันจะ past ก็ต่อเมื่อวันสุดท้ายผ่านไปแล้ว
	anchorDay := startDay
	if activity.EndDate != nil && *activity.EndDate != "" {
		if d, err := parseDay(*activity.EndDate, loc); err == nil {
			anchorDay = d
		}
	}

	today := truncateDay(now)
	if anchorDay.Before(today) {
		return Classification{Status: StatusPast}
	}
	if startDay.After(today) {
		return Classification{Status: StatusUpcoming}
	}

	// วันนี้อยู่ในช่วงของกิจกรรม → ดู time slot ของวัน
	windows := windowsForDay(activity, today, startDay)
	if len(windows) == 0 {
		// ไม่มีข้อมูลเวลา → upcoming (ค่า default ฝั่งปลอดภัย)
		return Classification{Status: StatusUpcoming}
	}

	earliest, latest, ok := windowBounds(windows, today, loc)
	if !ok {
		return Classification{Status: StatusUpcoming}
	}

	switch {
	case now.Before(earliest):
		return Classification{Status: StatusUpcoming}
	case now.After(latest):
		return Classification{Status: StatusPast}
	default:
		return Classification{Status: StatusOngoing, ProgressPercent: progressPercent(now, earliest, latest)}
	}
}

// EarliestStart เวลาเริ่มจริงของวันแรก (ใช้ตั้งเวลา job เปลี่ยนสถานะ)
func EarliestStart(activity *models.Activity) (time.Time, bool) {
	if activity == nil {
		return time.Time{}, false
	}
	loc := Location()
	day, err := parseDay(activity.Date, loc)
	if err != nil {
		return time.Time{}, false
	}

	var earliest time.Time
	for _, w := range activity.TimeSlots {
		if !w.IsActive {
			continue
		}
		t, err := combineClock(day, w.StartTime, loc)
		if err != nil {
			continue
		}
		if earliest.IsZero() || t.Before(earliest) {
			earliest = t
		}
	}
	return earliest, !earliest.IsZero()
}

// LatestEnd เวลาสิ้นสุดจริงของวันสุดท้าย (ใช้ตั้งเวลา job ปิดกิจกรรม)
func LatestEnd(activity *models.Activity) (time.Time, bool) {
	if activity == nil {
		return time.Time{}, false
	}
	loc := Location()
	day, err := parseDay(activity.Date, loc)
	if err != nil {
		return time.Time{}, false
	}
	if activity.EndDate != nil && *activity.EndDate != "" {
		if d, err := parseDay(*activity.EndDate, loc); err == nil {
			day = d
		}
	}

	var latest time.Time
	for _, w := range activity.TimeSlots {
		if !w.IsActive {
			continue
		}
		t, err := combineClock(day, w.EndTime, loc)
		if err != nil {
			continue // ข้ามกรณีที่เวลา format ผิด
		}
		if t.After(latest) {
			latest = t
		}
	}
	return latest, !latest.IsZero()
}

// windowsForDay คืน slot ที่ active ของวันที่กำลังจำแนก
// กิจกรรมหลายวัน: ใช้ timeSlots เฉพาะวันแรก วันอื่นถือว่าไม่มีข้อมูลเวลา
// (slot-less → upcoming ซึ่งเป็นการตีความฝั่งอนุรักษ์นิยม)
func windowsForDay(activity *models.Activity, today, startDay time.Time) []models.TimeWindow {
	if !today.Equal(startDay) {
		return nil
	}
	var active []models.TimeWindow
	for _, w := range activity.TimeSlots {
		if w.IsActive {
			active = append(active, w)
		}
	}
	return active
}

// windowBounds หาเวลาเริ่มเร็วสุดและเวลาจบช้าสุดจาก slot ที่ใช้งานได้
func windowBounds(windows []models.TimeWindow, day time.Time, loc *time.Location) (time.Time, time.Time, bool) {
	var earliest, latest time.Time
	for _, w := range windows {
		start, err := combineClock(day, w.StartTime, loc)
		if err != nil {
			continue
		}
		end, err := combineClock(day, w.EndTime, loc)
		if err != nil {
			continue
		}
		if end.Before(start) {
			continue // ช่วงเวลากลับหัว ไม่เอามาคิด
		}
		if earliest.IsZero() || start.Before(earliest) {
			earliest = start
		}
		if end.After(latest) {
			latest = end
		}
	}
	if earliest.IsZero() || latest.IsZero() {
		return time.Time{}, time.Time{}, false
	}
	return earliest, latest, true
}

// progressPercent คำนวณ % ที่ผ่านไปของช่วงกิจกรรม (clamp 0-100)
func progressPercent(now, earliest, latest time.Time) *int {
	dur := latest.Sub(earliest)
	if dur <= 0 {
		return nil // ช่วงเวลายาวศูนย์ → ไม่คำนวณ แทนที่จะได้ NaN
	}
	pct := int(math.Round(100 * float64(now.Sub(earliest)) / float64(dur)))
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	return &pct
}

func parseDay(s string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(dayLayout, s, loc)
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// combineClock รวมวัน + เวลา "HH:MM" (หรือ "HH:MM:SS") เป็น time.Time
func combineClock(day time.Time, clock string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(dayLayout+" 15:04", day.Format(dayLayout)+" "+clock, loc)
	if err != nil {
		t, err = time.ParseInLocation(dayLayout+" 15:04:05", day.Format(dayLayout)+" "+clock, loc)
	}
	return t, err
}
