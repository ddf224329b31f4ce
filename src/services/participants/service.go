package participants

import (
	"Backend-ClubHub/src/database"
	"Backend-ClubHub/src/models"
	"Backend-ClubHub/src/services/listing"
	"Backend-ClubHub/src/services/participation"
	"Backend-ClubHub/src/services/schedule"
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ✅ 1. Student สมัครเข้าร่วมกิจกรรม (ลงซ้ำไม่ได้ + กันเต็มโควต้า)
func Register(activityID primitive.ObjectID, userID string) (*models.Participant, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	activity, err := findActivity(ctx, activityID)
	if err != nil {
		return nil, err
	}

	// กิจกรรมที่จบแล้วสมัครไม่ได้
	if schedule.Classify(activity, time.Now()).Status == schedule.StatusPast {
		return nil, errors.New("ไม่สามารถลงทะเบียนได้ เนื่องจากกิจกรรมสิ้นสุดแล้ว")
	}

	// กันลงซ้ำ (เทียบ id หลัง normalize เพราะ user ref มาได้หลายทรง)
	for i := range activity.Participants {
		if participation.ExtractID(activity.Participants[i].UserRef) == userID {
			return nil, errors.New("already registered in this activity")
		}
	}

	// กันเต็มโควต้า (คนที่ถูก removed ไม่นับ)
	if activity.MaxParticipants != nil &&
		participation.ActiveParticipantCount(activity) >= *activity.MaxParticipants {
		return nil, errors.New("ไม่สามารถลงทะเบียนได้ เนื่องจากจำนวนผู้เข้าร่วมเต็มแล้ว")
	}

	participant := models.Participant{
		ID:                 primitive.NewObjectID(),
		ActivityID:         activityID,
		UserRef:            userID,
		ApprovalStatus:     models.ApprovalPending,
		RegisteredDaySlots: []models.DaySlot{},
		JoinedAt:           time.Now(),
	}

	_, err = database.ActivityCollection.UpdateOne(ctx,
		bson.M{"_id": activityID},
		bson.M{"$push": bson.M{"participants": participant}},
	)
	if err != nil {
		return nil, fmt.Errorf("เพิ่มผู้เข้าร่วมไม่สำเร็จ: %w", err)
	}
	return &participant, nil
}

// ✅ 2. เลือกวัน/ช่วงเวลา (จังหวะที่สองของการสมัครกิจกรรมหลายวัน)
func ChooseSlots(activityID primitive.ObjectID, userID string, slots []models.DaySlot) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	activity, err := findActivity(ctx, activityID)
	if err != nil {
		return err
	}
	if !activity.IsMultiDay() {
		return errors.New("slot selection is only for multi-day activities")
	}

	// ตรวจว่า day/slot ที่ส่งมาอยู่ในช่วงของกิจกรรมจริง
	for _, ds := range slots {
		if err := validateDaySlot(activity, ds); err != nil {
			return err
		}
	}

	participant := findParticipant(activity, userID)
	if participant == nil {
		return errors.New("participant not found")
	}

	_, err = database.ActivityCollection.UpdateOne(ctx,
		bson.M{"_id": activityID, "participants._id": participant.ID},
		bson.M{"$set": bson.M{"participants.$.registeredDaySlots": slots}},
	)
	return err
}

// ✅ 3. Officer อนุมัติผู้เข้าร่วม
func Approve(activityID, participantID primitive.ObjectID) error {
	return decide(activityID, participantID, func(view *participation.View) error {
		if !view.CanApprove {
			return errors.New("participant is not pending approval")
		}
		return nil
	}, bson.M{
		"participants.$.approvalStatus": models.ApprovalApproved,
	})
}

// ✅ 4. Officer ปฏิเสธผู้เข้าร่วม (เก็บเหตุผล ผู้ตัดสิน และเวลา)
func Reject(activityID, participantID primitive.ObjectID, reason, actor string) error {
	now := time.Now()
	return decide(activityID, participantID, func(view *participation.View) error {
		if !view.CanReject {
			return errors.New("participant is not pending approval")
		}
		return nil
	}, bson.M{
		"participants.$.approvalStatus":  models.ApprovalRejected,
		"participants.$.rejectionReason": reason,
		"participants.$.rejectedBy":      actor,
		"participants.$.rejectedAt":      now,
	})
}

// ✅ 5. ถอดผู้เข้าร่วมออก (soft delete เก็บไว้ตรวจสอบย้อนหลัง)
func Remove(activityID, participantID primitive.ObjectID, reason string) error {
	return decide(activityID, participantID, func(view *participation.View) error {
		if !view.CanRemove {
			return errors.New("participant already removed")
		}
		return nil
	}, bson.M{
		"participants.$.approvalStatus": models.ApprovalRemoved,
		"participants.$.removalReason":  reason,
	})
}

// ✅ 6. Student ยกเลิกการสมัครเอง (ทำได้เฉพาะตอน upcoming และยังไม่ถูกตัดสิทธิ์)
func Unregister(activityID primitive.ObjectID, userID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	activity, err := findActivity(ctx, activityID)
	if err != nil {
		return err
	}

	participant := findParticipant(activity, userID)
	if participant == nil {
		return errors.New("participant not found")
	}

	view, err := participation.Evaluate(participant, activity, userID, time.Now())
	if err != nil {
		return err
	}
	if !view.CanUnregister {
		return errors.New("ไม่สามารถยกเลิกการลงทะเบียนได้ในสถานะนี้")
	}

	_, err = database.ActivityCollection.UpdateOne(ctx,
		bson.M{"_id": activityID},
		bson.M{"$pull": bson.M{"participants": bson.M{"_id": participant.ID}}},
	)
	return err
}

// ✅ 7. กิจกรรมที่ user สมัครไว้และยังนับว่าลงทะเบียนจริง
// (กิจกรรมหลายวันที่ยังไม่เลือก slot จะไม่ขึ้นในหน้านี้)
func GetMyRegistrations(userID string) ([]listing.Entry, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// user ref เก็บมาได้ทั้ง string และ document ที่ populate แล้ว
	or := bson.A{
		bson.M{"participants.user": userID},
		bson.M{"participants.user._id": userID},
	}
	if oid, err := primitive.ObjectIDFromHex(userID); err == nil {
		or = append(or,
			bson.M{"participants.user": oid},
			bson.M{"participants.user._id": oid},
		)
	}

	cursor, err := database.ActivityCollection.Find(ctx, bson.M{"$or": or})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var activities []models.Activity
	if err := cursor.All(ctx, &activities); err != nil {
		return nil, err
	}

	entries := listing.Build(activities, userID, time.Now())
	active := make([]listing.Entry, 0, len(entries))
	for _, e := range entries {
		if e.View != nil && e.View.HasActiveRegistration {
			active = append(active, e)
		}
	}
	return active, nil
}

// decide โหลด participant ตรวจ eligibility จาก tracker แล้วค่อยอัปเดต
func decide(activityID, participantID primitive.ObjectID, check func(*participation.View) error, set bson.M) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	activity, err := findActivity(ctx, activityID)
	if err != nil {
		return err
	}

	var participant *models.Participant
	for i := range activity.Participants {
		if activity.Participants[i].ID == participantID {
			participant = &activity.Participants[i]
			break
		}
	}
	if participant == nil {
		return errors.New("participant not found")
	}

	view, err := participation.Evaluate(participant, activity, "", time.Now())
	if err != nil {
		return err
	}
	if err := check(view); err != nil {
		return err
	}

	_, err = database.ActivityCollection.UpdateOne(ctx,
		bson.M{"_id": activityID, "participants._id": participantID},
		bson.M{"$set": set},
	)
	return err
}

func findActivity(ctx context.Context, activityID primitive.ObjectID) (*models.Activity, error) {
	var activity models.Activity
	if err := database.ActivityCollection.FindOne(ctx, bson.M{"_id": activityID}).Decode(&activity); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.New("activity not found")
		}
		return nil, err
	}
	return &activity, nil
}

func findParticipant(activity *models.Activity, userID string) *models.Participant {
	for i := range activity.Participants {
		if participation.ExtractID(activity.Participants[i].UserRef) == userID {
			return &activity.Participants[i]
		}
	}
	return nil
}

// validateDaySlot ตรวจว่า day อยู่ใน schedule และชื่อ slot ถูกต้อง
func validateDaySlot(activity *models.Activity, ds models.DaySlot) error {
	switch ds.Slot {
	case models.SlotMorning, models.SlotAfternoon, models.SlotEvening:
	default:
		return fmt.Errorf("invalid slot name: %s", ds.Slot)
	}

	for _, day := range activity.Schedule {
		if day.Day == ds.Day {
			return nil
		}
	}
	return fmt.Errorf("day %d is not part of this activity", ds.Day)
}
