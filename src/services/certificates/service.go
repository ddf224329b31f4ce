package certificates

import (
	"Backend-ClubHub/src/database"
	"Backend-ClubHub/src/models"
	"Backend-ClubHub/src/services/participation"
	"Backend-ClubHub/src/services/schedule"
	"context"
	"errors"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotEligible ออกเกียรติบัตรได้เฉพาะผู้เข้าร่วมที่ approved และกิจกรรมจบแล้ว
var ErrNotEligible = errors.New("certificate available only for approved participants of a finished activity")

// RenderParticipationCertificate สร้างเกียรติบัตร PDF ให้ user สำหรับกิจกรรมที่ระบุ
func RenderParticipationCertificate(activityID primitive.ObjectID, userID string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var activity models.Activity
	if err := database.ActivityCollection.FindOne(ctx, bson.M{"_id": activityID}).Decode(&activity); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.New("activity not found")
		}
		return nil, err
	}

	now := time.Now()
	if schedule.Classify(&activity, now).Status != schedule.StatusPast {
		return nil, ErrNotEligible
	}

	var target *models.Participant
	for i := range activity.Participants {
		if participation.ExtractID(activity.Participants[i].UserRef) == userID {
			target = &activity.Participants[i]
			break
		}
	}
	if target == nil {
		return nil, ErrNotEligible
	}

	view, err := participation.Evaluate(target, &activity, userID, now)
	if err != nil {
		return nil, err
	}
	if view.EffectiveStatus != models.ApprovalApproved {
		return nil, ErrNotEligible
	}

	user, err := findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	name := ""
	if activity.Name != nil {
		name = *activity.Name
	}
	html, err := buildCertificateHTML(certificateData{
		StudentName:  user.Name,
		ActivityName: name,
		DateRange:    formatDateRange(&activity),
		IssuedAt:     now.In(schedule.Location()).Format("2 January 2006"),
	})
	if err != nil {
		return nil, err
	}

	pdf, err := printHTMLToPDF(html)
	if err != nil {
		return nil, err
	}
	log.Printf("✅ Certificate rendered for user %s activity %s (%d bytes)", userID, activityID.Hex(), len(pdf))
	return pdf, nil
}

func findUser(ctx context.Context, userID string) (*models.User, error) {
	objID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, errors.New("invalid user ID")
	}
	var user models.User
	if err := database.UserCollection.FindOne(ctx, bson.M{"_id": objID}).Decode(&user); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.New("user not found")
		}
		return nil, err
	}
	return &user, nil
}

// formatDateRange ช่วงวันที่บนเกียรติบัตร: วันเดียวแสดงวันเดียว หลายวันแสดง "เริ่ม - จบ"
func formatDateRange(activity *models.Activity) string {
	if activity.IsMultiDay() {
		return activity.Date + " - " + *activity.EndDate
	}
	return activity.Date
}
