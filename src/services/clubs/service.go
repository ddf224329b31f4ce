package clubs

import (
	"Backend-ClubHub/src/database"
	"Backend-ClubHub/src/models"
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateClub สร้างชมรมใหม่
func CreateClub(club *models.Club) (*models.Club, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	club.ID = primitive.NewObjectID()
	club.CreatedAt = time.Now()

	if _, err := database.ClubCollection.InsertOne(ctx, club); err != nil {
		return nil, err
	}
	return club, nil
}

// GetAllClubs ดึงชมรมทั้งหมดพร้อม pagination
func GetAllClubs(params models.PaginationParams) ([]models.Club, int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	filter := bson.M{}
	if params.Search != "" {
		filter["name"] = bson.M{"$regex": params.Search, "$options": "i"}
	}

	total, err := database.ClubCollection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	order := 1
	if params.Order == "desc" {
		order = -1
	}
	cursor, err := database.ClubCollection.Find(ctx, filter, options.Find().
		SetSort(bson.D{{Key: "name", Value: order}}).
		SetSkip(params.GetSkip()).
		SetLimit(int64(params.Limit)))
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var clubs []models.Club
	if err := cursor.All(ctx, &clubs); err != nil {
		return nil, 0, err
	}
	return clubs, total, nil
}

// ✅ 1. Student ขอเข้าเป็นสมาชิกชมรม (เริ่มที่ pending เสมอ)
func RequestMembership(clubID, userID primitive.ObjectID) (*models.Membership, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var club models.Club
	if err := database.ClubCollection.FindOne(ctx, bson.M{"_id": clubID}).Decode(&club); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.New("club not found")
		}
		return nil, err
	}

	// กันยื่นซ้ำระหว่างที่ยัง pending/approved อยู่
	count, err := database.MembershipCollection.CountDocuments(ctx, bson.M{
		"clubId": clubID,
		"userId": userID,
		"approvalStatus": bson.M{
			"$in": bson.A{models.ApprovalPending, models.ApprovalApproved},
		},
	})
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, errors.New("membership request already exists")
	}

	membership := models.Membership{
		ID:             primitive.NewObjectID(),
		ClubID:         clubID,
		UserID:         userID,
		Role:           "member",
		ApprovalStatus: models.ApprovalPending,
		RequestedAt:    time.Now(),
	}
	if _, err := database.MembershipCollection.InsertOne(ctx, membership); err != nil {
		return nil, err
	}
	return &membership, nil
}

// ✅ 2. Officer ตัดสินคำขอสมาชิก (approve/reject พร้อมเหตุผล)
func DecideMembership(membershipID primitive.ObjectID, approve bool, reason, actor string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var membership models.Membership
	if err := database.MembershipCollection.FindOne(ctx, bson.M{"_id": membershipID}).Decode(&membership); err != nil {
		if err == mongo.ErrNoDocuments {
			return errors.New("membership request not found")
		}
		return err
	}
	if membership.ApprovalStatus != models.ApprovalPending {
		return errors.New("membership request already decided")
	}

	now := time.Now()
	set := bson.M{
		"decidedAt": now,
		"decidedBy": actor,
	}
	if approve {
		set["approvalStatus"] = models.ApprovalApproved
	} else {
		set["approvalStatus"] = models.ApprovalRejected
		set["rejectionReason"] = reason
	}

	_, err := database.MembershipCollection.UpdateOne(ctx,
		bson.M{"_id": membershipID}, bson.M{"$set": set})
	return err
}

// GetClubMembers สมาชิกที่อนุมัติแล้วของชมรม
func GetClubMembers(clubID primitive.ObjectID) ([]models.Membership, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := database.MembershipCollection.Find(ctx, bson.M{
		"clubId":         clubID,
		"approvalStatus": models.ApprovalApproved,
	})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var members []models.Membership
	if err := cursor.All(ctx, &members); err != nil {
		return nil, err
	}
	return members, nil
}
