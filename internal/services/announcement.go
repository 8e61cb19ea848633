package services

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mergington/highschool-gobackend/internal/models"
)

// maxMessageLength is the limit on a sanitized message, counted in runes.
const maxMessageLength = 500

type AnnouncementService struct {
	collection *mongo.Collection
}

func NewAnnouncementService(db *mongo.Database) *AnnouncementService {
	return &AnnouncementService{collection: db.Collection("announcements")}
}

// AnnouncementInput carries the client-supplied fields for create and
// update. The timestamps are raw strings and are validated here.
type AnnouncementInput struct {
	Message   string
	StartsAt  string
	ExpiresAt string
}

type validatedAnnouncement struct {
	message   string
	startsAt  *time.Time
	expiresAt *time.Time
}

func validateInput(input AnnouncementInput) (*validatedAnnouncement, error) {
	message := strings.TrimSpace(input.Message)
	if message == "" {
		return nil, &ValidationError{Detail: "Message is required"}
	}
	if utf8.RuneCountInString(message) > maxMessageLength {
		return nil, &ValidationError{Detail: "Message is too long"}
	}

	startsAt, err := parseUTCTimestamp(input.StartsAt, "starts_at", false)
	if err != nil {
		return nil, err
	}
	expiresAt, err := parseUTCTimestamp(input.ExpiresAt, "expires_at", true)
	if err != nil {
		return nil, err
	}

	if startsAt != nil && !startsAt.Before(*expiresAt) {
		return nil, &ValidationError{Detail: "Expiration must be after start date"}
	}

	return &validatedAnnouncement{
		message:   message,
		startsAt:  startsAt,
		expiresAt: expiresAt,
	}, nil
}

// ActiveAnnouncements returns every announcement currently in its display
// window, soonest to expire first.
func (s *AnnouncementService) ActiveAnnouncements(ctx context.Context) ([]models.AnnouncementResponse, error) {
	now := time.Now().UTC()
	filter := bson.M{
		"expires_at": bson.M{"$gt": now},
		"$or": bson.A{
			bson.M{"starts_at": nil},
			bson.M{"starts_at": bson.M{"$lte": now}},
		},
	}

	cur, err := s.collection.Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "expires_at", Value: 1}}))
	if err != nil {
		return nil, err
	}

	var announcements []models.Announcement
	defer cur.Close(ctx)

	if err := cur.All(ctx, &announcements); err != nil {
		return nil, err
	}

	return serialize(announcements), nil
}

// ListAnnouncements returns every announcement for the management view,
// newest first.
func (s *AnnouncementService) ListAnnouncements(ctx context.Context) ([]models.AnnouncementResponse, error) {
	cur, err := s.collection.Find(ctx, bson.D{},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}

	var announcements []models.Announcement
	defer cur.Close(ctx)

	if err := cur.All(ctx, &announcements); err != nil {
		return nil, err
	}

	return serialize(announcements), nil
}

func (s *AnnouncementService) CreateAnnouncement(ctx context.Context, input AnnouncementInput) (*models.AnnouncementResponse, error) {
	validated, err := validateInput(input)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	announcement := models.Announcement{
		ID:        primitive.NewObjectID(),
		Message:   validated.message,
		StartsAt:  validated.startsAt,
		ExpiresAt: validated.expiresAt,
		CreatedAt: now,
		UpdatedAt: now,
	}

	result, err := s.collection.InsertOne(ctx, announcement)
	if err != nil {
		return nil, err
	}

	var created models.Announcement
	if err := s.collection.FindOne(ctx, bson.M{"_id": result.InsertedID}).Decode(&created); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrReadBackFailed
		}
		return nil, err
	}

	response := created.Response()
	return &response, nil
}

// UpdateAnnouncement replaces the content fields of an existing
// announcement. CreatedAt is never touched.
func (s *AnnouncementService) UpdateAnnouncement(ctx context.Context, id string, input AnnouncementInput) (*models.AnnouncementResponse, error) {
	validated, err := validateInput(input)
	if err != nil {
		return nil, err
	}

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, &ValidationError{Detail: "Invalid announcement id"}
	}

	update := bson.M{"$set": bson.M{
		"message":    validated.message,
		"starts_at":  validated.startsAt,
		"expires_at": validated.expiresAt,
		"updated_at": time.Now().UTC(),
	}}

	result, err := s.collection.UpdateOne(ctx, bson.M{"_id": objID}, update)
	if err != nil {
		return nil, err
	}
	if result.MatchedCount == 0 {
		return nil, ErrNotFound
	}

	var updated models.Announcement
	if err := s.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&updated); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrReadBackFailed
		}
		return nil, err
	}

	response := updated.Response()
	return &response, nil
}

func (s *AnnouncementService) DeleteAnnouncement(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return &ValidationError{Detail: "Invalid announcement id"}
	}

	result, err := s.collection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}

	return nil
}

func serialize(announcements []models.Announcement) []models.AnnouncementResponse {
	responses := make([]models.AnnouncementResponse, 0, len(announcements))
	for i := range announcements {
		responses = append(responses, announcements[i].Response())
	}
	return responses
}
