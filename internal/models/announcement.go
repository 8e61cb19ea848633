package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Announcement represents an announcement document in the MongoDB database.
// StartsAt has no omitempty so an absent start is stored as an explicit
// null, which the active-window query matches with {"starts_at": null}.
type Announcement struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Message   string             `bson:"message" json:"message"`
	StartsAt  *time.Time         `bson:"starts_at" json:"starts_at"`
	ExpiresAt *time.Time         `bson:"expires_at" json:"expires_at"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}

// AnnouncementResponse is the wire form of an announcement: the id as a hex
// string and every instant as an ISO-8601 UTC string, or null when absent.
type AnnouncementResponse struct {
	ID        string  `json:"id"`
	Message   string  `json:"message"`
	StartsAt  *string `json:"starts_at"`
	ExpiresAt *string `json:"expires_at"`
	CreatedAt *string `json:"created_at"`
	UpdatedAt *string `json:"updated_at"`
}

func (a *Announcement) Response() AnnouncementResponse {
	return AnnouncementResponse{
		ID:        a.ID.Hex(),
		Message:   a.Message,
		StartsAt:  isoUTC(a.StartsAt),
		ExpiresAt: isoUTC(a.ExpiresAt),
		CreatedAt: isoUTC(&a.CreatedAt),
		UpdatedAt: isoUTC(&a.UpdatedAt),
	}
}

func isoUTC(t *time.Time) *string {
	if t == nil || t.IsZero() {
		return nil
	}
	s := t.UTC().Format(time.RFC3339Nano)
	return &s
}
