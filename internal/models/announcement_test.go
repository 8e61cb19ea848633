package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestAnnouncementResponse(t *testing.T) {
	id := primitive.NewObjectID()
	starts := time.Date(2025, 6, 1, 8, 30, 0, 0, time.FixedZone("CEST", 2*3600))
	expires := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, 5, 20, 12, 0, 0, 0, time.UTC)

	announcement := Announcement{
		ID:        id,
		Message:   "Sports day moved to the gym",
		StartsAt:  &starts,
		ExpiresAt: &expires,
		CreatedAt: now,
		UpdatedAt: now,
	}

	resp := announcement.Response()
	assert.Equal(t, id.Hex(), resp.ID)
	assert.Equal(t, "Sports day moved to the gym", resp.Message)
	// instants come out in UTC regardless of how they were stored
	assert.Equal(t, "2025-06-01T06:30:00Z", *resp.StartsAt)
	assert.Equal(t, "2025-06-15T00:00:00Z", *resp.ExpiresAt)
	assert.Equal(t, "2025-05-20T12:00:00Z", *resp.CreatedAt)
	assert.Equal(t, "2025-05-20T12:00:00Z", *resp.UpdatedAt)
}

func TestAnnouncementResponseAbsentInstants(t *testing.T) {
	announcement := Announcement{
		ID:      primitive.NewObjectID(),
		Message: "no window yet",
	}

	resp := announcement.Response()
	assert.Nil(t, resp.StartsAt)
	assert.Nil(t, resp.ExpiresAt)
	assert.Nil(t, resp.CreatedAt)
	assert.Nil(t, resp.UpdatedAt)
}
