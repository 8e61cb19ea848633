package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/mergington/highschool-gobackend/internal/services"
)

// AnnouncementHandler handles HTTP requests for announcements
type AnnouncementHandler struct {
	announcements *services.AnnouncementService
	teachers      *services.TeacherService
}

// NewAnnouncementHandler creates a new AnnouncementHandler
func NewAnnouncementHandler(announcements *services.AnnouncementService, teachers *services.TeacherService) *AnnouncementHandler {
	return &AnnouncementHandler{announcements: announcements, teachers: teachers}
}

// GetActiveAnnouncements handles GET /announcements. Public, no auth.
func (h *AnnouncementHandler) GetActiveAnnouncements(w http.ResponseWriter, r *http.Request) {
	announcements, err := h.announcements.ActiveAnnouncements(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to retrieve announcements: "+err.Error())
		return
	}

	writeJSON(w, http.StatusOK, announcements)
}

// ListAnnouncements handles GET /announcements/manage
func (h *AnnouncementHandler) ListAnnouncements(w http.ResponseWriter, r *http.Request) {
	if !h.requireSignedIn(w, r) {
		return
	}

	announcements, err := h.announcements.ListAnnouncements(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to retrieve announcements: "+err.Error())
		return
	}

	writeJSON(w, http.StatusOK, announcements)
}

// CreateAnnouncement handles POST /announcements
func (h *AnnouncementHandler) CreateAnnouncement(w http.ResponseWriter, r *http.Request) {
	if !h.requireSignedIn(w, r) {
		return
	}

	created, err := h.announcements.CreateAnnouncement(r.Context(), announcementInput(r))
	if err != nil {
		writeAnnouncementError(w, err, "Failed to create announcement")
		return
	}

	writeJSON(w, http.StatusOK, created)
}

// UpdateAnnouncement handles PUT /announcements/{announcementID}
func (h *AnnouncementHandler) UpdateAnnouncement(w http.ResponseWriter, r *http.Request) {
	if !h.requireSignedIn(w, r) {
		return
	}

	vars := mux.Vars(r)
	updated, err := h.announcements.UpdateAnnouncement(r.Context(), vars["announcementID"], announcementInput(r))
	if err != nil {
		writeAnnouncementError(w, err, "Failed to update announcement")
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

// DeleteAnnouncement handles DELETE /announcements/{announcementID}
func (h *AnnouncementHandler) DeleteAnnouncement(w http.ResponseWriter, r *http.Request) {
	if !h.requireSignedIn(w, r) {
		return
	}

	vars := mux.Vars(r)
	if err := h.announcements.DeleteAnnouncement(r.Context(), vars["announcementID"]); err != nil {
		writeAnnouncementError(w, err, "Failed to delete announcement")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Announcement deleted"})
}

// requireSignedIn resolves the teacher_username query parameter and writes
// the error response itself when the caller is not signed in.
func (h *AnnouncementHandler) requireSignedIn(w http.ResponseWriter, r *http.Request) bool {
	_, err := h.teachers.RequireSignedIn(r.Context(), r.URL.Query().Get("teacher_username"))
	if err == nil {
		return true
	}

	if errors.Is(err, services.ErrAuthRequired) {
		writeError(w, http.StatusUnauthorized, "Authentication required")
	} else {
		writeError(w, http.StatusInternalServerError, "Failed to verify teacher: "+err.Error())
	}
	return false
}

// announcementInput reads the content fields from the query string, with a
// JSON body taking precedence field by field when one is sent.
func announcementInput(r *http.Request) services.AnnouncementInput {
	query := r.URL.Query()
	input := services.AnnouncementInput{
		Message:   query.Get("message"),
		StartsAt:  query.Get("starts_at"),
		ExpiresAt: query.Get("expires_at"),
	}

	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		var body struct {
			Message   *string `json:"message"`
			StartsAt  *string `json:"starts_at"`
			ExpiresAt *string `json:"expires_at"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err == nil {
			if body.Message != nil {
				input.Message = *body.Message
			}
			if body.StartsAt != nil {
				input.StartsAt = *body.StartsAt
			}
			if body.ExpiresAt != nil {
				input.ExpiresAt = *body.ExpiresAt
			}
		}
	}

	return input
}

func writeAnnouncementError(w http.ResponseWriter, err error, internalDetail string) {
	var validationErr *services.ValidationError
	switch {
	case errors.As(err, &validationErr):
		writeError(w, http.StatusBadRequest, validationErr.Detail)
	case errors.Is(err, services.ErrNotFound):
		writeError(w, http.StatusNotFound, "Announcement not found")
	case errors.Is(err, services.ErrReadBackFailed):
		writeError(w, http.StatusInternalServerError, internalDetail)
	default:
		writeError(w, http.StatusInternalServerError, internalDetail+": "+err.Error())
	}
}
