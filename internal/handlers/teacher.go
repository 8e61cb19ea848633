package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mergington/highschool-gobackend/internal/services"
)

type TeacherHandler struct {
	service *services.TeacherService
}

func NewTeacherHandler(service *services.TeacherService) *TeacherHandler {
	return &TeacherHandler{service: service}
}

// Login handles POST /auth/login
func (h *TeacherHandler) Login(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	teacher, err := h.service.Login(r.Context(), body.Username, body.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, "Invalid username or password")
		} else {
			writeError(w, http.StatusInternalServerError, "Failed to sign in: "+err.Error())
		}
		return
	}

	writeJSON(w, http.StatusOK, teacher)
}

// CheckSession handles GET /auth/check; the frontend polls it to keep its
// signed-in state in sync.
func (h *TeacherHandler) CheckSession(w http.ResponseWriter, r *http.Request) {
	teacher, err := h.service.RequireSignedIn(r.Context(), r.URL.Query().Get("teacher_username"))
	if err != nil {
		if errors.Is(err, services.ErrAuthRequired) {
			writeError(w, http.StatusUnauthorized, "Authentication required")
		} else {
			writeError(w, http.StatusInternalServerError, "Failed to verify teacher: "+err.Error())
		}
		return
	}

	writeJSON(w, http.StatusOK, teacher)
}
