package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/internhub/internhub/internal/ctxkeys"
	"github.com/internhub/internhub/internal/repository"
	"github.com/internhub/internhub/internal/service"
)

type profileHandler struct {
	profileService *service.ProfileService
}

func NewProfileHandler(profileService *service.ProfileService) *profileHandler {
	return &profileHandler{profileService: profileService}
}

func (h *profileHandler) Summary(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	summary, err := h.profileService.Summary(user.ID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			respondError(w, http.StatusNotFound, "User not found")
			return
		}
		slog.Error("failed to load profile summary", "error", err, "user_id", user.ID)
		respondError(w, http.StatusInternalServerError, "An error occurred. Please try again.")
		return
	}

	respondJSON(w, http.StatusOK, summary)
}

func (h *profileHandler) FullProfile(w http.ResponseWriter, r *http.Request) {
	sessionUser := ctxkeys.User(r.Context())

	user, err := h.profileService.FullProfile(sessionUser.ID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			respondError(w, http.StatusNotFound, "User not found")
			return
		}
		slog.Error("failed to load profile", "error", err, "user_id", sessionUser.ID)
		respondError(w, http.StatusInternalServerError, "An error occurred. Please try again.")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"fullName":      user.FullName,
		"email":         user.Email,
		"dob":           user.DOB,
		"phone":         user.ContactPhone(),
		"state":         user.State,
		"city":          user.City,
		"linkedin":      user.LinkedIn,
		"github":        user.GitHub,
		"about":         user.About,
		"college":       user.College,
		"qualification": user.Qualification,
		"stream":        user.Stream,
		"year":          user.Year,
		"location":      user.Location,
		"skills":        user.Skills,
		"interests":     user.Interests,
		"photo":         user.Photo,
	})
}

func (h *profileHandler) Submit(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var input service.ProfileInput
	err := decodeJSON(w, r, &input)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	err = h.profileService.Submit(user.ID, input)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrUserNotFound):
			respondError(w, http.StatusNotFound, "User not found")
		case errors.Is(err, service.ErrPersistence):
			slog.Error("profile submission failed", "error", err, "user_id", user.ID)
			respondError(w, http.StatusInternalServerError, "An error occurred: "+err.Error())
		default:
			respondError(w, http.StatusBadRequest, err.Error())
		}
		return
	}

	respondJSON(w, http.StatusOK, routingResponse{
		Message:  "Profile saved",
		Redirect: "/recommendations",
	})
}
