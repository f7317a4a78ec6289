package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/internhub/internhub/internal/ctxkeys"
	"github.com/internhub/internhub/internal/service"
)

type applicationHandler struct {
	applicationService *service.ApplicationService
}

func NewApplicationHandler(applicationService *service.ApplicationService) *applicationHandler {
	return &applicationHandler{applicationService: applicationService}
}

func (h *applicationHandler) Apply(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var input service.ApplyInput
	err := decodeJSON(w, r, &input)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	_, err = h.applicationService.Apply(user.ID, input)
	if err != nil {
		if errors.Is(err, service.ErrAlreadyApplied) {
			respondError(w, http.StatusConflict, "You have already applied for this internship.")
			return
		}
		slog.Error("failed to submit application", "error", err, "user_id", user.ID)
		respondError(w, http.StatusInternalServerError, "An error occurred. Please try again.")
		return
	}

	respondJSON(w, http.StatusCreated, routingResponse{
		Message:  "Application submitted successfully!",
		Redirect: "/application-thank-you",
	})
}

func (h *applicationHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	items, err := h.applicationService.ListMine(user.ID)
	if err != nil {
		slog.Error("failed to list applications", "error", err, "user_id", user.ID)
		respondError(w, http.StatusInternalServerError, "An error occurred. Please try again.")
		return
	}

	respondJSON(w, http.StatusOK, items)
}
