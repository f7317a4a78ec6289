package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/internhub/internhub/internal/ctxkeys"
	"github.com/internhub/internhub/internal/service"
)

type shortlistHandler struct {
	shortlistService *service.ShortlistService
}

func NewShortlistHandler(shortlistService *service.ShortlistService) *shortlistHandler {
	return &shortlistHandler{shortlistService: shortlistService}
}

func (h *shortlistHandler) List(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	ids, err := h.shortlistService.List(user.ID)
	if err != nil {
		slog.Error("failed to list shortlist", "error", err, "user_id", user.ID)
		respondError(w, http.StatusInternalServerError, "An error occurred. Please try again.")
		return
	}

	respondJSON(w, http.StatusOK, map[string][]int64{"internship_ids": ids})
}

func (h *shortlistHandler) Add(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	internshipID, err := internshipIDFromPath(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid internship id")
		return
	}

	err = h.shortlistService.Add(user.ID, internshipID)
	if err != nil {
		slog.Error("failed to add to shortlist", "error", err, "user_id", user.ID, "internship_id", internshipID)
		respondError(w, http.StatusInternalServerError, "An error occurred. Please try again.")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Internship shortlisted"})
}

func (h *shortlistHandler) Remove(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	internshipID, err := internshipIDFromPath(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid internship id")
		return
	}

	err = h.shortlistService.Remove(user.ID, internshipID)
	if err != nil {
		slog.Error("failed to remove from shortlist", "error", err, "user_id", user.ID, "internship_id", internshipID)
		respondError(w, http.StatusInternalServerError, "An error occurred. Please try again.")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Internship removed from shortlist"})
}

func internshipIDFromPath(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.PathValue("internshipID"), 10, 64)
}
