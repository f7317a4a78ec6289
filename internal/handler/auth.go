package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/internhub/internhub/internal/model"
	"github.com/internhub/internhub/internal/service"
)

type authHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *authHandler {
	return &authHandler{authService: authService}
}

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Mobile   string `json:"mobile"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// routingResponse tells the client which page to load next
type routingResponse struct {
	Message  string `json:"message"`
	Redirect string `json:"redirect"`
}

func (h *authHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	err := decodeJSON(w, r, &req)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.authService.Register(req.Name, req.Email, req.Password, req.Mobile)
	if err != nil {
		if errors.Is(err, service.ErrEmailAlreadyExists) {
			respondError(w, http.StatusConflict, "Email address already exists")
			return
		}
		if errors.Is(err, service.ErrInvalidEmail) {
			respondError(w, http.StatusBadRequest, "Please provide a valid email address")
			return
		}
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	err = h.startSession(w, user)
	if err != nil {
		slog.Error("failed to start session after signup", "error", err, "user_id", user.ID)
		respondError(w, http.StatusInternalServerError, "An error occurred. Please try again.")
		return
	}

	respondJSON(w, http.StatusCreated, routingResponse{
		Message:  "Signup successful",
		Redirect: "/dashboard",
	})
}

func (h *authHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	err := decodeJSON(w, r, &req)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			respondError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		slog.Error("login failed", "error", err)
		respondError(w, http.StatusInternalServerError, "An error occurred. Please try again.")
		return
	}

	err = h.startSession(w, user)
	if err != nil {
		slog.Error("failed to start session after login", "error", err, "user_id", user.ID)
		respondError(w, http.StatusInternalServerError, "An error occurred. Please try again.")
		return
	}

	// Users with college info go straight to recommendations, everyone else
	// completes their profile first
	redirect := "/dashboard"
	if user.HasCollege() {
		redirect = "/recommendations"
	}

	respondJSON(w, http.StatusOK, routingResponse{
		Message:  "Login successful",
		Redirect: redirect,
	})
}

func (h *authHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.authService.ClearJWTCookie(w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *authHandler) startSession(w http.ResponseWriter, user *model.User) error {
	token, err := h.authService.GenerateJWT(user)
	if err != nil {
		return err
	}

	h.authService.SetJWTCookie(w, token, time.Now().Add(h.authService.JWTExpiry()))
	return nil
}
