package routes

import (
	"net/http"

	"github.com/internhub/internhub/internal/app"
	"github.com/internhub/internhub/internal/handler"
	"github.com/internhub/internhub/internal/middleware"
)

func SetupRoutes(app *app.App) http.Handler {
	// Handlers
	auth := handler.NewAuthHandler(app.AuthService)
	profile := handler.NewProfileHandler(app.ProfileService)
	application := handler.NewApplicationHandler(app.ApplicationService)
	shortlist := handler.NewShortlistHandler(app.ShortlistService)

	mux := http.NewServeMux()

	// Auth (rate limited). Signup and login are open to authenticated users
	// too: logging in again simply rebinds the session.
	rateLimiter := middleware.RateLimitAuth()
	mux.HandleFunc("POST /auth/signup", rateLimiter(auth.Signup))
	mux.HandleFunc("POST /auth/login", rateLimiter(auth.Login))
	mux.HandleFunc("POST /auth/logout", auth.Logout)

	// Profile
	mux.HandleFunc("GET /app/profile/summary", middleware.RequireAuth(profile.Summary))
	mux.HandleFunc("GET /app/profile", middleware.RequireAuth(profile.FullProfile))
	mux.HandleFunc("PUT /app/profile", middleware.RequireAuth(profile.Submit))

	// Applications
	mux.HandleFunc("POST /app/applications", middleware.RequireAuth(application.Apply))
	mux.HandleFunc("GET /app/applications", middleware.RequireAuth(application.ListMine))

	// Shortlist
	mux.HandleFunc("GET /app/shortlist", middleware.RequireAuth(shortlist.List))
	mux.HandleFunc("POST /app/shortlist/{internshipID}", middleware.RequireAuth(shortlist.Add))
	mux.HandleFunc("DELETE /app/shortlist/{internshipID}", middleware.RequireAuth(shortlist.Remove))

	// Global middleware - executed in order (top to bottom)
	return middleware.Chain(
		mux,
		middleware.RequestLogging,
		middleware.AuthMiddleware(app.AuthService, app.UserService),
	)
}
