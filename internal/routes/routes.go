package routes

import (
	"net/http"

	"github.com/templui/notebook/internal/app"
	"github.com/templui/notebook/internal/handler"
	"github.com/templui/notebook/internal/middleware"
	"github.com/templui/notebook/internal/storage"
)

func SetupRoutes(app *app.App) http.Handler {
	// Handlers
	files := handler.NewFileHandler(app.FileService, app.Cfg.MaxUploadMemory)
	events := handler.NewEventHandler(app.EventService)
	profile := handler.NewProfileHandler(app.ProfileService)
	health := handler.NewHealthHandler(app.DB)
	static := handler.NewStaticHandler(app.Cfg.PublicDir)

	mux := http.NewServeMux()

	// ============================================================================
	// API
	// ============================================================================

	// Files
	mux.HandleFunc("GET /api/files", files.List)
	mux.HandleFunc("POST /api/files", files.Upload)
	mux.HandleFunc("GET /api/files/{id}", files.Show)
	mux.HandleFunc("DELETE /api/files/{id}", files.Delete)

	// Events (diary)
	mux.HandleFunc("GET /api/events", events.List)
	mux.HandleFunc("POST /api/events", events.Create)

	// Profile
	mux.HandleFunc("POST /api/profile", profile.Save)

	// Health
	mux.HandleFunc("GET /healthz", health.Health)

	// ============================================================================
	// STATIC
	// ============================================================================

	// Uploaded files (read-only)
	mux.Handle("GET "+storage.URLPrefix, storage.Handler(app.Storage))

	// Bundled front-end, everything else
	mux.Handle("/", static)

	// Global middleware - executed in order (top to bottom)
	handler := middleware.Chain(
		mux,
		middleware.RequestID, // Must be first (request id is logged by RequestLogging)
		middleware.RequestLogging,
		middleware.CORS(app.Cfg.CORSOrigin),
	)

	return handler
}
