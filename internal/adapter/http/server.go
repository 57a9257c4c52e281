package adapthttp

import (
	"log/slog"
	"net/http"

	"weighttrend/internal/app"
)

// Server is the driving HTTP adapter that routes requests to application
// services.
type Server struct {
	months *app.MonthService
	log    *slog.Logger
}

// New creates a Server wired to the given application service.
func New(ms *app.MonthService, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{months: ms, log: logger.With("component", "http")}
}

// Handler returns the root http.Handler for the application.
func (s *Server) Handler() http.Handler {
	api := http.NewServeMux()
	api.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})

	api.HandleFunc("/months/{month}", s.handleMonth)
	api.HandleFunc("/days/{date}", s.handleDay)

	root := http.NewServeMux()
	root.Handle("/api/", http.StripPrefix("/api", api))

	return s.loggingMiddleware(withNoCache(root))
}
