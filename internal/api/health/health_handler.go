package health

import (
	"net/http"
	"time"

	"github.com/wanderplan/wanderplan/config"
	"github.com/wanderplan/wanderplan/internal/api"
)

// Handler reports process health and whether the required provider
// credentials are configured.
type Handler struct {
	cfg *config.Config
}

func NewHandler(cfg *config.Config) *Handler {
	return &Handler{cfg: cfg}
}

func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	api.WriteJSONResponse(w, r, http.StatusOK, map[string]interface{}{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"services": map[string]bool{
			"gemini":   h.cfg.GeminiAPIKey != "",
			"unsplash": h.cfg.UnsplashAPIKey != "",
		},
	})
}
