package http

import (
	"net/http"

	"github.com/wagebook/wagebook-backend-go/internal/config"
	"github.com/wagebook/wagebook-backend-go/internal/handler/http/response"
)

type StatusHandler interface {
	Status(w http.ResponseWriter, r *http.Request)
}

type statusHandlerImpl struct {
	cfg *config.Config
}

func NewStatusHandler(cfg *config.Config) StatusHandler {
	return &statusHandlerImpl{cfg: cfg}
}

type statusResponse struct {
	Environment      string `json:"environment"`
	Version          string `json:"version"`
	APIKeyConfigured bool   `json:"api_key_configured"`
}

// Status implements StatusHandler. The key itself is never echoed back,
// only whether one is configured.
func (h *statusHandlerImpl) Status(w http.ResponseWriter, r *http.Request) {
	response.Success(w, statusResponse{
		Environment:      h.cfg.App.Env,
		Version:          h.cfg.App.Version,
		APIKeyConfigured: h.cfg.Status.APIKey != "",
	})
}
