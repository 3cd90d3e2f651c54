package httpapi

import (
	"context"
	"net/http"

	"github.com/riskibarqy/scoreboard/internal/domain/player"
	"github.com/riskibarqy/scoreboard/internal/platform/logging"
)

// PlayerService is the scoreboard use case the handler drives.
type PlayerService interface {
	List(ctx context.Context) ([]player.Player, error)
	Add(ctx context.Context, p player.Player) error
}

type Handler struct {
	playerService PlayerService
	logger        *logging.Logger
}

func NewHandler(playerService PlayerService, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		playerService: playerService,
		logger:        logger,
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeJSON(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}
