package httpapi

import (
	"net/http"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/scoreboard/internal/domain/player"
	"github.com/riskibarqy/scoreboard/internal/usecase"
)

type playerDTO struct {
	Name  string `json:"name"`
	Score int64  `json:"score"`
}

func (h *Handler) ListScores(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListScores")
	defer span.End()

	players, err := h.playerService.List(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list scoreboard failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]playerDTO, 0, len(players))
	for _, p := range players {
		items = append(items, playerDTO{
			Name:  p.Name,
			Score: p.Score,
		})
	}

	writeJSON(ctx, w, http.StatusOK, items)
}

func (h *Handler) AddScore(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AddScore")
	defer span.End()

	var req playerDTO
	if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "decode add score payload failed", "error", err)
		writeError(ctx, w, crerr.Wrapf(usecase.ErrInvalidInput, "invalid JSON payload: %v", err))
		return
	}

	if err := h.playerService.Add(ctx, player.Player{
		Name:  req.Name,
		Score: req.Score,
	}); err != nil {
		h.logger.ErrorContext(ctx, "add score failed", "name", req.Name, "score", req.Score, "error", err)
		writeError(ctx, w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
