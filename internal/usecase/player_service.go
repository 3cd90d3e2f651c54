package usecase

import (
	"context"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/scoreboard/internal/domain/player"
	"github.com/riskibarqy/scoreboard/internal/platform/logging"
)

type PlayerService struct {
	playerRepo player.Repository
	logger     *logging.Logger
}

func NewPlayerService(playerRepo player.Repository, logger *logging.Logger) *PlayerService {
	if logger == nil {
		logger = logging.Default()
	}

	return &PlayerService{
		playerRepo: playerRepo,
		logger:     logger,
	}
}

// List returns the scoreboard: the top ScoreboardSize players by score.
func (s *PlayerService) List(ctx context.Context) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.List")
	defer span.End()

	players, err := s.playerRepo.Scoreboard(ctx, player.ScoreboardSize)
	if err != nil {
		return nil, crerr.Mark(crerr.Wrap(err, "list scoreboard"), ErrStorage)
	}

	return players, nil
}

// Add appends one score entry inside its own transaction.
func (s *PlayerService) Add(ctx context.Context, p player.Player) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Add")
	defer span.End()

	tx, err := s.playerRepo.BeginTx(ctx)
	if err != nil {
		return crerr.Mark(crerr.Wrap(err, "add player"), ErrStorage)
	}
	defer func() {
		if rbErr := tx.Rollback(); rbErr != nil {
			s.logger.WarnContext(ctx, "rollback add player failed", "error", rbErr)
		}
	}()

	if err := tx.Insert(ctx, p); err != nil {
		return crerr.Mark(crerr.Wrap(err, "add player"), ErrStorage)
	}
	if err := tx.Commit(); err != nil {
		return crerr.Mark(crerr.Wrap(err, "add player"), ErrStorage)
	}

	return nil
}
