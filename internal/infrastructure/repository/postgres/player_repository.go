package postgres

import (
	"context"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/scoreboard/internal/domain/player"
)

const (
	selectScoreboardQuery = `
SELECT name, score
FROM player
ORDER BY score DESC
LIMIT $1`

	insertPlayerQuery = `
INSERT INTO player (name, score)
VALUES ($1, $2)`
)

type PlayerRepository struct {
	db *sqlx.DB
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) Scoreboard(ctx context.Context, limit int) ([]player.Player, error) {
	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, selectScoreboardQuery, limit); err != nil {
		return nil, crerr.Wrapf(err, "select scoreboard limit=%d", limit)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, player.Player{
			Name:  row.Name,
			Score: row.Score,
		})
	}

	return out, nil
}

func (r *PlayerRepository) Insert(ctx context.Context, p player.Player) error {
	return insertPlayer(ctx, r.db, p)
}

func (r *PlayerRepository) BeginTx(ctx context.Context) (player.Tx, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, crerr.Wrap(err, "begin tx insert player")
	}
	return &playerTx{tx: tx}, nil
}

type playerTx struct {
	tx *sqlx.Tx
}

func (t *playerTx) Insert(ctx context.Context, p player.Player) error {
	return insertPlayer(ctx, t.tx, p)
}

func (t *playerTx) Commit() error {
	if err := t.tx.Commit(); err != nil {
		return crerr.Wrap(err, "commit insert player tx")
	}
	return nil
}

func (t *playerTx) Rollback() error {
	err := t.tx.Rollback()
	if err == nil || isTxDone(err) {
		return nil
	}
	return crerr.Wrap(err, "rollback insert player tx")
}

func insertPlayer(ctx context.Context, exec sqlx.ExecerContext, p player.Player) error {
	if _, err := exec.ExecContext(ctx, insertPlayerQuery, p.Name, p.Score); err != nil {
		return crerr.Wrapf(err, "insert player name=%q score=%d", p.Name, p.Score)
	}
	return nil
}
