package memory

import (
	"context"
	"sort"
	"sync"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/scoreboard/internal/domain/player"
)

var errTxDone = crerr.New("transaction has already been committed or rolled back")

// PlayerRepository keeps rows in insertion order, the way a heap table
// returns them before ORDER BY is applied.
type PlayerRepository struct {
	mu   sync.RWMutex
	rows []player.Player
}

func NewPlayerRepository(players []player.Player) *PlayerRepository {
	rows := make([]player.Player, 0, len(players))
	rows = append(rows, players...)
	return &PlayerRepository{rows: rows}
}

func (r *PlayerRepository) Scoreboard(_ context.Context, limit int) ([]player.Player, error) {
	r.mu.RLock()
	out := make([]player.Player, 0, len(r.rows))
	out = append(out, r.rows...)
	r.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	if limit >= 0 && len(out) > limit {
		out = out[:limit]
	}

	return out, nil
}

func (r *PlayerRepository) Insert(_ context.Context, p player.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rows = append(r.rows, p)
	return nil
}

func (r *PlayerRepository) BeginTx(_ context.Context) (player.Tx, error) {
	return &playerTx{repo: r}, nil
}

type playerTx struct {
	repo    *PlayerRepository
	pending []player.Player
	done    bool
}

func (t *playerTx) Insert(_ context.Context, p player.Player) error {
	if t.done {
		return errTxDone
	}
	t.pending = append(t.pending, p)
	return nil
}

func (t *playerTx) Commit() error {
	if t.done {
		return errTxDone
	}
	t.done = true

	t.repo.mu.Lock()
	defer t.repo.mu.Unlock()
	t.repo.rows = append(t.repo.rows, t.pending...)
	t.pending = nil

	return nil
}

func (t *playerTx) Rollback() error {
	t.done = true
	t.pending = nil
	return nil
}
