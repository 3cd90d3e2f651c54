package player

import "context"

// Repository describes score persistence needs from use cases.
type Repository interface {
	// Scoreboard returns up to limit players ordered by score descending.
	Scoreboard(ctx context.Context, limit int) ([]Player, error)
	Insert(ctx context.Context, p Player) error
	BeginTx(ctx context.Context) (Tx, error)
}

// Tx is a write scope over the player store. Rollback after Commit is a no-op.
type Tx interface {
	Insert(ctx context.Context, p Player) error
	Commit() error
	Rollback() error
}
