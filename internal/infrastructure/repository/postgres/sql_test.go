package postgres

import (
	"database/sql"
	"fmt"
	"testing"
)

func TestIsTxDone(t *testing.T) {
	t.Run("matches tx done", func(t *testing.T) {
		if !isTxDone(sql.ErrTxDone) {
			t.Fatalf("expected true for sql.ErrTxDone")
		}
	})

	t.Run("matches wrapped tx done", func(t *testing.T) {
		if !isTxDone(fmt.Errorf("rollback: %w", sql.ErrTxDone)) {
			t.Fatalf("expected true for wrapped sql.ErrTxDone")
		}
	})

	t.Run("ignores unrelated error", func(t *testing.T) {
		if isTxDone(fakeErr("pq: relation player does not exist")) {
			t.Fatalf("expected false for unrelated error")
		}
	})
}

type fakeErr string

func (e fakeErr) Error() string { return string(e) }
