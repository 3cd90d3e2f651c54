package postgres

import (
	"database/sql"
	"errors"
)

func isTxDone(err error) bool {
	return errors.Is(err, sql.ErrTxDone)
}
