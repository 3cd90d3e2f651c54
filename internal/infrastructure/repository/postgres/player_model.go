package postgres

type playerTableModel struct {
	Name  string `db:"name"`
	Score int64  `db:"score"`
}
