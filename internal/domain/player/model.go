package player

// ScoreboardSize is how many entries the scoreboard returns.
const ScoreboardSize = 20

// Player is one submitted score entry. Names are not unique: every
// submission is its own row.
type Player struct {
	Name  string
	Score int64
}
