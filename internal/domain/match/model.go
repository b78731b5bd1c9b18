package match

import "time"

// Match is one recorded result.
type Match struct {
	ID        int64
	Date      string
	Opponent  string
	Score     string
	Scorers   *string
	CreatedAt time.Time
}

// Draft holds the replaceable fields of a Match.
type Draft struct {
	Date     string
	Opponent string
	Score    string
	Scorers  *string
}
