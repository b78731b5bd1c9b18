package nextmatch

import "time"

// NextMatch is the upcoming fixture shown on the front page.
type NextMatch struct {
	Date      string
	Opponent  string
	Time      string
	CreatedAt time.Time
}
