package validation

import (
	"github.com/riskibarqy/matchbook/internal/domain/match"
	"github.com/riskibarqy/matchbook/internal/domain/nextmatch"
	"github.com/riskibarqy/matchbook/internal/domain/teamstats"
)

type matchPayload struct {
	Date     string `validate:"required,isodate"`
	Opponent string `validate:"required,max=100"`
	Score    string `validate:"required,scoreline"`
	Scorers  string `validate:"max=500"`
}

var (
	matchOrder = []Reason{MissingField, InvalidOpponent, InvalidScorers, InvalidDate, InvalidScore}
	matchRules = map[string]Reason{
		"Date":     InvalidDate,
		"Opponent": InvalidOpponent,
		"Score":    InvalidScore,
		"Scorers":  InvalidScorers,
	}
)

// ValidateMatch checks a match payload and returns the draft to store.
// Checks are ranked: missing fields, opponent, scorers, date, score.
func ValidateMatch(f Fields) (match.Draft, error) {
	c := newCollector(matchOrder, matchRules)
	var p matchPayload
	var state fieldState

	if p.Date, state = f.text("date"); state == fieldOther {
		c.wrongType("Date")
	}
	if p.Opponent, state = f.text("opponent"); state == fieldOther {
		c.wrongType("Opponent")
	}
	if p.Score, state = f.text("score"); state == fieldOther {
		c.wrongType("Score")
	}
	if p.Scorers, state = f.text("scorers"); state == fieldOther {
		c.wrongType("Scorers")
	}

	if err := c.check(p); err != nil {
		return match.Draft{}, err
	}
	if err := c.result(); err != nil {
		return match.Draft{}, err
	}

	draft := match.Draft{
		Date:     p.Date,
		Opponent: p.Opponent,
		Score:    p.Score,
	}
	if p.Scorers != "" {
		scorers := p.Scorers
		draft.Scorers = &scorers
	}
	return draft, nil
}

type nextMatchPayload struct {
	Date     string `validate:"required,isodate"`
	Opponent string `validate:"required"`
	Time     string `validate:"required,clock"`
}

var (
	nextMatchOrder = []Reason{MissingField, InvalidOpponent, InvalidDate, InvalidTime}
	nextMatchRules = map[string]Reason{
		"Date":     InvalidDate,
		"Opponent": InvalidOpponent,
		"Time":     InvalidTime,
	}
)

// ValidateNextMatch checks a next-match payload.
func ValidateNextMatch(f Fields) (nextmatch.NextMatch, error) {
	c := newCollector(nextMatchOrder, nextMatchRules)
	var p nextMatchPayload
	var state fieldState

	if p.Date, state = f.text("date"); state == fieldOther {
		c.wrongType("Date")
	}
	if p.Opponent, state = f.text("opponent"); state == fieldOther {
		c.wrongType("Opponent")
	}
	if p.Time, state = f.text("time"); state == fieldOther {
		c.wrongType("Time")
	}

	if err := c.check(p); err != nil {
		return nextmatch.NextMatch{}, err
	}
	if err := c.result(); err != nil {
		return nextmatch.NextMatch{}, err
	}

	return nextmatch.NextMatch{Date: p.Date, Opponent: p.Opponent, Time: p.Time}, nil
}

type statsPayload struct {
	Wins         int64 `validate:"gte=0"`
	Draws        int64 `validate:"gte=0"`
	Losses       int64 `validate:"gte=0"`
	Goals        int64 `validate:"gte=0"`
	GoalsAgainst int64 `validate:"gte=0"`
}

var statsKeys = []string{"wins", "draws", "losses", "goals", "goalsAgainst"}

// ValidateStats requires all five counters to be integers before any sign check.
func ValidateStats(f Fields) (teamstats.Snapshot, error) {
	values := make([]int64, len(statsKeys))
	for i, key := range statsKeys {
		n, ok := f.integer(key)
		if !ok {
			return teamstats.Snapshot{}, &Violation{Reason: NonIntegerStat}
		}
		values[i] = n
	}

	p := statsPayload{
		Wins:         values[0],
		Draws:        values[1],
		Losses:       values[2],
		Goals:        values[3],
		GoalsAgainst: values[4],
	}
	c := newCollector([]Reason{NegativeStat}, map[string]Reason{
		"Wins":         NegativeStat,
		"Draws":        NegativeStat,
		"Losses":       NegativeStat,
		"Goals":        NegativeStat,
		"GoalsAgainst": NegativeStat,
	})
	if err := c.check(p); err != nil {
		return teamstats.Snapshot{}, err
	}
	if err := c.result(); err != nil {
		return teamstats.Snapshot{}, err
	}

	return teamstats.Snapshot{
		Wins:         p.Wins,
		Draws:        p.Draws,
		Losses:       p.Losses,
		Goals:        p.Goals,
		GoalsAgainst: p.GoalsAgainst,
	}, nil
}
