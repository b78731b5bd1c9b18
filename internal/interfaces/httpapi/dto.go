package httpapi

import (
	"time"

	"github.com/riskibarqy/matchbook/internal/domain/match"
	"github.com/riskibarqy/matchbook/internal/domain/nextmatch"
	"github.com/riskibarqy/matchbook/internal/domain/teamstats"
)

type matchDTO struct {
	ID        int64     `json:"id"`
	Date      string    `json:"date"`
	Opponent  string    `json:"opponent"`
	Score     string    `json:"score"`
	Scorers   *string   `json:"scorers"`
	CreatedAt time.Time `json:"created_at"`
}

// nextMatchDTO always reports id 1, the only row the store holds.
type nextMatchDTO struct {
	ID        int64     `json:"id"`
	Date      string    `json:"date"`
	Opponent  string    `json:"opponent"`
	Time      string    `json:"time"`
	CreatedAt time.Time `json:"created_at"`
}

// statsDTO omits id and created_at for the synthesized zero snapshot.
type statsDTO struct {
	ID           int64      `json:"id,omitempty"`
	Wins         int64      `json:"wins"`
	Draws        int64      `json:"draws"`
	Losses       int64      `json:"losses"`
	Goals        int64      `json:"goals"`
	GoalsAgainst int64      `json:"goalsAgainst"`
	CreatedAt    *time.Time `json:"created_at,omitempty"`
}

func toMatchDTOs(items []match.Match) []matchDTO {
	out := make([]matchDTO, 0, len(items))
	for _, m := range items {
		out = append(out, matchDTO{
			ID:        m.ID,
			Date:      m.Date,
			Opponent:  m.Opponent,
			Score:     m.Score,
			Scorers:   m.Scorers,
			CreatedAt: m.CreatedAt,
		})
	}
	return out
}

func toNextMatchDTO(n nextmatch.NextMatch) nextMatchDTO {
	return nextMatchDTO{
		ID:        1,
		Date:      n.Date,
		Opponent:  n.Opponent,
		Time:      n.Time,
		CreatedAt: n.CreatedAt,
	}
}

func toStatsDTO(s teamstats.Snapshot) statsDTO {
	out := statsDTO{
		ID:           s.ID,
		Wins:         s.Wins,
		Draws:        s.Draws,
		Losses:       s.Losses,
		Goals:        s.Goals,
		GoalsAgainst: s.GoalsAgainst,
	}
	if !s.CreatedAt.IsZero() {
		createdAt := s.CreatedAt
		out.CreatedAt = &createdAt
	}
	return out
}
