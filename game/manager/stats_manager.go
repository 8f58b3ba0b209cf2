package manager

import (
	"sort"
	"time"
)

// GameRecord is one finished game. Records only live for the process lifetime.
type GameRecord struct {
	ID        string
	StartTime time.Time
	EndTime   time.Time
	Score     int
}

func (r GameRecord) Duration() time.Duration {
	return r.EndTime.Sub(r.StartTime)
}

// StatsManager keeps in-memory statistics for the current session.
type StatsManager struct {
	games []GameRecord
}

func NewStatsManager() *StatsManager {
	return &StatsManager{
		games: make([]GameRecord, 0),
	}
}

// AddGame records a finished game.
func (s *StatsManager) AddGame(id string, score int, startTime, endTime time.Time) {
	s.games = append(s.games, GameRecord{
		ID:        id,
		StartTime: startTime,
		EndTime:   endTime,
		Score:     score,
	})
}

func (s *StatsManager) GetGamesPlayed() int {
	return len(s.games)
}

func (s *StatsManager) GetLastScore() int {
	if len(s.games) == 0 {
		return 0
	}
	return s.games[len(s.games)-1].Score
}

func (s *StatsManager) GetMaxScore() int {
	best := 0
	for _, g := range s.games {
		if g.Score > best {
			best = g.Score
		}
	}
	return best
}

func (s *StatsManager) GetAverageScore() float64 {
	if len(s.games) == 0 {
		return 0
	}
	total := 0
	for _, g := range s.games {
		total += g.Score
	}
	return float64(total) / float64(len(s.games))
}

func (s *StatsManager) GetMedianScore() float64 {
	if len(s.games) == 0 {
		return 0
	}
	scores := make([]int, len(s.games))
	for i, g := range s.games {
		scores[i] = g.Score
	}
	sort.Ints(scores)
	mid := len(scores) / 2
	if len(scores)%2 == 0 {
		return float64(scores[mid-1]+scores[mid]) / 2
	}
	return float64(scores[mid])
}

func (s *StatsManager) GetAverageDuration() time.Duration {
	if len(s.games) == 0 {
		return 0
	}
	var total time.Duration
	for _, g := range s.games {
		total += g.Duration()
	}
	return total / time.Duration(len(s.games))
}

