package store

import (
	"sort"
	"time"
)

// Summary aggregates a set of finished games
type Summary struct {
	GamesPlayed     int
	AverageScore    float64
	MedianScore     float64
	MaxScore        int
	MinScore        int
	AverageDuration time.Duration
	MaxDuration     time.Duration
}

// Summarize computes score and duration statistics over games
func Summarize(games []GameRecord) Summary {
	if len(games) == 0 {
		return Summary{}
	}

	s := Summary{
		GamesPlayed: len(games),
		MaxScore:    games[0].Score,
		MinScore:    games[0].Score,
	}

	scores := make([]int, 0, len(games))
	var totalScore int
	var totalDuration time.Duration
	for _, g := range games {
		scores = append(scores, g.Score)
		totalScore += g.Score
		totalDuration += g.Duration()

		if g.Score > s.MaxScore {
			s.MaxScore = g.Score
		}
		if g.Score < s.MinScore {
			s.MinScore = g.Score
		}
		if g.Duration() > s.MaxDuration {
			s.MaxDuration = g.Duration()
		}
	}

	s.AverageScore = float64(totalScore) / float64(len(games))
	s.AverageDuration = totalDuration / time.Duration(len(games))

	sort.Ints(scores)
	mid := len(scores) / 2
	if len(scores)%2 == 0 {
		s.MedianScore = float64(scores[mid-1]+scores[mid]) / 2
	} else {
		s.MedianScore = float64(scores[mid])
	}
	return s
}

// Load reads all games from st and summarizes them
func Load(st Store) (Summary, error) {
	games, err := st.Games()
	if err != nil {
		return Summary{}, err
	}
	return Summarize(games), nil
}
