package ui

import "gridsnake/store"

const maxScores = 200 // Maximum number of scores to show in graph

// scoreboard keeps the most recent game scores for the stats panel
type scoreboard struct {
	scores  []int
	summary store.Summary
	history []store.GameRecord
}

func newScoreboard(history []store.GameRecord) *scoreboard {
	sb := &scoreboard{}
	for _, g := range history {
		sb.add(g)
	}
	return sb
}

func (sb *scoreboard) add(g store.GameRecord) {
	sb.history = append(sb.history, g)
	sb.scores = append(sb.scores, g.Score)
	if len(sb.scores) > maxScores {
		sb.scores = sb.scores[len(sb.scores)-maxScores:]
	}
	sb.summary = store.Summarize(sb.history)
}

type point struct{ X, Y int32 }

// graphPoints scales the scores into a w x h box at (x, y), oldest on the left
func (sb *scoreboard) graphPoints(x, y, w, h int32) []point {
	maxScore := 1
	for _, s := range sb.scores {
		maxScore = max(maxScore, s)
	}

	pts := make([]point, len(sb.scores))
	for i, s := range sb.scores {
		pts[i] = point{
			X: x + int32(float32(w)*float32(i)/float32(maxScores)),
			Y: y + h - int32(float32(h)*float32(s)/float32(maxScore)),
		}
	}
	return pts
}
