package game

import (
	"gridsnake/game/manager"
	"gridsnake/game/types"
)

type ParticleView struct {
	X    float64 `msgpack:"x"`
	Y    float64 `msgpack:"y"`
	Size float64 `msgpack:"s"`
	Hue  int     `msgpack:"h"`
}

// Snapshot is a read-only copy of a session at one frame
type Snapshot struct {
	SessionID string          `msgpack:"sid"`
	GameID    string          `msgpack:"gid"`
	Frame     uint64          `msgpack:"f"`
	Steps     uint64          `msgpack:"st"`
	Over      bool            `msgpack:"over"`
	Score     int             `msgpack:"sc"`
	MaxScore  int             `msgpack:"max"`
	Grid      types.Grid      `msgpack:"grid"`
	Head      types.Vector2   `msgpack:"head"`
	Heading   types.Direction `msgpack:"dir"`
	History   []types.Vector2 `msgpack:"hist"`
	Total     int             `msgpack:"total"`
	Food      types.Vector2   `msgpack:"food"`
	Particles []ParticleView  `msgpack:"fx,omitempty"`
}

func (s *Session) Snapshot() Snapshot {
	history := make([]types.Vector2, len(s.snake.History))
	copy(history, s.snake.History)

	var fx []ParticleView
	if live := s.particles.Particles(); len(live) > 0 {
		fx = make([]ParticleView, 0, len(live))
		for _, p := range live {
			fx = append(fx, ParticleView{X: p.Position.X, Y: p.Position.Y, Size: p.Size, Hue: p.Hue})
		}
	}

	return Snapshot{
		SessionID: s.ID,
		GameID:    s.GameID,
		Frame:     s.frames,
		Steps:     s.steps,
		Over:      s.Phase() == manager.GameOver,
		Score:     s.state.Score(),
		MaxScore:  s.state.MaxScore(),
		Grid:      s.grid,
		Head:      s.snake.Position,
		Heading:   s.snake.Heading,
		History:   history,
		Total:     s.snake.Total,
		Food:      s.foodMgr.Food().Position,
		Particles: fx,
	}
}

// Occupied reports whether p is covered by the snake in this snapshot
func (snap Snapshot) Occupied(p types.Vector2) bool {
	if snap.Head.Equals(p) {
		return true
	}
	for _, h := range snap.History {
		if h.Equals(p) {
			return true
		}
	}
	return false
}
