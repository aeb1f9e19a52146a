package ai

import (
	"fmt"
	"strings"

	"gridsnake/game"
	"gridsnake/game/manager"

	"golang.org/x/exp/rand"
)

// Rewards handed to the policy after each movement step
const (
	RewardFood    = 10.0
	RewardDeath   = -10.0
	RewardCloser  = 1.0
	RewardFarther = -1.5
)

// Pilot steers a session with a Policy. Register it with Loop.SetSteerer
// and Pilot.Observe with Loop.OnFrame so deaths are rewarded too.
type Pilot struct {
	policy  Policy
	explore bool
	learn   bool

	pending   bool
	prev      State
	action    Action
	prevScore int
	gameID    string
}

// NewPilot wraps policy. Training pilots explore and learn; playing pilots
// act greedily.
func NewPilot(policy Policy, training bool) *Pilot {
	return &Pilot{
		policy:  policy,
		explore: training,
		learn:   training,
	}
}

func (p *Pilot) Policy() Policy {
	return p.policy
}

// Steer runs before every frame and only decides on frames where the snake
// is about to step
func (p *Pilot) Steer(s *game.Session) {
	if s.GameID != p.gameID {
		p.gameID = s.GameID
		p.pending = false
	}
	if s.Snake().Delay > 1 {
		return
	}

	st := Sense(s.Snapshot())
	if p.pending && p.learn {
		p.policy.Learn(p.prev, p.action, p.reward(st, s.Score()), st, false)
	}

	action := p.policy.Act(st, p.explore)
	s.Input().Set(action.Apply(s.Snake().Heading))

	p.pending = true
	p.prev = st
	p.action = action
	p.prevScore = s.Score()
}

// Observe runs after every frame; on game over it settles the last action
func (p *Pilot) Observe(s *game.Session) {
	if s.Phase() != manager.GameOver || !p.pending {
		return
	}
	if p.learn {
		st := Sense(s.Snapshot())
		p.policy.Learn(p.prev, p.action, RewardDeath, st, true)
		p.policy.EndEpisode()
	}
	p.pending = false
}

// Abandon drops the outstanding action without a reward, e.g. when an
// episode hits its frame cap
func (p *Pilot) Abandon() {
	if p.pending && p.learn {
		p.policy.EndEpisode()
	}
	p.pending = false
}

func (p *Pilot) reward(next State, score int) float64 {
	switch {
	case score > p.prevScore:
		return RewardFood
	case next.FoodDistance < p.prev.FoodDistance:
		return RewardCloser
	case next.FoodDistance > p.prev.FoodDistance:
		return RewardFarther
	}
	return 0
}

// NewPolicy builds a policy by name ("table" or "dqn"), loading it from path
// when the file exists
func NewPolicy(kind, path string, rng *rand.Rand) (Policy, error) {
	switch strings.ToLower(kind) {
	case "table", "qlearning", "q":
		return LoadQLearning(path, rng)
	case "dqn":
		return LoadDQN(path, rng)
	default:
		return nil, fmt.Errorf("unknown autopilot %q", kind)
	}
}
