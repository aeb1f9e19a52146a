package ai

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/exp/rand"
)

// Policy picks actions for the autopilot and learns from their outcome
type Policy interface {
	Act(st State, explore bool) Action
	Learn(st State, action Action, reward float64, next State, done bool)
	// EndEpisode is called after every game and decays exploration
	EndEpisode()
	Epsilon() float64
	Save(path string) error
}

// QTable maps a state key to one value per action
type QTable map[string][]float64

// QLearning is a tabular epsilon-greedy policy
type QLearning struct {
	mu sync.RWMutex

	QTable          QTable  `json:"qtable"`
	LearningRate    float64 `json:"learningRate"`
	Discount        float64 `json:"discount"`
	CurrentEpsilon  float64 `json:"epsilon"`
	MinEpsilon      float64 `json:"minEpsilon"`
	EpsilonDecay    float64 `json:"epsilonDecay"`
	TrainingEpisode int     `json:"episodes"`

	rng *rand.Rand
}

func NewQLearning(rng *rand.Rand) *QLearning {
	return &QLearning{
		QTable:         make(QTable),
		LearningRate:   0.1,
		Discount:       0.9,
		CurrentEpsilon: 0.9,
		MinEpsilon:     0.05,
		EpsilonDecay:   0.995,
		rng:            rng,
	}
}

// LoadQLearning restores a table saved with Save. A missing file yields a
// fresh policy.
func LoadQLearning(path string, rng *rand.Rand) (*QLearning, error) {
	q := NewQLearning(rng)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return q, nil
		}
		return nil, err
	}
	if err := json.Unmarshal(data, q); err != nil {
		return nil, fmt.Errorf("decode q-table %s: %w", path, err)
	}
	if q.QTable == nil {
		q.QTable = make(QTable)
	}
	return q, nil
}

func (q *QLearning) values(key string) []float64 {
	v, ok := q.QTable[key]
	if !ok {
		v = make([]float64, NumActions)
		q.QTable[key] = v
	}
	return v
}

func (q *QLearning) Act(st State, explore bool) Action {
	if explore && q.rng.Float64() < q.Epsilon() {
		return Action(q.rng.Intn(NumActions))
	}

	q.mu.RLock()
	defer q.mu.RUnlock()
	return argmax(q.QTable[st.Key()])
}

// Learn applies the Q-learning update for one transition
func (q *QLearning) Learn(st State, action Action, reward float64, next State, done bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	current := q.values(st.Key())
	target := reward
	if !done {
		target += q.Discount * maxValue(q.values(next.Key()))
	}
	current[action] += q.LearningRate * (target - current[action])
}

func (q *QLearning) EndEpisode() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.TrainingEpisode++
	q.CurrentEpsilon = math.Max(q.MinEpsilon, q.CurrentEpsilon*q.EpsilonDecay)
}

func (q *QLearning) Epsilon() float64 {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return q.CurrentEpsilon
}

// States reports how many distinct states the table has seen
func (q *QLearning) States() int {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return len(q.QTable)
}

func (q *QLearning) Save(path string) error {
	q.mu.RLock()
	data, err := json.MarshalIndent(q, "", "  ")
	q.mu.RUnlock()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// argmax returns the best action; unseen states and ties prefer Straight
func argmax(values []float64) Action {
	if len(values) != NumActions {
		return Straight
	}
	best := Straight
	for a := TurnLeft; a <= TurnRight; a++ {
		if values[a] > values[best] {
			best = a
		}
	}
	return best
}

func maxValue(values []float64) float64 {
	m := math.Inf(-1)
	for _, v := range values {
		m = math.Max(m, v)
	}
	return m
}
