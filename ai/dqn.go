package ai

import (
	"encoding/gob"
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"

	"golang.org/x/exp/rand"
	"gorgonia.org/gorgonia"
	"gorgonia.org/tensor"
)

func init() {
	gob.Register(&tensor.Dense{})
	gob.Register(map[string]*tensor.Dense{})
}

const (
	HiddenLayerSize  = 24
	ReplayBufferSize = 5000
	BatchSize        = 32

	dqnLearningRate = 0.001
	dqnDiscount     = 0.95
	initialEpsilon  = 1.0
	epsilonDecay    = 0.99
	minEpsilon      = 0.01
)

// Transition is one step of experience
type Transition struct {
	State     []float64
	Action    Action
	Reward    float64
	NextState []float64
	Done      bool
}

// ReplayBuffer is a fixed size ring of transitions
type ReplayBuffer struct {
	buffer   []Transition
	position int
	size     int
}

func NewReplayBuffer(maxSize int) *ReplayBuffer {
	return &ReplayBuffer{buffer: make([]Transition, maxSize)}
}

func (b *ReplayBuffer) Add(t Transition) {
	b.buffer[b.position] = t
	b.position = (b.position + 1) % len(b.buffer)
	if b.size < len(b.buffer) {
		b.size++
	}
}

func (b *ReplayBuffer) Len() int {
	return b.size
}

// Sample draws n transitions with replacement
func (b *ReplayBuffer) Sample(rng *rand.Rand, n int) []Transition {
	if n > b.size {
		n = b.size
	}
	batch := make([]Transition, n)
	for i := range batch {
		batch[i] = b.buffer[rng.Intn(b.size)]
	}
	return batch
}

// network is a two layer perceptron evaluated one state at a time. The
// graph is built once; every run feeds x and target and reads out.
type network struct {
	g          *gorgonia.ExprGraph
	x, target  *gorgonia.Node
	w1, b1     *gorgonia.Node
	w2, b2     *gorgonia.Node
	out        *gorgonia.Node
	outVal     gorgonia.Value
	learnables gorgonia.Nodes
	vm         gorgonia.VM
	solver     gorgonia.Solver
}

func newNetwork() (*network, error) {
	g := gorgonia.NewGraph()
	n := &network{g: g}

	n.x = gorgonia.NewMatrix(g, tensor.Float64, gorgonia.WithShape(1, InputFeatures), gorgonia.WithName("x"))
	n.target = gorgonia.NewMatrix(g, tensor.Float64, gorgonia.WithShape(1, NumActions), gorgonia.WithName("target"))

	n.w1 = gorgonia.NewMatrix(g, tensor.Float64,
		gorgonia.WithShape(InputFeatures, HiddenLayerSize),
		gorgonia.WithName("w1"),
		gorgonia.WithInit(gorgonia.GlorotU(1.0)))
	n.b1 = gorgonia.NewMatrix(g, tensor.Float64,
		gorgonia.WithShape(1, HiddenLayerSize),
		gorgonia.WithName("b1"),
		gorgonia.WithInit(gorgonia.Zeroes()))
	n.w2 = gorgonia.NewMatrix(g, tensor.Float64,
		gorgonia.WithShape(HiddenLayerSize, NumActions),
		gorgonia.WithName("w2"),
		gorgonia.WithInit(gorgonia.GlorotU(1.0)))
	n.b2 = gorgonia.NewMatrix(g, tensor.Float64,
		gorgonia.WithShape(1, NumActions),
		gorgonia.WithName("b2"),
		gorgonia.WithInit(gorgonia.Zeroes()))
	n.learnables = gorgonia.Nodes{n.w1, n.b1, n.w2, n.b2}

	h, err := gorgonia.Mul(n.x, n.w1)
	if err != nil {
		return nil, err
	}
	if h, err = gorgonia.Add(h, n.b1); err != nil {
		return nil, err
	}
	if h, err = gorgonia.Rectify(h); err != nil {
		return nil, err
	}
	out, err := gorgonia.Mul(h, n.w2)
	if err != nil {
		return nil, err
	}
	if n.out, err = gorgonia.Add(out, n.b2); err != nil {
		return nil, err
	}
	gorgonia.Read(n.out, &n.outVal)

	diff := gorgonia.Must(gorgonia.Sub(n.out, n.target))
	loss := gorgonia.Must(gorgonia.Mean(gorgonia.Must(gorgonia.Square(diff))))
	if _, err := gorgonia.Grad(loss, n.learnables...); err != nil {
		return nil, fmt.Errorf("build gradients: %w", err)
	}

	n.vm = gorgonia.NewTapeMachine(g, gorgonia.BindDualValues(n.learnables...))
	n.solver = gorgonia.NewAdamSolver(gorgonia.WithLearnRate(dqnLearningRate), gorgonia.WithL2Reg(1e-6))
	return n, nil
}

// run feeds one state through the graph. Callers reset the machine.
func (n *network) run(state, target []float64) ([]float64, error) {
	if err := gorgonia.Let(n.x, tensor.New(tensor.WithShape(1, InputFeatures), tensor.WithBacking(state))); err != nil {
		return nil, err
	}
	if err := gorgonia.Let(n.target, tensor.New(tensor.WithShape(1, NumActions), tensor.WithBacking(target))); err != nil {
		return nil, err
	}
	if err := n.vm.RunAll(); err != nil {
		return nil, fmt.Errorf("forward pass: %w", err)
	}

	q := make([]float64, NumActions)
	copy(q, n.outVal.Data().([]float64))
	return q, nil
}

// predict returns the action values for state
func (n *network) predict(state []float64) ([]float64, error) {
	defer n.vm.Reset()
	return n.run(state, make([]float64, NumActions))
}

// fit moves the prediction for state toward target by one solver step
func (n *network) fit(state, target []float64) error {
	defer n.vm.Reset()
	if _, err := n.run(state, target); err != nil {
		return err
	}
	return n.solver.Step(gorgonia.NodesToValueGrads(n.learnables))
}

func (n *network) weights() map[string]*tensor.Dense {
	return map[string]*tensor.Dense{
		"w1": n.w1.Value().(*tensor.Dense),
		"b1": n.b1.Value().(*tensor.Dense),
		"w2": n.w2.Value().(*tensor.Dense),
		"b2": n.b2.Value().(*tensor.Dense),
	}
}

func (n *network) setWeights(w map[string]*tensor.Dense) error {
	for name, node := range map[string]*gorgonia.Node{"w1": n.w1, "b1": n.b1, "w2": n.w2, "b2": n.b2} {
		t, ok := w[name]
		if !ok {
			return fmt.Errorf("weights file has no %s", name)
		}
		if !t.Shape().Eq(node.Shape()) {
			return fmt.Errorf("%s has shape %v, want %v", name, t.Shape(), node.Shape())
		}
		dst, ok := node.Value().(*tensor.Dense)
		if !ok {
			return fmt.Errorf("%s has no dense value", name)
		}
		if err := tensor.Copy(dst, t); err != nil {
			return fmt.Errorf("copy %s: %w", name, err)
		}
	}
	return nil
}

// DQN is a policy backed by a small neural network trained online with
// TD(0) targets, plus a replay pass at the end of every episode
type DQN struct {
	net     *network
	replay  *ReplayBuffer
	rng     *rand.Rand
	epsilon float64
	episode int
}

func NewDQN(rng *rand.Rand) (*DQN, error) {
	net, err := newNetwork()
	if err != nil {
		return nil, err
	}
	return &DQN{
		net:     net,
		replay:  NewReplayBuffer(ReplayBufferSize),
		rng:     rng,
		epsilon: initialEpsilon,
	}, nil
}

// LoadDQN builds a network and restores weights saved with Save. A missing
// file yields a fresh network.
func LoadDQN(path string, rng *rand.Rand) (*DQN, error) {
	d, err := NewDQN(rng)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return d, nil
		}
		return nil, err
	}
	defer f.Close()

	var w map[string]*tensor.Dense
	if err := gob.NewDecoder(f).Decode(&w); err != nil {
		return nil, fmt.Errorf("decode weights %s: %w", path, err)
	}
	if err := d.net.setWeights(w); err != nil {
		return nil, fmt.Errorf("load weights %s: %w", path, err)
	}
	// A trained network starts exploiting
	d.epsilon = minEpsilon
	return d, nil
}

func (d *DQN) Act(st State, explore bool) Action {
	if explore && d.rng.Float64() < d.epsilon {
		return Action(d.rng.Intn(NumActions))
	}
	q, err := d.net.predict(st.Vector())
	if err != nil {
		return Straight
	}
	return argmax(q)
}

// QValues exposes the network output for a state
func (d *DQN) QValues(st State) ([]float64, error) {
	return d.net.predict(st.Vector())
}

func (d *DQN) Learn(st State, action Action, reward float64, next State, done bool) {
	t := Transition{
		State:     st.Vector(),
		Action:    action,
		Reward:    reward,
		NextState: next.Vector(),
		Done:      done,
	}
	d.replay.Add(t)
	if err := d.train(t); err != nil {
		log.Printf("dqn: train: %v", err)
	}
}

func (d *DQN) train(t Transition) error {
	q, err := d.net.predict(t.State)
	if err != nil {
		return err
	}

	target := t.Reward
	if !t.Done {
		next, err := d.net.predict(t.NextState)
		if err != nil {
			return err
		}
		target += dqnDiscount * maxValue(next)
	}
	q[t.Action] = target
	return d.net.fit(t.State, q)
}

func (d *DQN) EndEpisode() {
	if d.replay.Len() >= BatchSize {
		for _, t := range d.replay.Sample(d.rng, BatchSize) {
			if err := d.train(t); err != nil {
				log.Printf("dqn: replay: %v", err)
				break
			}
		}
	}
	d.episode++
	d.epsilon = math.Max(minEpsilon, d.epsilon*epsilonDecay)
}

func (d *DQN) Epsilon() float64 {
	return d.epsilon
}

func (d *DQN) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create model directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := gob.NewEncoder(f).Encode(d.net.weights()); err != nil {
		return fmt.Errorf("encode weights: %w", err)
	}
	return nil
}
