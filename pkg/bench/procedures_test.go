package bench

import (
	"time"

	"github.com/pkg/errors"
)

// fakeClock stands in for the wall clock so calibration can be tested over
// per-call costs spanning many orders of magnitude.
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) advance(d time.Duration) {
	c.now = c.now.Add(d)
}

// withFakeClock routes the measurement clock through the given fake for the
// duration of the callback.
func withFakeClock(clock *fakeClock, body func()) {
	restore := timeNow
	timeNow = clock.Now
	defer func() { timeNow = restore }()
	body()
}

// fakeProcedure is a fully scripted procedure: it counts every call, can
// simulate a fixed per-call cost on a fake clock and can fail on demand.
type fakeProcedure struct {
	name    string
	invalid bool

	clock *fakeClock
	cost  time.Duration

	setupErr    error
	executeErr  error
	teardownErr error

	setupCalls    int
	executeCalls  int
	teardownCalls int
}

func (p *fakeProcedure) Name() string {
	return p.name
}

func (p *fakeProcedure) ProblemLength(cfg Config) int {
	return int(cfg.(IntConfig))
}

func (p *fakeProcedure) IsValid(cfg Config) bool {
	return !p.invalid
}

func (p *fakeProcedure) Setup(cfg Config) (State, error) {
	p.setupCalls++
	if p.setupErr != nil {
		return nil, p.setupErr
	}
	return &struct{}{}, nil
}

func (p *fakeProcedure) Execute(cfg Config, state State) error {
	p.executeCalls++
	if p.clock != nil {
		p.clock.advance(p.cost)
	}
	return p.executeErr
}

func (p *fakeProcedure) Teardown(cfg Config, state State) error {
	p.teardownCalls++
	return p.teardownErr
}

// scaledProcedure performs factor*n constant-cost element operations per
// execution, where n is the configured problem size.
type scaledProcedure struct {
	name   string
	factor int
}

type scaledState struct {
	data []int
	sink int
}

func (p *scaledProcedure) Name() string {
	return p.name
}

func (p *scaledProcedure) ProblemLength(cfg Config) int {
	return int(cfg.(IntConfig))
}

func (p *scaledProcedure) IsValid(cfg Config) bool {
	return int(cfg.(IntConfig)) > 0
}

func (p *scaledProcedure) Setup(cfg Config) (State, error) {
	size := int(cfg.(IntConfig))
	if size <= 0 {
		return nil, errors.Errorf("invalid problem size %d", size)
	}
	data := make([]int, size)
	for i := range data {
		data[i] = i
	}
	return &scaledState{data: data}, nil
}

func (p *scaledProcedure) Execute(cfg Config, state State) error {
	s := state.(*scaledState)
	sum := 0
	for pass := 0; pass < p.factor; pass++ {
		for _, v := range s.data {
			sum += v
		}
	}
	s.sink = sum
	return nil
}

func (p *scaledProcedure) Teardown(cfg Config, state State) error {
	state.(*scaledState).data = nil
	return nil
}
