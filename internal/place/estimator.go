package place

import (
	"sync"

	"git.lost.host/meutraa/eotn/internal/geom"
)

// WindowSize bounds the rolling sample buffer. Older samples contribute
// nothing to the estimate.
const WindowSize = 10

type State uint8

const (
	// Initializing means no valid plane sample has ever arrived.
	Initializing State = iota
	// Detecting means the buffer is live and an estimate is available.
	Detecting
)

func (s State) String() string {
	if s == Detecting {
		return "detecting"
	}
	return "initializing"
}

// Estimator smooths raw plane-detection samples into a stable anchor pose.
// Samples may arrive from the frame loop, so the buffer carries its own lock.
// The estimator is consumed by a single successful Confirm, after which the
// sample stream is discarded.
type Estimator struct {
	mu        sync.Mutex
	samples   []geom.Pose
	state     State
	confirmed bool
}

func NewEstimator() *Estimator {
	return &Estimator{}
}

// SubmitSample appends a raw detected-plane pose, dropping anything beyond
// the most recent WindowSize samples.
func (e *Estimator) SubmitSample(p geom.Pose) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.confirmed {
		return
	}
	e.samples = append(e.samples, p)
	if len(e.samples) > WindowSize {
		e.samples = e.samples[len(e.samples)-WindowSize:]
	}
	// Re-entering detecting every frame is a no-op.
	e.state = Detecting
}

func (e *Estimator) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// CurrentEstimate returns the mean-position, latest-orientation pose.
// Absence is not an error, it is the normal "not yet ready" signal.
func (e *Estimator) CurrentEstimate() (geom.Pose, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.estimateLocked()
}

func (e *Estimator) estimateLocked() (geom.Pose, bool) {
	if len(e.samples) == 0 {
		return geom.Pose{}, false
	}
	var sum geom.Vec3
	for _, s := range e.samples {
		sum = sum.Add(s.Position)
	}
	return geom.Pose{
		Position:    sum.Scale(1 / float64(len(e.samples))),
		Orientation: e.samples[len(e.samples)-1].Orientation,
	}, true
}

// Confirm freezes and consumes the estimate. It succeeds at most once; later
// samples and calls are discarded.
func (e *Estimator) Confirm() (geom.Pose, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.confirmed {
		return geom.Pose{}, false
	}
	est, ok := e.estimateLocked()
	if !ok {
		return geom.Pose{}, false
	}
	e.confirmed = true
	e.samples = nil
	return est, true
}

// Reset clears the buffer and exits the detecting state.
func (e *Estimator) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.samples = nil
	e.state = Initializing
	e.confirmed = false
}
