package place

import (
	"testing"

	"git.lost.host/meutraa/eotn/internal/geom"
)

func sampleAt(x float64) geom.Pose {
	return geom.Pose{
		Position:    geom.Vec3{X: x},
		Orientation: geom.Quat{X: x, W: 1},
	}
}

func TestRollingWindowMean(t *testing.T) {
	e := NewEstimator()
	for i := 1; i <= 15; i++ {
		e.SubmitSample(sampleAt(float64(i)))
	}
	est, ok := e.CurrentEstimate()
	if !ok {
		t.Fatal("estimate should exist after 15 samples")
	}
	// Only the last 10 samples (6..15) contribute, mean 10.5
	if est.Position.X != 10.5 {
		t.Log("mean    ", est.Position.X)
		t.Log("expected", 10.5)
		t.Fail()
	}
}

func TestLatestOrientationWins(t *testing.T) {
	e := NewEstimator()
	for i := 1; i <= 3; i++ {
		e.SubmitSample(sampleAt(float64(i)))
	}
	est, _ := e.CurrentEstimate()
	if est.Orientation.X != 3 {
		t.Log("orientation should come from the latest sample", est.Orientation)
		t.Fail()
	}
}

func TestStateTransitions(t *testing.T) {
	e := NewEstimator()
	if e.State() != Initializing {
		t.Fatal("fresh estimator should be initializing")
	}
	if _, ok := e.CurrentEstimate(); ok {
		t.Fatal("no estimate should exist before any sample")
	}

	e.SubmitSample(sampleAt(1))
	if e.State() != Detecting {
		t.Fatal("first sample should enter detecting")
	}

	// Re-entering detecting every frame is a no-op
	e.SubmitSample(sampleAt(2))
	if e.State() != Detecting {
		t.Fatal("detecting should be stable")
	}

	e.Reset()
	if e.State() != Initializing {
		t.Fatal("reset should exit detecting")
	}
	if _, ok := e.CurrentEstimate(); ok {
		t.Fatal("reset should clear the buffer")
	}
}

func TestConfirmConsumesOnce(t *testing.T) {
	e := NewEstimator()
	if _, ok := e.Confirm(); ok {
		t.Fatal("confirm should fail with no samples")
	}

	e.SubmitSample(sampleAt(2))
	e.SubmitSample(sampleAt(4))
	pose, ok := e.Confirm()
	if !ok {
		t.Fatal("confirm should succeed once an estimate exists")
	}
	if pose.Position.X != 3 {
		t.Log("confirmed pose", pose.Position)
		t.Fail()
	}

	if _, ok := e.Confirm(); ok {
		t.Fatal("estimate is consumed exactly once")
	}

	// The raw stream is discarded after placement
	e.SubmitSample(sampleAt(100))
	if _, ok := e.CurrentEstimate(); ok {
		t.Fatal("samples after confirm should be dropped")
	}
}
