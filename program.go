package main

import (
	"fmt"
	"log"
	"math/rand"
	"strings"
	"sync"
	"time"

	"git.lost.host/meutraa/eotn/internal/clock"
	"git.lost.host/meutraa/eotn/internal/config"
	"git.lost.host/meutraa/eotn/internal/geom"
	"git.lost.host/meutraa/eotn/internal/input"
	"git.lost.host/meutraa/eotn/internal/place"
	"git.lost.host/meutraa/eotn/internal/render"
	"git.lost.host/meutraa/eotn/internal/score"
	"git.lost.host/meutraa/eotn/internal/session"
	"git.lost.host/meutraa/eotn/internal/sound"
	"git.lost.host/meutraa/eotn/internal/theme"
	"git.lost.host/meutraa/eotn/internal/track"
)

type Program struct {
	Renderer *render.DefaultRenderer
	Theme    *theme.DefaultTheme
	Sounds   *sound.DefaultPlayer
	Results  *score.DefaultScorer

	session   *session.Session
	estimator *place.Estimator
	keymap    input.Keymap

	events     chan input.Event
	closeInput func() error
	feedStop   chan struct{}

	// HUD state mirrored from listener callbacks, which arrive on session
	// goroutines while the render loop reads.
	mu      sync.Mutex
	score   int
	lives   int
	message string
	history []score.Result
}

func (p *Program) Init() error {
	p.Theme = &theme.DefaultTheme{}
	p.Renderer = &render.DefaultRenderer{
		Theme:       p.Theme,
		Staff:       config.Staff,
		StartX:      *config.NoteStartX,
		EndX:        *config.NoteEndX,
		JudgmentX:   *config.JudgmentX,
		FramePeriod: *config.FramePeriod,
	}
	p.Sounds = &sound.DefaultPlayer{Directory: *config.AssetDirectory}
	p.Results = &score.DefaultScorer{Database: *config.Database}
	p.estimator = place.NewEstimator()
	p.keymap = input.DefaultKeymap()
	p.lives = *config.Lives

	var results score.Scorer
	if err := p.Results.Init(); nil != err {
		// No history is a degraded game, not a dead one
		log.Println("unable to open results database", err)
		p.Results = nil
	} else {
		results = p.Results
	}

	var sounds sound.Player
	if err := p.Sounds.Init(); nil != err {
		log.Println("unable to initialize audio", err)
		p.Sounds = nil
	} else {
		sounds = p.Sounds
	}

	c := clock.TimeProvider{}
	lane := track.NewManager(c, config.Staff, track.Geometry{
		StartX:           *config.NoteStartX,
		EndX:             *config.NoteEndX,
		JudgmentX:        *config.JudgmentX,
		CriticalDistance: *config.CriticalDistance,
	}, p.Renderer)

	p.session = session.New(session.Options{
		Clock:          c,
		Lane:           lane,
		Estimator:      p.estimator,
		Renderer:       p.Renderer,
		Theme:          p.Theme,
		Sounds:         sounds,
		Results:        results,
		Listener:       p,
		Tiers:          config.Difficulties,
		Lives:          *config.Lives,
		ScoreIncrement: *config.ScoreIncrement,
		TimeoutLead:    *config.TimeoutLead,
	})

	if err := p.Renderer.Init(); nil != err {
		return fmt.Errorf("unable to initialize renderer: %w", err)
	}

	p.events = make(chan input.Event, 128)
	closeInput, err := input.Listen(p.keymap, p.events)
	if nil != err {
		return fmt.Errorf("unable to open keyboard: %w", err)
	}
	p.closeInput = closeInput

	p.feedStop = make(chan struct{})
	go p.feedPlaneSamples()

	return nil
}

func (p *Program) Deinit() {
	if p.feedStop != nil {
		close(p.feedStop)
	}
	if p.closeInput != nil {
		if err := p.closeInput(); nil != err {
			log.Println("unable to close keyboard", err)
		}
	}
	if p.Sounds != nil {
		p.Sounds.Deinit()
	}
	if p.Results != nil {
		p.Results.Deinit()
	}
	if p.Renderer != nil {
		if err := p.Renderer.Deinit(); nil != err {
			log.Println("unable to restore terminal", err)
		}
	}
}

// feedPlaneSamples stands in for the host AR session: one jittered surface
// detection per frame until the player confirms placement.
func (p *Program) feedPlaneSamples() {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	base := geom.Pose{
		Position:    geom.Vec3{X: 0, Y: 0, Z: -0.5},
		Orientation: geom.Identity,
	}
	jitter := func() float64 {
		return (rng.Float64() - 0.5) * 2 * *config.SampleJitter
	}
	ticker := time.NewTicker(*config.FramePeriod)
	defer ticker.Stop()
	for {
		select {
		case <-p.feedStop:
			return
		case <-ticker.C:
			if p.session.Phase() != session.Initializing {
				return
			}
			sample := base
			sample.Position = sample.Position.Add(geom.Vec3{X: jitter(), Y: jitter(), Z: jitter()})
			p.session.SubmitPlaneSample(sample)
		}
	}
}

func (p *Program) Run() {
	p.Renderer.RenderLoop(func(now time.Time, duration time.Duration) bool {
		if !p.drainEvents() {
			return false
		}
		p.drawHUD()
		return true
	})
}

func (p *Program) drainEvents() bool {
	for {
		select {
		case ev := <-p.events:
			switch {
			case ev.Quit:
				return false
			case ev.Confirm:
				if !p.session.ConfirmPlacement() {
					p.setMessage("no surface yet, keep the camera steady")
				} else {
					p.setMessage("placed, space to start")
				}
			case ev.Start:
				if p.session.Start() {
					p.setMessage("")
					p.setHistory(nil)
					p.mu.Lock()
					p.lives = *config.Lives
					p.mu.Unlock()
				}
			case ev.Press:
				p.session.HandleKey(ev.Pitch)
			}
		default:
			return true
		}
	}
}

func (p *Program) setMessage(m string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.message = m
}

func (p *Program) setHistory(history []score.Result) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.history = history
}

func (p *Program) drawHUD() {
	p.mu.Lock()
	hudScore, hudLives := p.score, p.lives
	message, history := p.message, p.history
	p.mu.Unlock()

	r := p.Renderer
	_, cols := r.Size()
	sideCol := cols - 30
	if sideCol < 2 {
		sideCol = 2
	}

	switch p.session.Phase() {
	case session.Initializing:
		r.Fill(2, 2, "scanning for a surface...")
		if est, ok := p.estimator.CurrentEstimate(); ok {
			r.Fill(3, 2, fmt.Sprintf("surface at %+.2f %+.2f %+.2f", est.Position.X, est.Position.Y, est.Position.Z))
			r.Fill(4, 2, "enter to place the staff")
		}
	case session.ReadyToStart:
		r.Fill(2, 2, "space to start")
	case session.Playing:
		tier := p.session.Tier()
		r.Fill(2, sideCol, fmt.Sprintf("  Score:  %6v", hudScore))
		r.Fill(3, sideCol, fmt.Sprintf("  Lives:  %6v", strings.Repeat("♥", hudLives)))
		r.Fill(4, sideCol, fmt.Sprintf("   Tier:  %6v", tier.Name))
	case session.GameOver:
		r.Fill(2, 2, fmt.Sprintf("game over, final score %v", hudScore))
		r.Fill(3, 2, "space to play again, esc to quit")
		for i, res := range history {
			if i >= 5 {
				break
			}
			r.Fill(5+i, 2, fmt.Sprintf("%2v) %5v  %v", i+1, res.Score, res.Difficulty))
		}
	}
	if message != "" {
		r.Fill(6, 2, message)
	}

	rows, _ := r.Size()
	r.Fill(rows-2, 2, "keys: zxcvbnm + sdghj (low), qwertyu + 23567 (high)")
}

// Listener callbacks, called on the session timeline.

func (p *Program) OnScoreChanged(score int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.score = score
}

func (p *Program) OnLifeLost(livesRemaining int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.lives = livesRemaining
}

func (p *Program) OnGameOver(finalScore int) {
	var history []score.Result
	if p.Results != nil {
		history = p.Results.Load()
	}
	p.setHistory(history)
	p.mu.Lock()
	p.lives = *config.Lives
	p.mu.Unlock()
}
