package session

import (
	"log"
	"math/rand"
	"sync"
	"time"

	"git.lost.host/meutraa/eotn/internal/clock"
	"git.lost.host/meutraa/eotn/internal/game"
	"git.lost.host/meutraa/eotn/internal/geom"
	"git.lost.host/meutraa/eotn/internal/place"
	"git.lost.host/meutraa/eotn/internal/render"
	"git.lost.host/meutraa/eotn/internal/score"
	"git.lost.host/meutraa/eotn/internal/sound"
	"git.lost.host/meutraa/eotn/internal/theme"
	"git.lost.host/meutraa/eotn/internal/track"
)

type Phase uint8

const (
	Initializing Phase = iota
	ReadyToStart
	Playing
	GameOver
)

func (p Phase) String() string {
	switch p {
	case ReadyToStart:
		return "ready_to_start"
	case Playing:
		return "playing"
	case GameOver:
		return "game_over"
	}
	return "initializing"
}

// Listener receives UI-facing callbacks, always on the session timeline.
type Listener interface {
	OnScoreChanged(score int)
	OnLifeLost(livesRemaining int)
	OnGameOver(finalScore int)
}

type Options struct {
	Clock     clock.Clock
	Lane      *track.Manager
	Estimator *place.Estimator
	Renderer  render.Renderer
	Theme     theme.Theme
	Sounds    sound.Player // optional
	Results   score.Scorer // optional
	Listener  Listener     // optional

	// Tiers ordered by ascending score threshold; Tiers[0] is the start tier.
	Tiers          []game.Difficulty
	Lives          int
	ScoreIncrement int

	// TimeoutLead is how long before arrival the note's deadline fires.
	TimeoutLead time.Duration

	// NextNote overrides random pitch selection, for tests and drills.
	NextNote func(tier game.Difficulty) (game.Pitch, int)
}

// Session is the single timeline every game-state mutation runs on. Spawn
// ticks, deadline callbacks and key presses all take the one mutex, so no
// two judgment events ever interleave mid-update.
type Session struct {
	mu sync.Mutex

	clock     clock.Clock
	lane      *track.Manager
	estimator *place.Estimator
	renderer  render.Renderer
	theme     theme.Theme
	sounds    sound.Player
	results   score.Scorer
	listener  Listener

	tiers       []game.Difficulty
	maxLives    int
	increment   int
	timeoutLead time.Duration
	nextNote    func(tier game.Difficulty) (game.Pitch, int)
	rng         *rand.Rand

	phase    Phase
	score    int
	lives    int
	tier     game.Difficulty
	anchor   geom.Pose
	anchored bool

	// spawnStop identifies the live spawn loop; a stale loop's ticks are
	// ignored once this changes.
	spawnStop chan struct{}
}

func New(opts Options) *Session {
	s := &Session{
		clock:       opts.Clock,
		lane:        opts.Lane,
		estimator:   opts.Estimator,
		renderer:    opts.Renderer,
		theme:       opts.Theme,
		sounds:      opts.Sounds,
		results:     opts.Results,
		listener:    opts.Listener,
		tiers:       opts.Tiers,
		maxLives:    opts.Lives,
		increment:   opts.ScoreIncrement,
		timeoutLead: opts.TimeoutLead,
		nextNote:    opts.NextNote,
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	if s.nextNote == nil {
		s.nextNote = s.randomNote
	}
	return s
}

func (s *Session) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

func (s *Session) Score() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.score
}

func (s *Session) Lives() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lives
}

func (s *Session) Tier() game.Difficulty {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tier
}

func (s *Session) Anchor() (geom.Pose, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.anchor, s.anchored
}

// SubmitPlaneSample feeds one raw surface detection. It may be called from
// the frame loop; the estimator carries its own lock and samples never touch
// game state.
func (s *Session) SubmitPlaneSample(p geom.Pose) {
	s.estimator.SubmitSample(p)
}

// ConfirmPlacement freezes the current estimate as the anchor pose and tears
// the estimator down. Returns false while no estimate exists yet; callers
// poll, they do not assume eventual completion.
func (s *Session) ConfirmPlacement() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != Initializing {
		return false
	}
	pose, ok := s.estimator.Confirm()
	if !ok {
		return false
	}
	s.anchor = pose
	s.anchored = true
	s.phase = ReadyToStart
	return true
}

// Start begins (or restarts) the timeline: difficulty resets to the first
// tier and one note spawns immediately so the player is not left waiting a
// full interval.
func (s *Session) Start() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != ReadyToStart && s.phase != GameOver {
		return false
	}
	s.phase = Playing
	s.score = 0
	s.lives = s.maxLives
	s.tier = s.tiers[0]
	s.notifyScore()
	s.play(sound.KeyStart)
	s.startSpawnLoopLocked(s.tier.SpawnInterval, true)
	return true
}

// Stop cancels the spawn tick without touching score or lives. Idempotent.
func (s *Session) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopSpawnLoopLocked()
}

func (s *Session) startSpawnLoopLocked(interval time.Duration, runNoteNow bool) {
	s.stopSpawnLoopLocked()
	stop := make(chan struct{})
	s.spawnStop = stop
	if runNoteNow {
		s.spawnNoteLocked()
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.spawnTick(stop)
			case <-stop:
				return
			}
		}
	}()
}

func (s *Session) stopSpawnLoopLocked() {
	if s.spawnStop != nil {
		close(s.spawnStop)
		s.spawnStop = nil
	}
}

// spawnTick runs on the spawn goroutine. A tick from a superseded loop is
// dropped, so a tier change never double-spawns.
func (s *Session) spawnTick(stop chan struct{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != Playing || s.spawnStop != stop {
		return
	}
	s.spawnNoteLocked()
}

// SpawnNote places a specific note on the staff. Exposed for drills; the
// spawn loop uses the tier's pitch pool instead.
func (s *Session) SpawnNote(p game.Pitch, octave int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.spawn(p, octave)
}

func (s *Session) spawnNoteLocked() {
	p, octave := s.nextNote(s.tier)
	if err := s.spawn(p, octave); nil != err {
		log.Println("unable to spawn note", p, octave, err)
	}
}

func (s *Session) spawn(p game.Pitch, octave int) error {
	travel := s.tier.TravelDuration
	h, err := s.lane.Spawn(p, octave, travel)
	if nil != err {
		return err
	}
	// The deadline is never cancelled; a note judged early makes the
	// callback a no-op through the lane's head-only rule.
	time.AfterFunc(travel-s.timeoutLead, func() {
		s.HandleTimeout(h)
	})
	return nil
}

func (s *Session) randomNote(tier game.Difficulty) (game.Pitch, int) {
	pool := game.Naturals[:]
	if tier.Accidentals {
		pool = append(append([]game.Pitch{}, pool...), game.Sharps[:]...)
	}
	octaves := tier.Octaves
	if octaves < 1 {
		octaves = 1
	}
	return pool[s.rng.Intn(len(pool))], s.rng.Intn(octaves)
}

func (s *Session) play(key string) {
	if s.sounds != nil {
		s.sounds.Play(key)
	}
}

func (s *Session) notifyScore() {
	if s.listener != nil {
		s.listener.OnScoreChanged(s.score)
	}
}
