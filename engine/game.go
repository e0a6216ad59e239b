package engine

import (
	"context"
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"

	"github.com/lixenwraith/termsnake/constants"
	"github.com/lixenwraith/termsnake/core"
	"github.com/lixenwraith/termsnake/input"
	"github.com/lixenwraith/termsnake/render"
	"github.com/lixenwraith/termsnake/snake"
	"github.com/lixenwraith/termsnake/spawn"
	"github.com/lixenwraith/termsnake/status"
)

// Outcome is how a round ended
type Outcome uint8

const (
	OutcomeQuit Outcome = iota
	OutcomeWall
	OutcomeSelf
	OutcomeCancelled
	// OutcomeError marks a round aborted by a broken invariant; Run also returns the error
	OutcomeError
)

func (o Outcome) String() string {
	switch o {
	case OutcomeQuit:
		return "quit"
	case OutcomeWall:
		return "wall"
	case OutcomeSelf:
		return "self"
	case OutcomeCancelled:
		return "cancelled"
	case OutcomeError:
		return "error"
	}
	return "unknown"
}

// Result summarizes a finished round
type Result struct {
	Outcome  Outcome
	Score    int
	Ticks    int64
	Length   int
	Duration time.Duration
}

// Config holds the loop parameters; zero fields take defaults
type Config struct {
	GridSize      int
	FrameDuration time.Duration
}

// Option configures a Game
type Option func(*Game)

// WithTimeProvider replaces the tick clock
func WithTimeProvider(tp TimeProvider) Option {
	return func(g *Game) { g.clock = tp }
}

// WithSleeper replaces the end-of-tick sleep
func WithSleeper(s Sleeper) Option {
	return func(g *Game) { g.sleeper = s }
}

// WithSpawner replaces the pickup spawner
func WithSpawner(s *spawn.Spawner) Option {
	return func(g *Game) { g.spawner = s }
}

// WithSnake replaces the initial actor
func WithSnake(s *snake.Snake) Option {
	return func(g *Game) { g.snake = s }
}

// WithStatus records telemetry into reg
func WithStatus(reg *status.Registry) Option {
	return func(g *Game) { g.status = reg }
}

// WithRoundID tags log lines and telemetry with id
func WithRoundID(id string) Option {
	return func(g *Game) { g.roundID = id }
}

// Game owns one round: the actor, the pickup and the frame pacing
// Run is single-threaded; nothing else may touch the Game while it runs
type Game struct {
	gridSize int
	frame    time.Duration

	surface render.Surface
	source  input.Source
	snake   *snake.Snake
	spawner *spawn.Spawner
	clock   TimeProvider
	sleeper Sleeper
	status  *status.Registry
	roundID string

	pickup    core.Point
	hasPickup bool
	score     int
	ticks     int64

	// Cached metric pointers
	statTicks   *atomic.Int64
	statOverrun *atomic.Int64
	statEaten   *atomic.Int64
	statStarved *atomic.Int64
	statRoundID *status.AtomicString
	statOutcome *status.AtomicString
}

// NewGame wires a round against surface and src
func NewGame(cfg Config, surface render.Surface, src input.Source, opts ...Option) *Game {
	g := &Game{
		gridSize: cfg.GridSize,
		frame:    cfg.FrameDuration,
		surface:  surface,
		source:   src,
	}
	if g.gridSize <= 0 {
		g.gridSize = constants.DefaultGridSize
	}
	if g.frame <= 0 {
		g.frame = constants.FrameDuration
	}

	for _, opt := range opts {
		opt(g)
	}

	if g.snake == nil {
		g.snake = snake.NewDefault()
	}
	if g.spawner == nil {
		g.spawner = spawn.NewRandom()
	}
	if g.clock == nil {
		g.clock = NewMonotonicTimeProvider()
	}
	if g.sleeper == nil {
		g.sleeper = TimerSleeper{}
	}
	if g.status == nil {
		g.status = status.NewRegistry()
	}

	g.statTicks = g.status.Ints.Get("tick.count")
	g.statOverrun = g.status.Ints.Get("tick.overrun")
	g.statEaten = g.status.Ints.Get("pickup.eaten")
	g.statStarved = g.status.Ints.Get("pickup.starved")
	g.statRoundID = g.status.Strings.Get("round.id")
	g.statOutcome = g.status.Strings.Get("round.outcome")
	g.statRoundID.Store(g.roundID)

	return g
}

// Snake exposes the actor for inspection after Run
func (g *Game) Snake() *snake.Snake {
	return g.snake
}

// Pickup returns the current pickup cell, if any
func (g *Game) Pickup() (core.Point, bool) {
	return g.pickup, g.hasPickup
}

// Score returns pickups eaten so far
func (g *Game) Score() int {
	return g.score
}

// Run ticks until the round ends
// Game-over and quit are reported through Result; the error is reserved for broken invariants
func (g *Game) Run(ctx context.Context) (Result, error) {
	roundStart := g.clock.Now()
	log.Printf("[engine] round %s started: grid %d, frame %v", g.roundID, g.gridSize, g.frame)

	for {
		tickStart := g.clock.Now()

		outcome, done, err := g.tick(ctx)
		if err != nil {
			g.statOutcome.Store(OutcomeError.String())
			log.Printf("[engine] round %s aborted: %v", g.roundID, err)
			return g.result(OutcomeError, roundStart), err
		}
		if done {
			res := g.result(outcome, roundStart)
			g.statOutcome.Store(outcome.String())
			log.Printf("[engine] round %s ended: %s (score %d, ticks %d)", g.roundID, outcome, res.Score, res.Ticks)
			return res, nil
		}

		elapsed := g.clock.Now().Sub(tickStart)
		if elapsed < g.frame {
			g.sleeper.Sleep(ctx, g.frame-elapsed)
		} else {
			g.statOverrun.Add(1)
			log.Printf("[engine] tick %d overran frame: %v", g.ticks, elapsed)
		}
	}
}

// tick runs one simulation step and reports whether the round is over
func (g *Game) tick(ctx context.Context) (Outcome, bool, error) {
	if ctx.Err() != nil {
		return OutcomeCancelled, true, nil
	}

	if intent, ok := g.source.Poll(); ok {
		if intent == input.IntentQuit {
			return OutcomeQuit, true, nil
		}
		if dir, ok := intent.Direction(); ok {
			g.snake.Turn(dir)
		}
	}

	if err := g.snake.Advance(); err != nil {
		return 0, false, errors.Wrapf(err, "[tick] round %s tick %d", g.roundID, g.ticks)
	}
	g.ticks++
	g.statTicks.Add(1)

	if g.snake.IsOutOfBounds(g.gridSize) {
		return OutcomeWall, true, nil
	}
	if g.snake.CollidesWithSelf() {
		return OutcomeSelf, true, nil
	}

	head, _ := g.snake.Head()
	if g.hasPickup && head == g.pickup {
		g.snake.MarkGrowth()
		g.hasPickup = false
		g.score++
		g.statEaten.Add(1)
	}

	if !g.hasPickup {
		if p, ok := g.spawner.Spawn(g.snake, g.gridSize); ok {
			g.pickup, g.hasPickup = p, true
		} else {
			g.statStarved.Add(1)
		}
	}

	g.draw()
	return 0, false, nil
}

func (g *Game) draw() {
	g.surface.Clear()
	g.snake.Each(func(p core.Point) {
		g.surface.PutChar(p.X, p.Y, constants.GlyphSnake)
	})
	g.surface.DrawText(fmt.Sprintf("Score: %d", g.score), constants.ScoreTextX, constants.ScoreTextY)
	if g.hasPickup {
		g.surface.PutChar(g.pickup.X, g.pickup.Y, constants.GlyphPickup)
	}
	g.surface.Present()
}

func (g *Game) result(o Outcome, start time.Time) Result {
	return Result{
		Outcome:  o,
		Score:    g.score,
		Ticks:    g.ticks,
		Length:   g.snake.Len(),
		Duration: g.clock.Now().Sub(start),
	}
}
