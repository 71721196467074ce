package game

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	metricnoop "go.opentelemetry.io/otel/metric/noop"

	"github.com/samdwyer/mazeband/internal/maze"
	"github.com/samdwyer/mazeband/internal/telemetry"
	"github.com/samdwyer/mazeband/internal/ui"
)

// Game holds the entire game state.
type Game struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	cfg      Config
	log      logrus.FieldLogger
	src      maze.IndexSource

	session *Session
	state   State
	hint    bool
	running bool

	moves   metric.Int64Counter
	escapes metric.Int64Counter
}

// New opens the terminal and creates a game instance.
func New(cfg Config, log logrus.FieldLogger) (*Game, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}
	return newGame(screen, cfg, log, maze.NewIndexSource(), telemetry.Meter("game")), nil
}

func newGame(screen *ui.Screen, cfg Config, log logrus.FieldLogger, src maze.IndexSource, meter metric.Meter) *Game {
	g := &Game{
		screen:   screen,
		renderer: ui.NewRenderer(screen, cfg.Theme),
		cfg:      cfg,
		log:      log,
		src:      src,
		running:  true,
	}

	var err error
	if g.moves, err = meter.Int64Counter("maze.moves",
		metric.WithDescription("Player moves that changed position")); err != nil {
		log.WithError(err).Warn("moves counter unavailable")
		g.moves, _ = metricnoop.Meter{}.Int64Counter("maze.moves")
	}
	if g.escapes, err = meter.Int64Counter("maze.escapes",
		metric.WithDescription("Sessions that reached the exit")); err != nil {
		log.WithError(err).Warn("escapes counter unavailable")
		g.escapes, _ = metricnoop.Meter{}.Int64Counter("maze.escapes")
	}
	return g
}

// Run executes the main game loop until the player quits.
func (g *Game) Run(ctx context.Context) error {
	defer g.screen.Close()

	if err := g.startSession(ctx); err != nil {
		return err
	}

	for g.running {
		g.render()
		g.handleInput(ctx)
	}

	g.endSession("quit")
	return nil
}

// startSession replaces the current maze with a freshly generated one.
func (g *Game) startSession(ctx context.Context) error {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.new_session")
	defer span.End()

	s, err := NewSession(ctx, g.cfg.Width, g.cfg.Height, g.src)
	if err != nil {
		span.RecordError(err)
		return err
	}

	g.session = s
	g.state = StatePlaying
	g.hint = false

	exit, hasExit := s.Board.Exit()
	span.SetAttributes(
		attribute.String("session.id", s.ID.String()),
		attribute.String("maze.preset", g.cfg.Preset),
		attribute.Bool("maze.has_exit", hasExit),
	)
	g.sessionLog().WithFields(logrus.Fields{
		"width":  s.Board.Width(),
		"height": s.Board.Height(),
		"exit_x": exit.X,
		"exit_y": exit.Y,
	}).Info("maze ready")
	return nil
}

// endSession logs how a session finished.
func (g *Game) endSession(outcome string) {
	if g.session == nil {
		return
	}
	g.sessionLog().WithFields(logrus.Fields{
		"outcome": outcome,
		"moves":   g.session.Moves,
		"elapsed": g.session.Elapsed().String(),
	}).Info("session ended")
}

func (g *Game) sessionLog() logrus.FieldLogger {
	return g.log.WithField("session", g.session.ID.String())
}

// handleInput processes a single input event.
func (g *Game) handleInput(ctx context.Context) {
	ev := g.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKey(ctx, ev.Key(), ev.Rune())
	case *tcell.EventResize:
		g.screen.Sync()
	case nil:
		// Screen finalized.
		g.running = false
	}
}

// handleKey dispatches one key press.
func (g *Game) handleKey(ctx context.Context, key tcell.Key, r rune) {
	if d, ok := keyDirection(key, r); ok {
		g.move(ctx, d)
		return
	}

	switch keyCommand(key, r) {
	case cmdQuit:
		g.running = false
	case cmdToggleHint:
		g.hint = !g.hint
	case cmdRestart:
		outcome := "restart"
		if g.state == StateEscaped {
			outcome = "escaped"
		}
		g.endSession(outcome)
		if err := g.startSession(ctx); err != nil {
			g.log.WithError(err).Error("could not start a new maze")
			g.running = false
		}
	}
}

// move applies one directional command to the board.
func (g *Game) move(ctx context.Context, d maze.Direction) {
	b := g.session.Board
	before := b.Player()
	b.Move(d)

	if b.Player() != before {
		g.session.Moves++
		g.moves.Add(ctx, 1, metric.WithAttributes(attribute.String("direction", d.String())))
	}

	if g.state == StatePlaying && b.Done() {
		g.escape(ctx)
	}
}

// escape records the first arrival at the exit.
func (g *Game) escape(ctx context.Context) {
	g.state = StateEscaped
	g.hint = false

	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "game.escape")
	span.SetAttributes(
		attribute.String("session.id", g.session.ID.String()),
		attribute.Int("moves", g.session.Moves),
		attribute.Int64("elapsed_ms", g.session.Elapsed().Milliseconds()),
	)
	span.End()

	g.escapes.Add(ctx, 1)
	g.sessionLog().WithField("moves", g.session.Moves).Info("player escaped")
}

func (g *Game) render() {
	frame := ui.Frame{View: g.session.Board, Status: g.status()}
	if g.hint {
		frame.Hint, _ = maze.PathToExit(g.session.Board)
	}
	g.renderer.Render(frame)
}

// status returns the line shown under the maze.
func (g *Game) status() string {
	if g.state == StateEscaped {
		return fmt.Sprintf("You escaped in %d moves!  [r] new maze  [q] quit", g.session.Moves)
	}
	return fmt.Sprintf("Moves: %d  [arrows/wasd/hjkl] move  [?] hint  [r] new maze  [q] quit", g.session.Moves)
}
