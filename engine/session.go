package engine

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/minaorangina/sibyl/game"
	"github.com/minaorangina/sibyl/protocol"
	uuid "github.com/satori/go.uuid"
)

var (
	ErrTurnInProgress = errors.New("a turn is already in progress")
	ErrNoSelection    = errors.New("no card is waiting to be placed")
	ErrWrongPile      = errors.New("the selected card doesn't belong on that pile")
	ErrNotPlaying     = errors.New("session is not in play")
	ErrEmptyQuestion  = errors.New("ask the oracle a question first")
)

// NewID constructs a session ID
func NewID() string {
	return uuid.NewV4().String()
}

// Outcome describes what a turn did
type Outcome struct {
	Moves    int
	Flipped  bool
	GameOver bool
	Result   game.Result
}

// Session drives one game on behalf of a renderer: it sequences controller
// calls, paces them, and tells the renderer when to redraw.
// It is safe for concurrent use; overlapping turns are refused.
type Session struct {
	id     string
	mu     sync.Mutex
	ctrl   *game.Controller
	pacing Pacing
	logger *slog.Logger

	subscribers map[int]func(protocol.Snapshot)
	nextSub     int
}

type SessionOpts struct {
	ID         string
	Controller *game.Controller
	Pacing     Pacing
	Logger     *slog.Logger
	Notify     func(protocol.Snapshot)
}

// NewSession constructs a Session. An empty ID gets a fresh one.
func NewSession(opts SessionOpts) *Session {
	s := &Session{
		id:     opts.ID,
		ctrl:   opts.Controller,
		pacing: opts.Pacing,
		logger: opts.Logger,

		subscribers: map[int]func(protocol.Snapshot){},
	}
	if opts.Notify != nil {
		s.Subscribe(opts.Notify)
	}
	if s.id == "" {
		s.id = NewID()
	}
	if s.ctrl == nil {
		s.ctrl = game.NewController(game.ControllerOpts{})
	}
	if s.logger == nil {
		s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	s.logger = s.logger.With("session", s.id)
	return s
}

func (s *Session) ID() string {
	return s.id
}

// Snapshot returns a copy of the session for rendering
func (s *Session) Snapshot() protocol.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return protocol.NewSnapshot(s.id, s.ctrl.State())
}

// Subscribe registers fn to be called after every visible change.
// The returned func removes only this subscription and may be called twice.
func (s *Session) Subscribe(fn func(protocol.Snapshot)) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSub
	s.nextSub++
	s.subscribers[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subscribers, id)
	}
}

func (s *Session) publish() {
	s.mu.Lock()
	snap := protocol.NewSnapshot(s.id, s.ctrl.State())
	subs := make([]func(protocol.Snapshot), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(snap)
	}
}

// beginTurn claims the state's turn lock. The returned func releases it
// and publishes the settled state.
func (s *Session) beginTurn() (func(), error) {
	s.mu.Lock()
	release, ok := s.ctrl.State().BeginTurn()
	s.mu.Unlock()

	if !ok {
		return nil, ErrTurnInProgress
	}

	return func() {
		s.mu.Lock()
		release()
		s.mu.Unlock()
		s.publish()
	}, nil
}

// Begin records the question, deals the piles and reveals the first card
// of the center pile
func (s *Session) Begin(ctx context.Context, question string) error {
	question = strings.TrimSpace(question)
	if question == "" {
		return ErrEmptyQuestion
	}

	end, err := s.beginTurn()
	if err != nil {
		return err
	}
	defer end()

	s.mu.Lock()
	phase := s.ctrl.State().Phase
	s.mu.Unlock()
	if phase != game.PhaseQuestion {
		return game.ErrGameAlreadyStarted
	}

	s.logger.Info("shuffling", "question", question)
	s.publish()
	if err := wait(ctx, s.pacing.ShuffleWait); err != nil {
		return err
	}

	s.mu.Lock()
	err = s.ctrl.StartGame(question)
	s.mu.Unlock()
	if err != nil {
		return err
	}

	// the deal is committed, so the first card is revealed even if ctx ends
	s.publish()
	waitErr := wait(ctx, s.pacing.FlipDelay)

	s.mu.Lock()
	s.ctrl.FlipCard(game.CenterPile, 0)
	card, _ := s.ctrl.State().SelectedCard()
	s.mu.Unlock()

	s.logger.Debug("first card revealed", "card", card.String())
	return waitErr
}

// ClickPile places the selected card if pileIndex is where it belongs,
// then reveals the next card of that pile
func (s *Session) ClickPile(ctx context.Context, pileIndex int) (Outcome, error) {
	end, err := s.beginTurn()
	if err != nil {
		return Outcome{}, err
	}
	defer end()

	target, err := s.selectedTarget()
	if err != nil {
		return Outcome{}, err
	}
	if pileIndex != target {
		return Outcome{}, ErrWrongPile
	}

	return s.placeAndReveal(ctx, target, s.pacing.PlaceDelay)
}

// Step places the selected card wherever it belongs
func (s *Session) Step(ctx context.Context) (Outcome, error) {
	end, err := s.beginTurn()
	if err != nil {
		return Outcome{}, err
	}
	defer end()

	target, err := s.selectedTarget()
	if err != nil {
		return Outcome{}, err
	}

	return s.placeAndReveal(ctx, target, s.pacing.PlaceDelay)
}

// AutoPlay keeps placing and revealing until the cascade stalls
func (s *Session) AutoPlay(ctx context.Context) (Outcome, error) {
	end, err := s.beginTurn()
	if err != nil {
		return Outcome{}, err
	}
	defer end()

	var total Outcome
	for {
		target, err := s.selectedTarget()
		if errors.Is(err, ErrNoSelection) && total.Moves > 0 {
			return total, nil
		}
		if err != nil {
			return total, err
		}

		out, err := s.placeAndReveal(ctx, target, 0)
		total.Moves += out.Moves
		total.Flipped = out.Flipped
		total.GameOver = out.GameOver
		total.Result = out.Result
		if err != nil || out.GameOver || !out.Flipped {
			return total, err
		}

		if err := wait(ctx, s.pacing.AutoPlayDelay); err != nil {
			return total, err
		}
	}
}

// Reset throws the session away and returns to the question phase
func (s *Session) Reset() error {
	s.mu.Lock()
	if s.ctrl.State().Animating() {
		s.mu.Unlock()
		return ErrTurnInProgress
	}
	s.ctrl.Reset()
	s.mu.Unlock()

	s.logger.Info("session reset")
	s.publish()
	return nil
}

func (s *Session) selectedTarget() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.ctrl.State()
	if state.Phase != game.PhasePlaying {
		return 0, ErrNotPlaying
	}
	card, ok := state.SelectedCard()
	if !ok {
		return 0, ErrNoSelection
	}
	return card.TargetPile(), nil
}

// placeAndReveal moves the selection onto target. If target has nothing left
// to reveal the session ends, otherwise its next card is flipped after delay.
// Once the card is placed the step always completes; a cancelled ctx only
// cuts the pause short and is returned afterwards.
func (s *Session) placeAndReveal(ctx context.Context, target int, delay time.Duration) (Outcome, error) {
	s.mu.Lock()
	card, _ := s.ctrl.State().SelectedCard()
	if !s.ctrl.PlaceCard(target) {
		s.mu.Unlock()
		return Outcome{}, ErrWrongPile
	}
	out := Outcome{Moves: 1}
	over := s.ctrl.CheckGameOver(target)
	next, ok := s.ctrl.NextCardToFlip(target)
	s.mu.Unlock()

	s.logger.Debug("card placed", "card", card.String(), "pile", target)
	s.publish()

	if over {
		waitErr := wait(ctx, s.pacing.FlipDelay)
		s.mu.Lock()
		out.GameOver = true
		out.Result = s.ctrl.Result()
		s.mu.Unlock()

		s.logger.Info("the oracle has spoken", "result", out.Result.String())
		return out, waitErr
	}
	if !ok {
		return out, nil
	}

	waitErr := wait(ctx, delay)

	s.mu.Lock()
	out.Flipped = s.ctrl.FlipCard(target, next)
	s.mu.Unlock()
	return out, waitErr
}
