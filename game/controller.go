package game

import (
	"errors"

	"github.com/minaorangina/sibyl/deck"
)

var ErrGameAlreadyStarted = errors.New("game has already started")

// Controller is the only way a driver should change a session
type Controller struct {
	deck  *deck.Deck
	state *State
}

type ControllerOpts struct {
	Deck  *deck.Deck
	State *State
}

// NewController constructs a Controller. Missing options get a fresh deck and state.
func NewController(opts ControllerOpts) *Controller {
	c := &Controller{
		deck:  opts.Deck,
		state: opts.State,
	}
	if c.deck == nil {
		c.deck = deck.New()
	}
	if c.state == nil {
		c.state = NewState()
	}
	return c
}

func (c *Controller) State() *State {
	return c.state
}

func (c *Controller) Deck() *deck.Deck {
	return c.deck
}

// StartGame shuffles and deals 13 piles of 4. It does not flip anything:
// the driver reveals the first card when it is ready.
func (c *Controller) StartGame(question string) error {
	if c.state.Phase != PhaseQuestion {
		return ErrGameAlreadyStarted
	}

	c.state.SetQuestion(question)
	c.state.Phase = PhaseShuffling

	c.deck.Shuffle()
	c.state.SetPiles(c.deck.Distribute())

	c.state.Phase = PhasePlaying
	return nil
}

// FlipCard turns over the card at cardIndex and selects it.
// The caller is trusted to pass the pile's next revealable index.
func (c *Controller) FlipCard(pileIndex, cardIndex int) bool {
	if !c.state.validIndex(pileIndex, cardIndex) {
		return false
	}

	card := &c.state.Piles[pileIndex][cardIndex]
	if card.FaceUp {
		return false
	}

	card.Flip()
	return c.state.SelectCard(pileIndex, cardIndex)
}

// PlaceCard moves the selected card from its pile to the end of targetPileIndex
func (c *Controller) PlaceCard(targetPileIndex int) bool {
	if !c.state.CanPlaceCard(targetPileIndex) {
		return false
	}

	sel := c.state.selection
	from := c.state.Piles[sel.PileIndex]
	card := from[sel.CardIndex]

	c.state.Piles[sel.PileIndex] = append(from[:sel.CardIndex], from[sel.CardIndex+1:]...)
	c.state.Piles[targetPileIndex] = append(c.state.Piles[targetPileIndex], card)

	c.state.DeselectCard()
	return true
}

// NextCardToFlip returns the index of the lowest face-down card in a pile
func (c *Controller) NextCardToFlip(pileIndex int) (int, bool) {
	if pileIndex < 0 || pileIndex >= len(c.state.Piles) {
		return 0, false
	}
	return c.state.Piles[pileIndex].NextFaceDown()
}

// CheckGameOver reports whether the cascade has stalled on lastPileIndex.
// Other piles may still hold face-down cards; Result decides the game.
func (c *Controller) CheckGameOver(lastPileIndex int) bool {
	return len(c.state.FaceDownCards(lastPileIndex)) == 0
}

// Result records the outcome and moves the session to the result phase
func (c *Controller) Result() Result {
	result := Failure
	if c.state.CheckVictory() {
		result = Success
	}

	c.state.Result = result
	c.state.Phase = PhaseResult
	return result
}

// Reset puts the deck back in order and starts a new session record
func (c *Controller) Reset() {
	c.deck.Initialize()
	c.state = NewState()
}
