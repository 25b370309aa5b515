package game

import (
	"sync"

	"github.com/minaorangina/sibyl/deck"
)

// Selection locates the card that has been flipped and is waiting to be placed
type Selection struct {
	PileIndex int
	CardIndex int
}

// State is the record of a single session.
// Only the Controller should mutate it; renderers read it.
type State struct {
	Question string
	Piles    []deck.Pile
	Phase    Phase
	Result   Result

	selection *Selection
	animating bool
}

// NewState returns a fresh state in the question phase
func NewState() *State {
	return &State{
		Piles: []deck.Pile{},
		Phase: PhaseQuestion,
	}
}

func (s *State) SetQuestion(question string) {
	s.Question = question
}

// SetPiles stores a copy of piles. Each pile gets its own backing array
// so moving a card never touches another pile.
func (s *State) SetPiles(piles []deck.Pile) {
	s.Piles = make([]deck.Pile, len(piles))
	for i, p := range piles {
		pile := make(deck.Pile, len(p))
		copy(pile, p)
		s.Piles[i] = pile
	}
}

func (s *State) validIndex(pileIndex, cardIndex int) bool {
	if pileIndex < 0 || pileIndex >= len(s.Piles) {
		return false
	}
	return cardIndex >= 0 && cardIndex < len(s.Piles[pileIndex])
}

// SelectCard makes the card at (pileIndex, cardIndex) the selection,
// replacing any previous one
func (s *State) SelectCard(pileIndex, cardIndex int) bool {
	if !s.validIndex(pileIndex, cardIndex) {
		return false
	}
	s.selection = &Selection{PileIndex: pileIndex, CardIndex: cardIndex}
	return true
}

func (s *State) DeselectCard() {
	s.selection = nil
}

// Selection returns a copy of the current selection, or nil
func (s *State) Selection() *Selection {
	if s.selection == nil {
		return nil
	}
	sel := *s.selection
	return &sel
}

// SelectedCard returns the selected card, if there is one
func (s *State) SelectedCard() (deck.Card, bool) {
	if s.selection == nil {
		return deck.Card{}, false
	}
	return s.Piles[s.selection.PileIndex][s.selection.CardIndex], true
}

// SelectedPileIndex returns the pile the selection came from, if there is one
func (s *State) SelectedPileIndex() (int, bool) {
	if s.selection == nil {
		return 0, false
	}
	return s.selection.PileIndex, true
}

// CanPlaceCard reports whether the selected card may go on targetPileIndex.
// The card's rank alone decides; the target's contents never matter.
func (s *State) CanPlaceCard(targetPileIndex int) bool {
	card, ok := s.SelectedCard()
	if !ok {
		return false
	}
	if targetPileIndex < 0 || targetPileIndex >= len(s.Piles) {
		return false
	}
	return targetPileIndex == card.TargetPile()
}

// FaceDownCards returns the face-down cards of a pile, or none for an unknown pile
func (s *State) FaceDownCards(pileIndex int) []deck.Card {
	if pileIndex < 0 || pileIndex >= len(s.Piles) {
		return []deck.Card{}
	}
	return s.Piles[pileIndex].FaceDown()
}

// CheckVictory reports whether every card of every pile is face up
func (s *State) CheckVictory() bool {
	for _, p := range s.Piles {
		if !p.AllFaceUp() {
			return false
		}
	}
	return true
}

// Animating reports whether a turn is in progress
func (s *State) Animating() bool {
	return s.animating
}

// BeginTurn marks a multi-step turn as in progress. The returned release
// func must be called on every exit path; calling it more than once is safe.
// ok is false if another turn already holds the state.
func (s *State) BeginTurn() (release func(), ok bool) {
	if s.animating {
		return func() {}, false
	}
	s.animating = true

	var once sync.Once
	return func() {
		once.Do(func() { s.animating = false })
	}, true
}
