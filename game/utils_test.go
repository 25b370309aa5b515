package game

import (
	"testing"

	"github.com/minaorangina/sibyl/deck"
)

// pileOfRank builds a face-down pile holding one card of rank in each suit
func pileOfRank(rank deck.Rank) deck.Pile {
	pile := deck.Pile{}
	for suit := deck.Spades; suit <= deck.Clubs; suit++ {
		pile = append(pile, deck.Card{Rank: rank, Suit: suit})
	}
	return pile
}

// winningPiles deals so that every cascade resolves: piles 0-11 hold all
// of the next rank up and the center pile holds the aces.
func winningPiles() []deck.Pile {
	piles := make([]deck.Pile, NumPiles)
	for i := 0; i < CenterPile; i++ {
		piles[i] = pileOfRank(deck.Rank(i + 2))
	}
	piles[CenterPile] = pileOfRank(deck.Ace)
	return piles
}

// stalledPiles puts the four kings in the center so the first cascade
// exhausts the center pile while every other pile is still face down
func stalledPiles() []deck.Pile {
	piles := make([]deck.Pile, NumPiles)
	for i := 0; i < CenterPile; i++ {
		piles[i] = pileOfRank(deck.Rank(i + 1))
	}
	piles[CenterPile] = pileOfRank(deck.King)
	return piles
}

func controllerWithPiles(piles []deck.Pile) *Controller {
	state := NewState()
	state.SetPiles(piles)
	state.Phase = PhasePlaying
	return NewController(ControllerOpts{State: state})
}

// playOut runs the cascade the way a driver would, starting from the center
// pile, and returns the pile the cascade stalled on
func playOut(t *testing.T, c *Controller) int {
	t.Helper()

	if !c.FlipCard(CenterPile, 0) {
		t.Fatal("could not flip the first card")
	}

	for moves := 0; moves <= deck.FullDeckCount; moves++ {
		card, ok := c.State().SelectedCard()
		if !ok {
			t.Fatal("nothing selected mid-cascade")
		}
		target := card.TargetPile()
		if !c.PlaceCard(target) {
			t.Fatalf("could not place %s on pile %d", card, target)
		}
		if c.CheckGameOver(target) {
			return target
		}
		next, ok := c.NextCardToFlip(target)
		if !ok {
			t.Fatalf("pile %d has face-down cards but nothing to flip", target)
		}
		if !c.FlipCard(target, next) {
			t.Fatalf("could not flip card %d of pile %d", next, target)
		}
	}

	t.Fatal("cascade did not terminate")
	return -1
}

func countCards(piles []deck.Pile) int {
	n := 0
	for _, p := range piles {
		n += len(p)
	}
	return n
}

func uniqueCards(piles []deck.Pile) int {
	seen := map[deck.Card]struct{}{}
	for _, p := range piles {
		for _, c := range p {
			c.FaceUp = false
			seen[c] = struct{}{}
		}
	}
	return len(seen)
}
