package deck

import "errors"

const (
	// FullDeckCount is the number of cards in a standard deck
	FullDeckCount = 52

	defaultNumPiles     = 13
	defaultCardsPerPile = 4
)

// ErrInvalidDistribution is returned when the deck can't be split as requested
var ErrInvalidDistribution = errors.New("invalid pile distribution")

// Deck represents a deck of cards
type Deck struct {
	cards []Card
	rng   RNG
}

// New creates a deck of cards in canonical order, shuffled with a clock-seeded RNG
func New() *Deck {
	return NewWithRNG(nil)
}

// NewWithRNG creates a deck of cards that shuffles with the given RNG
func NewWithRNG(rng RNG) *Deck {
	if rng == nil {
		rng = NewRNG()
	}
	d := &Deck{rng: rng}
	d.Initialize()
	return d
}

// Initialize resets the deck to the canonical order, suit-major and rank-minor,
// with every card face down
func (d *Deck) Initialize() {
	d.cards = make([]Card, 0, FullDeckCount)
	for suit := Spades; suit <= Clubs; suit++ {
		for rank := Ace; rank <= King; rank++ {
			d.cards = append(d.cards, Card{Rank: rank, Suit: suit})
		}
	}
}

// Shuffle shuffles the deck of cards in place
func (d *Deck) Shuffle() {
	for i := len(d.cards) - 1; i > 0; i-- {
		j := d.rng.Intn(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Cards returns a copy of the deck in its current order
func (d *Deck) Cards() []Card {
	cards := make([]Card, len(d.cards))
	copy(cards, d.cards)
	return cards
}

// Len returns the number of cards in the deck
func (d *Deck) Len() int {
	return len(d.cards)
}

// Distribute deals the whole deck into 13 piles of 4
func (d *Deck) Distribute() []Pile {
	piles, _ := d.DistributeToPiles(defaultNumPiles, defaultCardsPerPile)
	return piles
}

// DistributeToPiles splits the deck into numPiles piles of cardsPerPile cards,
// taken contiguously in deck order. The deck itself is left untouched.
func (d *Deck) DistributeToPiles(numPiles, cardsPerPile int) ([]Pile, error) {
	if numPiles <= 0 || cardsPerPile <= 0 || numPiles*cardsPerPile > len(d.cards) {
		return nil, ErrInvalidDistribution
	}

	piles := make([]Pile, numPiles)
	for i := range piles {
		start := i * cardsPerPile
		pile := make(Pile, cardsPerPile)
		copy(pile, d.cards[start:start+cardsPerPile])
		piles[i] = pile
	}

	return piles, nil
}
