package deck

import (
	"errors"
	"fmt"
)

// ErrCardOutOfRange is returned when constructing a card from invalid values
var ErrCardOutOfRange = errors.New("card arguments out of range")

// Rank represents a rank in a deck of cards, Ace low
type Rank int

var (
	rankSymbols = []string{"", "A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K"}
	rankNames   = []string{"", "Ace", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine", "Ten", "Jack", "Queen", "King"}
)

const (
	Ace Rank = iota + 1
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

func (r Rank) valid() bool {
	return r >= Ace && r <= King
}

func (r Rank) String() string {
	if !r.valid() {
		return "?"
	}
	return rankSymbols[r]
}

// Name returns the rank in words
func (r Rank) Name() string {
	if !r.valid() {
		return "Unknown"
	}
	return rankNames[r]
}

// Value is the 1-based position of the rank
func (r Rank) Value() int {
	return int(r)
}

// Suit represents a suit in a deck of cards
type Suit int

var (
	suitSymbols = []string{"♠", "♥", "♦", "♣"}
	suitNames   = []string{"Spades", "Hearts", "Diamonds", "Clubs"}
)

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

func (s Suit) valid() bool {
	return s >= Spades && s <= Clubs
}

func (s Suit) String() string {
	if !s.valid() {
		return "?"
	}
	return suitSymbols[s]
}

// Name returns the suit in words
func (s Suit) Name() string {
	if !s.valid() {
		return "Unknown"
	}
	return suitNames[s]
}

// Card represents a playing card.
// Rank and suit never change; FaceUp goes from false to true once.
type Card struct {
	Rank   Rank
	Suit   Suit
	FaceUp bool
}

// NewCard constructs a face-down card
func NewCard(rank Rank, suit Suit) (Card, error) {
	if !rank.valid() || !suit.valid() {
		return Card{}, ErrCardOutOfRange
	}
	return Card{Rank: rank, Suit: suit}, nil
}

// Flip turns the card face up
func (c *Card) Flip() {
	c.FaceUp = true
}

// IsRed reports whether the card is a heart or a diamond
func (c Card) IsRed() bool {
	return c.Suit == Hearts || c.Suit == Diamonds
}

// Value returns the card's rank value, 1 to 13
func (c Card) Value() int {
	return c.Rank.Value()
}

// TargetPile is the index of the only pile this card may be placed on
func (c Card) TargetPile() int {
	return c.Rank.Value() - 1
}

// Name returns the card in words, e.g. "Queen of Hearts"
func (c Card) Name() string {
	return fmt.Sprintf("%s of %s", c.Rank.Name(), c.Suit.Name())
}

func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}
