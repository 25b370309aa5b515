package deck

import (
	"testing"

	utils "github.com/minaorangina/sibyl/internal"
	"github.com/stretchr/testify/assert"
)

func TestCard(t *testing.T) {
	cases := []struct {
		name     string
		rank     Rank
		suit     Suit
		expected string
	}{
		{"Lowest value card", Ace, Spades, "Ace of Spades"},
		{"Specific card", Queen, Hearts, "Queen of Hearts"},
		{"Highest value card", King, Clubs, "King of Clubs"},
	}

	for _, c := range cases {
		card, err := NewCard(c.rank, c.suit)
		utils.AssertNoError(t, err)
		if card.Name() != c.expected {
			utils.TableFailureMessage(t, c.name, card.Name(), c.expected)
		}
		assert.False(t, card.FaceUp, c.name)
	}

	t.Run("out of range", func(t *testing.T) {
		_, err := NewCard(King+1, Spades)
		assert.ErrorIs(t, err, ErrCardOutOfRange)

		_, err = NewCard(Ace, Clubs+1)
		assert.ErrorIs(t, err, ErrCardOutOfRange)

		_, err = NewCard(0, Hearts)
		assert.ErrorIs(t, err, ErrCardOutOfRange)
	})

	t.Run("short form", func(t *testing.T) {
		card, _ := NewCard(Ten, Diamonds)
		utils.AssertEqual(t, card.String(), "10♦")
	})

	t.Run("flip", func(t *testing.T) {
		card, _ := NewCard(Six, Clubs)
		card.Flip()
		assert.True(t, card.FaceUp)

		card.Flip()
		assert.True(t, card.FaceUp)
	})

	t.Run("colour", func(t *testing.T) {
		for _, s := range []Suit{Hearts, Diamonds} {
			assert.True(t, Card{Rank: Ace, Suit: s}.IsRed(), s.Name())
		}
		for _, s := range []Suit{Spades, Clubs} {
			assert.False(t, Card{Rank: Ace, Suit: s}.IsRed(), s.Name())
		}
	})

	t.Run("rank decides the target pile", func(t *testing.T) {
		for r := Ace; r <= King; r++ {
			card := Card{Rank: r, Suit: Hearts}
			utils.AssertEqual(t, card.Value(), int(r))
			utils.AssertEqual(t, card.TargetPile(), int(r)-1)
		}
	})
}
