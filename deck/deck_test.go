package deck

import (
	"testing"

	utils "github.com/minaorangina/sibyl/internal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cardSet(cards []Card) map[Card]struct{} {
	set := map[Card]struct{}{}
	for _, c := range cards {
		set[c] = struct{}{}
	}
	return set
}

func TestDeck(t *testing.T) {
	t.Run("new deck is complete", func(t *testing.T) {
		d := New()
		utils.AssertEqual(t, d.Len(), FullDeckCount)
		utils.AssertEqual(t, len(cardSet(d.Cards())), FullDeckCount)

		for _, c := range d.Cards() {
			assert.False(t, c.FaceUp)
		}
	})

	t.Run("canonical order is suit-major, rank-minor", func(t *testing.T) {
		cards := New().Cards()
		utils.AssertEqual(t, cards[0], Card{Rank: Ace, Suit: Spades})
		utils.AssertEqual(t, cards[12], Card{Rank: King, Suit: Spades})
		utils.AssertEqual(t, cards[13], Card{Rank: Ace, Suit: Hearts})
		utils.AssertEqual(t, cards[51], Card{Rank: King, Suit: Clubs})
	})

	t.Run("shuffle is a permutation", func(t *testing.T) {
		d := NewWithRNG(NewSeededRNG(42))
		before := d.Cards()
		d.Shuffle()
		after := d.Cards()

		require.Len(t, after, FullDeckCount)
		assert.Equal(t, cardSet(before), cardSet(after))
		assert.NotEqual(t, before, after)
	})

	t.Run("same seed, same order", func(t *testing.T) {
		a, b := NewWithRNG(NewSeededRNG(7)), NewWithRNG(NewSeededRNG(7))
		a.Shuffle()
		b.Shuffle()
		assert.Equal(t, a.Cards(), b.Cards())
	})

	t.Run("initialize restores canonical order", func(t *testing.T) {
		d := New()
		d.Shuffle()
		d.Initialize()
		assert.Equal(t, NewWithRNG(NewSeededRNG(1)).Cards(), d.Cards())
	})

	t.Run("cards returns a copy", func(t *testing.T) {
		d := New()
		cards := d.Cards()
		cards[0].Flip()
		assert.False(t, d.Cards()[0].FaceUp)
	})
}

func TestDistributeToPiles(t *testing.T) {
	t.Run("13 piles of 4 cover the deck", func(t *testing.T) {
		d := New()
		d.Shuffle()
		piles := d.Distribute()

		require.Len(t, piles, 13)
		all := []Card{}
		for _, p := range piles {
			utils.AssertEqual(t, len(p), 4)
			all = append(all, p...)
		}
		utils.AssertEqual(t, len(cardSet(all)), FullDeckCount)
		assert.Equal(t, d.Cards(), all)
	})

	t.Run("takes cards contiguously", func(t *testing.T) {
		d := New()
		piles, err := d.DistributeToPiles(2, 3)
		utils.AssertNoError(t, err)

		cards := d.Cards()
		assert.Equal(t, Pile(cards[0:3]), piles[0])
		assert.Equal(t, Pile(cards[3:6]), piles[1])
		utils.AssertEqual(t, d.Len(), FullDeckCount)
	})

	t.Run("piles don't alias the deck", func(t *testing.T) {
		d := New()
		piles := d.Distribute()
		piles[0][0].Flip()
		assert.False(t, d.Cards()[0].FaceUp)
	})

	t.Run("rejects impossible splits", func(t *testing.T) {
		d := New()
		for _, args := range [][2]int{{0, 4}, {13, 0}, {-1, 4}, {14, 4}, {13, 5}} {
			_, err := d.DistributeToPiles(args[0], args[1])
			assert.ErrorIs(t, err, ErrInvalidDistribution, "%v", args)
		}
	})
}

func TestPile(t *testing.T) {
	pile := Pile{
		{Rank: Two, Suit: Clubs},
		{Rank: Three, Suit: Clubs},
		{Rank: Four, Suit: Clubs, FaceUp: true},
	}

	utils.AssertEqual(t, len(pile.FaceDown()), 2)

	idx, ok := pile.NextFaceDown()
	assert.True(t, ok)
	utils.AssertEqual(t, idx, 0)

	top, ok := pile.Top()
	assert.True(t, ok)
	utils.AssertEqual(t, top.Rank, Four)
	assert.False(t, pile.AllFaceUp())

	pile[0].Flip()
	pile[1].Flip()
	_, ok = pile.NextFaceDown()
	assert.False(t, ok)
	assert.True(t, pile.AllFaceUp())

	_, ok = Pile{}.Top()
	assert.False(t, ok)
	assert.Empty(t, Pile{}.FaceDown())
}
