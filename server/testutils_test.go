package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/minaorangina/sibyl/deck"
	"github.com/minaorangina/sibyl/engine"
	"github.com/minaorangina/sibyl/game"
	"github.com/minaorangina/sibyl/protocol"
	"github.com/minaorangina/sibyl/store"
)

func newTestServer(s store.SessionStore) *GameServer {
	return NewServer(ServerOpts{
		Store:  s,
		Pacing: engine.NoPacing,
		RNG:    func() deck.RNG { return deck.NewSeededRNG(7) },
	})
}

func pileOfRank(rank deck.Rank) deck.Pile {
	pile := deck.Pile{}
	for suit := deck.Spades; suit <= deck.Clubs; suit++ {
		pile = append(pile, deck.Card{Rank: rank, Suit: suit})
	}
	return pile
}

// winningSession is mid-game with its center card revealed; every cascade
// resolves
func winningSession(id string) *engine.Session {
	piles := make([]deck.Pile, game.NumPiles)
	for i := 0; i < game.CenterPile; i++ {
		piles[i] = pileOfRank(deck.Rank(i + 2))
	}
	piles[game.CenterPile] = pileOfRank(deck.Ace)

	state := game.NewState()
	state.SetQuestion("Will it rain?")
	state.SetPiles(piles)
	state.Phase = game.PhasePlaying

	c := game.NewController(game.ControllerOpts{State: state})
	c.FlipCard(game.CenterPile, 0)

	return engine.NewSession(engine.SessionOpts{
		ID:         id,
		Controller: c,
		Pacing:     engine.NoPacing,
	})
}

func mustMakeJson(t *testing.T, v interface{}) []byte {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatal(err)
	}
	return data
}

func newCommandRequest(t *testing.T, sessionID string, msg protocol.InboundMessage) *http.Request {
	t.Helper()
	request, _ := http.NewRequest(http.MethodPost, "/session/"+sessionID, bytes.NewReader(mustMakeJson(t, msg)))
	return request
}

func decodeSnapshot(t *testing.T, body io.Reader) protocol.Snapshot {
	t.Helper()
	var snap protocol.Snapshot
	if err := json.NewDecoder(body).Decode(&snap); err != nil {
		t.Fatalf("could not decode snapshot: %v", err)
	}
	return snap
}

func assertStatus(t *testing.T, got, want int) {
	t.Helper()
	if got != want {
		t.Errorf("did not get correct status, got %d, want %d", got, want)
	}
}
