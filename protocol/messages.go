package protocol

import (
	"github.com/minaorangina/sibyl/deck"
	"github.com/minaorangina/sibyl/game"
)

// InboundMessage is a message from a renderer to a session
type InboundMessage struct {
	Command  Cmd    `json:"command"`
	Question string `json:"question,omitempty"`
	Pile     int    `json:"pile"`
}

// OutboundMessage is a message from a session to a renderer
type OutboundMessage struct {
	Command  Cmd       `json:"command"`
	Snapshot *Snapshot `json:"snapshot,omitempty"`
	Error    string    `json:"error,omitempty"`
}

// CardView is what a renderer may know about a card.
// Face-down cards carry no rank or suit.
type CardView struct {
	FaceUp bool   `json:"faceUp"`
	Rank   int    `json:"rank,omitempty"`
	Suit   string `json:"suit,omitempty"`
	Label  string `json:"label,omitempty"`
	Red    bool   `json:"red,omitempty"`
}

type SelectionView struct {
	PileIndex  int      `json:"pileIndex"`
	CardIndex  int      `json:"cardIndex"`
	TargetPile int      `json:"targetPile"`
	Card       CardView `json:"card"`
}

// Snapshot is a read-only copy of a session for rendering
type Snapshot struct {
	SessionID string         `json:"sessionID"`
	Question  string         `json:"question"`
	Phase     string         `json:"phase"`
	Result    string         `json:"result"`
	Piles     [][]CardView   `json:"piles"`
	Selected  *SelectionView `json:"selected,omitempty"`
	Animating bool           `json:"animating"`
}

// NewCardView hides everything about a face-down card
func NewCardView(c deck.Card) CardView {
	if !c.FaceUp {
		return CardView{}
	}
	return CardView{
		FaceUp: true,
		Rank:   c.Value(),
		Suit:   c.Suit.Name(),
		Label:  c.String(),
		Red:    c.IsRed(),
	}
}

// NewSnapshot copies everything a renderer needs out of a game state
func NewSnapshot(sessionID string, s *game.State) Snapshot {
	snap := Snapshot{
		SessionID: sessionID,
		Question:  s.Question,
		Phase:     s.Phase.String(),
		Result:    s.Result.String(),
		Piles:     make([][]CardView, len(s.Piles)),
		Animating: s.Animating(),
	}

	for i, p := range s.Piles {
		views := make([]CardView, len(p))
		for j, c := range p {
			views[j] = NewCardView(c)
		}
		snap.Piles[i] = views
	}

	if sel := s.Selection(); sel != nil {
		card, _ := s.SelectedCard()
		snap.Selected = &SelectionView{
			PileIndex:  sel.PileIndex,
			CardIndex:  sel.CardIndex,
			TargetPile: card.TargetPile(),
			Card:       NewCardView(card),
		}
	}

	return snap
}

// FaceDownCount returns how many cards of a pile are still hidden
func (s Snapshot) FaceDownCount(pileIndex int) int {
	if pileIndex < 0 || pileIndex >= len(s.Piles) {
		return 0
	}
	n := 0
	for _, c := range s.Piles[pileIndex] {
		if !c.FaceUp {
			n++
		}
	}
	return n
}
