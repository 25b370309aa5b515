package deck

// Pile is an ordered stack of cards. The last card is the top.
type Pile []Card

// FaceDown returns the cards in the pile that haven't been turned over
func (p Pile) FaceDown() []Card {
	cards := []Card{}
	for _, c := range p {
		if !c.FaceUp {
			cards = append(cards, c)
		}
	}
	return cards
}

// NextFaceDown returns the index of the lowest face-down card
func (p Pile) NextFaceDown() (int, bool) {
	for i, c := range p {
		if !c.FaceUp {
			return i, true
		}
	}
	return 0, false
}

// Top returns the last card of the pile
func (p Pile) Top() (Card, bool) {
	if len(p) == 0 {
		return Card{}, false
	}
	return p[len(p)-1], true
}

// AllFaceUp reports whether every card in the pile is face up
func (p Pile) AllFaceUp() bool {
	_, ok := p.NextFaceDown()
	return !ok
}
