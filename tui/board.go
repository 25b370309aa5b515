package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/minaorangina/sibyl/game"
	"github.com/minaorangina/sibyl/protocol"
)

const cellWidth = 14

// The clock face, clockwise from the top left corner, with the center pile
// spanning the middle four cells:
//
//	 0   1   2   3
//	11    12     4
//	10           5
//	 9   8   7   6
var layout = [4][4]int{
	{0, 1, 2, 3},
	{11, game.CenterPile, game.CenterPile, 4},
	{10, game.CenterPile, game.CenterPile, 5},
	{9, 8, 7, 6},
}

type cell struct {
	row, col int
}

var positions = func() map[int]cell {
	pos := make(map[int]cell, game.NumPiles)
	for r := range layout {
		for c := range layout[r] {
			if _, ok := pos[layout[r][c]]; !ok {
				pos[layout[r][c]] = cell{r, c}
			}
		}
	}
	return pos
}()

// move walks from pile in the given direction until it reaches a different
// pile. It stays put at the edge of the board.
func move(pile, dRow, dCol int) int {
	p, ok := positions[pile]
	if !ok {
		return pile
	}

	r, c := p.row, p.col
	for {
		r, c = r+dRow, c+dCol
		if r < 0 || r >= len(layout) || c < 0 || c >= len(layout[r]) {
			return pile
		}
		if layout[r][c] != pile {
			return layout[r][c]
		}
	}
}

func pileLabel(i int) string {
	if i == game.CenterPile {
		return "Center"
	}
	return fmt.Sprintf("Pile %d", i+1)
}

func renderCard(c protocol.CardView, selected bool) string {
	if !c.FaceUp {
		return styleCardBack.Render("▒▒")
	}
	if selected {
		return styleCardSelected.Render(c.Label)
	}
	if c.Red {
		return styleCardRed.Render(c.Label)
	}
	return styleCardBlack.Render(c.Label)
}

func renderPile(snap protocol.Snapshot, i, cursor int, width int) string {
	var cards []string
	for j, c := range snap.Piles[i] {
		selected := snap.Selected != nil && snap.Selected.PileIndex == i && snap.Selected.CardIndex == j
		cards = append(cards, renderCard(c, selected))
	}

	style := stylePile
	switch {
	case i == cursor:
		style = stylePileCursor
	case snap.Selected != nil && !snap.Animating && snap.Selected.TargetPile == i:
		style = stylePileTarget
	}

	body := styleLabel.Render(pileLabel(i)) + "\n" + strings.Join(cards, " ")
	return style.Copy().Width(width).Render(body)
}

// renderBoard draws the piles as a clock face. cursor is -1 to hide it.
func renderBoard(snap protocol.Snapshot, cursor int) string {
	if len(snap.Piles) != game.NumPiles {
		return ""
	}

	wide := 2*cellWidth + 2
	rows := make([]string, 0, len(layout))
	for r := range layout {
		var cells []string
		for c := 0; c < len(layout[r]); c++ {
			i := layout[r][c]
			if i != game.CenterPile {
				cells = append(cells, renderPile(snap, i, cursor, cellWidth))
				continue
			}

			if positions[i] == (cell{r, c}) {
				cells = append(cells, renderPile(snap, i, cursor, wide))
			} else {
				cells = append(cells, lipgloss.NewStyle().Width(wide+2).Render(""))
			}
			c++
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
