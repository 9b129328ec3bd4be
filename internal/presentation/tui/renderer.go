package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"
	"github.com/rocketscienceinc/ghost-tictactoe/internal/entity"
)

const (
	colorHuman    = "#424242"
	colorComputer = "#efe7c8"
	colorEmpty    = "#179187"
	colorLine     = "#ff0000"
	colorTitle    = "#1cab9c"
)

const rules = `# The Most Amazing X O Game Ever

You play **X**, the computer plays **O**. Type a cell number to place your mark:

| | | |
|---|---|---|
| 1 | 2 | 3 |
| 4 | 5 | 6 |
| 7 | 8 | 9 |

Row and column also work, for example ` + "`2 3`" + `.

Watch out: now and then a *ghost* moves one of your marks before yours lands.
And if you ever complete a line, the computer will know you cheated.

Commands: ` + "`s`" + ` start, ` + "`r`" + ` restart, ` + "`h`" + ` help, ` + "`q`" + ` quit.
`

// MarkdownFunc renders markdown for the terminal.
type MarkdownFunc func(markdown string) (string, error)

// NewMarkdown returns a glamour renderer; plain selects the style without colors.
func NewMarkdown(plain bool) MarkdownFunc {
	option := glamour.WithAutoStyle()
	if plain {
		option = glamour.WithStandardStyle("notty")
	}

	r, err := glamour.NewTermRenderer(option, glamour.WithWordWrap(72))
	if err != nil {
		return func(markdown string) (string, error) {
			return markdown, nil
		}
	}

	return r.Render
}

// Renderer draws the game screens as text.
type Renderer struct {
	out      io.Writer
	profile  termenv.Profile
	markdown MarkdownFunc
}

func NewRenderer(out io.Writer, profile termenv.Profile, markdown MarkdownFunc) *Renderer {
	return &Renderer{
		out:      out,
		profile:  profile,
		markdown: markdown,
	}
}

func (that *Renderer) Banner() {
	PrintBanner(that.out, that.profile)
}

func (that *Renderer) Menu() {
	fmt.Fprintln(that.out, that.style("THE MOST AMAZING X O GAME EVER", colorTitle).Bold())
	fmt.Fprintln(that.out, "Ready To Lose?")
	fmt.Fprintln(that.out, "  [s] Let's Play   [h] Help   [q] I Quit :((")
}

func (that *Renderer) Rules() {
	text, err := that.markdown(rules)
	if err != nil {
		text = rules
	}

	fmt.Fprint(that.out, text)
}

// Board draws the grid. Empty cells show their number; cells of a winning line are highlighted.
func (that *Renderer) Board(board entity.Board, outcome entity.Outcome) {
	highlight := map[entity.Move]bool{}
	if outcome.Kind == entity.Win {
		for _, cell := range outcome.Line.Cells {
			highlight[cell] = true
		}
	}

	fmt.Fprintln(that.out)
	for row := range entity.BoardSize {
		cells := make([]string, 0, entity.BoardSize)
		for col := range entity.BoardSize {
			move := entity.Move{Row: row, Col: col}
			cells = append(cells, " "+that.cell(board[row][col], move, highlight[move]).String()+" ")
		}

		fmt.Fprintln(that.out, strings.Join(cells, "|"))
		if row < entity.BoardSize-1 {
			fmt.Fprintln(that.out, "---+---+---")
		}
	}
	fmt.Fprintln(that.out)
}

// EndPopup announces the result. score may be nil.
func (that *Renderer) EndPopup(outcome entity.Outcome, score *entity.Score) {
	fmt.Fprintln(that.out, that.style(resultMessage(outcome), colorLine).Bold())

	if score != nil {
		fmt.Fprintf(that.out, "Games %d | Computer %d (cheat %d) | Draws %d\n",
			score.Games, score.ComputerWins, score.CheatWins, score.Draws)
	}

	fmt.Fprintln(that.out, "  [r] Try Again?   [q] I Quit :((")
}

func (that *Renderer) Prompt(text string) {
	fmt.Fprintf(that.out, "%s > ", text)
}

func (that *Renderer) Notice(text string) {
	fmt.Fprintln(that.out, text)
}

// Flash prints an alert in the highlight color.
func (that *Renderer) Flash(text string) {
	fmt.Fprintln(that.out, that.style(text, colorLine).Bold())
}

func (that *Renderer) cell(cell entity.Cell, move entity.Move, highlighted bool) termenv.Style {
	var style termenv.Style
	switch cell {
	case entity.HumanCell:
		style = that.style(cell.String(), colorHuman)
	case entity.ComputerCell:
		style = that.style(cell.String(), colorComputer)
	default:
		return that.style(fmt.Sprint(cellNumber(move)), colorEmpty).Faint()
	}

	if highlighted {
		return style.Foreground(that.profile.Color(colorLine)).Bold()
	}

	return style
}

func (that *Renderer) style(text, color string) termenv.Style {
	return that.profile.String(text).Foreground(that.profile.Color(color))
}

func resultMessage(outcome entity.Outcome) string {
	switch {
	case outcome.Kind == entity.Draw:
		return "a draw!! You lucky"
	case outcome.Cheated:
		return "YOU CHEAT!!"
	case outcome.Kind == entity.Win:
		return "HAHAHAHA YOU LOST"
	default:
		return "Game in progress"
	}
}

// cellNumber is the 1-based row-major number shown for a cell.
func cellNumber(move entity.Move) int {
	return move.Row*entity.BoardSize + move.Col + 1
}
