package tui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"github.com/arekfu/quoridor/pkg/engine/input"
	"github.com/arekfu/quoridor/pkg/engine/terminal"
	"github.com/arekfu/quoridor/pkg/game/renderer"
	"github.com/arekfu/quoridor/pkg/game/state"
)

// dynamicGet looks up catalog keys at runtime without tripping go vet's
// format string check
var dynamicGet = gotext.Get

// Lines printed around the board: title, blank, seats, mode, messages
// header and footer, key help and prompt
const frameExtraLines = 14

// KeyReader returns the next raw key
type KeyReader func() (input.RawInput, error)

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	out     io.Writer
	readKey KeyReader

	colorCell          color.Style
	colorWall          color.Style
	colorCursor        color.Style
	colorCursorBlocked color.Style
	colorAction        color.Style
	colorActionShort   color.Style
	colorDenied        color.Style
	colorSubtle        color.Style
	colorWinner        color.Style
	colorSeats         [4]color.Style
}

// Option configures a TUIRenderer
type Option func(*TUIRenderer)

// WithOutput sets where frames are written
func WithOutput(w io.Writer) Option {
	return func(t *TUIRenderer) {
		t.out = w
	}
}

// WithKeyReader replaces the raw terminal key reader
func WithKeyReader(r KeyReader) Option {
	return func(t *TUIRenderer) {
		t.readKey = r
	}
}

// New creates a new TUI renderer
func New(opts ...Option) *TUIRenderer {
	t := &TUIRenderer{
		out:     os.Stdout,
		readKey: input.ReadTerminalKey,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Init initializes the TUI renderer (colors, etc.)
func (t *TUIRenderer) Init() error {
	t.colorCell = color.Style{color.FgGray}
	t.colorWall = color.Style{color.FgYellow, color.OpBold}
	t.colorCursor = color.Style{color.FgCyan, color.OpBold}
	t.colorCursorBlocked = color.Style{color.FgRed, color.OpBold}
	t.colorAction = color.Style{color.FgMagenta}
	t.colorActionShort = color.Style{color.FgMagenta, color.OpBold}
	t.colorDenied = color.Style{color.FgRed, color.OpBold}
	t.colorSubtle = color.Style{color.FgGray, color.OpBold}
	t.colorWinner = color.Style{color.FgGreen, color.OpBold}
	t.colorSeats = [4]color.Style{
		{color.FgGreen, color.BgBlack, color.OpBold},
		{color.FgBlue, color.BgBlack, color.OpBold},
		{color.FgRed, color.BgBlack, color.OpBold},
		{color.FgMagenta, color.BgBlack, color.OpBold},
	}
	return nil
}

// Clear clears the terminal screen
func (t *TUIRenderer) Clear() {
	terminal.Clear(t.out)
}

// GetInput reads one key from the terminal and returns a high-level Intent.
// Ctrl+C quits.
func (t *TUIRenderer) GetInput() input.Intent {
	for {
		raw, err := t.readKey()
		if errors.Is(err, input.ErrInterrupted) || errors.Is(err, io.EOF) {
			return input.Intent{Action: input.ActionQuit}
		}
		if err != nil {
			continue
		}
		if intent := input.MapToIntent(input.NewDebouncedInput(raw)); intent.Action != input.ActionNone {
			return intent
		}
	}
}

// StyleText applies a style to text
func (t *TUIRenderer) StyleText(text string, style renderer.TextStyle) string {
	switch style {
	case renderer.StyleCell:
		return t.colorCell.Sprint(text)
	case renderer.StyleWall:
		return t.colorWall.Sprint(text)
	case renderer.StyleCursor:
		return t.colorCursor.Sprint(text)
	case renderer.StyleCursorBlocked:
		return t.colorCursorBlocked.Sprint(text)
	case renderer.StyleAction:
		return t.colorAction.Sprint(text)
	case renderer.StyleActionShort:
		return t.colorActionShort.Sprint(text)
	case renderer.StyleDenied:
		return t.colorDenied.Sprint(text)
	case renderer.StyleSubtle:
		return t.colorSubtle.Sprint(text)
	case renderer.StyleWinner:
		return t.colorWinner.Sprint(text)
	case renderer.StyleSeat1, renderer.StyleSeat2, renderer.StyleSeat3, renderer.StyleSeat4:
		return t.colorSeats[style-renderer.StyleSeat1].Sprint(text)
	default:
		return text
	}
}

// ShowMessage displays a message to the user
func (t *TUIRenderer) ShowMessage(msg string) {
	fmt.Fprintln(t.out, msg)
}

// RenderFrame renders a complete game frame
func (t *TUIRenderer) RenderFrame(g *state.Game) {
	t.Clear()

	fmt.Fprintln(t.out, t.colorActionShort.Sprint(dynamicGet("TITLE")))
	fmt.Fprintln(t.out)

	side := g.Board.Side()
	width, height := terminal.GetSize()
	if !terminal.Fits(side, frameExtraLines, width, height) {
		bw, bh := terminal.BoardSize(side)
		fmt.Fprintln(t.out, t.colorDenied.Sprint(dynamicGet("TERMINAL_TOO_SMALL", bw, bh+frameExtraLines)))
	}

	t.printBoard(g)
	t.printSeats(g)
	t.printMode(g)
	t.printMessagesPane(g, width)
	t.printBullet(dynamicGet("KEYS"))

	fmt.Fprint(t.out, "\n> ")
}

func (t *TUIRenderer) printBoard(g *state.Game) {
	v := renderer.BuildView(g.Board, renderer.GameCursor(g))
	for row := 0; row < v.Size; row++ {
		var sb strings.Builder
		for col := 0; col < v.Size; col++ {
			sb.WriteString(t.renderGlyph(v.At(col, row)))
		}
		fmt.Fprintln(t.out, sb.String())
	}
	fmt.Fprintln(t.out)
}

// renderGlyph returns the styled string for one lattice position
func (t *TUIRenderer) renderGlyph(gl renderer.Glyph) string {
	s := string(gl.Rune)
	switch gl.Kind {
	case renderer.GlyphCell, renderer.GlyphCorner:
		return t.colorCell.Sprint(s)
	case renderer.GlyphWall:
		return t.colorWall.Sprint(s)
	case renderer.GlyphSeat:
		return t.StyleText(s, renderer.SeatStyle(gl.Seat))
	case renderer.GlyphCursor:
		return t.colorCursor.Sprint(s)
	case renderer.GlyphCursorBlocked:
		return t.colorCursorBlocked.Sprint(s)
	default:
		return s
	}
}

// printSeats prints one line per seat with its distance and stock,
// marking whose turn it is
func (t *TUIRenderer) printSeats(g *state.Game) {
	winner, won := g.Board.Winner()
	for i, s := range g.Board.Seats() {
		stock := dynamicGet("UNLIMITED")
		if s.Barriers != state.UnlimitedBarriers {
			stock = fmt.Sprint(s.Barriers)
		}
		line := dynamicGet("SEAT_SUMMARY", s.Symbol, g.Board.Distance(i), stock)
		if s.IsComputer() {
			line += " (" + dynamicGet("COMPUTER") + ")"
		}

		marker := "  "
		switch {
		case won && winner == i:
			marker = "* "
			line = t.colorWinner.Sprint(line)
		case !won && g.Turn == i:
			marker = "> "
			line = t.StyleText(line, renderer.SeatStyle(i))
		}
		fmt.Fprintln(t.out, marker+line)
	}
}

func (t *TUIRenderer) printMode(g *state.Game) {
	fmt.Fprintln(t.out)
	if g.Over {
		fmt.Fprintln(t.out, t.colorSubtle.Sprint(dynamicGet("GAME_OVER")))
		return
	}
	if g.Mode == state.ModeBarrier {
		fmt.Fprintln(t.out, t.colorAction.Sprint(dynamicGet("MODE_BARRIER")))
		return
	}
	fmt.Fprintln(t.out, t.colorAction.Sprint(dynamicGet("MODE_STEP")))
}

// printBullet prints a bulleted item
func (t *TUIRenderer) printBullet(txt string) {
	fmt.Fprintln(t.out, "- "+t.colorSubtle.Sprint(txt))
}

// printMessagesPane renders the messages log pane
func (t *TUIRenderer) printMessagesPane(g *state.Game, width int) {
	label := " Messages "
	labelLen := len(label)
	sideLen := (width - labelLen) / 2
	if sideLen < 1 {
		sideLen = 1
	}
	rest := width - sideLen - labelLen
	if rest < 1 {
		rest = 1
	}

	fmt.Fprintln(t.out)
	fmt.Fprintln(t.out, t.colorSubtle.Sprint(strings.Repeat("─", sideLen)+label+strings.Repeat("─", rest)))

	if len(g.Messages) == 0 {
		fmt.Fprintln(t.out, t.colorSubtle.Sprint("  (no messages)"))
	} else {
		for _, msg := range g.Messages {
			fmt.Fprintf(t.out, "  %s\n", msg)
		}
	}
	for _, h := range g.Hints {
		fmt.Fprintf(t.out, "  %s\n", t.colorAction.Sprint(h))
	}

	fmt.Fprintln(t.out, t.colorSubtle.Sprint(strings.Repeat("─", sideLen+labelLen+rest)))
}
