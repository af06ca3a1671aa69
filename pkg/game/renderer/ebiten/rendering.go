package ebiten

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/arekfu/quoridor/pkg/game/renderer"
)

// boardGeometry places the lattice on screen
type boardGeometry struct {
	x, y float32 // top-left corner of the board
	tile float32 // cell size
	gap  float32 // wall thickness
}

// offset returns the pixel offset and extent of lattice coordinate c
func (bg boardGeometry) offset(c int) (float32, float32) {
	step := bg.tile + bg.gap
	if c%2 == 0 {
		return float32(c/2) * step, bg.gap
	}
	return float32(c/2)*step + bg.gap, bg.tile
}

// cellCenter returns the pixel center of a possibly fractional cell
func (bg boardGeometry) cellCenter(x, y float32) (float32, float32) {
	step := bg.tile + bg.gap
	return bg.x + x*step + bg.gap + bg.tile/2, bg.y + y*step + bg.gap + bg.tile/2
}

// Draw renders the game to the screen (Ebiten interface)
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	e.snapshotMutex.RLock()
	defer e.snapshotMutex.RUnlock()
	snap := &e.snapshot

	if !snap.valid || e.fontSource == nil {
		// Can't draw without valid snapshot or fonts
		return
	}

	screenWidth, screenHeight := screen.Bounds().Dx(), screen.Bounds().Dy()
	headerHeight := int(e.getFontSize()) + 20

	availableWidth := screenWidth - panelWidth - boardMargin*3
	availableHeight := screenHeight - headerHeight - boardMargin*2
	area := availableWidth
	if availableHeight < area {
		area = availableHeight
	}
	if area < snap.side {
		return
	}

	side := float32(snap.side)
	tile := float32(area) / (side + gapRatio*(side+1))
	geo := boardGeometry{
		x:    boardMargin,
		y:    float32(headerHeight + boardMargin),
		tile: tile,
		gap:  tile * gapRatio,
	}

	e.drawHeader(screen, snap)

	vector.DrawFilledRect(screen, geo.x-boardMargin/2, geo.y-boardMargin/2,
		float32(area)+boardMargin, float32(area)+boardMargin, colorBoardBackground, false)

	e.drawBoard(screen, snap, geo)
	e.drawPawns(screen, snap, geo)

	panelX := int(geo.x) + area + boardMargin*2
	e.drawPanel(screen, snap, panelX, int(geo.y), screenWidth-panelX-boardMargin)
}

func (e *EbitenRenderer) drawHeader(screen *ebiten.Image, snap *renderSnapshot) {
	e.drawColoredText(screen, dynamicGet("TITLE")+"  "+snap.mode, boardMargin, 10, colorAction)
}

// drawBoard paints cells, walls and the barrier cursor from the lattice
func (e *EbitenRenderer) drawBoard(screen *ebiten.Image, snap *renderSnapshot, geo boardGeometry) {
	v := snap.view
	cursor := pulse(colorCursor)

	for row := 0; row < v.Size; row++ {
		for col := 0; col < v.Size; col++ {
			var c color.Color
			switch g := v.At(col, row); g.Kind {
			case renderer.GlyphCell, renderer.GlyphSeat:
				c = colorFloor
			case renderer.GlyphWall:
				c = colorWall
			case renderer.GlyphCorner:
				if !cornerTouchesWall(v, col, row) {
					continue
				}
				c = colorWall
			case renderer.GlyphCursor:
				c = cursor
			case renderer.GlyphCursorBlocked:
				c = colorCursorBlocked
			default:
				continue
			}

			x, w := geo.offset(col)
			y, h := geo.offset(row)
			vector.DrawFilledRect(screen, geo.x+x, geo.y+y, w, h, c, false)
		}
	}
}

// cornerTouchesWall reports whether a lattice point joins at least one wall
func cornerTouchesWall(v renderer.BoardView, col, row int) bool {
	for _, d := range [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}} {
		c, r := col+d[0], row+d[1]
		if c < 0 || r < 0 || c >= v.Size || r >= v.Size {
			continue
		}
		if v.At(c, r).Kind == renderer.GlyphWall {
			return true
		}
	}
	return false
}

// drawPawns draws every pawn where its slide currently puts it
func (e *EbitenRenderer) drawPawns(screen *ebiten.Image, snap *renderSnapshot, geo boardGeometry) {
	face := e.getFontFace()
	for i, s := range snap.seats {
		x, y := e.pawnCell(i, s.position)
		cx, cy := geo.cellCenter(x, y)
		seatColor := colorSeats[i%len(colorSeats)]

		if s.current {
			vector.DrawFilledCircle(screen, cx, cy, geo.tile*pawnRatio+3, pulse(seatColor), true)
		}
		vector.DrawFilledCircle(screen, cx, cy, geo.tile*pawnRatio, seatColor, true)

		label := string(s.symbol)
		w, h := text.Measure(label, face, 0)
		op := &text.DrawOptions{}
		op.GeoM.Translate(float64(cx)-w/2, float64(cy)-h/2)
		op.ColorScale.ScaleWithColor(colorBoardBackground)
		text.Draw(screen, label, face, op)
	}
}

// drawPanel lists the seats, the messages and the key help to the right of
// the board
func (e *EbitenRenderer) drawPanel(screen *ebiten.Image, snap *renderSnapshot, x, y, width int) {
	if width <= 0 {
		return
	}
	lineHeight := int(e.getFontSize()) + 6

	lines := len(snap.seats) + len(snap.messages) + len(snap.hints) + 3
	bgH := float32(lines*lineHeight + 20)
	vector.DrawFilledRect(screen, float32(x)-1, float32(y)-1, float32(width)+2, bgH+2, colorPanelBorder, false)
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(width), bgH, colorPanelBackground, false)

	x += 10
	y += 10
	for i, s := range snap.seats {
		c := color.Color(colorText)
		switch {
		case s.winner:
			c = colorWinner
		case s.current:
			c = colorSeats[i%len(colorSeats)]
		}
		e.drawColoredText(screen, s.summary, x, y, c)
		y += lineHeight
	}

	y += lineHeight / 2
	e.drawColoredText(screen, "─── Messages ───", x, y, colorSubtle)
	y += lineHeight
	for _, msg := range snap.messages {
		e.drawColoredText(screen, msg, x, y, colorText)
		y += lineHeight
	}
	for _, h := range snap.hints {
		e.drawColoredText(screen, h, x, y, colorAction)
		y += lineHeight
	}
}

// drawColoredText draws text with a specific color
func (e *EbitenRenderer) drawColoredText(screen *ebiten.Image, str string, x, y int, col color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(col)
	text.Draw(screen, str, e.getFontFace(), op)
}
