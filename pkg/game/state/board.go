package state

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"

	"github.com/arekfu/quoridor/pkg/engine/logging"
	"github.com/arekfu/quoridor/pkg/engine/pathing"
	"github.com/arekfu/quoridor/pkg/engine/world"
	"github.com/arekfu/quoridor/pkg/game/setup"
)

// Phase is the coarse lifecycle state of a board
type Phase int

// Board phases
const (
	PhaseInitialized Phase = iota
	PhaseInProgress
	PhaseFinished
)

func (p Phase) String() string {
	switch p {
	case PhaseInitialized:
		return "initialized"
	case PhaseInProgress:
		return "in progress"
	case PhaseFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// Option configures a Board
type Option func(*Board)

// WithLogger sets the entry the board logs rejected moves and barriers to
func WithLogger(entry *log.Entry) Option {
	return func(b *Board) {
		b.log = entry
	}
}

// WithIDSource sets where seat identifiers come from
func WithIDSource(ids IDSource) Option {
	return func(b *Board) {
		b.ids = ids
	}
}

// WithBarrierStock limits how many barriers each seat may place. Any
// negative n means unlimited.
func WithBarrierStock(n int) Option {
	return func(b *Board) {
		if n < 0 {
			n = UnlimitedBarriers
		}
		b.stock = n
	}
}

// journalEntry records what an applied move needs to be undone
type journalEntry struct {
	seat    int
	move    Move
	from    world.Position
	barrier world.Barrier
}

// Board is the shared game state: grid, barriers, seats and one distance
// field per seat. Every accepted mutation leaves each seat with a path to
// its goal side.
type Board struct {
	grid     *world.Grid
	barriers []world.Barrier
	seats    []*Seat
	byID     map[string]int
	fields   []*pathing.Field
	journal  []journalEntry

	log   *log.Entry
	ids   IDSource
	stock int
}

// NewBoard creates a board of the given side with seats placed in the
// canonical layout and their distance fields computed
func NewBoard(side, seats int, opts ...Option) (*Board, error) {
	placements, err := setup.Layout(side, seats)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBoard, err)
	}

	b := &Board{
		grid:  world.NewGrid(side),
		byID:  make(map[string]int, seats),
		log:   logging.Discard(),
		ids:   UUIDSource{},
		stock: UnlimitedBarriers,
	}
	for _, opt := range opts {
		opt(b)
	}

	for i, p := range placements {
		s := &Seat{
			ID:       b.ids.NewID(),
			Symbol:   p.Symbol,
			Index:    i,
			Position: p.Start,
			Start:    p.Start,
			Goal:     p.Goal,
			Barriers: b.stock,
		}
		if _, dup := b.byID[s.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate seat id %q", ErrInvalidBoard, s.ID)
		}
		b.seats = append(b.seats, s)
		b.byID[s.ID] = i
		b.fields = append(b.fields, pathing.NewField(b.grid, p.Goal))
	}

	b.log.WithFields(log.Fields{"side": side, "seats": seats}).Debug("board created")
	return b, nil
}

// Side returns the number of cells along one side
func (b *Board) Side() int {
	return b.grid.Side()
}

// Grid returns the passability grid. Callers must not modify it.
func (b *Board) Grid() *world.Grid {
	return b.grid
}

// Barriers returns the placed barriers in placement order
func (b *Board) Barriers() []world.Barrier {
	out := make([]world.Barrier, len(b.barriers))
	copy(out, b.barriers)
	return out
}

// SeatCount returns the number of seats
func (b *Board) SeatCount() int {
	return len(b.seats)
}

// Seat returns a copy of the seat at index i
func (b *Board) Seat(i int) Seat {
	return *b.seats[i]
}

// Seats returns copies of every seat in turn order
func (b *Board) Seats() []Seat {
	out := make([]Seat, len(b.seats))
	for i, s := range b.seats {
		out[i] = *s
	}
	return out
}

// SeatIndex resolves a seat identifier to its turn-order index
func (b *Board) SeatIndex(id string) (int, error) {
	i, ok := b.byID[id]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSeat, id)
	}
	return i, nil
}

// SetController attaches a move chooser to a seat
func (b *Board) SetController(i int, c Controller) {
	b.seats[i].Controller = c
}

// Field returns the distance field of seat i
func (b *Board) Field(i int) *pathing.Field {
	return b.fields[i]
}

// Distance returns how many steps seat i needs to reach its goal side
func (b *Board) Distance(i int) int {
	return b.fields[i].At(b.seats[i].Position)
}

// DistanceToGoal is Distance addressed by seat identifier
func (b *Board) DistanceToGoal(id string) (int, error) {
	i, err := b.SeatIndex(id)
	if err != nil {
		return 0, err
	}
	return b.Distance(i), nil
}

// HasWon returns true if seat i stands on its goal side
func (b *Board) HasWon(i int) bool {
	return b.Distance(i) == 0
}

// CheckWin is HasWon addressed by seat identifier
func (b *Board) CheckWin(id string) (bool, error) {
	i, err := b.SeatIndex(id)
	if err != nil {
		return false, err
	}
	return b.HasWon(i), nil
}

// Winner returns the first seat standing on its goal side
func (b *Board) Winner() (int, bool) {
	for i := range b.seats {
		if b.HasWon(i) {
			return i, true
		}
	}
	return 0, false
}

// Phase reports whether play has started or finished
func (b *Board) Phase() Phase {
	if _, ok := b.Winner(); ok {
		return PhaseFinished
	}
	if len(b.barriers) > 0 {
		return PhaseInProgress
	}
	for _, s := range b.seats {
		if s.Position != s.Start {
			return PhaseInProgress
		}
	}
	return PhaseInitialized
}

// Occupant returns the seat standing on p
func (b *Board) Occupant(p world.Position) (int, bool) {
	for i, s := range b.seats {
		if s.Position == p {
			return i, true
		}
	}
	return 0, false
}

// StepTarget returns where seat i would land stepping in d. An occupied
// neighbour is jumped when the edge beyond it is open and the landing cell
// is free; there is no sideways jump.
func (b *Board) StepTarget(i int, d world.Direction) (world.Position, bool) {
	from := b.seats[i].Position
	if !b.grid.IsOpen(from, d) {
		return from, false
	}
	to := from.Step(d)
	if _, taken := b.Occupant(to); !taken {
		return to, true
	}
	if !b.grid.IsOpen(to, d) {
		return from, false
	}
	landing := to.Step(d)
	if _, taken := b.Occupant(landing); taken {
		return from, false
	}
	return landing, true
}

// LegalSteps returns the directions seat i can step in, in bit order
func (b *Board) LegalSteps(i int) []world.Direction {
	var out []world.Direction
	for _, d := range world.AllDirections() {
		if _, ok := b.StepTarget(i, d); ok {
			out = append(out, d)
		}
	}
	return out
}

// MovePawn steps the pawn of seat id in direction d
func (b *Board) MovePawn(id string, d world.Direction) (bool, error) {
	i, err := b.SeatIndex(id)
	if err != nil {
		return false, err
	}
	return b.step(i, d), nil
}

func (b *Board) step(i int, d world.Direction) bool {
	to, ok := b.StepTarget(i, d)
	if !ok {
		b.log.WithFields(log.Fields{"seat": i, "dir": d.String()}).Debug("step rejected")
		return false
	}
	b.seats[i].Position = to
	return true
}

// CheckBarrier reports whether b lies on the lattice and crosses no placed barrier
func (b *Board) CheckBarrier(bar world.Barrier) bool {
	if !b.grid.IsBarrierLegal(bar) {
		return false
	}
	for _, o := range b.barriers {
		if bar.IntersectsWith(o) {
			return false
		}
	}
	return true
}

// AddBarrier places a barrier if it is legal and leaves every seat a path
// to its goal side. The error is only for a malformed direction or length.
func (b *Board) AddBarrier(x, y int, dir world.Direction, length int) (bool, error) {
	bar, err := world.NewBarrier(x, y, dir, length)
	if err != nil {
		return false, err
	}
	return b.placeBarrier(bar), nil
}

func (b *Board) placeBarrier(bar world.Barrier) bool {
	entry := b.log.WithField("barrier", bar.String())
	if !b.CheckBarrier(bar) {
		entry.Debug("barrier rejected: illegal")
		return false
	}

	b.grid.AddBarrier(bar)
	b.reconsider(bar)

	for i := range b.seats {
		if b.Distance(i) < 0 {
			b.grid.RemoveBarrier(bar)
			b.reconsider(bar)
			entry.WithField("seat", i).Debug("barrier rejected: closes off a seat")
			return false
		}
	}

	b.barriers = append(b.barriers, bar)
	return true
}

// RemoveBarrier takes a placed barrier off the board
func (b *Board) RemoveBarrier(bar world.Barrier) bool {
	for k := len(b.barriers) - 1; k >= 0; k-- {
		if b.barriers[k] != bar {
			continue
		}
		b.barriers = append(b.barriers[:k], b.barriers[k+1:]...)
		b.grid.RemoveBarrier(bar)
		b.reconsider(bar)
		return true
	}
	return false
}

func (b *Board) reconsider(bar world.Barrier) {
	for _, f := range b.fields {
		f.Reconsider(b.grid, bar)
	}
}

// LegalBarriers returns every barrier that could be placed without crossing
// another, scanning rows then columns, right before down. A positive radius
// keeps only barriers anchored within that many lattice steps of a pawn.
// Placement may still be refused for closing off a seat.
func (b *Board) LegalBarriers(radius int) []world.Barrier {
	side := b.Side()
	var out []world.Barrier
	for y := 0; y <= side; y++ {
		for x := 0; x <= side; x++ {
			if radius > 0 && !b.nearPawn(world.Pos(x, y), radius) {
				continue
			}
			for _, d := range []world.Direction{world.Right, world.Down} {
				bar, err := world.NewBarrier(x, y, d, world.DefaultBarrierLength)
				if err == nil && b.CheckBarrier(bar) {
					out = append(out, bar)
				}
			}
		}
	}
	return out
}

func (b *Board) nearPawn(p world.Position, radius int) bool {
	for _, s := range b.seats {
		dx, dy := p.X-s.Position.X, p.Y-s.Position.Y
		if dx >= -radius && dx <= radius+1 && dy >= -radius && dy <= radius+1 {
			return true
		}
	}
	return false
}

// Apply performs move m for seat i and records it for Restore. It returns
// false, changing nothing, when the move is illegal.
func (b *Board) Apply(i int, m Move) bool {
	s := b.seats[i]
	switch m.Kind {
	case MoveStep:
		from := s.Position
		if !b.step(i, m.Dir) {
			return false
		}
		b.journal = append(b.journal, journalEntry{seat: i, move: m, from: from})
		return true

	case MoveBarrier:
		if !s.CanPlaceBarrier() {
			b.log.WithField("seat", i).Debug("barrier rejected: none left")
			return false
		}
		bar, err := m.Barrier()
		if err != nil || !b.placeBarrier(bar) {
			return false
		}
		if s.Barriers > 0 {
			s.Barriers--
		}
		b.journal = append(b.journal, journalEntry{seat: i, move: m, barrier: bar})
		return true
	}
	return false
}

// Restore undoes move m of seat i, which must be the last applied move
func (b *Board) Restore(i int, m Move) error {
	if len(b.journal) == 0 {
		return fmt.Errorf("%w: nothing applied", ErrUnbalancedRestore)
	}
	top := b.journal[len(b.journal)-1]
	if top.seat != i || top.move != m {
		return fmt.Errorf("%w: seat %d %s, last applied seat %d %s",
			ErrUnbalancedRestore, i, m, top.seat, top.move)
	}
	b.journal = b.journal[:len(b.journal)-1]

	s := b.seats[i]
	switch m.Kind {
	case MoveStep:
		s.Position = top.from
	case MoveBarrier:
		if !b.RemoveBarrier(top.barrier) {
			return fmt.Errorf("%w: barrier %s missing on restore", ErrInvariantViolation, top.barrier)
		}
		if s.Barriers >= 0 {
			s.Barriers++
		}
	}
	return nil
}

// ApplyMove decodes and applies a move for seat id
func (b *Board) ApplyMove(id, encoded string) (bool, error) {
	i, err := b.SeatIndex(id)
	if err != nil {
		return false, err
	}
	m, err := ParseMove(encoded)
	if err != nil {
		return false, err
	}
	return b.Apply(i, m), nil
}

// RestoreMove decodes and restores a move for seat id
func (b *Board) RestoreMove(id, encoded string) error {
	i, err := b.SeatIndex(id)
	if err != nil {
		return err
	}
	m, err := ParseMove(encoded)
	if err != nil {
		return err
	}
	return b.Restore(i, m)
}

// Applied returns how many applied moves can still be restored
func (b *Board) Applied() int {
	return len(b.journal)
}

// Undo restores the last applied move, whoever made it
func (b *Board) Undo() (int, Move, error) {
	if len(b.journal) == 0 {
		return 0, Move{}, fmt.Errorf("%w: nothing applied", ErrUnbalancedRestore)
	}
	top := b.journal[len(b.journal)-1]
	return top.seat, top.move, b.Restore(top.seat, top.move)
}

// Verify recomputes everything derived and checks it against the board
func (b *Board) Verify() error {
	if !b.grid.Symmetric() {
		return fmt.Errorf("%w: grid edges are not symmetric", ErrInvariantViolation)
	}

	for k, bar := range b.barriers {
		for _, o := range b.barriers[k+1:] {
			if bar.IntersectsWith(o) {
				return fmt.Errorf("%w: barriers %s and %s intersect", ErrInvariantViolation, bar, o)
			}
		}
	}

	occupied := mapset.New[world.Position]()
	for i, s := range b.seats {
		if occupied.Has(s.Position) {
			return fmt.Errorf("%w: two pawns on %s", ErrInvariantViolation, s.Position)
		}
		occupied.Put(s.Position)

		fresh := pathing.NewField(b.grid, s.Goal)
		if !b.fields[i].Equal(fresh) {
			return fmt.Errorf("%w: seat %d distance field is stale", ErrInvariantViolation, i)
		}
		if b.Distance(i) < 0 || !b.grid.Reachable(s.Position, s.Goal) {
			return fmt.Errorf("%w: seat %d is closed off", ErrInvariantViolation, i)
		}
	}
	return nil
}
