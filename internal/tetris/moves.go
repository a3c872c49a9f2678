package tetris

// Piece is an active tetromino: a shape, a rotation state, and the board
// position of its 4x4 box origin. Pieces are values; movement helpers return
// a new piece and never mutate the board.
type Piece struct {
	Kind     Kind
	Rotation int
	Row, Col int
}

// Direction is a horizontal movement.
type Direction int

const (
	DirLeft  Direction = -1
	DirRight Direction = 1
)

// Spin is a rotation sense.
type Spin int

const (
	SpinCW  Spin = 1
	SpinCCW Spin = -1
)

// wallKicks are the horizontal nudges tried, in order, when a rotation's
// in-place position is blocked.
var wallKicks = [...]int{0, -1, 1, -2, 2}

// Cells returns the four board positions the piece occupies.
func (p Piece) Cells() [4]Offset {
	offs := ShapeOffsets(p.Kind, p.Rotation)
	for i := range offs {
		offs[i].Row += p.Row
		offs[i].Col += p.Col
	}
	return offs
}

// SpawnPiece places a new piece of the given kind at the spawn position for
// the board width: centered horizontally, with its box one row above the
// field so the default orientations enter on row 0.
func SpawnPiece(kind Kind, boardWidth int) Piece {
	return Piece{Kind: kind, Rotation: 0, Row: -1, Col: boardWidth/2 - 2}
}

// TrySpawn spawns a piece and reports whether it fits. A false result is
// the top-out condition.
func TrySpawn(b *Board, kind Kind) (Piece, bool) {
	p := SpawnPiece(kind, b.Width())
	return p, b.Fits(p)
}

// TryMove shifts the piece one column in the given direction. If the target
// is blocked it returns the piece unchanged and false.
func TryMove(b *Board, p Piece, dir Direction) (Piece, bool) {
	moved := p
	moved.Col += int(dir)
	if !b.Fits(moved) {
		return p, false
	}
	return moved, true
}

// TryDescend moves the piece down one row. A false result means the piece
// is resting on support and should lock.
func TryDescend(b *Board, p Piece) (Piece, bool) {
	moved := p
	moved.Row++
	if !b.Fits(moved) {
		return p, false
	}
	return moved, true
}

// TryRotate rotates the piece one step in the given sense, attempting each
// wall kick in order. If no kicked position fits it returns the piece
// unchanged and false.
func TryRotate(b *Board, p Piece, spin Spin) (Piece, bool) {
	rotated := p
	rotated.Rotation = ((p.Rotation+int(spin))%RotationCount + RotationCount) % RotationCount
	for _, kick := range wallKicks {
		candidate := rotated
		candidate.Col += kick
		if b.Fits(candidate) {
			return candidate, true
		}
	}
	return p, false
}

// DropRow returns the lowest row the piece can reach by descending from its
// current position, without moving it. Used for hard drops and the ghost
// outline.
func DropRow(b *Board, p Piece) int {
	probe := p
	for {
		next := probe
		next.Row++
		if !b.Fits(next) {
			return probe.Row
		}
		probe = next
	}
}
