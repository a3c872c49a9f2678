// Package tetris implements the falling-block puzzle engine: piece catalog,
// board, movement validation, line clearing, scoring, and the game loop.
// It contains all of the game's real logic; input mapping and terminal
// rendering live in the platform layer.
package tetris

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Kind identifies one of the seven tetromino shapes.
type Kind int

const (
	KindI Kind = iota
	KindJ
	KindL
	KindO
	KindS
	KindT
	KindZ
)

// KindCount is the number of tetromino shapes.
const KindCount = 7

// KindNone marks an empty board cell.
const KindNone Kind = -1

// RotationCount is the number of rotation states per shape.
const RotationCount = 4

// Offset is a cell position relative to a piece's origin, in board
// coordinates (row grows downward).
type Offset struct {
	Row, Col int
}

// Valid returns true for the seven real shapes (not KindNone).
func (k Kind) Valid() bool {
	return k >= KindI && k <= KindZ
}

// String returns the conventional one-letter shape name.
func (k Kind) String() string {
	switch k {
	case KindI:
		return "I"
	case KindJ:
		return "J"
	case KindL:
		return "L"
	case KindO:
		return "O"
	case KindS:
		return "S"
	case KindT:
		return "T"
	case KindZ:
		return "Z"
	default:
		return "?"
	}
}

// Color returns the display color for this shape.
func (k Kind) Color() core.Color {
	switch k {
	case KindI:
		return core.ColorCyan
	case KindJ:
		return core.ColorBlue
	case KindL:
		return core.ColorOrange
	case KindO:
		return core.ColorYellow
	case KindS:
		return core.ColorGreen
	case KindT:
		return core.ColorMagenta
	case KindZ:
		return core.ColorRed
	default:
		return core.ColorDefault
	}
}

// shapeTable holds the cell offsets for every (kind, rotation) pair within a
// 4x4 box, using SRS-like layouts. Rotation 0 is the spawn orientation.
// The table is immutable; ShapeOffsets is the only accessor.
var shapeTable = [KindCount][RotationCount][4]Offset{
	KindI: {
		{{1, 0}, {1, 1}, {1, 2}, {1, 3}},
		{{0, 2}, {1, 2}, {2, 2}, {3, 2}},
		{{2, 0}, {2, 1}, {2, 2}, {2, 3}},
		{{0, 1}, {1, 1}, {2, 1}, {3, 1}},
	},
	KindJ: {
		{{0, 0}, {1, 0}, {1, 1}, {1, 2}},
		{{0, 1}, {0, 2}, {1, 1}, {2, 1}},
		{{1, 0}, {1, 1}, {1, 2}, {2, 2}},
		{{0, 1}, {1, 1}, {2, 0}, {2, 1}},
	},
	KindL: {
		{{0, 2}, {1, 0}, {1, 1}, {1, 2}},
		{{0, 1}, {1, 1}, {2, 1}, {2, 2}},
		{{1, 0}, {1, 1}, {1, 2}, {2, 0}},
		{{0, 0}, {0, 1}, {1, 1}, {2, 1}},
	},
	KindO: {
		{{0, 1}, {0, 2}, {1, 1}, {1, 2}},
		{{0, 1}, {0, 2}, {1, 1}, {1, 2}},
		{{0, 1}, {0, 2}, {1, 1}, {1, 2}},
		{{0, 1}, {0, 2}, {1, 1}, {1, 2}},
	},
	KindS: {
		{{0, 1}, {0, 2}, {1, 0}, {1, 1}},
		{{0, 1}, {1, 1}, {1, 2}, {2, 2}},
		{{1, 1}, {1, 2}, {2, 0}, {2, 1}},
		{{0, 0}, {1, 0}, {1, 1}, {2, 1}},
	},
	KindT: {
		{{0, 1}, {1, 0}, {1, 1}, {1, 2}},
		{{0, 1}, {1, 1}, {1, 2}, {2, 1}},
		{{1, 0}, {1, 1}, {1, 2}, {2, 1}},
		{{0, 1}, {1, 0}, {1, 1}, {2, 1}},
	},
	KindZ: {
		{{0, 0}, {0, 1}, {1, 1}, {1, 2}},
		{{0, 2}, {1, 1}, {1, 2}, {2, 1}},
		{{1, 0}, {1, 1}, {2, 1}, {2, 2}},
		{{0, 1}, {1, 0}, {1, 1}, {2, 0}},
	},
}

// ShapeOffsets returns the four cell offsets for the given shape and
// rotation state. It is total over the 7x4 valid inputs and panics on
// anything else: an invalid lookup is a programmer error, not a condition
// reachable through normal play. Callers normalize rotation modulo 4.
func ShapeOffsets(kind Kind, rotation int) [4]Offset {
	if !kind.Valid() {
		panic(fmt.Sprintf("tetris: invalid piece kind %d", int(kind)))
	}
	if rotation < 0 || rotation >= RotationCount {
		panic(fmt.Sprintf("tetris: invalid rotation %d for kind %s", rotation, kind))
	}
	return shapeTable[kind][rotation]
}

// AllKinds returns the seven shapes in catalog order.
func AllKinds() []Kind {
	return []Kind{KindI, KindJ, KindL, KindO, KindS, KindT, KindZ}
}
