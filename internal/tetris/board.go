package tetris

// Board stores the locked cells of the playfield. Cells hold the Kind of the
// piece that locked there, or KindNone when empty. Row 0 is the top visible
// row; rows above the field (negative indices) are treated as empty so
// pieces can enter from above.
type Board struct {
	width  int
	height int
	grid   [][]Kind
}

// NewBoard creates an empty board of the given dimensions.
func NewBoard(width, height int) *Board {
	b := &Board{width: width, height: height}
	b.grid = make([][]Kind, height)
	for r := range b.grid {
		b.grid[r] = make([]Kind, width)
		for c := range b.grid[r] {
			b.grid[r][c] = KindNone
		}
	}
	return b
}

// Width returns the number of columns.
func (b *Board) Width() int { return b.width }

// Height returns the number of visible rows.
func (b *Board) Height() int { return b.height }

// Reset empties every cell.
func (b *Board) Reset() {
	for r := range b.grid {
		for c := range b.grid[r] {
			b.grid[r][c] = KindNone
		}
	}
}

// Occupied reports whether a piece cell may not rest at (row, col).
// Positions outside the left, right, or bottom edges count as occupied;
// positions above the top edge count as empty.
func (b *Board) Occupied(row, col int) bool {
	if col < 0 || col >= b.width || row >= b.height {
		return true
	}
	if row < 0 {
		return false
	}
	return b.grid[row][col] != KindNone
}

// CellAt returns the kind locked at (row, col), or KindNone for empty or
// out-of-range positions.
func (b *Board) CellAt(row, col int) Kind {
	if row < 0 || row >= b.height || col < 0 || col >= b.width {
		return KindNone
	}
	return b.grid[row][col]
}

// Fits reports whether every cell of the piece is unoccupied.
func (b *Board) Fits(p Piece) bool {
	for _, cell := range p.Cells() {
		if b.Occupied(cell.Row, cell.Col) {
			return false
		}
	}
	return true
}

// Lock writes the piece's cells into the board. Cells above the top edge
// are discarded; it returns true if any cell landed above the field, which
// the game treats as a top-out.
func (b *Board) Lock(p Piece) (aboveTop bool) {
	for _, cell := range p.Cells() {
		if cell.Row < 0 {
			aboveTop = true
			continue
		}
		if cell.Row < b.height && cell.Col >= 0 && cell.Col < b.width {
			b.grid[cell.Row][cell.Col] = p.Kind
		}
	}
	return aboveTop
}

// CompletedRows returns the indices of fully occupied rows, top to bottom.
func (b *Board) CompletedRows() []int {
	var rows []int
	for r := 0; r < b.height; r++ {
		full := true
		for c := 0; c < b.width; c++ {
			if b.grid[r][c] == KindNone {
				full = false
				break
			}
		}
		if full {
			rows = append(rows, r)
		}
	}
	return rows
}

// ClearRows removes the given rows and shifts everything above them down,
// inserting empty rows at the top. Row indices may be in any order.
func (b *Board) ClearRows(rows []int) {
	if len(rows) == 0 {
		return
	}
	drop := make(map[int]bool, len(rows))
	for _, r := range rows {
		if r >= 0 && r < b.height {
			drop[r] = true
		}
	}
	kept := make([][]Kind, 0, b.height)
	for r := 0; r < b.height; r++ {
		if !drop[r] {
			kept = append(kept, b.grid[r])
		}
	}
	fresh := b.height - len(kept)
	grid := make([][]Kind, 0, b.height)
	for i := 0; i < fresh; i++ {
		row := make([]Kind, b.width)
		for c := range row {
			row[c] = KindNone
		}
		grid = append(grid, row)
	}
	grid = append(grid, kept...)
	b.grid = grid
}

// SetCell places a kind directly on the board. Out-of-range positions are
// ignored. Used by tests to build scenarios.
func (b *Board) SetCell(row, col int, k Kind) {
	if row < 0 || row >= b.height || col < 0 || col >= b.width {
		return
	}
	b.grid[row][col] = k
}
