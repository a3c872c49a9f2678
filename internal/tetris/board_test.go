package tetris

import "testing"

func TestOccupiedBoundaryPolicy(t *testing.T) {
	b := NewBoard(10, 20)

	cases := []struct {
		name     string
		row, col int
		want     bool
	}{
		{"empty interior", 5, 5, false},
		{"above top is empty", -1, 4, false},
		{"far above top is empty", -3, 0, false},
		{"left of board", 0, -1, true},
		{"right of board", 0, 10, true},
		{"below bottom", 20, 0, true},
		{"outside corner", 25, -2, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := b.Occupied(tc.row, tc.col); got != tc.want {
				t.Errorf("Occupied(%d, %d) = %v, want %v", tc.row, tc.col, got, tc.want)
			}
		})
	}

	b.SetCell(5, 5, KindT)
	if !b.Occupied(5, 5) {
		t.Error("locked cell should be occupied")
	}
}

func TestLockWritesCells(t *testing.T) {
	b := NewBoard(10, 20)
	p := Piece{Kind: KindO, Rotation: 0, Row: 18, Col: 3}

	if above := b.Lock(p); above {
		t.Error("lock inside the field reported aboveTop")
	}
	for _, cell := range p.Cells() {
		if b.CellAt(cell.Row, cell.Col) != KindO {
			t.Errorf("cell (%d, %d) not locked", cell.Row, cell.Col)
		}
	}
}

func TestLockAboveTop(t *testing.T) {
	b := NewBoard(10, 20)
	// Spawn position: part of the piece sits above row 0
	p := SpawnPiece(KindI, 10)
	p.Rotation = 1 // vertical, rows -1..2

	if above := b.Lock(p); !above {
		t.Error("lock with cells above the top edge should report aboveTop")
	}
	// The visible part still locked
	if b.CellAt(0, p.Col+2) != KindI {
		t.Error("visible cells below the top edge were not locked")
	}
}

func TestCompletedRowsAndClear(t *testing.T) {
	b := NewBoard(10, 20)
	for c := 0; c < 10; c++ {
		b.SetCell(19, c, KindI)
	}
	b.SetCell(18, 0, KindJ) // partial row above

	rows := b.CompletedRows()
	if len(rows) != 1 || rows[0] != 19 {
		t.Fatalf("CompletedRows() = %v, want [19]", rows)
	}

	b.ClearRows(rows)
	if got := b.CompletedRows(); len(got) != 0 {
		t.Errorf("rows still complete after clear: %v", got)
	}
	// The partial row shifted down into the cleared slot
	if b.CellAt(19, 0) != KindJ {
		t.Error("partial row did not shift down")
	}
	if b.CellAt(18, 0) != KindNone {
		t.Error("old position of the partial row was not emptied")
	}
}

func TestClearNonAdjacentRows(t *testing.T) {
	b := NewBoard(10, 20)
	for c := 0; c < 10; c++ {
		b.SetCell(17, c, KindS)
		b.SetCell(19, c, KindZ)
	}
	b.SetCell(18, 3, KindT) // survives between the two full rows

	rows := b.CompletedRows()
	if len(rows) != 2 {
		t.Fatalf("CompletedRows() = %v, want two rows", rows)
	}

	b.ClearRows(rows)
	if b.CellAt(19, 3) != KindT {
		t.Error("surviving row should land on the bottom")
	}
	for c := 0; c < 10; c++ {
		if c != 3 && b.CellAt(19, c) != KindNone {
			t.Errorf("cell (19, %d) should be empty after clear", c)
		}
	}
}

func TestFullBoardClears(t *testing.T) {
	b := NewBoard(10, 20)
	for r := 0; r < 20; r++ {
		for c := 0; c < 10; c++ {
			b.SetCell(r, c, KindL)
		}
	}

	rows := b.CompletedRows()
	if len(rows) != 20 {
		t.Fatalf("CompletedRows() found %d rows, want 20", len(rows))
	}

	b.ClearRows(rows)
	for r := 0; r < 20; r++ {
		for c := 0; c < 10; c++ {
			if b.CellAt(r, c) != KindNone {
				t.Fatalf("cell (%d, %d) not empty after full clear", r, c)
			}
		}
	}
}

func TestReset(t *testing.T) {
	b := NewBoard(10, 20)
	b.SetCell(10, 4, KindT)
	b.Reset()
	if b.CellAt(10, 4) != KindNone {
		t.Error("Reset did not empty the board")
	}
}
