package core

import "testing"

func TestCell_Step(t *testing.T) {
	origin := C(5, 5)
	tests := []struct {
		dir  Direction
		want Cell
	}{
		{Up, C(5, 4)},
		{Down, C(5, 6)},
		{Left, C(4, 5)},
		{Right, C(6, 5)},
	}
	for _, tt := range tests {
		if got := origin.Step(tt.dir); got != tt.want {
			t.Errorf("Step(%s) = %s, want %s", tt.dir, got, tt.want)
		}
	}
}

func TestCell_InBounds(t *testing.T) {
	tests := []struct {
		c    Cell
		want bool
	}{
		{C(0, 0), true},
		{C(9, 4), true},
		{C(10, 0), false},
		{C(0, 5), false},
		{C(-1, 0), false},
		{C(0, -1), false},
	}
	for _, tt := range tests {
		if got := tt.c.InBounds(10, 5); got != tt.want {
			t.Errorf("%s.InBounds(10,5) = %v, want %v", tt.c, got, tt.want)
		}
	}
}

func TestCell_String(t *testing.T) {
	if got := C(3, -2).String(); got != "(3,-2)" {
		t.Errorf("String() = %q, want (3,-2)", got)
	}
}

func TestDirection_OppositeRoundTrip(t *testing.T) {
	for _, d := range Directions {
		if d.Opposite() == d {
			t.Errorf("%s.Opposite() returned itself", d)
		}
		if d.Opposite().Opposite() != d {
			t.Errorf("%s.Opposite().Opposite() = %s", d, d.Opposite().Opposite())
		}
		dx, dy := d.Delta()
		ox, oy := d.Opposite().Delta()
		if dx+ox != 0 || dy+oy != 0 {
			t.Errorf("%s and its opposite deltas do not cancel", d)
		}
	}
}

func TestArea_Cells(t *testing.T) {
	a := Area{X: 1, Y: 2, Width: 2, Height: 2}
	want := []Cell{C(1, 2), C(2, 2), C(1, 3), C(2, 3)}
	got := a.Cells()
	if len(got) != len(want) {
		t.Fatalf("Cells() len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Cells()[%d] = %s, want %s", i, got[i], want[i])
		}
	}

	if (Area{Width: 0, Height: 3}).Cells() != nil {
		t.Error("Expected nil cells for empty area")
	}
}

func TestSquare(t *testing.T) {
	a := Square(C(10, 10), 4)
	if a.X != 6 || a.Y != 6 || a.Width != 9 || a.Height != 9 {
		t.Errorf("Square(10,10,4) = %+v, want 9x9 at (6,6)", a)
	}
	if n := len(a.Cells()); n != 81 {
		t.Errorf("Square cell count = %d, want 81", n)
	}
}
